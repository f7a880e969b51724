package repository

import (
	"context"
	"errors"
	"main/model"
	"main/utils"
	"os"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ImageStore is the pluggable blob-store surface for routine images. The
// MongoDB-backed ImagesRepo is the only implementation today.
type ImageStore interface {
	SaveImage(ctx context.Context, image *model.RoutineImage) error
	GetImageByID(ctx context.Context, userID string, imageID string) (*model.RoutineImage, error)
	DeleteImage(ctx context.Context, imageID string, userID string) error
}

type ImagesRepo struct {
	MongoCollection *mongo.Collection
}

// Retrieves MongoDB collection for routine images
func GetImagesRepo(client *mongo.Client) *ImagesRepo {
	dbName := os.Getenv("MONGODB_DB_NAME")
	collectionName := utils.GetEnvAsString("IMAGES_COLLECTION", "routine_images")
	return &ImagesRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

func (r *ImagesRepo) SaveImage(ctx context.Context, image *model.RoutineImage) error {
	timer := utils.TrackDBOperation("insert", "routine_images")
	defer timer.ObserveDuration()

	if image.UserID == "" {
		utils.TrackError("database", "missing_user_id")
		return errors.New("user ID is required")
	}

	_, err := r.MongoCollection.InsertOne(ctx, image)
	if err != nil {
		utils.TrackError("database", "image_save_failed")
		return err
	}
	return nil
}

func (r *ImagesRepo) GetImageByID(ctx context.Context, userID string, imageID string) (*model.RoutineImage, error) {
	timer := utils.TrackDBOperation("find_one", "routine_images")
	defer timer.ObserveDuration()

	var image model.RoutineImage
	err := r.MongoCollection.FindOne(ctx,
		bson.M{"_id": imageID, "user_id": userID}).Decode(&image)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		utils.TrackError("database", "image_fetch_failed")
		return nil, err
	}
	return &image, nil
}

func (r *ImagesRepo) DeleteImage(ctx context.Context, imageID string, userID string) error {
	timer := utils.TrackDBOperation("delete", "routine_images")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(ctx,
		bson.M{"_id": imageID, "user_id": userID})
	if err != nil {
		utils.TrackError("database", "image_deletion_failed")
		return err
	}
	if result.DeletedCount == 0 {
		return errors.New("image not found")
	}
	return nil
}
