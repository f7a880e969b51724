package repository

import (
	"context"
	"errors"
	"main/model"
	"main/utils"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type CategoriesRepo struct {
	MongoCollection *mongo.Collection
}

// Retrieves MongoDB collection for categories
func GetCategoriesRepo(client *mongo.Client) *CategoriesRepo {
	dbName := os.Getenv("MONGODB_DB_NAME")
	collectionName := utils.GetEnvAsString("CATEGORIES_COLLECTION", "categories")
	return &CategoriesRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

func (r *CategoriesRepo) CreateCategory(ctx context.Context, category *model.Category) error {
	timer := utils.TrackDBOperation("insert", "categories")
	defer timer.ObserveDuration()

	if category.UserID == "" {
		utils.TrackError("database", "missing_user_id")
		return errors.New("user ID is required")
	}

	_, err := r.MongoCollection.InsertOne(ctx, category)
	if err != nil {
		utils.TrackError("database", "category_creation_failed")
		return err
	}
	return nil
}

func (r *CategoriesRepo) GetUserCategories(ctx context.Context, userID string) ([]*model.Category, error) {
	timer := utils.TrackDBOperation("find", "categories")
	defer timer.ObserveDuration()

	var categories []*model.Category
	cursor, err := r.MongoCollection.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		utils.TrackError("database", "category_fetch_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &categories); err != nil {
		utils.TrackError("database", "category_decode_failed")
		return nil, err
	}
	return categories, nil
}

func (r *CategoriesRepo) GetCategoryByID(ctx context.Context, userID string, categoryID string) (*model.Category, error) {
	timer := utils.TrackDBOperation("find_one", "categories")
	defer timer.ObserveDuration()

	var category model.Category
	err := r.MongoCollection.FindOne(ctx,
		bson.M{"_id": categoryID, "user_id": userID}).Decode(&category)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		utils.TrackError("database", "category_fetch_failed")
		return nil, err
	}
	return &category, nil
}

func (r *CategoriesRepo) UpdateCategory(ctx context.Context, categoryID string, userID string, updates *model.Category) error {
	timer := utils.TrackDBOperation("update", "categories")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.UpdateOne(ctx,
		bson.M{"_id": categoryID, "user_id": userID},
		bson.M{"$set": bson.M{
			"name":       updates.Name,
			"color":      updates.Color,
			"icon":       updates.Icon,
			"updated_at": time.Now(),
		}})
	if err != nil {
		utils.TrackError("database", "category_update_failed")
		return err
	}
	if result.MatchedCount == 0 {
		utils.TrackError("database", "category_not_found")
		return errors.New("category not found")
	}
	return nil
}

func (r *CategoriesRepo) DeleteCategory(ctx context.Context, categoryID string, userID string) error {
	timer := utils.TrackDBOperation("delete", "categories")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(ctx,
		bson.M{"_id": categoryID, "user_id": userID})
	if err != nil {
		utils.TrackError("database", "category_deletion_failed")
		return err
	}
	if result.DeletedCount == 0 {
		utils.TrackError("database", "category_not_found")
		return errors.New("category not found")
	}
	return nil
}
