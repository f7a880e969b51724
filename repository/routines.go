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

type RoutinesRepo struct {
	MongoCollection *mongo.Collection
	LogsCollection  *mongo.Collection
}

// Retrieves MongoDB collections for routines and their completion logs
func GetRoutinesRepo(client *mongo.Client) *RoutinesRepo {
	dbName := os.Getenv("MONGODB_DB_NAME")
	db := client.Database(dbName)
	return &RoutinesRepo{
		MongoCollection: db.Collection(utils.GetEnvAsString("ROUTINES_COLLECTION", "routines")),
		LogsCollection:  db.Collection(utils.GetEnvAsString("ROUTINE_LOGS_COLLECTION", "routine_logs")),
	}
}

func (r *RoutinesRepo) CreateRoutine(ctx context.Context, routine *model.Routine) error {
	timer := utils.TrackDBOperation("insert", "routines")
	defer timer.ObserveDuration()

	if routine.UserID == "" {
		utils.TrackError("database", "missing_user_id")
		return errors.New("user ID is required")
	}

	_, err := r.MongoCollection.InsertOne(ctx, routine)
	if err != nil {
		utils.TrackError("database", "routine_creation_failed")
		return err
	}
	return nil
}

func (r *RoutinesRepo) GetUserRoutines(ctx context.Context, userID string) ([]*model.Routine, error) {
	timer := utils.TrackDBOperation("find", "routines")
	defer timer.ObserveDuration()

	var routines []*model.Routine
	cursor, err := r.MongoCollection.Find(ctx,
		bson.M{"user_id": userID, "archived": false})
	if err != nil {
		utils.TrackError("database", "routine_fetch_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &routines); err != nil {
		utils.TrackError("database", "routine_decode_failed")
		return nil, err
	}
	return routines, nil
}

func (r *RoutinesRepo) GetRoutineByID(ctx context.Context, userID string, routineID string) (*model.Routine, error) {
	timer := utils.TrackDBOperation("find_one", "routines")
	defer timer.ObserveDuration()

	var routine model.Routine
	err := r.MongoCollection.FindOne(ctx,
		bson.M{"_id": routineID, "user_id": userID}).Decode(&routine)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		utils.TrackError("database", "routine_fetch_failed")
		return nil, err
	}
	return &routine, nil
}

func (r *RoutinesRepo) UpdateRoutine(ctx context.Context, routineID string, userID string, updates *model.Routine) error {
	timer := utils.TrackDBOperation("update", "routines")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.UpdateOne(ctx,
		bson.M{"_id": routineID, "user_id": userID},
		bson.M{"$set": bson.M{
			"name":       updates.Name,
			"steps":      updates.Steps,
			"image_id":   updates.ImageID,
			"archived":   updates.Archived,
			"updated_at": time.Now(),
		}})
	if err != nil {
		utils.TrackError("database", "routine_update_failed")
		return err
	}
	if result.MatchedCount == 0 {
		utils.TrackError("database", "routine_not_found")
		return errors.New("routine not found")
	}
	return nil
}

func (r *RoutinesRepo) DeleteRoutine(ctx context.Context, routineID string, userID string) error {
	timer := utils.TrackDBOperation("delete", "routines")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(ctx,
		bson.M{"_id": routineID, "user_id": userID})
	if err != nil {
		utils.TrackError("database", "routine_deletion_failed")
		return err
	}
	if result.DeletedCount == 0 {
		utils.TrackError("database", "routine_not_found")
		return errors.New("routine not found")
	}
	return nil
}

func (r *RoutinesRepo) CreateRoutineLog(ctx context.Context, log *model.RoutineLog) error {
	timer := utils.TrackDBOperation("insert", "routine_logs")
	defer timer.ObserveDuration()

	_, err := r.LogsCollection.InsertOne(ctx, log)
	if err != nil {
		utils.TrackError("database", "routine_log_creation_failed")
		return err
	}
	return nil
}

// GetRoutineLogsInRange fetches completion logs in an inclusive day key
// window, used by weekday-mirroring ordering.
func (r *RoutinesRepo) GetRoutineLogsInRange(ctx context.Context, userID string, fromKey, toKey string) ([]*model.RoutineLog, error) {
	timer := utils.TrackDBOperation("find", "routine_logs")
	defer timer.ObserveDuration()

	var logs []*model.RoutineLog
	cursor, err := r.LogsCollection.Find(ctx, bson.M{
		"user_id": userID,
		"day_key": bson.M{"$gte": fromKey, "$lte": toKey},
	})
	if err != nil {
		utils.TrackError("database", "routine_log_fetch_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &logs); err != nil {
		utils.TrackError("database", "routine_log_decode_failed")
		return nil, err
	}
	return logs, nil
}
