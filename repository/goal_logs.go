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

type GoalLogsRepo struct {
	MongoCollection *mongo.Collection
}

// Retrieves MongoDB collection for manual goal logs
func GetGoalLogsRepo(client *mongo.Client) *GoalLogsRepo {
	dbName := os.Getenv("MONGODB_DB_NAME")
	collectionName := utils.GetEnvAsString("GOAL_LOGS_COLLECTION", "goal_manual_logs")
	return &GoalLogsRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

func (r *GoalLogsRepo) CreateManualLog(ctx context.Context, log *model.GoalManualLog) error {
	timer := utils.TrackDBOperation("insert", "goal_manual_logs")
	defer timer.ObserveDuration()

	if log.UserID == "" {
		utils.TrackError("database", "missing_user_id")
		return errors.New("user ID is required")
	}

	_, err := r.MongoCollection.InsertOne(ctx, log)
	if err != nil {
		utils.TrackError("database", "goal_log_creation_failed")
		return err
	}
	return nil
}

func (r *GoalLogsRepo) GetLogsByGoalID(ctx context.Context, userID string, goalID string) ([]*model.GoalManualLog, error) {
	timer := utils.TrackDBOperation("find", "goal_manual_logs")
	defer timer.ObserveDuration()

	var logs []*model.GoalManualLog
	cursor, err := r.MongoCollection.Find(ctx,
		bson.M{"user_id": userID, "goal_id": goalID})
	if err != nil {
		utils.TrackError("database", "goal_log_fetch_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &logs); err != nil {
		utils.TrackError("database", "goal_log_decode_failed")
		return nil, err
	}
	return logs, nil
}

// GetLogsByGoalIDs fetches manual logs for many goals in one query for the
// batch progress path.
func (r *GoalLogsRepo) GetLogsByGoalIDs(ctx context.Context, userID string, goalIDs []string) ([]*model.GoalManualLog, error) {
	timer := utils.TrackDBOperation("find", "goal_manual_logs")
	defer timer.ObserveDuration()

	if len(goalIDs) == 0 {
		return nil, nil
	}

	var logs []*model.GoalManualLog
	cursor, err := r.MongoCollection.Find(ctx,
		bson.M{"user_id": userID, "goal_id": bson.M{"$in": goalIDs}})
	if err != nil {
		utils.TrackError("database", "goal_log_fetch_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &logs); err != nil {
		utils.TrackError("database", "goal_log_decode_failed")
		return nil, err
	}
	return logs, nil
}

// DeleteByGoalID removes all manual logs of a goal when the goal is deleted.
func (r *GoalLogsRepo) DeleteByGoalID(ctx context.Context, goalID string, userID string) error {
	timer := utils.TrackDBOperation("delete", "goal_manual_logs")
	defer timer.ObserveDuration()

	_, err := r.MongoCollection.DeleteMany(ctx,
		bson.M{"goal_id": goalID, "user_id": userID})
	if err != nil {
		utils.TrackError("database", "goal_log_deletion_failed")
		return err
	}
	return nil
}
