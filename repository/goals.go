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

type GoalsRepo struct {
	MongoCollection *mongo.Collection
}

// Retrieves MongoDB collection for goals
func GetGoalsRepo(client *mongo.Client) *GoalsRepo {
	dbName := os.Getenv("MONGODB_DB_NAME")
	collectionName := utils.GetEnvAsString("GOALS_COLLECTION", "goals")
	return &GoalsRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

func (r *GoalsRepo) CreateGoal(ctx context.Context, goal *model.Goal) error {
	timer := utils.TrackDBOperation("insert", "goals")
	defer timer.ObserveDuration()

	if goal.UserID == "" {
		utils.TrackError("database", "missing_user_id")
		return errors.New("user ID is required")
	}

	_, err := r.MongoCollection.InsertOne(ctx, goal)
	if err != nil {
		utils.TrackError("database", "goal_creation_failed")
		return err
	}
	return nil
}

func (r *GoalsRepo) GetUserGoals(ctx context.Context, userID string) ([]*model.Goal, error) {
	timer := utils.TrackDBOperation("find", "goals")
	defer timer.ObserveDuration()

	var goals []*model.Goal
	cursor, err := r.MongoCollection.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		utils.TrackError("database", "goal_fetch_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &goals); err != nil {
		utils.TrackError("database", "goal_decode_failed")
		return nil, err
	}
	return goals, nil
}

func (r *GoalsRepo) GetGoalByID(ctx context.Context, userID string, goalID string) (*model.Goal, error) {
	timer := utils.TrackDBOperation("find_one", "goals")
	defer timer.ObserveDuration()

	var goal model.Goal
	err := r.MongoCollection.FindOne(ctx,
		bson.M{"_id": goalID, "user_id": userID}).Decode(&goal)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		utils.TrackError("database", "goal_fetch_failed")
		return nil, err
	}
	return &goal, nil
}

func (r *GoalsRepo) UpdateGoal(ctx context.Context, goalID string, userID string, updates *model.Goal) error {
	timer := utils.TrackDBOperation("update", "goals")
	defer timer.ObserveDuration()

	filter := bson.M{
		"_id":     goalID,
		"user_id": userID,
	}

	update := bson.M{
		"$set": bson.M{
			"name":             updates.Name,
			"category_id":      updates.CategoryID,
			"goal_type":        updates.Type,
			"target_value":     updates.TargetValue,
			"unit":             updates.Unit,
			"linked_habit_ids": updates.LinkedHabitIDs,
			"aggregation_mode": updates.AggregationMode,
			"deadline":         updates.Deadline,
			"completed_at":     updates.CompletedAt,
			"updated_at":       time.Now(),
		},
	}

	result, err := r.MongoCollection.UpdateOne(ctx, filter, update)
	if err != nil {
		utils.TrackError("database", "goal_update_failed")
		return err
	}
	if result.MatchedCount == 0 {
		utils.TrackError("database", "goal_not_found")
		return errors.New("goal not found")
	}
	return nil
}

// MarkCompleted stamps completed_at. Completed goals stop producing
// inactivity warnings.
func (r *GoalsRepo) MarkCompleted(ctx context.Context, goalID string, userID string, completedAt time.Time) error {
	timer := utils.TrackDBOperation("update", "goals")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.UpdateOne(ctx,
		bson.M{"_id": goalID, "user_id": userID},
		bson.M{"$set": bson.M{"completed_at": completedAt, "updated_at": time.Now()}})
	if err != nil {
		utils.TrackError("database", "goal_update_failed")
		return err
	}
	if result.MatchedCount == 0 {
		return errors.New("goal not found")
	}
	return nil
}

func (r *GoalsRepo) DeleteGoal(ctx context.Context, goalID string, userID string) error {
	timer := utils.TrackDBOperation("delete", "goals")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(ctx,
		bson.M{"_id": goalID, "user_id": userID})
	if err != nil {
		utils.TrackError("database", "goal_deletion_failed")
		return err
	}
	if result.DeletedCount == 0 {
		utils.TrackError("database", "goal_not_found")
		return errors.New("goal not found")
	}
	return nil
}
