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

type HabitsRepo struct {
	MongoCollection *mongo.Collection
}

// Retrieves MongoDB collection for habits
func GetHabitsRepo(client *mongo.Client) *HabitsRepo {
	dbName := os.Getenv("MONGODB_DB_NAME")
	collectionName := utils.GetEnvAsString("HABITS_COLLECTION", "habits")
	return &HabitsRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

func (r *HabitsRepo) CreateHabit(ctx context.Context, habit *model.Habit) error {
	timer := utils.TrackDBOperation("insert", "habits")
	defer timer.ObserveDuration()

	if habit.UserID == "" {
		utils.TrackError("database", "missing_user_id")
		return errors.New("user ID is required")
	}

	_, err := r.MongoCollection.InsertOne(ctx, habit)
	if err != nil {
		utils.TrackError("database", "habit_creation_failed")
		return err
	}
	return nil
}

// Retrieves all habits for a user, archived ones included
func (r *HabitsRepo) GetUserHabits(ctx context.Context, userID string) ([]*model.Habit, error) {
	timer := utils.TrackDBOperation("find", "habits")
	defer timer.ObserveDuration()

	var habits []*model.Habit
	cursor, err := r.MongoCollection.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		utils.TrackError("database", "habit_fetch_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &habits); err != nil {
		utils.TrackError("database", "habit_decode_failed")
		return nil, err
	}
	return habits, nil
}

// Retrieves only non-archived habits for a user
func (r *HabitsRepo) GetActiveHabits(ctx context.Context, userID string) ([]*model.Habit, error) {
	timer := utils.TrackDBOperation("find", "habits")
	defer timer.ObserveDuration()

	var habits []*model.Habit
	cursor, err := r.MongoCollection.Find(ctx,
		bson.M{"user_id": userID, "archived": false})
	if err != nil {
		utils.TrackError("database", "habit_fetch_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &habits); err != nil {
		utils.TrackError("database", "habit_decode_failed")
		return nil, err
	}
	return habits, nil
}

func (r *HabitsRepo) GetHabitByID(ctx context.Context, userID string, habitID string) (*model.Habit, error) {
	timer := utils.TrackDBOperation("find_one", "habits")
	defer timer.ObserveDuration()

	var habit model.Habit
	err := r.MongoCollection.FindOne(ctx,
		bson.M{"_id": habitID, "user_id": userID}).Decode(&habit)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		utils.TrackError("database", "habit_fetch_failed")
		return nil, err
	}
	return &habit, nil
}

func (r *HabitsRepo) UpdateHabit(ctx context.Context, habitID string, userID string, updates *model.Habit) error {
	timer := utils.TrackDBOperation("update", "habits")
	defer timer.ObserveDuration()

	filter := bson.M{
		"_id":     habitID,
		"user_id": userID,
	}

	update := bson.M{
		"$set": bson.M{
			"name":           updates.Name,
			"category_id":    updates.CategoryID,
			"goal":           updates.Goal,
			"archived":       updates.Archived,
			"sub_habit_ids":  updates.SubHabitIDs,
			"bundle_type":    updates.BundleType,
			"bundle_options": updates.BundleOptions,
			"freeze_count":   updates.FreezeCount,
			"updated_at":     time.Now(),
		},
	}

	result, err := r.MongoCollection.UpdateOne(ctx, filter, update)
	if err != nil {
		utils.TrackError("database", "habit_update_failed")
		return err
	}
	if result.MatchedCount == 0 {
		utils.TrackError("database", "habit_not_found")
		return errors.New("habit not found")
	}
	return nil
}

func (r *HabitsRepo) SetArchived(ctx context.Context, habitID string, userID string, archived bool) error {
	timer := utils.TrackDBOperation("update", "habits")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.UpdateOne(ctx,
		bson.M{"_id": habitID, "user_id": userID},
		bson.M{"$set": bson.M{"archived": archived, "updated_at": time.Now()}})
	if err != nil {
		utils.TrackError("database", "habit_update_failed")
		return err
	}
	if result.MatchedCount == 0 {
		return errors.New("habit not found")
	}
	return nil
}

// DecrementFreezeCount consumes one streak-protection token. The filter
// guards against racing below zero.
func (r *HabitsRepo) DecrementFreezeCount(ctx context.Context, habitID string, userID string) error {
	timer := utils.TrackDBOperation("update", "habits")
	defer timer.ObserveDuration()

	filter := bson.M{
		"_id":          habitID,
		"user_id":      userID,
		"freeze_count": bson.M{"$gt": 0},
	}

	result, err := r.MongoCollection.UpdateOne(ctx, filter,
		bson.M{"$inc": bson.M{"freeze_count": -1}})
	if err != nil {
		utils.TrackError("database", "freeze_decrement_failed")
		return err
	}
	if result.MatchedCount == 0 {
		return errors.New("no freeze available")
	}
	return nil
}

// DistinctUserIDs lists every user owning at least one habit, for batch
// jobs that sweep all users.
func (r *HabitsRepo) DistinctUserIDs(ctx context.Context) ([]string, error) {
	timer := utils.TrackDBOperation("distinct", "habits")
	defer timer.ObserveDuration()

	values, err := r.MongoCollection.Distinct(ctx, "user_id", bson.M{})
	if err != nil {
		utils.TrackError("database", "habit_distinct_failed")
		return nil, err
	}
	userIDs := make([]string, 0, len(values))
	for _, value := range values {
		if id, ok := value.(string); ok {
			userIDs = append(userIDs, id)
		}
	}
	return userIDs, nil
}

func (r *HabitsRepo) DeleteHabit(ctx context.Context, habitID string, userID string) error {
	timer := utils.TrackDBOperation("delete", "habits")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(ctx,
		bson.M{"_id": habitID, "user_id": userID})
	if err != nil {
		utils.TrackError("database", "habit_deletion_failed")
		return err
	}
	if result.DeletedCount == 0 {
		utils.TrackError("database", "habit_not_found")
		return errors.New("habit not found")
	}
	return nil
}
