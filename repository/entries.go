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

type EntriesRepo struct {
	MongoCollection *mongo.Collection
}

// Retrieves MongoDB collection for habit entries
func GetEntriesRepo(client *mongo.Client) *EntriesRepo {
	dbName := os.Getenv("MONGODB_DB_NAME")
	collectionName := utils.GetEnvAsString("ENTRIES_COLLECTION", "habit_entries")
	return &EntriesRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

func (r *EntriesRepo) CreateEntry(ctx context.Context, entry *model.HabitEntry) error {
	timer := utils.TrackDBOperation("insert", "habit_entries")
	defer timer.ObserveDuration()

	if entry.UserID == "" {
		utils.TrackError("database", "missing_user_id")
		return errors.New("user ID is required")
	}

	_, err := r.MongoCollection.InsertOne(ctx, entry)
	if err != nil {
		utils.TrackError("database", "entry_creation_failed")
		return err
	}
	return nil
}

// GetEntriesByHabitIDs fetches non-deleted entries for a set of habits in a
// single query, optionally bounded by an inclusive day key window. This is
// the batch path that keeps goal aggregation free of N+1 queries.
func (r *EntriesRepo) GetEntriesByHabitIDs(ctx context.Context, userID string, habitIDs []string, fromKey, toKey string) ([]*model.HabitEntry, error) {
	timer := utils.TrackDBOperation("find", "habit_entries")
	defer timer.ObserveDuration()

	if len(habitIDs) == 0 {
		return nil, nil
	}

	filter := bson.M{
		"user_id":    userID,
		"habit_id":   bson.M{"$in": habitIDs},
		"deleted_at": nil,
	}
	if fromKey != "" || toKey != "" {
		window := bson.M{}
		if fromKey != "" {
			window["$gte"] = fromKey
		}
		if toKey != "" {
			window["$lte"] = toKey
		}
		filter["day_key"] = window
	}

	var entries []*model.HabitEntry
	cursor, err := r.MongoCollection.Find(ctx, filter)
	if err != nil {
		utils.TrackError("database", "entry_fetch_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &entries); err != nil {
		utils.TrackError("database", "entry_decode_failed")
		return nil, err
	}
	return entries, nil
}

// GetEntriesInRange fetches every entry for a user in an inclusive day key
// window. Soft-deleted entries are included; callers project through
// model.ToEntryViews when they only want live ones.
func (r *EntriesRepo) GetEntriesInRange(ctx context.Context, userID string, fromKey, toKey string) ([]*model.HabitEntry, error) {
	timer := utils.TrackDBOperation("find", "habit_entries")
	defer timer.ObserveDuration()

	filter := bson.M{
		"user_id": userID,
		"day_key": bson.M{"$gte": fromKey, "$lte": toKey},
	}

	var entries []*model.HabitEntry
	cursor, err := r.MongoCollection.Find(ctx, filter)
	if err != nil {
		utils.TrackError("database", "entry_fetch_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &entries); err != nil {
		utils.TrackError("database", "entry_decode_failed")
		return nil, err
	}
	return entries, nil
}

// SoftDeleteEntry sets deleted_at, excluding the entry from all aggregations
// while keeping the document recoverable.
func (r *EntriesRepo) SoftDeleteEntry(ctx context.Context, entryID string, userID string) error {
	timer := utils.TrackDBOperation("update", "habit_entries")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.UpdateOne(ctx,
		bson.M{"_id": entryID, "user_id": userID, "deleted_at": nil},
		bson.M{"$set": bson.M{"deleted_at": time.Now()}})
	if err != nil {
		utils.TrackError("database", "entry_deletion_failed")
		return err
	}
	if result.MatchedCount == 0 {
		utils.TrackError("database", "entry_not_found")
		return errors.New("entry not found")
	}
	return nil
}

// DeleteByHabitID hard-deletes all entries of a habit, used when the habit
// itself is removed.
func (r *EntriesRepo) DeleteByHabitID(ctx context.Context, habitID string, userID string) error {
	timer := utils.TrackDBOperation("delete", "habit_entries")
	defer timer.ObserveDuration()

	_, err := r.MongoCollection.DeleteMany(ctx,
		bson.M{"habit_id": habitID, "user_id": userID})
	if err != nil {
		utils.TrackError("database", "entry_deletion_failed")
		return err
	}
	return nil
}
