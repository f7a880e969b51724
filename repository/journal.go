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
	"go.mongodb.org/mongo-driver/mongo/options"
)

type JournalRepo struct {
	MongoCollection *mongo.Collection
}

// Retrieves MongoDB collection for journal entries
func GetJournalRepo(client *mongo.Client) *JournalRepo {
	dbName := os.Getenv("MONGODB_DB_NAME")
	collectionName := utils.GetEnvAsString("JOURNAL_COLLECTION", "journal_entries")
	return &JournalRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

func (r *JournalRepo) CreateEntry(ctx context.Context, entry *model.JournalEntry) error {
	timer := utils.TrackDBOperation("insert", "journal_entries")
	defer timer.ObserveDuration()

	if entry.UserID == "" {
		utils.TrackError("database", "missing_user_id")
		return errors.New("user ID is required")
	}

	_, err := r.MongoCollection.InsertOne(ctx, entry)
	if err != nil {
		utils.TrackError("database", "journal_creation_failed")
		return err
	}
	return nil
}

// GetUserEntries returns live journal entries, newest day first.
func (r *JournalRepo) GetUserEntries(ctx context.Context, userID string) ([]*model.JournalEntry, error) {
	timer := utils.TrackDBOperation("find", "journal_entries")
	defer timer.ObserveDuration()

	opts := options.Find().SetSort(bson.D{{Key: "day_key", Value: -1}})
	var entries []*model.JournalEntry
	cursor, err := r.MongoCollection.Find(ctx,
		bson.M{"user_id": userID, "deleted_at": nil}, opts)
	if err != nil {
		utils.TrackError("database", "journal_fetch_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &entries); err != nil {
		utils.TrackError("database", "journal_decode_failed")
		return nil, err
	}
	return entries, nil
}

func (r *JournalRepo) GetEntryByID(ctx context.Context, userID string, journalID string) (*model.JournalEntry, error) {
	timer := utils.TrackDBOperation("find_one", "journal_entries")
	defer timer.ObserveDuration()

	var entry model.JournalEntry
	err := r.MongoCollection.FindOne(ctx,
		bson.M{"_id": journalID, "user_id": userID, "deleted_at": nil}).Decode(&entry)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		utils.TrackError("database", "journal_fetch_failed")
		return nil, err
	}
	return &entry, nil
}

func (r *JournalRepo) UpdateEntry(ctx context.Context, journalID string, userID string, updates *model.JournalEntry) error {
	timer := utils.TrackDBOperation("update", "journal_entries")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.UpdateOne(ctx,
		bson.M{"_id": journalID, "user_id": userID, "deleted_at": nil},
		bson.M{"$set": bson.M{
			"title":      updates.Title,
			"body":       updates.Body,
			"mood":       updates.Mood,
			"tags":       updates.Tags,
			"updated_at": time.Now(),
		}})
	if err != nil {
		utils.TrackError("database", "journal_update_failed")
		return err
	}
	if result.MatchedCount == 0 {
		utils.TrackError("database", "journal_not_found")
		return errors.New("journal entry not found")
	}
	return nil
}

func (r *JournalRepo) SoftDeleteEntry(ctx context.Context, journalID string, userID string) error {
	timer := utils.TrackDBOperation("update", "journal_entries")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.UpdateOne(ctx,
		bson.M{"_id": journalID, "user_id": userID, "deleted_at": nil},
		bson.M{"$set": bson.M{"deleted_at": time.Now()}})
	if err != nil {
		utils.TrackError("database", "journal_deletion_failed")
		return err
	}
	if result.MatchedCount == 0 {
		utils.TrackError("database", "journal_not_found")
		return errors.New("journal entry not found")
	}
	return nil
}
