package repository

import (
	"context"
	"errors"
	"main/model"
	"main/utils"
	"os"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type WellbeingRepo struct {
	MongoCollection *mongo.Collection
}

// Retrieves MongoDB collection for wellbeing check-ins
func GetWellbeingRepo(client *mongo.Client) *WellbeingRepo {
	dbName := os.Getenv("MONGODB_DB_NAME")
	collectionName := utils.GetEnvAsString("WELLBEING_COLLECTION", "wellbeing_checkins")
	return &WellbeingRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

// UpsertCheckin writes the day's check-in, replacing an earlier one for the
// same day. One check-in per user per day.
func (r *WellbeingRepo) UpsertCheckin(ctx context.Context, checkin *model.WellbeingCheckin) error {
	timer := utils.TrackDBOperation("upsert", "wellbeing_checkins")
	defer timer.ObserveDuration()

	if checkin.UserID == "" {
		utils.TrackError("database", "missing_user_id")
		return errors.New("user ID is required")
	}

	filter := bson.M{"user_id": checkin.UserID, "day_key": checkin.DayKey}
	update := bson.M{"$set": bson.M{
		"_id":        checkin.CheckinID,
		"user_id":    checkin.UserID,
		"day_key":    checkin.DayKey,
		"mood":       checkin.Mood,
		"energy":     checkin.Energy,
		"stress":     checkin.Stress,
		"note":       checkin.Note,
		"created_at": checkin.CreatedAt,
	}}

	_, err := r.MongoCollection.UpdateOne(ctx, filter, update,
		options.Update().SetUpsert(true))
	if err != nil {
		utils.TrackError("database", "checkin_upsert_failed")
		return err
	}
	return nil
}

// GetCheckinsInRange fetches check-ins in an inclusive day key window,
// oldest first.
func (r *WellbeingRepo) GetCheckinsInRange(ctx context.Context, userID string, fromKey, toKey string) ([]*model.WellbeingCheckin, error) {
	timer := utils.TrackDBOperation("find", "wellbeing_checkins")
	defer timer.ObserveDuration()

	opts := options.Find().SetSort(bson.D{{Key: "day_key", Value: 1}})
	var checkins []*model.WellbeingCheckin
	cursor, err := r.MongoCollection.Find(ctx, bson.M{
		"user_id": userID,
		"day_key": bson.M{"$gte": fromKey, "$lte": toKey},
	}, opts)
	if err != nil {
		utils.TrackError("database", "checkin_fetch_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &checkins); err != nil {
		utils.TrackError("database", "checkin_decode_failed")
		return nil, err
	}
	return checkins, nil
}
