package repository

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func SetupIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	entriesCollection := db.Collection("habit_entries")
	habitsCollection := db.Collection("habits")
	goalsCollection := db.Collection("goals")
	goalLogsCollection := db.Collection("goal_manual_logs")
	routineLogsCollection := db.Collection("routine_logs")
	checkinsCollection := db.Collection("wellbeing_checkins")

	entryIndexes := []mongo.IndexModel{
		// Per-habit day lookup, the hot path of every aggregation
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "habit_id", Value: 1},
				{Key: "day_key", Value: 1},
			},
			Options: options.Index().
				SetName("user_habit_day").
				SetUnique(false),
		},
		// Month-window scans for the dashboard read model
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "day_key", Value: 1},
			},
			Options: options.Index().
				SetName("user_day"),
		},
	}

	habitIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "archived", Value: 1},
			},
			Options: options.Index().
				SetName("user_active_habits"),
		},
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "category_id", Value: 1},
			},
			Options: options.Index().
				SetName("user_category_habits"),
		},
	}

	goalIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}},
			Options: options.Index().SetName("user_goals"),
		},
	}

	goalLogIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "goal_id", Value: 1},
			},
			Options: options.Index().SetName("user_goal_logs"),
		},
	}

	routineLogIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "day_key", Value: 1},
			},
			Options: options.Index().SetName("user_routine_day"),
		},
	}

	checkinIndexes := []mongo.IndexModel{
		// One check-in per user per day
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "day_key", Value: 1},
			},
			Options: options.Index().
				SetName("user_checkin_day").
				SetUnique(true),
		},
	}

	targets := []struct {
		coll    *mongo.Collection
		indexes []mongo.IndexModel
	}{
		{entriesCollection, entryIndexes},
		{habitsCollection, habitIndexes},
		{goalsCollection, goalIndexes},
		{goalLogsCollection, goalLogIndexes},
		{routineLogsCollection, routineLogIndexes},
		{checkinsCollection, checkinIndexes},
	}

	for _, target := range targets {
		if _, err := target.coll.Indexes().CreateMany(ctx, target.indexes); err != nil {
			return fmt.Errorf("failed to create indexes for %s: %w", target.coll.Name(), err)
		}
		log.Printf("Indexes ensured for %s", target.coll.Name())
	}

	return nil
}
