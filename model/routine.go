package model

import "time"

// RoutineStep is one ordered step of a routine. A step that links a habit
// marks that habit as potential evidence when the routine is completed.
type RoutineStep struct {
	StepID        string `bson:"step_id" json:"step_id"`
	Name          string `bson:"name" json:"name"`
	Position      int    `bson:"position" json:"position"`
	LinkedHabitID string `bson:"linked_habit_id,omitempty" json:"linked_habit_id,omitempty"`
	DurationMin   int    `bson:"duration_min,omitempty" json:"duration_min,omitempty"`
}

type Routine struct {
	RoutineID string        `bson:"_id,omitempty" json:"id"`
	UserID    string        `bson:"user_id" json:"user_id"`
	Name      string        `bson:"name" json:"name" binding:"required"`
	Steps     []RoutineStep `bson:"steps,omitempty" json:"steps,omitempty"`
	ImageID   string        `bson:"image_id,omitempty" json:"image_id,omitempty"`
	Archived  bool          `bson:"archived" json:"archived"`
	CreatedAt time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time     `bson:"updated_at" json:"updated_at"`
}

// RoutineLog records one completion of a routine on a day.
type RoutineLog struct {
	LogID            string    `bson:"_id,omitempty" json:"id"`
	UserID           string    `bson:"user_id" json:"user_id"`
	RoutineID        string    `bson:"routine_id" json:"routine_id"`
	DayKey           string    `bson:"day_key" json:"day_key"`
	CompletedSteps   []string  `bson:"completed_steps,omitempty" json:"completed_steps,omitempty"`
	LoggedEntryIDs   []string  `bson:"logged_entry_ids,omitempty" json:"logged_entry_ids,omitempty"`
	CompletedAt      time.Time `bson:"completed_at" json:"completed_at"`
	DurationTotalMin int       `bson:"duration_total_min,omitempty" json:"duration_total_min,omitempty"`
}
