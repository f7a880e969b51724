package model

import "time"

type HabitType string
type GoalValueType string
type HabitFrequency string
type BundleType string

const (
	HabitBoolean HabitType = "boolean"
	HabitNumber  HabitType = "number"
	HabitTime    HabitType = "time"
	HabitBundle  HabitType = "bundle"

	GoalValueBoolean GoalValueType = "boolean"
	GoalValueNumber  GoalValueType = "number"

	FrequencyDaily  HabitFrequency = "daily"
	FrequencyWeekly HabitFrequency = "weekly"
	FrequencyTotal  HabitFrequency = "total"

	BundleChecklist BundleType = "checklist"
	BundleChoice    BundleType = "choice"
)

// MaxFreezeCount caps the streak-protection token inventory per habit.
const MaxFreezeCount = 3

// HabitGoal is the per-habit completion rule evaluated by the day view.
type HabitGoal struct {
	Type      GoalValueType `bson:"type" json:"type"`
	Frequency HabitFrequency `bson:"frequency" json:"frequency"`
	Target    float64       `bson:"target,omitempty" json:"target,omitempty"`
	Unit      string        `bson:"unit,omitempty" json:"unit,omitempty"`
}

type BundleOption struct {
	OptionID     string `bson:"option_id" json:"option_id"`
	Label        string `bson:"label" json:"label"`
	ChildHabitID string `bson:"child_habit_id,omitempty" json:"child_habit_id,omitempty"`
}

// Habit is a trackable behavior. Bundle habits are parents whose completion
// is derived from their children's entries and are never logged directly.
type Habit struct {
	HabitID       string         `bson:"_id,omitempty" json:"id"`
	UserID        string         `bson:"user_id" json:"user_id"`
	CategoryID    string         `bson:"category_id,omitempty" json:"category_id,omitempty"`
	Name          string         `bson:"name" json:"name" binding:"required"`
	Goal          HabitGoal      `bson:"goal" json:"goal"`
	Type          HabitType      `bson:"habit_type,omitempty" json:"type,omitempty"`
	Archived      bool           `bson:"archived" json:"archived"`
	SubHabitIDs   []string       `bson:"sub_habit_ids,omitempty" json:"sub_habit_ids,omitempty"`
	BundleType    BundleType     `bson:"bundle_type,omitempty" json:"bundle_type,omitempty"`
	BundleOptions []BundleOption `bson:"bundle_options,omitempty" json:"bundle_options,omitempty"`
	FreezeCount   int            `bson:"freeze_count,omitempty" json:"freeze_count"`
	CreatedAt     time.Time      `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time      `bson:"updated_at" json:"updated_at"`
}

func (h *Habit) IsBundle() bool {
	return h.Type == HabitBundle
}
