package model

import "time"

type GoalType string
type AggregationMode string

const (
	GoalCumulative GoalType = "cumulative"
	GoalFrequency  GoalType = "frequency"
	GoalOnetime    GoalType = "onetime"

	AggregateCount AggregationMode = "count"
	AggregateSum   AggregationMode = "sum"
)

// Goal is a long-horizon target fed by one or more linked habits. Linked
// bundle habits are resolved to their children before any log lookup.
type Goal struct {
	GoalID          string          `bson:"_id,omitempty" json:"id"`
	UserID          string          `bson:"user_id" json:"user_id"`
	CategoryID      string          `bson:"category_id,omitempty" json:"category_id,omitempty"`
	Name            string          `bson:"name" json:"name" binding:"required"`
	Type            GoalType        `bson:"goal_type" json:"type"`
	TargetValue     float64         `bson:"target_value,omitempty" json:"target_value,omitempty"`
	Unit            string          `bson:"unit,omitempty" json:"unit,omitempty"`
	LinkedHabitIDs  []string        `bson:"linked_habit_ids,omitempty" json:"linked_habit_ids,omitempty"`
	AggregationMode AggregationMode `bson:"aggregation_mode,omitempty" json:"aggregation_mode,omitempty"`
	Deadline        *time.Time      `bson:"deadline,omitempty" json:"deadline,omitempty"`
	CompletedAt     *time.Time      `bson:"completed_at,omitempty" json:"completed_at,omitempty"`
	CreatedAt       time.Time       `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time       `bson:"updated_at" json:"updated_at"`
}

func (g *Goal) IsCompleted() bool {
	return g.CompletedAt != nil
}

// GoalManualLog is a manual progress contribution to a cumulative goal,
// summed alongside habit-derived values.
type GoalManualLog struct {
	LogID    string    `bson:"_id,omitempty" json:"id"`
	UserID   string    `bson:"user_id" json:"user_id"`
	GoalID   string    `bson:"goal_id" json:"goal_id"`
	Value    float64   `bson:"value" json:"value"`
	LoggedAt time.Time `bson:"logged_at" json:"logged_at"`
	Note     string    `bson:"note,omitempty" json:"note,omitempty"`
}

// DayProgress is one day's contribution toward a goal.
type DayProgress struct {
	DayKey string  `json:"day_key"`
	Value  float64 `json:"value"`
}

// GoalProgress is the derived progress view for a single goal.
type GoalProgress struct {
	GoalID            string        `json:"goal_id"`
	CurrentValue      float64       `json:"current_value"`
	TargetValue       float64       `json:"target_value"`
	Percent           int           `json:"percent"`
	LastSevenDays     []DayProgress `json:"last_seven_days"`
	LastThirtyDays    []DayProgress `json:"last_thirty_days"`
	InactivityWarning bool          `json:"inactivity_warning"`
}

// GoalWithProgress pairs a goal with its derived progress for list views.
type GoalWithProgress struct {
	Goal     *Goal         `json:"goal"`
	Progress *GoalProgress `json:"progress"`
}
