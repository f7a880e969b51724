package model

import "time"

// WellbeingCheckin is a daily self-report. Scores run 1..10.
type WellbeingCheckin struct {
	CheckinID string    `bson:"_id,omitempty" json:"id"`
	UserID    string    `bson:"user_id" json:"user_id"`
	DayKey    string    `bson:"day_key" json:"day_key" binding:"required"`
	Mood      int       `bson:"mood" json:"mood" binding:"required,min=1,max=10"`
	Energy    int       `bson:"energy,omitempty" json:"energy,omitempty"`
	Stress    int       `bson:"stress,omitempty" json:"stress,omitempty"`
	Note      string    `bson:"note,omitempty" json:"note,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// WellbeingSummary averages check-in scores over a window.
type WellbeingSummary struct {
	Days         int     `json:"days"`
	CheckinCount int     `json:"checkin_count"`
	AvgMood      float64 `json:"avg_mood"`
	AvgEnergy    float64 `json:"avg_energy"`
	AvgStress    float64 `json:"avg_stress"`
}
