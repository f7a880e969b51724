package model

import "time"

type JournalEntry struct {
	JournalID string     `bson:"_id,omitempty" json:"id"`
	UserID    string     `bson:"user_id" json:"user_id"`
	DayKey    string     `bson:"day_key" json:"day_key"`
	Title     string     `bson:"title,omitempty" json:"title,omitempty"`
	Body      string     `bson:"body" json:"body" binding:"required"`
	Mood      string     `bson:"mood,omitempty" json:"mood,omitempty"`
	Tags      []string   `bson:"tags,omitempty" json:"tags,omitempty"`
	DeletedAt *time.Time `bson:"deleted_at,omitempty" json:"deleted_at,omitempty"`
	CreatedAt time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time  `bson:"updated_at" json:"updated_at"`
}
