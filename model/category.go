package model

import "time"

// Category groups habits and goals; it surfaces as an identity node in the
// skill tree.
type Category struct {
	CategoryID string    `bson:"_id,omitempty" json:"id"`
	UserID     string    `bson:"user_id" json:"user_id"`
	Name       string    `bson:"name" json:"name" binding:"required"`
	Color      string    `bson:"color,omitempty" json:"color,omitempty"`
	Icon       string    `bson:"icon,omitempty" json:"icon,omitempty"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time `bson:"updated_at" json:"updated_at"`
}
