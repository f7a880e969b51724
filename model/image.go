package model

import "time"

// RoutineImage stores routine illustration binaries in MongoDB rather than
// on the filesystem. Thumbnail is a downscaled PNG rendered at upload time.
type RoutineImage struct {
	ImageID     string    `bson:"_id,omitempty" json:"id"`
	UserID      string    `bson:"user_id" json:"user_id"`
	ContentType string    `bson:"content_type" json:"content_type"`
	Data        []byte    `bson:"data" json:"-"`
	Thumbnail   []byte    `bson:"thumbnail,omitempty" json:"-"`
	Size        int       `bson:"size" json:"size"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}
