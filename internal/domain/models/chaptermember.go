// internal/domain/models/chaptermember.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ChapterMember is a roster row for a chapter, distinct from a User account.
// Roster entries may predate real accounts (bulk-imported student lists), so
// the two representations are kept as separate read paths.
type ChapterMember struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ChapterName string             `bson:"chapter_name" json:"chapter_name"`
	FirstName   string             `bson:"first_name" json:"first_name"`
	LastName    string             `bson:"last_name" json:"last_name"`
	Role        string             `bson:"role" json:"role"` // member | officer | advisor
	Grade       string             `bson:"grade" json:"grade"`
	Email       string             `bson:"email" json:"email"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
