// internal/domain/models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents an authenticated account: members, officers, and advisers.
//
// NOTE:
//   - IdentityToken is the opaque credential identifier resolved by the auth
//     layer (one per session-identity). Anonymous sessions get a minted
//     "anon-<uuid>" token, never a shared sentinel.
//   - ChapterName is a string tag, not a foreign key; chapters are not a
//     first-class stored entity. Roster rows live in chapter_members.
type User struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	IdentityToken string             `bson:"identity_token" json:"-"`
	Email         string             `bson:"email" json:"email"`
	DisplayName   string             `bson:"display_name" json:"display_name"`
	Role          string             `bson:"role" json:"role"` // member | officer | adviser
	AuthMethod    string             `bson:"auth_method,omitempty" json:"auth_method,omitempty"`
	PasswordHash  *string            `bson:"password_hash,omitempty" json:"-"`
	SchoolName    string             `bson:"school_name,omitempty" json:"school_name,omitempty"`
	ChapterName   string             `bson:"chapter_name,omitempty" json:"chapter_name,omitempty"`
	State         string             `bson:"state,omitempty" json:"state,omitempty"`
	Interests     []string           `bson:"interests,omitempty" json:"interests,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
