// internal/domain/models/profile.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// XPPerLevel is the fixed level-up threshold. The level invariant
// level == totalXP/XPPerLevel + 1 must hold after every XP-affecting write.
const XPPerLevel = 100

// Profile holds a user's gamified progression state. Exactly one profile
// exists per user; it is created lazily on first mutation.
//
// Version is bumped on every XP write and drives the compare-and-swap retry
// in the profile store, so concurrent AddXP calls cannot lose updates.
type Profile struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID  primitive.ObjectID `bson:"user_id" json:"user_id"`
	TotalXP int                `bson:"total_xp" json:"total_xp"`
	Level   int                `bson:"level" json:"level"`
	Badges  []string           `bson:"badges" json:"badges"`
	Version int64              `bson:"version" json:"-"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// LevelForXP derives the level for a given XP total.
func LevelForXP(xp int) int {
	if xp < 0 {
		xp = 0
	}
	return xp/XPPerLevel + 1
}
