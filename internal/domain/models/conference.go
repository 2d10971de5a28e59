// internal/domain/models/conference.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Conference levels.
const (
	ConferenceRegion   = "region"
	ConferenceState    = "state"
	ConferenceNational = "national"
)

// Conference is a multi-day organization conference (regional through national).
type Conference struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name     string             `bson:"name" json:"name"`
	Location string             `bson:"location,omitempty" json:"location,omitempty"`
	Level    string             `bson:"level" json:"level"` // region | state | national
	StartsAt time.Time          `bson:"starts_at" json:"starts_at"`
	EndsAt   time.Time          `bson:"ends_at" json:"ends_at"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
