// internal/domain/models/competitiveevent.go
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Competitive event entry types.
const (
	EntryIndividual = "individual"
	EntryTeam       = "team"
	EntryChapter    = "chapter"
)

// CompetitiveEvent is a catalog entry in the competitive-events directory.
// The catalog is seeded once at startup and read-mostly afterwards.
type CompetitiveEvent struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Category    string             `bson:"category" json:"category"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	EntryType   string             `bson:"entry_type" json:"entry_type"` // individual | team | chapter
	Levels      []string           `bson:"levels" json:"levels"`         // region | state | national
}
