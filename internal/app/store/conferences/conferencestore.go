package conferencestore

import (
	"context"
	"strings"
	"time"

	"github.com/chapterhub/chapterhub/internal/app/system/apperr"
	"github.com/chapterhub/chapterhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("conferences")}
}

func validLevel(level string) bool {
	switch level {
	case models.ConferenceRegion, models.ConferenceState, models.ConferenceNational:
		return true
	}
	return false
}

// Create inserts a conference record.
func (s *Store) Create(ctx context.Context, name, location, level string, startsAt, endsAt time.Time) (*models.Conference, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperr.New(apperr.InvalidArgument, "name is required")
	}
	level = strings.ToLower(strings.TrimSpace(level))
	if !validLevel(level) {
		return nil, apperr.New(apperr.InvalidArgument, "level must be region, state, or national")
	}
	if startsAt.IsZero() || endsAt.IsZero() || endsAt.Before(startsAt) {
		return nil, apperr.New(apperr.InvalidArgument, "conference dates are invalid")
	}

	c := models.Conference{
		ID:        primitive.NewObjectID(),
		Name:      name,
		Location:  strings.TrimSpace(location),
		Level:     level,
		StartsAt:  startsAt.UTC(),
		EndsAt:    endsAt.UTC(),
		CreatedAt: time.Now().UTC(),
	}
	if _, err := s.c.InsertOne(ctx, c); err != nil {
		return nil, err
	}
	return &c, nil
}

// List returns conferences ordered by start date. An empty level returns all
// levels; otherwise only the given level.
func (s *Store) List(ctx context.Context, level string) ([]models.Conference, error) {
	filter := bson.M{}
	if level != "" {
		level = strings.ToLower(strings.TrimSpace(level))
		if !validLevel(level) {
			return nil, apperr.New(apperr.InvalidArgument, "level must be region, state, or national")
		}
		filter["level"] = level
	}

	cur, err := s.c.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "starts_at", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.Conference{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes one conference. NotFound when id does not resolve.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return apperr.New(apperr.NotFound, "conference not found")
	}
	return nil
}
