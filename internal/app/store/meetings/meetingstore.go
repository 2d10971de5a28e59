package meetingstore

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
	return &Store{c: db.Collection("meetings")}
}

// Create inserts a calendar entry.
func (s *Store) Create(ctx context.Context, title, description string, date time.Time, location string) (*models.Meeting, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, apperr.New(apperr.InvalidArgument, "title is required")
	}
	if date.IsZero() {
		return nil, apperr.New(apperr.InvalidArgument, "date is required")
	}

	m := models.Meeting{
		ID:          primitive.NewObjectID(),
		Title:       title,
		Description: strings.TrimSpace(description),
		Date:        date.UTC(),
		Location:    strings.TrimSpace(location),
		CreatedAt:   time.Now().UTC(),
	}
	if _, err := s.c.InsertOne(ctx, m); err != nil {
		return nil, err
	}
	return &m, nil
}

// ListUpcoming returns meetings on or after now, soonest first.
func (s *Store) ListUpcoming(ctx context.Context, now time.Time) ([]models.Meeting, error) {
	return s.list(ctx, bson.M{"date": bson.M{"$gte": now.UTC()}}, 1)
}

// ListPast returns meetings before now, most recent first.
func (s *Store) ListPast(ctx context.Context, now time.Time) ([]models.Meeting, error) {
	return s.list(ctx, bson.M{"date": bson.M{"$lt": now.UTC()}}, -1)
}

// ListAll returns every meeting in date order.
func (s *Store) ListAll(ctx context.Context) ([]models.Meeting, error) {
	return s.list(ctx, bson.M{}, 1)
}

func (s *Store) list(ctx context.Context, filter bson.M, order int) ([]models.Meeting, error) {
	cur, err := s.c.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "date", Value: order}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.Meeting{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes one meeting. NotFound when id does not resolve.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return apperr.New(apperr.NotFound, "meeting not found")
	}
	return nil
}
