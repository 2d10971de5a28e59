package announcementstore

import (
	"context"
	"strings"
	"time"

	"github.com/chapterhub/chapterhub/internal/app/system/apperr"
	"github.com/chapterhub/chapterhub/internal/app/system/htmlsanitize"
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
	return &Store{c: db.Collection("announcements")}
}

// Create inserts a news-feed item. The HTML body is sanitized before it is
// stored, so nothing downstream ever sees unsafe markup.
func (s *Store) Create(ctx context.Context, title, content string, authorID primitive.ObjectID, authorName string, pinned bool) (*models.Announcement, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, apperr.New(apperr.InvalidArgument, "title is required")
	}

	a := models.Announcement{
		ID:         primitive.NewObjectID(),
		Title:      title,
		Content:    htmlsanitize.Sanitize(content),
		AuthorID:   authorID,
		AuthorName: authorName,
		Pinned:     pinned,
		CreatedAt:  time.Now().UTC(),
	}
	if _, err := s.c.InsertOne(ctx, a); err != nil {
		return nil, err
	}
	return &a, nil
}

// List returns the feed: pinned items first, then newest first.
func (s *Store) List(ctx context.Context, limit int64) ([]models.Announcement, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "pinned", Value: -1}, {Key: "created_at", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.Announcement{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes one announcement. NotFound when id does not resolve.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return apperr.New(apperr.NotFound, "announcement not found")
	}
	return nil
}
