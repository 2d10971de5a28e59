package compeventstore

import (
	"context"
	"strings"

	"github.com/chapterhub/chapterhub/internal/app/system/apperr"
	"github.com/chapterhub/chapterhub/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type Store struct {
	c   *mongo.Collection
	log *zap.Logger
}

func New(db *mongo.Database, logger *zap.Logger) *Store {
	return &Store{c: db.Collection("competitive_events"), log: logger}
}

// List returns catalog entries ordered by name. Empty category/level match
// everything; otherwise both act as exact filters (level matches any entry
// whose level list contains it).
func (s *Store) List(ctx context.Context, category, level string) ([]models.CompetitiveEvent, error) {
	filter := bson.M{}
	if c := strings.TrimSpace(category); c != "" {
		filter["category"] = c
	}
	if l := strings.ToLower(strings.TrimSpace(level)); l != "" {
		filter["levels"] = l
	}

	cur, err := s.c.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.CompetitiveEvent{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Categories returns the distinct category names in the catalog.
func (s *Store) Categories(ctx context.Context) ([]string, error) {
	raw, err := s.c.Distinct(ctx, "category", bson.M{})
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out, nil
}

// Create adds a catalog entry. Duplicate names are rejected by the unique
// name index.
func (s *Store) Create(ctx context.Context, e models.CompetitiveEvent) (*models.CompetitiveEvent, error) {
	e.Name = strings.TrimSpace(e.Name)
	if e.Name == "" {
		return nil, apperr.New(apperr.InvalidArgument, "name is required")
	}
	if e.Category = strings.TrimSpace(e.Category); e.Category == "" {
		return nil, apperr.New(apperr.InvalidArgument, "category is required")
	}
	switch e.EntryType {
	case models.EntryIndividual, models.EntryTeam, models.EntryChapter:
	default:
		return nil, apperr.New(apperr.InvalidArgument, "entry_type must be individual, team, or chapter")
	}

	e.ID = primitive.NewObjectID()
	if _, err := s.c.InsertOne(ctx, e); err != nil {
		if wafflemongo.IsDup(err) {
			return nil, apperr.New(apperr.InvalidArgument, "an event with this name already exists")
		}
		return nil, err
	}
	return &e, nil
}

// SeedCatalog loads the standard competitive-events list into an empty
// collection. Called once at startup; a populated catalog is left untouched.
func (s *Store) SeedCatalog(ctx context.Context) (int, error) {
	n, err := s.c.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, err
	}
	if n > 0 {
		s.log.Info("competitive-events catalog already populated",
			zap.Int64("events", n))
		return 0, nil
	}

	docs := make([]interface{}, 0, len(catalog))
	for _, e := range catalog {
		e.ID = primitive.NewObjectID()
		docs = append(docs, e)
	}
	if _, err := s.c.InsertMany(ctx, docs); err != nil {
		return 0, err
	}
	s.log.Info("competitive-events catalog seeded", zap.Int("events", len(docs)))
	return len(docs), nil
}
