package rosterstore

import (
	"context"
	"time"

	"github.com/chapterhub/chapterhub/internal/app/system/apperr"
	"github.com/chapterhub/chapterhub/internal/app/system/authz"
	"github.com/chapterhub/chapterhub/internal/app/system/normalize"
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
	return &Store{c: db.Collection("chapter_members"), log: logger}
}

// List returns the roster for one chapter, ordered by last name. Exact
// chapter-tag match only; members of other chapters never appear.
func (s *Store) List(ctx context.Context, chapter string) ([]models.ChapterMember, error) {
	cur, err := s.c.Find(ctx, bson.M{"chapter_name": normalize.Chapter(chapter)},
		options.Find().SetSort(bson.D{{Key: "last_name", Value: 1}, {Key: "first_name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.ChapterMember{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CountByChapter returns the number of roster entries for a chapter.
func (s *Store) CountByChapter(ctx context.Context, chapter string) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{"chapter_name": normalize.Chapter(chapter)})
}

// CreateInput holds the fields for a new roster entry.
type CreateInput struct {
	ChapterName string
	FirstName   string
	LastName    string
	Role        string // member | officer | advisor
	Grade       string
	Email       string
}

// Create inserts a roster entry after normalizing and validating fields.
// The unique (chapter, email) index rejects duplicate rows for one person.
func (s *Store) Create(ctx context.Context, in CreateInput) (*models.ChapterMember, error) {
	role := normalize.Role(in.Role)
	if !authz.ValidRosterRole(role) {
		return nil, apperr.New(apperr.InvalidArgument, "role must be member, officer, or advisor")
	}
	chapter := normalize.Chapter(in.ChapterName)
	if chapter == "" {
		return nil, apperr.New(apperr.InvalidArgument, "chapter name is required")
	}
	email := normalize.Email(in.Email)
	if email == "" {
		return nil, apperr.New(apperr.InvalidArgument, "email is required")
	}

	now := time.Now().UTC()
	m := models.ChapterMember{
		ID:          primitive.NewObjectID(),
		ChapterName: chapter,
		FirstName:   normalize.Name(in.FirstName),
		LastName:    normalize.Name(in.LastName),
		Role:        role,
		Grade:       normalize.Name(in.Grade),
		Email:       email,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if _, err := s.c.InsertOne(ctx, m); err != nil {
		if wafflemongo.IsDup(err) {
			return nil, apperr.New(apperr.InvalidArgument, "this email is already on the chapter roster")
		}
		return nil, err
	}
	return &m, nil
}

// Update holds the four mutable roster fields; all are overwritten.
type Update struct {
	FirstName string
	LastName  string
	Grade     string
	Role      string
}

// Update overwrites the mutable fields of one roster entry. NotFound when id
// does not resolve.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, upd Update) error {
	role := normalize.Role(upd.Role)
	if !authz.ValidRosterRole(role) {
		return apperr.New(apperr.InvalidArgument, "role must be member, officer, or advisor")
	}

	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"first_name": normalize.Name(upd.FirstName),
		"last_name":  normalize.Name(upd.LastName),
		"grade":      normalize.Name(upd.Grade),
		"role":       role,
		"updated_at": time.Now().UTC(),
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return apperr.New(apperr.NotFound, "roster entry not found")
	}
	return nil
}

// Remove deletes one roster entry. NotFound when id does not resolve.
func (s *Store) Remove(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return apperr.New(apperr.NotFound, "roster entry not found")
	}
	return nil
}

// seedMembers is the demonstration roster inserted into empty chapters.
var seedMembers = []struct {
	First, Last, Role, Grade, Email string
}{
	{"Jordan", "Avery", "advisor", "", "j.avery@school.example"},
	{"Maya", "Chen", "officer", "12", "maya.chen@school.example"},
	{"Devon", "Brooks", "officer", "11", "devon.brooks@school.example"},
	{"Priya", "Natarajan", "member", "10", "priya.n@school.example"},
	{"Sam", "Oyelaran", "member", "9", "sam.o@school.example"},
	{"Lucia", "Reyes", "member", "11", "lucia.reyes@school.example"},
}

// Seed bulk-inserts the demonstration roster for a chapter. If the chapter
// already has any entries the call is an idempotent no-op (logged, not an
// error). Seeding is only ever reached through an explicit adviser action.
func (s *Store) Seed(ctx context.Context, chapter string) (int, error) {
	chapter = normalize.Chapter(chapter)
	if chapter == "" {
		return 0, apperr.New(apperr.InvalidArgument, "chapter name is required")
	}

	n, err := s.CountByChapter(ctx, chapter)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		s.log.Info("roster seed skipped, chapter already populated",
			zap.String("chapter", chapter),
			zap.Int64("existing", n))
		return 0, nil
	}

	now := time.Now().UTC()
	docs := make([]interface{}, 0, len(seedMembers))
	for _, m := range seedMembers {
		docs = append(docs, models.ChapterMember{
			ID:          primitive.NewObjectID(),
			ChapterName: chapter,
			FirstName:   m.First,
			LastName:    m.Last,
			Role:        m.Role,
			Grade:       m.Grade,
			Email:       m.Email,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}
	if _, err := s.c.InsertMany(ctx, docs); err != nil {
		return 0, err
	}
	s.log.Info("roster seeded with demonstration members",
		zap.String("chapter", chapter),
		zap.Int("inserted", len(docs)))
	return len(docs), nil
}
