// internal/testutil/fixtures.go
package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/chapterhub/chapterhub/internal/domain/models"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateUser inserts a user with a minted identity token.
func (f *Fixtures) CreateUser(ctx context.Context, displayName, email, role string) models.User {
	f.t.Helper()

	now := time.Now().UTC()
	u := models.User{
		ID:            primitive.NewObjectID(),
		IdentityToken: "anon-" + uuid.NewString(),
		Email:         email,
		DisplayName:   displayName,
		Role:          role,
		AuthMethod:    "anon",
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if _, err := f.db.Collection("users").InsertOne(ctx, u); err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}
	return u
}

// CreateProfile inserts a progression profile for the given user.
func (f *Fixtures) CreateProfile(ctx context.Context, userID primitive.ObjectID, totalXP int, badges []string) models.Profile {
	f.t.Helper()

	if badges == nil {
		badges = []string{}
	}
	now := time.Now().UTC()
	p := models.Profile{
		ID:        primitive.NewObjectID(),
		UserID:    userID,
		TotalXP:   totalXP,
		Level:     models.LevelForXP(totalXP),
		Badges:    badges,
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := f.db.Collection("profiles").InsertOne(ctx, p); err != nil {
		f.t.Fatalf("failed to create test profile: %v", err)
	}
	return p
}

// CreateRosterMember inserts a chapter roster entry.
func (f *Fixtures) CreateRosterMember(ctx context.Context, chapter, firstName, lastName, role, email string) models.ChapterMember {
	f.t.Helper()

	now := time.Now().UTC()
	m := models.ChapterMember{
		ID:          primitive.NewObjectID(),
		ChapterName: chapter,
		FirstName:   firstName,
		LastName:    lastName,
		Role:        role,
		Grade:       "11",
		Email:       email,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if _, err := f.db.Collection("chapter_members").InsertOne(ctx, m); err != nil {
		f.t.Fatalf("failed to create test roster member: %v", err)
	}
	return m
}

// CreateAnnouncement inserts a news-feed item.
func (f *Fixtures) CreateAnnouncement(ctx context.Context, title, content string, pinned bool) models.Announcement {
	f.t.Helper()

	a := models.Announcement{
		ID:         primitive.NewObjectID(),
		Title:      title,
		Content:    content,
		AuthorID:   primitive.NewObjectID(),
		AuthorName: "Test Adviser",
		Pinned:     pinned,
		CreatedAt:  time.Now().UTC(),
	}
	if _, err := f.db.Collection("announcements").InsertOne(ctx, a); err != nil {
		f.t.Fatalf("failed to create test announcement: %v", err)
	}
	return a
}

// CreateMeeting inserts a calendar entry at the given date.
func (f *Fixtures) CreateMeeting(ctx context.Context, title string, date time.Time) models.Meeting {
	f.t.Helper()

	m := models.Meeting{
		ID:        primitive.NewObjectID(),
		Title:     title,
		Date:      date,
		Location:  "Room 204",
		CreatedAt: time.Now().UTC(),
	}
	if _, err := f.db.Collection("meetings").InsertOne(ctx, m); err != nil {
		f.t.Fatalf("failed to create test meeting: %v", err)
	}
	return m
}

// CreateConference inserts a conference at the given level.
func (f *Fixtures) CreateConference(ctx context.Context, name, level string, startsAt time.Time) models.Conference {
	f.t.Helper()

	c := models.Conference{
		ID:        primitive.NewObjectID(),
		Name:      name,
		Location:  "Test Convention Center",
		Level:     level,
		StartsAt:  startsAt,
		EndsAt:    startsAt.Add(48 * time.Hour),
		CreatedAt: time.Now().UTC(),
	}
	if _, err := f.db.Collection("conferences").InsertOne(ctx, c); err != nil {
		f.t.Fatalf("failed to create test conference: %v", err)
	}
	return c
}

// CreateCompetitiveEvent inserts a directory entry.
func (f *Fixtures) CreateCompetitiveEvent(ctx context.Context, name, category string, levels []string) models.CompetitiveEvent {
	f.t.Helper()

	e := models.CompetitiveEvent{
		ID:        primitive.NewObjectID(),
		Name:      name,
		Category:  category,
		EntryType: models.EntryIndividual,
		Levels:    levels,
	}
	if _, err := f.db.Collection("competitive_events").InsertOne(ctx, e); err != nil {
		f.t.Fatalf("failed to create test competitive event: %v", err)
	}
	return e
}
