package profilestore

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

// casMaxAttempts bounds the compare-and-swap retry loop. Conflicts are rare
// (two writes to the same profile in the same instant), so a handful of
// attempts is plenty.
const casMaxAttempts = 5

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("profiles")}
}

// GetOrCreate returns the profile for userID, lazily creating the zero state
// (0 XP, level 1, no badges) if none exists. The upsert keyed on the unique
// user_id index guarantees at most one profile document per user even under
// repeated concurrent calls.
func (s *Store) GetOrCreate(ctx context.Context, userID primitive.ObjectID) (*models.Profile, error) {
	now := time.Now().UTC()
	update := bson.M{
		"$setOnInsert": bson.M{
			"_id":        primitive.NewObjectID(),
			"user_id":    userID,
			"total_xp":   0,
			"level":      1,
			"badges":     []string{},
			"version":    int64(0),
			"created_at": now,
			"updated_at": now,
		},
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var p models.Profile
	if err := s.c.FindOneAndUpdate(ctx, bson.M{"user_id": userID}, update, opts).Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Get returns the profile for userID, NotFound if none exists yet.
func (s *Store) Get(ctx context.Context, userID primitive.ObjectID) (*models.Profile, error) {
	var p models.Profile
	if err := s.c.FindOne(ctx, bson.M{"user_id": userID}).Decode(&p); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperr.New(apperr.NotFound, "profile not found")
		}
		return nil, err
	}
	return &p, nil
}

// XPResult is the outcome of an AddXP call.
type XPResult struct {
	TotalXP   int  `json:"total_xp"`
	Level     int  `json:"level"`
	LeveledUp bool `json:"leveled_up"`
}

// AddXP accrues amount XP and re-derives the level. Negative amounts are
// InvalidArgument and never mutate state.
//
// The read-modify-write is guarded by a version compare-and-swap: the write
// only lands if the profile is unchanged since the read, and conflicting
// writers retry. Two concurrent AddXP calls therefore both take effect
// instead of one silently losing.
func (s *Store) AddXP(ctx context.Context, userID primitive.ObjectID, amount int) (*XPResult, error) {
	if amount < 0 {
		return nil, apperr.New(apperr.InvalidArgument, "xp amount must not be negative")
	}

	for attempt := 0; attempt < casMaxAttempts; attempt++ {
		p, err := s.GetOrCreate(ctx, userID)
		if err != nil {
			return nil, err
		}

		newXP := p.TotalXP + amount
		newLevel := models.LevelForXP(newXP)

		res, err := s.c.UpdateOne(ctx,
			bson.M{"user_id": userID, "version": p.Version},
			bson.M{
				"$set": bson.M{
					"total_xp":   newXP,
					"level":      newLevel,
					"updated_at": time.Now().UTC(),
				},
				"$inc": bson.M{"version": 1},
			})
		if err != nil {
			return nil, err
		}
		if res.ModifiedCount == 1 {
			return &XPResult{
				TotalXP:   newXP,
				Level:     newLevel,
				LeveledUp: newLevel > p.Level,
			}, nil
		}
		// Version moved under us; re-read and retry.
	}
	return nil, apperr.New(apperr.Internal, "profile write conflict, retries exhausted")
}

// BadgeResult is the outcome of an AwardBadge call.
type BadgeResult struct {
	Awarded bool   `json:"awarded"`
	Message string `json:"message,omitempty"`
}

// AwardBadge appends a badge to the user's badge set. Awarding a badge the
// user already holds reports Awarded=false without mutating; the guarded
// $addToSet keeps the set duplicate-free even under concurrent awards.
func (s *Store) AwardBadge(ctx context.Context, userID primitive.ObjectID, name string) (*BadgeResult, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperr.New(apperr.InvalidArgument, "badge name must not be empty")
	}

	if _, err := s.GetOrCreate(ctx, userID); err != nil {
		return nil, err
	}

	res, err := s.c.UpdateOne(ctx,
		bson.M{"user_id": userID, "badges": bson.M{"$ne": name}},
		bson.M{
			"$addToSet": bson.M{"badges": name},
			"$set":      bson.M{"updated_at": time.Now().UTC()},
			"$inc":      bson.M{"version": 1},
		})
	if err != nil {
		return nil, err
	}
	if res.ModifiedCount == 0 {
		return &BadgeResult{Awarded: false, Message: "Badge already awarded"}, nil
	}
	return &BadgeResult{Awarded: true}, nil
}

// Update is the administrative escape hatch: it sets exactly the supplied
// fields and deliberately does NOT re-derive level from XP — callers setting
// both are responsible for their consistency.
type Update struct {
	TotalXP *int
	Level   *int
	Badges  *[]string
}

// Update applies an administrative overwrite to the user's profile, creating
// the zero state first if the user has none yet.
func (s *Store) Update(ctx context.Context, userID primitive.ObjectID, upd Update) (primitive.ObjectID, error) {
	p, err := s.GetOrCreate(ctx, userID)
	if err != nil {
		return primitive.NilObjectID, err
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if upd.TotalXP != nil {
		if *upd.TotalXP < 0 {
			return primitive.NilObjectID, apperr.New(apperr.InvalidArgument, "total_xp must not be negative")
		}
		set["total_xp"] = *upd.TotalXP
	}
	if upd.Level != nil {
		if *upd.Level < 1 {
			return primitive.NilObjectID, apperr.New(apperr.InvalidArgument, "level must be at least 1")
		}
		set["level"] = *upd.Level
	}
	if upd.Badges != nil {
		set["badges"] = dedupe(*upd.Badges)
	}

	_, err = s.c.UpdateOne(ctx,
		bson.M{"user_id": userID},
		bson.M{"$set": set, "$inc": bson.M{"version": 1}})
	if err != nil {
		return primitive.NilObjectID, err
	}
	return p.ID, nil
}

// dedupe removes duplicate badge names, preserving first-seen order.
func dedupe(badges []string) []string {
	seen := make(map[string]struct{}, len(badges))
	out := make([]string, 0, len(badges))
	for _, b := range badges {
		b = strings.TrimSpace(b)
		if b == "" {
			continue
		}
		if _, dup := seen[b]; dup {
			continue
		}
		seen[b] = struct{}{}
		out = append(out, b)
	}
	return out
}
