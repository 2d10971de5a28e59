// internal/app/system/indexes/indexes.go
package indexes

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

/*
EnsureAll is called at startup. Each ensure* function is idempotent.
We aggregate errors so any problem is visible and startup can fail fast.
*/
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string

	if err := ensureUsers(ctx, db); err != nil {
		problems = append(problems, "users: "+err.Error())
	}
	if err := ensureProfiles(ctx, db); err != nil {
		problems = append(problems, "profiles: "+err.Error())
	}
	if err := ensureChapterMembers(ctx, db); err != nil {
		problems = append(problems, "chapter_members: "+err.Error())
	}
	if err := ensureAnnouncements(ctx, db); err != nil {
		problems = append(problems, "announcements: "+err.Error())
	}
	if err := ensureMeetings(ctx, db); err != nil {
		problems = append(problems, "meetings: "+err.Error())
	}
	if err := ensureConferences(ctx, db); err != nil {
		problems = append(problems, "conferences: "+err.Error())
	}
	if err := ensureCompetitiveEvents(ctx, db); err != nil {
		problems = append(problems, "competitive_events: "+err.Error())
	}
	if err := ensureOAuthState(ctx, db); err != nil {
		problems = append(problems, "oauth_state: "+err.Error())
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

func ensureIndexSet(ctx context.Context, coll *mongo.Collection, models []mongo.IndexModel) error {
	for _, m := range models {
		name := ""
		if m.Options != nil && m.Options.Name != nil {
			name = *m.Options.Name
		}
		start := time.Now()
		if _, err := coll.Indexes().CreateOne(ctx, m); err != nil {
			// An equivalent index may already exist under a different name
			// (common after manual schema changes); treat that as reusable.
			if strings.Contains(err.Error(), "IndexOptionsConflict") ||
				strings.Contains(err.Error(), "already exists") {
				zap.L().Info("reusing existing index",
					zap.String("collection", coll.Name()),
					zap.String("name", name))
				continue
			}
			return err
		}
		zap.L().Info("ensured index",
			zap.String("collection", coll.Name()),
			zap.String("name", name),
			zap.String("took", time.Since(start).String()))
	}
	return nil
}

func unique(name string) *options.IndexOptions {
	return options.Index().SetName(name).SetUnique(true)
}

func plain(name string) *options.IndexOptions {
	return options.Index().SetName(name)
}

// users: at most one User per identity token and per email.
func ensureUsers(ctx context.Context, db *mongo.Database) error {
	return ensureIndexSet(ctx, db.Collection("users"), []mongo.IndexModel{
		{Keys: bson.D{{Key: "identity_token", Value: 1}}, Options: unique("uniq_identity_token")},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique("uniq_email")},
		{Keys: bson.D{{Key: "chapter_name", Value: 1}}, Options: plain("by_chapter")},
	})
}

// profiles: exactly one Profile per user.
func ensureProfiles(ctx context.Context, db *mongo.Database) error {
	return ensureIndexSet(ctx, db.Collection("profiles"), []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}}, Options: unique("uniq_user_id")},
	})
}

// chapter_members: roster lookups by chapter tag; one row per (chapter, email).
func ensureChapterMembers(ctx context.Context, db *mongo.Database) error {
	return ensureIndexSet(ctx, db.Collection("chapter_members"), []mongo.IndexModel{
		{Keys: bson.D{{Key: "chapter_name", Value: 1}, {Key: "last_name", Value: 1}}, Options: plain("by_chapter_lastname")},
		{Keys: bson.D{{Key: "chapter_name", Value: 1}, {Key: "email", Value: 1}}, Options: unique("uniq_chapter_email")},
	})
}

func ensureAnnouncements(ctx context.Context, db *mongo.Database) error {
	return ensureIndexSet(ctx, db.Collection("announcements"), []mongo.IndexModel{
		{Keys: bson.D{{Key: "pinned", Value: -1}, {Key: "created_at", Value: -1}}, Options: plain("feed_order")},
	})
}

func ensureMeetings(ctx context.Context, db *mongo.Database) error {
	return ensureIndexSet(ctx, db.Collection("meetings"), []mongo.IndexModel{
		{Keys: bson.D{{Key: "date", Value: 1}}, Options: plain("by_date")},
	})
}

func ensureConferences(ctx context.Context, db *mongo.Database) error {
	return ensureIndexSet(ctx, db.Collection("conferences"), []mongo.IndexModel{
		{Keys: bson.D{{Key: "starts_at", Value: 1}}, Options: plain("by_start")},
		{Keys: bson.D{{Key: "level", Value: 1}}, Options: plain("by_level")},
	})
}

func ensureCompetitiveEvents(ctx context.Context, db *mongo.Database) error {
	return ensureIndexSet(ctx, db.Collection("competitive_events"), []mongo.IndexModel{
		{Keys: bson.D{{Key: "name", Value: 1}}, Options: unique("uniq_name")},
		{Keys: bson.D{{Key: "category", Value: 1}}, Options: plain("by_category")},
	})
}

// oauth_state: short-lived Google sign-in nonces, expired by TTL.
func ensureOAuthState(ctx context.Context, db *mongo.Database) error {
	ttl := options.Index().SetName("ttl_expires").SetExpireAfterSeconds(0)
	return ensureIndexSet(ctx, db.Collection("oauth_state"), []mongo.IndexModel{
		{Keys: bson.D{{Key: "state", Value: 1}}, Options: unique("uniq_state")},
		{Keys: bson.D{{Key: "expires_at", Value: 1}}, Options: ttl},
	})
}
