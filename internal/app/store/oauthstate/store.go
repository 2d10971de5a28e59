package oauthstate

import (
	"context"
	"time"

	"github.com/chapterhub/chapterhub/internal/app/system/apperr"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Store persists short-lived OAuth state nonces so the Google callback can
// verify the round trip even across instances. Expired nonces are reaped by
// the TTL index on expires_at.
type Store struct {
	c   *mongo.Collection
	ttl time.Duration
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("oauth_state"), ttl: 10 * time.Minute}
}

type stateDoc struct {
	ID        primitive.ObjectID `bson:"_id"`
	State     string             `bson:"state"`
	ExpiresAt time.Time          `bson:"expires_at"`
}

// Create mints and persists a new state nonce.
func (s *Store) Create(ctx context.Context) (string, error) {
	doc := stateDoc{
		ID:        primitive.NewObjectID(),
		State:     uuid.NewString(),
		ExpiresAt: time.Now().UTC().Add(s.ttl),
	}
	if _, err := s.c.InsertOne(ctx, doc); err != nil {
		return "", err
	}
	return doc.State, nil
}

// Consume validates and deletes a state nonce. A missing or expired nonce is
// InvalidArgument — the callback must not proceed.
func (s *Store) Consume(ctx context.Context, state string) error {
	var doc stateDoc
	err := s.c.FindOneAndDelete(ctx, bson.M{"state": state}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return apperr.New(apperr.InvalidArgument, "invalid oauth state")
	}
	if err != nil {
		return err
	}
	if time.Now().UTC().After(doc.ExpiresAt) {
		return apperr.New(apperr.InvalidArgument, "oauth state expired")
	}
	return nil
}
