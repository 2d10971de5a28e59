package userstore

// Terminology: User Identifiers
//   - UserID / userID / user_id: The MongoDB ObjectID (_id) that uniquely identifies a user record
//   - IdentityToken / identity_token: The opaque credential identifier resolved by the auth layer

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
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("users")}
}

// GetByID loads a user by ObjectID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&u); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperr.New(apperr.NotFound, "user not found")
		}
		return nil, err
	}
	return &u, nil
}

// GetByIdentity loads the user bound to an identity token. Returns a NotFound
// apperr when the identity has no user record.
func (s *Store) GetByIdentity(ctx context.Context, token string) (*models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"identity_token": token}).Decode(&u); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperr.New(apperr.NotFound, "user not found")
		}
		return nil, err
	}
	return &u, nil
}

// GetByEmail looks up a user by case-insensitive email.
func (s *Store) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"email": normalize.Email(email)}).Decode(&u); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperr.New(apperr.NotFound, "user not found")
		}
		return nil, err
	}
	return &u, nil
}

// ListByChapter returns all users tagged with the given chapter name.
func (s *Store) ListByChapter(ctx context.Context, chapter string) ([]models.User, error) {
	cur, err := s.c.Find(ctx, bson.M{"chapter_name": normalize.Chapter(chapter)},
		options.Find().SetSort(bson.D{{Key: "display_name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.User
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpsertInput carries the onboarding fields. Optional pointer fields are
// patch-semantics: nil leaves the stored value untouched, non-nil sets it
// (including to the empty string).
type UpsertInput struct {
	Email       string
	DisplayName string
	Role        string
	AuthMethod  string
	SchoolName  *string
	ChapterName *string
	State       *string
	Interests   *[]string
}

// Upsert creates or patches the user bound to identityToken. Present fields
// overwrite, absent fields are left untouched. Returns the resulting user and
// whether a new record was inserted, so the caller can create the initial
// zero-state profile as its compensating second write.
func (s *Store) Upsert(ctx context.Context, identityToken string, in UpsertInput) (*models.User, bool, error) {
	if identityToken == "" {
		return nil, false, apperr.New(apperr.Unauthenticated, "no identity resolved")
	}
	role := normalize.Role(in.Role)
	if role == "" {
		role = "member"
	}
	if !authz.ValidUserRole(role) {
		return nil, false, apperr.Newf(apperr.InvalidArgument, "role must be member, officer, or adviser")
	}
	email := normalize.Email(in.Email)
	if email == "" {
		return nil, false, apperr.New(apperr.InvalidArgument, "email is required")
	}

	now := time.Now().UTC()
	set := bson.M{
		"email":        email,
		"display_name": normalize.Name(in.DisplayName),
		"role":         role,
		"updated_at":   now,
	}
	if in.AuthMethod != "" {
		set["auth_method"] = in.AuthMethod
	}
	if in.SchoolName != nil {
		set["school_name"] = normalize.Name(*in.SchoolName)
	}
	if in.ChapterName != nil {
		set["chapter_name"] = normalize.Chapter(*in.ChapterName)
	}
	if in.State != nil {
		set["state"] = normalize.Name(*in.State)
	}
	if in.Interests != nil {
		set["interests"] = *in.Interests
	}

	update := bson.M{
		"$set": set,
		"$setOnInsert": bson.M{
			"_id":            primitive.NewObjectID(),
			"identity_token": identityToken,
			"created_at":     now,
		},
	}

	res, err := s.c.UpdateOne(ctx, bson.M{"identity_token": identityToken}, update,
		options.Update().SetUpsert(true))
	if err != nil {
		if wafflemongo.IsDup(err) {
			return nil, false, apperr.New(apperr.InvalidArgument, "a user with this email already exists")
		}
		return nil, false, err
	}

	u, err := s.GetByIdentity(ctx, identityToken)
	if err != nil {
		return nil, false, err
	}
	return u, res.UpsertedCount > 0, nil
}

// Patch holds the fields updateUser may change. nil fields are skipped.
type Patch struct {
	DisplayName *string
	SchoolName  *string
	ChapterName *string
	State       *string
	Interests   *[]string
}

// PatchByIdentity updates only the supplied fields on the user bound to the
// identity token. Unauthenticated without a token, NotFound when the identity
// has no user record.
func (s *Store) PatchByIdentity(ctx context.Context, identityToken string, p Patch) (*models.User, error) {
	if identityToken == "" {
		return nil, apperr.New(apperr.Unauthenticated, "no identity resolved")
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if p.DisplayName != nil {
		set["display_name"] = normalize.Name(*p.DisplayName)
	}
	if p.SchoolName != nil {
		set["school_name"] = normalize.Name(*p.SchoolName)
	}
	if p.ChapterName != nil {
		set["chapter_name"] = normalize.Chapter(*p.ChapterName)
	}
	if p.State != nil {
		set["state"] = normalize.Name(*p.State)
	}
	if p.Interests != nil {
		set["interests"] = *p.Interests
	}

	res, err := s.c.UpdateOne(ctx, bson.M{"identity_token": identityToken}, bson.M{"$set": set})
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, apperr.New(apperr.NotFound, "user not found")
	}
	return s.GetByIdentity(ctx, identityToken)
}

// CreateWithPassword inserts a password-auth user. Used by email/password
// signup; duplicate emails are rejected.
func (s *Store) CreateWithPassword(ctx context.Context, identityToken, email, displayName, role, passwordHash string) (*models.User, error) {
	role = normalize.Role(role)
	if !authz.ValidUserRole(role) {
		return nil, apperr.New(apperr.InvalidArgument, "role must be member, officer, or adviser")
	}
	now := time.Now().UTC()
	u := models.User{
		ID:            primitive.NewObjectID(),
		IdentityToken: identityToken,
		Email:         normalize.Email(email),
		DisplayName:   normalize.Name(displayName),
		Role:          role,
		AuthMethod:    "password",
		PasswordHash:  &passwordHash,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if u.Email == "" {
		return nil, apperr.New(apperr.InvalidArgument, "email is required")
	}
	if _, err := s.c.InsertOne(ctx, u); err != nil {
		if wafflemongo.IsDup(err) {
			return nil, apperr.New(apperr.InvalidArgument, "a user with this email already exists")
		}
		return nil, err
	}
	return &u, nil
}
