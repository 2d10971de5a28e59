// internal/testutil/http.go
package testutil

import (
	"context"
	"net/http"
	"net/http/httptest"

	"github.com/chapterhub/chapterhub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TestUser represents user data for testing HTTP handlers.
type TestUser struct {
	ID            string
	Name          string
	Role          string
	IdentityToken string
}

// AdviserUser returns a TestUser with the adviser role.
func AdviserUser() TestUser {
	return TestUser{
		ID:            primitive.NewObjectID().Hex(),
		Name:          "Test Adviser",
		Role:          "adviser",
		IdentityToken: "anon-" + uuid.NewString(),
	}
}

// OfficerUser returns a TestUser with the officer role.
func OfficerUser() TestUser {
	return TestUser{
		ID:            primitive.NewObjectID().Hex(),
		Name:          "Test Officer",
		Role:          "officer",
		IdentityToken: "anon-" + uuid.NewString(),
	}
}

// MemberUser returns a TestUser with the member role.
func MemberUser() TestUser {
	return TestUser{
		ID:            primitive.NewObjectID().Hex(),
		Name:          "Test Member",
		Role:          "member",
		IdentityToken: "anon-" + uuid.NewString(),
	}
}

// WithUser adds a signed-in user to the request context for testing
// authenticated handlers. This bypasses the session middleware and injects
// the user directly.
func WithUser(r *http.Request, user TestUser) *http.Request {
	sessionUser := &auth.SessionUser{
		ID:            user.ID,
		Name:          user.Name,
		Role:          user.Role,
		IdentityToken: user.IdentityToken,
	}
	return auth.WithTestUser(r, sessionUser)
}

// WithIdentity adds a bare identity token to the request context, matching
// what the session middleware does for anonymous visitors.
func WithIdentity(r *http.Request, token string) *http.Request {
	return auth.WithTestIdentity(r, token)
}

// NewRequest creates an HTTP request for testing.
func NewRequest(method, target string) *http.Request {
	return httptest.NewRequest(method, target, nil)
}

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}
