// internal/app/system/authz/authz.go
package authz

import (
	"net/http"
	"strings"

	"github.com/chapterhub/chapterhub/internal/app/system/auth"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserCtx returns the user's role (lowercased), name, Mongo ObjectID, and a
// found flag. If no user is present in context or the user ID is malformed,
// it returns "visitor", "", NilObjectID, false — so ok=true always means a
// valid, authenticated user with a valid ObjectID.
func UserCtx(r *http.Request) (role string, name string, userID primitive.ObjectID, ok bool) {
	user, ok := auth.CurrentUser(r)
	if !ok {
		return "visitor", "", primitive.NilObjectID, false
	}
	userID, err := primitive.ObjectIDFromHex(user.ID)
	if err != nil {
		// Malformed user ID in session - fail closed.
		return "visitor", "", primitive.NilObjectID, false
	}
	return strings.ToLower(user.Role), user.Name, userID, true
}

// IsAdviser reports whether the current request's user is a chapter adviser.
func IsAdviser(r *http.Request) bool {
	role, _, _, ok := UserCtx(r)
	return ok && role == "adviser"
}

// IsOfficer reports whether the current request's user is a chapter officer.
func IsOfficer(r *http.Request) bool {
	role, _, _, ok := UserCtx(r)
	return ok && role == "officer"
}

// IsMember reports whether the current request's user is a member.
func IsMember(r *http.Request) bool {
	role, _, _, ok := UserCtx(r)
	return ok && role == "member"
}

// CanManageRoster reports whether the current user can create/edit/delete
// roster entries and post chapter content. Advisers and officers can.
func CanManageRoster(r *http.Request) bool {
	role, _, _, ok := UserCtx(r)
	return ok && (role == "adviser" || role == "officer")
}

// HasAnyRole reports whether the current request's user has any of the given
// roles. Returns false if no user is present.
func HasAnyRole(r *http.Request, roles ...string) bool {
	role, _, _, ok := UserCtx(r)
	if !ok {
		return false
	}
	for _, want := range roles {
		if role == strings.ToLower(strings.TrimSpace(want)) {
			return true
		}
	}
	return false
}

// ValidUserRole reports whether role is one of the account roles.
func ValidUserRole(role string) bool {
	switch role {
	case "member", "officer", "adviser":
		return true
	}
	return false
}

// ValidRosterRole reports whether role is one of the roster-entry roles.
// The roster spelling is "advisor"; account roles use "adviser". Both sets
// are closed enums.
func ValidRosterRole(role string) bool {
	switch role {
	case "member", "officer", "advisor":
		return true
	}
	return false
}
