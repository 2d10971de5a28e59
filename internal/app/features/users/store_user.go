// internal/app/features/users/store_user.go
package users

import (
	"context"
	"net/http"

	profilestore "github.com/chapterhub/chapterhub/internal/app/store/profiles"
	userstore "github.com/chapterhub/chapterhub/internal/app/store/users"
	"github.com/chapterhub/chapterhub/internal/app/system/auth"
	"github.com/chapterhub/chapterhub/internal/app/system/respond"
	"github.com/chapterhub/chapterhub/internal/app/system/timeouts"
	"github.com/chapterhub/chapterhub/internal/domain/models"
	"go.uber.org/zap"
)

// storeUserRequest mirrors the onboarding form. Optional pointer fields keep
// patch semantics: absent fields leave stored values untouched.
type storeUserRequest struct {
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	Role        string    `json:"role"`
	SchoolName  *string   `json:"school_name,omitempty"`
	ChapterName *string   `json:"chapter_name,omitempty"`
	State       *string   `json:"state,omitempty"`
	Interests   *[]string `json:"interests,omitempty"`
}

type storeUserResponse struct {
	ID   string       `json:"id"`
	User *models.User `json:"user"`
}

// HandleStoreUser upserts the user bound to the caller's identity.
// POST /users
//
// Unauthenticated callers are not rejected: the session middleware mints them
// a unique anonymous identity, so the record binds to that identity instead of
// a shared guest sentinel. If the upsert inserts a new user, the initial
// zero-state profile is created as a compensating second write; the two writes
// are not atomic, and GetOrCreate tolerates the gap.
func (h *Handler) HandleStoreUser(w http.ResponseWriter, r *http.Request) {
	var req storeUserRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, h.Log, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	usrStore := userstore.New(h.DB)
	u, created, err := usrStore.Upsert(ctx, auth.Identity(r), userstore.UpsertInput{
		Email:       req.Email,
		DisplayName: req.DisplayName,
		Role:        req.Role,
		SchoolName:  req.SchoolName,
		ChapterName: req.ChapterName,
		State:       req.State,
		Interests:   req.Interests,
	})
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}

	if created {
		if _, err := profilestore.New(h.DB).GetOrCreate(ctx, u.ID); err != nil {
			// The user row exists; the profile will be lazily created on the
			// next progression call, so log and keep going.
			h.Log.Warn("initial profile create failed after user insert",
				zap.String("user_id", u.ID.Hex()), zap.Error(err))
		}
	}

	respond.JSON(w, http.StatusOK, storeUserResponse{ID: u.ID.Hex(), User: u})
}
