// internal/app/features/users/me.go
package users

import (
	"context"
	"net/http"

	userstore "github.com/chapterhub/chapterhub/internal/app/store/users"
	"github.com/chapterhub/chapterhub/internal/app/system/apperr"
	"github.com/chapterhub/chapterhub/internal/app/system/auth"
	"github.com/chapterhub/chapterhub/internal/app/system/respond"
	"github.com/chapterhub/chapterhub/internal/app/system/timeouts"
	"github.com/chapterhub/chapterhub/internal/domain/models"
)

type currentUserResponse struct {
	User *models.User `json:"user"`
}

// HandleCurrentUser returns the user bound to the caller's identity.
// GET /users/me
//
// Deliberately returns 200 with a null user — never an error — when the
// identity has no user record. updateUser is the strict one; this asymmetry
// is part of the contract.
func (h *Handler) HandleCurrentUser(w http.ResponseWriter, r *http.Request) {
	token := auth.Identity(r)
	if token == "" {
		respond.JSON(w, http.StatusOK, currentUserResponse{User: nil})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	u, err := userstore.New(h.DB).GetByIdentity(ctx, token)
	if err != nil {
		if apperr.IsNotFound(err) {
			respond.JSON(w, http.StatusOK, currentUserResponse{User: nil})
			return
		}
		respond.Error(w, h.Log, err)
		return
	}
	respond.JSON(w, http.StatusOK, currentUserResponse{User: u})
}
