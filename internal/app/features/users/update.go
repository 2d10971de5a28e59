// internal/app/features/users/update.go
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

type updateUserRequest struct {
	DisplayName *string   `json:"display_name,omitempty"`
	SchoolName  *string   `json:"school_name,omitempty"`
	ChapterName *string   `json:"chapter_name,omitempty"`
	State       *string   `json:"state,omitempty"`
	Interests   *[]string `json:"interests,omitempty"`
}

type updateUserResponse struct {
	ID   string       `json:"id"`
	User *models.User `json:"user"`
}

// HandleUpdateUser patches only the supplied fields on the caller's user.
// PATCH /users/me
//
// Unlike HandleCurrentUser, this is strict: no resolved identity is a 401,
// and an identity with no user record is a 404.
func (h *Handler) HandleUpdateUser(w http.ResponseWriter, r *http.Request) {
	var req updateUserRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, h.Log, err)
		return
	}

	token := auth.Identity(r)
	if token == "" {
		respond.Error(w, h.Log, apperr.New(apperr.Unauthenticated, "no identity resolved"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	u, err := userstore.New(h.DB).PatchByIdentity(ctx, token, userstore.Patch{
		DisplayName: req.DisplayName,
		SchoolName:  req.SchoolName,
		ChapterName: req.ChapterName,
		State:       req.State,
		Interests:   req.Interests,
	})
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	respond.JSON(w, http.StatusOK, updateUserResponse{ID: u.ID.Hex(), User: u})
}
