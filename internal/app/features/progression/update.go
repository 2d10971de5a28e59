// internal/app/features/progression/update.go
package progression

import (
	"context"
	"net/http"

	profilestore "github.com/chapterhub/chapterhub/internal/app/store/profiles"
	"github.com/chapterhub/chapterhub/internal/app/system/respond"
	"github.com/chapterhub/chapterhub/internal/app/system/timeouts"
)

type updateProfileRequest struct {
	UserID  string    `json:"user_id"`
	TotalXP *int      `json:"total_xp,omitempty"`
	Level   *int      `json:"level,omitempty"`
	Badges  *[]string `json:"badges,omitempty"`
}

type updateProfileResponse struct {
	ID string `json:"id"`
}

// HandleUpdateProfile is the administrative overwrite (adviser-gated at the
// route). It sets exactly the supplied fields and does NOT re-derive level
// from XP — callers supplying both own their consistency. 404 when the
// target user does not exist.
// PUT /profile
func (h *Handler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req updateProfileRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, h.Log, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	u, err := h.resolveUser(ctx, r, req.UserID)
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}

	id, err := profilestore.New(h.DB).Update(ctx, u.ID, profilestore.Update{
		TotalXP: req.TotalXP,
		Level:   req.Level,
		Badges:  req.Badges,
	})
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	respond.JSON(w, http.StatusOK, updateProfileResponse{ID: id.Hex()})
}
