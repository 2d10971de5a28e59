// internal/app/features/progression/badge.go
package progression

import (
	"context"
	"net/http"

	profilestore "github.com/chapterhub/chapterhub/internal/app/store/profiles"
	"github.com/chapterhub/chapterhub/internal/app/system/respond"
	"github.com/chapterhub/chapterhub/internal/app/system/timeouts"
)

type awardBadgeRequest struct {
	UserID string `json:"user_id,omitempty"` // optional; defaults to the caller
	Badge  string `json:"badge"`
}

// HandleAwardBadge adds a badge to the target user's profile.
// POST /profile/badges
//
// A repeat award is a 200 with awarded=false and a message, not an error —
// clients treat it as "nothing to do".
func (h *Handler) HandleAwardBadge(w http.ResponseWriter, r *http.Request) {
	var req awardBadgeRequest
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

	res, err := profilestore.New(h.DB).AwardBadge(ctx, u.ID, req.Badge)
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	respond.JSON(w, http.StatusOK, res)
}
