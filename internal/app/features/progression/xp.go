// internal/app/features/progression/xp.go
package progression

import (
	"context"
	"net/http"

	profilestore "github.com/chapterhub/chapterhub/internal/app/store/profiles"
	"github.com/chapterhub/chapterhub/internal/app/system/respond"
	"github.com/chapterhub/chapterhub/internal/app/system/timeouts"
	"go.uber.org/zap"
)

type addXPRequest struct {
	UserID string `json:"user_id,omitempty"` // optional; defaults to the caller
	Amount int    `json:"amount"`
}

// HandleAddXP accrues XP and re-derives the level.
// POST /profile/xp
//
// Responds with the new totals and whether a level boundary was crossed.
// Negative amounts are a 400 and never mutate state.
func (h *Handler) HandleAddXP(w http.ResponseWriter, r *http.Request) {
	var req addXPRequest
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

	res, err := profilestore.New(h.DB).AddXP(ctx, u.ID, req.Amount)
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}

	if res.LeveledUp {
		h.Log.Info("member leveled up",
			zap.String("user_id", u.ID.Hex()),
			zap.Int("level", res.Level))
	}
	respond.JSON(w, http.StatusOK, res)
}
