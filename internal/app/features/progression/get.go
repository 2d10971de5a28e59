// internal/app/features/progression/get.go
package progression

import (
	"context"
	"net/http"

	profilestore "github.com/chapterhub/chapterhub/internal/app/store/profiles"
	"github.com/chapterhub/chapterhub/internal/app/system/respond"
	"github.com/chapterhub/chapterhub/internal/app/system/timeouts"
)

// HandleGetProfile returns the caller's progression profile, lazily creating
// the zero state on first access.
// GET /profile
func (h *Handler) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	u, err := h.resolveUser(ctx, r, r.URL.Query().Get("user_id"))
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}

	p, err := profilestore.New(h.DB).GetOrCreate(ctx, u.ID)
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	respond.JSON(w, http.StatusOK, p)
}
