// internal/app/features/roster/seed.go
package roster

import (
	"context"
	"net/http"

	"github.com/chapterhub/chapterhub/internal/app/system/respond"
	"github.com/chapterhub/chapterhub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
)

type seedResponse struct {
	Inserted int  `json:"inserted"`
	Skipped  bool `json:"skipped"`
}

// HandleSeed bootstraps an empty chapter with demonstration members.
// POST /chapters/{chapter}/roster/seed
//
// This is an explicit adviser action, never a side effect of viewing an empty
// roster. A chapter that already has entries is skipped (inserted=0).
func (h *Handler) HandleSeed(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Seed())
	defer cancel()

	n, err := h.Store.Seed(ctx, chi.URLParam(r, "chapter"))
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	respond.JSON(w, http.StatusOK, seedResponse{Inserted: n, Skipped: n == 0})
}
