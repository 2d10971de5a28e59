// internal/app/features/roster/create.go
package roster

import (
	"context"
	"net/http"

	rosterstore "github.com/chapterhub/chapterhub/internal/app/store/roster"
	"github.com/chapterhub/chapterhub/internal/app/system/respond"
	"github.com/chapterhub/chapterhub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
)

type createRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role"`
	Grade     string `json:"grade"`
	Email     string `json:"email"`
}

// HandleCreate adds one roster entry to the chapter.
// POST /chapters/{chapter}/roster
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, h.Log, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	m, err := h.Store.Create(ctx, rosterstore.CreateInput{
		ChapterName: chi.URLParam(r, "chapter"),
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Role:        req.Role,
		Grade:       req.Grade,
		Email:       req.Email,
	})
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	respond.JSON(w, http.StatusCreated, m)
}
