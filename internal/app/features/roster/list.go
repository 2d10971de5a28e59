// internal/app/features/roster/list.go
package roster

import (
	"context"
	"net/http"

	"github.com/chapterhub/chapterhub/internal/app/system/respond"
	"github.com/chapterhub/chapterhub/internal/app/system/timeouts"
	"github.com/chapterhub/chapterhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
)

type listResponse struct {
	ChapterName string                 `json:"chapter_name"`
	Members     []models.ChapterMember `json:"members"`
}

// HandleList returns the roster for one chapter.
// GET /chapters/{chapter}/roster
//
// Listing an empty roster returns an empty list; it never triggers seeding.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	chapter := chi.URLParam(r, "chapter")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	members, err := h.Store.List(ctx, chapter)
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	respond.JSON(w, http.StatusOK, listResponse{ChapterName: chapter, Members: members})
}
