// internal/app/features/roster/edit.go
package roster

import (
	"context"
	"net/http"

	rosterstore "github.com/chapterhub/chapterhub/internal/app/store/roster"
	"github.com/chapterhub/chapterhub/internal/app/system/apperr"
	"github.com/chapterhub/chapterhub/internal/app/system/respond"
	"github.com/chapterhub/chapterhub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type updateRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Grade     string `json:"grade"`
	Role      string `json:"role"`
}

type okResponse struct {
	OK bool `json:"ok"`
}

// HandleUpdate overwrites the four mutable fields of one roster entry.
// PUT /chapters/{chapter}/roster/{id}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, h.Log, apperr.New(apperr.InvalidArgument, "roster entry id is not valid"))
		return
	}

	var req updateRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, h.Log, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	err = h.Store.Update(ctx, id, rosterstore.Update{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Grade:     req.Grade,
		Role:      req.Role,
	})
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	respond.JSON(w, http.StatusOK, okResponse{OK: true})
}

// HandleRemove deletes one roster entry. Removing an id that does not exist
// is a 404, not a silent no-op.
// DELETE /chapters/{chapter}/roster/{id}
func (h *Handler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, h.Log, apperr.New(apperr.InvalidArgument, "roster entry id is not valid"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Store.Remove(ctx, id); err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	respond.JSON(w, http.StatusOK, okResponse{OK: true})
}
