// internal/app/features/announcements/announcements.go
package announcements

import (
	"context"
	"net/http"
	"strconv"

	"github.com/chapterhub/chapterhub/internal/app/system/apperr"
	"github.com/chapterhub/chapterhub/internal/app/system/authz"
	"github.com/chapterhub/chapterhub/internal/app/system/respond"
	"github.com/chapterhub/chapterhub/internal/app/system/timeouts"
	"github.com/chapterhub/chapterhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type listResponse struct {
	Announcements []models.Announcement `json:"announcements"`
}

// HandleList returns the news feed, pinned items first then newest first.
// GET /announcements?limit=N
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	var limit int64
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || n < 0 {
			respond.Error(w, h.Log, apperr.New(apperr.InvalidArgument, "limit must be a non-negative integer"))
			return
		}
		limit = n
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	items, err := h.Store.List(ctx, limit)
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	respond.JSON(w, http.StatusOK, listResponse{Announcements: items})
}

type createRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Pinned  bool   `json:"pinned"`
}

// HandleCreate posts a news item. The author is the signed-in user; the body
// HTML is sanitized before storage.
// POST /announcements
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	_, name, uid, ok := authz.UserCtx(r)
	if !ok {
		respond.Error(w, h.Log, apperr.New(apperr.Unauthenticated, "no identity resolved"))
		return
	}

	var req createRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, h.Log, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	a, err := h.Store.Create(ctx, req.Title, req.Content, uid, name, req.Pinned)
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	respond.JSON(w, http.StatusCreated, a)
}

// HandleDelete removes one announcement.
// DELETE /announcements/{id}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, h.Log, apperr.New(apperr.InvalidArgument, "announcement id is not valid"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Store.Delete(ctx, id); err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	respond.JSON(w, http.StatusOK, map[string]bool{"ok": true})
}
