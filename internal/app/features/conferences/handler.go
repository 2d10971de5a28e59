// internal/app/features/conferences/handler.go
package conferences

import (
	"context"
	"net/http"
	"time"

	conferencestore "github.com/chapterhub/chapterhub/internal/app/store/conferences"
	"github.com/chapterhub/chapterhub/internal/app/system/apperr"
	"github.com/chapterhub/chapterhub/internal/app/system/respond"
	"github.com/chapterhub/chapterhub/internal/app/system/timeouts"
	"github.com/chapterhub/chapterhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler owns the conference calendar endpoints.
type Handler struct {
	DB    *mongo.Database
	Log   *zap.Logger
	Store *conferencestore.Store
}

// NewHandler constructs a Handler bound to the given Mongo database and logger.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		DB:    db,
		Log:   logger,
		Store: conferencestore.New(db),
	}
}

type listResponse struct {
	Conferences []models.Conference `json:"conferences"`
}

// HandleList returns conferences in start-date order, optionally filtered by
// ?level=region|state|national.
// GET /conferences
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	items, err := h.Store.List(ctx, r.URL.Query().Get("level"))
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	respond.JSON(w, http.StatusOK, listResponse{Conferences: items})
}

type createRequest struct {
	Name     string    `json:"name"`
	Location string    `json:"location"`
	Level    string    `json:"level"`
	StartsAt time.Time `json:"starts_at"`
	EndsAt   time.Time `json:"ends_at"`
}

// HandleCreate adds a conference record.
// POST /conferences
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, h.Log, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	c, err := h.Store.Create(ctx, req.Name, req.Location, req.Level, req.StartsAt, req.EndsAt)
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	respond.JSON(w, http.StatusCreated, c)
}

// HandleDelete removes one conference.
// DELETE /conferences/{id}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, h.Log, apperr.New(apperr.InvalidArgument, "conference id is not valid"))
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
