// internal/app/features/events/handler.go
package events

import (
	"context"
	"net/http"

	compeventstore "github.com/chapterhub/chapterhub/internal/app/store/compevents"
	"github.com/chapterhub/chapterhub/internal/app/system/respond"
	"github.com/chapterhub/chapterhub/internal/app/system/timeouts"
	"github.com/chapterhub/chapterhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler owns the competitive-events directory endpoints.
type Handler struct {
	DB    *mongo.Database
	Log   *zap.Logger
	Store *compeventstore.Store
}

// NewHandler constructs a Handler bound to the given Mongo database and logger.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		DB:    db,
		Log:   logger,
		Store: compeventstore.New(db, logger),
	}
}

type listResponse struct {
	Events []models.CompetitiveEvent `json:"events"`
}

// HandleList returns directory entries, filtered by ?category= and ?level=.
// GET /events
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	items, err := h.Store.List(ctx, r.URL.Query().Get("category"), r.URL.Query().Get("level"))
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	respond.JSON(w, http.StatusOK, listResponse{Events: items})
}

type categoriesResponse struct {
	Categories []string `json:"categories"`
}

// HandleCategories returns the distinct event categories.
// GET /events/categories
func (h *Handler) HandleCategories(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	cats, err := h.Store.Categories(ctx)
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	respond.JSON(w, http.StatusOK, categoriesResponse{Categories: cats})
}

type createRequest struct {
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	EntryType   string   `json:"entry_type"`
	Levels      []string `json:"levels"`
}

// HandleCreate adds a directory entry beyond the seeded catalog.
// POST /events
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, h.Log, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	e, err := h.Store.Create(ctx, models.CompetitiveEvent{
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
		EntryType:   req.EntryType,
		Levels:      req.Levels,
	})
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	respond.JSON(w, http.StatusCreated, e)
}
