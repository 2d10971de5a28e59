// internal/app/features/meetings/handler.go
package meetings

import (
	"context"
	"net/http"
	"time"

	meetingstore "github.com/chapterhub/chapterhub/internal/app/store/meetings"
	"github.com/chapterhub/chapterhub/internal/app/system/apperr"
	"github.com/chapterhub/chapterhub/internal/app/system/respond"
	"github.com/chapterhub/chapterhub/internal/app/system/timeouts"
	"github.com/chapterhub/chapterhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler owns the meetings calendar endpoints.
type Handler struct {
	DB    *mongo.Database
	Log   *zap.Logger
	Store *meetingstore.Store
}

// NewHandler constructs a Handler bound to the given Mongo database and logger.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		DB:    db,
		Log:   logger,
		Store: meetingstore.New(db),
	}
}

type listResponse struct {
	Meetings []models.Meeting `json:"meetings"`
}

// HandleList returns meetings. ?when=upcoming (default) | past | all.
// GET /meetings
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	var (
		items []models.Meeting
		err   error
	)
	switch r.URL.Query().Get("when") {
	case "", "upcoming":
		items, err = h.Store.ListUpcoming(ctx, time.Now())
	case "past":
		items, err = h.Store.ListPast(ctx, time.Now())
	case "all":
		items, err = h.Store.ListAll(ctx)
	default:
		respond.Error(w, h.Log, apperr.New(apperr.InvalidArgument, "when must be upcoming, past, or all"))
		return
	}
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	respond.JSON(w, http.StatusOK, listResponse{Meetings: items})
}

type createRequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Location    string    `json:"location"`
}

// HandleCreate adds a calendar entry.
// POST /meetings
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, h.Log, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	m, err := h.Store.Create(ctx, req.Title, req.Description, req.Date, req.Location)
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	respond.JSON(w, http.StatusCreated, m)
}

// HandleDelete removes one meeting.
// DELETE /meetings/{id}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, h.Log, apperr.New(apperr.InvalidArgument, "meeting id is not valid"))
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
