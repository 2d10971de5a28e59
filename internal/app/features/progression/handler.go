// internal/app/features/progression/handler.go
package progression

import (
	"context"
	"net/http"

	userstore "github.com/chapterhub/chapterhub/internal/app/store/users"
	"github.com/chapterhub/chapterhub/internal/app/system/apperr"
	"github.com/chapterhub/chapterhub/internal/app/system/auth"
	"github.com/chapterhub/chapterhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler owns the XP / level / badge endpoints.
type Handler struct {
	DB  *mongo.Database
	Log *zap.Logger
}

// NewHandler constructs a Handler bound to the given Mongo database and logger.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{DB: db, Log: logger}
}

// resolveUser resolves the target user for a progression operation: an
// explicit user_id wins, otherwise the caller's own identity. NotFound when
// neither yields a user record.
func (h *Handler) resolveUser(ctx context.Context, r *http.Request, explicitID string) (*models.User, error) {
	usrStore := userstore.New(h.DB)

	if explicitID != "" {
		oid, err := primitive.ObjectIDFromHex(explicitID)
		if err != nil {
			return nil, apperr.New(apperr.InvalidArgument, "user_id is not a valid id")
		}
		return usrStore.GetByID(ctx, oid)
	}

	token := auth.Identity(r)
	if token == "" {
		return nil, apperr.New(apperr.Unauthenticated, "no identity resolved")
	}
	return usrStore.GetByIdentity(ctx, token)
}
