// internal/app/features/roster/handler.go
package roster

import (
	rosterstore "github.com/chapterhub/chapterhub/internal/app/store/roster"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler owns the chapter roster management endpoints.
type Handler struct {
	DB    *mongo.Database
	Log   *zap.Logger
	Store *rosterstore.Store
}

// NewHandler constructs a Handler bound to the given Mongo database and logger.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		DB:    db,
		Log:   logger,
		Store: rosterstore.New(db, logger),
	}
}
