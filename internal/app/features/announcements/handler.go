// internal/app/features/announcements/handler.go
package announcements

import (
	announcementstore "github.com/chapterhub/chapterhub/internal/app/store/announcements"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler owns the news-feed endpoints.
type Handler struct {
	DB    *mongo.Database
	Log   *zap.Logger
	Store *announcementstore.Store
}

// NewHandler constructs a Handler bound to the given Mongo database and logger.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		DB:    db,
		Log:   logger,
		Store: announcementstore.New(db),
	}
}
