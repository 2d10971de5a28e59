// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	announcementsfeature "github.com/chapterhub/chapterhub/internal/app/features/announcements"
	authgooglefeature "github.com/chapterhub/chapterhub/internal/app/features/authgoogle"
	authlocalfeature "github.com/chapterhub/chapterhub/internal/app/features/authlocal"
	conferencesfeature "github.com/chapterhub/chapterhub/internal/app/features/conferences"
	eventsfeature "github.com/chapterhub/chapterhub/internal/app/features/events"
	healthfeature "github.com/chapterhub/chapterhub/internal/app/features/health"
	meetingsfeature "github.com/chapterhub/chapterhub/internal/app/features/meetings"
	progressionfeature "github.com/chapterhub/chapterhub/internal/app/features/progression"
	rosterfeature "github.com/chapterhub/chapterhub/internal/app/features/roster"
	usersfeature "github.com/chapterhub/chapterhub/internal/app/features/users"
	"github.com/chapterhub/chapterhub/internal/app/store/oauthstate"
	"github.com/chapterhub/chapterhub/internal/app/system/auth"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed.
//
// ChapterHub wires the session middleware (which mints an anonymous identity
// for first-time visitors) and mounts the feature routers: auth, users,
// progression, roster, and the chapter content services.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	sessionMgr, err := auth.NewSessionManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, secure, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	r := chi.NewRouter()

	// Global session middleware: loads the signed-in user into context when
	// present, and otherwise mints and persists an anonymous identity token
	// so progression works before sign-up.
	r.Use(sessionMgr.LoadSession)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Authentication
	authHandler := authlocalfeature.NewHandler(deps.MongoDatabase, sessionMgr, logger)
	r.Mount("/auth", authlocalfeature.Routes(authHandler))

	if appCfg.GoogleClientID != "" {
		googleHandler := authgooglefeature.NewHandler(
			deps.MongoDatabase,
			sessionMgr,
			oauthstate.New(deps.MongoDatabase),
			appCfg.GoogleClientID,
			appCfg.GoogleClientSecret,
			appCfg.BaseURL,
			logger,
		)
		r.Mount("/auth/oauth", authgooglefeature.Routes(googleHandler))
	}

	// User directory and onboarding
	usersHandler := usersfeature.NewHandler(deps.MongoDatabase, logger)
	r.Mount("/users", usersfeature.Routes(usersHandler))

	// XP, levels, and badges
	progressionHandler := progressionfeature.NewHandler(deps.MongoDatabase, logger)
	r.Mount("/profile", progressionfeature.Routes(progressionHandler))

	// Chapter rosters
	rosterHandler := rosterfeature.NewHandler(deps.MongoDatabase, logger)
	r.Mount("/chapters/{chapter}/roster", rosterfeature.Routes(rosterHandler))

	// Chapter content services
	announcementsHandler := announcementsfeature.NewHandler(deps.MongoDatabase, logger)
	r.Mount("/announcements", announcementsfeature.Routes(announcementsHandler))

	meetingsHandler := meetingsfeature.NewHandler(deps.MongoDatabase, logger)
	r.Mount("/meetings", meetingsfeature.Routes(meetingsHandler))

	conferencesHandler := conferencesfeature.NewHandler(deps.MongoDatabase, logger)
	r.Mount("/conferences", conferencesfeature.Routes(conferencesHandler))

	eventsHandler := eventsfeature.NewHandler(deps.MongoDatabase, logger)
	r.Mount("/events", eventsfeature.Routes(eventsHandler))

	return r, nil
}
