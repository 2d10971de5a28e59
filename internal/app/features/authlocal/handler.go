// internal/app/features/authlocal/handler.go
package authlocal

import (
	"context"
	"net/http"

	profilestore "github.com/chapterhub/chapterhub/internal/app/store/profiles"
	userstore "github.com/chapterhub/chapterhub/internal/app/store/users"
	"github.com/chapterhub/chapterhub/internal/app/system/apperr"
	"github.com/chapterhub/chapterhub/internal/app/system/auth"
	"github.com/chapterhub/chapterhub/internal/app/system/authutil"
	"github.com/chapterhub/chapterhub/internal/app/system/respond"
	"github.com/chapterhub/chapterhub/internal/app/system/timeouts"
	"github.com/chapterhub/chapterhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler owns email/password authentication.
type Handler struct {
	DB         *mongo.Database
	Log        *zap.Logger
	SessionMgr *auth.SessionManager
}

// NewHandler constructs a Handler bound to the given Mongo database,
// session manager, and logger.
func NewHandler(db *mongo.Database, sessionMgr *auth.SessionManager, logger *zap.Logger) *Handler {
	return &Handler{DB: db, Log: logger, SessionMgr: sessionMgr}
}

type signupRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role"`
}

type authResponse struct {
	ID   string       `json:"id"`
	User *models.User `json:"user"`
}

// HandleSignup creates a password-auth account bound to the session's
// identity token, so anything the caller did anonymously (onboarding drafts)
// carries over to the new account.
// POST /auth/signup
func (h *Handler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	if err := authutil.ValidatePassword(req.Password); err != nil {
		respond.Error(w, h.Log, apperr.New(apperr.InvalidArgument, err.Error()))
		return
	}

	hash, err := authutil.HashPassword(req.Password)
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	role := req.Role
	if role == "" {
		role = "member"
	}
	u, err := userstore.New(h.DB).CreateWithPassword(ctx, auth.Identity(r), req.Email, req.DisplayName, role, hash)
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}

	// Compensating second write; GetOrCreate tolerates a crash between the two.
	if _, err := profilestore.New(h.DB).GetOrCreate(ctx, u.ID); err != nil {
		h.Log.Warn("initial profile create failed after signup",
			zap.String("user_id", u.ID.Hex()), zap.Error(err))
	}

	if err := h.SessionMgr.SignIn(w, r, &auth.SessionUser{
		ID:            u.ID.Hex(),
		Name:          u.DisplayName,
		Role:          u.Role,
		IdentityToken: u.IdentityToken,
	}); err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	respond.JSON(w, http.StatusCreated, authResponse{ID: u.ID.Hex(), User: u})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// HandleLogin verifies credentials and binds the session to the user.
// POST /auth/login
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, h.Log, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	u, err := userstore.New(h.DB).GetByEmail(ctx, req.Email)
	if err != nil || u.PasswordHash == nil || !authutil.CheckPassword(req.Password, *u.PasswordHash) {
		// One message for both unknown email and wrong password.
		respond.Error(w, h.Log, apperr.New(apperr.Unauthenticated, "invalid email or password"))
		return
	}

	if err := h.SessionMgr.SignIn(w, r, &auth.SessionUser{
		ID:            u.ID.Hex(),
		Name:          u.DisplayName,
		Role:          u.Role,
		IdentityToken: u.IdentityToken,
	}); err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	respond.JSON(w, http.StatusOK, authResponse{ID: u.ID.Hex(), User: u})
}

// HandleLogout clears the session, including the anonymous identity.
// POST /auth/logout
func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.SessionMgr.SignOut(w, r); err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	respond.JSON(w, http.StatusOK, map[string]bool{"ok": true})
}
