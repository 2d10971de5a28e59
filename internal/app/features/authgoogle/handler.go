// internal/app/features/authgoogle/handler.go
package authgoogle

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/chapterhub/chapterhub/internal/app/store/oauthstate"
	profilestore "github.com/chapterhub/chapterhub/internal/app/store/profiles"
	userstore "github.com/chapterhub/chapterhub/internal/app/store/users"
	"github.com/chapterhub/chapterhub/internal/app/system/apperr"
	"github.com/chapterhub/chapterhub/internal/app/system/auth"
	"github.com/chapterhub/chapterhub/internal/app/system/respond"
	"github.com/chapterhub/chapterhub/internal/app/system/timeouts"
	"github.com/chapterhub/chapterhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// Handler handles Google OAuth sign-in.
type Handler struct {
	DB         *mongo.Database
	Log        *zap.Logger
	SessionMgr *auth.SessionManager
	StateStore *oauthstate.Store

	ClientID     string
	ClientSecret string
	RedirectURL  string // e.g. "https://chapterhub.example.org/auth/oauth/google/callback"
}

// NewHandler creates a new Google OAuth handler. The redirect URL registered
// with Google must match the path this handler's routes are mounted under;
// BuildHandler mounts them at /auth/oauth.
func NewHandler(
	db *mongo.Database,
	sessionMgr *auth.SessionManager,
	stateStore *oauthstate.Store,
	clientID, clientSecret, baseURL string,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		DB:           db,
		Log:          logger,
		SessionMgr:   sessionMgr,
		StateStore:   stateStore,
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  baseURL + "/auth/oauth/google/callback",
	}
}

// oauth2Config returns the Google OAuth2 configuration.
func (h *Handler) oauth2Config() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     h.ClientID,
		ClientSecret: h.ClientSecret,
		RedirectURL:  h.RedirectURL,
		Scopes: []string{
			"openid",
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		},
		Endpoint: google.Endpoint,
	}
}

// IsConfigured returns true if Google OAuth is configured.
func (h *Handler) IsConfigured() bool {
	return h.ClientID != "" && h.ClientSecret != ""
}

// ServeLogin initiates the flow by redirecting to Google's consent screen.
// GET /auth/oauth/google
func (h *Handler) ServeLogin(w http.ResponseWriter, r *http.Request) {
	if !h.IsConfigured() {
		h.Log.Warn("Google OAuth not configured")
		respond.Error(w, h.Log, apperr.New(apperr.NotFound, "google sign-in is not configured"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	state, err := h.StateStore.Create(ctx)
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}

	url := h.oauth2Config().AuthCodeURL(state, oauth2.AccessTypeOffline)
	h.Log.Debug("initiating Google OAuth flow", zap.String("redirect_url", url))
	http.Redirect(w, r, url, http.StatusTemporaryRedirect)
}

// callbackResponse is the JSON body on a completed sign-in, matching the
// email/password endpoints.
type callbackResponse struct {
	ID   string       `json:"id"`
	User *models.User `json:"user"`
}

// ServeCallback handles the callback from Google: validates state, exchanges
// the code, fetches user info, upserts the user record, and signs the session
// in. The session's pre-existing identity token is kept so anonymous activity
// carries over to the account. Failures are JSON error bodies like the rest
// of the API; there is no HTML surface to redirect to.
// GET /auth/oauth/google/callback
func (h *Handler) ServeCallback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if errParam := r.URL.Query().Get("error"); errParam != "" {
		h.Log.Warn("Google OAuth error",
			zap.String("error", errParam),
			zap.String("description", r.URL.Query().Get("error_description")))
		respond.Error(w, h.Log, apperr.New(apperr.Unauthenticated, "google sign-in was denied"))
		return
	}

	state := r.URL.Query().Get("state")
	if state == "" {
		respond.Error(w, h.Log, apperr.New(apperr.InvalidArgument, "missing oauth state"))
		return
	}

	ctxTimeout, cancel := context.WithTimeout(ctx, timeouts.Short())
	defer cancel()

	if err := h.StateStore.Consume(ctxTimeout, state); err != nil {
		// Consume reports replayed or unknown states as InvalidArgument.
		respond.Error(w, h.Log, err)
		return
	}

	code := r.URL.Query().Get("code")
	if code == "" {
		respond.Error(w, h.Log, apperr.New(apperr.InvalidArgument, "missing oauth code"))
		return
	}

	token, err := h.oauth2Config().Exchange(ctx, code)
	if err != nil {
		h.Log.Warn("failed to exchange OAuth code", zap.Error(err))
		respond.Error(w, h.Log, apperr.New(apperr.Unauthenticated, "google code exchange failed"))
		return
	}

	googleUser, err := fetchGoogleUserInfo(ctx, token)
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}

	u, created, err := userstore.New(h.DB).Upsert(ctxTimeout, auth.Identity(r), userstore.UpsertInput{
		Email:       googleUser.Email,
		DisplayName: googleUser.Name,
		AuthMethod:  "google",
	})
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	if created {
		if _, err := profilestore.New(h.DB).GetOrCreate(ctxTimeout, u.ID); err != nil {
			h.Log.Warn("initial profile create failed after Google sign-in",
				zap.String("user_id", u.ID.Hex()), zap.Error(err))
		}
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

	h.Log.Info("member signed in with Google",
		zap.String("user_id", u.ID.Hex()), zap.Bool("created", created))
	respond.JSON(w, http.StatusOK, callbackResponse{ID: u.ID.Hex(), User: u})
}

// googleUserInfo represents user info returned from Google.
type googleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

// fetchGoogleUserInfo retrieves user information from Google's userinfo endpoint.
func fetchGoogleUserInfo(ctx context.Context, token *oauth2.Token) (*googleUserInfo, error) {
	client := oauth2.NewClient(ctx, oauth2.StaticTokenSource(token))

	resp, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user info: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var info googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("failed to decode user info: %w", err)
	}
	return &info, nil
}
