package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

/*─────────────────────────────────────────────────────────────────────────────*
 | Session constants & context plumbing                                       |
 *─────────────────────────────────────────────────────────────────────────────*/

const (
	isAuthKey   = "is_authenticated"
	userIDKey   = "user_id"
	userNameKey = "user_name"
	userRoleKey = "user_role"
	identityKey = "identity_token"
)

// SessionUser is what we cache in the session & inject into r.Context().
type SessionUser struct {
	ID            string
	Name          string
	Role          string
	IdentityToken string
}

type ctxKey string

const (
	currentUserKey ctxKey = "currentUser"
	identityCtxKey ctxKey = "identityToken"
)

// CurrentUser returns the signed-in user & "found?" flag.
func CurrentUser(r *http.Request) (*SessionUser, bool) {
	u, ok := r.Context().Value(currentUserKey).(*SessionUser)
	return u, ok
}

// Identity returns the caller's identity token. Every request gets one: the
// signed-in user's token, or a minted anonymous token stable for the session.
// Returns "" only when the session middleware did not run.
func Identity(r *http.Request) string {
	tok, _ := r.Context().Value(identityCtxKey).(string)
	return tok
}

func withUser(r *http.Request, u *SessionUser) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), currentUserKey, u))
}

func withIdentity(r *http.Request, token string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), identityCtxKey, token))
}

// WithTestUser injects a user (and their identity token) directly into the
// request context, bypassing the session store. Test helper only.
func WithTestUser(r *http.Request, u *SessionUser) *http.Request {
	r = withUser(r, u)
	return withIdentity(r, u.IdentityToken)
}

// WithTestIdentity injects a bare identity token with no signed-in user.
// Test helper for anonymous-caller paths.
func WithTestIdentity(r *http.Request, token string) *http.Request {
	return withIdentity(r, token)
}

/*─────────────────────────────────────────────────────────────────────────────*
 | Session manager                                                            |
 *─────────────────────────────────────────────────────────────────────────────*/

// SessionManager owns the cookie store and session middleware.
type SessionManager struct {
	store       *sessions.CookieStore
	sessionName string
	log         *zap.Logger
}

// NewSessionManager builds a cookie-backed session manager. Secure should be
// true in production so cookies are HTTPS-only.
func NewSessionManager(key, name, domain string, secure bool, logger *zap.Logger) (*SessionManager, error) {
	if len(key) < 32 {
		// Weak keys are tolerated in dev but flagged loudly.
		logger.Warn("session key is shorter than 32 bytes; use a stronger key in production")
	}
	store := sessions.NewCookieStore([]byte(key), securecookie.GenerateRandomKey(32))
	store.Options = &sessions.Options{
		Path:     "/",
		Domain:   domain,
		MaxAge:   60 * 60 * 24 * 30, // 30 days
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return &SessionManager{store: store, sessionName: name, log: logger}, nil
}

// LoadSession injects the current user (if signed in) and the caller's
// identity token into the request context.
//
// Unauthenticated callers get a unique anonymous identity ("anon-<uuid>")
// minted once and persisted in the session cookie, so repeated calls from the
// same client resolve to the same identity without sharing a global sentinel.
func (m *SessionManager) LoadSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, _ := m.store.Get(r, m.sessionName)

		token, _ := sess.Values[identityKey].(string)
		if token == "" {
			token = "anon-" + uuid.NewString()
			sess.Values[identityKey] = token
			if err := sess.Save(r, w); err != nil {
				m.log.Warn("failed to persist anonymous identity", zap.Error(err))
			}
		}
		r = withIdentity(r, token)

		if isAuth, _ := sess.Values[isAuthKey].(bool); isAuth {
			u := &SessionUser{
				ID:            getString(sess, userIDKey),
				Name:          getString(sess, userNameKey),
				Role:          getString(sess, userRoleKey),
				IdentityToken: token,
			}
			r = withUser(r, u)
		}
		next.ServeHTTP(w, r)
	})
}

// SignIn binds the session to a user. The identity token already minted for
// the session is kept, so a pre-signup anonymous identity carries over.
func (m *SessionManager) SignIn(w http.ResponseWriter, r *http.Request, u *SessionUser) error {
	sess, _ := m.store.Get(r, m.sessionName)
	sess.Values[isAuthKey] = true
	sess.Values[userIDKey] = u.ID
	sess.Values[userNameKey] = u.Name
	sess.Values[userRoleKey] = u.Role
	if u.IdentityToken != "" {
		sess.Values[identityKey] = u.IdentityToken
	}
	return sess.Save(r, w)
}

// SignOut clears the session entirely, including the anonymous identity.
func (m *SessionManager) SignOut(w http.ResponseWriter, r *http.Request) error {
	sess, _ := m.store.Get(r, m.sessionName)
	sess.Values = map[any]any{}
	sess.Options.MaxAge = -1
	return sess.Save(r, w)
}

/*─────────────────────────────────────────────────────────────────────────────*
 | Route guards                                                               |
 *─────────────────────────────────────────────────────────────────────────────*/

// RequireSignedIn ensures there is a user in context (set by LoadSession).
// API callers get a plain 401 — there is no HTML surface to redirect to.
func RequireSignedIn(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := CurrentUser(r); !ok {
			writeJSONError(w, http.StatusUnauthorized, "authentication required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireRole ensures the current user has one of the allowed roles.
// Not signed in → 401; signed in with the wrong role → 403.
func RequireRole(allowed ...string) func(http.Handler) http.Handler {
	set := make(map[string]struct{}, len(allowed))
	for _, role := range allowed {
		set[strings.ToLower(strings.TrimSpace(role))] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			u, ok := CurrentUser(r)
			if !ok {
				writeJSONError(w, http.StatusUnauthorized, "authentication required")
				return
			}
			if _, allowed := set[strings.ToLower(u.Role)]; !allowed {
				writeJSONError(w, http.StatusForbidden, "insufficient role")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func getString(sess *sessions.Session, key string) string {
	s, _ := sess.Values[key].(string)
	return s
}

// writeJSONError writes a fixed-shape error body. Guard messages are
// constants, so no JSON encoder is needed here.
func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(`{"error":"` + msg + `"}`))
}
