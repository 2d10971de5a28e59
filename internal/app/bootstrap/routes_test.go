package bootstrap

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	authgooglefeature "github.com/chapterhub/chapterhub/internal/app/features/authgoogle"
	"github.com/dalemusser/waffle/config"
)

// buildTestRouter constructs the full router without a database. Handler
// construction only stores the deps, so routing can be exercised against
// endpoints that fail before any collection access.
func buildTestRouter(t *testing.T, cfg AppConfig) http.Handler {
	t.Helper()
	h, err := BuildHandler(&config.CoreConfig{Env: "dev"}, cfg, DBDeps{}, testLogger())
	if err != nil {
		t.Fatalf("BuildHandler failed: %v", err)
	}
	return h
}

func googleConfig() AppConfig {
	cfg := devConfig()
	cfg.GoogleClientID = "test-client-id"
	cfg.GoogleClientSecret = "test-client-secret"
	cfg.BaseURL = "http://localhost:8080"
	return cfg
}

func TestBuildHandler_ServesGoogleRedirectURL(t *testing.T) {
	cfg := googleConfig()
	router := buildTestRouter(t, cfg)

	// The callback path registered with Google must resolve to the callback
	// handler, not fall through to 404. A denied-consent callback reaches the
	// handler and fails before any database access, so a routed request is
	// distinguishable from an unrouted one by status alone.
	gh := authgooglefeature.NewHandler(nil, nil, nil, cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.BaseURL, testLogger())
	path := strings.TrimPrefix(gh.RedirectURL, cfg.BaseURL)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", path+"?error=access_denied", nil))

	if rec.Code == http.StatusNotFound {
		t.Fatalf("registered redirect path %s is not routed", path)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 from denied consent, got %d", rec.Code)
	}
}

func TestBuildHandler_GoogleRoutesAbsentWhenUnconfigured(t *testing.T) {
	router := buildTestRouter(t, devConfig())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/auth/oauth/google", nil))

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 without Google credentials, got %d", rec.Code)
	}
}
