package authlocal_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/chapterhub/chapterhub/internal/app/features/authlocal"
	"github.com/chapterhub/chapterhub/internal/app/system/auth"
	"github.com/chapterhub/chapterhub/internal/testutil"
	"go.uber.org/zap"
)

func newHandler(t *testing.T) *authlocal.Handler {
	t.Helper()
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()
	sessionMgr, err := auth.NewSessionManager("test-session-key-for-testing-only", "test-session", "", false, logger)
	if err != nil {
		t.Fatalf("NewSessionManager failed: %v", err)
	}
	return authlocal.NewHandler(db, sessionMgr, logger)
}

func signup(t *testing.T, h *authlocal.Handler, email, password string) *httptest.ResponseRecorder {
	t.Helper()
	body := `{"email": "` + email + `", "password": "` + password + `", "display_name": "Test User", "role": "member"}`
	r := httptest.NewRequest("POST", "/auth/signup", strings.NewReader(body))
	r = testutil.WithIdentity(r, "anon-test-signup-"+email)
	rec := httptest.NewRecorder()
	h.HandleSignup(rec, r)
	return rec
}

func TestHandleSignup(t *testing.T) {
	h := newHandler(t)

	rec := signup(t, h, "new@example.com", "hunter2hunter2")
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if len(rec.Result().Cookies()) == 0 {
		t.Error("expected signup to set a session cookie")
	}
	var res struct {
		User struct {
			Email      string `json:"email"`
			AuthMethod string `json:"auth_method"`
		} `json:"user"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if res.User.Email != "new@example.com" || res.User.AuthMethod != "password" {
		t.Errorf("unexpected user: %+v", res.User)
	}
}

func TestHandleSignup_WeakPassword(t *testing.T) {
	h := newHandler(t)

	rec := signup(t, h, "weak@example.com", "short")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestHandleLogin(t *testing.T) {
	h := newHandler(t)

	if rec := signup(t, h, "login@example.com", "hunter2hunter2"); rec.Code != http.StatusCreated {
		t.Fatalf("setup signup failed: %d", rec.Code)
	}

	login := func(password string) *httptest.ResponseRecorder {
		body := `{"email": "login@example.com", "password": "` + password + `"}`
		r := httptest.NewRequest("POST", "/auth/login", strings.NewReader(body))
		rec := httptest.NewRecorder()
		h.HandleLogin(rec, r)
		return rec
	}

	if rec := login("hunter2hunter2"); rec.Code != http.StatusOK {
		t.Errorf("valid login: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if rec := login("wrong-password-1"); rec.Code != http.StatusUnauthorized {
		t.Errorf("wrong password: expected 401, got %d", rec.Code)
	}
}

func TestHandleLogin_UnknownEmail(t *testing.T) {
	h := newHandler(t)

	body := `{"email": "nobody@example.com", "password": "whatever123"}`
	r := httptest.NewRequest("POST", "/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.HandleLogin(rec, r)

	// Same response as a wrong password, so the endpoint does not confirm
	// which emails have accounts.
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
