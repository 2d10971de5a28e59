package respond_test

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/chapterhub/chapterhub/internal/app/system/apperr"
	"github.com/chapterhub/chapterhub/internal/app/system/respond"
	"go.uber.org/zap"
)

func TestJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	respond.JSON(rec, 201, map[string]int{"n": 7})

	if rec.Code != 201 {
		t.Errorf("expected 201, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected JSON content type, got %q", ct)
	}
	var body map[string]int
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body["n"] != 7 {
		t.Errorf("expected n=7, got %v", body)
	}
}

func TestError_StatusMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
		msg    string
	}{
		{apperr.New(apperr.NotFound, "user not found"), 404, "user not found"},
		{apperr.New(apperr.InvalidArgument, "bad role"), 400, "bad role"},
		{apperr.New(apperr.Unauthenticated, "no identity resolved"), 401, "no identity resolved"},
		{apperr.New(apperr.Internal, "db exploded with details"), 500, "internal error"},
	}
	for _, c := range cases {
		rec := httptest.NewRecorder()
		respond.Error(rec, zap.NewNop(), c.err)
		if rec.Code != c.status {
			t.Errorf("%v: expected status %d, got %d", c.err, c.status, rec.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid JSON error body: %v", err)
		}
		if body["error"] != c.msg {
			t.Errorf("%v: expected message %q, got %q", c.err, c.msg, body["error"])
		}
	}
}

func TestDecode_RejectsUnknownFields(t *testing.T) {
	var dst struct {
		Amount int `json:"amount"`
	}

	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"amount": 5, "bonus": true}`))
	err := respond.Decode(r, &dst)
	if !apperr.IsInvalidArgument(err) {
		t.Fatalf("expected InvalidArgument for unknown field, got %v", err)
	}

	r = httptest.NewRequest("POST", "/", strings.NewReader(`{"amount": 5}`))
	if err := respond.Decode(r, &dst); err != nil {
		t.Fatalf("expected valid body to decode, got %v", err)
	}
	if dst.Amount != 5 {
		t.Errorf("expected amount=5, got %d", dst.Amount)
	}
}

func TestDecode_RejectsMalformedJSON(t *testing.T) {
	var dst struct{}
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{not json`))
	if err := respond.Decode(r, &dst); !apperr.IsInvalidArgument(err) {
		t.Fatalf("expected InvalidArgument, got %v", err)
	}
}
