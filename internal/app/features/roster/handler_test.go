package roster_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/chapterhub/chapterhub/internal/app/features/roster"
	"github.com/chapterhub/chapterhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func setup(t *testing.T) *roster.Handler {
	t.Helper()
	return roster.NewHandler(testutil.SetupTestDB(t), zap.NewNop())
}

func forChapter(r *http.Request, chapter string) *http.Request {
	return testutil.WithChiURLParam(r, "chapter", chapter)
}

func TestHandleList_Empty(t *testing.T) {
	h := setup(t)

	r := forChapter(httptest.NewRequest("GET", "/chapters/Washington%20FBLA/roster", nil), "Washington FBLA")
	r = testutil.WithUser(r, testutil.MemberUser())
	rec := httptest.NewRecorder()

	h.HandleList(rec, r)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var res struct {
		ChapterName string            `json:"chapter_name"`
		Members     []json.RawMessage `json:"members"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	// Empty roster is an empty list, never an implicit seed.
	if len(res.Members) != 0 {
		t.Errorf("expected empty members, got %d", len(res.Members))
	}
}

func TestHandleCreate(t *testing.T) {
	h := setup(t)

	body := `{"first_name": "Maya", "last_name": "Chen", "role": "officer", "grade": "12", "email": "maya@school.example"}`
	r := httptest.NewRequest("POST", "/chapters/Washington%20FBLA/roster", strings.NewReader(body))
	r = forChapter(testutil.WithUser(r, testutil.AdviserUser()), "Washington FBLA")
	rec := httptest.NewRecorder()

	h.HandleCreate(rec, r)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var created struct {
		ID          string `json:"id"`
		ChapterName string `json:"chapter_name"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if created.ChapterName != "Washington FBLA" {
		t.Errorf("expected chapter from URL, got %q", created.ChapterName)
	}
}

func TestHandleCreate_BadRole(t *testing.T) {
	h := setup(t)

	body := `{"first_name": "X", "last_name": "Y", "role": "president", "email": "x@school.example"}`
	r := httptest.NewRequest("POST", "/chapters/C/roster", strings.NewReader(body))
	r = forChapter(testutil.WithUser(r, testutil.AdviserUser()), "C")
	rec := httptest.NewRecorder()

	h.HandleCreate(rec, r)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestHandleUpdate_NotFound(t *testing.T) {
	h := setup(t)

	body := `{"first_name": "A", "last_name": "B", "grade": "10", "role": "member"}`
	r := httptest.NewRequest("PUT", "/chapters/C/roster/x", strings.NewReader(body))
	r = testutil.WithChiURLParam(testutil.WithUser(r, testutil.AdviserUser()), "id", primitive.NewObjectID().Hex())
	rec := httptest.NewRecorder()

	h.HandleUpdate(rec, r)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestHandleRemove_NotFound(t *testing.T) {
	h := setup(t)

	r := httptest.NewRequest("DELETE", "/chapters/C/roster/x", nil)
	r = testutil.WithChiURLParam(testutil.WithUser(r, testutil.AdviserUser()), "id", primitive.NewObjectID().Hex())
	rec := httptest.NewRecorder()

	h.HandleRemove(rec, r)

	// Removing an absent entry is a strict 404, not a silent success.
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestHandleSeed(t *testing.T) {
	h := setup(t)

	seed := func() *httptest.ResponseRecorder {
		r := httptest.NewRequest("POST", "/chapters/Washington%20FBLA/roster/seed", nil)
		r = forChapter(testutil.WithUser(r, testutil.AdviserUser()), "Washington FBLA")
		rec := httptest.NewRecorder()
		h.HandleSeed(rec, r)
		return rec
	}

	rec := seed()
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var res struct {
		Inserted int  `json:"inserted"`
		Skipped  bool `json:"skipped"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if res.Inserted == 0 || res.Skipped {
		t.Errorf("expected first seed to insert, got %+v", res)
	}

	// Seeding a populated chapter is a reported no-op.
	rec = seed()
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if res.Inserted != 0 || !res.Skipped {
		t.Errorf("expected second seed skipped, got %+v", res)
	}
}
