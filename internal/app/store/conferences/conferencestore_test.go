package conferencestore_test

import (
	"testing"
	"time"

	conferencestore "github.com/chapterhub/chapterhub/internal/app/store/conferences"
	"github.com/chapterhub/chapterhub/internal/app/system/apperr"
	"github.com/chapterhub/chapterhub/internal/domain/models"
	"github.com/chapterhub/chapterhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestStore_Create_Validation(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := conferencestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	start := time.Now().UTC()
	end := start.Add(48 * time.Hour)

	if _, err := store.Create(ctx, "", "City", models.ConferenceState, start, end); !apperr.IsInvalidArgument(err) {
		t.Errorf("missing name: expected InvalidArgument, got %v", err)
	}
	if _, err := store.Create(ctx, "SLC", "City", "galactic", start, end); !apperr.IsInvalidArgument(err) {
		t.Errorf("bad level: expected InvalidArgument, got %v", err)
	}
	if _, err := store.Create(ctx, "SLC", "City", models.ConferenceState, end, start); !apperr.IsInvalidArgument(err) {
		t.Errorf("end before start: expected InvalidArgument, got %v", err)
	}
}

func TestStore_List_LevelFilter(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := conferencestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	start := time.Now().UTC()
	for _, c := range []struct{ name, level string }{
		{"Region 3 Conference", models.ConferenceRegion},
		{"State Leadership Conference", models.ConferenceState},
		{"National Leadership Conference", models.ConferenceNational},
	} {
		if _, err := store.Create(ctx, c.name, "TBD", c.level, start, start.Add(48*time.Hour)); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		start = start.Add(30 * 24 * time.Hour)
	}

	all, err := store.List(ctx, "")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 conferences, got %d", len(all))
	}
	// Ordered by start date.
	if all[0].Name != "Region 3 Conference" {
		t.Errorf("expected earliest first, got %q", all[0].Name)
	}

	state, err := store.List(ctx, "State")
	if err != nil {
		t.Fatalf("filtered List failed: %v", err)
	}
	if len(state) != 1 || state[0].Level != models.ConferenceState {
		t.Errorf("expected one state conference, got %v", state)
	}

	if _, err := store.List(ctx, "galactic"); !apperr.IsInvalidArgument(err) {
		t.Errorf("bad level filter: expected InvalidArgument, got %v", err)
	}
}

func TestStore_Delete_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := conferencestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := store.Delete(ctx, primitive.NewObjectID()); !apperr.IsNotFound(err) {
		t.Fatalf("expected NotFound, got %v", err)
	}
}
