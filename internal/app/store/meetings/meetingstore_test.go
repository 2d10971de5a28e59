package meetingstore_test

import (
	"testing"
	"time"

	meetingstore "github.com/chapterhub/chapterhub/internal/app/store/meetings"
	"github.com/chapterhub/chapterhub/internal/app/system/apperr"
	"github.com/chapterhub/chapterhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestStore_Create_Validation(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := meetingstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.Create(ctx, "", "desc", time.Now(), "Room 204"); !apperr.IsInvalidArgument(err) {
		t.Errorf("missing title: expected InvalidArgument, got %v", err)
	}
	if _, err := store.Create(ctx, "Weekly meeting", "desc", time.Time{}, ""); !apperr.IsInvalidArgument(err) {
		t.Errorf("zero date: expected InvalidArgument, got %v", err)
	}
}

func TestStore_UpcomingAndPast(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := meetingstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	now := time.Now().UTC()
	if _, err := store.Create(ctx, "Last month", "", now.Add(-30*24*time.Hour), ""); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := store.Create(ctx, "Next week", "", now.Add(7*24*time.Hour), ""); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := store.Create(ctx, "Tomorrow", "", now.Add(24*time.Hour), ""); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	upcoming, err := store.ListUpcoming(ctx, now)
	if err != nil {
		t.Fatalf("ListUpcoming failed: %v", err)
	}
	if len(upcoming) != 2 {
		t.Fatalf("expected 2 upcoming meetings, got %d", len(upcoming))
	}
	if upcoming[0].Title != "Tomorrow" {
		t.Errorf("expected soonest first, got %q", upcoming[0].Title)
	}

	past, err := store.ListPast(ctx, now)
	if err != nil {
		t.Fatalf("ListPast failed: %v", err)
	}
	if len(past) != 1 || past[0].Title != "Last month" {
		t.Errorf("expected past = [Last month], got %v", past)
	}

	all, err := store.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("expected 3 meetings, got %d", len(all))
	}
}

func TestStore_Delete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := meetingstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	m, err := store.Create(ctx, "To remove", "", time.Now().UTC(), "")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := store.Delete(ctx, m.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := store.Delete(ctx, primitive.NewObjectID()); !apperr.IsNotFound(err) {
		t.Fatalf("expected NotFound, got %v", err)
	}
}
