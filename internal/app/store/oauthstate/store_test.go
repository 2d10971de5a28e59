package oauthstate_test

import (
	"testing"

	"github.com/chapterhub/chapterhub/internal/app/store/oauthstate"
	"github.com/chapterhub/chapterhub/internal/app/system/apperr"
	"github.com/chapterhub/chapterhub/internal/testutil"
)

func TestStore_CreateAndConsume(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := oauthstate.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	state, err := store.Create(ctx)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if state == "" {
		t.Fatal("expected non-empty state")
	}

	if err := store.Consume(ctx, state); err != nil {
		t.Fatalf("Consume failed: %v", err)
	}

	// Single use only.
	if err := store.Consume(ctx, state); !apperr.IsInvalidArgument(err) {
		t.Fatalf("expected InvalidArgument on replay, got %v", err)
	}
}

func TestStore_Consume_Unknown(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := oauthstate.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := store.Consume(ctx, "never-issued"); !apperr.IsInvalidArgument(err) {
		t.Fatalf("expected InvalidArgument, got %v", err)
	}
}
