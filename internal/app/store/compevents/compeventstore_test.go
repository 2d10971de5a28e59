package compeventstore_test

import (
	"testing"

	compeventstore "github.com/chapterhub/chapterhub/internal/app/store/compevents"
	"github.com/chapterhub/chapterhub/internal/app/system/apperr"
	"github.com/chapterhub/chapterhub/internal/domain/models"
	"github.com/chapterhub/chapterhub/internal/testutil"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func newStore(t *testing.T) (*compeventstore.Store, *mongo.Database) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	return compeventstore.New(db, zap.NewNop()), db
}

func TestStore_SeedCatalog(t *testing.T) {
	store, _ := newStore(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	n, err := store.SeedCatalog(ctx)
	if err != nil {
		t.Fatalf("SeedCatalog failed: %v", err)
	}
	if n == 0 {
		t.Fatal("expected seed to populate empty catalog")
	}

	// A populated catalog is left alone.
	again, err := store.SeedCatalog(ctx)
	if err != nil {
		t.Fatalf("second SeedCatalog failed: %v", err)
	}
	if again != 0 {
		t.Errorf("expected second seed to insert 0, got %d", again)
	}

	all, err := store.List(ctx, "", "")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(all) != n {
		t.Errorf("expected %d events, got %d", n, len(all))
	}
}

func TestStore_List_Filters(t *testing.T) {
	store, _ := newStore(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	events := []models.CompetitiveEvent{
		{Name: "Accounting I", Category: "Finance", EntryType: models.EntryIndividual, Levels: []string{"region", "state", "national"}},
		{Name: "Business Plan", Category: "Entrepreneurship", EntryType: models.EntryTeam, Levels: []string{"state", "national"}},
		{Name: "Impromptu Speaking", Category: "Communication", EntryType: models.EntryIndividual, Levels: []string{"region", "state"}},
	}
	for _, e := range events {
		if _, err := store.Create(ctx, e); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	finance, err := store.List(ctx, "Finance", "")
	if err != nil {
		t.Fatalf("category List failed: %v", err)
	}
	if len(finance) != 1 || finance[0].Name != "Accounting I" {
		t.Errorf("expected [Accounting I], got %v", finance)
	}

	regional, err := store.List(ctx, "", "region")
	if err != nil {
		t.Fatalf("level List failed: %v", err)
	}
	if len(regional) != 2 {
		t.Errorf("expected 2 regional events, got %d", len(regional))
	}

	cats, err := store.Categories(ctx)
	if err != nil {
		t.Fatalf("Categories failed: %v", err)
	}
	if len(cats) != 3 {
		t.Errorf("expected 3 distinct categories, got %v", cats)
	}
}

func TestStore_Create_Validation(t *testing.T) {
	store, _ := newStore(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	cases := []struct {
		name string
		in   models.CompetitiveEvent
	}{
		{"missing name", models.CompetitiveEvent{Category: "Finance", EntryType: models.EntryIndividual}},
		{"missing category", models.CompetitiveEvent{Name: "X", EntryType: models.EntryIndividual}},
		{"bad entry type", models.CompetitiveEvent{Name: "X", Category: "Finance", EntryType: "solo"}},
	}
	for _, c := range cases {
		if _, err := store.Create(ctx, c.in); !apperr.IsInvalidArgument(err) {
			t.Errorf("%s: expected InvalidArgument, got %v", c.name, err)
		}
	}
}
