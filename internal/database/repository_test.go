package database_test

import (
	"context"
	"errors"
	"testing"

	"github.com/perkwatch/perkwatch/domain/competitor"
	"github.com/perkwatch/perkwatch/domain/repository"
	"github.com/perkwatch/perkwatch/infrastructure/persistence"
	"github.com/perkwatch/perkwatch/internal/database"
	"github.com/perkwatch/perkwatch/internal/testdb"
)

func seed(t *testing.T, store persistence.CompetitorStore, names ...string) []competitor.Competitor {
	t.Helper()
	ctx := context.Background()
	saved := make([]competitor.Competitor, 0, len(names))
	for _, name := range names {
		c, err := store.Save(ctx, competitor.NewCompetitor(name))
		if err != nil {
			t.Fatalf("seed %s: %v", name, err)
		}
		saved = append(saved, c)
	}
	return saved
}

func TestRepository_FindAndCount(t *testing.T) {
	db := testdb.New(t)
	store := persistence.NewCompetitorStore(db)
	seed(t, store, "Acme", "Globex", "Initech")
	ctx := context.Background()

	all, err := store.Find(ctx)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("len(Find()) = %d, want 3", len(all))
	}

	count, err := store.Count(ctx, competitor.WithName("Globex"))
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if count != 1 {
		t.Errorf("Count(name=Globex) = %d, want 1", count)
	}
}

func TestRepository_FindOne_NotFound(t *testing.T) {
	db := testdb.New(t)
	store := persistence.NewCompetitorStore(db)

	_, err := store.FindOne(context.Background(), repository.WithID(999))
	if !errors.Is(err, database.ErrNotFound) {
		t.Errorf("FindOne(999) error = %v, want ErrNotFound", err)
	}
}

func TestRepository_NullCondition(t *testing.T) {
	db := testdb.New(t)
	store := persistence.NewCompetitorStore(db)
	saved := seed(t, store, "Acme", "Globex")
	ctx := context.Background()

	if _, _, err := store.UpdateSummary(ctx, saved[0].ID(), "has one"); err != nil {
		t.Fatalf("UpdateSummary: %v", err)
	}

	missing, err := store.Find(ctx, competitor.WithoutSummary())
	if err != nil {
		t.Fatalf("Find(WithoutSummary): %v", err)
	}
	if len(missing) != 1 || missing[0].Name() != "Globex" {
		t.Errorf("Find(WithoutSummary) = %v, want just Globex", missing)
	}
}

func TestRepository_OrderingAndLimit(t *testing.T) {
	db := testdb.New(t)
	store := persistence.NewCompetitorStore(db)
	seed(t, store, "Acme", "Globex", "Initech")
	ctx := context.Background()

	got, err := store.Find(ctx, repository.WithOrderDesc("id"), repository.WithLimit(2))
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Name() != "Initech" || got[1].Name() != "Globex" {
		t.Errorf("order = [%s, %s], want [Initech, Globex]", got[0].Name(), got[1].Name())
	}
}

func TestNewDatabase_UnsupportedDriver(t *testing.T) {
	_, err := database.NewDatabase(context.Background(), "mysql://root@localhost/db")
	if !errors.Is(err, database.ErrUnsupportedDriver) {
		t.Errorf("error = %v, want ErrUnsupportedDriver", err)
	}
}
