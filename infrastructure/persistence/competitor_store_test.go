package persistence_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/perkwatch/perkwatch/domain/competitor"
	"github.com/perkwatch/perkwatch/domain/repository"
	"github.com/perkwatch/perkwatch/infrastructure/persistence"
	"github.com/perkwatch/perkwatch/internal/testdb"
)

func TestCompetitorStore_SaveRoundTrip(t *testing.T) {
	db := testdb.New(t)
	store := persistence.NewCompetitorStore(db)
	ctx := context.Background()

	saved, err := store.Save(ctx, competitor.NewCompetitor("Acme"))
	require.NoError(t, err)
	require.NotZero(t, saved.ID())
	require.False(t, saved.HasSummary())

	got, err := store.FindOne(ctx, repository.WithID(saved.ID()))
	require.NoError(t, err)
	require.Equal(t, "Acme", got.Name())
	require.False(t, got.HasSummary(), "program_summary should round-trip as NULL")
}

func TestCompetitorStore_UpdateSummary(t *testing.T) {
	db := testdb.New(t)
	store := persistence.NewCompetitorStore(db)
	ctx := context.Background()

	saved, err := store.Save(ctx, competitor.NewCompetitor("Acme"))
	require.NoError(t, err)

	updated, affected, err := store.UpdateSummary(ctx, saved.ID(), "- earns points\n\nA paragraph.")
	require.NoError(t, err)
	require.Equal(t, int64(1), affected)
	require.True(t, updated.HasSummary())
	require.Equal(t, "- earns points\n\nA paragraph.", updated.Summary())

	// Write/read consistency.
	got, err := store.FindOne(ctx, repository.WithID(saved.ID()))
	require.NoError(t, err)
	require.Equal(t, updated.Summary(), got.Summary())
}

func TestCompetitorStore_UpdateSummary_UnknownID(t *testing.T) {
	db := testdb.New(t)
	store := persistence.NewCompetitorStore(db)

	_, affected, err := store.UpdateSummary(context.Background(), 12345, "summary")
	require.NoError(t, err)
	require.Zero(t, affected)
}

func TestCompetitorStore_UpdateSummary_LastWriteWins(t *testing.T) {
	db := testdb.New(t)
	store := persistence.NewCompetitorStore(db)
	ctx := context.Background()

	saved, err := store.Save(ctx, competitor.NewCompetitor("Acme"))
	require.NoError(t, err)

	_, _, err = store.UpdateSummary(ctx, saved.ID(), "first")
	require.NoError(t, err)
	got, _, err := store.UpdateSummary(ctx, saved.ID(), "second")
	require.NoError(t, err)
	require.Equal(t, "second", got.Summary())
}

func TestCompetitorStore_FindWithoutSummary(t *testing.T) {
	db := testdb.New(t)
	store := persistence.NewCompetitorStore(db)
	ctx := context.Background()

	a, err := store.Save(ctx, competitor.NewCompetitor("Acme"))
	require.NoError(t, err)
	_, err = store.Save(ctx, competitor.NewCompetitor("Globex").WithSummary("done"))
	require.NoError(t, err)

	missing, err := store.Find(ctx, competitor.WithoutSummary())
	require.NoError(t, err)
	require.Len(t, missing, 1)
	require.Equal(t, a.ID(), missing[0].ID())
}
