package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/perkwatch/perkwatch/application/service"
	"github.com/perkwatch/perkwatch/domain/competitor"
	"github.com/perkwatch/perkwatch/infrastructure/persistence"
	"github.com/perkwatch/perkwatch/internal/testdb"
)

// fakeSummarizer returns a deterministic summary per name and can be told
// to fail for specific names.
type fakeSummarizer struct {
	failFor map[string]bool
	calls   int
}

func (f *fakeSummarizer) Summary(_ context.Context, name string) (string, error) {
	f.calls++
	if f.failFor[name] {
		return "", fmt.Errorf("%w: model unavailable", competitor.ErrSummaryGeneration)
	}
	return "summary for " + name, nil
}

func newFixture(t *testing.T, summarizer service.Summarizer) (*service.Enrichment, persistence.CompetitorStore) {
	t.Helper()
	db := testdb.New(t)
	store := persistence.NewCompetitorStore(db)
	competitors := service.NewCompetitor(store)
	return service.NewEnrichment(competitors, store, summarizer, nil), store
}

func TestEnrichment_Enrich(t *testing.T) {
	summarizer := &fakeSummarizer{}
	enrichment, store := newFixture(t, summarizer)
	ctx := context.Background()

	saved, err := store.Save(ctx, competitor.NewCompetitor("Acme"))
	require.NoError(t, err)

	updated, err := enrichment.Enrich(ctx, saved.ID(), saved.Name())
	require.NoError(t, err)
	require.Equal(t, saved.ID(), updated.ID())
	require.Equal(t, "summary for Acme", updated.Summary())
}

func TestEnrichment_Enrich_UnknownID(t *testing.T) {
	summarizer := &fakeSummarizer{}
	enrichment, _ := newFixture(t, summarizer)

	_, err := enrichment.Enrich(context.Background(), 999, "Ghost")
	require.ErrorIs(t, err, competitor.ErrStoreWrite)
}

func TestEnrichment_Enrich_GenerationFailureLeavesRowUntouched(t *testing.T) {
	summarizer := &fakeSummarizer{failFor: map[string]bool{"Acme": true}}
	enrichment, store := newFixture(t, summarizer)
	ctx := context.Background()

	saved, err := store.Save(ctx, competitor.NewCompetitor("Acme"))
	require.NoError(t, err)

	_, err = enrichment.Enrich(ctx, saved.ID(), saved.Name())
	require.ErrorIs(t, err, competitor.ErrSummaryGeneration)

	missing, err := store.Find(ctx, competitor.WithoutSummary())
	require.NoError(t, err)
	require.Len(t, missing, 1, "failed generation must not write a summary")
}

func TestEnrichment_EnrichAll_Empty(t *testing.T) {
	summarizer := &fakeSummarizer{}
	enrichment, _ := newFixture(t, summarizer)

	result, err := enrichment.EnrichAll(context.Background())
	require.NoError(t, err)
	require.True(t, result.Empty())
	require.Zero(t, summarizer.calls, "no completion calls when nothing to process")
}

func TestEnrichment_EnrichAll_PartialFailure(t *testing.T) {
	summarizer := &fakeSummarizer{failFor: map[string]bool{"Globex": true}}
	enrichment, store := newFixture(t, summarizer)
	ctx := context.Background()

	var globexID int64
	for _, name := range []string{"Acme", "Globex", "Initech"} {
		saved, err := store.Save(ctx, competitor.NewCompetitor(name))
		require.NoError(t, err)
		if name == "Globex" {
			globexID = saved.ID()
		}
	}

	result, err := enrichment.EnrichAll(ctx)
	require.NoError(t, err, "per-row failures must not abort the batch")
	require.Len(t, result.Updated(), 2)
	require.Equal(t, []int64{globexID}, result.FailedIDs())

	// The failing row's summary stays null.
	missing, err := store.Find(ctx, competitor.WithoutSummary())
	require.NoError(t, err)
	require.Len(t, missing, 1)
	require.Equal(t, "Globex", missing[0].Name())
}

func TestEnrichment_EnrichAll_SkipsRowsWithSummaries(t *testing.T) {
	summarizer := &fakeSummarizer{}
	enrichment, store := newFixture(t, summarizer)
	ctx := context.Background()

	_, err := store.Save(ctx, competitor.NewCompetitor("Acme").WithSummary("already done"))
	require.NoError(t, err)
	_, err = store.Save(ctx, competitor.NewCompetitor("Globex"))
	require.NoError(t, err)

	result, err := enrichment.EnrichAll(ctx)
	require.NoError(t, err)
	require.Len(t, result.Updated(), 1)
	require.Equal(t, "Globex", result.Updated()[0].Name())
	require.Equal(t, 1, summarizer.calls)
}

func TestCompetitor_Get(t *testing.T) {
	db := testdb.New(t)
	store := persistence.NewCompetitorStore(db)
	competitors := service.NewCompetitor(store)
	ctx := context.Background()

	saved, err := store.Save(ctx, competitor.NewCompetitor("Acme"))
	require.NoError(t, err)

	got, err := competitors.Get(ctx, saved.ID())
	require.NoError(t, err)
	require.Equal(t, "Acme", got.Name())

	_, err = competitors.Get(ctx, saved.ID()+1)
	require.True(t, errors.Is(err, competitor.ErrNotFound))
}
