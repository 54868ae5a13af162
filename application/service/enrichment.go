package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/perkwatch/perkwatch/domain/competitor"
)

// Summarizer generates a loyalty-program summary for a competitor name.
type Summarizer interface {
	Summary(ctx context.Context, name string) (string, error)
}

// BatchResult reports the outcome of a batch enrichment run.
type BatchResult struct {
	updated   []competitor.Competitor
	failedIDs []int64
}

// Updated returns the competitors enriched successfully, in processing order.
func (r BatchResult) Updated() []competitor.Competitor {
	result := make([]competitor.Competitor, len(r.updated))
	copy(result, r.updated)
	return result
}

// FailedIDs returns the ids whose enrichment failed, in processing order.
func (r BatchResult) FailedIDs() []int64 {
	result := make([]int64, len(r.failedIDs))
	copy(result, r.failedIDs)
	return result
}

// Empty returns true when the batch found nothing to process.
func (r BatchResult) Empty() bool {
	return len(r.updated) == 0 && len(r.failedIDs) == 0
}

// Enrichment sequences summary generation and write-back for competitors.
type Enrichment struct {
	competitors *Competitor
	store       competitor.Store
	summarizer  Summarizer
	log         *slog.Logger
}

// NewEnrichment creates a new Enrichment orchestrator.
func NewEnrichment(competitors *Competitor, store competitor.Store, summarizer Summarizer, log *slog.Logger) *Enrichment {
	if log == nil {
		log = slog.Default()
	}
	return &Enrichment{
		competitors: competitors,
		store:       store,
		summarizer:  summarizer,
		log:         log,
	}
}

// Enrich generates a summary for the named competitor and writes it to the
// row matching id, returning the updated record. The caller is responsible
// for having confirmed the row exists; an update matching no rows wraps
// competitor.ErrStoreWrite. Generation failures propagate unretried.
func (e *Enrichment) Enrich(ctx context.Context, id int64, name string) (competitor.Competitor, error) {
	e.log.InfoContext(ctx, "updating competitor summary", "competitor_id", id, "competitor_name", name)

	summary, err := e.summarizer.Summary(ctx, name)
	if err != nil {
		return competitor.Competitor{}, err
	}

	updated, affected, err := e.store.UpdateSummary(ctx, id, summary)
	if err != nil {
		return competitor.Competitor{}, fmt.Errorf("%w: %w", competitor.ErrStoreWrite, err)
	}
	if affected == 0 {
		return competitor.Competitor{}, fmt.Errorf("%w: update matched no rows for id %d", competitor.ErrStoreWrite, id)
	}

	e.log.InfoContext(ctx, "updated competitor summary", "competitor_id", id, "competitor_name", name)
	return updated, nil
}

// EnrichAll enriches every competitor whose summary is null, strictly one at
// a time in listing order. Per-row failures are logged, recorded in the
// result's failed ids, and never abort the batch; only the initial listing
// failure is returned as an error.
func (e *Enrichment) EnrichAll(ctx context.Context) (BatchResult, error) {
	rows, err := e.competitors.ListMissingSummaries(ctx)
	if err != nil {
		return BatchResult{}, err
	}

	if len(rows) == 0 {
		e.log.InfoContext(ctx, "no competitors need summary updates")
		return BatchResult{}, nil
	}

	e.log.InfoContext(ctx, "starting batch summary update", "count", len(rows))

	var result BatchResult
	for _, row := range rows {
		updated, err := e.Enrich(ctx, row.ID(), row.Name())
		if err != nil {
			e.log.ErrorContext(ctx, "failed to enrich competitor",
				"competitor_id", row.ID(),
				"competitor_name", row.Name(),
				"error", err,
			)
			result.failedIDs = append(result.failedIDs, row.ID())
			continue
		}
		result.updated = append(result.updated, updated)
	}

	e.log.InfoContext(ctx, "batch summary update complete",
		"total_processed", len(result.updated),
		"failed", len(result.failedIDs),
	)
	return result, nil
}
