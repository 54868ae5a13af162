// Package service provides the application services composing the store and
// the summary generator.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/perkwatch/perkwatch/domain/competitor"
	"github.com/perkwatch/perkwatch/domain/repository"
	"github.com/perkwatch/perkwatch/internal/database"
)

// Competitor provides read access to competitor records.
type Competitor struct {
	store competitor.Store
}

// NewCompetitor creates a new Competitor service.
func NewCompetitor(store competitor.Store) *Competitor {
	return &Competitor{store: store}
}

// Get returns the competitor with the given id.
// A missing row is reported as competitor.ErrNotFound; any other store
// failure wraps competitor.ErrStoreRead.
func (s *Competitor) Get(ctx context.Context, id int64) (competitor.Competitor, error) {
	c, err := s.store.FindOne(ctx, repository.WithID(id))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return competitor.Competitor{}, fmt.Errorf("%w: id %d", competitor.ErrNotFound, id)
		}
		return competitor.Competitor{}, fmt.Errorf("%w: %w", competitor.ErrStoreRead, err)
	}
	return c, nil
}

// ListMissingSummaries returns competitors whose program_summary is null,
// in store order.
func (s *Competitor) ListMissingSummaries(ctx context.Context) ([]competitor.Competitor, error) {
	rows, err := s.store.Find(ctx, competitor.WithoutSummary(), repository.WithOrderAsc("id"))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", competitor.ErrStoreRead, err)
	}
	return rows, nil
}

// Count returns the number of competitors matching the given options.
func (s *Competitor) Count(ctx context.Context, options ...repository.Option) (int64, error) {
	count, err := s.store.Count(ctx, options...)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", competitor.ErrStoreRead, err)
	}
	return count, nil
}
