package competitor

import (
	"context"

	"github.com/perkwatch/perkwatch/domain/repository"
)

// Store persists competitor records.
type Store interface {
	// Find retrieves competitors matching the given options.
	Find(ctx context.Context, options ...repository.Option) ([]Competitor, error)

	// FindOne retrieves a single competitor matching the given options.
	FindOne(ctx context.Context, options ...repository.Option) (Competitor, error)

	// Count returns the number of competitors matching the given options.
	Count(ctx context.Context, options ...repository.Option) (int64, error)

	// Save creates or updates a competitor row.
	Save(ctx context.Context, c Competitor) (Competitor, error)

	// UpdateSummary issues a partial update setting program_summary for the row
	// matching id and returns the updated row. The returned row count reflects
	// the rows the update matched; zero matched rows is reported by the caller
	// as ErrStoreWrite.
	UpdateSummary(ctx context.Context, id int64, summary string) (Competitor, int64, error)
}
