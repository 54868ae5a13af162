package persistence

import (
	"context"
	"fmt"

	"github.com/perkwatch/perkwatch/domain/competitor"
	"github.com/perkwatch/perkwatch/domain/repository"
	"github.com/perkwatch/perkwatch/internal/database"
)

// CompetitorStore implements competitor.Store using GORM.
type CompetitorStore struct {
	database.Repository[competitor.Competitor, CompetitorModel]
}

// NewCompetitorStore creates a new CompetitorStore.
func NewCompetitorStore(db database.Database) CompetitorStore {
	return CompetitorStore{
		Repository: database.NewRepository[competitor.Competitor, CompetitorModel](db, CompetitorMapper{}, "competitor"),
	}
}

// Save creates or updates a competitor row.
func (s CompetitorStore) Save(ctx context.Context, c competitor.Competitor) (competitor.Competitor, error) {
	model := s.Mapper().ToModel(c)

	if model.ID == 0 {
		result := s.DB(ctx).Create(&model)
		if result.Error != nil {
			return competitor.Competitor{}, fmt.Errorf("create competitor: %w", result.Error)
		}
	} else {
		result := s.DB(ctx).Save(&model)
		if result.Error != nil {
			return competitor.Competitor{}, fmt.Errorf("update competitor: %w", result.Error)
		}
	}

	return s.Mapper().ToDomain(model), nil
}

// UpdateSummary sets program_summary for the row matching id in a single
// partial UPDATE and returns the updated row plus the matched row count.
// The read-back is separate from the UPDATE; the column write itself is atomic.
func (s CompetitorStore) UpdateSummary(ctx context.Context, id int64, summary string) (competitor.Competitor, int64, error) {
	result := s.DB(ctx).
		Model(&CompetitorModel{}).
		Where("id = ?", id).
		Update("program_summary", summary)
	if result.Error != nil {
		return competitor.Competitor{}, 0, fmt.Errorf("update competitor summary: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return competitor.Competitor{}, 0, nil
	}

	updated, err := s.FindOne(ctx, repository.WithID(id))
	if err != nil {
		return competitor.Competitor{}, result.RowsAffected, fmt.Errorf("read back competitor %d: %w", id, err)
	}
	return updated, result.RowsAffected, nil
}

// AutoMigrate runs GORM auto migration for all models.
func AutoMigrate(db database.Database) error {
	return db.Session(context.Background()).AutoMigrate(&CompetitorModel{})
}

// Ensure CompetitorStore implements the domain interface.
var _ competitor.Store = (*CompetitorStore)(nil)
