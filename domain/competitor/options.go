package competitor

import "github.com/perkwatch/perkwatch/domain/repository"

// WithName filters by the "competitor_name" column.
func WithName(name string) repository.Option {
	return repository.WithCondition("competitor_name", name)
}

// WithoutSummary filters for rows whose "program_summary" column is NULL.
func WithoutSummary() repository.Option {
	return repository.WithConditionNull("program_summary")
}
