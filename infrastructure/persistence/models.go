// Package persistence provides database storage implementations.
package persistence

// CompetitorModel is the GORM model for the competitors table.
// ProgramSummary is a pointer so a never-enriched row round-trips as NULL
// rather than an empty string.
type CompetitorModel struct {
	ID             int64   `gorm:"column:id;primaryKey;autoIncrement"`
	CompetitorName string  `gorm:"column:competitor_name;not null"`
	ProgramSummary *string `gorm:"column:program_summary;type:text"`
}

// TableName returns the table name.
func (CompetitorModel) TableName() string {
	return "competitors"
}
