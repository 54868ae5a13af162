// Package competitor provides domain types for competitor records and their
// AI-generated loyalty-program summaries.
package competitor

// Competitor represents one row of the competitors table.
// This is an immutable value object identified by its ID once persisted.
type Competitor struct {
	id      int64
	name    string
	summary string
	// hasSummary distinguishes an empty summary from a NULL column.
	hasSummary bool
}

// NewCompetitor creates a competitor for new instances (not yet persisted).
func NewCompetitor(name string) Competitor {
	return Competitor{name: name}
}

// ReconstructCompetitor recreates a competitor from persistence (for store use).
// summary is nil when the program_summary column is NULL.
func ReconstructCompetitor(id int64, name string, summary *string) Competitor {
	c := Competitor{id: id, name: name}
	if summary != nil {
		c.summary = *summary
		c.hasSummary = true
	}
	return c
}

// ID returns the competitor's database identifier.
func (c Competitor) ID() int64 {
	return c.id
}

// Name returns the competitor's name.
func (c Competitor) Name() string {
	return c.name
}

// Summary returns the loyalty-program summary, or the empty string when none
// has been written yet.
func (c Competitor) Summary() string {
	return c.summary
}

// HasSummary returns true once a summary has been written for this competitor.
func (c Competitor) HasSummary() bool {
	return c.hasSummary
}

// WithID returns a copy of the competitor with the specified ID.
func (c Competitor) WithID(id int64) Competitor {
	c.id = id
	return c
}

// WithSummary returns a copy of the competitor with the given summary.
func (c Competitor) WithSummary(summary string) Competitor {
	c.summary = summary
	c.hasSummary = true
	return c
}
