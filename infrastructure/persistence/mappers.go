package persistence

import "github.com/perkwatch/perkwatch/domain/competitor"

// CompetitorMapper maps between domain Competitor and CompetitorModel.
type CompetitorMapper struct{}

// ToDomain converts a CompetitorModel to a domain Competitor.
func (m CompetitorMapper) ToDomain(e CompetitorModel) competitor.Competitor {
	return competitor.ReconstructCompetitor(e.ID, e.CompetitorName, e.ProgramSummary)
}

// ToModel converts a domain Competitor to a CompetitorModel.
func (m CompetitorMapper) ToModel(c competitor.Competitor) CompetitorModel {
	model := CompetitorModel{
		ID:             c.ID(),
		CompetitorName: c.Name(),
	}
	if c.HasSummary() {
		summary := c.Summary()
		model.ProgramSummary = &summary
	}
	return model
}
