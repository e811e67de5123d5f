package output

import (
	"time"

	"github.com/rgehrsitz/sharesplit/internal/calculation"
	"github.com/rgehrsitz/sharesplit/internal/domain"
)

// Report is the input of every formatter: one calculation run, successful or not
type Report struct {
	ScenarioName  string
	Description   string
	CalculationID string
	GeneratedAt   time.Time

	Model   domain.AllocationModel
	Project domain.ProjectFinancials
	Bonuses domain.RoleBonusConfig

	// Distribution is nil when the calculation failed
	Distribution *domain.Distribution
	RoleCounts   calculation.RoleCounts
	PerHead      calculation.PerHeadBonuses

	Errors   []string
	Warnings []string
}

// NewReport assembles a report from a scenario and the engine outcome
func NewReport(s *domain.Scenario, dist *domain.Distribution, err error) *Report {
	r := &Report{
		ScenarioName: s.Name,
		Description:  s.Description,
		GeneratedAt:  time.Now(),
		Model:        domain.ParseAllocationModel(string(s.Params.Model)),
		Project:      s.Project,
		Bonuses:      s.Bonuses,
		Distribution: dist,
	}

	participants := s.Participants
	if dist != nil {
		participants = make([]domain.Participant, 0, len(dist.Results))
		for _, res := range dist.Results {
			participants = append(participants, domain.Participant{Name: res.Name, Role: res.Role, Payment: res.Payment})
		}
		r.Warnings = append(r.Warnings, dist.Warnings...)
	}
	r.RoleCounts = calculation.CountRoles(participants)
	r.PerHead = calculation.SplitBonuses(s.Bonuses, r.RoleCounts)

	if err != nil {
		r.Errors = append(r.Errors, domain.BannerMessage(err))
	}
	return r
}

// Failed reports whether the calculation produced no distribution
func (r *Report) Failed() bool {
	return r.Distribution == nil
}

// Results returns the result rows, empty for a failed run
func (r *Report) Results() []domain.Result {
	if r.Distribution == nil {
		return nil
	}
	return r.Distribution.Results
}
