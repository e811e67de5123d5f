package compare

import (
	"context"
	"fmt"

	"github.com/rgehrsitz/sharesplit/internal/calculation"
	"github.com/rgehrsitz/sharesplit/internal/domain"
)

// CompareEngine runs a scenario under both allocation models
type CompareEngine struct {
	CalcEngine        *calculation.DistributionEngine
	MetricsCalculator *MetricsCalculator
}

// NewCompareEngine creates a new comparison engine
func NewCompareEngine(calcEngine *calculation.DistributionEngine) *CompareEngine {
	if calcEngine == nil {
		calcEngine = calculation.NewDistributionEngine()
	}
	return &CompareEngine{
		CalcEngine:        calcEngine,
		MetricsCalculator: NewMetricsCalculator(),
	}
}

// Compare computes the scenario under the negotiated and the value-weighted
// model. A model that fails is recorded in its outcome; Compare itself only
// fails on a missing scenario or a cancelled context.
func (ce *CompareEngine) Compare(ctx context.Context, scenario *domain.Scenario) (*ComparisonSet, error) {
	if scenario == nil {
		return nil, fmt.Errorf("scenario is required")
	}

	compSet := &ComparisonSet{ScenarioName: scenario.Name}

	for _, model := range []domain.AllocationModel{domain.ModelNegotiated, domain.ModelValueWeighted} {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("comparison cancelled: %w", err)
		}

		variant := scenario.WithModel(model)
		outcome := ModelOutcome{Model: model, Warnings: []string{}}

		dist, err := ce.CalcEngine.Compute(&variant)
		if err != nil {
			outcome.Error = domain.BannerMessage(err)
		} else {
			outcome.Distribution = dist
			outcome.Warnings = append(outcome.Warnings, dist.Warnings...)
		}

		if model == domain.ModelNegotiated {
			compSet.Negotiated = outcome
		} else {
			compSet.ValueWeighted = outcome
		}
	}

	compSet.Participants = ce.MetricsCalculator.CalculateComparison(
		compSet.Negotiated.Distribution, compSet.ValueWeighted.Distribution)
	compSet.Recommendations = GenerateRecommendations(compSet)

	return compSet, nil
}
