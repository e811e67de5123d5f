package compare

import (
	"fmt"

	"github.com/rgehrsitz/sharesplit/internal/domain"
	"github.com/shopspring/decimal"
)

// ModelOutcome is the result of running one allocation model over the shared inputs
type ModelOutcome struct {
	Model        domain.AllocationModel `json:"model"`
	Distribution *domain.Distribution   `json:"distribution,omitempty"`
	Error        string                 `json:"error,omitempty"`
	Warnings     []string               `json:"warnings"`
}

// Succeeded reports whether the model produced a distribution
func (mo ModelOutcome) Succeeded() bool {
	return mo.Distribution != nil
}

// ParticipantComparison lines up one participant under both models
type ParticipantComparison struct {
	Name string      `json:"name"`
	Role domain.Role `json:"role"`

	// Under the negotiated model
	NegotiatedEquityPct   decimal.Decimal `json:"negotiatedEquityPct"`
	NegotiatedProfitPct   decimal.Decimal `json:"negotiatedProfitPct"`
	NegotiatedFinalValue  decimal.Decimal `json:"negotiatedFinalValue"`
	NegotiatedProfitValue decimal.Decimal `json:"negotiatedProfitValue"`

	// Under the value-weighted model
	WeightedEquityPct   decimal.Decimal `json:"weightedEquityPct"`
	WeightedProfitPct   decimal.Decimal `json:"weightedProfitPct"`
	WeightedFinalValue  decimal.Decimal `json:"weightedFinalValue"`
	WeightedProfitValue decimal.Decimal `json:"weightedProfitValue"`

	// Value-weighted minus negotiated
	EquityDiffPct   decimal.Decimal `json:"equityDiffPct"`
	ProfitDiffPct   decimal.Decimal `json:"profitDiffPct"`
	FinalValueDiff  decimal.Decimal `json:"finalValueDiff"`
	ProfitValueDiff decimal.Decimal `json:"profitValueDiff"`

	InNegotiated    bool `json:"inNegotiated"`
	InValueWeighted bool `json:"inValueWeighted"`
}

// ComparisonSet is the side-by-side view of both allocation models
type ComparisonSet struct {
	ScenarioName    string                  `json:"scenarioName"`
	ConfigPath      string                  `json:"configPath,omitempty"`
	Negotiated      ModelOutcome            `json:"negotiated"`
	ValueWeighted   ModelOutcome            `json:"valueWeighted"`
	Participants    []ParticipantComparison `json:"participants"`
	Recommendations []string                `json:"recommendations"`
}

// MetricsCalculator derives per-participant differences between two distributions
type MetricsCalculator struct{}

// NewMetricsCalculator creates a new metrics calculator
func NewMetricsCalculator() *MetricsCalculator {
	return &MetricsCalculator{}
}

// CalculateComparison matches participants by name. Rows keep the order of
// the negotiated run, followed by names only the value-weighted run produced.
// Either distribution may be nil.
func (mc *MetricsCalculator) CalculateComparison(negotiated, weighted *domain.Distribution) []ParticipantComparison {
	rows := []ParticipantComparison{}

	if negotiated != nil {
		for _, r := range negotiated.Results {
			row := ParticipantComparison{
				Name:                  r.Name,
				Role:                  r.Role,
				NegotiatedEquityPct:   r.EquityPct,
				NegotiatedProfitPct:   r.ProfitPct,
				NegotiatedFinalValue:  r.FinalValue,
				NegotiatedProfitValue: r.ProfitValue,
				InNegotiated:          true,
			}
			if weighted != nil {
				if w, ok := weighted.ResultFor(r.Name); ok {
					setWeighted(&row, w)
				}
			}
			rows = append(rows, row)
		}
	}

	if weighted != nil {
		for _, r := range weighted.Results {
			if negotiated != nil {
				if _, ok := negotiated.ResultFor(r.Name); ok {
					continue
				}
			}
			row := ParticipantComparison{Name: r.Name, Role: r.Role}
			setWeighted(&row, r)
			rows = append(rows, row)
		}
	}

	for i := range rows {
		row := &rows[i]
		row.EquityDiffPct = row.WeightedEquityPct.Sub(row.NegotiatedEquityPct)
		row.ProfitDiffPct = row.WeightedProfitPct.Sub(row.NegotiatedProfitPct)
		row.FinalValueDiff = row.WeightedFinalValue.Sub(row.NegotiatedFinalValue)
		row.ProfitValueDiff = row.WeightedProfitValue.Sub(row.NegotiatedProfitValue)
	}
	return rows
}

func setWeighted(row *ParticipantComparison, r domain.Result) {
	row.WeightedEquityPct = r.EquityPct
	row.WeightedProfitPct = r.ProfitPct
	row.WeightedFinalValue = r.FinalValue
	row.WeightedProfitValue = r.ProfitValue
	row.InValueWeighted = true
}

// row returns the comparison row for a participant name, or nil
func (cs *ComparisonSet) row(name string) *ParticipantComparison {
	for i := range cs.Participants {
		if cs.Participants[i].Name == name {
			return &cs.Participants[i]
		}
	}
	return nil
}

// GenerateRecommendations summarizes how the choice of model moves the shares
func GenerateRecommendations(compSet *ComparisonSet) []string {
	recommendations := []string{}

	if !compSet.Negotiated.Succeeded() {
		recommendations = append(recommendations,
			"Negotiated model cannot be applied: "+compSet.Negotiated.Error)
	}
	if !compSet.ValueWeighted.Succeeded() {
		recommendations = append(recommendations,
			"Value-weighted model cannot be applied: "+compSet.ValueWeighted.Error)
	}
	if !compSet.Negotiated.Succeeded() || !compSet.ValueWeighted.Succeeded() {
		return recommendations
	}

	var owner *ParticipantComparison
	if o, ok := compSet.Negotiated.Distribution.PropertyOwnerResult(); ok {
		owner = compSet.row(o.Name)
	}

	var bestGain, worstLoss *ParticipantComparison
	for i := range compSet.Participants {
		row := &compSet.Participants[i]
		if row == owner {
			continue
		}
		if row.EquityDiffPct.IsPositive() && (bestGain == nil || row.EquityDiffPct.GreaterThan(bestGain.EquityDiffPct)) {
			bestGain = row
		}
		if row.EquityDiffPct.IsNegative() && (worstLoss == nil || row.EquityDiffPct.LessThan(worstLoss.EquityDiffPct)) {
			worstLoss = row
		}
	}

	if owner != nil {
		favoured := "Value-weighted"
		if owner.EquityDiffPct.IsNegative() {
			favoured = "Negotiated"
		}
		if owner.EquityDiffPct.IsZero() {
			recommendations = append(recommendations, fmt.Sprintf(
				"Property owner %s holds %s%% equity under both models", owner.Name, owner.NegotiatedEquityPct.StringFixed(2)))
		} else {
			recommendations = append(recommendations, fmt.Sprintf(
				"Property owner %s: %s%% equity negotiated vs %s%% value-weighted; %s favours the owner by %s points",
				owner.Name,
				owner.NegotiatedEquityPct.StringFixed(2),
				owner.WeightedEquityPct.StringFixed(2),
				favoured,
				owner.EquityDiffPct.Abs().StringFixed(2)))
		}
	} else {
		recommendations = append(recommendations,
			"No property owner: both models differ only through the unallocated property pools")
	}

	if bestGain != nil {
		recommendations = append(recommendations, fmt.Sprintf(
			"Largest gain under value-weighted: %s (+%s points, %s)",
			bestGain.Name, bestGain.EquityDiffPct.StringFixed(2), signedMoney(bestGain.FinalValueDiff)))
	}
	if worstLoss != nil {
		recommendations = append(recommendations, fmt.Sprintf(
			"Largest loss under value-weighted: %s (%s points, %s)",
			worstLoss.Name, worstLoss.EquityDiffPct.StringFixed(2), signedMoney(worstLoss.FinalValueDiff)))
	}

	return recommendations
}

func signedMoney(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-€" + d.Abs().StringFixed(2)
	}
	return "+€" + d.StringFixed(2)
}
