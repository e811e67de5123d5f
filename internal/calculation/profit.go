package calculation

import (
	"github.com/rgehrsitz/sharesplit/internal/domain"
	"github.com/shopspring/decimal"
)

// profitPercentages starts every participant's profit share at its equity
// share. Under ValueWeighted with a profitable project the property owner's
// share is clamped into [min, max] and the delta is taken from, or given to,
// the other participants in proportion to their current profit shares.
func profitPercentages(results []domain.Result, p pools, params domain.ModelParams) ([]decimal.Decimal, error) {
	shares := make([]decimal.Decimal, len(results))
	ownerIdx := -1
	for i, r := range results {
		shares[i] = r.EquityPct
		if r.Role == domain.RolePropertyOwner {
			ownerIdx = i
		}
	}

	if p.model != domain.ModelValueWeighted || ownerIdx < 0 || !p.profitable {
		return shares, nil
	}

	current := shares[ownerIdx]
	target := ClampProfit(current, params.ProfitMinPct, params.ProfitMaxPct)
	delta := target.Sub(current)
	if delta.IsZero() {
		return shares, nil
	}

	othersSum := decimal.Zero
	for i, s := range shares {
		if i != ownerIdx {
			othersSum = othersSum.Add(s)
		}
	}
	if !othersSum.IsPositive() {
		return nil, domain.NewDistributionError("apply_profit_bounds", domain.ErrBoundsInfeasible,
			"Profit bounds cannot be satisfied with current role/base pools.")
	}

	remaining := othersSum.Sub(delta)
	for i, s := range shares {
		if i == ownerIdx {
			continue
		}
		adjusted := s.Mul(remaining).Div(othersSum)
		if adjusted.IsNegative() {
			return nil, domain.NewDistributionError("apply_profit_bounds", domain.ErrBoundsInfeasible,
				"Profit bounds cannot be satisfied; would result in negative allocations.")
		}
		shares[i] = adjusted
	}
	shares[ownerIdx] = target
	return shares, nil
}

// ClampProfit limits pct to the optional [min, max] range
func ClampProfit(pct decimal.Decimal, min, max *decimal.Decimal) decimal.Decimal {
	if min != nil && pct.LessThan(*min) {
		pct = *min
	}
	if max != nil && pct.GreaterThan(*max) {
		pct = *max
	}
	return pct
}

// renormalize scales the shares so they sum to 100. A zero sum is left as is.
func renormalize(shares []decimal.Decimal) []decimal.Decimal {
	sum := decimal.Sum(decimal.Zero, shares...)
	if sum.IsZero() {
		return shares
	}
	out := make([]decimal.Decimal, len(shares))
	for i, s := range shares {
		out[i] = s.Mul(domain.Hundred).Div(sum)
	}
	return out
}
