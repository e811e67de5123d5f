package calculation

import (
	"fmt"

	"github.com/rgehrsitz/sharesplit/internal/domain"
	"github.com/shopspring/decimal"
)

var budgetWarningThreshold = decimal.NewFromInt(95)

// NamedValue pairs an input name with its value for error messages
type NamedValue struct {
	Name  string
	Value decimal.Decimal
}

// ValidateNonNegative fails on the first negative value
func ValidateNonNegative(values ...NamedValue) error {
	for _, v := range values {
		if v.Value.IsNegative() {
			return domain.NewDistributionError("validate_non_negative", domain.ErrInvalidParameter,
				fmt.Sprintf("%s must be non-negative", v.Name))
		}
	}
	return nil
}

// ValidateProfit reports whether the sale price exceeds the cost. An
// unprofitable project is not an error; an advisory is returned instead.
func ValidateProfit(salePrice, cost decimal.Decimal) (bool, string) {
	if salePrice.LessThanOrEqual(cost) {
		return false, "Project not profitable; profit-based bonuses will be zero."
	}
	return true, ""
}

// BudgetCheck is the outcome of ValidateShareBudget
type BudgetCheck struct {
	BaseShares     decimal.Decimal
	RolePools      decimal.Decimal
	PropertyShares decimal.Decimal
	Total          decimal.Decimal
	Warning        string
}

// ValidateShareBudget is the simple Negotiated-only budget check. Base shares
// are recomputed from raw payments over the investment excluding property
// value. Totals above 100% fail; totals from 95% to 100% carry a warning.
func ValidateShareBudget(participants []domain.Participant, bonuses domain.RoleBonusConfig, project domain.ProjectFinancials, totalInvestment decimal.Decimal) (BudgetCheck, error) {
	var check BudgetCheck

	withoutProperty := totalInvestment
	if project.PropertyValue.IsPositive() {
		withoutProperty = withoutProperty.Sub(project.PropertyValue)
	}
	if GuardZeroDivision(withoutProperty).IsPositive() {
		for _, p := range participants {
			check.BaseShares = check.BaseShares.Add(p.Payment.Mul(domain.Hundred).Div(withoutProperty))
		}
	}

	check.RolePools = bonuses.RolePool()
	if project.PropertyValue.IsPositive() {
		check.PropertyShares = bonuses.PropertyBase
		if project.IsProfitable() {
			check.PropertyShares = check.PropertyShares.Add(project.PropertyProfitSharePct)
		}
	}
	check.Total = check.BaseShares.Add(check.RolePools).Add(check.PropertyShares)

	if check.Total.GreaterThan(domain.Hundred) {
		err := domain.NewDistributionError("validate_share_budget", domain.ErrBudgetExceeded,
			fmt.Sprintf("Total share budget (%s%%) exceeds 100%%. Please adjust.", check.Total.StringFixed(2)))
		err.Excess = check.Total.Sub(domain.Hundred)
		return check, err
	}
	if check.Total.GreaterThanOrEqual(budgetWarningThreshold) {
		check.Warning = fmt.Sprintf("Total share budget is %s%% (close to 100%%).", check.Total.StringFixed(2))
	}
	return check, nil
}

// GuardZeroDivision returns zero for a zero divisor and the divisor otherwise.
// Callers treat a zero result as "nothing to divide over".
func GuardZeroDivision(total decimal.Decimal) decimal.Decimal {
	if total.IsZero() {
		return decimal.Zero
	}
	return total
}
