package calculation

import (
	"fmt"
	"strings"

	"github.com/rgehrsitz/sharesplit/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	// recommendedMaxWeight is the largest property weight that passes without an advisory
	recommendedMaxWeight = decimal.NewFromInt(2)
)

// DistributionEngine computes how the 100% share budget is split among participants.
// It holds no per-call state and may be shared between goroutines.
type DistributionEngine struct {
	Logger Logger
}

// NewDistributionEngine creates an engine that logs nothing
func NewDistributionEngine() *DistributionEngine {
	return &DistributionEngine{Logger: NopLogger{}}
}

// SetLogger replaces the engine logger; nil restores the no-op logger
func (de *DistributionEngine) SetLogger(l Logger) {
	if l == nil {
		de.Logger = NopLogger{}
		return
	}
	de.Logger = l
}

func (de *DistributionEngine) logger() Logger {
	if de.Logger == nil {
		return NopLogger{}
	}
	return de.Logger
}

// Compute runs the distribution for a scenario
func (de *DistributionEngine) Compute(s *domain.Scenario) (*domain.Distribution, error) {
	if s == nil {
		return nil, domain.NewDistributionError("compute", domain.ErrInvalidParameter, "scenario is required")
	}
	de.logger().Debugf("computing scenario %q with %d participants", s.Name, len(s.Participants))
	return de.ComputeDistribution(s.Participants, s.Bonuses, s.Project, s.Params)
}

// ComputeDistribution is a convenience wrapper around a default engine
func ComputeDistribution(participants []domain.Participant, bonuses domain.RoleBonusConfig, project domain.ProjectFinancials, params domain.ModelParams) (*domain.Distribution, error) {
	return NewDistributionEngine().ComputeDistribution(participants, bonuses, project, params)
}

// pools holds the budget split decided before any participant is allocated
type pools struct {
	model                   domain.AllocationModel
	weight                  decimal.Decimal
	rolePool                decimal.Decimal
	propertyPool            decimal.Decimal
	propertyProfitEffective decimal.Decimal
	basePool                decimal.Decimal
	profit                  decimal.Decimal
	profitable              bool
	profitAdvisory          string
}

// ComputeDistribution validates the inputs, sizes the pools and allocates
// equity and profit percentages to every participant. On a fatal condition it
// returns a *domain.DistributionError and no distribution.
func (de *DistributionEngine) ComputeDistribution(participants []domain.Participant, bonuses domain.RoleBonusConfig, project domain.ProjectFinancials, params domain.ModelParams) (*domain.Distribution, error) {
	log := de.logger()
	var warnings []string

	model := domain.ParseAllocationModel(string(params.Model))
	weight := params.EffectiveWeight()

	if err := validateInputs(participants, bonuses, project); err != nil {
		log.Warnf("rejected inputs: %v", err)
		return nil, err
	}
	if model == domain.ModelValueWeighted {
		advisories, err := validateModelParams(weight, params.ProfitMinPct, params.ProfitMaxPct)
		if err != nil {
			log.Warnf("rejected model parameters: %v", err)
			return nil, err
		}
		warnings = append(warnings, advisories...)
	}

	p, err := sizePools(model, weight, bonuses, project)
	if err != nil {
		log.Warnf("budget check failed: %v", err)
		return nil, err
	}
	log.Debugf("pools model=%s base=%s role=%s property=%s profitable=%t",
		model, p.basePool, p.rolePool, p.propertyPool, p.profitable)

	if !p.profitable {
		warnings = append(warnings, p.profitAdvisory)
	}
	if strings.TrimSpace(project.PropertyOwner) != "" && !project.PropertyValue.IsPositive() {
		warnings = append(warnings, "Property owner name provided but property value is 0 or missing.")
	}

	all := withPropertyOwner(participants, project)
	if len(all) == 0 {
		return nil, domain.NewDistributionError("compute_distribution", domain.ErrNoParticipants,
			"At least one investor or property owner is required.")
	}

	perHead := SplitBonuses(bonuses, CountRoles(all))

	denominator := GuardZeroDivision(cashDenominator(all, model, project.PropertyValue, weight))
	if denominator.IsZero() && p.basePool.IsPositive() {
		warnings = append(warnings, "Base pool cannot be distributed; only role/property pools apply.")
		p.basePool = decimal.Zero
	}

	results := allocateEquity(all, p, perHead, denominator, project.PropertyValue)

	profitShares, err := profitPercentages(results, p, params)
	if err != nil {
		log.Warnf("profit bounds failed: %v", err)
		return nil, err
	}
	profitShares = renormalize(profitShares)

	for i := range results {
		results[i].ProfitPct = profitShares[i]
		results[i].FinalValue = results[i].EquityPct.Mul(project.SalePrice).Div(domain.Hundred)
		results[i].ProfitValue = results[i].ProfitPct.Mul(p.profit).Div(domain.Hundred)
	}

	meta := buildMeta(results, all, p, bonuses, project, params, denominator)

	if meta.CashContributions.LessThan(project.Cost) {
		missing := project.Cost.Sub(meta.CashContributions)
		warnings = append(warnings, fmt.Sprintf(
			"Cash investments (%s) are less than the project cost (%s). Need %s more.",
			meta.CashContributions.StringFixed(2), project.Cost.StringFixed(2), missing.StringFixed(2)))
	}

	for _, w := range warnings {
		log.Infof("advisory: %s", w)
	}

	return &domain.Distribution{
		Results:  results,
		Meta:     meta,
		Warnings: warnings,
	}, nil
}

// sizePools computes the role, property and base pools and rejects budgets above 100%
func sizePools(model domain.AllocationModel, weight decimal.Decimal, bonuses domain.RoleBonusConfig, project domain.ProjectFinancials) (pools, error) {
	p := pools{
		model:    model,
		weight:   weight,
		rolePool: bonuses.RolePool(),
		profit:   project.Profit(),
	}
	p.profitable, p.profitAdvisory = ValidateProfit(project.SalePrice, project.Cost)

	if model == domain.ModelValueWeighted {
		p.basePool = domain.Hundred.Sub(p.rolePool)
		if p.basePool.IsNegative() {
			excess := p.basePool.Neg()
			return p, budgetExceeded(excess, fmt.Sprintf(
				"Share budget exceeds 100%% by %s%%. Reduce role pools (%s%%).",
				excess.StringFixed(2), p.rolePool.StringFixed(2)))
		}
		return p, nil
	}

	if project.PropertyValue.IsPositive() && p.profitable {
		p.propertyProfitEffective = bonuses.PropertyProfit
	}
	p.propertyPool = bonuses.PropertyBase.Add(p.propertyProfitEffective)
	p.basePool = domain.Hundred.Sub(p.rolePool).Sub(p.propertyPool)
	if p.basePool.IsNegative() {
		excess := p.basePool.Neg()
		return p, budgetExceeded(excess, fmt.Sprintf(
			"Share budget exceeds 100%% by %s%%. Reduce role pools (%s%%) or property pool (%s%%).",
			excess.StringFixed(2), p.rolePool.StringFixed(2), p.propertyPool.StringFixed(2)))
	}
	return p, nil
}

func budgetExceeded(excess decimal.Decimal, message string) error {
	err := domain.NewDistributionError("size_pools", domain.ErrBudgetExceeded, message)
	err.Excess = excess
	return err
}

// withPropertyOwner returns a fresh participant list with the synthetic
// property owner appended when the project names one with positive value
func withPropertyOwner(participants []domain.Participant, project domain.ProjectFinancials) []domain.Participant {
	all := make([]domain.Participant, 0, len(participants)+1)
	all = append(all, participants...)
	if project.HasPropertyOwner() {
		all = append(all, domain.Participant{
			Name:    strings.TrimSpace(project.PropertyOwner),
			Role:    domain.RolePropertyOwner,
			Payment: project.PropertyValue,
		})
	}
	return all
}

// effectivePayment is what a participant contributes to the pro-rata base
func effectivePayment(p domain.Participant, model domain.AllocationModel, propertyValue, weight decimal.Decimal) decimal.Decimal {
	if p.IsPropertyOwner() {
		if model == domain.ModelValueWeighted {
			return propertyValue.Mul(weight)
		}
		return decimal.Zero
	}
	return p.Payment
}

// cashDenominator sums the contributions the base pool is divided over.
// Negotiated counts positive cash payments only; ValueWeighted adds the weighted property value.
func cashDenominator(participants []domain.Participant, model domain.AllocationModel, propertyValue, weight decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, p := range participants {
		if model == domain.ModelNegotiated && (p.IsPropertyOwner() || !p.Payment.IsPositive()) {
			continue
		}
		total = total.Add(effectivePayment(p, model, propertyValue, weight))
	}
	return total
}

// allocateEquity builds one result row per participant with base, role and property shares
func allocateEquity(participants []domain.Participant, p pools, perHead PerHeadBonuses, denominator, propertyValue decimal.Decimal) []domain.Result {
	results := make([]domain.Result, 0, len(participants))
	distributable := denominator.IsPositive() && p.basePool.IsPositive()

	for _, participant := range participants {
		var basePct, rolePct, propertyPct decimal.Decimal

		switch participant.Role {
		case domain.RolePropertyOwner:
			if p.model == domain.ModelNegotiated {
				propertyPct = p.propertyPool
			} else if distributable {
				eff := effectivePayment(participant, p.model, propertyValue, p.weight)
				basePct = eff.Mul(p.basePool).Div(denominator)
			}
		case domain.RoleDeveloper, domain.RoleConstructor, domain.RoleInvestor:
			if distributable {
				basePct = participant.Payment.Mul(p.basePool).Div(denominator)
			}
			rolePct = perHead.For(participant.Role)
		}

		results = append(results, domain.Result{
			Name:        participant.Name,
			Role:        participant.Role,
			Payment:     participant.Payment,
			BasePct:     basePct,
			RolePct:     rolePct,
			PropertyPct: propertyPct,
			EquityPct:   basePct.Add(rolePct).Add(propertyPct),
		})
	}
	return results
}

func buildMeta(results []domain.Result, participants []domain.Participant, p pools, bonuses domain.RoleBonusConfig, project domain.ProjectFinancials, params domain.ModelParams, denominator decimal.Decimal) domain.DistributionMeta {
	meta := domain.DistributionMeta{
		Model:              p.model,
		BasePool:           p.basePool,
		RolePool:           p.rolePool,
		PropertyPool:       p.propertyPool,
		EffectiveCashTotal: denominator,
		ProjectCost:        project.Cost,
		SalePrice:          project.SalePrice,
		ProjectProfit:      p.profit,
		IsProfitable:       p.profitable,
		PropertyValue:      project.PropertyValue,
		PropertyOwner:      strings.TrimSpace(project.PropertyOwner),
		DeveloperBonus:     bonuses.Developer,
		ConstructorBonus:   bonuses.Constructor,
		InvestorBonus:      bonuses.Investor,
	}

	if p.model == domain.ModelNegotiated {
		meta.PropertyBaseShare = bonuses.PropertyBase
		meta.PropertyProfitEffective = p.propertyProfitEffective
	} else {
		weight := p.weight
		meta.PropertyWeight = &weight
		meta.PropertyProfitMinPct = params.ProfitMinPct
		meta.PropertyProfitMaxPct = params.ProfitMaxPct
	}

	for _, participant := range participants {
		if participant.IsPropertyOwner() {
			if p.model == domain.ModelValueWeighted {
				meta.CashTotal = meta.CashTotal.Add(participant.Payment)
			}
			continue
		}
		meta.CashTotal = meta.CashTotal.Add(participant.Payment)
		meta.CashContributions = meta.CashContributions.Add(participant.Payment)
	}

	for _, r := range results {
		meta.TotalBasePct = meta.TotalBasePct.Add(r.BasePct)
		meta.TotalRolePct = meta.TotalRolePct.Add(r.RolePct)
		if r.Role == domain.RolePropertyOwner {
			meta.TotalPropertyPct = meta.TotalPropertyPct.Add(r.PropertyPct)
		}
		meta.TotalEquityPct = meta.TotalEquityPct.Add(r.EquityPct)
		meta.TotalProfitPct = meta.TotalProfitPct.Add(r.ProfitPct)
	}
	return meta
}

// validateInputs rejects out-of-range money, percentages and malformed participants
func validateInputs(participants []domain.Participant, bonuses domain.RoleBonusConfig, project domain.ProjectFinancials) error {
	if err := ValidateNonNegative(
		NamedValue{"project_cost", project.Cost},
		NamedValue{"sale_price", project.SalePrice},
		NamedValue{"property_value", project.PropertyValue},
	); err != nil {
		return err
	}

	if err := validatePercentages(
		NamedValue{"developer_bonus", bonuses.Developer},
		NamedValue{"constructor_bonus", bonuses.Constructor},
		NamedValue{"investor_bonus", bonuses.Investor},
		NamedValue{"property_base_share", bonuses.PropertyBase},
		NamedValue{"property_profit_share", bonuses.PropertyProfit},
		NamedValue{"project_property_profit_share", project.PropertyProfitSharePct},
	); err != nil {
		return err
	}

	for i, p := range participants {
		if strings.TrimSpace(p.Name) == "" {
			return domain.NewDistributionError("validate_inputs", domain.ErrInvalidParameter,
				fmt.Sprintf("participant %d has no name", i+1))
		}
		if !p.Role.Valid() {
			return domain.NewDistributionError("validate_inputs", domain.ErrInvalidParameter,
				fmt.Sprintf("participant %s has no valid role", p.Name))
		}
		if p.Payment.IsNegative() {
			return domain.NewDistributionError("validate_inputs", domain.ErrInvalidParameter,
				fmt.Sprintf("payment of %s must be non-negative", p.Name))
		}
		if p.IsPropertyOwner() {
			return domain.NewDistributionError("validate_inputs", domain.ErrInvalidParameter,
				fmt.Sprintf("participant %s is a property owner; the owner is declared with property_owner", p.Name))
		}
	}
	return nil
}

// validateModelParams checks the ValueWeighted knobs and returns advisories
func validateModelParams(weight decimal.Decimal, minPct, maxPct *decimal.Decimal) ([]string, error) {
	invalid := func(msg string) error {
		return domain.NewDistributionError("validate_model_params", domain.ErrInvalidParameter, msg)
	}

	if weight.IsNegative() {
		return nil, invalid("Property weight must be >= 0.")
	}
	if minPct != nil && !inPercentRange(*minPct) {
		return nil, invalid("Property profit min must be between 0 and 100.")
	}
	if maxPct != nil && !inPercentRange(*maxPct) {
		return nil, invalid("Property profit max must be between 0 and 100.")
	}
	if minPct != nil && maxPct != nil && minPct.GreaterThan(*maxPct) {
		return nil, invalid("Property profit min cannot be greater than max.")
	}

	var advisories []string
	if weight.GreaterThan(recommendedMaxWeight) {
		advisories = append(advisories, fmt.Sprintf(
			"Property weight (%s) is above recommended range (0.5–2.0).", weight.StringFixed(2)))
	}
	return advisories, nil
}

func inPercentRange(v decimal.Decimal) bool {
	return !v.IsNegative() && v.LessThanOrEqual(domain.Hundred)
}

func validatePercentages(values ...NamedValue) error {
	for _, v := range values {
		if !inPercentRange(v.Value) {
			return domain.NewDistributionError("validate_inputs", domain.ErrInvalidParameter,
				fmt.Sprintf("%s must be between 0 and 100", v.Name))
		}
	}
	return nil
}
