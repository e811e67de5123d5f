package calculation

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/rgehrsitz/sharesplit/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func dp(v string) *decimal.Decimal {
	x := decimal.RequireFromString(v)
	return &x
}

// assertDecimal compares two decimals after rounding away division noise
func assertDecimal(t *testing.T, expected string, actual decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	assert.True(t, d(expected).Equal(actual.Round(8)),
		append([]interface{}{fmt.Sprintf("expected %s, got %s", expected, actual)}, msgAndArgs...)...)
}

func sumEquity(results []domain.Result) decimal.Decimal {
	total := decimal.Zero
	for _, r := range results {
		total = total.Add(r.EquityPct)
	}
	return total
}

func sumProfit(results []domain.Result) decimal.Decimal {
	total := decimal.Zero
	for _, r := range results {
		total = total.Add(r.ProfitPct)
	}
	return total
}

func hasWarning(warnings []string, fragment string) bool {
	for _, w := range warnings {
		if strings.Contains(w, fragment) {
			return true
		}
	}
	return false
}

type recordingLogger struct {
	lines []string
}

func (l *recordingLogger) Debugf(format string, args ...any) {
	l.lines = append(l.lines, "DEBUG "+fmt.Sprintf(format, args...))
}
func (l *recordingLogger) Infof(format string, args ...any) {
	l.lines = append(l.lines, "INFO "+fmt.Sprintf(format, args...))
}
func (l *recordingLogger) Warnf(format string, args ...any) {
	l.lines = append(l.lines, "WARN "+fmt.Sprintf(format, args...))
}
func (l *recordingLogger) Errorf(format string, args ...any) {
	l.lines = append(l.lines, "ERROR "+fmt.Sprintf(format, args...))
}

func TestComputeDistribution_TwoDevelopersNoCash(t *testing.T) {
	participants := []domain.Participant{
		{Name: "Alice", Role: domain.RoleDeveloper},
		{Name: "Bob", Role: domain.RoleDeveloper},
	}
	bonuses := domain.RoleBonusConfig{Developer: d("40"), Constructor: d("8"), Investor: d("40")}
	project := domain.ProjectFinancials{Cost: d("10000"), SalePrice: d("15000")}

	dist, err := ComputeDistribution(participants, bonuses, project, domain.ModelParams{})
	require.NoError(t, err)
	require.Len(t, dist.Results, 2)

	for _, r := range dist.Results {
		assertDecimal(t, "20", r.RolePct, r.Name)
		assertDecimal(t, "0", r.BasePct, r.Name)
		assertDecimal(t, "20", r.EquityPct, r.Name)
		assertDecimal(t, "50", r.ProfitPct, r.Name)
	}
	assertDecimal(t, "40", sumEquity(dist.Results))
	assertDecimal(t, "100", sumProfit(dist.Results))

	assert.True(t, dist.Meta.BasePool.IsZero(), "undistributable base pool is forced to zero")
	assert.True(t, hasWarning(dist.Warnings, "Base pool cannot be distributed"))
	assert.True(t, hasWarning(dist.Warnings, "Need 10000.00 more"))
}

func TestComputeDistribution_NegotiatedWithPropertyOwner(t *testing.T) {
	participants := []domain.Participant{
		{Name: "Ivy", Role: domain.RoleInvestor, Payment: d("10000")},
	}
	bonuses := domain.RoleBonusConfig{Investor: d("40"), PropertyBase: d("10"), PropertyProfit: d("5")}
	project := domain.ProjectFinancials{
		Cost:          d("10000"),
		SalePrice:     d("20000"),
		PropertyValue: d("5000"),
		PropertyOwner: "X",
	}

	dist, err := ComputeDistribution(participants, bonuses, project, domain.ModelParams{Model: domain.ModelNegotiated})
	require.NoError(t, err)
	require.Len(t, dist.Results, 2)

	investor, ok := dist.ResultFor("Ivy")
	require.True(t, ok)
	assertDecimal(t, "45", investor.BasePct)
	assertDecimal(t, "40", investor.RolePct)
	assertDecimal(t, "85", investor.EquityPct)
	assertDecimal(t, "17000", investor.FinalValue)
	assertDecimal(t, "8500", investor.ProfitValue)

	owner, ok := dist.PropertyOwnerResult()
	require.True(t, ok)
	assert.Equal(t, "X", owner.Name)
	assertDecimal(t, "15", owner.PropertyPct)
	assertDecimal(t, "0", owner.BasePct)
	assertDecimal(t, "15", owner.EquityPct)
	assertDecimal(t, "5000", owner.Payment)

	assert.True(t, sumEquity(dist.Results).Equal(domain.Hundred), "equity must sum to exactly 100")
	assertDecimal(t, "100", sumProfit(dist.Results))

	meta := dist.Meta
	assertDecimal(t, "45", meta.BasePool)
	assertDecimal(t, "40", meta.RolePool)
	assertDecimal(t, "15", meta.PropertyPool)
	assertDecimal(t, "5", meta.PropertyProfitEffective)
	assertDecimal(t, "10000", meta.CashTotal)
	assertDecimal(t, "10000", meta.EffectiveCashTotal)
	assertDecimal(t, "10000", meta.ProjectProfit)
	assert.True(t, meta.IsProfitable)
	assert.Nil(t, meta.PropertyWeight)
	assert.Empty(t, dist.Warnings)
}

func TestComputeDistribution_NegotiatedOwnerShareIgnoresPropertyValue(t *testing.T) {
	participants := []domain.Participant{
		{Name: "Ivy", Role: domain.RoleInvestor, Payment: d("10000")},
	}
	bonuses := domain.RoleBonusConfig{Investor: d("20"), PropertyBase: d("12"), PropertyProfit: d("3")}

	for _, value := range []string{"1", "5000", "250000"} {
		project := domain.ProjectFinancials{
			Cost:          d("10000"),
			SalePrice:     d("12000"),
			PropertyValue: d(value),
			PropertyOwner: "Olga",
		}
		dist, err := ComputeDistribution(participants, bonuses, project, domain.ModelParams{})
		require.NoError(t, err)

		owner, ok := dist.PropertyOwnerResult()
		require.True(t, ok)
		assertDecimal(t, "15", owner.EquityPct, "property value %s", value)
	}
}

func TestComputeDistribution_NegotiatedUnprofitable(t *testing.T) {
	participants := []domain.Participant{
		{Name: "Ivy", Role: domain.RoleInvestor, Payment: d("10000")},
	}
	bonuses := domain.RoleBonusConfig{Investor: d("20"), PropertyBase: d("10"), PropertyProfit: d("5")}
	project := domain.ProjectFinancials{
		Cost:          d("10000"),
		SalePrice:     d("9000"),
		PropertyValue: d("5000"),
		PropertyOwner: "Olga",
	}

	dist, err := ComputeDistribution(participants, bonuses, project, domain.ModelParams{})
	require.NoError(t, err)

	owner, _ := dist.PropertyOwnerResult()
	assertDecimal(t, "10", owner.EquityPct)
	assertDecimal(t, "0", owner.ProfitValue)
	assertDecimal(t, "0", dist.Meta.PropertyProfitEffective)
	assertDecimal(t, "70", dist.Meta.BasePool)
	assert.False(t, dist.Meta.IsProfitable)
	_, advisory := ValidateProfit(project.SalePrice, project.Cost)
	assert.Contains(t, dist.Warnings, advisory)
	assert.True(t, sumEquity(dist.Results).Equal(domain.Hundred))
}

func TestComputeDistribution_ValueWeightedProfitFloor(t *testing.T) {
	participants := []domain.Participant{
		{Name: "Ivy", Role: domain.RoleInvestor, Payment: d("6000")},
		{Name: "Ian", Role: domain.RoleInvestor, Payment: d("3000")},
	}
	project := domain.ProjectFinancials{
		Cost:          d("10000"),
		SalePrice:     d("12000"),
		PropertyValue: d("1000"),
		PropertyOwner: "Olga",
	}
	params := domain.ModelParams{
		Model:        domain.ModelValueWeighted,
		Weight:       dp("1"),
		ProfitMinPct: dp("20"),
		ProfitMaxPct: dp("30"),
	}

	dist, err := ComputeDistribution(participants, domain.RoleBonusConfig{}, project, params)
	require.NoError(t, err)

	owner, ok := dist.PropertyOwnerResult()
	require.True(t, ok)
	assertDecimal(t, "10", owner.EquityPct)
	assertDecimal(t, "10", owner.BasePct)
	assertDecimal(t, "0", owner.PropertyPct)
	assertDecimal(t, "20", owner.ProfitPct)

	ivy, _ := dist.ResultFor("Ivy")
	ian, _ := dist.ResultFor("Ian")
	assertDecimal(t, "60", ivy.EquityPct)
	assertDecimal(t, "30", ian.EquityPct)
	// the 80% left over keeps the 2:1 ratio between the investors
	assertDecimal(t, "53.33333333", ivy.ProfitPct)
	assertDecimal(t, "26.66666667", ian.ProfitPct)

	assertDecimal(t, "100", sumEquity(dist.Results))
	assertDecimal(t, "100", sumProfit(dist.Results))

	meta := dist.Meta
	assert.Equal(t, domain.ModelValueWeighted, meta.Model)
	assertDecimal(t, "100", meta.BasePool)
	assertDecimal(t, "0", meta.PropertyPool)
	assertDecimal(t, "10000", meta.CashTotal)
	assertDecimal(t, "9000", meta.CashContributions)
	require.NotNil(t, meta.PropertyWeight)
	assertDecimal(t, "1", *meta.PropertyWeight)
	assert.True(t, hasWarning(dist.Warnings, "Need 1000.00 more"))
}

func TestComputeDistribution_ValueWeightedProfitCeiling(t *testing.T) {
	participants := []domain.Participant{
		{Name: "Ivy", Role: domain.RoleInvestor, Payment: d("5000")},
	}
	project := domain.ProjectFinancials{
		Cost:          d("10000"),
		SalePrice:     d("15000"),
		PropertyValue: d("5000"),
		PropertyOwner: "Olga",
	}
	params := domain.ModelParams{Model: domain.ModelValueWeighted, ProfitMaxPct: dp("40")}

	dist, err := ComputeDistribution(participants, domain.RoleBonusConfig{}, project, params)
	require.NoError(t, err)

	owner, _ := dist.PropertyOwnerResult()
	assertDecimal(t, "50", owner.EquityPct)
	assertDecimal(t, "40", owner.ProfitPct)
	assertDecimal(t, "2000", owner.ProfitValue)
	assertDecimal(t, "7500", owner.FinalValue)

	ivy, _ := dist.ResultFor("Ivy")
	assertDecimal(t, "60", ivy.ProfitPct)
	assertDecimal(t, "100", sumProfit(dist.Results))
}

func TestComputeDistribution_ValueWeightedWeightScalesOwner(t *testing.T) {
	participants := []domain.Participant{
		{Name: "Ivy", Role: domain.RoleInvestor, Payment: d("5000")},
	}
	project := domain.ProjectFinancials{
		Cost:          d("10000"),
		SalePrice:     d("15000"),
		PropertyValue: d("5000"),
		PropertyOwner: "Olga",
	}
	bonuses := domain.RoleBonusConfig{Investor: d("10")}

	tests := []struct {
		name          string
		weight        *decimal.Decimal
		expectedOwner string
		expectWarning bool
	}{
		{"default weight", nil, "45", false},
		{"half weight", dp("0.5"), "30", false},
		{"heavy weight", dp("3"), "67.5", true},
		{"zero weight", dp("0"), "0", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := domain.ModelParams{Model: domain.ModelValueWeighted, Weight: tt.weight}
			dist, err := ComputeDistribution(participants, bonuses, project, params)
			require.NoError(t, err)

			owner, _ := dist.PropertyOwnerResult()
			assertDecimal(t, tt.expectedOwner, owner.EquityPct)
			assertDecimal(t, "100", sumEquity(dist.Results))
			assert.Equal(t, tt.expectWarning, hasWarning(dist.Warnings, "above recommended range"))
		})
	}
}

func TestComputeDistribution_ValueWeightedUnprofitableSkipsBounds(t *testing.T) {
	participants := []domain.Participant{
		{Name: "Ivy", Role: domain.RoleInvestor, Payment: d("9000")},
	}
	project := domain.ProjectFinancials{
		Cost:          d("10000"),
		SalePrice:     d("10000"),
		PropertyValue: d("1000"),
		PropertyOwner: "Olga",
	}
	params := domain.ModelParams{Model: domain.ModelValueWeighted, ProfitMinPct: dp("20")}

	dist, err := ComputeDistribution(participants, domain.RoleBonusConfig{}, project, params)
	require.NoError(t, err)

	owner, _ := dist.PropertyOwnerResult()
	assertDecimal(t, "10", owner.ProfitPct)
	assertDecimal(t, "0", owner.ProfitValue)
	assert.True(t, hasWarning(dist.Warnings, "Project not profitable"))
}

func TestComputeDistribution_PerHeadBonuses(t *testing.T) {
	participants := []domain.Participant{
		{Name: "A", Role: domain.RoleInvestor, Payment: d("1000")},
		{Name: "B", Role: domain.RoleInvestor, Payment: d("1000")},
		{Name: "C", Role: domain.RoleInvestor, Payment: d("1000")},
		{Name: "D", Role: domain.RoleConstructor, Payment: d("1000")},
	}
	bonuses := domain.RoleBonusConfig{Investor: d("30"), Constructor: d("10"), Developer: d("20")}
	project := domain.ProjectFinancials{Cost: d("4000"), SalePrice: d("5000")}

	dist, err := ComputeDistribution(participants, bonuses, project, domain.ModelParams{})
	require.NoError(t, err)

	for _, r := range dist.Results {
		assertDecimal(t, "10", r.BasePct, r.Name)
		assertDecimal(t, "10", r.RolePct, r.Name)
		assertDecimal(t, "20", r.EquityPct, r.Name)
	}
	// the developer pool has no holder and stays unallocated
	assertDecimal(t, "80", sumEquity(dist.Results))
	assertDecimal(t, "100", sumProfit(dist.Results))
}

func TestComputeDistribution_Errors(t *testing.T) {
	investor := []domain.Participant{{Name: "Ivy", Role: domain.RoleInvestor, Payment: d("1000")}}
	profitable := domain.ProjectFinancials{Cost: d("1000"), SalePrice: d("2000")}
	withOwner := domain.ProjectFinancials{Cost: d("1000"), SalePrice: d("2000"), PropertyValue: d("1000"), PropertyOwner: "Olga"}
	listedOwner := []domain.Participant{
		{Name: "Ivy", Role: domain.RoleInvestor, Payment: d("1000")},
		{Name: "Olga", Role: domain.RolePropertyOwner, Payment: d("1000")},
	}

	tests := []struct {
		name         string
		participants []domain.Participant
		bonuses      domain.RoleBonusConfig
		project      domain.ProjectFinancials
		params       domain.ModelParams
		kind         error
		message      string
	}{
		{
			name:         "negotiated budget exceeded",
			participants: investor,
			bonuses:      domain.RoleBonusConfig{Developer: d("50"), Constructor: d("30"), Investor: d("20"), PropertyBase: d("10")},
			project:      withOwner,
			kind:         domain.ErrBudgetExceeded,
			message:      "Share budget exceeds 100% by 10.00%. Reduce role pools (100.00%) or property pool (10.00%).",
		},
		{
			name:         "value weighted budget exceeded",
			participants: investor,
			bonuses:      domain.RoleBonusConfig{Developer: d("60"), Investor: d("50")},
			project:      profitable,
			params:       domain.ModelParams{Model: domain.ModelValueWeighted},
			kind:         domain.ErrBudgetExceeded,
			message:      "Share budget exceeds 100% by 10.00%. Reduce role pools (110.00%).",
		},
		{
			name:    "no participants",
			project: profitable,
			kind:    domain.ErrNoParticipants,
			message: "At least one investor or property owner is required.",
		},
		{
			name:         "negative weight",
			participants: investor,
			project:      profitable,
			params:       domain.ModelParams{Model: domain.ModelValueWeighted, Weight: dp("-1")},
			kind:         domain.ErrInvalidParameter,
			message:      "Property weight must be >= 0.",
		},
		{
			name:         "min above 100",
			participants: investor,
			project:      profitable,
			params:       domain.ModelParams{Model: domain.ModelValueWeighted, ProfitMinPct: dp("150")},
			kind:         domain.ErrInvalidParameter,
			message:      "Property profit min must be between 0 and 100.",
		},
		{
			name:         "max below 0",
			participants: investor,
			project:      profitable,
			params:       domain.ModelParams{Model: domain.ModelValueWeighted, ProfitMaxPct: dp("-5")},
			kind:         domain.ErrInvalidParameter,
			message:      "Property profit max must be between 0 and 100.",
		},
		{
			name:         "min above max",
			participants: investor,
			project:      profitable,
			params:       domain.ModelParams{Model: domain.ModelValueWeighted, ProfitMinPct: dp("40"), ProfitMaxPct: dp("30")},
			kind:         domain.ErrInvalidParameter,
			message:      "Property profit min cannot be greater than max.",
		},
		{
			name:    "owner alone cannot be capped",
			project: withOwner,
			params:  domain.ModelParams{Model: domain.ModelValueWeighted, ProfitMaxPct: dp("30")},
			kind:    domain.ErrBoundsInfeasible,
			message: "Profit bounds cannot be satisfied with current role/base pools.",
		},
		{
			name:         "floor would drive others negative",
			participants: investor,
			bonuses:      domain.RoleBonusConfig{Developer: d("50")},
			project:      withOwner,
			params:       domain.ModelParams{Model: domain.ModelValueWeighted, ProfitMinPct: dp("60")},
			kind:         domain.ErrBoundsInfeasible,
			message:      "Profit bounds cannot be satisfied; would result in negative allocations.",
		},
		{
			name:         "negative payment",
			participants: []domain.Participant{{Name: "Ivy", Role: domain.RoleInvestor, Payment: d("-1")}},
			project:      profitable,
			kind:         domain.ErrInvalidParameter,
			message:      "payment of Ivy must be non-negative",
		},
		{
			name:         "unknown role",
			participants: []domain.Participant{{Name: "Ivy", Payment: d("1")}},
			project:      profitable,
			kind:         domain.ErrInvalidParameter,
			message:      "participant Ivy has no valid role",
		},
		{
			name:         "listed property owner",
			participants: listedOwner,
			bonuses:      domain.RoleBonusConfig{PropertyBase: d("10"), PropertyProfit: d("5")},
			project:      withOwner,
			kind:         domain.ErrInvalidParameter,
			message:      "participant Olga is a property owner; the owner is declared with property_owner",
		},
		{
			name:         "bonus above 100",
			participants: investor,
			bonuses:      domain.RoleBonusConfig{Investor: d("101")},
			project:      profitable,
			kind:         domain.ErrInvalidParameter,
			message:      "investor_bonus must be between 0 and 100",
		},
		{
			name:         "negative cost",
			participants: investor,
			project:      domain.ProjectFinancials{Cost: d("-1")},
			kind:         domain.ErrInvalidParameter,
			message:      "project_cost must be non-negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dist, err := ComputeDistribution(tt.participants, tt.bonuses, tt.project, tt.params)
			require.Error(t, err)
			assert.Nil(t, dist)
			assert.True(t, errors.Is(err, tt.kind), "expected %v, got %v", tt.kind, err)

			var de *domain.DistributionError
			require.True(t, errors.As(err, &de))
			assert.Equal(t, tt.message, de.UserMessage())
		})
	}
}

func TestComputeDistribution_BudgetExcess(t *testing.T) {
	participants := []domain.Participant{{Name: "Ivy", Role: domain.RoleInvestor, Payment: d("1000")}}
	bonuses := domain.RoleBonusConfig{Developer: d("70"), Investor: d("42.5")}
	project := domain.ProjectFinancials{Cost: d("1000"), SalePrice: d("2000")}

	_, err := ComputeDistribution(participants, bonuses, project, domain.ModelParams{})
	var de *domain.DistributionError
	require.True(t, errors.As(err, &de))
	assertDecimal(t, "12.5", de.Excess)
}

func TestComputeDistribution_NegotiatedIgnoresValueWeightedKnobs(t *testing.T) {
	participants := []domain.Participant{{Name: "Ivy", Role: domain.RoleInvestor, Payment: d("1000")}}
	project := domain.ProjectFinancials{Cost: d("1000"), SalePrice: d("2000")}
	params := domain.ModelParams{Model: "something else", Weight: dp("-4"), ProfitMinPct: dp("500")}

	dist, err := ComputeDistribution(participants, domain.RoleBonusConfig{}, project, params)
	require.NoError(t, err)
	assert.Equal(t, domain.ModelNegotiated, dist.Meta.Model)
	assertDecimal(t, "100", sumEquity(dist.Results))
}

func TestComputeDistribution_OwnerNamedWithoutValue(t *testing.T) {
	participants := []domain.Participant{{Name: "Ivy", Role: domain.RoleInvestor, Payment: d("1000")}}
	project := domain.ProjectFinancials{Cost: d("1000"), SalePrice: d("2000"), PropertyOwner: "Olga"}

	dist, err := ComputeDistribution(participants, domain.RoleBonusConfig{PropertyBase: d("10")}, project, domain.ModelParams{})
	require.NoError(t, err)
	assert.Len(t, dist.Results, 1)
	assert.True(t, hasWarning(dist.Warnings, "Property owner name provided but property value is 0 or missing."))
	_, ok := dist.PropertyOwnerResult()
	assert.False(t, ok)
}

func TestComputeDistribution_DoesNotMutateInput(t *testing.T) {
	participants := []domain.Participant{{Name: "Ivy", Role: domain.RoleInvestor, Payment: d("1000")}}
	project := domain.ProjectFinancials{Cost: d("1000"), SalePrice: d("2000"), PropertyValue: d("500"), PropertyOwner: "Olga"}

	_, err := ComputeDistribution(participants, domain.RoleBonusConfig{}, project, domain.ModelParams{})
	require.NoError(t, err)
	assert.Len(t, participants, 1)
	assert.Equal(t, "Ivy", participants[0].Name)
}

func TestComputeDistribution_Idempotent(t *testing.T) {
	participants := []domain.Participant{
		{Name: "Ivy", Role: domain.RoleInvestor, Payment: d("7000")},
		{Name: "Dev", Role: domain.RoleDeveloper},
		{Name: "Con", Role: domain.RoleConstructor, Payment: d("2000")},
	}
	bonuses := domain.RoleBonusConfig{Developer: d("15"), Constructor: d("7"), Investor: d("11")}
	project := domain.ProjectFinancials{Cost: d("9000"), SalePrice: d("13000"), PropertyValue: d("3000"), PropertyOwner: "Olga"}
	params := domain.ModelParams{Model: domain.ModelValueWeighted, Weight: dp("0.75"), ProfitMinPct: dp("25")}

	first, err := ComputeDistribution(participants, bonuses, project, params)
	require.NoError(t, err)
	second, err := ComputeDistribution(participants, bonuses, project, params)
	require.NoError(t, err)

	require.Len(t, second.Results, len(first.Results))
	for i := range first.Results {
		assert.True(t, first.Results[i].EquityPct.Equal(second.Results[i].EquityPct))
		assert.True(t, first.Results[i].ProfitPct.Equal(second.Results[i].ProfitPct))
		assert.True(t, first.Results[i].FinalValue.Equal(second.Results[i].FinalValue))
	}
	assert.Equal(t, first.Warnings, second.Warnings)
}

func TestDistributionEngine_Compute(t *testing.T) {
	engine := NewDistributionEngine()
	logger := &recordingLogger{}
	engine.SetLogger(logger)

	scenario := &domain.Scenario{
		Name:         "duplex",
		Project:      domain.ProjectFinancials{Cost: d("1000"), SalePrice: d("1500")},
		Bonuses:      domain.RoleBonusConfig{Developer: d("10")},
		Participants: []domain.Participant{{Name: "Ivy", Role: domain.RoleInvestor, Payment: d("1000")}, {Name: "Dev", Role: domain.RoleDeveloper}},
	}

	dist, err := engine.Compute(scenario)
	require.NoError(t, err)
	assertDecimal(t, "90", dist.Results[0].EquityPct)
	assertDecimal(t, "10", dist.Results[1].EquityPct)
	assert.NotEmpty(t, logger.lines)
	assert.Contains(t, logger.lines[0], "duplex")

	_, err = engine.Compute(nil)
	assert.ErrorIs(t, err, domain.ErrInvalidParameter)

	engine.SetLogger(nil)
	assert.IsType(t, NopLogger{}, engine.Logger)
}
