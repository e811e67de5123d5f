package domain

import "github.com/shopspring/decimal"

// Result is the computed share breakdown of one participant. All percentages
// are unrounded; presentation layers round them.
type Result struct {
	Name    string          `json:"name"`
	Role    Role            `json:"role"`
	Payment decimal.Decimal `json:"payment"`

	BasePct     decimal.Decimal `json:"share_base_pct"`
	RolePct     decimal.Decimal `json:"share_role_pct"`
	PropertyPct decimal.Decimal `json:"share_property_pct"`

	// EquityPct = BasePct + RolePct + PropertyPct; applied to the sale price
	EquityPct decimal.Decimal `json:"total_equity_pct"`
	// ProfitPct equals EquityPct except under ValueWeighted profit bounds; applied to the profit
	ProfitPct decimal.Decimal `json:"total_profit_pct"`

	FinalValue  decimal.Decimal `json:"final_value"`
	ProfitValue decimal.Decimal `json:"profit_value"`
}

// DistributionMeta summarizes a calculation run for display
type DistributionMeta struct {
	Model AllocationModel `json:"model"`

	// Pools
	BasePool     decimal.Decimal `json:"base_pool"`
	RolePool     decimal.Decimal `json:"role_pool"`
	PropertyPool decimal.Decimal `json:"property_pool"`

	// CashTotal is the display total: non-owner payments under Negotiated,
	// all payments including the raw property value under ValueWeighted.
	CashTotal decimal.Decimal `json:"cash_total"`
	// CashContributions is the sum of payments made by non-owner participants
	CashContributions decimal.Decimal `json:"cash_contributions"`
	// EffectiveCashTotal is the pro-rata denominator actually used
	EffectiveCashTotal decimal.Decimal `json:"effective_cash_total"`

	ProjectCost   decimal.Decimal `json:"project_cost"`
	SalePrice     decimal.Decimal `json:"sale_price"`
	ProjectProfit decimal.Decimal `json:"project_profit"`
	IsProfitable  bool            `json:"is_profitable"`
	PropertyValue decimal.Decimal `json:"property_value"`
	PropertyOwner string          `json:"property_owner"`

	// Echoed parameters
	DeveloperBonus          decimal.Decimal  `json:"developer_bonus"`
	ConstructorBonus        decimal.Decimal  `json:"constructor_bonus"`
	InvestorBonus           decimal.Decimal  `json:"investor_bonus"`
	PropertyBaseShare       decimal.Decimal  `json:"property_base_share"`
	PropertyProfitEffective decimal.Decimal  `json:"property_profit_share_effective"`
	PropertyWeight          *decimal.Decimal `json:"property_weight,omitempty"`
	PropertyProfitMinPct    *decimal.Decimal `json:"property_profit_min_pct,omitempty"`
	PropertyProfitMaxPct    *decimal.Decimal `json:"property_profit_max_pct,omitempty"`

	// Column totals
	TotalBasePct     decimal.Decimal `json:"total_base_shares"`
	TotalRolePct     decimal.Decimal `json:"total_role_bonuses"`
	TotalPropertyPct decimal.Decimal `json:"total_property_shares"`
	TotalEquityPct   decimal.Decimal `json:"total_pct_sum_equity"`
	TotalProfitPct   decimal.Decimal `json:"total_pct_sum_profit"`
}

// Distribution is the full output of a successful calculation
type Distribution struct {
	Results  []Result         `json:"results"`
	Meta     DistributionMeta `json:"meta"`
	Warnings []string         `json:"warnings"`
}

// PropertyOwnerResult returns the property owner's row, if any
func (d *Distribution) PropertyOwnerResult() (Result, bool) {
	for _, r := range d.Results {
		if r.Role == RolePropertyOwner {
			return r, true
		}
	}
	return Result{}, false
}

// ResultFor returns the first row with the given name
func (d *Distribution) ResultFor(name string) (Result, bool) {
	for _, r := range d.Results {
		if r.Name == name {
			return r, true
		}
	}
	return Result{}, false
}
