package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Hundred is the full share budget in percent
var Hundred = decimal.NewFromInt(100)

// RoleBonusConfig holds the negotiated bonus pools, in percent of the whole project.
// Each value must lie in [0,100].
type RoleBonusConfig struct {
	Developer      decimal.Decimal `yaml:"developer" json:"developer"`
	Constructor    decimal.Decimal `yaml:"constructor" json:"constructor"`
	Investor       decimal.Decimal `yaml:"investor" json:"investor"`
	PropertyBase   decimal.Decimal `yaml:"property_base" json:"property_base"`
	PropertyProfit decimal.Decimal `yaml:"property_profit" json:"property_profit"`
}

// RolePool is the combined developer, constructor and investor bonus
func (b RoleBonusConfig) RolePool() decimal.Decimal {
	return b.Developer.Add(b.Constructor).Add(b.Investor)
}

// ForRole returns the total bonus pool of a cash/work role.
// Property owners have no role bonus and get zero.
func (b RoleBonusConfig) ForRole(role Role) decimal.Decimal {
	switch role {
	case RoleDeveloper:
		return b.Developer
	case RoleConstructor:
		return b.Constructor
	case RoleInvestor:
		return b.Investor
	default:
		return decimal.Zero
	}
}

// ProjectFinancials describes the money side of the project
type ProjectFinancials struct {
	Cost                   decimal.Decimal `yaml:"project_cost" json:"project_cost"`
	SalePrice              decimal.Decimal `yaml:"sale_price" json:"sale_price"`
	PropertyValue          decimal.Decimal `yaml:"property_value,omitempty" json:"property_value"`
	PropertyOwner          string          `yaml:"property_owner,omitempty" json:"property_owner"`
	PropertyProfitSharePct decimal.Decimal `yaml:"property_profit_share,omitempty" json:"property_profit_share"`
}

// Profit returns max(0, sale price - cost)
func (p ProjectFinancials) Profit() decimal.Decimal {
	return decimal.Max(decimal.Zero, p.SalePrice.Sub(p.Cost))
}

// IsProfitable reports whether the sale price exceeds the cost
func (p ProjectFinancials) IsProfitable() bool {
	return p.Profit().IsPositive()
}

// HasPropertyOwner reports whether a named owner contributes property of positive value
func (p ProjectFinancials) HasPropertyOwner() bool {
	return strings.TrimSpace(p.PropertyOwner) != "" && p.PropertyValue.IsPositive()
}

// AllocationModel selects how the property contribution is rewarded
type AllocationModel string

const (
	// ModelNegotiated gives the property owner fixed pools outside the cash base (Model A)
	ModelNegotiated AllocationModel = "negotiated"
	// ModelValueWeighted counts the weighted property value as a cash-like contribution (Model B)
	ModelValueWeighted AllocationModel = "value_weighted"
)

// ParseAllocationModel never fails: anything unrecognized falls back to ModelNegotiated
func ParseAllocationModel(s string) AllocationModel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "b", "value_weighted", "valueweighted", "value-weighted", "weighted":
		return ModelValueWeighted
	default:
		return ModelNegotiated
	}
}

// Letter returns the short A/B label used by the calculator form
func (m AllocationModel) Letter() string {
	if m == ModelValueWeighted {
		return "B"
	}
	return "A"
}

// UnmarshalText implements encoding.TextUnmarshaler with the lenient parsing rules
func (m *AllocationModel) UnmarshalText(text []byte) error {
	*m = ParseAllocationModel(string(text))
	return nil
}

// ModelParams are the allocation model selector and its ValueWeighted tuning knobs
type ModelParams struct {
	Model        AllocationModel  `yaml:"model" json:"model"`
	Weight       *decimal.Decimal `yaml:"property_weight,omitempty" json:"property_weight,omitempty"`
	ProfitMinPct *decimal.Decimal `yaml:"property_profit_min_pct,omitempty" json:"property_profit_min_pct,omitempty"`
	ProfitMaxPct *decimal.Decimal `yaml:"property_profit_max_pct,omitempty" json:"property_profit_max_pct,omitempty"`
}

// DefaultWeight is applied when no property weight is supplied
var DefaultWeight = decimal.NewFromInt(1)

// EffectiveWeight returns the supplied weight or DefaultWeight
func (mp ModelParams) EffectiveWeight() decimal.Decimal {
	if mp.Weight == nil {
		return DefaultWeight
	}
	return *mp.Weight
}
