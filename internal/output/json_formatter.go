package output

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// ResultPayload is one participant row of the API payload. Numbers are
// exact decimal strings.
type ResultPayload struct {
	Name             string `json:"name"`
	Role             string `json:"role"`
	Payment          string `json:"payment"`
	ShareBasePct     string `json:"share_base_pct"`
	ShareRolePct     string `json:"share_role_pct"`
	SharePropertyPct string `json:"share_property_pct"`
	TotalEquityPct   string `json:"total_equity_pct"`
	TotalProfitPct   string `json:"total_profit_pct"`
	TotalSharePct    string `json:"total_share_pct"`
	FinalValue       string `json:"final_value"`
	ProfitValue      string `json:"profit_value"`
}

// TotalsPayload carries project totals
type TotalsPayload struct {
	CashTotal   string `json:"cash_total"`
	ProjectCost string `json:"project_cost"`
	SalePrice   string `json:"sale_price"`
	Profit      string `json:"profit"`
	TotalPctSum string `json:"total_pct_sum"`
}

// PoolsPayload carries pool sizes and echoed bonus parameters
type PoolsPayload struct {
	BasePool            string `json:"base_pool"`
	RolePool            string `json:"role_pool"`
	PropertyPool        string `json:"property_pool"`
	Dev                 string `json:"dev"`
	Const               string `json:"const"`
	Inv                 string `json:"inv"`
	PropBase            string `json:"prop_base"`
	PropProfitEffective string `json:"prop_profit_effective"`
	PropertyWeight      string `json:"property_weight,omitempty"`
	PropertyProfitMin   string `json:"property_profit_min_pct,omitempty"`
	PropertyProfitMax   string `json:"property_profit_max_pct,omitempty"`
}

// Banners are the messages shown above the results
type Banners struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// Payload is the response body of the calculation API
type Payload struct {
	CalculationID string          `json:"calculation_id,omitempty"`
	Scenario      string          `json:"scenario,omitempty"`
	Model         string          `json:"model"`
	Results       []ResultPayload `json:"results"`
	Totals        TotalsPayload   `json:"totals"`
	Pools         PoolsPayload    `json:"pools"`
	RoleCounts    map[string]int  `json:"role_counts"`
	Banners       Banners         `json:"banners"`
}

// BuildPayload converts a report into the API payload. A failed run has no
// result rows and its totals echo the inputs.
func BuildPayload(r *Report) Payload {
	p := Payload{
		CalculationID: r.CalculationID,
		Scenario:      r.ScenarioName,
		Model:         string(r.Model),
		Results:       []ResultPayload{},
		RoleCounts:    r.RoleCounts.Map(),
		Banners: Banners{
			Errors:   nonNil(r.Errors),
			Warnings: nonNil(r.Warnings),
		},
		Totals: TotalsPayload{
			CashTotal:   "0",
			ProjectCost: r.Project.Cost.String(),
			SalePrice:   r.Project.SalePrice.String(),
			Profit:      r.Project.Profit().String(),
			TotalPctSum: "0",
		},
		Pools: PoolsPayload{
			BasePool:            "0",
			RolePool:            r.Bonuses.RolePool().String(),
			PropertyPool:        "0",
			Dev:                 r.Bonuses.Developer.String(),
			Const:               r.Bonuses.Constructor.String(),
			Inv:                 r.Bonuses.Investor.String(),
			PropBase:            "0",
			PropProfitEffective: "0",
		},
	}

	if r.Distribution == nil {
		return p
	}

	meta := r.Distribution.Meta
	for _, res := range r.Distribution.Results {
		p.Results = append(p.Results, ResultPayload{
			Name:             res.Name,
			Role:             res.Role.String(),
			Payment:          res.Payment.String(),
			ShareBasePct:     res.BasePct.String(),
			ShareRolePct:     res.RolePct.String(),
			SharePropertyPct: res.PropertyPct.String(),
			TotalEquityPct:   res.EquityPct.String(),
			TotalProfitPct:   res.ProfitPct.String(),
			TotalSharePct:    res.EquityPct.String(),
			FinalValue:       res.FinalValue.String(),
			ProfitValue:      res.ProfitValue.String(),
		})
	}

	p.Totals.CashTotal = meta.CashTotal.String()
	p.Totals.Profit = meta.ProjectProfit.String()
	p.Totals.TotalPctSum = meta.TotalEquityPct.String()

	p.Pools.BasePool = meta.BasePool.String()
	p.Pools.RolePool = meta.RolePool.String()
	p.Pools.PropertyPool = meta.PropertyPool.String()
	p.Pools.PropBase = meta.PropertyBaseShare.String()
	p.Pools.PropProfitEffective = meta.PropertyProfitEffective.String()
	p.Pools.PropertyWeight = optional(meta.PropertyWeight)
	p.Pools.PropertyProfitMin = optional(meta.PropertyProfitMinPct)
	p.Pools.PropertyProfitMax = optional(meta.PropertyProfitMaxPct)
	return p
}

func optional(d *decimal.Decimal) string {
	if d == nil {
		return ""
	}
	return d.String()
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// JSONFormatter renders the API payload
type JSONFormatter struct {
	Pretty bool
}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(r *Report) ([]byte, error) {
	payload := BuildPayload(r)
	if j.Pretty {
		return json.MarshalIndent(payload, "", "  ")
	}
	return json.Marshal(payload)
}
