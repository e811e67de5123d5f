package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rgehrsitz/sharesplit/internal/domain"
	"github.com/shopspring/decimal"
)

// FlexDecimal accepts a JSON number, a numeric string, "" or null.
// Blank and null leave it unset.
type FlexDecimal struct {
	Value decimal.Decimal
	Set   bool
}

// UnmarshalJSON implements json.Unmarshaler
func (f *FlexDecimal) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = FlexDecimal{}
		return nil
	}

	raw := string(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		raw = s
	}
	if strings.TrimSpace(raw) == "" {
		*f = FlexDecimal{}
		return nil
	}

	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return fmt.Errorf("%q is not a valid number: %w", raw, err)
	}
	*f = FlexDecimal{Value: d, Set: true}
	return nil
}

// Or returns the value, or def when unset
func (f FlexDecimal) Or(def decimal.Decimal) decimal.Decimal {
	if !f.Set {
		return def
	}
	return f.Value
}

// Ptr returns a pointer to the value, or nil when unset
func (f FlexDecimal) Ptr() *decimal.Decimal {
	if !f.Set {
		return nil
	}
	v := f.Value
	return &v
}

// ParticipantRequest is one entry of the participants array
type ParticipantRequest struct {
	Name            string      `json:"name"`
	Role            string      `json:"role"`
	Payment         FlexDecimal `json:"payment"`
	IsPropertyOwner bool        `json:"is_property_owner"`
}

// CalculateRequest is the JSON body accepted by the calculation API
type CalculateRequest struct {
	Name                 string               `json:"name"`
	ProjectCost          FlexDecimal          `json:"project_cost"`
	SalePrice            FlexDecimal          `json:"sale_price"`
	DeveloperBonus       FlexDecimal          `json:"developer_bonus"`
	ConstructorBonus     FlexDecimal          `json:"constructor_bonus"`
	InvestorBonus        FlexDecimal          `json:"investor_bonus"`
	PropertyValue        FlexDecimal          `json:"property_value"`
	PropertyOwner        string               `json:"property_owner"`
	PropertyBaseShare    FlexDecimal          `json:"property_base_share"`
	PropertyProfitShare  FlexDecimal          `json:"property_profit_share"`
	PropertyModel        string               `json:"property_model"`
	PropertyWeight       FlexDecimal          `json:"property_weight"`
	PropertyProfitMinPct FlexDecimal          `json:"property_profit_min_pct"`
	PropertyProfitMaxPct FlexDecimal          `json:"property_profit_max_pct"`
	Participants         []ParticipantRequest `json:"participants"`
}

// DecodeCalculateRequest reads a request body. An empty body is an empty request.
func DecodeCalculateRequest(body []byte) (*CalculateRequest, error) {
	var req CalculateRequest
	if len(bytes.TrimSpace(body)) == 0 {
		return &req, nil
	}
	if err := json.Unmarshal(body, &req); err != nil {
		perr := domain.NewDistributionError("decode_request", domain.ErrParse, "request body is not valid JSON")
		perr.Cause = err
		return nil, perr
	}
	return &req, nil
}

// Scenario converts the request into a scenario. Participants flagged as the
// property owner, or carrying the Property Owner role, are skipped since the
// owner comes from property_owner. Entries with a blank name or role are
// skipped as well. The property pools are kept under either model so the
// scenario can be rerun under the other one.
func (r *CalculateRequest) Scenario() (*domain.Scenario, error) {
	var participants []domain.Participant
	for i, p := range r.Participants {
		if p.IsPropertyOwner {
			continue
		}
		name := strings.TrimSpace(p.Name)
		if name == "" || strings.TrimSpace(p.Role) == "" {
			continue
		}
		role, err := domain.ParseRole(p.Role)
		if err != nil {
			perr := domain.NewDistributionError("parse_participants", domain.ErrParse,
				fmt.Sprintf("participants[%d]: unknown role %q", i, p.Role))
			perr.Cause = err
			return nil, perr
		}
		if role == domain.RolePropertyOwner {
			continue
		}
		participants = append(participants, domain.NewParticipant(name, role, p.Payment.Or(decimal.Zero)))
	}

	name := strings.TrimSpace(r.Name)
	if name == "" {
		name = "api"
	}

	model := domain.ParseAllocationModel(r.PropertyModel)
	s := &domain.Scenario{
		Name: name,
		Project: domain.ProjectFinancials{
			Cost:                   r.ProjectCost.Or(decimal.Zero),
			SalePrice:              r.SalePrice.Or(decimal.Zero),
			PropertyValue:          r.PropertyValue.Or(decimal.Zero),
			PropertyOwner:          strings.TrimSpace(r.PropertyOwner),
			PropertyProfitSharePct: r.PropertyProfitShare.Or(decimal.Zero),
		},
		Bonuses: domain.RoleBonusConfig{
			Developer:      r.DeveloperBonus.Or(decimal.Zero),
			Constructor:    r.ConstructorBonus.Or(decimal.Zero),
			Investor:       r.InvestorBonus.Or(decimal.Zero),
			PropertyBase:   r.PropertyBaseShare.Or(decimal.Zero),
			PropertyProfit: r.PropertyProfitShare.Or(decimal.Zero),
		},
		Params:       domain.ModelParams{Model: model},
		Participants: participants,
	}

	if model == domain.ModelValueWeighted {
		weight := r.PropertyWeight.Or(domain.DefaultWeight)
		s.Params.Weight = &weight
		s.Params.ProfitMinPct = r.PropertyProfitMinPct.Ptr()
		s.Params.ProfitMaxPct = r.PropertyProfitMaxPct.Ptr()
	}
	return s, nil
}
