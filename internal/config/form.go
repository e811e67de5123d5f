package config

import (
	"fmt"
	"strings"

	"github.com/rgehrsitz/sharesplit/internal/domain"
	"github.com/shopspring/decimal"
)

// FormValues is the read side of a submitted form. url.Values satisfies it.
type FormValues interface {
	Get(key string) string
	Has(key string) bool
}

// ParseParticipants reads the indexed name{i}, role{i}, paid{i} triples
// starting at 1 and stopping at the first missing name{i}. Rows with a blank
// name or role are skipped, as are Property Owner rows. Developers always pay zero.
func ParseParticipants(form FormValues) ([]domain.Participant, error) {
	var participants []domain.Participant

	for i := 1; form.Has(fmt.Sprintf("name%d", i)); i++ {
		name := strings.TrimSpace(form.Get(fmt.Sprintf("name%d", i)))
		roleText := strings.TrimSpace(form.Get(fmt.Sprintf("role%d", i)))
		if name == "" || roleText == "" {
			continue
		}

		role, err := domain.ParseRole(roleText)
		if err != nil {
			perr := domain.NewDistributionError("parse_participants", domain.ErrParse,
				fmt.Sprintf("role%d: unknown role %q", i, roleText))
			perr.Cause = err
			return nil, perr
		}

		// the owner is declared with property_owner
		if role == domain.RolePropertyOwner {
			continue
		}

		payment := decimal.Zero
		if role != domain.RoleDeveloper {
			field := fmt.Sprintf("paid%d", i)
			payment, err = parseDecimal(field, form.Get(field))
			if err != nil {
				return nil, err
			}
		}

		participants = append(participants, domain.NewParticipant(name, role, payment))
	}
	return participants, nil
}

// requiredFormFields must be present and non-blank in a calculator form
var requiredFormFields = []string{
	"project_cost",
	"sale_price",
	"developer_bonus",
	"constructor_bonus",
	"investor_bonus",
}

// ParseForm builds a scenario from the calculator form fields. Under the
// value-weighted model the weight defaults to 1.
func ParseForm(form FormValues) (*domain.Scenario, error) {
	for _, field := range requiredFormFields {
		if strings.TrimSpace(form.Get(field)) == "" {
			return nil, domain.NewDistributionError("parse_form", domain.ErrParse,
				fmt.Sprintf("%s is required", field))
		}
	}

	values := make(map[string]decimal.Decimal)
	for _, field := range []string{
		"project_cost", "sale_price",
		"developer_bonus", "constructor_bonus", "investor_bonus",
		"property_value", "property_share", "property_profit_share",
	} {
		v, err := parseDecimal(field, form.Get(field))
		if err != nil {
			return nil, err
		}
		values[field] = v
	}

	participants, err := ParseParticipants(form)
	if err != nil {
		return nil, err
	}

	model := domain.ParseAllocationModel(form.Get("property_model"))
	s := &domain.Scenario{
		Name: "form",
		Project: domain.ProjectFinancials{
			Cost:                   values["project_cost"],
			SalePrice:              values["sale_price"],
			PropertyValue:          values["property_value"],
			PropertyOwner:          strings.TrimSpace(form.Get("property_owner")),
			PropertyProfitSharePct: values["property_profit_share"],
		},
		Bonuses: domain.RoleBonusConfig{
			Developer:      values["developer_bonus"],
			Constructor:    values["constructor_bonus"],
			Investor:       values["investor_bonus"],
			PropertyBase:   values["property_share"],
			PropertyProfit: values["property_profit_share"],
		},
		Params:       domain.ModelParams{Model: model},
		Participants: participants,
	}

	if model == domain.ModelValueWeighted {
		if err := applyValueWeightedParams(s, form.Get("property_weight"), form.Get("property_profit_min_pct"), form.Get("property_profit_max_pct")); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// applyValueWeightedParams reads the weight and profit bounds. The negotiated
// property pools stay on the scenario; the value-weighted model ignores them.
func applyValueWeightedParams(s *domain.Scenario, weight, minPct, maxPct string) error {
	w, err := parseOptionalDecimal("property_weight", weight)
	if err != nil {
		return err
	}
	if w == nil {
		dw := domain.DefaultWeight
		w = &dw
	}
	s.Params.Weight = w

	if s.Params.ProfitMinPct, err = parseOptionalDecimal("property_profit_min_pct", minPct); err != nil {
		return err
	}
	if s.Params.ProfitMaxPct, err = parseOptionalDecimal("property_profit_max_pct", maxPct); err != nil {
		return err
	}
	return nil
}
