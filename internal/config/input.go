package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/rgehrsitz/sharesplit/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of scenario files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a scenario from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Scenario, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates a YAML scenario
func (ip *InputParser) Parse(data []byte) (*domain.Scenario, error) {
	var scenario domain.Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		perr := domain.NewDistributionError("parse_scenario", domain.ErrParse, "failed to parse YAML")
		perr.Cause = err
		return nil, perr
	}

	normalizeScenario(&scenario)

	if err := ip.ValidateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("scenario validation failed: %w", err)
	}
	return &scenario, nil
}

// normalizeScenario applies the same cleanups the form adapter does
func normalizeScenario(s *domain.Scenario) {
	s.Name = strings.TrimSpace(s.Name)
	for i, p := range s.Participants {
		s.Participants[i] = domain.NewParticipant(p.Name, p.Role, p.Payment)
	}
	s.Project.PropertyOwner = strings.TrimSpace(s.Project.PropertyOwner)

	// property_profit may be given on either the bonuses or the project
	if s.Bonuses.PropertyProfit.IsZero() {
		s.Bonuses.PropertyProfit = s.Project.PropertyProfitSharePct
	} else {
		s.Project.PropertyProfitSharePct = s.Bonuses.PropertyProfit
	}

	s.Params.Model = domain.ParseAllocationModel(string(s.Params.Model))
}

// ValidateScenario checks the structure of a scenario. Range checks on the
// numbers themselves are left to the distribution engine.
func (ip *InputParser) ValidateScenario(s *domain.Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Project.Cost.LessThan(decimal.Zero) {
		return fmt.Errorf("project.project_cost must be non-negative")
	}
	if s.Project.SalePrice.LessThan(decimal.Zero) {
		return fmt.Errorf("project.sale_price must be non-negative")
	}

	seen := make(map[string]bool, len(s.Participants))
	for i, p := range s.Participants {
		if err := ip.validateParticipant(p); err != nil {
			return fmt.Errorf("participant %d (%s) validation failed: %w", i, p.Name, err)
		}
		key := strings.ToLower(p.Name)
		if seen[key] {
			return fmt.Errorf("participant %d: duplicate name %q", i, p.Name)
		}
		seen[key] = true
	}

	if owner := s.Project.PropertyOwner; owner != "" && seen[strings.ToLower(owner)] {
		return fmt.Errorf("property owner %q is also listed as a participant", owner)
	}
	return nil
}

func (ip *InputParser) validateParticipant(p domain.Participant) error {
	if p.Name == "" {
		return fmt.Errorf("name is required")
	}
	if !p.Role.Valid() {
		return fmt.Errorf("role is required")
	}
	if p.Role == domain.RolePropertyOwner {
		return fmt.Errorf("property owners are declared with project.property_owner")
	}
	if p.Payment.LessThan(decimal.Zero) {
		return fmt.Errorf("payment must be non-negative")
	}
	return nil
}
