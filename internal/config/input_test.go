package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rgehrsitz/sharesplit/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleScenario = `
name: Riverside duplex
description: Two investors and a land owner
project:
  project_cost: 200000
  sale_price: 260000
  property_value: 50000
  property_owner: " Olga "
bonuses:
  developer: 20
  constructor: 8
  investor: 10
  property_base: 10
  property_profit: 5
allocation:
  model: A
participants:
  - name: Dana
    role: Developer
    payment: 5000
  - name: Ivy
    role: investor
    payment: 150000
  - name: Carl
    role: Constructor
    payment: "50000.50"
`

func writeScenario(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestNewInputParser(t *testing.T) {
	assert.NotNil(t, NewInputParser())
}

func TestInputParser_LoadFromFile(t *testing.T) {
	parser := NewInputParser()
	scenario, err := parser.LoadFromFile(writeScenario(t, sampleScenario))
	require.NoError(t, err)

	assert.Equal(t, "Riverside duplex", scenario.Name)
	assert.Equal(t, "Olga", scenario.Project.PropertyOwner)
	assert.True(t, scenario.Project.Cost.Equal(decimal.NewFromInt(200000)))
	assert.True(t, scenario.Bonuses.PropertyProfit.Equal(decimal.NewFromInt(5)))
	assert.True(t, scenario.Project.PropertyProfitSharePct.Equal(decimal.NewFromInt(5)))
	assert.Equal(t, domain.ModelNegotiated, scenario.Params.Model)

	require.Len(t, scenario.Participants, 3)
	assert.Equal(t, domain.RoleDeveloper, scenario.Participants[0].Role)
	assert.True(t, scenario.Participants[0].Payment.IsZero(), "developer payment is forced to zero")
	assert.Equal(t, domain.RoleInvestor, scenario.Participants[1].Role)
	assert.True(t, scenario.Participants[2].Payment.Equal(decimal.RequireFromString("50000.50")))
}

func TestInputParser_LoadFromFile_ValueWeighted(t *testing.T) {
	content := `
name: weighted
project:
  project_cost: 1000
  sale_price: 1500
  property_value: 500
  property_owner: Olga
allocation:
  model: value_weighted
  property_weight: 1.5
  property_profit_min_pct: 20
participants:
  - name: Ivy
    role: Investor
    payment: 1000
`
	scenario, err := NewInputParser().LoadFromFile(writeScenario(t, content))
	require.NoError(t, err)
	assert.Equal(t, domain.ModelValueWeighted, scenario.Params.Model)
	require.NotNil(t, scenario.Params.Weight)
	assert.True(t, scenario.Params.Weight.Equal(decimal.RequireFromString("1.5")))
	require.NotNil(t, scenario.Params.ProfitMinPct)
	assert.Nil(t, scenario.Params.ProfitMaxPct)
}

func TestInputParser_LoadFromFile_FileNotFound(t *testing.T) {
	_, err := NewInputParser().LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestInputParser_LoadFromFile_InvalidYAML(t *testing.T) {
	_, err := NewInputParser().LoadFromFile(writeScenario(t, "name: [unclosed"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrParse))
}

func TestInputParser_LoadFromFile_BadValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errText string
		isParse bool
	}{
		{
			name:    "unknown role",
			content: "name: x\nparticipants:\n  - name: A\n    role: Banker\n",
			isParse: true,
		},
		{
			name:    "bad payment",
			content: "name: x\nparticipants:\n  - name: A\n    role: Investor\n    payment: lots\n",
			isParse: true,
		},
		{
			name:    "missing name",
			content: "project:\n  project_cost: 1\n",
			errText: "name is required",
		},
		{
			name:    "missing role",
			content: "name: x\nparticipants:\n  - name: A\n    payment: 10\n",
			errText: "role is required",
		},
		{
			name:    "negative payment",
			content: "name: x\nparticipants:\n  - name: A\n    role: Investor\n    payment: -10\n",
			errText: "payment must be non-negative",
		},
		{
			name:    "listed property owner",
			content: "name: x\nparticipants:\n  - name: A\n    role: Property Owner\n    payment: 10\n",
			errText: "project.property_owner",
		},
		{
			name:    "duplicate names",
			content: "name: x\nparticipants:\n  - name: A\n    role: Investor\n  - name: a\n    role: Constructor\n",
			errText: "duplicate name",
		},
		{
			name:    "owner also a participant",
			content: "name: x\nproject:\n  property_owner: A\nparticipants:\n  - name: A\n    role: Investor\n",
			errText: "also listed",
		},
		{
			name:    "negative cost",
			content: "name: x\nproject:\n  project_cost: -5\n",
			errText: "project_cost must be non-negative",
		},
	}

	parser := NewInputParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parser.Parse([]byte(tt.content))
			require.Error(t, err)
			if tt.isParse {
				assert.ErrorIs(t, err, domain.ErrParse)
				return
			}
			assert.Contains(t, err.Error(), tt.errText)
		})
	}
}
