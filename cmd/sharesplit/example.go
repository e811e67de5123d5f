package main

import (
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/sharesplit/internal/domain"
)

// exampleScenario is the starting point written by the example command
func exampleScenario() domain.Scenario {
	weight := domain.DefaultWeight
	return domain.Scenario{
		Name:        "Riverside duplex",
		Description: "Developer, builder, two investors and the owner of the plot",
		Project: domain.ProjectFinancials{
			Cost:                   decimal.NewFromInt(200000),
			SalePrice:              decimal.NewFromInt(260000),
			PropertyValue:          decimal.NewFromInt(50000),
			PropertyOwner:          "Olga",
			PropertyProfitSharePct: decimal.NewFromInt(5),
		},
		Bonuses: domain.RoleBonusConfig{
			Developer:      decimal.NewFromInt(20),
			Constructor:    decimal.NewFromInt(8),
			Investor:       decimal.NewFromInt(10),
			PropertyBase:   decimal.NewFromInt(10),
			PropertyProfit: decimal.NewFromInt(5),
		},
		Params: domain.ModelParams{
			Model:  domain.ModelNegotiated,
			Weight: &weight,
		},
		Participants: []domain.Participant{
			domain.NewParticipant("Dana", domain.RoleDeveloper, decimal.Zero),
			domain.NewParticipant("Carl", domain.RoleConstructor, decimal.NewFromInt(40000)),
			domain.NewParticipant("Ivy", domain.RoleInvestor, decimal.NewFromInt(100000)),
			domain.NewParticipant("Ian", domain.RoleInvestor, decimal.NewFromInt(60000)),
		},
	}
}
