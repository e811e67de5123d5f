package calculation

import (
	"github.com/rgehrsitz/sharesplit/internal/domain"
	"github.com/shopspring/decimal"
)

// RoleCounts tallies participants per role
type RoleCounts struct {
	Developer     int `json:"developer"`
	Constructor   int `json:"constructor"`
	Investor      int `json:"investor"`
	PropertyOwner int `json:"property_owner"`
}

// CountRoles tallies participants by role. Participants whose role is not one
// of the four known roles are skipped rather than rejected.
func CountRoles(participants []domain.Participant) RoleCounts {
	var counts RoleCounts
	for _, p := range participants {
		switch p.Role {
		case domain.RoleDeveloper:
			counts.Developer++
		case domain.RoleConstructor:
			counts.Constructor++
		case domain.RoleInvestor:
			counts.Investor++
		case domain.RolePropertyOwner:
			counts.PropertyOwner++
		}
	}
	return counts
}

// Of returns the head count for a role
func (rc RoleCounts) Of(role domain.Role) int {
	switch role {
	case domain.RoleDeveloper:
		return rc.Developer
	case domain.RoleConstructor:
		return rc.Constructor
	case domain.RoleInvestor:
		return rc.Investor
	case domain.RolePropertyOwner:
		return rc.PropertyOwner
	default:
		return 0
	}
}

// Map returns the counts keyed by developer, constructor, investor and property_owner
func (rc RoleCounts) Map() map[string]int {
	return map[string]int{
		domain.RoleDeveloper.Key():     rc.Developer,
		domain.RoleConstructor.Key():   rc.Constructor,
		domain.RoleInvestor.Key():      rc.Investor,
		domain.RolePropertyOwner.Key(): rc.PropertyOwner,
	}
}

// PerHeadBonuses is the per-person role bonus for each bonus-bearing role
type PerHeadBonuses struct {
	Developer   decimal.Decimal `json:"developer"`
	Constructor decimal.Decimal `json:"constructor"`
	Investor    decimal.Decimal `json:"investor"`
}

// SplitBonuses divides each role pool equally among the holders of that role.
// A role nobody holds gets a per-head bonus of zero and its pool stays unallocated.
func SplitBonuses(bonuses domain.RoleBonusConfig, counts RoleCounts) PerHeadBonuses {
	return PerHeadBonuses{
		Developer:   perHead(bonuses.Developer, counts.Developer),
		Constructor: perHead(bonuses.Constructor, counts.Constructor),
		Investor:    perHead(bonuses.Investor, counts.Investor),
	}
}

// For returns the per-head bonus of a role; property owners get none
func (ph PerHeadBonuses) For(role domain.Role) decimal.Decimal {
	switch role {
	case domain.RoleDeveloper:
		return ph.Developer
	case domain.RoleConstructor:
		return ph.Constructor
	case domain.RoleInvestor:
		return ph.Investor
	default:
		return decimal.Zero
	}
}

func perHead(pool decimal.Decimal, heads int) decimal.Decimal {
	if heads <= 0 {
		return decimal.Zero
	}
	return pool.Div(decimal.NewFromInt(int64(heads)))
}
