package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Role identifies how a participant takes part in a project
type Role int

const (
	RoleUnknown Role = iota
	RoleDeveloper
	RoleConstructor
	RoleInvestor
	RolePropertyOwner
)

var roleLabels = map[Role]string{
	RoleDeveloper:     "Developer",
	RoleConstructor:   "Constructor",
	RoleInvestor:      "Investor",
	RolePropertyOwner: "Property Owner",
}

var roleKeys = map[Role]string{
	RoleDeveloper:     "developer",
	RoleConstructor:   "constructor",
	RoleInvestor:      "investor",
	RolePropertyOwner: "property_owner",
}

// String returns the display label of the role
func (r Role) String() string {
	if label, ok := roleLabels[r]; ok {
		return label
	}
	return "Unknown"
}

// Key returns the snake_case key used in role tallies
func (r Role) Key() string {
	return roleKeys[r]
}

// Valid reports whether r is one of the four participant roles
func (r Role) Valid() bool {
	_, ok := roleLabels[r]
	return ok
}

// ParseRole converts a role label or key into a Role.
// "Property Owner", "property_owner" and "propertyowner" all map to RolePropertyOwner.
func ParseRole(s string) (Role, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.NewReplacer(" ", "", "_", "", "-", "").Replace(normalized)

	switch normalized {
	case "developer":
		return RoleDeveloper, nil
	case "constructor":
		return RoleConstructor, nil
	case "investor":
		return RoleInvestor, nil
	case "propertyowner":
		return RolePropertyOwner, nil
	default:
		return RoleUnknown, fmt.Errorf("unknown role %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler
func (r Role) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (r *Role) UnmarshalText(text []byte) error {
	role, err := ParseRole(string(text))
	if err != nil {
		return err
	}
	*r = role
	return nil
}

// Participant is a single member of the project. Payment is the cash
// contributed; it is always zero for developers.
type Participant struct {
	Name    string          `yaml:"name" json:"name"`
	Role    Role            `yaml:"role" json:"role"`
	Payment decimal.Decimal `yaml:"payment" json:"payment"`
}

// NewParticipant builds a participant, trimming the name and zeroing a developer's payment
func NewParticipant(name string, role Role, payment decimal.Decimal) Participant {
	if role == RoleDeveloper {
		payment = decimal.Zero
	}
	return Participant{
		Name:    strings.TrimSpace(name),
		Role:    role,
		Payment: payment,
	}
}

// IsPropertyOwner reports whether the participant contributes property rather than cash
func (p Participant) IsPropertyOwner() bool {
	return p.Role == RolePropertyOwner
}
