package domain

// Scenario bundles everything one calculation needs. It is the unit loaded
// from YAML files and built by the form and JSON adapters.
type Scenario struct {
	Name         string            `yaml:"name" json:"name"`
	Description  string            `yaml:"description,omitempty" json:"description,omitempty"`
	Project      ProjectFinancials `yaml:"project" json:"project"`
	Bonuses      RoleBonusConfig   `yaml:"bonuses" json:"bonuses"`
	Params       ModelParams       `yaml:"allocation" json:"allocation"`
	Participants []Participant     `yaml:"participants" json:"participants"`
}

// WithModel returns a copy of the scenario using a different allocation model.
// The participant slice is copied so the two scenarios share no mutable state.
func (s Scenario) WithModel(model AllocationModel) Scenario {
	out := s
	out.Params.Model = model
	out.Participants = append([]Participant(nil), s.Participants...)
	return out
}
