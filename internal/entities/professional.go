package entities

// Professional is one selectable entry of the booking form. Value is what
// gets stored in agendamentos.profissional.
type Professional struct {
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
}
