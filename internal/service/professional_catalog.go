package service

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"augebit/internal/entities"
)

// DefaultProfessionals is served when no catalogue file is configured.
var DefaultProfessionals = []entities.Professional{
	{Label: "Dr. João Silva - Psicólogo", Value: "Dr. João Silva"},
	{Label: "Dra. Maria Santos - Psiquiatra", Value: "Dra. Maria Santos"},
	{Label: "Dr. Pedro Costa - Terapeuta", Value: "Dr. Pedro Costa"},
	{Label: "Dra. Ana Oliveira - Psicóloga", Value: "Dra. Ana Oliveira"},
	{Label: "Dr. Carlos Lima - Psiquiatra", Value: "Dr. Carlos Lima"},
}

// ProfessionalCatalog is the list of professionals offered by the booking
// form, kept server side so it can change without redeploying clients.
type ProfessionalCatalog struct {
	items []entities.Professional
}

type catalogFile struct {
	Profissionais []entities.Professional `yaml:"profissionais"`
}

func NewProfessionalCatalog(items []entities.Professional) (*ProfessionalCatalog, error) {
	seen := make(map[string]bool, len(items))
	for i, p := range items {
		if p.Value == "" {
			return nil, fmt.Errorf("professional %d has an empty value", i)
		}
		if seen[p.Value] {
			return nil, fmt.Errorf("professional %q listed twice", p.Value)
		}
		seen[p.Value] = true
	}
	return &ProfessionalCatalog{items: append([]entities.Professional(nil), items...)}, nil
}

// LoadProfessionalCatalog reads a YAML catalogue of the form
//
//	profissionais:
//	  - label: "Dr. João Silva - Psicólogo"
//	    value: "Dr. João Silva"
//
// An empty path yields DefaultProfessionals.
func LoadProfessionalCatalog(path string) (*ProfessionalCatalog, error) {
	if path == "" {
		return NewProfessionalCatalog(DefaultProfessionals)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read professionals file: %w", err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse professionals file %s: %w", path, err)
	}
	if len(file.Profissionais) == 0 {
		return nil, fmt.Errorf("professionals file %s lists no professionals", path)
	}
	return NewProfessionalCatalog(file.Profissionais)
}

func (c *ProfessionalCatalog) All() []entities.Professional {
	return append([]entities.Professional(nil), c.items...)
}
