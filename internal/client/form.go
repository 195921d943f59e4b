package client

import (
	"strings"

	"augebit/internal/entities"
	"augebit/internal/validation"
)

// Form holds the appointment fields as typed by the user. Data is DD/MM/YYYY
// and Horario HH:MM.
type Form struct {
	Nome         string
	CPF          string
	Telefone     string
	Email        string
	Data         string
	Horario      string
	Profissional string
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Validate applies the submission preconditions in order and returns the
// first failure as a *FormError.
func (f Form) Validate() error {
	switch {
	case blank(f.Nome) || blank(f.CPF) || blank(f.Telefone) || blank(f.Email):
		return newFormError("Preencha todos os campos obrigatórios")
	case !validation.ValidateCPF(f.CPF):
		return newFormError("CPF inválido")
	case f.Profissional == "":
		return newFormError("Selecione um profissional")
	case f.Data == "" || f.Horario == "":
		return newFormError("Preencha a data e horário da consulta")
	}
	if _, _, _, ok := validation.SplitDate(f.Data); !ok {
		return newFormError("Data deve estar no formato DD/MM/AAAA")
	}
	return nil
}

// Payload validates the form and builds the request body sent to the server.
func (f Form) Payload() (entities.AppointmentRequest, error) {
	if err := f.Validate(); err != nil {
		return entities.AppointmentRequest{}, err
	}
	date, err := validation.ToStorageDate(f.Data)
	if err != nil {
		return entities.AppointmentRequest{}, newFormError("Data deve estar no formato DD/MM/AAAA")
	}

	return entities.AppointmentRequest{
		Nome:         strings.TrimSpace(f.Nome),
		CPF:          validation.DigitsOnly(f.CPF),
		Telefone:     strings.TrimSpace(f.Telefone),
		Email:        strings.TrimSpace(f.Email),
		Data:         date,
		Horario:      strings.TrimSpace(f.Horario),
		Profissional: strings.TrimSpace(f.Profissional),
	}, nil
}
