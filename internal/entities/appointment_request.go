package entities

import "augebit/internal/db"

// AppointmentRequest is the body of POST /agendamentos. Data is YYYY-MM-DD,
// Horario is HH:MM and CPF holds digits only when sent by the booking client.
type AppointmentRequest struct {
	Nome         string `json:"nome"`
	CPF          string `json:"cpf"`
	Telefone     string `json:"telefone"`
	Email        string `json:"email"`
	Data         string `json:"data"`
	Horario      string `json:"horario"`
	Profissional string `json:"profissional"`
}

// Complete reports whether all seven fields are present.
func (r AppointmentRequest) Complete() bool {
	return r.Nome != "" && r.CPF != "" && r.Telefone != "" && r.Email != "" &&
		r.Data != "" && r.Horario != "" && r.Profissional != ""
}

func (r AppointmentRequest) ToModel() db.Appointment {
	return db.Appointment{
		Nome:         r.Nome,
		CPF:          r.CPF,
		Telefone:     r.Telefone,
		Email:        r.Email,
		Data:         r.Data,
		Horario:      r.Horario,
		Profissional: r.Profissional,
	}
}
