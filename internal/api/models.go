package api

import "augebit/internal/entities"

type StatusResponse struct {
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// FailureResponse is the body of every non-2xx answer. Routes reporting
// storage diagnostics use Error, the others Message; Details carries the raw
// storage error text.
type FailureResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
	Details string `json:"details,omitempty"`
}

type TestDBResponse struct {
	Success           bool   `json:"success"`
	Message           string `json:"message"`
	TotalFuncionarios int64  `json:"totalFuncionarios"`
}

type EmployeesResponse struct {
	Success      bool                      `json:"success"`
	Funcionarios []entities.EmployeeRecord `json:"funcionarios"`
}

type LoginResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	User    entities.User `json:"user"`
}

type CreateAppointmentResponse struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	AgendamentoID int64  `json:"agendamentoId"`
}

type ProfessionalsResponse struct {
	Success       bool                    `json:"success"`
	Profissionais []entities.Professional `json:"profissionais"`
}
