package db

// Employee is a row of the cadastrof table. Credentials are stored and
// compared in plain text.
type Employee struct {
	ID       int64
	Email    string
	Senha    string
	Nome     string
	Telefone string
	Setor    string
}

// Appointment is a row of the agendamentos table. Data is stored as
// YYYY-MM-DD and Horario as HH:MM.
type Appointment struct {
	ID           int64
	Nome         string
	CPF          string
	Telefone     string
	Email        string
	Data         string
	Horario      string
	Profissional string
}
