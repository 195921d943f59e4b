package entities

import "augebit/internal/db"

// EmployeeRecord is one entry of the GET /cadastrof debug listing.
type EmployeeRecord struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Senha string `json:"senha"`
	Nome  string `json:"nome"`
}

func EmployeeRecords(employees []db.Employee) []EmployeeRecord {
	out := make([]EmployeeRecord, len(employees))
	for i, e := range employees {
		out[i] = EmployeeRecord{ID: e.ID, Email: e.Email, Senha: e.Senha, Nome: e.Nome}
	}
	return out
}
