package entities

import "augebit/internal/db"

type LoginRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

// User is the public view of an employee returned on login. It never carries
// the password.
type User struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Nome     string `json:"nome"`
	Telefone string `json:"telefone"`
	Setor    string `json:"setor"`
}

func UserFromEmployee(e db.Employee) User {
	return User{
		ID:       e.ID,
		Email:    e.Email,
		Nome:     e.Nome,
		Telefone: e.Telefone,
		Setor:    e.Setor,
	}
}
