package repository

import (
	"context"
	"fmt"

	"augebit/internal/db"
)

type AppointmentRepository struct {
	q       Queryer
	dialect db.Driver
}

func NewAppointmentRepository(q Queryer, dialect db.Driver) *AppointmentRepository {
	return &AppointmentRepository{q: q, dialect: dialect}
}

// Create inserts the appointment in a single statement and sets a.ID to the
// generated identifier. The same professional, date and time may be booked
// any number of times.
func (r *AppointmentRepository) Create(ctx context.Context, a *db.Appointment) error {
	query := r.dialect.Rebind(`
		INSERT INTO agendamentos (nome, cpf, telefone, email, data, horario, profissional)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`)

	err := r.q.QueryRowContext(ctx, query,
		a.Nome,
		a.CPF,
		a.Telefone,
		a.Email,
		a.Data,
		a.Horario,
		a.Profissional,
	).Scan(&a.ID)
	if err != nil {
		return fmt.Errorf("insert appointment: %w", err)
	}
	return nil
}
