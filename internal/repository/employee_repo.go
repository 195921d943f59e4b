package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"augebit/internal/db"
)

type EmployeeRepository struct {
	q       Queryer
	dialect db.Driver
}

func NewEmployeeRepository(q Queryer, dialect db.Driver) *EmployeeRepository {
	return &EmployeeRepository{q: q, dialect: dialect}
}

// Count returns the number of rows in cadastrof.
func (r *EmployeeRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.q.QueryRowContext(ctx, `SELECT COUNT(*) AS total FROM cadastrof`).Scan(&total); err != nil {
		return 0, fmt.Errorf("count employees: %w", err)
	}
	return total, nil
}

// List returns id, email, senha and nome of every employee.
func (r *EmployeeRepository) List(ctx context.Context) ([]db.Employee, error) {
	rows, err := r.q.QueryContext(ctx, `SELECT id, email, senha, nome FROM cadastrof`)
	if err != nil {
		return nil, fmt.Errorf("query employees: %w", err)
	}
	defer rows.Close()

	employees := []db.Employee{}
	for rows.Next() {
		var e db.Employee
		if err := rows.Scan(&e.ID, &e.Email, &e.Senha, &e.Nome); err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate employees: %w", err)
	}
	return employees, nil
}

// FindByCredentials returns the first employee whose email and senha both
// match exactly, or nil when there is none. Senha is never loaded.
func (r *EmployeeRepository) FindByCredentials(ctx context.Context, email, senha string) (*db.Employee, error) {
	query := r.dialect.Rebind(`SELECT id, email, nome, telefone, setor FROM cadastrof WHERE email = $1 AND senha = $2`)

	var (
		e               db.Employee
		telefone, setor sql.NullString
	)
	err := r.q.QueryRowContext(ctx, query, email, senha).Scan(&e.ID, &e.Email, &e.Nome, &telefone, &setor)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("query employee by credentials: %w", err)
	}
	e.Telefone = telefone.String
	e.Setor = setor.String
	return &e, nil
}
