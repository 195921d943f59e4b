// Package dbtest provides migrated SQLite databases for tests.
package dbtest

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"augebit/internal/db"
)

// Open creates a file-backed SQLite pool in a per-test temp dir, applies the
// embedded migrations and closes the pool on cleanup. A file is used instead
// of shared-cache memory so concurrent writers wait on the busy timeout.
func Open(t *testing.T) *sql.DB {
	t.Helper()

	pool, err := db.Open(db.Options{
		Driver:       db.SQLite,
		DSN:          filepath.Join(t.TempDir(), "augebit.db"),
		MaxOpenConns: db.DefaultMaxOpenConns,
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	if err := db.RunMigrations(context.Background(), pool, db.SQLite); err != nil {
		_ = pool.Close()
		t.Fatalf("run migrations: %v", err)
	}

	t.Cleanup(func() { _ = pool.Close() })

	return pool
}

// SeedEmployee inserts a cadastrof row and returns its id.
func SeedEmployee(t *testing.T, pool *sql.DB, e db.Employee) int64 {
	t.Helper()

	var id int64
	err := pool.QueryRowContext(context.Background(),
		`INSERT INTO cadastrof (email, senha, nome, telefone, setor) VALUES (?, ?, ?, ?, ?) RETURNING id`,
		e.Email, e.Senha, e.Nome, e.Telefone, e.Setor,
	).Scan(&id)
	if err != nil {
		t.Fatalf("seed employee: %v", err)
	}
	return id
}

// CountAppointments returns the number of agendamentos rows.
func CountAppointments(t *testing.T, pool *sql.DB) int {
	t.Helper()

	var n int
	if err := pool.QueryRowContext(context.Background(), `SELECT COUNT(*) FROM agendamentos`).Scan(&n); err != nil {
		t.Fatalf("count appointments: %v", err)
	}
	return n
}

// GetAppointment loads one agendamentos row by id.
func GetAppointment(t *testing.T, pool *sql.DB, id int64) db.Appointment {
	t.Helper()

	var a db.Appointment
	err := pool.QueryRowContext(context.Background(),
		`SELECT id, nome, cpf, telefone, email, data, horario, profissional FROM agendamentos WHERE id = ?`, id,
	).Scan(&a.ID, &a.Nome, &a.CPF, &a.Telefone, &a.Email, &a.Data, &a.Horario, &a.Profissional)
	if err != nil {
		t.Fatalf("get appointment %d: %v", id, err)
	}
	return a
}
