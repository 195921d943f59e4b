package repository

import (
	"context"
	"database/sql"
)

// Queryer is the subset of database/sql shared by *sql.DB, *sql.Conn and
// *sql.Tx. Handlers pass the connection checked out for the current request.
type Queryer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
