package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Driver names a supported database/sql driver.
type Driver string

const (
	Postgres Driver = "postgres"
	SQLite   Driver = "sqlite"
)

// DefaultMaxOpenConns bounds concurrent connection checkouts.
const DefaultMaxOpenConns = 10

var placeholder = regexp.MustCompile(`\$\d+`)

// ParseDriver validates a driver name from configuration.
func ParseDriver(name string) (Driver, error) {
	switch d := Driver(strings.ToLower(strings.TrimSpace(name))); d {
	case Postgres, SQLite:
		return d, nil
	default:
		return "", fmt.Errorf("unsupported database driver %q", name)
	}
}

// Rebind rewrites the $n placeholders used throughout the repositories into
// the positional form understood by the driver. Arguments must be passed in
// placeholder order.
func (d Driver) Rebind(query string) string {
	if d == SQLite {
		return placeholder.ReplaceAllString(query, "?")
	}
	return query
}

// Options configures the connection pool.
type Options struct {
	Driver       Driver
	DSN          string
	MaxOpenConns int
}

// Open creates the bounded connection pool. No connection is made here: an
// unreachable database is reported by CheckConnection and by the requests themselves.
func Open(opts Options) (*sql.DB, error) {
	dsn := opts.DSN
	if opts.Driver == SQLite {
		dsn = sqliteDSN(dsn)
	}

	pool, err := sql.Open(string(opts.Driver), dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", opts.Driver, err)
	}

	maxOpen := opts.MaxOpenConns
	if maxOpen <= 0 {
		maxOpen = DefaultMaxOpenConns
	}
	pool.SetMaxOpenConns(maxOpen)
	pool.SetMaxIdleConns(maxOpen)

	return pool, nil
}

// sqliteDSN turns a plain file path into a DSN with WAL mode and a busy
// timeout so concurrent writers wait instead of failing. DSNs already in
// "file:" form are used as given.
func sqliteDSN(path string) string {
	if strings.HasPrefix(path, "file:") {
		return path
	}
	return fmt.Sprintf(
		"file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)&_pragma=foreign_keys(ON)",
		path,
	)
}

// CheckConnection checks out and releases one connection at startup. A failure is
// logged together with the usual operator checks but does not stop the
// server: requests will report the connection error themselves.
func CheckConnection(ctx context.Context, pool *sql.DB, logger *slog.Logger) error {
	conn, err := pool.Conn(ctx)
	if err != nil {
		logger.Error("could not connect to the database",
			"error", err,
			"checks", []string{
				"is the database server running?",
				"does the configured database exist?",
				"do the cadastrof and agendamentos tables exist?",
			},
		)
		return err
	}
	defer conn.Close()

	logger.Info("database connection established")
	return nil
}
