package db

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	migratepostgres "github.com/golang-migrate/migrate/v4/database/postgres"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var migrationsFS embed.FS

// RunMigrations applies the embedded schema for the given driver. Already
// applied migrations are skipped.
func RunMigrations(ctx context.Context, pool *sql.DB, driver Driver) error {
	sourceDriver, err := iofs.New(migrationsFS, "migrations/"+string(driver))
	if err != nil {
		return fmt.Errorf("create migration source: %w", err)
	}

	var dbDriver database.Driver
	switch driver {
	case Postgres:
		// Migrate on a dedicated connection that is handed back to the pool
		// afterwards; WithInstance would pin one for the pool's lifetime.
		conn, err := pool.Conn(ctx)
		if err != nil {
			return fmt.Errorf("acquire migration connection: %w", err)
		}
		defer conn.Close()
		dbDriver, err = migratepostgres.WithConnection(ctx, conn, &migratepostgres.Config{})
		if err != nil {
			return fmt.Errorf("create migration db driver: %w", err)
		}
	case SQLite:
		dbDriver, err = migratesqlite.WithInstance(pool, &migratesqlite.Config{})
		if err != nil {
			return fmt.Errorf("create migration db driver: %w", err)
		}
	default:
		return fmt.Errorf("unsupported database driver %q", driver)
	}

	m, err := migrate.NewWithInstance("iofs", sourceDriver, string(driver), dbDriver)
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("run migrations: %w", err)
	}

	return nil
}
