package db

import (
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	pgxmigrate "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	sqlitemigrate "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var migrationsFS embed.FS

// Migrate brings the schema up to date. Safe to call on every start.
func (s *SQL) Migrate() error {
	var (
		drv database.Driver
		dir string
		err error
	)

	if s.IsPostgres() {
		dir = "migrations/postgres"
		drv, err = pgxmigrate.WithInstance(s.Pool, &pgxmigrate.Config{})
	} else {
		dir = "migrations/sqlite"
		drv, err = sqlitemigrate.WithInstance(s.Pool, &sqlitemigrate.Config{})
	}

	if err != nil {
		return fmt.Errorf("db - Migrate - WithInstance: %w", err)
	}

	src, err := iofs.New(migrationsFS, dir)
	if err != nil {
		return fmt.Errorf("db - Migrate - iofs.New: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "keyserve", drv)
	if err != nil {
		return fmt.Errorf("db - Migrate - NewWithInstance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("db - Migrate - Up: %w", err)
	}

	return nil
}
