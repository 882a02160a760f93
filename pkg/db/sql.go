// Package db wraps database/sql with a squirrel statement builder and
// supports two backends: PostgreSQL via pgx and a zero-setup SQLite file via
// modernc.org/sqlite.
package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib" // pgx database/sql driver
	_ "modernc.org/sqlite"             // sqlite database/sql driver
)

const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite"

	_defaultMaxPoolSize = 1
	_defaultSQLiteFile  = "keyserve.db"
)

// OpenFunc matches sql.Open, injectable for tests.
type OpenFunc func(driverName, dataSourceName string) (*sql.DB, error)

// SQL -.
type SQL struct {
	Builder squirrel.StatementBuilderType
	Pool    *sql.DB

	driver            string
	maxPoolSize       int
	enableForeignKeys bool
}

// New opens a database for the given URL. An empty URL or a plain file path
// selects the SQLite backend; postgres:// URLs select pgx.
func New(url string, open OpenFunc, opts ...Option) (*SQL, error) {
	s := &SQL{
		maxPoolSize: _defaultMaxPoolSize,
	}

	for _, opt := range opts {
		opt(s)
	}

	driver, dsn := s.resolve(url)
	s.driver = driver

	pool, err := open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("db - New - open: %w", err)
	}

	pool.SetMaxOpenConns(s.maxPoolSize)

	if err := pool.Ping(); err != nil {
		pool.Close()

		return nil, fmt.Errorf("db - New - ping: %w", err)
	}

	s.Pool = pool

	if driver == DriverPostgres {
		s.Builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	} else {
		s.Builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)
	}

	return s, nil
}

// resolve maps a config URL to a (driver, dsn) pair.
func (s *SQL) resolve(url string) (driver, dsn string) {
	switch {
	case strings.HasPrefix(url, "postgres://"), strings.HasPrefix(url, "postgresql://"):
		return DriverPostgres, url
	case strings.HasPrefix(url, "sqlite:"):
		return DriverSQLite, s.sqliteDSN(strings.TrimPrefix(url, "sqlite:"))
	case url == "":
		return DriverSQLite, s.sqliteDSN(_defaultSQLiteFile)
	default:
		return DriverSQLite, s.sqliteDSN(url)
	}
}

func (s *SQL) sqliteDSN(path string) string {
	params := []string{
		"_pragma=busy_timeout(5000)",
		"_pragma=journal_mode(WAL)",
		// writes take the lock at BEGIN, serializing writers up front
		"_txlock=immediate",
	}
	if s.enableForeignKeys {
		params = append(params, "_pragma=foreign_keys(1)")
	}

	return "file:" + path + "?" + strings.Join(params, "&")
}

// IsPostgres -.
func (s *SQL) IsPostgres() bool {
	return s.driver == DriverPostgres
}

// ForUpdate returns the row-lock suffix for SELECTs inside a transaction.
// SQLite serializes writers at the transaction level, so no suffix is needed.
func (s *SQL) ForUpdate() string {
	if s.IsPostgres() {
		return "FOR UPDATE"
	}

	return ""
}

// Begin starts a transaction with the backend's default isolation.
func (s *SQL) Begin(ctx context.Context) (*sql.Tx, error) {
	return s.Pool.BeginTx(ctx, nil)
}

// Close -.
func (s *SQL) Close() {
	if s.Pool != nil {
		s.Pool.Close()
	}
}

// IsNotUnique reports whether err is a unique-constraint violation.
func IsNotUnique(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}

	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// IsForeignKeyViolation reports whether err is a foreign-key violation.
func IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503"
	}

	return err != nil && strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}

// IsTransient reports whether err is worth retrying: serialization failures,
// deadlocks and busy/locked databases.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "40001" || pgErr.Code == "40P01"
	}

	msg := err.Error()

	return strings.Contains(msg, "database is locked") || strings.Contains(msg, "SQLITE_BUSY")
}
