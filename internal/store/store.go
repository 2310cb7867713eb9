package store

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"io"
	"log/slog"

	_ "github.com/mattn/go-sqlite3"
	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// Schema version tracking:
// 1 - employees table
const currentSchemaVersion = 1

// Driver names accepted by WithDriver.
const (
	DriverCgo    = "sqlite3"
	DriverPureGo = "sqlite"
)

// Store is the durable employee record store.
type Store struct {
	db     *sql.DB
	driver string
	logger *slog.Logger
}

type options struct {
	driver string
	logger *slog.Logger
}

// Option configures Open.
type Option func(*options)

// WithDriver selects the database/sql driver: DriverCgo (default) or DriverPureGo.
func WithDriver(name string) Option {
	return func(o *options) {
		o.driver = name
	}
}

// WithLogger sets the logger used for schema and lifecycle messages.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// Open creates or opens the database at path and makes sure the employees
// table exists. ":memory:" gives a private in-memory database.
//
// This function is idempotent - safe to call on an existing file.
func Open(path string, opts ...Option) (*Store, error) {
	o := options{
		driver: DriverCgo,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&o)
	}

	if o.driver != DriverCgo && o.driver != DriverPureGo {
		return nil, fmt.Errorf("unsupported driver %q: must be %q or %q", o.driver, DriverCgo, DriverPureGo)
	}

	// Open database (creates file if doesn't exist)
	db, err := sql.Open(o.driver, path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// One connection: the store has a single owner, and ":memory:" databases
	// are per-connection.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply pragmas: %w", err)
	}

	if err := applySchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	o.logger.Debug("employee store opened", "path", path, "driver", o.driver)

	return &Store{db: db, driver: o.driver, logger: o.logger}, nil
}

// Close releases the database handle. Calling it more than once is harmless;
// operations on a closed store fail with a storage error.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Driver returns the name of the driver the store was opened with.
func (s *Store) Driver() string {
	return s.driver
}

// Count returns the number of stored records.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM employees").Scan(&n); err != nil {
		return 0, storageError("count", err)
	}
	return n, nil
}

// applyPragmas sets required SQLite configuration.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = FULL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("failed to execute %q: %w", pragma, err)
		}
	}

	return nil
}

// applySchema creates the table if it doesn't exist and stamps user_version.
// A file written by a newer schema is refused rather than touched.
func applySchema(db *sql.DB) error {
	var version int
	if err := db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("get user_version: %w", err)
	}
	if version > currentSchemaVersion {
		return fmt.Errorf("database schema version %d is newer than supported version %d", version, currentSchemaVersion)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}

	if _, err := db.Exec(fmt.Sprintf("PRAGMA user_version = %d", currentSchemaVersion)); err != nil {
		return fmt.Errorf("set user_version: %w", err)
	}

	return nil
}

// verifyPragma checks that a pragma is set to the expected value.
// Used for testing.
func (s *Store) verifyPragma(name, expected string) error {
	var value string
	query := fmt.Sprintf("PRAGMA %s", name)
	if err := s.db.QueryRow(query).Scan(&value); err != nil {
		return fmt.Errorf("failed to query %s: %w", name, err)
	}
	if value != expected {
		return fmt.Errorf("%s = %q, expected %q", name, value, expected)
	}
	return nil
}
