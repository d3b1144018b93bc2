// Package store loads parsed ARFF documents into SQL databases and keeps a
// catalog of what was loaded.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/jackc/pgx/v5/stdlib"  // postgres driver
	_ "github.com/marcboeker/go-duckdb" // duckdb driver
	_ "modernc.org/sqlite"              // SQLite driver (pure Go)
)

// Config describes the target database.
type Config struct {
	Driver string
	DSN    string
	// NullValues are field values stored as NULL. Defaults to "?".
	NullValues []string
	// Logger is the structured logger (optional, uses discard if nil)
	Logger *slog.Logger
}

// Store is an open connection to a target database.
type Store struct {
	db       *sql.DB
	dialect  dialect
	nulls    map[string]bool
	logger   *slog.Logger
	migrated bool
}

// Open connects to the database described by cfg.
// Use ":memory:" as the DSN for an in-memory sqlite or duckdb database.
func Open(ctx context.Context, cfg Config) (*Store, error) {
	d, err := lookupDialect(cfg.Driver)
	if err != nil {
		return nil, err
	}

	dsn := cfg.DSN
	if dsn == "" && d.name == DriverDuckDB {
		dsn = ":memory:"
	}
	if dsn == "" {
		return nil, fmt.Errorf("database dsn is required for %s", d.name)
	}

	db, err := sql.Open(d.sqlDriver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s connection: %w", d.name, err)
	}
	if d.name == DriverSQLite {
		// Every connection to ":memory:" is a separate database.
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping %s: %w", d.name, err)
	}

	return newStore(db, d, cfg), nil
}

// NewWithDB wraps an existing connection for the named driver.
// The store takes ownership of db.
func NewWithDB(db *sql.DB, cfg Config) (*Store, error) {
	d, err := lookupDialect(cfg.Driver)
	if err != nil {
		return nil, err
	}
	return newStore(db, d, cfg), nil
}

func newStore(db *sql.DB, d dialect, cfg Config) *Store {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	nullValues := cfg.NullValues
	if len(nullValues) == 0 {
		nullValues = []string{"?"}
	}
	nulls := make(map[string]bool, len(nullValues))
	for _, v := range nullValues {
		nulls[v] = true
	}

	return &Store{
		db:      db,
		dialect: d,
		nulls:   nulls,
		logger:  logger.With("driver", d.name),
	}
}

// DB returns the underlying connection.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Driver returns the normalized driver name.
func (s *Store) Driver() string {
	return s.dialect.name
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		s.logger.Debug("closing database connection")
		return s.db.Close()
	}
	return nil
}
