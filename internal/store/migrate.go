package store

import (
	"context"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrations embed.FS

// HasCatalog reports whether the database supports the load catalog.
func (s *Store) HasCatalog() bool {
	return s.dialect.gooseDialect != ""
}

// Migrate creates or upgrades the catalog tables. Databases without a goose
// dialect (duckdb) have no catalog and Migrate is a no-op for them.
func (s *Store) Migrate(ctx context.Context) error {
	if !s.HasCatalog() {
		s.logger.Debug("catalog not supported, skipping migrations")
		return nil
	}

	goose.SetBaseFS(migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(s.dialect.gooseDialect); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}

	if err := goose.UpContext(ctx, s.db, "migrations"); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	s.migrated = true
	return nil
}

// MigrationVersion returns the current catalog migration version.
func (s *Store) MigrationVersion() (int64, error) {
	if !s.HasCatalog() {
		return 0, nil
	}

	goose.SetBaseFS(migrations)
	if err := goose.SetDialect(s.dialect.gooseDialect); err != nil {
		return 0, fmt.Errorf("failed to set dialect: %w", err)
	}

	return goose.GetDBVersion(s.db)
}
