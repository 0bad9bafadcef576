package database

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/mattn/go-sqlite3" // registers the "sqlite3" database/sql driver
)

// Versioned, up-only migrations. Files are named <version>_<description>.up.sql.
//
//go:embed migrations/*.sql
var migrationFiles embed.FS

// Migrate applies every pending migration to the database file at path and
// returns the resulting schema version. Applying to an up-to-date database is a no-op.
func Migrate(path string) (uint, error) {
	m, err := newMigrator(path)
	if err != nil {
		return 0, err
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return 0, fmt.Errorf("failed to apply migrations: %w", err)
	}

	return currentVersion(m)
}

// Version reports the schema version of the database file at path without migrating it.
// A database that was never migrated reports version 0.
func Version(path string) (uint, error) {
	m, err := newMigrator(path)
	if err != nil {
		return 0, err
	}
	defer m.Close()

	return currentVersion(m)
}

func newMigrator(path string) (*migrate.Migrate, error) {
	// migrate closes the handle it is given, so it gets its own pool.
	sqlDB, err := sql.Open("sqlite3", DSN(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	driver, err := sqlite3.WithInstance(sqlDB, &sqlite3.Config{})
	if err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to create migration driver: %w", err)
	}

	src, err := iofs.New(migrationFiles, "migrations")
	if err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to load migrations: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "sqlite3", driver)
	if err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to create migration instance: %w", err)
	}
	return m, nil
}

func currentVersion(m *migrate.Migrate) (uint, error) {
	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}
	if dirty {
		return version, fmt.Errorf("schema version %d is dirty", version)
	}
	return version, nil
}
