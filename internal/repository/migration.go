// filepath: internal/repository/migration.go
package repository

import (
	"fmt"

	"mediabridge/internal/db/migrations"
	"mediabridge/internal/logging"
	"mediabridge/internal/shared"

	"github.com/pressly/goose/v3"
)

// migrationsDir is the root of the embedded migrations FS.
const migrationsDir = "."

func setupGoose() error {
	goose.SetBaseFS(migrations.FS)
	goose.SetLogger(logging.Log)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	return nil
}

// Migrate runs a goose command ("up", "down" or "status") against the index.
func (s *Repository) Migrate(command string) error {
	if err := setupGoose(); err != nil {
		return err
	}

	var err error
	switch command {
	case "up":
		err = goose.Up(s.DB, migrationsDir)
	case "down":
		err = goose.Down(s.DB, migrationsDir)
	case "status":
		err = goose.Status(s.DB, migrationsDir)
	default:
		return fmt.Errorf("unknown migration command: %s", command)
	}
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	return nil
}

// EnsureSchemaBootstrapped migrates a fresh database to the latest version.
// A database that already has a goose version table is left alone so that
// upgrades stay an explicit `migrate up`.
func (s *Repository) EnsureSchemaBootstrapped() error {
	exists, err := s.versionTableExists()
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	logging.Log.Info("Fresh index database detected, applying migrations.")
	return s.Migrate("up")
}

// ValidateSchema returns shared.ErrSchemaOutdated when the database is not
// at the latest embedded migration.
func (s *Repository) ValidateSchema() error {
	exists, err := s.versionTableExists()
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: no migrations applied, run 'migrate up'", shared.ErrSchemaOutdated)
	}

	if err := setupGoose(); err != nil {
		return err
	}
	current, err := goose.GetDBVersion(s.DB)
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	all, err := goose.CollectMigrations(migrationsDir, 0, goose.MaxVersion)
	if err != nil {
		return fmt.Errorf("failed to collect migrations: %w", err)
	}
	latest, err := all.Last()
	if err != nil {
		return fmt.Errorf("failed to find latest migration: %w", err)
	}
	if current < latest.Version {
		return fmt.Errorf("%w: at version %d, expected %d", shared.ErrSchemaOutdated, current, latest.Version)
	}
	return nil
}

func (s *Repository) versionTableExists() (bool, error) {
	var n int
	err := s.DB.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='goose_db_version'").Scan(&n)
	if err != nil {
		return false, fmt.Errorf("failed to inspect schema: %w", err)
	}
	return n > 0, nil
}
