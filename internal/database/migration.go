package database

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/sirupsen/logrus"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// MigrationManager handles database migrations
type MigrationManager struct {
	db     *sql.DB
	logger *logrus.Logger
}

// NewMigrationManager creates a new migration manager
func NewMigrationManager(db *sql.DB, logger *logrus.Logger) *MigrationManager {
	if logger == nil {
		logger = logrus.New()
	}
	return &MigrationManager{
		db:     db,
		logger: logger,
	}
}

// MigrationInfo contains information about a migration
type MigrationInfo struct {
	Version   uint
	Dirty     bool
	Applied   bool
	Timestamp time.Time
}

// RunMigrations executes all pending migrations
func (m *MigrationManager) RunMigrations() error {
	m.logger.Info("Starting database migrations...")

	mg, err := m.initMigrate()
	if err != nil {
		return fmt.Errorf("failed to initialize migrate: %w", err)
	}

	currentVersion, dirty, err := mg.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to get current migration version: %w", err)
	}

	if dirty {
		m.logger.Warn("Database is in dirty state, attempting to force version")
		if err := mg.Force(int(currentVersion)); err != nil {
			return fmt.Errorf("failed to force migration version: %w", err)
		}
	}

	m.logger.WithField("current_version", currentVersion).Info("Current migration version")

	if err := mg.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	newVersion, _, err := mg.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to get new migration version: %w", err)
	}

	m.logger.WithField("new_version", newVersion).Info("Migrations completed successfully")
	return nil
}

// RollbackMigration rolls back the last migration
func (m *MigrationManager) RollbackMigration() error {
	m.logger.Info("Rolling back last migration...")

	mg, err := m.initMigrate()
	if err != nil {
		return fmt.Errorf("failed to initialize migrate: %w", err)
	}

	currentVersion, _, err := mg.Version()
	if err != nil {
		if errors.Is(err, migrate.ErrNilVersion) {
			return fmt.Errorf("no migrations to rollback")
		}
		return fmt.Errorf("failed to get current migration version: %w", err)
	}

	m.logger.WithField("current_version", currentVersion).Info("Rolling back from version")

	if err := mg.Steps(-1); err != nil {
		return fmt.Errorf("failed to rollback migration: %w", err)
	}

	m.logger.Info("Rollback completed successfully")
	return nil
}

// GetMigrationStatus returns the current migration status
func (m *MigrationManager) GetMigrationStatus() (*MigrationInfo, error) {
	mg, err := m.initMigrate()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize migrate: %w", err)
	}

	version, dirty, err := mg.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return nil, fmt.Errorf("failed to get migration version: %w", err)
	}

	return &MigrationInfo{
		Version:   version,
		Dirty:     dirty,
		Applied:   err == nil,
		Timestamp: time.Now(),
	}, nil
}

// ValidateSchema checks that the notes table exists
func (m *MigrationManager) ValidateSchema() error {
	m.logger.Info("Validating database schema...")

	var count int
	query := `SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?`
	if err := m.db.QueryRow(query, "notes").Scan(&count); err != nil {
		return fmt.Errorf("failed to check table notes: %w", err)
	}
	if count == 0 {
		return fmt.Errorf("expected table notes not found")
	}

	m.logger.Info("Schema validation completed successfully")
	return nil
}

// initMigrate builds a migrate instance over the embedded migrations. The
// instance is not closed: closing it would close the shared *sql.DB.
func (m *MigrationManager) initMigrate() (*migrate.Migrate, error) {
	source, err := iofs.New(migrationFiles, "migrations")
	if err != nil {
		return nil, fmt.Errorf("failed to open migration source: %w", err)
	}

	driver, err := sqlite3.WithInstance(m.db, &sqlite3.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to create database driver: %w", err)
	}

	mg, err := migrate.NewWithInstance("iofs", source, "sqlite3", driver)
	if err != nil {
		return nil, fmt.Errorf("failed to create migrate instance: %w", err)
	}

	return mg, nil
}
