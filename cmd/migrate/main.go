package main

import (
	"flag"
	"fmt"
	"path/filepath"

	"notes-api/internal/config"
	"notes-api/internal/database"
	applog "notes-api/pkg/logger"

	"github.com/sirupsen/logrus"
)

func main() {
	var (
		dbPath  = flag.String("db", config.GetEnv("SQLITE_PATH", "./data/notes.db"), "Database file path")
		action  = flag.String("action", "up", "Migration action: up, down, status, validate")
		verbose = flag.Bool("verbose", false, "Enable verbose logging")
	)
	flag.Parse()

	level := "info"
	if *verbose {
		level = "debug"
	}
	logger := applog.New(level, config.GetEnv("ENVIRONMENT", "development"), false)

	absDBPath, err := filepath.Abs(*dbPath)
	if err != nil {
		logger.WithError(err).Fatal("Failed to get absolute database path")
	}

	logger.WithFields(logrus.Fields{
		"db_path": absDBPath,
		"action":  *action,
	}).Info("Starting migration tool")

	cfg := database.DefaultConnectionConfig()
	cfg.DatabasePath = absDBPath
	cfg.MigrationsEnabled = false
	cfg.Logger = logger

	cm := database.NewConnectionManager(cfg)

	var run func(*database.MigrationManager) error
	switch *action {
	case "up":
		run = runMigrationsUp
	case "down":
		run = runMigrationsDown
	case "status":
		run = showMigrationStatus
	case "validate":
		run = validateSchema
	default:
		logger.WithField("action", *action).Fatal("Unknown action. Use: up, down, status, validate")
	}

	if err := withMigrationManager(cm, run); err != nil {
		logger.WithError(err).WithField("action", *action).Fatal("Migration action failed")
	}

	logger.Info("Migration tool completed successfully")
}

func withMigrationManager(cm *database.ConnectionManager, run func(*database.MigrationManager) error) error {
	if err := cm.Connect(); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer cm.Close()

	return run(cm.GetMigrationManager())
}

func runMigrationsUp(m *database.MigrationManager) error {
	return m.RunMigrations()
}

func runMigrationsDown(m *database.MigrationManager) error {
	return m.RollbackMigration()
}

func showMigrationStatus(m *database.MigrationManager) error {
	status, err := m.GetMigrationStatus()
	if err != nil {
		return fmt.Errorf("failed to get migration status: %w", err)
	}

	fmt.Printf("Migration Status:\n")
	fmt.Printf("  Version: %d\n", status.Version)
	fmt.Printf("  Applied: %t\n", status.Applied)
	fmt.Printf("  Dirty: %t\n", status.Dirty)

	return nil
}

func validateSchema(m *database.MigrationManager) error {
	if err := m.ValidateSchema(); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}

	fmt.Println("Schema validation passed successfully")
	return nil
}
