package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"
)

// ConnectionConfig holds database connection configuration
type ConnectionConfig struct {
	DatabasePath      string
	MigrationsEnabled bool
	MaxOpenConns      int
	MaxIdleConns      int
	ConnMaxLifetime   time.Duration
	Logger            *logrus.Logger
}

// DefaultConnectionConfig returns a default configuration
func DefaultConnectionConfig() *ConnectionConfig {
	return &ConnectionConfig{
		DatabasePath:      "./data/notes.db",
		MigrationsEnabled: true,
		MaxOpenConns:      1, // SQLite works best with single connection
		MaxIdleConns:      1,
		ConnMaxLifetime:   time.Hour,
		Logger:            logrus.New(),
	}
}

// ConnectionManager manages the SQLite connection used by the local store
type ConnectionManager struct {
	config *ConnectionConfig
	db     *sql.DB
}

// NewConnectionManager creates a new connection manager
func NewConnectionManager(config *ConnectionConfig) *ConnectionManager {
	if config == nil {
		config = DefaultConnectionConfig()
	}
	if config.Logger == nil {
		config.Logger = logrus.New()
	}
	return &ConnectionManager{
		config: config,
	}
}

// Connect opens the database and, when enabled, applies pending migrations
func (cm *ConnectionManager) Connect() error {
	if cm.db != nil {
		return fmt.Errorf("database connection already established")
	}

	db, err := cm.open()
	if err != nil {
		return err
	}

	if cm.config.MigrationsEnabled {
		if err := NewMigrationManager(db, cm.config.Logger).RunMigrations(); err != nil {
			db.Close()
			return fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	cm.db = db
	cm.config.Logger.WithField("db_path", cm.config.DatabasePath).Info("Database connection established")
	return nil
}

func (cm *ConnectionManager) open() (*sql.DB, error) {
	dsn := cm.config.DatabasePath
	if dsn != ":memory:" {
		dbPath, err := filepath.Abs(dsn)
		if err != nil {
			return nil, fmt.Errorf("failed to get absolute database path: %w", err)
		}
		if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
		dsn = dbPath + "?_journal_mode=WAL"
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	maxOpen := cm.config.MaxOpenConns
	if maxOpen <= 0 {
		maxOpen = 1
	}
	maxIdle := cm.config.MaxIdleConns
	if maxIdle <= 0 {
		maxIdle = maxOpen
	}
	db.SetMaxOpenConns(maxOpen)
	db.SetMaxIdleConns(maxIdle)
	// An in-memory database lives only as long as its connection
	if cm.config.ConnMaxLifetime > 0 && cm.config.DatabasePath != ":memory:" {
		db.SetConnMaxLifetime(cm.config.ConnMaxLifetime)
	}

	return db, nil
}

// GetDB returns the database connection
func (cm *ConnectionManager) GetDB() *sql.DB {
	return cm.db
}

// Close closes the database connection
func (cm *ConnectionManager) Close() error {
	if cm.db == nil {
		return nil
	}

	err := cm.db.Close()
	cm.db = nil

	if err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}

	cm.config.Logger.Info("Database connection closed")
	return nil
}

// Ping tests the database connection
func (cm *ConnectionManager) Ping() error {
	if cm.db == nil {
		return fmt.Errorf("database connection not established")
	}

	if err := cm.db.Ping(); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}

	return nil
}

// GetMigrationManager returns a migration manager for this connection
func (cm *ConnectionManager) GetMigrationManager() *MigrationManager {
	if cm.db == nil {
		return nil
	}

	return NewMigrationManager(cm.db, cm.config.Logger)
}

// HealthCheck pings the database and runs a trivial query
func (cm *ConnectionManager) HealthCheck() error {
	if err := cm.Ping(); err != nil {
		return fmt.Errorf("ping failed: %w", err)
	}

	var result int
	if err := cm.db.QueryRow("SELECT 1").Scan(&result); err != nil {
		return fmt.Errorf("test query failed: %w", err)
	}

	if result != 1 {
		return fmt.Errorf("test query returned unexpected result: %d", result)
	}

	return nil
}
