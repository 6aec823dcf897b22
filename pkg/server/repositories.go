package server

import (
	"context"
	"fmt"

	"notes-api/internal/config"
	"notes-api/internal/database"
	"notes-api/internal/repositories"
	"notes-api/internal/repositories/dynamodb"
	"notes-api/internal/repositories/memory"
	"notes-api/internal/repositories/sqlite"

	"github.com/sirupsen/logrus"
)

// NewNoteRepository creates the store selected by cfg.Type
func NewNoteRepository(ctx context.Context, cfg *config.StoreConfig, logger *logrus.Logger) (repositories.NoteRepository, error) {
	if cfg == nil {
		return nil, fmt.Errorf("store config is required")
	}

	switch cfg.Type {
	case config.StoreDynamoDB:
		if cfg.Table == "" {
			return nil, fmt.Errorf("dynamodb store requires a table name")
		}
		client, err := dynamodb.NewClient(ctx, dynamodb.ClientOptions{
			Region:   cfg.Region,
			Endpoint: cfg.Endpoint,
		})
		if err != nil {
			return nil, repositories.ConnectionError(err)
		}
		return dynamodb.NewNoteRepository(client, cfg.Table, logger), nil

	case config.StoreSQLite:
		cm := database.NewConnectionManager(&database.ConnectionConfig{
			DatabasePath:      cfg.SQLitePath,
			MigrationsEnabled: cfg.MigrationsEnabled,
			MaxOpenConns:      1,
			MaxIdleConns:      1,
			Logger:            logger,
		})
		if err := cm.Connect(); err != nil {
			return nil, repositories.ConnectionError(err)
		}
		return sqlite.NewOwnedNoteRepository(cm.GetDB(), logger), nil

	case config.StoreMemory:
		return memory.NewNoteRepository(), nil

	default:
		return nil, fmt.Errorf("unsupported store type: %s", cfg.Type)
	}
}
