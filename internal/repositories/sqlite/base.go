package sqlite

import (
	"context"
	"database/sql"
	"time"

	"notes-api/internal/repositories"

	"github.com/sirupsen/logrus"
)

// BaseRepository provides common functionality for all SQLite repositories
type BaseRepository struct {
	db     *sql.DB
	table  string
	logger *logrus.Logger
}

// NewBaseRepository creates a new base repository
func NewBaseRepository(db *sql.DB, table string, logger *logrus.Logger) *BaseRepository {
	if logger == nil {
		logger = logrus.New()
	}
	return &BaseRepository{
		db:     db,
		table:  table,
		logger: logger,
	}
}

// logQuery logs a query with its execution time
func (r *BaseRepository) logQuery(operation string, query string, args []interface{}, duration time.Duration, err error) {
	fields := logrus.Fields{
		"operation": operation,
		"table":     r.table,
		"query":     query,
		"args":      args,
		"duration":  duration,
	}

	if err != nil {
		fields["error"] = err.Error()
		r.logger.WithFields(fields).Error("Query failed")
	} else {
		r.logger.WithFields(fields).Debug("Query executed")
	}
}

// executeQuery executes a query and logs the result
func (r *BaseRepository) executeQuery(ctx context.Context, operation, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := r.db.QueryContext(ctx, query, args...)
	duration := time.Since(start)

	r.logQuery(operation, query, args, duration, err)

	if err != nil {
		return nil, repositories.NewRepositoryError(operation, r.table, "", err)
	}

	return rows, nil
}

// executeExec executes a non-query statement and logs the result
func (r *BaseRepository) executeExec(ctx context.Context, operation, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	result, err := r.db.ExecContext(ctx, query, args...)
	duration := time.Since(start)

	r.logQuery(operation, query, args, duration, err)

	if err != nil {
		return nil, repositories.NewRepositoryError(operation, r.table, "", err)
	}

	return result, nil
}

// validateID validates that an ID is not empty
func (r *BaseRepository) validateID(id string) error {
	if id == "" {
		return repositories.NewRepositoryError("validate", r.table, id, repositories.ErrInvalidID)
	}
	return nil
}
