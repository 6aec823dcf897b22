package repositories

import (
	"errors"
	"fmt"
)

// Common repository errors
var (
	// ErrInvalidID is returned when an invalid ID is provided
	ErrInvalidID = errors.New("invalid ID")

	// ErrValidation is returned when entity validation fails
	ErrValidation = errors.New("validation error")

	// ErrConnection is returned when the store cannot be reached
	ErrConnection = errors.New("store connection error")

	// ErrInvalidLimit is returned when a scan is requested with a non-positive limit
	ErrInvalidLimit = errors.New("invalid scan limit")
)

// RepositoryError represents a repository-specific error with additional context
type RepositoryError struct {
	Op      string // Operation that failed
	Entity  string // Entity type
	ID      string // Entity ID (if applicable)
	Err     error  // Underlying error
	Message string // Human-readable message
}

// Error implements the error interface
func (e *RepositoryError) Error() string {
	if e.Message != "" {
		return e.Message
	}

	if e.ID != "" {
		return fmt.Sprintf("%s %s operation failed for ID %s: %v", e.Entity, e.Op, e.ID, e.Err)
	}

	return fmt.Sprintf("%s %s operation failed: %v", e.Entity, e.Op, e.Err)
}

// Unwrap returns the underlying error
func (e *RepositoryError) Unwrap() error {
	return e.Err
}

// Is checks if the error matches the target error
func (e *RepositoryError) Is(target error) bool {
	return errors.Is(e.Err, target)
}

// NewRepositoryError creates a new repository error
func NewRepositoryError(op, entity, id string, err error) *RepositoryError {
	return &RepositoryError{
		Op:     op,
		Entity: entity,
		ID:     id,
		Err:    err,
	}
}

// ValidationError creates a "validation" repository error
func ValidationError(entity, id string, err error) *RepositoryError {
	return &RepositoryError{
		Op:      "validate",
		Entity:  entity,
		ID:      id,
		Err:     ErrValidation,
		Message: fmt.Sprintf("validation failed for %s: %v", entity, err),
	}
}

// ConnectionError creates a "connection" repository error
func ConnectionError(err error) *RepositoryError {
	return &RepositoryError{
		Op:      "connect",
		Entity:  "store",
		Err:     ErrConnection,
		Message: fmt.Sprintf("store connection failed: %v", err),
	}
}

// IsValidation checks if an error is a "validation" error
func IsValidation(err error) bool {
	var repoErr *RepositoryError
	if errors.As(err, &repoErr) {
		return errors.Is(repoErr.Err, ErrValidation)
	}
	return errors.Is(err, ErrValidation)
}

// ValidateLimit rejects non-positive scan limits
func ValidateLimit(limit int) error {
	if limit <= 0 {
		return NewRepositoryError("scan", "note", "", fmt.Errorf("%w: %d", ErrInvalidLimit, limit))
	}
	return nil
}
