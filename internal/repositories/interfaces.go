package repositories

import (
	"context"

	"notes-api/internal/models"
)

// NoteRepository is the key-value store collaborator backing the notes
// collection. It is keyed by noteId and offers no query-by-index or
// conditional-write primitives.
type NoteRepository interface {
	// Scan returns up to limit items in whatever order the store yields them
	Scan(ctx context.Context, limit int) ([]models.Item, error)

	// Put writes the full note, replacing any item with the same noteId
	Put(ctx context.Context, note *models.Note) error

	// Delete removes the item with the given noteId. Deleting a missing
	// key is not an error.
	Delete(ctx context.Context, noteID string) error

	// Close releases any resources held by the store client
	Close() error
}
