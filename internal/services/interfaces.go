package services

import (
	"context"

	"notes-api/internal/models"
)

// NoteService defines the interface for note business logic operations
type NoteService interface {
	// ListNotes returns at most the configured number of items, most recent first
	ListNotes(ctx context.Context) ([]models.Item, error)

	// CreateNote trims text, stamps and persists a new note
	CreateNote(ctx context.Context, req *CreateNoteRequest) (*models.Note, error)

	// DeleteNote deletes the note by id without checking it exists
	DeleteNote(ctx context.Context, noteID string) error
}

// CreateNoteRequest is the body accepted when creating a note
type CreateNoteRequest struct {
	Text string `json:"text"`
}
