package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Note represents a single short text note
type Note struct {
	NoteID    string `json:"noteId" dynamodbav:"noteId" db:"note_id" validate:"required,noteid"`
	CreatedAt int64  `json:"createdAt" dynamodbav:"createdAt" db:"created_at" validate:"gt=0"`
	Text      string `json:"text" dynamodbav:"text" db:"text" validate:"required,notblank"`
}

// NewNoteID generates a fresh note identifier: the prefix followed by the
// first 16 hex characters of a random UUID.
func NewNoteID() string {
	hex := strings.ReplaceAll(uuid.New().String(), "-", "")
	return NoteIDPrefix + hex[:NoteIDHexLength]
}

// NewNote creates a new note with a generated ID, stamped at now.
// The text is stored trimmed.
func NewNote(text string, now time.Time) *Note {
	return &Note{
		NoteID:    NewNoteID(),
		CreatedAt: now.Unix(),
		Text:      strings.TrimSpace(text),
	}
}

// Validate validates the note data
func (n *Note) Validate() error {
	if n == nil {
		return &ValidationError{Field: "note", Message: "note is required"}
	}
	if err := Validator().Struct(n); err != nil {
		return formatValidationErrors(err)
	}
	return nil
}

// Item returns the note as a raw store document
func (n *Note) Item() Item {
	return Item{
		"noteId":    n.NoteID,
		"createdAt": n.CreatedAt,
		"text":      n.Text,
	}
}
