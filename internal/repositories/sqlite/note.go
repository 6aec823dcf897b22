package sqlite

import (
	"context"
	"database/sql"

	"notes-api/internal/models"
	"notes-api/internal/repositories"

	"github.com/sirupsen/logrus"
)

// NoteRepository implements repositories.NoteRepository on top of SQLite.
// It backs the local development server; production uses DynamoDB.
type NoteRepository struct {
	*BaseRepository
	owned bool
}

// NewNoteRepository creates a new SQLite note repository on an open database
func NewNoteRepository(db *sql.DB, logger *logrus.Logger) *NoteRepository {
	return &NoteRepository{
		BaseRepository: NewBaseRepository(db, "notes", logger),
	}
}

// NewOwnedNoteRepository is like NewNoteRepository but Close also closes db
func NewOwnedNoteRepository(db *sql.DB, logger *logrus.Logger) *NoteRepository {
	repo := NewNoteRepository(db, logger)
	repo.owned = true
	return repo
}

// Scan returns up to limit notes in rowid order
func (r *NoteRepository) Scan(ctx context.Context, limit int) ([]models.Item, error) {
	if err := repositories.ValidateLimit(limit); err != nil {
		return nil, err
	}

	query := `SELECT note_id, created_at, text FROM notes ORDER BY rowid LIMIT ?`

	rows, err := r.executeQuery(ctx, "scan", query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]models.Item, 0, limit)
	for rows.Next() {
		var (
			noteID    string
			createdAt int64
			text      string
		)
		if err := rows.Scan(&noteID, &createdAt, &text); err != nil {
			return nil, repositories.NewRepositoryError("scan", "note", "", err)
		}
		items = append(items, models.Item{
			"noteId":    noteID,
			"createdAt": createdAt,
			"text":      text,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, repositories.NewRepositoryError("scan", "note", "", err)
	}

	return items, nil
}

// Put inserts the note, replacing any row with the same note_id
func (r *NoteRepository) Put(ctx context.Context, note *models.Note) error {
	if err := note.Validate(); err != nil {
		id := ""
		if note != nil {
			id = note.NoteID
		}
		return repositories.ValidationError("note", id, err)
	}

	query := `INSERT OR REPLACE INTO notes (note_id, created_at, text) VALUES (?, ?, ?)`

	_, err := r.executeExec(ctx, "put", query, note.NoteID, note.CreatedAt, note.Text)
	return err
}

// Delete removes the note with the given id; missing rows are ignored
func (r *NoteRepository) Delete(ctx context.Context, noteID string) error {
	if err := r.validateID(noteID); err != nil {
		return err
	}

	_, err := r.executeExec(ctx, "delete", `DELETE FROM notes WHERE note_id = ?`, noteID)
	return err
}

// Close closes the underlying database when the repository owns it
func (r *NoteRepository) Close() error {
	if !r.owned || r.db == nil {
		return nil
	}
	if err := r.db.Close(); err != nil {
		return repositories.NewRepositoryError("close", "note", "", err)
	}
	return nil
}
