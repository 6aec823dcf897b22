package memory

import (
	"context"
	"encoding/json"
	"strconv"
	"sync"

	"notes-api/internal/models"
	"notes-api/internal/repositories"
)

// NoteRepository is an in-memory implementation of repositories.NoteRepository.
// Numbers are held as json.Number to mirror a store that hands back its own
// decimal representation.
type NoteRepository struct {
	mu    sync.RWMutex
	order []string
	items map[string]models.Item
}

// NewNoteRepository creates an empty in-memory note repository
func NewNoteRepository() *NoteRepository {
	return &NoteRepository{
		items: make(map[string]models.Item),
	}
}

// Scan returns up to limit items in insertion order
func (m *NoteRepository) Scan(ctx context.Context, limit int) ([]models.Item, error) {
	if err := repositories.ValidateLimit(limit); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, repositories.NewRepositoryError("scan", "note", "", err)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	items := make([]models.Item, 0, min(limit, len(m.order)))
	for _, id := range m.order {
		if len(items) == limit {
			break
		}
		items = append(items, copyItem(m.items[id]))
	}

	return items, nil
}

// Put stores the note, replacing any item with the same id
func (m *NoteRepository) Put(ctx context.Context, note *models.Note) error {
	if err := note.Validate(); err != nil {
		id := ""
		if note != nil {
			id = note.NoteID
		}
		return repositories.ValidationError("note", id, err)
	}
	if err := ctx.Err(); err != nil {
		return repositories.NewRepositoryError("put", "note", note.NoteID, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.items[note.NoteID]; !exists {
		m.order = append(m.order, note.NoteID)
	}
	m.items[note.NoteID] = models.Item{
		"noteId":    note.NoteID,
		"createdAt": json.Number(strconv.FormatInt(note.CreatedAt, 10)),
		"text":      note.Text,
	}

	return nil
}

// PutItem stores a raw item as-is. It lets tests seed documents that did
// not go through Put, such as ones with fractional or missing attributes.
func (m *NoteRepository) PutItem(item models.Item) {
	id := item.NoteID()

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.items[id]; !exists {
		m.order = append(m.order, id)
	}
	m.items[id] = copyItem(item)
}

// Delete removes the item with the given id; missing ids are ignored
func (m *NoteRepository) Delete(ctx context.Context, noteID string) error {
	if noteID == "" {
		return repositories.NewRepositoryError("validate", "note", noteID, repositories.ErrInvalidID)
	}
	if err := ctx.Err(); err != nil {
		return repositories.NewRepositoryError("delete", "note", noteID, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.items[noteID]; !exists {
		return nil
	}
	delete(m.items, noteID)
	for i, id := range m.order {
		if id == noteID {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}

	return nil
}

// Len returns the number of stored items
func (m *NoteRepository) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}

// Close implements repositories.NoteRepository
func (m *NoteRepository) Close() error {
	return nil
}

func copyItem(item models.Item) models.Item {
	out := make(models.Item, len(item))
	for k, v := range item {
		out[k] = v
	}
	return out
}
