package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"notes-api/internal/models"
	"notes-api/internal/repositories"
	"notes-api/internal/repositories/memory"

	"github.com/sirupsen/logrus"
)

var fixedNow = time.Unix(1700000000, 0)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)
	return logger
}

func newTestService(repo repositories.NoteRepository, opts ...Option) NoteService {
	opts = append([]Option{
		WithClock(func() time.Time { return fixedNow }),
		WithLogger(quietLogger()),
	}, opts...)
	return NewNoteService(repo, opts...)
}

type failingRepository struct {
	err error
}

func (f *failingRepository) Scan(ctx context.Context, limit int) ([]models.Item, error) {
	return nil, f.err
}

func (f *failingRepository) Put(ctx context.Context, note *models.Note) error {
	return f.err
}

func (f *failingRepository) Delete(ctx context.Context, noteID string) error {
	return f.err
}

func (f *failingRepository) Close() error {
	return nil
}

type recordingRepository struct {
	*memory.NoteRepository
	limits []int
}

func (r *recordingRepository) Scan(ctx context.Context, limit int) ([]models.Item, error) {
	r.limits = append(r.limits, limit)
	return r.NoteRepository.Scan(ctx, limit)
}

func TestCreateNote(t *testing.T) {
	repo := memory.NewNoteRepository()
	svc := newTestService(repo, WithIDGenerator(func() string { return "n_0123456789abcdef" }))

	note, err := svc.CreateNote(context.Background(), &CreateNoteRequest{Text: "  hello world \n"})
	if err != nil {
		t.Fatalf("CreateNote() failed: %v", err)
	}

	if note.NoteID != "n_0123456789abcdef" {
		t.Errorf("Expected injected id, got '%s'", note.NoteID)
	}
	if note.CreatedAt != 1700000000 {
		t.Errorf("Expected createdAt 1700000000, got %d", note.CreatedAt)
	}
	if note.Text != "hello world" {
		t.Errorf("Expected trimmed text 'hello world', got '%s'", note.Text)
	}
	if repo.Len() != 1 {
		t.Errorf("Expected 1 stored note, got %d", repo.Len())
	}
}

func TestCreateNote_GeneratesIDs(t *testing.T) {
	repo := memory.NewNoteRepository()
	svc := newTestService(repo)

	first, err := svc.CreateNote(context.Background(), &CreateNoteRequest{Text: "a"})
	if err != nil {
		t.Fatalf("CreateNote() failed: %v", err)
	}
	second, err := svc.CreateNote(context.Background(), &CreateNoteRequest{Text: "a"})
	if err != nil {
		t.Fatalf("CreateNote() failed: %v", err)
	}

	if !models.IsValidNoteID(first.NoteID) {
		t.Errorf("Expected generated id format, got '%s'", first.NoteID)
	}
	if first.NoteID == second.NoteID {
		t.Error("Expected distinct ids for identical text")
	}
	if repo.Len() != 2 {
		t.Errorf("Expected 2 stored notes, got %d", repo.Len())
	}
}

func TestCreateNote_TextRequired(t *testing.T) {
	tests := []struct {
		name string
		req  *CreateNoteRequest
	}{
		{"nil request", nil},
		{"empty text", &CreateNoteRequest{}},
		{"whitespace text", &CreateNoteRequest{Text: " \t\n "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := memory.NewNoteRepository()
			svc := newTestService(repo)

			_, err := svc.CreateNote(context.Background(), tt.req)
			if !errors.Is(err, ErrTextRequired) {
				t.Errorf("Expected ErrTextRequired, got %v", err)
			}
			if !IsValidationError(err) {
				t.Error("Expected IsValidationError to be true")
			}
			if repo.Len() != 0 {
				t.Errorf("Expected nothing stored, got %d", repo.Len())
			}
		})
	}
}

func TestCreateNote_StoreFailure(t *testing.T) {
	storeErr := errors.New("store unavailable")
	svc := newTestService(&failingRepository{err: storeErr})

	_, err := svc.CreateNote(context.Background(), &CreateNoteRequest{Text: "x"})
	if !errors.Is(err, storeErr) {
		t.Errorf("Expected store error, got %v", err)
	}
	if IsValidationError(err) {
		t.Error("Expected store failure not to be a validation error")
	}
}

func TestListNotes_SortsNewestFirst(t *testing.T) {
	repo := memory.NewNoteRepository()
	for _, item := range []models.Item{
		{"noteId": "n_000000000000000a", "createdAt": int64(100), "text": "a"},
		{"noteId": "n_000000000000000b", "createdAt": int64(300), "text": "b"},
		{"noteId": "n_000000000000000c", "text": "no timestamp"},
		{"noteId": "n_000000000000000d", "createdAt": int64(200), "text": "d"},
		{"noteId": "n_000000000000000e", "createdAt": int64(300), "text": "e"},
	} {
		repo.PutItem(item)
	}

	items, err := newTestService(repo).ListNotes(context.Background())
	if err != nil {
		t.Fatalf("ListNotes() failed: %v", err)
	}

	expected := []string{
		"n_000000000000000b",
		"n_000000000000000e",
		"n_000000000000000d",
		"n_000000000000000a",
		"n_000000000000000c",
	}
	if len(items) != len(expected) {
		t.Fatalf("Expected %d items, got %d", len(expected), len(items))
	}
	for i, id := range expected {
		if items[i].NoteID() != id {
			t.Errorf("Expected position %d to be %s, got %s", i, id, items[i].NoteID())
		}
	}
}

func TestListNotes_CapsBeforeSorting(t *testing.T) {
	repo := &recordingRepository{NoteRepository: memory.NewNoteRepository()}
	for i := 0; i < 30; i++ {
		repo.PutItem(models.Item{
			"noteId":    models.NewNoteID(),
			"createdAt": int64(i + 1),
			"text":      "x",
		})
	}

	items, err := newTestService(repo).ListNotes(context.Background())
	if err != nil {
		t.Fatalf("ListNotes() failed: %v", err)
	}

	if len(items) != models.DefaultListLimit {
		t.Fatalf("Expected %d items, got %d", models.DefaultListLimit, len(items))
	}
	if len(repo.limits) != 1 || repo.limits[0] != models.DefaultListLimit {
		t.Errorf("Expected a single scan capped at %d, got %v", models.DefaultListLimit, repo.limits)
	}
	// The cap applies to store order, so the newest five are not returned
	if items[0].CreatedAt() != 25 {
		t.Errorf("Expected newest returned createdAt 25, got %v", items[0].CreatedAt())
	}
}

func TestListNotes_CustomLimit(t *testing.T) {
	repo := &recordingRepository{NoteRepository: memory.NewNoteRepository()}
	svc := newTestService(repo, WithListLimit(5))

	if _, err := svc.ListNotes(context.Background()); err != nil {
		t.Fatalf("ListNotes() failed: %v", err)
	}
	if repo.limits[0] != 5 {
		t.Errorf("Expected limit 5, got %d", repo.limits[0])
	}
}

func TestListNotes_Empty(t *testing.T) {
	items, err := newTestService(memory.NewNoteRepository()).ListNotes(context.Background())
	if err != nil {
		t.Fatalf("ListNotes() failed: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("Expected no items, got %d", len(items))
	}
}

func TestDeleteNote(t *testing.T) {
	repo := memory.NewNoteRepository()
	svc := newTestService(repo)

	note, _ := svc.CreateNote(context.Background(), &CreateNoteRequest{Text: "x"})

	if err := svc.DeleteNote(context.Background(), note.NoteID); err != nil {
		t.Fatalf("DeleteNote() failed: %v", err)
	}
	if repo.Len() != 0 {
		t.Errorf("Expected store to be empty, got %d", repo.Len())
	}

	if err := svc.DeleteNote(context.Background(), "n_ffffffffffffffff"); err != nil {
		t.Errorf("Expected deleting an unknown id to succeed, got %v", err)
	}

	if err := svc.DeleteNote(context.Background(), ""); !errors.Is(err, ErrNoteIDRequired) {
		t.Errorf("Expected ErrNoteIDRequired, got %v", err)
	}
}

func TestNewServiceContainer(t *testing.T) {
	if _, err := NewServiceContainer(nil, nil); err == nil {
		t.Error("Expected error for nil repository")
	}

	sc, err := NewServiceContainer(memory.NewNoteRepository(), &ServiceConfig{Logger: quietLogger()})
	if err != nil {
		t.Fatalf("NewServiceContainer() failed: %v", err)
	}
	if err := sc.Validate(); err != nil {
		t.Errorf("Validate() failed: %v", err)
	}
}
