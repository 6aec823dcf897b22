package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"notes-api/internal/models"
	"notes-api/internal/repositories"

	"github.com/sirupsen/logrus"
)

// noteService implements the NoteService interface
type noteService struct {
	noteRepo  repositories.NoteRepository
	listLimit int
	now       func() time.Time
	newID     func() string
	logger    *logrus.Logger
}

// Option customizes a note service
type Option func(*noteService)

// WithListLimit overrides the scan cap used by ListNotes
func WithListLimit(limit int) Option {
	return func(s *noteService) {
		if limit > 0 {
			s.listLimit = limit
		}
	}
}

// WithClock overrides the time source used to stamp createdAt
func WithClock(now func() time.Time) Option {
	return func(s *noteService) {
		if now != nil {
			s.now = now
		}
	}
}

// WithIDGenerator overrides how note ids are generated
func WithIDGenerator(newID func() string) Option {
	return func(s *noteService) {
		if newID != nil {
			s.newID = newID
		}
	}
}

// WithLogger sets the service logger
func WithLogger(logger *logrus.Logger) Option {
	return func(s *noteService) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewNoteService creates a new note service instance
func NewNoteService(noteRepo repositories.NoteRepository, opts ...Option) NoteService {
	s := &noteService{
		noteRepo:  noteRepo,
		listLimit: models.DefaultListLimit,
		now:       time.Now,
		newID:     models.NewNoteID,
		logger:    logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListNotes scans up to listLimit items and sorts them by createdAt,
// newest first. The cap is applied by the store before sorting, so with
// more items than the cap this is not the true most-recent set.
func (s *noteService) ListNotes(ctx context.Context) ([]models.Item, error) {
	items, err := s.noteRepo.Scan(ctx, s.listLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt() > items[j].CreatedAt()
	})

	return items, nil
}

// CreateNote creates a new note
func (s *noteService) CreateNote(ctx context.Context, req *CreateNoteRequest) (*models.Note, error) {
	if req == nil {
		return nil, ErrTextRequired
	}

	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, ErrTextRequired
	}

	note := &models.Note{
		NoteID:    s.newID(),
		CreatedAt: s.now().Unix(),
		Text:      text,
	}

	if err := note.Validate(); err != nil {
		return nil, fmt.Errorf("note validation failed: %w", err)
	}

	if err := s.noteRepo.Put(ctx, note); err != nil {
		return nil, fmt.Errorf("failed to create note: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"note_id":    note.NoteID,
		"created_at": note.CreatedAt,
	}).Info("Note created")

	return note, nil
}

// DeleteNote deletes a note by id
func (s *noteService) DeleteNote(ctx context.Context, noteID string) error {
	if noteID == "" {
		return ErrNoteIDRequired
	}

	if err := s.noteRepo.Delete(ctx, noteID); err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}

	s.logger.WithField("note_id", noteID).Info("Note deleted")
	return nil
}
