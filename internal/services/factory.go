package services

import (
	"fmt"

	"notes-api/internal/repositories"

	"github.com/sirupsen/logrus"
)

// ServiceContainer holds all service instances
type ServiceContainer struct {
	NoteService NoteService
}

// ServiceConfig holds configuration for services
type ServiceConfig struct {
	Logger *logrus.Logger
}

// NewServiceContainer creates a new service container with all services
func NewServiceContainer(noteRepo repositories.NoteRepository, config *ServiceConfig) (*ServiceContainer, error) {
	if noteRepo == nil {
		return nil, fmt.Errorf("note repository cannot be nil")
	}

	if config == nil {
		config = &ServiceConfig{}
	}

	noteService := NewNoteService(noteRepo, WithLogger(config.Logger))

	return &ServiceContainer{
		NoteService: noteService,
	}, nil
}

// Validate validates that all services are properly initialized
func (sc *ServiceContainer) Validate() error {
	if sc.NoteService == nil {
		return fmt.Errorf("note service is nil")
	}
	return nil
}
