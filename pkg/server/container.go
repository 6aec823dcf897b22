package server

import (
	"context"
	"fmt"

	"notes-api/internal/config"
	"notes-api/internal/repositories"
	"notes-api/internal/services"
	"notes-api/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Container holds all application dependencies
type Container struct {
	Config      *config.Config
	Logger      *logrus.Logger
	NoteRepo    repositories.NoteRepository
	NoteService services.NoteService

	// Internal dependencies
	services *services.ServiceContainer
}

// Option customizes container construction
type Option func(*containerOptions)

type containerOptions struct {
	logger   *logrus.Logger
	noteRepo repositories.NoteRepository
}

// WithLogger uses logger instead of building one from the config
func WithLogger(l *logrus.Logger) Option {
	return func(o *containerOptions) {
		o.logger = l
	}
}

// WithNoteRepository injects a ready-made store, bypassing the factory
func WithNoteRepository(repo repositories.NoteRepository) Option {
	return func(o *containerOptions) {
		o.noteRepo = repo
	}
}

// NewContainer creates a new dependency injection container
func NewContainer(ctx context.Context, cfg *config.Config, opts ...Option) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	var o containerOptions
	for _, opt := range opts {
		opt(&o)
	}

	log := o.logger
	if log == nil {
		log = logger.New(cfg.LogLevel, cfg.Environment, config.IsServerlessMode())
	}

	noteRepo := o.noteRepo
	if noteRepo == nil {
		var err error
		noteRepo, err = NewNoteRepository(ctx, &cfg.Store, log)
		if err != nil {
			return nil, fmt.Errorf("failed to create note repository: %w", err)
		}
	}

	serviceContainer, err := services.NewServiceContainer(noteRepo, &services.ServiceConfig{Logger: log})
	if err != nil {
		noteRepo.Close()
		return nil, fmt.Errorf("failed to create service container: %w", err)
	}

	log.WithFields(logrus.Fields{
		"store":           cfg.Store.Type,
		"table":           cfg.Store.Table,
		"deployment_mode": config.GetDeploymentMode(),
	}).Info("Container initialized")

	return &Container{
		Config:      cfg,
		Logger:      log,
		NoteRepo:    noteRepo,
		NoteService: serviceContainer.NoteService,
		services:    serviceContainer,
	}, nil
}

// Close cleans up all resources
func (c *Container) Close() error {
	if c.NoteRepo != nil {
		if err := c.NoteRepo.Close(); err != nil {
			return fmt.Errorf("failed to close note repository: %w", err)
		}
	}
	return nil
}
