package lambda

import (
	"context"
	"fmt"
	"sync"
	"time"

	"notes-api/internal/config"
	"notes-api/pkg/server"
)

// ContainerFactory builds the service container on first use
type ContainerFactory func(ctx context.Context, cfg *config.Config) (*server.Container, error)

// ConnectionManager keeps the service container (and with it the store
// client) alive across invocations of a warm Lambda process
type ConnectionManager struct {
	mu        sync.Mutex
	container *server.Container
	lastUsed  time.Time
	config    *config.Config
	factory   ContainerFactory
}

var (
	globalConnectionManager *ConnectionManager
	connectionManagerOnce   sync.Once
)

// GetConnectionManager returns the global connection manager instance
func GetConnectionManager() *ConnectionManager {
	connectionManagerOnce.Do(func() {
		globalConnectionManager = NewConnectionManager(nil, nil)
	})
	return globalConnectionManager
}

// NewConnectionManager creates a connection manager. A nil cfg is loaded
// with config.GetOptimizedConfig on first use; a nil factory defaults to
// server.NewContainer.
func NewConnectionManager(cfg *config.Config, factory ContainerFactory) *ConnectionManager {
	if factory == nil {
		factory = func(ctx context.Context, cfg *config.Config) (*server.Container, error) {
			return server.NewContainer(ctx, cfg)
		}
	}
	return &ConnectionManager{
		config:  cfg,
		factory: factory,
	}
}

// GetContainer returns the service container, initializing it if
// necessary. A failed initialization is retried on the next call.
func (cm *ConnectionManager) GetContainer(ctx context.Context) (*server.Container, error) {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if cm.container != nil {
		cm.lastUsed = time.Now()
		return cm.container, nil
	}

	if cm.config == nil {
		cfg, err := config.GetOptimizedConfig()
		if err != nil {
			return nil, err
		}
		cm.config = cfg
	}

	container, err := cm.factory(ctx, cm.config)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize container: %w", err)
	}

	cm.container = container
	cm.lastUsed = time.Now()
	return container, nil
}

// IsInitialized reports whether a container is currently held
func (cm *ConnectionManager) IsInitialized() bool {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	return cm.container != nil
}

// LastUsed returns when the container was last handed out
func (cm *ConnectionManager) LastUsed() time.Time {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	return cm.lastUsed
}

// Cleanup closes the container; the next GetContainer builds a new one
func (cm *ConnectionManager) Cleanup() error {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if cm.container == nil {
		return nil
	}

	err := cm.container.Close()
	cm.container = nil
	if err != nil {
		return fmt.Errorf("failed to close container: %w", err)
	}
	return nil
}
