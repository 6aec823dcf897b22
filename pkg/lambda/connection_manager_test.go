package lambda

import (
	"context"
	"errors"
	"sync"
	"testing"

	"notes-api/internal/config"
	"notes-api/internal/repositories/memory"
	"notes-api/pkg/server"

	"github.com/sirupsen/logrus"
)

func testConfig() *config.Config {
	return &config.Config{
		Environment: "test",
		Port:        "0",
		LogLevel:    "warn",
		Store:       config.StoreConfig{Type: config.StoreMemory},
	}
}

func memoryFactory(calls *int, mu *sync.Mutex) ContainerFactory {
	return func(ctx context.Context, cfg *config.Config) (*server.Container, error) {
		mu.Lock()
		*calls++
		mu.Unlock()

		logger := logrus.New()
		logger.SetLevel(logrus.WarnLevel)
		return server.NewContainer(ctx, cfg,
			server.WithLogger(logger),
			server.WithNoteRepository(memory.NewNoteRepository()),
		)
	}
}

func TestConnectionManager_LazyAndShared(t *testing.T) {
	var (
		calls int
		mu    sync.Mutex
	)
	cm := NewConnectionManager(testConfig(), memoryFactory(&calls, &mu))

	if cm.IsInitialized() {
		t.Fatal("Expected no container before first use")
	}

	var wg sync.WaitGroup
	containers := make([]*server.Container, 10)
	for i := range containers {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c, err := cm.GetContainer(context.Background())
			if err != nil {
				t.Errorf("GetContainer() failed: %v", err)
				return
			}
			containers[i] = c
		}(i)
	}
	wg.Wait()

	if calls != 1 {
		t.Errorf("Expected the container to be built once, got %d", calls)
	}
	for i, c := range containers {
		if c != containers[0] {
			t.Errorf("Expected invocation %d to share the container", i)
		}
	}
	if !cm.IsInitialized() {
		t.Error("Expected container to be held")
	}
	if cm.LastUsed().IsZero() {
		t.Error("Expected LastUsed to be recorded")
	}
}

func TestConnectionManager_RetriesFailedInit(t *testing.T) {
	attempts := 0
	initErr := errors.New("table missing")
	cm := NewConnectionManager(testConfig(), func(ctx context.Context, cfg *config.Config) (*server.Container, error) {
		attempts++
		if attempts == 1 {
			return nil, initErr
		}
		return server.NewContainer(ctx, cfg, server.WithNoteRepository(memory.NewNoteRepository()), server.WithLogger(logrus.New()))
	})

	if _, err := cm.GetContainer(context.Background()); !errors.Is(err, initErr) {
		t.Fatalf("Expected init error, got %v", err)
	}
	if cm.IsInitialized() {
		t.Error("Expected no container after a failed init")
	}

	if _, err := cm.GetContainer(context.Background()); err != nil {
		t.Fatalf("Expected second attempt to succeed, got %v", err)
	}
	if attempts != 2 {
		t.Errorf("Expected 2 attempts, got %d", attempts)
	}
}

func TestConnectionManager_Cleanup(t *testing.T) {
	var (
		calls int
		mu    sync.Mutex
	)
	cm := NewConnectionManager(testConfig(), memoryFactory(&calls, &mu))

	if err := cm.Cleanup(); err != nil {
		t.Errorf("Expected Cleanup on an empty manager to succeed, got %v", err)
	}

	first, _ := cm.GetContainer(context.Background())
	if err := cm.Cleanup(); err != nil {
		t.Fatalf("Cleanup() failed: %v", err)
	}
	if cm.IsInitialized() {
		t.Error("Expected container to be released")
	}

	second, _ := cm.GetContainer(context.Background())
	if first == second {
		t.Error("Expected a new container after Cleanup")
	}
	if calls != 2 {
		t.Errorf("Expected 2 builds, got %d", calls)
	}
}

func TestConnectionManager_DefaultFactory(t *testing.T) {
	cm := NewConnectionManager(testConfig(), nil)
	defer cm.Cleanup()

	c, err := cm.GetContainer(context.Background())
	if err != nil {
		t.Fatalf("GetContainer() failed: %v", err)
	}
	if c.NoteService == nil {
		t.Error("Expected note service to be wired")
	}
}
