package blob

import (
	"context"
	"sync"
)

// Memory is a map-backed Store for tests and throwaway runs. Nothing survives
// a restart.
type Memory struct {
	mu    sync.Mutex
	blobs map[string]string
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{blobs: make(map[string]string)}
}

func (m *Memory) ReadText(_ context.Context, name string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	content, ok := m.blobs[name]
	if !ok {
		return "", ErrNotFound
	}
	return content, nil
}

func (m *Memory) WriteText(_ context.Context, name string, content string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.blobs[name] = content
	return nil
}
