package store

import (
	"context"
	"strings"
	"sync"
)

type memoryKeyValueStorage struct {
	mu    sync.RWMutex
	items map[string]string
}

// NewMemoryKeyValueStorage returns a process-local [KeyValueStorage]. Values
// are lost when the process exits.
func NewMemoryKeyValueStorage() KeyValueStorage {
	return &memoryKeyValueStorage{items: make(map[string]string)}
}

func (m *memoryKeyValueStorage) Get(_ context.Context, key string) (string, bool, error) {
	if strings.TrimSpace(key) == "" {
		return "", false, ErrEmptyKey
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.items[key]
	return value, ok, nil
}

func (m *memoryKeyValueStorage) Set(_ context.Context, key, value string) error {
	if strings.TrimSpace(key) == "" {
		return ErrEmptyKey
	}

	m.mu.Lock()
	m.items[key] = value
	m.mu.Unlock()

	return nil
}

func (m *memoryKeyValueStorage) Remove(_ context.Context, key string) error {
	if strings.TrimSpace(key) == "" {
		return ErrEmptyKey
	}

	m.mu.Lock()
	delete(m.items, key)
	m.mu.Unlock()

	return nil
}
