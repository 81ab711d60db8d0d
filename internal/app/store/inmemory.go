package store

import (
	"context"
	"maps"
	"sync"
)

// InMemoryStore хранит снимок в памяти процесса. Load и Save работают с копиями,
// поэтому вызывающий код не может изменить сохранённое состояние в обход Save.
type InMemoryStore struct {
	data map[string]string
	mu   sync.RWMutex
}

func NewStore() *InMemoryStore {
	return &InMemoryStore{
		data: make(map[string]string),
	}
}

func (m *InMemoryStore) Load(_ context.Context) (map[string]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return maps.Clone(m.data), nil
}

func (m *InMemoryStore) Save(_ context.Context, entries map[string]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = maps.Clone(entries)
	if m.data == nil {
		m.data = make(map[string]string)
	}
	return nil
}

func (m *InMemoryStore) Ping(_ context.Context) error {
	return nil
}
