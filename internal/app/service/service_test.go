package service

import (
	"context"
	"errors"
	"maps"
	"sync"
)

// memStore — простое хранилище снимков для тестов сервиса.
type memStore struct {
	mu      sync.Mutex
	data    map[string]string
	loadErr error
	saveErr error
	saves   int
}

func newMemStore(initial map[string]string) *memStore {
	if initial == nil {
		initial = make(map[string]string)
	}
	return &memStore{data: initial}
}

func (m *memStore) Load(_ context.Context) (map[string]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return maps.Clone(m.data), nil
}

func (m *memStore) Save(_ context.Context, entries map[string]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	m.data = maps.Clone(entries)
	return nil
}

func (m *memStore) snapshot() map[string]string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return maps.Clone(m.data)
}

// sequence возвращает генератор, выдающий ids по очереди.
func sequence(ids ...string) IDGenerator {
	var i int
	return func() (string, error) {
		if i >= len(ids) {
			return "", errors.New("sequence exhausted")
		}
		id := ids[i]
		i++
		return id, nil
	}
}
