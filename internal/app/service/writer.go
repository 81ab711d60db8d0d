// Package service содержит бизнес-логику работы с короткими ссылками.
package service

import (
	"context"
	"fmt"
	"sync"
)

// StoreLoader читает полный снимок identifier -> URL.
type StoreLoader interface {
	Load(ctx context.Context) (map[string]string, error)
}

// StoreSaver перезаписывает хранилище полным снимком.
type StoreSaver interface {
	Save(ctx context.Context, entries map[string]string) error
}

type Store interface {
	StoreLoader
	StoreSaver
}

// Writer выполняет цикл load -> mutate -> save под одним мьютексом,
// так что параллельные изменения внутри процесса не теряют друг друга.
type Writer struct {
	mu    sync.Mutex
	store Store
}

func NewWriter(store Store) *Writer {
	return &Writer{store: store}
}

// Update загружает свежий снимок, передаёт его в mutate и сохраняет,
// если mutate не вернул ошибку. Ошибка mutate возвращается как есть.
func (w *Writer) Update(ctx context.Context, mutate func(entries map[string]string) error) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	entries, err := w.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("load store: %w", err)
	}
	if entries == nil {
		entries = make(map[string]string)
	}

	if err := mutate(entries); err != nil {
		return err
	}

	if err := w.store.Save(ctx, entries); err != nil {
		return fmt.Errorf("save store: %w", err)
	}
	return nil
}
