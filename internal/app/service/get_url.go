package service

import (
	"context"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// URLGetter описывает операции чтения, доступные обработчикам.
type URLGetter interface {
	GetOriginalURL(ctx context.Context, rawID string) (string, error)
	ListURLs(ctx context.Context) (map[string]string, error)
	SortedURLs(ctx context.Context) ([]Entry, error)
}

// GetURLService читает хранилище заново на каждый вызов.
type GetURLService struct {
	store StoreLoader
}

func NewGetURLService(store StoreLoader) *GetURLService {
	return &GetURLService{store: store}
}

// GetOriginalURL возвращает адрес назначения или ErrURLNotFound.
func (s *GetURLService) GetOriginalURL(ctx context.Context, rawID string) (string, error) {
	id, ok := NormalizeID(rawID)
	if !ok {
		return "", ErrURLNotFound
	}

	entries, err := s.store.Load(ctx)
	if err != nil {
		return "", err
	}

	url := entries[id]
	if url == "" {
		return "", ErrURLNotFound
	}
	return url, nil
}

// ListURLs возвращает весь снимок без сортировки.
func (s *GetURLService) ListURLs(ctx context.Context) (map[string]string, error) {
	entries, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = make(map[string]string)
	}
	return entries, nil
}

// SortedURLs возвращает записи, упорядоченные по идентификатору без учёта регистра.
func (s *GetURLService) SortedURLs(ctx context.Context) ([]Entry, error) {
	entries, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]Entry, 0, len(entries))
	for id, url := range entries {
		result = append(result, Entry{ID: id, URL: url})
	}

	// collate.Collator не потокобезопасен, поэтому создаётся на каждый вызов.
	coll := collate.New(language.Und)
	slices.SortFunc(result, func(a, b Entry) int {
		if c := coll.CompareString(strings.ToUpper(a.ID), strings.ToUpper(b.ID)); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})

	return result, nil
}
