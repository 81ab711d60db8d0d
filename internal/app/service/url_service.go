package service

import (
	"context"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// maxGenerateAttempts ограничивает число попыток подобрать свободный идентификатор.
const maxGenerateAttempts = 16

// Entry хранит пару идентификатор / адрес назначения.
type Entry struct {
	ID  string
	URL string
}

// IDGenerator возвращает случайный кандидат в идентификаторы.
type IDGenerator func() (string, error)

// NewIDGenerator возвращает генератор nanoid длины length
// (алфавит A-Za-z0-9_-).
func NewIDGenerator(length int) IDGenerator {
	return func() (string, error) {
		return gonanoid.New(length)
	}
}

type URLShortener interface {
	ShortenURL(ctx context.Context, rawURL, customID string) (Entry, error)
}

type URLMover interface {
	MoveURL(ctx context.Context, rawID, rawURL string) (Entry, error)
}

type URLService struct {
	writer *Writer
	newID  IDGenerator
}

func NewURLService(writer *Writer, newID IDGenerator) *URLService {
	return &URLService{writer: writer, newID: newID}
}

// ShortenURL создаёт новую запись. Если customID нормализуется, он используется
// как есть и не должен быть занят; иначе идентификатор генерируется.
func (s *URLService) ShortenURL(ctx context.Context, rawURL, customID string) (Entry, error) {
	if rawURL == "" {
		return Entry{}, ErrEmptyURL
	}
	entry := Entry{URL: EnsureScheme(rawURL)}

	err := s.writer.Update(ctx, func(entries map[string]string) error {
		if id, ok := NormalizeID(customID); ok {
			if entries[id] != "" {
				return ErrIDInUse
			}
			entry.ID = id
		} else {
			id, err := s.generateID(entries)
			if err != nil {
				return err
			}
			entry.ID = id
		}

		entries[entry.ID] = entry.URL
		return nil
	})
	if err != nil {
		return Entry{}, err
	}

	return entry, nil
}

// generateID подбирает идентификатор, которого ещё нет в entries.
func (s *URLService) generateID(entries map[string]string) (string, error) {
	for attempt := 0; attempt < maxGenerateAttempts; attempt++ {
		raw, err := s.newID()
		if err != nil {
			return "", err
		}
		id, ok := NormalizeID(raw)
		if !ok {
			continue
		}
		if entries[id] == "" {
			return id, nil
		}
	}
	return "", ErrIDSpaceExhausted
}

// MoveURL меняет адрес назначения у существующего идентификатора.
// Сам идентификатор не меняется.
func (s *URLService) MoveURL(ctx context.Context, rawID, rawURL string) (Entry, error) {
	if rawURL == "" {
		return Entry{}, ErrEmptyURL
	}
	entry := Entry{URL: EnsureScheme(rawURL)}

	err := s.writer.Update(ctx, func(entries map[string]string) error {
		id, ok := NormalizeID(rawID)
		if !ok || entries[id] == "" {
			return ErrIDNotExist
		}
		entry.ID = id
		entries[id] = entry.URL
		return nil
	})
	if err != nil {
		return Entry{}, err
	}

	return entry, nil
}
