package service

import (
	"context"
)

type URLDeleter interface {
	DeleteURL(ctx context.Context, rawID string) error
}

type DeleteURLService struct {
	writer *Writer
}

func NewURLDeleter(writer *Writer) *DeleteURLService {
	return &DeleteURLService{writer: writer}
}

// DeleteURL удаляет запись. Невалидный или отсутствующий идентификатор даёт ErrURLNotFound.
func (s *DeleteURLService) DeleteURL(ctx context.Context, rawID string) error {
	id, ok := NormalizeID(rawID)
	if !ok {
		return ErrURLNotFound
	}

	return s.writer.Update(ctx, func(entries map[string]string) error {
		if entries[id] == "" {
			return ErrURLNotFound
		}
		delete(entries, id)
		return nil
	})
}
