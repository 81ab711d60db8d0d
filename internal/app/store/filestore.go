// Package store содержит реализации хранилища снимков identifier -> URL:
// JSON-файл, память процесса, SQLite и PostgreSQL.
package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"
	"go.uber.org/zap"
)

// FileStore хранит весь снимок одним JSON-объектом в файле.
// Каждый Save заменяет файл целиком через временный файл и rename.
type FileStore struct {
	filePath string
	logger   *zap.SugaredLogger
}

func NewFileStore(filePath string, logger *zap.SugaredLogger) *FileStore {
	return &FileStore{filePath: filePath, logger: logger}
}

// Load читает файл заново при каждом вызове. Отсутствующий или пустой файл
// означает пустое хранилище.
func (s *FileStore) Load(ctx context.Context) (map[string]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.filePath)
	if errors.Is(err, fs.ErrNotExist) {
		s.logger.Debugw("Storage file not found, using empty store", "path", s.filePath)
		return make(map[string]string), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.filePath, err)
	}

	entries := make(map[string]string)
	if len(bytes.TrimSpace(data)) == 0 {
		return entries, nil
	}
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.filePath, err)
	}
	if entries == nil {
		entries = make(map[string]string)
	}

	s.logger.Debugw("Storage loaded", "path", s.filePath, "entries", len(entries))
	return entries, nil
}

func (s *FileStore) Save(ctx context.Context, entries map[string]string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if entries == nil {
		entries = map[string]string{}
	}

	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	if err := renameio.WriteFile(s.filePath, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", s.filePath, err)
	}

	s.logger.Debugw("Storage saved", "path", s.filePath, "entries", len(entries))
	return nil
}

// Ping проверяет, что каталог файла хранилища существует.
func (s *FileStore) Ping(_ context.Context) error {
	dir := filepath.Dir(s.filePath)
	info, err := os.Stat(dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}
	return nil
}
