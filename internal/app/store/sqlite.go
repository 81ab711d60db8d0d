package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aseptimu/link-shortener/internal/app/config"
	"github.com/aseptimu/link-shortener/internal/app/database"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

const createRedirectsTableSQLite = `CREATE TABLE IF NOT EXISTS redirects (
	id  TEXT PRIMARY KEY,
	url TEXT NOT NULL
)`

// SQLiteStore хранит снимок во встроенной базе SQLite. Save перезаписывает
// таблицу целиком в одной транзакции.
type SQLiteStore struct {
	db     *sql.DB
	logger *zap.SugaredLogger
}

func NewSQLiteStore(ctx context.Context, path string, logger *zap.SugaredLogger) (*SQLiteStore, error) {
	db, err := database.Open("sqlite", "file:"+path+"?_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, err
	}
	// Один писатель на файл, иначе SQLite отвечает SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	ctx, cancel := context.WithTimeout(ctx, config.DBTimeout)
	defer cancel()
	if _, err := db.ExecContext(ctx, createRedirectsTableSQLite); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create redirects table: %w", err)
	}

	logger.Debugw("SQLite storage ready", "path", path)
	return &SQLiteStore{db: db, logger: logger}, nil
}

const loadRedirectsQuery = "SELECT id, url FROM redirects"

func (s *SQLiteStore) Load(ctx context.Context) (map[string]string, error) {
	ctx, cancel := context.WithTimeout(ctx, config.DBTimeout)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, loadRedirectsQuery)
	if err != nil {
		return nil, fmt.Errorf("query redirects: %w", err)
	}
	defer rows.Close()

	entries := make(map[string]string)
	for rows.Next() {
		var id, url string
		if err := rows.Scan(&id, &url); err != nil {
			return nil, fmt.Errorf("scan redirect: %w", err)
		}
		entries[id] = url
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate redirects: %w", err)
	}

	return entries, nil
}

func (s *SQLiteStore) Save(ctx context.Context, entries map[string]string) error {
	ctx, cancel := context.WithTimeout(ctx, config.DBTimeout)
	defer cancel()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM redirects"); err != nil {
		return fmt.Errorf("clear redirects: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, "INSERT INTO redirects (id, url) VALUES (?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	for id, url := range entries {
		if _, err := stmt.ExecContext(ctx, id, url); err != nil {
			s.logger.Errorw("Failed to insert redirect", "id", id, "err", err)
			return fmt.Errorf("insert %q: %w", id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.logger.Debugw("SQLite snapshot saved", "entries", len(entries))
	return nil
}

func (s *SQLiteStore) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, config.DBTimeout)
	defer cancel()
	return s.db.PingContext(ctx)
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
