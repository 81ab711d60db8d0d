package store

import (
	"context"
	"fmt"

	"github.com/aseptimu/link-shortener/internal/app/config"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// Database хранит снимок в PostgreSQL, в таблице redirects из миграций.
type Database struct {
	dbpool *pgxpool.Pool
	logger *zap.SugaredLogger
}

func NewDB(ctx context.Context, ps string, logger *zap.SugaredLogger) (*Database, error) {
	dbpool, err := pgxpool.New(ctx, ps)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &Database{dbpool, logger}, nil
}

func (db *Database) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, config.DBTimeout)
	defer cancel()
	return db.dbpool.Ping(ctx)
}

func (db *Database) Load(ctx context.Context) (map[string]string, error) {
	ctx, cancel := context.WithTimeout(ctx, config.DBTimeout)
	defer cancel()

	rows, err := db.dbpool.Query(ctx, loadRedirectsQuery)
	if err != nil {
		db.logger.Errorw("Failed to query redirects", "err", err)
		return nil, err
	}
	defer rows.Close()

	entries := make(map[string]string)
	for rows.Next() {
		var id, url string
		if err := rows.Scan(&id, &url); err != nil {
			return nil, err
		}
		entries[id] = url
	}
	return entries, rows.Err()
}

// Save заменяет содержимое таблицы снимком entries в одной транзакции.
func (db *Database) Save(ctx context.Context, entries map[string]string) error {
	ctx, cancel := context.WithTimeout(ctx, config.DBTimeout)
	defer cancel()

	tx, err := db.dbpool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err = tx.Exec(ctx, "DELETE FROM redirects"); err != nil {
		db.logger.Errorw("Failed to clear redirects", "err", err)
		return err
	}

	rows := make([][]any, 0, len(entries))
	for id, url := range entries {
		rows = append(rows, []any{id, url})
	}

	copied, err := tx.CopyFrom(ctx, pgx.Identifier{"redirects"}, []string{"id", "url"}, pgx.CopyFromRows(rows))
	if err != nil {
		db.logger.Errorw("Failed to copy redirects", "err", err)
		return err
	}

	if err = tx.Commit(ctx); err != nil {
		return err
	}

	db.logger.Debugw("Snapshot saved", "rowsCopied", copied)
	return nil
}

func (db *Database) Close() error {
	db.dbpool.Close()
	return nil
}
