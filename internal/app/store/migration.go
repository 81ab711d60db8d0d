package store

import (
	"fmt"

	"github.com/aseptimu/link-shortener/internal/app/database"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"
)

// MigrateDB подключается к базе и применяет миграции из sourceURL
// (например, file://./migrations). Отсутствие новых миграций ошибкой не считается.
func MigrateDB(ps, sourceURL string, logger *zap.SugaredLogger) error {
	db, err := database.Open("pgx", ps)
	if err != nil {
		return err
	}
	defer db.Close()

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migrate driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(sourceURL, "postgres", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Infow("Migration executed successfully", "source", sourceURL)
	return nil
}
