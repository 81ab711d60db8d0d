// Package server собирает хранилище, сервисы и HTTP-серверы в одно приложение.
package server

import (
	"context"
	"fmt"

	"github.com/aseptimu/link-shortener/internal/app/config"
	handlershttp "github.com/aseptimu/link-shortener/internal/app/handlers/http"
	"github.com/aseptimu/link-shortener/internal/app/middleware"
	httpserver "github.com/aseptimu/link-shortener/internal/app/server/http"
	"github.com/aseptimu/link-shortener/internal/app/service"
	"github.com/aseptimu/link-shortener/internal/app/store"
	"github.com/aseptimu/link-shortener/internal/app/utils"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// backend описывает хранилище снимков, которое умеет проверять свою доступность.
type backend interface {
	service.Store
	Ping(ctx context.Context) error
}

// Run запускает сервис и блокируется до отмены ctx или ошибки одного из серверов.
func Run(ctx context.Context, cfg *config.ConfigType, logger *zap.SugaredLogger) error {
	for _, s := range []struct {
		env    string
		secret *string
	}{
		{"LIST_PWD", &cfg.ListPassword},
		{"SUBMIT_PWD", &cfg.SubmitPassword},
		{"DELETE_PWD", &cfg.DeletePassword},
	} {
		if err := ensureSecret(s.env, s.secret, logger); err != nil {
			return err
		}
	}

	st, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeStore(); cerr != nil {
			logger.Errorw("Failed to close storage", "error", cerr)
		}
	}()

	writer := service.NewWriter(st)
	urlService := service.NewURLService(writer, service.NewIDGenerator(cfg.IDLength))
	urlGetService := service.NewGetURLService(st)
	urlDelete := service.NewURLDeleter(writer)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := middleware.NewMetrics(reg)

	h := handlershttp.New(cfg, urlService, urlGetService, urlDelete, logger)
	public := httpserver.NewServer("public", cfg.ServerAddress, httpserver.NewRouter(logger, metrics, h), logger)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return public.Run(ctx) })

	if cfg.AdminAddress != "" {
		admin := httpserver.NewServer("admin", cfg.AdminAddress, httpserver.NewAdminRouter(logger, st, reg), logger)
		g.Go(func() error { return admin.Run(ctx) })
	}

	return g.Wait()
}

// ensureSecret заменяет пустой секрет случайным и сообщает его в журнал,
// чтобы класс операций не оказался открыт пустым паролем.
func ensureSecret(env string, secret *string, logger *zap.SugaredLogger) error {
	if *secret != "" {
		return nil
	}
	generated, err := utils.GenerateRandomSecretKey()
	if err != nil {
		return err
	}
	*secret = generated
	logger.Warnw("Secret not provided, generated a random one (will reset on each restart)",
		"env", env, "secret", generated)
	return nil
}

func openStore(ctx context.Context, cfg *config.ConfigType, logger *zap.SugaredLogger) (backend, func() error, error) {
	noop := func() error { return nil }

	switch cfg.StorageBackend {
	case config.BackendMemory:
		logger.Infow("Memory storage mode enabled")
		return store.NewStore(), noop, nil
	case config.BackendSQLite:
		logger.Infow("SQLite storage mode enabled", "path", cfg.SQLitePath)
		s, err := store.NewSQLiteStore(ctx, cfg.SQLitePath, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite storage: %w", err)
		}
		return s, s.Close, nil
	case config.BackendPostgres:
		logger.Infow("Database storage mode enabled")
		if err := store.MigrateDB(cfg.DSN, cfg.MigrationsPath, logger); err != nil {
			return nil, nil, fmt.Errorf("database migration failed: %w", err)
		}
		db, err := store.NewDB(ctx, cfg.DSN, logger)
		if err != nil {
			return nil, nil, err
		}
		return db, db.Close, nil
	default:
		logger.Infow("File storage mode enabled", "storagePath", cfg.FileStoragePath)
		return store.NewFileStore(cfg.FileStoragePath, logger), noop, nil
	}
}
