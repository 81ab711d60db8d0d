// Package config собирает настройки сервиса из флагов командной строки
// и переменных окружения.
package config

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap/zapcore"
)

// DBTimeout ограничивает время одного обращения к SQL-хранилищу.
const DBTimeout = 5 * time.Second

// Поддерживаемые бэкенды хранилища.
const (
	BackendFile     = "file"
	BackendMemory   = "memory"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
)

type ConfigType struct {
	ServerAddress   string `env:"SERVER_ADDRESS"`
	AdminAddress    string `env:"ADMIN_ADDRESS"`
	StorageBackend  string `env:"STORAGE_BACKEND"`
	FileStoragePath string `env:"FILE_STORAGE_PATH"`
	SQLitePath      string `env:"SQLITE_PATH"`
	DSN             string `env:"DATABASE_DSN"`
	MigrationsPath  string `env:"MIGRATIONS_PATH"`
	IDLength        int    `env:"ID_LENGTH"`
	LogLevel        string `env:"LOG_LEVEL"`

	// Секреты для трёх классов операций. Сравниваются точным совпадением.
	ListPassword   string `env:"LIST_PWD"`
	SubmitPassword string `env:"SUBMIT_PWD"`
	DeletePassword string `env:"DELETE_PWD"`
}

// NewConfig разбирает args (без имени программы), затем переопределяет
// значения переменными окружения и проверяет результат.
func NewConfig(args []string) (*ConfigType, error) {
	config := ConfigType{}

	fs := flag.NewFlagSet("shortener", flag.ContinueOnError)
	fs.StringVar(&config.ServerAddress, "a", ":8123", "HTTP server address")
	fs.StringVar(&config.AdminAddress, "admin", "", "admin server address (/ping, /metrics); empty disables it")
	fs.StringVar(&config.StorageBackend, "s", BackendFile, "storage backend: file|memory|sqlite|postgres")
	fs.StringVar(&config.FileStoragePath, "f", "db.json", "File storage path")
	fs.StringVar(&config.SQLitePath, "sqlite", "db.sqlite", "SQLite database path")
	fs.StringVar(&config.DSN, "d", "", "PostgreSQL DSN")
	fs.StringVar(&config.MigrationsPath, "m", "file://./migrations", "PostgreSQL migrations source URL")
	fs.IntVar(&config.IDLength, "l", 2, "length of generated identifiers")
	fs.StringVar(&config.LogLevel, "log-level", "info", "log level: debug|info|warn|error")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if err := env.Parse(&config); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *ConfigType) validate() error {
	switch c.StorageBackend {
	case BackendFile, BackendMemory, BackendSQLite:
	case BackendPostgres:
		if c.DSN == "" {
			return errors.New("postgres backend requires DATABASE_DSN")
		}
	default:
		return fmt.Errorf("unknown storage backend %q", c.StorageBackend)
	}

	if c.IDLength < 1 {
		return fmt.Errorf("identifier length must be positive, got %d", c.IDLength)
	}

	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}

	return nil
}
