// Package database открывает пулы database/sql с общими настройками.
package database

import (
	"database/sql"
	"fmt"
	"time"
)

// Open открывает пул соединений для driverName. Соединение не проверяется:
// это делает вызывающий код со своим контекстом.
func Open(driverName, dsn string) (*sql.DB, error) {
	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", driverName, err)
	}
	db.SetConnMaxLifetime(3 * time.Minute)
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(10)

	return db, nil
}
