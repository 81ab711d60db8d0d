// Package utils содержит вспомогательные функции для обработчиков и запуска сервиса.
package utils

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

const secretKeyLength = 32

// GenerateRandomSecretKey возвращает случайный секрет в base64 (URL-safe),
// пригодный для передачи в query-параметре.
func GenerateRandomSecretKey() (string, error) {
	b := make([]byte, secretKeyLength)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate random secret key: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
