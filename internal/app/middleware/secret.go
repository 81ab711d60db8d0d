// Package middleware содержит Gin-middleware сервиса: журналирование, сжатие,
// идентификаторы запросов, метрики и проверку общих секретов.
package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// passwordParam содержит имя query-параметра с секретом.
const passwordParam = "password"

// SecretMatches сравнивает переданный секрет с ожидаемым за постоянное время.
// Сравнение точное и чувствительно к регистру.
func SecretMatches(expected, candidate string) bool {
	return subtle.ConstantTimeCompare([]byte(expected), []byte(candidate)) == 1
}

// QuerySecret возвращает middleware, который пропускает запрос дальше только если
// query-параметр password совпадает с secret, иначе отвечает 401 без тела.
func QuerySecret(secret string, logger *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !SecretMatches(secret, c.Query(passwordParam)) {
			logger.Debugw("Secret mismatch", "path", c.Request.URL.Path)
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		c.Next()
	}
}
