package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader — заголовок с идентификатором запроса.
const RequestIDHeader = "X-Request-ID"

const requestIDKey = "requestID"

// RequestID берёт идентификатор запроса из заголовка X-Request-ID или создаёт
// новый UUID, кладёт его в контекст и возвращает в ответе.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// GetRequestID возвращает идентификатор, выставленный RequestID, или пустую строку.
func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
