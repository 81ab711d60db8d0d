// Package dbhandlers содержит HTTP-хендлеры для проверки доступности хранилища.
package dbhandlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Pinger описывает хранилище, доступность которого можно проверить.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingHandler обрабатывает HTTP-запросы /ping, проверяя Pinger.
type PingHandler struct {
	db     Pinger
	logger *zap.SugaredLogger
}

// NewPingHandler создаёт новый PingHandler с переданным Pinger.
func NewPingHandler(db Pinger, logger *zap.SugaredLogger) *PingHandler {
	return &PingHandler{db: db, logger: logger}
}

// Ping обрабатывает GET /ping.
// Если h.db равен nil — возвращает 503 Service Unavailable.
// Иначе вызывает h.db.Ping и при ошибке возвращает 500 Internal Server Error,
// в противном случае отдаёт 200 OK.
func (h *PingHandler) Ping(c *gin.Context) {
	if h.db == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Storage is not configured"})
		return
	}

	if err := h.db.Ping(c.Request.Context()); err != nil {
		h.logger.Errorw("Storage ping failed", "error", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusOK)
}
