package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MiddlewareLogger пишет одну Info-запись на каждый обработанный запрос.
// Статус и размер берутся из gin.ResponseWriter после выполнения цепочки,
// поэтому учитываются и ответы, записанные через AbortWithStatus.
func MiddlewareLogger(sugar *zap.SugaredLogger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		now := time.Now()
		ctx.Next()
		duration := time.Since(now)

		size := ctx.Writer.Size()
		if size < 0 {
			size = 0
		}

		sugar.Infow(
			"Request",
			"uri", ctx.Request.URL.Path,
			"method", ctx.Request.Method,
			"duration", duration,
			"status", ctx.Writer.Status(),
			"size", size,
			"request_id", GetRequestID(ctx),
		)
	}
}
