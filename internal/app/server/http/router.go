package http

import (
	handlershttp "github.com/aseptimu/link-shortener/internal/app/handlers/http"
	"github.com/aseptimu/link-shortener/internal/app/handlers/http/dbhandlers"
	"github.com/aseptimu/link-shortener/internal/app/middleware"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// NewRouter возвращает публичный роутер с маршрутами h.
// metrics может быть nil, тогда метрики запросов не собираются.
func NewRouter(logger *zap.SugaredLogger, metrics *middleware.Metrics, h handlershttp.Handlers) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	logger.Debug("Setting up middleware")
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.MiddlewareLogger(logger))
	if metrics != nil {
		r.Use(metrics.Middleware())
	}
	r.Use(middleware.GzipMiddleware())

	h.RegisterRoutes(r)
	return r
}

// NewAdminRouter возвращает служебный роутер с /ping и /metrics.
// Он слушает отдельный адрес, чтобы служебные пути не занимали идентификаторы.
func NewAdminRouter(logger *zap.SugaredLogger, pinger dbhandlers.Pinger, gatherer prometheus.Gatherer) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/ping", dbhandlers.NewPingHandler(pinger, logger).Ping)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	return r
}
