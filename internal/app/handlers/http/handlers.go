package http

import (
	"net/http"

	"github.com/aseptimu/link-shortener/internal/app/config"
	"github.com/aseptimu/link-shortener/internal/app/handlers/http/redirecthandlers"
	"github.com/aseptimu/link-shortener/internal/app/middleware"
	"github.com/aseptimu/link-shortener/internal/app/service"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handlers interface {
	RegisterRoutes(r *gin.Engine)
}

type handlersImpl struct {
	cfg          *config.ConfigType
	urlSvc       redirecthandlers.URLWriter
	urlGetSvc    service.URLGetter
	urlDeleteSvc service.URLDeleter
	logger       *zap.SugaredLogger
}

func New(
	cfg *config.ConfigType,
	urlSvc redirecthandlers.URLWriter,
	urlGetSvc service.URLGetter,
	urlDeleteSvc service.URLDeleter,
	logger *zap.SugaredLogger,
) Handlers {
	return &handlersImpl{
		cfg:          cfg,
		urlSvc:       urlSvc,
		urlGetSvc:    urlGetSvc,
		urlDeleteSvc: urlDeleteSvc,
		logger:       logger,
	}
}

// RegisterRoutes регистрирует служебные маршруты. Все прочие пути считаются
// идентификаторами: GET/HEAD ведут на переход, DELETE ведёт на удаление.
func (h *handlersImpl) RegisterRoutes(r *gin.Engine) {
	r.SetHTMLTemplate(redirecthandlers.Templates())

	getHandler := redirecthandlers.NewGetURLHandler(h.cfg, h.urlGetSvc, h.logger)
	shortenHandler := redirecthandlers.NewShortenHandler(h.cfg, h.urlSvc, h.logger)
	deleteHandler := redirecthandlers.NewDeleteURLHandler(h.cfg, h.urlDeleteSvc, h.logger)
	listSecret := middleware.QuerySecret(h.cfg.ListPassword, h.logger)

	r.GET("/", getHandler.Index)
	r.GET("/weblist", listSecret, getHandler.WebList)
	r.GET("/list", listSecret, getHandler.ListURLs)
	r.POST("/shorten", shortenHandler.URLCreator)
	r.POST("/move", shortenHandler.URLMover)

	r.NoRoute(func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodGet, http.MethodHead:
			getHandler.GetURL(c)
		case http.MethodDelete:
			deleteHandler.DeleteURL(c)
		default:
			c.AbortWithStatus(http.StatusNotFound)
		}
	})
}
