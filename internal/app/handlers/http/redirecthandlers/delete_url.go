package redirecthandlers

import (
	"errors"
	"net/http"

	"github.com/aseptimu/link-shortener/internal/app/config"
	"github.com/aseptimu/link-shortener/internal/app/middleware"
	"github.com/aseptimu/link-shortener/internal/app/service"
	"github.com/aseptimu/link-shortener/internal/app/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type DeleteURLHandler struct {
	cfg     *config.ConfigType
	Service service.URLDeleter
	logger  *zap.SugaredLogger
}

func NewDeleteURLHandler(cfg *config.ConfigType, service service.URLDeleter, logger *zap.SugaredLogger) *DeleteURLHandler {
	return &DeleteURLHandler{cfg: cfg, Service: service, logger: logger}
}

// DeleteURL обрабатывает DELETE /<id>?password=...
// Секрет проверяется до разбора идентификатора и обращения к хранилищу.
func (h *DeleteURLHandler) DeleteURL(c *gin.Context) {
	utils.LogRequest(c, h.logger)

	if !middleware.SecretMatches(h.cfg.DeletePassword, c.Query("password")) {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	err := h.Service.DeleteURL(c.Request.Context(), c.Request.URL.Path)
	switch {
	case errors.Is(err, service.ErrURLNotFound):
		c.AbortWithStatus(http.StatusNotFound)
		return
	case err != nil:
		abortInternal(c, h.logger, "Failed to delete URL", err)
		return
	}

	h.logger.Infow("Short URL deleted", "path", c.Request.URL.Path)
	c.Status(http.StatusOK)
	c.Writer.WriteHeaderNow()
}
