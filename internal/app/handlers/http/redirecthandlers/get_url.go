// Package redirecthandlers содержит HTTP-хендлеры для операций с короткими ссылками.
package redirecthandlers

import (
	"errors"
	"net/http"

	"github.com/aseptimu/link-shortener/internal/app/config"
	"github.com/aseptimu/link-shortener/internal/app/service"
	"github.com/aseptimu/link-shortener/internal/app/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GetURLHandler обрабатывает переход по короткой ссылке и просмотр списка ссылок.
type GetURLHandler struct {
	cfg     *config.ConfigType
	service service.URLGetter
	logger  *zap.SugaredLogger
}

// NewGetURLHandler создаёт новый экземпляр GetURLHandler.
func NewGetURLHandler(cfg *config.ConfigType, service service.URLGetter, logger *zap.SugaredLogger) *GetURLHandler {
	return &GetURLHandler{cfg: cfg, service: service, logger: logger}
}

// GetURL отвечает 302 с Location на адрес назначения. Идентификатор — весь путь
// запроса. Неизвестный или невалидный идентификатор даёт 404 без тела.
func (h *GetURLHandler) GetURL(c *gin.Context) {
	utils.LogRequest(c, h.logger)

	originalURL, err := h.service.GetOriginalURL(c.Request.Context(), c.Request.URL.Path)
	switch {
	case errors.Is(err, service.ErrURLNotFound):
		c.AbortWithStatus(http.StatusNotFound)
		return
	case err != nil:
		abortInternal(c, h.logger, "Failed to resolve URL", err)
		return
	}

	c.Header("Location", originalURL)
	c.Status(http.StatusFound)
	c.Writer.WriteHeaderNow()
}

// ListURLs отдаёт всё хранилище JSON-объектом identifier -> URL.
func (h *GetURLHandler) ListURLs(c *gin.Context) {
	utils.LogRequest(c, h.logger)

	entries, err := h.service.ListURLs(c.Request.Context())
	if err != nil {
		abortInternal(c, h.logger, "Failed to list URLs", err)
		return
	}

	c.JSON(http.StatusOK, entries)
}

// WebList отдаёт HTML-страницу со ссылками, отсортированными по идентификатору.
func (h *GetURLHandler) WebList(c *gin.Context) {
	utils.LogRequest(c, h.logger)

	entries, err := h.service.SortedURLs(c.Request.Context())
	if err != nil {
		abortInternal(c, h.logger, "Failed to list URLs", err)
		return
	}

	c.HTML(http.StatusOK, weblistTemplate, gin.H{"Entries": entries})
}

// Index отдаёт статическую страницу-подсказку.
func (h *GetURLHandler) Index(c *gin.Context) {
	utils.LogRequest(c, h.logger)
	c.HTML(http.StatusOK, indexTemplate, nil)
}

func abortInternal(c *gin.Context, logger *zap.SugaredLogger, msg string, err error) {
	logger.Errorw(msg, "path", c.Request.URL.Path, "error", err)
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}
