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

// URLWriter объединяет создание и перенаправление ссылок.
type URLWriter interface {
	service.URLShortener
	service.URLMover
}

// ShortenHandler обрабатывает POST /shorten и POST /move.
type ShortenHandler struct {
	cfg     *config.ConfigType
	Service URLWriter
	logger  *zap.SugaredLogger
}

// NewShortenHandler создаёт новый ShortenHandler.
func NewShortenHandler(cfg *config.ConfigType, service URLWriter, logger *zap.SugaredLogger) *ShortenHandler {
	return &ShortenHandler{cfg: cfg, Service: service, logger: logger}
}

// ShortenRequest — тело POST /shorten и POST /move. ID может прийти любым
// JSON-значением: всё, кроме строки, считается отсутствующим идентификатором.
type ShortenRequest struct {
	URL      string `json:"url"`
	Password string `json:"password"`
	ID       any    `json:"id"`
}

// ShortenResponse возвращается при успешном создании или перенаправлении.
type ShortenResponse struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// bind читает тело и проверяет url и секрет на запись.
// При ошибке ответ уже отправлен и ok == false.
func (h *ShortenHandler) bind(c *gin.Context) (req ShortenRequest, id string, ok bool) {
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Debugw("Invalid request body", "error", err)
		c.AbortWithStatus(http.StatusBadRequest)
		return req, "", false
	}
	if req.URL == "" || !middleware.SecretMatches(h.cfg.SubmitPassword, req.Password) {
		c.AbortWithStatus(http.StatusBadRequest)
		return req, "", false
	}
	id, _ = req.ID.(string)
	return req, id, true
}

// URLCreator обрабатывает POST /shorten.
// Принимает JSON {"url", "password", "id"?} и возвращает {"id", "url"}.
// Занятый идентификатор даёт 400 {"error": "ID in use"}.
func (h *ShortenHandler) URLCreator(c *gin.Context) {
	utils.LogRequest(c, h.logger)

	req, customID, ok := h.bind(c)
	if !ok {
		return
	}

	entry, err := h.Service.ShortenURL(c.Request.Context(), req.URL, customID)
	if err != nil {
		h.abort(c, err)
		return
	}

	h.logger.Infow("Short URL created", "id", entry.ID, "url", entry.URL)
	c.JSON(http.StatusOK, ShortenResponse{ID: entry.ID, URL: entry.URL})
}

// URLMover обрабатывает POST /move: меняет адрес назначения существующего
// идентификатора. Отсутствующий идентификатор даёт 400 {"error": "ID does not exist"}.
func (h *ShortenHandler) URLMover(c *gin.Context) {
	utils.LogRequest(c, h.logger)

	req, id, ok := h.bind(c)
	if !ok {
		return
	}

	entry, err := h.Service.MoveURL(c.Request.Context(), id, req.URL)
	if err != nil {
		h.abort(c, err)
		return
	}

	h.logger.Infow("Short URL moved", "id", entry.ID, "url", entry.URL)
	c.JSON(http.StatusOK, ShortenResponse{ID: entry.ID, URL: entry.URL})
}

func (h *ShortenHandler) abort(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrIDInUse), errors.Is(err, service.ErrIDNotExist):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrEmptyURL):
		c.AbortWithStatus(http.StatusBadRequest)
	case errors.Is(err, service.ErrIDSpaceExhausted):
		h.logger.Warnw("No free identifier found", "length", h.cfg.IDLength)
		c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	default:
		abortInternal(c, h.logger, "Failed to store URL", err)
	}
}
