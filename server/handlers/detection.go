package handlers

import (
	"bytes"
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"lawlinks/database"
	"lawlinks/export"
	apperrors "lawlinks/server/errors"
	"lawlinks/server/services"
)

// AliasStore источник статистики хранилища псевдонимов
type AliasStore interface {
	Stats(ctx context.Context) (database.AliasStats, error)
}

// DetectionHandler обработчики поиска ссылок на законы
type DetectionHandler struct {
	service      *services.DetectionService
	store        AliasStore
	maxBodyBytes int64
}

// NewDetectionHandler создает обработчик. store может быть nil, если псевдонимы загружены из файла.
func NewDetectionHandler(service *services.DetectionService, store AliasStore, maxBodyBytes int64) *DetectionHandler {
	return &DetectionHandler{
		service:      service,
		store:        store,
		maxBodyBytes: maxBodyBytes,
	}
}

// AliasStatsResponse статистика каталога псевдонимов и сервиса
type AliasStatsResponse struct {
	services.DetectionStats
	Store *database.AliasStats `json:"store,omitempty"`
}

// Detect ищет ссылки в тексте
// @Summary Detect law citations
// @Description Находит ссылки на статьи, пункты и подпункты законов в тексте
// @Tags detection
// @Accept json
// @Produce json
// @Param request body DetectRequest true "Текст"
// @Success 200 {object} DetectResponse
// @Failure 400 {object} ErrorResponse
// @Failure 413 {object} ErrorResponse
// @Router /detect [post]
func (h *DetectionHandler) Detect(c *gin.Context) {
	text, err := h.bindText(c)
	if err != nil {
		SendError(c, err)
		return
	}

	links, err := h.service.Detect(c.Request.Context(), text)
	if err != nil {
		SendError(c, err)
		return
	}

	SendJSONResponse(c, http.StatusOK, DetectResponse{Links: links})
}

// DetectDocument ищет ссылки в документе, переданном телом запроса
// @Summary Detect law citations in a document
// @Description Принимает text/plain или text/html в любой кодировке
// @Tags detection
// @Accept plain
// @Accept html
// @Produce json
// @Success 200 {object} DetectResponse
// @Failure 413 {object} ErrorResponse
// @Failure 415 {object} ErrorResponse
// @Router /detect/document [post]
func (h *DetectionHandler) DetectDocument(c *gin.Context) {
	body, err := readBody(c, h.maxBodyBytes)
	if err != nil {
		SendError(c, err)
		return
	}

	links, err := h.service.DetectDocument(c.Request.Context(), body, c.GetHeader("Content-Type"))
	if err != nil {
		SendError(c, err)
		return
	}

	SendJSONResponse(c, http.StatusOK, DetectResponse{Links: links})
}

// Export ищет ссылки и отдает их файлом
// @Summary Export detected citations
// @Tags detection
// @Accept json
// @Produce octet-stream
// @Param format query string false "json, csv или xlsx" default(json)
// @Param request body DetectRequest true "Текст"
// @Success 200 {file} file
// @Failure 400 {object} ErrorResponse
// @Router /detect/export [post]
func (h *DetectionHandler) Export(c *gin.Context) {
	format, err := export.ParseFormat(c.Query("format"))
	if err != nil {
		SendError(c, apperrors.NewValidationError(err.Error(), err))
		return
	}

	text, err := h.bindText(c)
	if err != nil {
		SendError(c, err)
		return
	}

	links, err := h.service.Detect(c.Request.Context(), text)
	if err != nil {
		SendError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := export.Write(&buf, format, links); err != nil {
		SendError(c, apperrors.NewInternalError("failed to export links", err))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="links.%s"`, format.Extension()))
	c.Data(http.StatusOK, format.ContentType(), buf.Bytes())
}

// AliasStats возвращает сведения о каталоге псевдонимов
// @Summary Alias catalog statistics
// @Tags aliases
// @Produce json
// @Success 200 {object} AliasStatsResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/aliases/stats [get]
func (h *DetectionHandler) AliasStats(c *gin.Context) {
	resp := AliasStatsResponse{DetectionStats: h.service.Stats()}

	if h.store != nil {
		stats, err := h.store.Stats(c.Request.Context())
		if err != nil {
			SendError(c, apperrors.NewServiceUnavailableError("Хранилище псевдонимов недоступно", err))
			return
		}
		resp.Store = &stats
	}

	SendJSONResponse(c, http.StatusOK, resp)
}

func (h *DetectionHandler) bindText(c *gin.Context) (string, error) {
	body, err := readBody(c, h.maxBodyBytes)
	if err != nil {
		return "", err
	}

	var req DetectRequest
	if err := binding.JSON.BindBody(body, &req); err != nil {
		return "", apperrors.NewValidationError("Некорректный JSON", err)
	}
	if req.Text == nil {
		return "", apperrors.NewValidationError("Поле text обязательно", nil)
	}
	return *req.Text, nil
}
