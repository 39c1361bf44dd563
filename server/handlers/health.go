package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health проверка здоровья сервиса
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func Health(c *gin.Context) {
	SendJSONResponse(c, http.StatusOK, HealthResponse{Status: "healthy"})
}
