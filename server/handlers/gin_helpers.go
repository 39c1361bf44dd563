package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "lawlinks/server/errors"
	"lawlinks/server/middleware"
)

// SendJSONResponse отправляет JSON ответ
func SendJSONResponse(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// SendError отправляет JSON ошибку и логирует её
func SendError(c *gin.Context, err error) {
	middleware.AbortWithError(c, err)
}

// NotFound отвечает 404 на неизвестный маршрут
func NotFound(c *gin.Context) {
	SendError(c, apperrors.NewNotFoundError("Маршрут не найден",
		fmt.Errorf("no route for %s %s", c.Request.Method, c.Request.URL.Path)))
}

// readBody читает тело запроса, не больше limit байт (0 без ограничения)
func readBody(c *gin.Context, limit int64) ([]byte, error) {
	body := c.Request.Body
	if limit > 0 {
		body = http.MaxBytesReader(c.Writer, body, limit)
	}

	data, err := io.ReadAll(body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, apperrors.NewPayloadTooLargeError(
				fmt.Sprintf("Тело запроса больше %d байт", tooLarge.Limit), err)
		}
		return nil, apperrors.NewValidationError("Не удалось прочитать тело запроса", err)
	}
	return data, nil
}
