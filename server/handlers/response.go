package handlers

import (
	"lawlinks/extractors"
	"lawlinks/server/middleware"
)

// ErrorResponse ответ об ошибке
type ErrorResponse = middleware.ErrorResponse

// DetectRequest запрос на поиск ссылок
type DetectRequest struct {
	Text *string `json:"text" example:"пункт 1, 2 и 3 статьи 5 Закона"`
}

// DetectResponse найденные ссылки в порядке появления в тексте
type DetectResponse struct {
	Links []extractors.Citation `json:"links"`
}

// HealthResponse ответ проверки здоровья
type HealthResponse struct {
	Status string `json:"status" example:"healthy"`
}
