package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"sync"

	"github.com/gin-gonic/gin"

	"lawlinks/internal/config"
	"lawlinks/internal/container"
	"lawlinks/server/handlers"
	"lawlinks/server/middleware"
)

// Server HTTP сервер поиска ссылок на законы
type Server struct {
	config    *config.Config
	container *container.Container

	httpServer     *http.Server
	httpHandler    http.Handler
	handlerOnce    sync.Once
	handlerInitErr error

	shutdownChan chan struct{}
	shutdownOnce sync.Once
}

// NewServer создает сервер из инициализированного контейнера
func NewServer(cfg *config.Config, c *container.Container) (*Server, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if c == nil || c.DetectionHandler == nil {
		return nil, fmt.Errorf("container is not initialized")
	}
	return &Server{
		config:       cfg,
		container:    c,
		shutdownChan: make(chan struct{}),
	}, nil
}

// ServeHTTP реализует http.Handler для тестов и вспомогательных утилит
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	handler, err := s.ensureHTTPHandler()
	if err != nil {
		http.Error(w, "server is not initialized", http.StatusInternalServerError)
		return
	}
	handler.ServeHTTP(w, r)
}

func (s *Server) ensureHTTPHandler() (http.Handler, error) {
	s.handlerOnce.Do(func() {
		handler, err := s.buildHTTPHandler()
		if err != nil {
			LogError(context.Background(), err, "Failed to build HTTP handler")
			s.handlerInitErr = err
			return
		}
		s.httpHandler = handler
	})

	if s.handlerInitErr != nil {
		return nil, s.handlerInitErr
	}
	if s.httpHandler == nil {
		return nil, fmt.Errorf("httpHandler is nil")
	}
	return s.httpHandler, nil
}

func (s *Server) buildHTTPHandler() (http.Handler, error) {
	// Режим можно переопределить через GIN_MODE
	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.GinRequestIDMiddleware())
	router.Use(middleware.GinCORSMiddleware())
	router.Use(middleware.GinGzipMiddleware())
	router.Use(middleware.GinLoggerMiddleware(Logger))
	router.Use(middleware.GinRecoveryMiddleware())

	handlers.RegisterSwaggerRoutes(router, "localhost:"+s.config.Port)
	s.registerRoutes(router)

	return router, nil
}

// registerRoutes регистрирует маршруты API
func (s *Server) registerRoutes(router *gin.Engine) {
	h := s.container.DetectionHandler

	router.GET("/health", handlers.Health)

	detect := router.Group("/detect")
	detect.Use(middleware.GinRateLimitMiddleware(s.container.RateLimiter))
	{
		detect.POST("", h.Detect)
		detect.POST("/document", h.DetectDocument)
		detect.POST("/export", h.Export)
	}

	api := router.Group("/api/v1")
	{
		api.GET("/aliases/stats", h.AliasStats)
	}

	router.NoRoute(handlers.NotFound)
}
