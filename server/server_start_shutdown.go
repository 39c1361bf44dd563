package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"
)

// rateLimiterIdle время, после которого неактивный адрес забывается ограничителем
const rateLimiterIdle = 10 * time.Minute

// Start запускает HTTP сервер и блокируется до его остановки
func (s *Server) Start() error {
	handler, err := s.ensureHTTPHandler()
	if err != nil {
		return err
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%s", s.config.Port),
		Handler:      handler,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	go s.cleanupRateLimiter()

	LogInfo(context.Background(), "Starting HTTP server", "addr", s.httpServer.Addr)
	log.Printf("API доступно по адресу: http://localhost%s", s.httpServer.Addr)

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("не удалось запустить HTTP сервер на %s: %w", s.httpServer.Addr, err)
	}
	return nil
}

// Shutdown останавливает HTTP сервер gracefully
func (s *Server) Shutdown(ctx context.Context) error {
	s.shutdownOnce.Do(func() { close(s.shutdownChan) })

	if s.httpServer == nil {
		return nil
	}

	start := time.Now()
	LogInfo(ctx, "Initiating graceful shutdown")
	if err := s.httpServer.Shutdown(ctx); err != nil {
		LogError(ctx, err, "Graceful shutdown failed")
		return fmt.Errorf("ошибка остановки сервера: %w", err)
	}

	LogDuration(ctx, "Graceful shutdown", time.Since(start))
	return nil
}

func (s *Server) cleanupRateLimiter() {
	limiter := s.container.RateLimiter
	if limiter == nil {
		return
	}

	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-s.shutdownChan:
			return
		case <-ticker.C:
			if removed := limiter.Cleanup(rateLimiterIdle); removed > 0 {
				Logger.Debug("Rate limiter cleanup", "removed", removed, "tracked", limiter.Size())
			}
		}
	}
}
