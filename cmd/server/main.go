// @title Law Links API
// @version 1.0
// @description Поиск ссылок на статьи, пункты и подпункты законов в русскоязычных текстах.

// @BasePath /
// @schemes http https

package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"lawlinks/aliases"
	"lawlinks/internal/config"
	"lawlinks/internal/container"
	"lawlinks/server"
)

func main() {
	log.Println("═══════════════════════════════════════════════════════")
	log.Println("🚀 Запуск Law Links Server...")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	if err := server.SetLogLevel(cfg.LogLevel); err != nil {
		server.LogWarn(context.Background(), "Invalid LOG_LEVEL, falling back to INFO", "log_level", cfg.LogLevel, "error", err)
	}

	c, err := container.NewContainer(cfg, server.Logger)
	if err != nil {
		log.Fatalf("Ошибка создания контейнера: %v", err)
	}
	if err := c.Initialize(context.Background()); err != nil {
		if aliases.IsConfigError(err) {
			log.Printf("✗ Ошибка таблицы псевдонимов: %v", err)
		} else {
			log.Printf("✗ Ошибка инициализации: %v", err)
		}
		os.Exit(1)
	}
	defer c.Close()

	srv, err := server.NewServer(cfg, c)
	if err != nil {
		log.Fatalf("Ошибка создания сервера: %v", err)
	}

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	log.Println("═══════════════════════════════════════════════════════")
	log.Printf("✓ Сервер запущен на порту %s", cfg.Port)
	log.Printf("✓ API доступно: http://localhost:%s", cfg.Port)
	log.Printf("✓ Swagger: http://localhost:%s/swagger/index.html", cfg.Port)
	log.Printf("✓ Псевдонимы: %s", c.Table.Source)
	log.Println("  Для остановки нажмите Ctrl+C")
	log.Println("═══════════════════════════════════════════════════════")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			log.Printf("✗ КРИТИЧЕСКАЯ ОШИБКА: %v", err)
			c.Close()
			os.Exit(1)
		}
		return
	case <-sigChan:
	}

	log.Println("═══════════════════════════════════════════════════════")
	log.Println("⏹  Получен сигнал завершения, останавливаю сервер...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("✗ Ошибка при остановке сервера: %v", err)
	} else {
		log.Println("✓ Сервер успешно остановлен")
	}
}
