package main

import (
	"context"
	"fmt"
	"os"

	"lawlinks/aliases"
	"lawlinks/internal/config"
	"lawlinks/internal/container"
)

func main() {
	fmt.Println("=== Проверка конфигурации ===")
	fmt.Println("")

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("❌ Ошибка загрузки конфигурации: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("✅ Конфигурация успешно загружена")
	fmt.Println("")

	fmt.Println("Сервер:")
	fmt.Printf("  Порт: %s\n", cfg.Port)
	fmt.Printf("  Read/Write Timeout: %v / %v\n", cfg.ReadTimeout, cfg.WriteTimeout)
	fmt.Printf("  Shutdown Timeout: %v\n", cfg.ShutdownTimeout)
	fmt.Printf("  Уровень логирования: %s\n", cfg.LogLevel)
	fmt.Println("")

	fmt.Println("Поиск ссылок:")
	fmt.Printf("  Макс. длина текста: %d\n", cfg.MaxTextLength)
	fmt.Printf("  Размер кэша: %d\n", cfg.CacheSize)
	fmt.Printf("  Нормализация Unicode: %v\n", cfg.NormalizeUnicode)
	fmt.Printf("  Rate limit: %.1f rps, burst %d\n", cfg.RateLimitRPS, cfg.RateLimitBurst)
	fmt.Println("")

	fmt.Println("Псевдонимы:")
	if cfg.AliasesDSN != "" {
		fmt.Printf("  DSN: [установлен]\n")
	} else {
		fmt.Printf("  Файл: %s\n", cfg.AliasesPath)
	}

	table, store, err := container.LoadAliasTable(context.Background(), cfg)
	if err != nil {
		fmt.Printf("❌ Таблица псевдонимов не загружена: %v\n", err)
		os.Exit(1)
	}
	if store != nil {
		defer store.Close()
	}
	fmt.Printf("  Законов: %d, псевдонимов: %d\n", table.Len(), table.AliasCount())

	findings := aliases.Lint(table)
	if len(findings) > 0 {
		fmt.Printf("⚠️  Замечаний к псевдонимам: %d (подробнее: lawlinks aliases lint)\n", len(findings))
	} else {
		fmt.Println("✅ Замечаний к псевдонимам нет")
	}
	fmt.Println("")

	fmt.Println("=== Проверка завершена ===")
}
