package container

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"sync"

	"lawlinks/aliases"
	"lawlinks/database"
	"lawlinks/extractors"
	"lawlinks/internal/config"
	"lawlinks/normalization"
	"lawlinks/server/handlers"
	"lawlinks/server/middleware"
	"lawlinks/server/services"
)

// Container собирает зависимости приложения.
// Каталог псевдонимов и грамматика строятся один раз при инициализации.
type Container struct {
	mu sync.Mutex

	Config *config.Config
	Logger *slog.Logger

	Table    *aliases.Table
	AliasDB  *database.AliasDB // nil, если псевдонимы загружены из файла
	Findings []aliases.Finding

	Scanner          *extractors.CitationScanner
	DetectionService *services.DetectionService
	DetectionHandler *handlers.DetectionHandler
	RateLimiter      *middleware.IPRateLimiter

	initialized bool
}

// NewContainer создает контейнер
func NewContainer(cfg *config.Config, logger *slog.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Container{Config: cfg, Logger: logger}, nil
}

// Initialize загружает псевдонимы и создает сервисы.
// Ошибки таблицы псевдонимов возвращаются как aliases.ConfigError.
func (c *Container) Initialize(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return fmt.Errorf("container already initialized")
	}

	table, store, err := LoadAliasTable(ctx, c.Config)
	if err != nil {
		return err
	}
	c.Table = table
	c.AliasDB = store
	log.Printf("✓ Загружено %d законов, %d псевдонимов из %s", table.Len(), table.AliasCount(), table.Source)

	if c.Config.LintAliasesOnStart {
		c.Findings = aliases.Lint(table)
		for _, f := range c.Findings {
			log.Printf("⚠ Псевдоним %q закона %s: %s с %q закона %s", f.Alias, f.LawID, f.Kind, f.OtherAlias, f.OtherLawID)
		}
	}

	catalog, err := extractors.NewAliasCatalog(table)
	if err != nil {
		c.closeStore()
		return err
	}
	c.Scanner = extractors.NewCitationScanner(catalog, extractors.NewQualifierGrammar())

	c.DetectionService, err = services.NewDetectionService(
		c.Scanner,
		normalization.NewTextNormalizer(c.Config.NormalizeUnicode),
		table,
		services.DetectionConfig{
			MaxTextLength: c.Config.MaxTextLength,
			CacheSize:     c.Config.CacheSize,
		},
		c.Logger,
	)
	if err != nil {
		c.closeStore()
		return fmt.Errorf("failed to create detection service: %w", err)
	}

	// Интерфейс с nil *AliasDB внутри не равен nil, поэтому хранилище передается явно
	var aliasStore handlers.AliasStore
	if c.AliasDB != nil {
		aliasStore = c.AliasDB
	}
	c.DetectionHandler = handlers.NewDetectionHandler(c.DetectionService, aliasStore, c.Config.MaxBodyBytes())
	c.RateLimiter = middleware.NewIPRateLimiter(c.Config.RateLimitRPS, c.Config.RateLimitBurst)

	c.initialized = true
	log.Printf("✓ Каталог псевдонимов построен, сервис поиска ссылок готов")
	return nil
}

// LoadAliasTable загружает таблицу псевдонимов из БД (если задан DSN) или из файла
func LoadAliasTable(ctx context.Context, cfg *config.Config) (*aliases.Table, *database.AliasDB, error) {
	if cfg.AliasesDSN == "" {
		table, err := aliases.LoadFile(cfg.AliasesPath)
		if err != nil {
			return nil, nil, err
		}
		return table, nil, nil
	}

	store, err := database.NewAliasDB(cfg.AliasesDSN)
	if err != nil {
		return nil, nil, aliases.NewConfigError("dsn", err)
	}

	table, err := store.LoadTable(ctx)
	if err == nil {
		err = table.Validate()
	}
	if err != nil {
		store.Close()
		return nil, nil, aliases.NewConfigError("db:"+store.Driver(), err)
	}

	return table, store, nil
}

// Close освобождает ресурсы контейнера
func (c *Container) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closeStore()
}

func (c *Container) closeStore() error {
	if c.AliasDB == nil {
		return nil
	}
	err := c.AliasDB.Close()
	c.AliasDB = nil
	return err
}
