package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"
	"unicode/utf8"

	lru "github.com/hashicorp/golang-lru/v2"

	"lawlinks/aliases"
	"lawlinks/extractors"
	"lawlinks/normalization"
	apperrors "lawlinks/server/errors"
)

// LinkScanner находит ссылки на законы в тексте
type LinkScanner interface {
	Scan(text string) []extractors.Citation
}

// DetectionConfig настройки сервиса поиска ссылок
type DetectionConfig struct {
	MaxTextLength int // В символах, 0 без ограничения
	CacheSize     int // 0 отключает кэш
}

// CatalogInfo сведения о загруженной таблице псевдонимов
type CatalogInfo struct {
	Source       string `json:"source"`
	Laws         int    `json:"laws"`
	Aliases      int    `json:"aliases"`
	LintFindings int    `json:"lint_findings"`
}

// DetectionStats счетчики сервиса
type DetectionStats struct {
	Requests     int64       `json:"requests"`
	CacheHits    int64       `json:"cache_hits"`
	LinksFound   int64       `json:"links_found"`
	CacheEntries int         `json:"cache_entries"`
	Catalog      CatalogInfo `json:"catalog"`
}

// DetectionService ищет ссылки на законы в текстах и документах
type DetectionService struct {
	scanner       LinkScanner
	normalizer    *normalization.TextNormalizer
	cache         *lru.Cache[string, []extractors.Citation]
	maxTextLength int
	catalog       CatalogInfo
	logger        *slog.Logger

	requests   atomic.Int64
	cacheHits  atomic.Int64
	linksFound atomic.Int64
}

// NewDetectionService создает сервис. table используется только для сводки в статистике.
func NewDetectionService(
	scanner LinkScanner,
	normalizer *normalization.TextNormalizer,
	table *aliases.Table,
	config DetectionConfig,
	logger *slog.Logger,
) (*DetectionService, error) {
	if scanner == nil {
		return nil, fmt.Errorf("scanner is required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	s := &DetectionService{
		scanner:       scanner,
		normalizer:    normalizer,
		maxTextLength: config.MaxTextLength,
		logger:        logger,
	}

	if table != nil {
		s.catalog = CatalogInfo{
			Source:       table.Source,
			Laws:         table.Len(),
			Aliases:      table.AliasCount(),
			LintFindings: len(aliases.Lint(table)),
		}
	}

	if config.CacheSize > 0 {
		cache, err := lru.New[string, []extractors.Citation](config.CacheSize)
		if err != nil {
			return nil, fmt.Errorf("failed to create detection cache: %w", err)
		}
		s.cache = cache
	}

	return s, nil
}

// Detect возвращает ссылки, найденные в тексте
func (s *DetectionService) Detect(ctx context.Context, text string) ([]extractors.Citation, error) {
	if err := ValidateContext(ctx); err != nil {
		return nil, err
	}
	s.requests.Add(1)

	if s.maxTextLength > 0 {
		if n := utf8.RuneCountInString(text); n > s.maxTextLength {
			return nil, apperrors.NewPayloadTooLargeError(
				fmt.Sprintf("Текст длиннее %d символов", s.maxTextLength),
				fmt.Errorf("text length %d exceeds limit %d", n, s.maxTextLength),
			)
		}
	}

	start := time.Now()
	prepared := s.normalizer.Prepare(text)

	key := cacheKey(prepared)
	if s.cache != nil {
		if links, ok := s.cache.Get(key); ok {
			s.cacheHits.Add(1)
			s.linksFound.Add(int64(len(links)))
			return append([]extractors.Citation{}, links...), nil
		}
	}

	links := s.scanner.Scan(prepared)
	if links == nil {
		links = []extractors.Citation{}
	}
	if s.cache != nil {
		s.cache.Add(key, append([]extractors.Citation{}, links...))
	}
	s.linksFound.Add(int64(len(links)))

	s.logger.Debug("Links detected",
		"text_length", len(prepared),
		"links", len(links),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return links, nil
}

// DetectDocument извлекает текст из документа в любой кодировке и ищет в нем ссылки
func (s *DetectionService) DetectDocument(ctx context.Context, body []byte, contentType string) ([]extractors.Citation, error) {
	if err := ValidateContext(ctx); err != nil {
		return nil, err
	}

	text, err := normalization.DocumentText(body, contentType)
	if err != nil {
		return nil, apperrors.NewUnsupportedMediaTypeError("Не удалось прочитать документ", err)
	}

	return s.Detect(ctx, text)
}

// Stats возвращает счетчики сервиса
func (s *DetectionService) Stats() DetectionStats {
	stats := DetectionStats{
		Requests:   s.requests.Load(),
		CacheHits:  s.cacheHits.Load(),
		LinksFound: s.linksFound.Load(),
		Catalog:    s.catalog,
	}
	if s.cache != nil {
		stats.CacheEntries = s.cache.Len()
	}
	return stats
}

func cacheKey(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}
