package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config конфигурация приложения
type Config struct {
	// Сервер
	Port            string        `json:"port"`
	ReadTimeout     time.Duration `json:"read_timeout"`
	WriteTimeout    time.Duration `json:"write_timeout"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout"`

	// Источник псевдонимов: DSN имеет приоритет над файлом
	AliasesPath        string `json:"aliases_path"`
	AliasesDSN         string `json:"aliases_dsn"`
	LintAliasesOnStart bool   `json:"lint_aliases_on_start"`

	// Поиск ссылок
	MaxTextLength    int  `json:"max_text_length"`
	CacheSize        int  `json:"cache_size"`
	NormalizeUnicode bool `json:"normalize_unicode"`

	// Ограничение частоты запросов с одного IP
	RateLimitRPS   float64 `json:"rate_limit_rps"`
	RateLimitBurst int     `json:"rate_limit_burst"`

	LogLevel string `json:"log_level"`
}

// LoadConfig читает конфигурацию из переменных окружения.
// Переменные из .env (или переданных файлов) не перекрывают уже заданные.
func LoadConfig(envFiles ...string) (*Config, error) {
	_ = godotenv.Load(envFiles...)

	defaults := GetDefaults()
	config := &Config{
		Port:            getEnv("SERVER_PORT", defaults.Port),
		ReadTimeout:     getEnvDuration("READ_TIMEOUT", defaults.ReadTimeout),
		WriteTimeout:    getEnvDuration("WRITE_TIMEOUT", defaults.WriteTimeout),
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", defaults.ShutdownTimeout),

		AliasesPath:        getEnv("ALIASES_PATH", defaults.AliasesPath),
		AliasesDSN:         getEnv("ALIASES_DSN", defaults.AliasesDSN),
		LintAliasesOnStart: getEnvBool("LINT_ALIASES_ON_START", defaults.LintAliasesOnStart),

		MaxTextLength:    getEnvInt("MAX_TEXT_LENGTH", defaults.MaxTextLength),
		CacheSize:        getEnvInt("CACHE_SIZE", defaults.CacheSize),
		NormalizeUnicode: getEnvBool("NORMALIZE_UNICODE", defaults.NormalizeUnicode),

		RateLimitRPS:   getEnvFloat("RATE_LIMIT_RPS", defaults.RateLimitRPS),
		RateLimitBurst: getEnvInt("RATE_LIMIT_BURST", defaults.RateLimitBurst),

		LogLevel: strings.ToUpper(getEnv("LOG_LEVEL", defaults.LogLevel)),
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// MaxBodyBytes ограничение размера тела запроса: до 4 байт UTF-8 на символ плюс обертка JSON
func (c *Config) MaxBodyBytes() int64 {
	if c.MaxTextLength <= 0 {
		return 0
	}
	return int64(c.MaxTextLength)*4 + 1024
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
