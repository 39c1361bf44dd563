package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configEnvKeys = []string{
	"SERVER_PORT", "ALIASES_PATH", "ALIASES_DSN", "LOG_LEVEL", "MAX_TEXT_LENGTH",
	"RATE_LIMIT_RPS", "RATE_LIMIT_BURST", "CACHE_SIZE", "NORMALIZE_UNICODE",
	"LINT_ALIASES_ON_START", "READ_TIMEOUT", "WRITE_TIMEOUT", "SHUTDOWN_TIMEOUT",
}

// clearEnv сбрасывает переменные конфигурации на время теста
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configEnvKeys {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestConfigLogLevelValidation(t *testing.T) {
	tests := []struct {
		name      string
		logLevel  string
		wantError bool
	}{
		{"Valid DEBUG", "DEBUG", false},
		{"Valid INFO", "INFO", false},
		{"Valid WARN", "WARN", false},
		{"Valid ERROR", "ERROR", false},
		{"Valid lowercase debug", "debug", false},
		{"Invalid value", "INVALID", true},
		{"Empty string", "", false},
		{"Mixed case", "DeBuG", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := GetDefaults()
			cfg.LogLevel = tt.logLevel

			err := cfg.Validate()
			assert.Equal(t, tt.wantError, err != nil, "Validate() error = %v", err)
		})
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(c *Config)
		wantErr string
	}{
		{"defaults", func(c *Config) {}, ""},
		{"empty port", func(c *Config) { c.Port = "" }, "port is required"},
		{"port out of range", func(c *Config) { c.Port = "70000" }, "port must be between"},
		{"non numeric port", func(c *Config) { c.Port = "http" }, "invalid port"},
		{"no alias source", func(c *Config) { c.AliasesPath = ""; c.AliasesDSN = "" }, "aliases path or aliases DSN"},
		{"DSN only", func(c *Config) { c.AliasesPath = ""; c.AliasesDSN = "sqlite://aliases.db" }, ""},
		{"negative text length", func(c *Config) { c.MaxTextLength = -1 }, "max text length"},
		{"zero burst", func(c *Config) { c.RateLimitBurst = 0 }, "rate limit burst"},
		{"rate limit disabled", func(c *Config) { c.RateLimitRPS = 0; c.RateLimitBurst = 0 }, ""},
		{"short shutdown timeout", func(c *Config) { c.ShutdownTimeout = time.Millisecond }, "shutdown timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := GetDefaults()
			tt.modify(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfigValidateCollectsAllErrors(t *testing.T) {
	cfg := GetDefaults()
	cfg.Port = ""
	cfg.CacheSize = -1

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "port is required")
	assert.Contains(t, err.Error(), "cache size")
}

func TestLoadConfigDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, GetDefaults(), cfg)
	assert.False(t, cfg.NormalizeUnicode, "по умолчанию текст сканируется без изменений")
}

func TestLoadConfigFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("ALIASES_DSN", "postgres://localhost/laws")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("MAX_TEXT_LENGTH", "5000")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("NORMALIZE_UNICODE", "true")
	t.Setenv("SHUTDOWN_TIMEOUT", "30s")
	t.Setenv("CACHE_SIZE", "not-a-number")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "postgres://localhost/laws", cfg.AliasesDSN)
	assert.Equal(t, "DEBUG", cfg.LogLevel)
	assert.Equal(t, 5000, cfg.MaxTextLength)
	assert.Equal(t, 2.5, cfg.RateLimitRPS)
	assert.True(t, cfg.NormalizeUnicode)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 512, cfg.CacheSize, "некорректное значение заменяется значением по умолчанию")
}

func TestLoadConfigFromEnvFile(t *testing.T) {
	clearEnv(t)
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("SERVER_PORT=7001\nALIASES_PATH=/etc/lawlinks/aliases.yaml\n"), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("SERVER_PORT")
		os.Unsetenv("ALIASES_PATH")
	})

	cfg, err := LoadConfig(envFile)
	require.NoError(t, err)
	assert.Equal(t, "7001", cfg.Port)
	assert.Equal(t, "/etc/lawlinks/aliases.yaml", cfg.AliasesPath)
}

func TestLoadConfigInvalid(t *testing.T) {
	clearEnv(t)
	t.Setenv("SERVER_PORT", "0")

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}

func TestMaxBodyBytes(t *testing.T) {
	cfg := GetDefaults()
	cfg.MaxTextLength = 100
	assert.Equal(t, int64(1424), cfg.MaxBodyBytes())

	cfg.MaxTextLength = 0
	assert.Equal(t, int64(0), cfg.MaxBodyBytes())
}
