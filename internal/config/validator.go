package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

var validLogLevels = []string{"DEBUG", "INFO", "WARN", "ERROR"}

// Validate проверяет корректность конфигурации
func (c *Config) Validate() error {
	var errors []string

	if c.Port == "" {
		errors = append(errors, "port is required")
	} else {
		port, err := strconv.Atoi(c.Port)
		if err != nil {
			errors = append(errors, fmt.Sprintf("invalid port: %s", c.Port))
		} else if port < 1 || port > 65535 {
			errors = append(errors, fmt.Sprintf("port must be between 1 and 65535, got %d", port))
		}
	}

	if c.AliasesPath == "" && c.AliasesDSN == "" {
		errors = append(errors, "aliases path or aliases DSN is required")
	}

	if c.MaxTextLength < 0 {
		errors = append(errors, "max text length must not be negative")
	}
	if c.CacheSize < 0 {
		errors = append(errors, "cache size must not be negative")
	}
	if c.RateLimitRPS < 0 {
		errors = append(errors, "rate limit rps must not be negative")
	}
	if c.RateLimitRPS > 0 && c.RateLimitBurst < 1 {
		errors = append(errors, "rate limit burst must be at least 1")
	}

	if c.ReadTimeout < time.Second {
		errors = append(errors, "read timeout must be at least 1 second")
	}
	if c.WriteTimeout < time.Second {
		errors = append(errors, "write timeout must be at least 1 second")
	}
	if c.ShutdownTimeout < time.Second {
		errors = append(errors, "shutdown timeout must be at least 1 second")
	}

	if c.LogLevel != "" {
		valid := false
		for _, level := range validLogLevels {
			if strings.ToUpper(c.LogLevel) == level {
				valid = true
				break
			}
		}
		if !valid {
			errors = append(errors, fmt.Sprintf("invalid log level: %s (valid: %s)",
				c.LogLevel, strings.Join(validLogLevels, ", ")))
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("validation errors: %s", strings.Join(errors, "; "))
	}

	return nil
}

// GetDefaults возвращает конфигурацию по умолчанию
func GetDefaults() *Config {
	return &Config{
		Port:               "8978",
		ReadTimeout:        15 * time.Second,
		WriteTimeout:       60 * time.Second,
		ShutdownTimeout:    10 * time.Second,
		AliasesPath:        "law_aliases.json",
		LintAliasesOnStart: true,
		MaxTextLength:      1000000,
		CacheSize:          512,
		NormalizeUnicode:   false,
		RateLimitRPS:       20,
		RateLimitBurst:     40,
		LogLevel:           "INFO",
	}
}
