package aliases

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyTable таблица псевдонимов не содержит ни одного закона
	ErrEmptyTable = errors.New("alias table is empty")
	// ErrEmptyAlias среди псевдонимов есть пустая строка
	ErrEmptyAlias = errors.New("alias must not be empty")
	// ErrUnsupportedFormat расширение файла не поддерживается
	ErrUnsupportedFormat = errors.New("unsupported alias file format")
)

// ConfigError ошибка конфигурации таблицы псевдонимов.
// Возникает только при запуске: сервис с такой ошибкой не должен принимать запросы.
type ConfigError struct {
	Source string // Путь к файлу или DSN хранилища
	Err    error
}

// Error реализует интерфейс error
func (e *ConfigError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("alias config: %v", e.Err)
	}
	return fmt.Sprintf("alias config %s: %v", e.Source, e.Err)
}

// Unwrap возвращает вложенную ошибку для errors.Is и errors.As
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError оборачивает ошибку в ConfigError.
// Если ошибка уже является ConfigError, возвращается как есть.
func NewConfigError(source string, err error) error {
	if err == nil {
		return nil
	}
	var cfgErr *ConfigError
	if errors.As(err, &cfgErr) {
		return err
	}
	return &ConfigError{Source: source, Err: err}
}

// IsConfigError проверяет, что ошибка относится к конфигурации псевдонимов
func IsConfigError(err error) bool {
	var cfgErr *ConfigError
	return errors.As(err, &cfgErr)
}
