package aliases

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format формат файла с таблицей псевдонимов
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath определяет формат по расширению файла
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// LoadFile загружает и проверяет таблицу псевдонимов из файла.
// Любая ошибка возвращается как *ConfigError.
func LoadFile(path string) (*Table, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, NewConfigError(path, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewConfigError(path, fmt.Errorf("failed to read alias file: %w", err))
	}

	table, err := Decode(bytes.NewReader(data), format)
	if err != nil {
		return nil, NewConfigError(path, err)
	}
	table.Source = path

	if err := table.Validate(); err != nil {
		return nil, err
	}
	return table, nil
}

// Decode читает таблицу в указанном формате с сохранением порядка ключей
func Decode(r io.Reader, format Format) (*Table, error) {
	switch format {
	case FormatJSON:
		return decodeJSON(r)
	case FormatYAML:
		return decodeYAML(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// decodeJSON разбирает объект {"law_id": ["alias", ...]} потоково,
// так как map теряет порядок ключей
func decodeJSON(r io.Reader) (*Table, error) {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to decode alias JSON: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("alias JSON must be an object of law id to alias list")
	}

	table := NewTable("")
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("failed to decode law id: %w", err)
		}
		lawID, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected token %v instead of law id", keyTok)
		}

		var list []string
		if err := dec.Decode(&list); err != nil {
			return nil, fmt.Errorf("failed to decode aliases of law %q: %w", lawID, err)
		}
		table.Set(lawID, list...)
	}

	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("failed to decode alias JSON: %w", err)
	}
	return table, nil
}

func decodeYAML(r io.Reader) (*Table, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return NewTable(""), nil
		}
		return nil, fmt.Errorf("failed to decode alias YAML: %w", err)
	}

	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("alias YAML must be a mapping of law id to alias list (line %d)", root.Line)
	}

	table := NewTable("")
	for i := 0; i+1 < len(root.Content); i += 2 {
		keyNode, valueNode := root.Content[i], root.Content[i+1]

		var list []string
		if err := valueNode.Decode(&list); err != nil {
			return nil, fmt.Errorf("failed to decode aliases of law %q (line %d): %w", keyNode.Value, valueNode.Line, err)
		}
		table.Set(keyNode.Value, list...)
	}
	return table, nil
}
