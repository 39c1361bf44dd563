package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"lawlinks/extractors"
	"lawlinks/internal/config"
	"lawlinks/internal/container"
	"lawlinks/normalization"
)

// aliasSourceOptions откуда брать таблицу псевдонимов
type aliasSourceOptions struct {
	path string
	dsn  string
}

// newScanner загружает таблицу псевдонимов и строит сканер
func newScanner(ctx context.Context, opts *aliasSourceOptions) (*extractors.CitationScanner, error) {
	cfg := &config.Config{AliasesPath: opts.path, AliasesDSN: opts.dsn}

	table, store, err := container.LoadAliasTable(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if store != nil {
		defer store.Close()
	}

	catalog, err := extractors.NewAliasCatalog(table)
	if err != nil {
		return nil, err
	}
	return extractors.NewCitationScanner(catalog, extractors.NewQualifierGrammar()), nil
}

// readDocument читает документ из файла или stdin и возвращает текст в UTF-8
func readDocument(path string, stdin io.Reader) (string, error) {
	var (
		body []byte
		err  error
	)
	if path == "" || path == "-" {
		body, err = io.ReadAll(stdin)
	} else {
		body, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("read document: %w", err)
	}

	contentType := ""
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		contentType = "text/html"
	}

	return normalization.DocumentText(body, contentType)
}

// scanDocument читает документ и ищет в нем ссылки
func scanDocument(ctx context.Context, opts *aliasSourceOptions, path string, stdin io.Reader, normalize bool) ([]extractors.Citation, error) {
	scanner, err := newScanner(ctx, opts)
	if err != nil {
		return nil, err
	}

	text, err := readDocument(path, stdin)
	if err != nil {
		return nil, err
	}

	return scanner.Scan(normalization.NewTextNormalizer(normalize).Prepare(text)), nil
}
