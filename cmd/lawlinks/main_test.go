package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const testAliases = `{"1": ["Закона"], "2": ["Кодекса", "ГК РФ"]}`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func runCmd(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("ALIASES_DSN", "")

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestDetectCmd(t *testing.T) {
	dir := t.TempDir()
	aliasesPath := writeFile(t, dir, "aliases.json", testAliases)

	t.Run("из файла", func(t *testing.T) {
		doc := writeFile(t, dir, "doc.txt", "пункт 1, 2 статьи 5 Закона")

		out, err := runCmd(t, "", "detect", doc, "--aliases", aliasesPath)
		require.NoError(t, err)

		var resp struct {
			Links []map[string]interface{} `json:"links"`
		}
		require.NoError(t, json.Unmarshal([]byte(out), &resp))
		require.Len(t, resp.Links, 2)
		assert.Equal(t, "2", resp.Links[1]["point_article"])
	})

	t.Run("из stdin", func(t *testing.T) {
		out, err := runCmd(t, "ч. 2 ст. 3 ГК РФ", "detect", "--aliases", aliasesPath)
		require.NoError(t, err)
		assert.JSONEq(t, `{"links": [{"law_id": 2, "article": "3", "point_article": "2", "subpoint_article": null}]}`, out)
	})

	t.Run("HTML в csv", func(t *testing.T) {
		doc := writeFile(t, dir, "doc.html", "<html><body><p>статья 10 Кодекса</p></body></html>")

		out, err := runCmd(t, "", "detect", doc, "--aliases", aliasesPath, "--format", "csv")
		require.NoError(t, err)
		assert.Contains(t, out, "1,2,10,,,Кодекса")
	})

	t.Run("нет таблицы псевдонимов", func(t *testing.T) {
		_, err := runCmd(t, "текст", "detect", "--aliases", filepath.Join(dir, "missing.json"))
		assert.Error(t, err)
	})
}

func TestExportCmd(t *testing.T) {
	dir := t.TempDir()
	aliasesPath := writeFile(t, dir, "aliases.json", testAliases)
	doc := writeFile(t, dir, "doc.txt", "статья 1 Закона и статья 2 Кодекса")
	out := filepath.Join(dir, "links.xlsx")

	stdout, err := runCmd(t, "", "export", doc, "--aliases", aliasesPath, "--out", out)
	require.NoError(t, err)
	assert.Contains(t, stdout, "2 ссылок")

	f, err := excelize.OpenFile(out)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Links")
	require.NoError(t, err)
	assert.Len(t, rows, 3)
}

func TestAliasesImportCmd(t *testing.T) {
	dir := t.TempDir()
	aliasesPath := writeFile(t, dir, "aliases.yaml", "\"1\":\n  - Закона\n\"2\":\n  - ГК РФ\n")
	dsn := "sqlite://" + filepath.Join(dir, "aliases.db")

	out, err := runCmd(t, "", "aliases", "import", aliasesPath, "--dsn", dsn)
	require.NoError(t, err)
	assert.Contains(t, out, "законов: 2, псевдонимов: 2")

	// Поиск по импортированной таблице
	out, err = runCmd(t, "статья 7 ГК РФ", "detect", "--dsn", dsn)
	require.NoError(t, err)
	assert.Contains(t, out, `"article": "7"`)
}

func TestAliasesImportRequiresDSN(t *testing.T) {
	dir := t.TempDir()
	aliasesPath := writeFile(t, dir, "aliases.json", testAliases)

	_, err := runCmd(t, "", "aliases", "import", aliasesPath)
	assert.Error(t, err)
}

func TestAliasesLintCmd(t *testing.T) {
	dir := t.TempDir()

	t.Run("без замечаний", func(t *testing.T) {
		path := writeFile(t, dir, "clean.json", `{"1": ["Закона"], "2": ["ГК РФ"]}`)
		out, err := runCmd(t, "", "aliases", "lint", path)
		require.NoError(t, err)
		assert.Contains(t, out, "Замечаний нет")
	})

	t.Run("перекрытие не ошибка", func(t *testing.T) {
		path := writeFile(t, dir, "shadowed.json", `{"1": ["Закон"], "2": ["Закона о связи"]}`)
		out, err := runCmd(t, "", "aliases", "lint", path)
		require.NoError(t, err)
		assert.Contains(t, out, "shadowed")
	})

	t.Run("дубликат", func(t *testing.T) {
		path := writeFile(t, dir, "dup.json", `{"1": ["ГК РФ"], "2": ["ГК РФ"]}`)
		out, err := runCmd(t, "", "aliases", "lint", path)
		require.Error(t, err)
		assert.Contains(t, out, "duplicate")
	})
}
