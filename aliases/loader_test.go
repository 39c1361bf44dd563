package aliases

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDecodeJSONPreservesOrder(t *testing.T) {
	input := `{
		"7": ["Гражданского кодекса", "ГК РФ"],
		"1": ["Закона о защите прав потребителей", "ЗоЗПП"],
		"3": ["Налогового кодекса"]
	}`

	table, err := Decode(strings.NewReader(input), FormatJSON)
	require.NoError(t, err)

	require.Len(t, table.Laws, 3)
	assert.Equal(t, "7", table.Laws[0].ID)
	assert.Equal(t, "1", table.Laws[1].ID)
	assert.Equal(t, "3", table.Laws[2].ID)
	assert.Equal(t, []string{"Гражданского кодекса", "ГК РФ"}, table.Laws[0].Aliases)
	assert.Equal(t, 5, table.AliasCount())
}

func TestDecodeJSONDuplicateKeyKeepsFirstPosition(t *testing.T) {
	input := `{"1": ["первый"], "2": ["второй"], "1": ["замена"]}`

	table, err := Decode(strings.NewReader(input), FormatJSON)
	require.NoError(t, err)

	require.Len(t, table.Laws, 2)
	assert.Equal(t, "1", table.Laws[0].ID)
	assert.Equal(t, []string{"замена"}, table.Laws[0].Aliases)
}

func TestDecodeJSONErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"массив вместо объекта", `[["Закона"]]`},
		{"строка вместо списка", `{"1": "Закона"}`},
		{"обрезанный документ", `{"1": ["Закона"]`},
		{"пустой ввод", ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.input), FormatJSON)
			assert.Error(t, err)
		})
	}
}

func TestDecodeYAMLPreservesOrder(t *testing.T) {
	input := `
"2":
  - Трудового кодекса
  - ТК РФ
"1":
  - Закона
`
	table, err := Decode(strings.NewReader(input), FormatYAML)
	require.NoError(t, err)

	require.Len(t, table.Laws, 2)
	assert.Equal(t, "2", table.Laws[0].ID)
	assert.Equal(t, []string{"Трудового кодекса", "ТК РФ"}, table.Laws[0].Aliases)
	assert.Equal(t, "1", table.Laws[1].ID)
}

func TestLoadFile(t *testing.T) {
	t.Run("валидный JSON", func(t *testing.T) {
		path := writeTempFile(t, "law_aliases.json", `{"1": ["Закона"]}`)

		table, err := LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, path, table.Source)
		assert.Equal(t, 1, table.Len())
	})

	t.Run("файл отсутствует", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "missing.json"))
		require.Error(t, err)
		assert.True(t, IsConfigError(err))
	})

	t.Run("пустая таблица", func(t *testing.T) {
		path := writeTempFile(t, "empty.json", `{}`)

		_, err := LoadFile(path)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrEmptyTable))
		assert.True(t, IsConfigError(err))
	})

	t.Run("пустой псевдоним", func(t *testing.T) {
		path := writeTempFile(t, "bad.json", `{"1": ["Закона", ""]}`)

		_, err := LoadFile(path)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrEmptyAlias))
	})

	t.Run("неподдерживаемое расширение", func(t *testing.T) {
		path := writeTempFile(t, "aliases.toml", `x = 1`)

		_, err := LoadFile(path)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrUnsupportedFormat))
	})

	t.Run("YAML файл", func(t *testing.T) {
		path := writeTempFile(t, "aliases.yml", "\"5\": [\"Кодекса об административных правонарушениях\", \"КоАП РФ\"]\n")

		table, err := LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"Кодекса об административных правонарушениях", "КоАП РФ"}, table.Aliases("5"))
	})
}

func TestTableSetAndAppend(t *testing.T) {
	table := NewTable("test")
	table.Append("1", "Закона")
	table.Append("2", "Кодекса")
	table.Append("1", "ФЗ")

	require.Len(t, table.Laws, 2)
	assert.Equal(t, []string{"Закона", "ФЗ"}, table.Aliases("1"))
	assert.Nil(t, table.Aliases("404"))
}
