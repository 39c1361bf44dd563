package aliases

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLint(t *testing.T) {
	tests := []struct {
		name  string
		laws  []Law
		kinds []FindingKind
	}{
		{
			name: "нет пересечений",
			laws: []Law{
				{ID: "1", Aliases: []string{"Закона о защите прав потребителей"}},
				{ID: "2", Aliases: []string{"Налогового кодекса"}},
			},
			kinds: nil,
		},
		{
			name: "дубликат у разных законов",
			laws: []Law{
				{ID: "1", Aliases: []string{"ГК"}},
				{ID: "2", Aliases: []string{"ГК"}},
			},
			kinds: []FindingKind{FindingDuplicate},
		},
		{
			name: "короткий псевдоним раньше длинного",
			laws: []Law{
				{ID: "1", Aliases: []string{"Закон"}},
				{ID: "2", Aliases: []string{"Закона о связи"}},
			},
			kinds: []FindingKind{FindingShadowed},
		},
		{
			name: "длинный псевдоним раньше короткого не затеняется",
			laws: []Law{
				{ID: "1", Aliases: []string{"Закона о связи"}},
				{ID: "2", Aliases: []string{"Закон"}},
			},
			kinds: nil,
		},
		{
			name: "вхождение не в начале не затеняет",
			laws: []Law{
				{ID: "1", Aliases: []string{"РФ"}},
				{ID: "2", Aliases: []string{"ГК РФ"}},
			},
			kinds: nil,
		},
		{
			name: "пересечение внутри одного закона игнорируется",
			laws: []Law{
				{ID: "1", Aliases: []string{"Закон", "Закона", "Закон"}},
			},
			kinds: nil,
		},
		{
			name: "словоформы разных законов",
			laws: []Law{
				{ID: "1", Aliases: []string{"кодексы торговли"}},
				{ID: "2", Aliases: []string{"кодексом торговли"}},
			},
			kinds: []FindingKind{FindingStemCollision},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := &Table{Laws: tt.laws}
			findings := Lint(table)

			var kinds []FindingKind
			for _, f := range findings {
				kinds = append(kinds, f.Kind)
			}
			assert.Equal(t, tt.kinds, kinds)
		})
	}
}

func TestLintReportsLaterAlias(t *testing.T) {
	table := &Table{Laws: []Law{
		{ID: "1", Aliases: []string{"ТК"}},
		{ID: "2", Aliases: []string{"ТК РФ"}},
	}}

	findings := Lint(table)
	if assert.Len(t, findings, 1) {
		assert.Equal(t, Finding{
			Kind:       FindingShadowed,
			Alias:      "ТК РФ",
			LawID:      "2",
			OtherAlias: "ТК",
			OtherLawID: "1",
		}, findings[0])
	}
	assert.False(t, HasDuplicates(findings))
}

func TestLintNilTable(t *testing.T) {
	assert.Empty(t, Lint(nil))
}
