package aliases

import (
	"fmt"
)

// Law закон или документ вместе с известными вариантами его названия
type Law struct {
	ID      string   `json:"law_id" yaml:"law_id"`
	Aliases []string `json:"aliases" yaml:"aliases"`
}

// Table упорядоченная таблица псевдонимов.
// Порядок законов и псевдонимов внутри закона значим: в этом порядке
// псевдонимы попадают в альтернацию регулярного выражения.
type Table struct {
	Source string `json:"source"`
	Laws   []Law  `json:"laws"`

	index map[string]int
}

// NewTable создает пустую таблицу
func NewTable(source string) *Table {
	return &Table{
		Source: source,
		index:  make(map[string]int),
	}
}

// Set задает псевдонимы закона. Повторный вызов для того же закона
// заменяет список, сохраняя исходную позицию закона в таблице.
func (t *Table) Set(lawID string, aliases ...string) {
	list := append([]string(nil), aliases...)
	if pos, ok := t.position(lawID); ok {
		t.Laws[pos].Aliases = list
		return
	}
	t.index[lawID] = len(t.Laws)
	t.Laws = append(t.Laws, Law{ID: lawID, Aliases: list})
}

// Append добавляет псевдоним в конец списка закона
func (t *Table) Append(lawID, alias string) {
	if pos, ok := t.position(lawID); ok {
		t.Laws[pos].Aliases = append(t.Laws[pos].Aliases, alias)
		return
	}
	t.Set(lawID, alias)
}

// Aliases возвращает псевдонимы закона
func (t *Table) Aliases(lawID string) []string {
	if pos, ok := t.position(lawID); ok {
		return t.Laws[pos].Aliases
	}
	return nil
}

func (t *Table) position(lawID string) (int, bool) {
	if t.index == nil {
		t.index = make(map[string]int, len(t.Laws))
		for i, law := range t.Laws {
			t.index[law.ID] = i
		}
	}
	pos, ok := t.index[lawID]
	return pos, ok
}

// Len возвращает количество законов
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Laws)
}

// AliasCount возвращает общее количество псевдонимов
func (t *Table) AliasCount() int {
	if t == nil {
		return 0
	}
	total := 0
	for _, law := range t.Laws {
		total += len(law.Aliases)
	}
	return total
}

// Validate проверяет, что таблица пригодна для построения каталога
func (t *Table) Validate() error {
	source := ""
	if t != nil {
		source = t.Source
	}
	if t.AliasCount() == 0 {
		return NewConfigError(source, ErrEmptyTable)
	}
	for _, law := range t.Laws {
		if law.ID == "" {
			return NewConfigError(source, fmt.Errorf("law id must not be empty"))
		}
		for i, alias := range law.Aliases {
			if alias == "" {
				return NewConfigError(source, fmt.Errorf("law %q alias #%d: %w", law.ID, i+1, ErrEmptyAlias))
			}
		}
	}
	return nil
}
