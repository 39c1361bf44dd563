package extractors

import (
	"fmt"
	"regexp"
	"strings"

	"lawlinks/aliases"
)

// AliasCatalog сопоставляет псевдонимы законов их идентификаторам.
// После создания не изменяется и безопасен для конкурентного чтения.
type AliasCatalog struct {
	matcher *regexp.Regexp
	lawIDs  map[string]LawID
	order   []string
}

// NewAliasCatalog строит единую альтернацию по всем псевдонимам в порядке таблицы.
// При совпадении нескольких альтернатив в одной позиции выигрывает зарегистрированная раньше,
// а не самая длинная. Если строка псевдонима повторяется, она остается за первым законом.
func NewAliasCatalog(table *aliases.Table) (*AliasCatalog, error) {
	if err := table.Validate(); err != nil {
		return nil, err
	}

	catalog := &AliasCatalog{
		lawIDs: make(map[string]LawID, table.AliasCount()),
		order:  make([]string, 0, table.AliasCount()),
	}

	escaped := make([]string, 0, table.AliasCount())
	for _, law := range table.Laws {
		for _, alias := range law.Aliases {
			escaped = append(escaped, regexp.QuoteMeta(alias))
			catalog.order = append(catalog.order, alias)
			if _, exists := catalog.lawIDs[alias]; !exists {
				catalog.lawIDs[alias] = LawID(law.ID)
			}
		}
	}

	matcher, err := regexp.Compile("(" + strings.Join(escaped, "|") + ")")
	if err != nil {
		return nil, aliases.NewConfigError(table.Source, fmt.Errorf("failed to compile alias matcher: %w", err))
	}
	catalog.matcher = matcher

	return catalog, nil
}

// Matcher возвращает скомпилированную альтернацию псевдонимов
func (c *AliasCatalog) Matcher() *regexp.Regexp {
	return c.matcher
}

// Resolve возвращает идентификатор закона по точному тексту псевдонима
func (c *AliasCatalog) Resolve(alias string) (LawID, bool) {
	id, ok := c.lawIDs[alias]
	return id, ok
}

// Len возвращает количество зарегистрированных псевдонимов (с повторами)
func (c *AliasCatalog) Len() int {
	return len(c.order)
}
