package aliases

import (
	"sort"
	"strings"
	"unicode"

	"github.com/kljensen/snowball"
)

// FindingKind тип проблемы в таблице псевдонимов
type FindingKind string

const (
	// FindingDuplicate одна и та же строка зарегистрирована у разных законов
	FindingDuplicate FindingKind = "duplicate"
	// FindingShadowed более ранний псевдоним другого закона является префиксом,
	// поэтому в этой позиции всегда выигрывает он
	FindingShadowed FindingKind = "shadowed"
	// FindingStemCollision псевдонимы разных законов совпадают после стемминга
	FindingStemCollision FindingKind = "stem_collision"
)

// Finding найденная неоднозначность
type Finding struct {
	Kind       FindingKind `json:"kind"`
	Alias      string      `json:"alias"`
	LawID      string      `json:"law_id"`
	OtherAlias string      `json:"other_alias"`
	OtherLawID string      `json:"other_law_id"`
}

type registeredAlias struct {
	text  string
	lawID string
	order int
	stem  string
}

// Lint ищет псевдонимы, которые при сканировании будут приписаны не тому закону.
// Таблица не изменяется: порядок регистрации остается единственным правилом разрешения.
func Lint(t *Table) []Finding {
	if t == nil {
		return nil
	}

	var all []registeredAlias
	order := 0
	for _, law := range t.Laws {
		for _, alias := range law.Aliases {
			all = append(all, registeredAlias{
				text:  alias,
				lawID: law.ID,
				order: order,
				stem:  stemPhrase(alias),
			})
			order++
		}
	}

	var findings []Finding
	for i := 0; i < len(all); i++ {
		earlier := all[i]
		for j := i + 1; j < len(all); j++ {
			later := all[j]
			if earlier.lawID == later.lawID {
				continue
			}

			switch {
			case earlier.text == later.text:
				findings = append(findings, newFinding(FindingDuplicate, later, earlier))
			case strings.HasPrefix(later.text, earlier.text):
				findings = append(findings, newFinding(FindingShadowed, later, earlier))
			case earlier.stem != "" && earlier.stem == later.stem:
				findings = append(findings, newFinding(FindingStemCollision, later, earlier))
			}
		}
	}

	sort.SliceStable(findings, func(a, b int) bool {
		return findings[a].Kind < findings[b].Kind
	})
	return findings
}

func newFinding(kind FindingKind, alias, other registeredAlias) Finding {
	return Finding{
		Kind:       kind,
		Alias:      alias.text,
		LawID:      alias.lawID,
		OtherAlias: other.text,
		OtherLawID: other.lawID,
	}
}

// stemPhrase приводит каждое слово псевдонима к основе (Snowball, русский)
func stemPhrase(alias string) string {
	words := strings.FieldsFunc(strings.ToLower(alias), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	stems := make([]string, 0, len(words))
	for _, word := range words {
		stemmed, err := snowball.Stem(word, "russian", true)
		if err != nil || stemmed == "" {
			stemmed = word
		}
		stems = append(stems, stemmed)
	}
	return strings.Join(stems, " ")
}

// HasDuplicates сообщает, есть ли среди находок точные дубликаты
func HasDuplicates(findings []Finding) bool {
	for _, f := range findings {
		if f.Kind == FindingDuplicate {
			return true
		}
	}
	return false
}
