package extractors

import (
	"fmt"
	"unicode/utf8"
)

// DefaultLookback максимальное число символов перед названием закона,
// в которых ищутся квалификаторы
const DefaultLookback = 100

// CitationScanner извлекает ссылки на законы из текста.
// Каталог и грамматика передаются явно и не изменяются, поэтому Scan
// можно вызывать конкурентно без блокировок.
type CitationScanner struct {
	catalog  *AliasCatalog
	grammar  *QualifierGrammar
	lookback int
}

// NewCitationScanner создает сканер
func NewCitationScanner(catalog *AliasCatalog, grammar *QualifierGrammar) *CitationScanner {
	return &CitationScanner{
		catalog:  catalog,
		grammar:  grammar,
		lookback: DefaultLookback,
	}
}

// Scan проходит текст слева направо и возвращает ссылки в порядке обнаружения.
//
// Для каждого найденного псевдонима в окне до 100 символов перед ним (но не левее
// курсора) ищутся квалификаторы. Упоминание без квалификаторов пропускается.
// Списки индексов раскрываются в декартово произведение: подпункт, пункт, статья.
func (s *CitationScanner) Scan(text string) []Citation {
	links := make([]Citation, 0)
	matcher := s.catalog.Matcher()

	cursor := 0
	for cursor < len(text) {
		remaining := text[cursor:]
		loc := matcher.FindStringIndex(remaining)
		if loc == nil {
			break
		}
		matchStart, matchEnd := loc[0], loc[1]

		window := lookbackWindow(remaining[:matchStart], s.lookback)
		if qualifiers := s.grammar.Match(window); qualifiers.Matched() {
			alias := remaining[matchStart:matchEnd]
			lawID, ok := s.catalog.Resolve(alias)
			if !ok {
				panic(fmt.Sprintf("extractors: matched alias %q is not registered in catalog", alias))
			}
			links = appendCrossProduct(links, qualifiers, Citation{
				LawID:      lawID,
				Alias:      alias,
				MatchStart: cursor + matchStart,
				MatchEnd:   cursor + matchEnd,
			})
		}

		if matchEnd == matchStart {
			// Пустое совпадение: сдвигаемся на один символ, чтобы курсор рос строго
			_, size := utf8.DecodeRuneInString(remaining[matchEnd:])
			if size == 0 {
				break
			}
			matchEnd += size
		}
		cursor += matchEnd
	}

	return links
}

// lookbackWindow возвращает не более limit последних символов (рун) строки
func lookbackWindow(prefix string, limit int) string {
	start := len(prefix)
	for i := 0; i < limit && start > 0; i++ {
		_, size := utf8.DecodeLastRuneInString(prefix[:start])
		start -= size
	}
	return prefix[start:]
}

// appendCrossProduct раскрывает списки индексов: подпункт во внешнем цикле,
// пункт в среднем, статья во внутреннем
func appendCrossProduct(links []Citation, m QualifierMatch, base Citation) []Citation {
	for _, subpoint := range levelValues(m.Subpoints) {
		for _, point := range levelValues(m.Points) {
			for _, article := range levelValues(m.Articles) {
				link := base
				link.SubpointArticle = subpoint
				link.PointArticle = point
				link.Article = article
				links = append(links, link)
			}
		}
	}
	return links
}

// levelValues превращает отсутствующий уровень в единственное значение nil
func levelValues(tokens []string) []*string {
	if tokens == nil {
		return []*string{nil}
	}
	values := make([]*string, len(tokens))
	for i := range tokens {
		token := tokens[i]
		values[i] = &token
	}
	return values
}
