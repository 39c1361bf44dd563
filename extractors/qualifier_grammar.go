package extractors

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// Фрагменты грамматики квалификаторов.
// \s и \d в RE2 покрывают только ASCII, поэтому пробелы и цифры заданы через классы Unicode:
// в юридических текстах часто встречается неразрывный пробел («ст. 5»).
const (
	space = `[\s\v\x{1c}-\x{1f}\x{85}\p{Z}]`
	digit = `\p{Nd}`

	subpointMarkers = `подпункт[А-Яа-яA-Za-z]*|пп\.|подп\.`
	pointMarkers    = `пункт[А-Яа-яA-Za-z]*|п\.|ч\.|часть[А-Яа-яA-Za-z]*`
	articleMarkers  = `стать[А-Яа-яA-Za-z]*|ст\.`

	// Буквенный индекс ограничен диапазоном «а»–«о», чтобы не захватывать
	// начало следующего маркера («пункта», «статьи»).
	letterToken = `[А-Оа-оA-Za-z]?[А-Оа-оA-Za-z]`

	conjunction = "и"
)

var (
	numberToken = fmt.Sprintf(`%s+\.*%s*`, digit, digit)

	// Хвост разделителей относится только к буквенной альтернативе,
	// числовая сама поглощает запятые и пробелы после себя.
	indexAlternatives = fmt.Sprintf(`%[1]s%[3]s*,*%[3]s*|%[2]s%[3]s*,*%[3]s*`, numberToken, letterToken, space)
	indexList         = fmt.Sprintf(`(?:%[1]s%[2]s*(?:,%[2]s*|и%[2]s*)?)+`, indexAlternatives, space)
	optionalAnd       = fmt.Sprintf(`(?:(?:(?:и%s+)?))?`, space)
)

// PatternKind вариант шаблона, совпавший с окном текста
type PatternKind int

const (
	PatternNone PatternKind = iota
	PatternFull
	PatternPointArticle
	PatternArticle
)

// String возвращает название шаблона для логов
func (k PatternKind) String() string {
	switch k {
	case PatternFull:
		return "subpoint_point_article"
	case PatternPointArticle:
		return "point_article"
	case PatternArticle:
		return "article"
	default:
		return "none"
	}
}

// QualifierMatch результат применения грамматики к окну.
// Kind == PatternNone означает отсутствие совпадения; для уровня, не участвовавшего
// в совпадении, список равен nil.
type QualifierMatch struct {
	Kind      PatternKind
	Subpoints []string
	Points    []string
	Articles  []string
}

// Matched сообщает, совпал ли хотя бы один шаблон
func (m QualifierMatch) Matched() bool {
	return m.Kind != PatternNone
}

// qualifierPattern скомпилированный шаблон и индексы его групп
type qualifierPattern struct {
	kind     PatternKind
	re       *regexp.Regexp
	subpoint int
	point    int
	article  int
}

// QualifierGrammar три каскадных шаблона от самого подробного к самому общему.
// Не изменяется после создания.
type QualifierGrammar struct {
	patterns []qualifierPattern
}

// NewQualifierGrammar компилирует шаблоны грамматики
func NewQualifierGrammar() *QualifierGrammar {
	subpointGroup := fmt.Sprintf(`(?P<sub_points>(?:%s)%s*)(?P<sub_index>%s)`, subpointMarkers, space, indexList)
	pointGroup := fmt.Sprintf(`(?P<points>(?:%s)%s*)(?P<point_index>%s)`, pointMarkers, space, indexList)
	articleGroup := fmt.Sprintf(`(?P<articles>(?:%s)%s*)(?P<article_index>%s)`, articleMarkers, space, indexList)

	full := subpointGroup + optionalAnd + `(?:` + pointGroup + `)?` + optionalAnd + `(?:` + articleGroup + `)?`
	pointArticle := pointGroup + optionalAnd + `(?:` + articleGroup + `)?`

	return &QualifierGrammar{
		patterns: []qualifierPattern{
			compileQualifierPattern(PatternFull, full),
			compileQualifierPattern(PatternPointArticle, pointArticle),
			compileQualifierPattern(PatternArticle, articleGroup),
		},
	}
}

func compileQualifierPattern(kind PatternKind, expr string) qualifierPattern {
	re := regexp.MustCompile(`(?i)` + expr)
	return qualifierPattern{
		kind:     kind,
		re:       re,
		subpoint: re.SubexpIndex("sub_index"),
		point:    re.SubexpIndex("point_index"),
		article:  re.SubexpIndex("article_index"),
	}
}

// Match ищет квалификаторы в окне, пробуя шаблоны строго по приоритету.
// Поиск не привязан к началу окна.
func (g *QualifierGrammar) Match(window string) QualifierMatch {
	for _, p := range g.patterns {
		loc := p.re.FindStringSubmatchIndex(window)
		if loc == nil {
			continue
		}
		return QualifierMatch{
			Kind:      p.kind,
			Subpoints: groupIndexes(window, loc, p.subpoint),
			Points:    groupIndexes(window, loc, p.point),
			Articles:  groupIndexes(window, loc, p.article),
		}
	}
	return QualifierMatch{Kind: PatternNone}
}

// groupIndexes извлекает список индексов группы; nil, если группа не участвовала
func groupIndexes(window string, loc []int, group int) []string {
	if group < 0 || 2*group+1 >= len(loc) || loc[2*group] < 0 {
		return nil
	}
	return SplitIndexList(window[loc[2*group]:loc[2*group+1]])
}

// SplitIndexList нормализует захваченный список индексов: удаляет все запятые
// и все союзы «и», затем делит по пробелам. Повторы не удаляются.
func SplitIndexList(raw string) []string {
	cleaned := strings.ReplaceAll(raw, ",", "")
	cleaned = strings.ReplaceAll(cleaned, conjunction, "")
	if tokens := strings.FieldsFunc(cleaned, isIndexSpace); len(tokens) > 0 {
		return tokens
	}
	// Группа совпала, но после очистки индексов не осталось: уровень присутствует пустым
	return []string{}
}

// isIndexSpace совпадает с классом space: разделители U+001C–U+001F тоже считаются пробелами
func isIndexSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}
