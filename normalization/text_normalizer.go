package normalization

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// invisibleRunes символы, которые разрывают название закона, но не видны читателю:
// мягкий перенос, пробел нулевой ширины, BOM
var invisibleRunes = strings.NewReplacer(
	"\u00ad", "",
	"\u200b", "",
	"\ufeff", "",
)

// TextNormalizer подготавливает текст к поиску ссылок.
// Пробелы не схлопываются: от количества символов зависит окно поиска квалификаторов.
type TextNormalizer struct {
	unicodeNFC bool
}

// NewTextNormalizer создает нормализатор текста
func NewTextNormalizer(unicodeNFC bool) *TextNormalizer {
	return &TextNormalizer{unicodeNFC: unicodeNFC}
}

// Prepare выполняет нормализацию
func (tn *TextNormalizer) Prepare(text string) string {
	if tn == nil || !tn.unicodeNFC || text == "" {
		return text
	}

	// 1. Приведение к NFC: «й» и «ё» из двух кодовых точек становятся одной
	text = norm.NFC.String(text)

	// 2. Удаление невидимых символов
	return invisibleRunes.Replace(text)
}

// Enabled сообщает, изменяет ли нормализатор текст
func (tn *TextNormalizer) Enabled() bool {
	return tn != nil && tn.unicodeNFC
}
