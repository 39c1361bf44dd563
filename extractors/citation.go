package extractors

import (
	"encoding/json"
	"strconv"
)

// LawID идентификатор закона из таблицы псевдонимов.
// Числовые идентификаторы сериализуются в JSON как числа, остальные как строки.
type LawID string

// MarshalJSON реализует json.Marshaler
func (id LawID) MarshalJSON() ([]byte, error) {
	if n, err := strconv.ParseInt(string(id), 10, 64); err == nil {
		return []byte(strconv.FormatInt(n, 10)), nil
	}
	return json.Marshal(string(id))
}

// UnmarshalJSON принимает как число, так и строку
func (id *LawID) UnmarshalJSON(data []byte) error {
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*id = LawID(n.String())
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*id = LawID(s)
	return nil
}

// Citation одна ссылка на положение закона.
// Индексы хранятся строками: буквенные подпункты так же допустимы, как числовые.
// nil означает, что уровень в тексте не указан.
type Citation struct {
	LawID           LawID   `json:"law_id"`
	Article         *string `json:"article"`
	PointArticle    *string `json:"point_article"`
	SubpointArticle *string `json:"subpoint_article"`

	Alias      string `json:"-"` // Найденный в тексте псевдоним
	MatchStart int    `json:"-"` // Байтовое смещение псевдонима в исходном тексте
	MatchEnd   int    `json:"-"`
}

// Value возвращает значение индекса или пустую строку для nil
func Value(index *string) string {
	if index == nil {
		return ""
	}
	return *index
}
