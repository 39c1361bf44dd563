package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"lawlinks/extractors"
)

// Format формат выгрузки ссылок
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

const sheetName = "Links"

var headers = []string{"№", "law_id", "article", "point_article", "subpoint_article", "alias"}

// ParseFormat разбирает название формата. Пустая строка означает JSON.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "json":
		return FormatJSON, nil
	case "csv":
		return FormatCSV, nil
	case "xlsx", "excel":
		return FormatXLSX, nil
	}
	return "", fmt.Errorf("unsupported export format %q", s)
}

// ContentType возвращает MIME тип формата
func (f Format) ContentType() string {
	switch f {
	case FormatCSV:
		return "text/csv; charset=utf-8"
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return "application/json; charset=utf-8"
	}
}

// Extension возвращает расширение файла без точки
func (f Format) Extension() string {
	if f == "" {
		return string(FormatJSON)
	}
	return string(f)
}

// Write выгружает ссылки в выбранном формате
func Write(w io.Writer, format Format, links []extractors.Citation) error {
	switch format {
	case FormatJSON, "":
		return writeJSON(w, links)
	case FormatCSV:
		return writeCSV(w, links)
	case FormatXLSX:
		return writeXLSX(w, links)
	}
	return fmt.Errorf("unsupported export format %q", format)
}

func row(i int, link extractors.Citation) []string {
	return []string{
		strconv.Itoa(i + 1),
		string(link.LawID),
		extractors.Value(link.Article),
		extractors.Value(link.PointArticle),
		extractors.Value(link.SubpointArticle),
		link.Alias,
	}
}

func writeJSON(w io.Writer, links []extractors.Citation) error {
	if links == nil {
		links = []extractors.Citation{}
	}

	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(map[string]interface{}{"links": links}); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

func writeCSV(w io.Writer, links []extractors.Citation) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(headers); err != nil {
		return fmt.Errorf("failed to write headers: %w", err)
	}
	for i, link := range links {
		if err := writer.Write(row(i, link)); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func writeXLSX(w io.Writer, links []extractors.Citation) error {
	f := excelize.NewFile()
	defer f.Close()

	// Лист по умолчанию переименовывается, чтобы в книге не оставался пустой Sheet1
	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	for i, link := range links {
		for col, value := range row(i, link) {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			if col == 0 {
				f.SetCellValue(sheetName, cell, i+1)
				continue
			}
			f.SetCellValue(sheetName, cell, value)
		}
	}

	widths := []float64{6, 12, 12, 14, 16, 40}
	for i, width := range widths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheetName, col, col, width)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write Excel file: %w", err)
	}
	return nil
}
