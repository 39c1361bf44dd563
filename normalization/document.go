package normalization

import (
	"bytes"
	"fmt"
	"io"
	"mime"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// blockSelectors элементы, после которых в извлеченном тексте ставится перевод строки
const blockSelectors = "p, div, br, li, tr, td, th, h1, h2, h3, h4, h5, h6, blockquote, pre, section, article"

// IsHTML определяет, что документ является HTML, по Content-Type или по началу тела
func IsHTML(contentType string, body []byte) bool {
	if mediaType, _, err := mime.ParseMediaType(contentType); err == nil {
		switch mediaType {
		case "text/html", "application/xhtml+xml":
			return true
		case "text/plain":
			return false
		}
	}

	head := strings.ToLower(strings.TrimSpace(string(body[:min(len(body), 512)])))
	return strings.HasPrefix(head, "<!doctype html") || strings.HasPrefix(head, "<html")
}

// DecodeDocument перекодирует тело документа в UTF-8.
//
// Порядок определения кодировки: charset из Content-Type, корректный UTF-8,
// для HTML BOM и meta-теги. Если ничего не подошло, документ считается
// windows-1251: это типичная кодировка старых выгрузок правовых систем.
func DecodeDocument(body []byte, contentType string) (string, error) {
	enc, err := detectEncoding(body, contentType)
	if err != nil {
		return "", err
	}
	if enc == nil {
		return string(body), nil
	}

	decoded, err := io.ReadAll(enc.NewDecoder().Reader(bytes.NewReader(body)))
	if err != nil {
		return "", fmt.Errorf("failed to decode document: %w", err)
	}
	return string(decoded), nil
}

// detectEncoding возвращает nil, если тело уже в UTF-8
func detectEncoding(body []byte, contentType string) (encoding.Encoding, error) {
	if _, params, err := mime.ParseMediaType(contentType); err == nil {
		if label := params["charset"]; label != "" {
			enc, name := charset.Lookup(label)
			if enc == nil {
				return nil, fmt.Errorf("unsupported charset %q", label)
			}
			if name == "utf-8" {
				return nil, nil
			}
			return enc, nil
		}
	}

	if utf8.Valid(body) {
		return nil, nil
	}

	if IsHTML(contentType, body) {
		// windows-1252 без уверенности означает, что ни BOM, ни meta-тег не найдены
		if enc, name, certain := charset.DetermineEncoding(body, contentType); certain || name != "windows-1252" {
			if name == "utf-8" {
				return nil, nil
			}
			return enc, nil
		}
	}

	return charmap.Windows1251, nil
}

// ExtractHTMLText извлекает видимый текст из HTML документа.
// Скрипты и стили отбрасываются, блочные элементы разделяются переводом строки.
func ExtractHTMLText(r io.Reader) (string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("script, style, noscript, template").Remove()
	doc.Find(blockSelectors).Each(func(_ int, s *goquery.Selection) {
		s.AppendHtml("\n")
	})

	body := doc.Find("body")
	if body.Length() == 0 {
		return strings.TrimSpace(doc.Text()), nil
	}
	return strings.TrimSpace(body.Text()), nil
}

// DocumentText возвращает текст документа в UTF-8, извлекая его из HTML при необходимости
func DocumentText(body []byte, contentType string) (string, error) {
	text, err := DecodeDocument(body, contentType)
	if err != nil {
		return "", err
	}
	if !IsHTML(contentType, body) {
		return text, nil
	}
	return ExtractHTMLText(strings.NewReader(text))
}
