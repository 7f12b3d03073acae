package htmldoc

import (
	"bytes"
	"fmt"
	"io"
	"mime"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/saintfish/chardet"
	"golang.org/x/net/html/charset"
)

// Decode converts a response body to a UTF-8 string. The charset declared in
// contentType wins, then a byte order mark or a <meta> declaration in the
// page; otherwise a valid UTF-8 body is returned as is, and anything else
// goes through charset detection.
func Decode(body []byte, contentType string) (string, error) {
	label := charsetFromContentType(contentType)
	if label == "" {
		label = DeclaredCharset(body)
	}
	if label == "" {
		if utf8.Valid(body) {
			return string(body), nil
		}
		label = DetectCharset(body)
	}

	r, err := charset.NewReaderLabel(label, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: charset %q: %v", ErrMalformed, label, err)
	}
	out, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("%w: decode %q: %v", ErrMalformed, label, err)
	}
	return string(out), nil
}

// DeclaredCharset returns the charset a page names for itself through a byte
// order mark, <meta charset> or <meta http-equiv="Content-Type">, or "".
func DeclaredCharset(body []byte) string {
	if _, name, certain := charset.DetermineEncoding(body, ""); certain {
		return name
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return ""
	}
	if cs, ok := doc.Find("meta[charset]").First().Attr("charset"); ok {
		if label := strings.ToLower(strings.TrimSpace(cs)); label != "" {
			return label
		}
	}

	var label string
	doc.Find("meta[http-equiv]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if !strings.EqualFold(strings.TrimSpace(s.AttrOr("http-equiv", "")), "content-type") {
			return true
		}
		label = charsetFromContentType(s.AttrOr("content", ""))
		return label == ""
	})
	return label
}

// DetectCharset guesses the charset of data, defaulting to utf-8.
func DetectCharset(data []byte) string {
	detector := chardet.NewTextDetector()
	result, err := detector.DetectBest(data)
	if err != nil || result == nil {
		return "utf-8"
	}
	return strings.ToLower(result.Charset)
}

func charsetFromContentType(contentType string) string {
	if contentType == "" {
		return ""
	}
	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(params["charset"]))
}
