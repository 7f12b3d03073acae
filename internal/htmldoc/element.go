package htmldoc

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Element is a single element node inside a Document.
// The zero value is an empty element: it has no text, id or classes.
type Element struct {
	sel *goquery.Selection
}

func (e Element) selection() *goquery.Selection {
	if e.sel == nil {
		return &goquery.Selection{}
	}
	return e.sel
}

// Tag returns the lower-case tag name.
func (e Element) Tag() string {
	if e.sel == nil || len(e.sel.Nodes) == 0 {
		return ""
	}
	return e.sel.Nodes[0].Data
}

// InnerText returns the element's descendant text in document order, with
// whitespace runs collapsed to one space and the ends trimmed.
func (e Element) InnerText() string {
	if e.sel == nil {
		return ""
	}
	return NormalizeWhitespace(e.sel.Text())
}

// InnerHTML returns the element's children rendered as HTML, with text
// escaped. Returns "" for the zero Element or when rendering fails.
func (e Element) InnerHTML() string {
	if e.sel == nil || len(e.sel.Nodes) == 0 {
		return ""
	}
	h, err := e.sel.Html()
	if err != nil {
		return ""
	}
	return h
}

// Attr returns the value of the named attribute.
func (e Element) Attr(name string) (string, bool) {
	if e.sel == nil {
		return "", false
	}
	return e.sel.Attr(name)
}

// ID returns the id attribute, or "" when absent.
func (e Element) ID() string {
	id, _ := e.Attr("id")
	return id
}

// Classes returns the whitespace-separated entries of the class attribute.
func (e Element) Classes() []string {
	class, _ := e.Attr("class")
	return strings.Fields(class)
}

// HasClass reports whether name is one of the element's classes.
func (e Element) HasClass(name string) bool {
	if e.sel == nil || name == "" {
		return false
	}
	return e.sel.HasClass(name)
}

// HasIDExact reports whether the id attribute equals id.
func (e Element) HasIDExact(id string) bool {
	got, ok := e.Attr("id")
	return ok && got == id
}

// HasIDPrefix reports whether the id attribute starts with prefix.
func (e Element) HasIDPrefix(prefix string) bool {
	got, ok := e.Attr("id")
	return ok && strings.HasPrefix(got, prefix)
}

// HasIDPrefixOrContains reports whether the id attribute starts with or
// contains fragment.
func (e Element) HasIDPrefixOrContains(fragment string) bool {
	got, ok := e.Attr("id")
	return ok && strings.Contains(got, fragment)
}

// NormalizeWhitespace collapses whitespace runs into one space and trims.
func NormalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
