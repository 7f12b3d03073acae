package htmldoc

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// MaxHTMLSize limits input to 10MB.
const MaxHTMLSize = 10 * 1024 * 1024

// ErrMalformed is returned by Parse when the input cannot be tokenized.
var ErrMalformed = errors.New("malformed html")

// Document is a parsed HTML tree.
type Document struct {
	doc *goquery.Document
}

// Scope limits a query to the descendants of a document or an element.
type Scope interface {
	selection() *goquery.Selection
}

// Parse tokenizes src into a Document. The input must be UTF-8; use Decode
// first for bodies in other encodings. Empty documents parse successfully.
func Parse(src string) (*Document, error) {
	if len(src) > MaxHTMLSize {
		return nil, fmt.Errorf("%w: %d bytes exceeds limit of %d", ErrMalformed, len(src), MaxHTMLSize)
	}
	if !utf8.ValidString(src) {
		return nil, fmt.Errorf("%w: invalid UTF-8 byte sequence", ErrMalformed)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return &Document{doc: doc}, nil
}

func (d *Document) selection() *goquery.Selection { return d.doc.Selection }

// SelectAll returns the descendants of scope matching sel, in document order.
func (d *Document) SelectAll(scope Scope, sel Selector) []Element {
	if scope == nil || sel == nil {
		return nil
	}
	nodes := sel.match(scope.selection())
	if len(nodes) == 0 {
		return nil
	}
	elems := make([]Element, 0, len(nodes))
	for _, n := range nodes {
		if n.Type != html.ElementNode {
			continue
		}
		elems = append(elems, Element{sel: d.doc.FindNodes(n)})
	}
	return elems
}

// First returns the first element in the document matching sel.
func (d *Document) First(sel Selector) (Element, bool) {
	elems := d.SelectAll(d, sel)
	if len(elems) == 0 {
		return Element{}, false
	}
	return elems[0], true
}

// FirstText returns the inner text of the first element matching sel.
func (d *Document) FirstText(sel Selector) (string, bool) {
	el, ok := d.First(sel)
	if !ok {
		return "", false
	}
	return el.InnerText(), true
}
