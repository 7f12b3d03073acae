package extractor

import (
	"html"

	"github.com/microcosm-cc/bluemonday"

	"github.com/heartmarshall/dict-crawler/internal/htmldoc"
)

// TextCleaner turns a marker element into its plain text: tags are dropped,
// escaped characters in the page's text come back literally, and whitespace
// is normalized. Safe for concurrent use.
type TextCleaner struct {
	policy *bluemonday.Policy
}

// NewTextCleaner returns a cleaner that keeps no tags at all.
func NewTextCleaner() *TextCleaner {
	return &TextCleaner{policy: bluemonday.StrictPolicy()}
}

// Text returns the plain text of el. It works on the element's rendered
// inner HTML, where real tags and escaped text are still distinguishable,
// so "x &lt;sb&gt; y" in the page yields "x <sb> y".
func (c *TextCleaner) Text(el htmldoc.Element) string {
	inner := el.InnerHTML()
	if inner == "" {
		return ""
	}
	// The policy re-escapes the text it keeps; decode exactly once.
	return htmldoc.NormalizeWhitespace(html.UnescapeString(c.policy.Sanitize(inner)))
}
