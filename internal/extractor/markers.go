package extractor

import "github.com/heartmarshall/dict-crawler/internal/htmldoc"

// Markers describes how a site marks the roles of elements inside a
// part-of-speech block: Elements selects candidate marker elements, and the
// four class names identify their roles.
type Markers struct {
	Elements    htmldoc.Selector
	Header      string
	Meaning     string
	Example     string
	Translation string
}

type role int

const (
	roleNone role = iota
	roleHeader
	roleMeaning
	roleExample
	roleTranslation
)

func (r role) String() string {
	switch r {
	case roleHeader:
		return "header"
	case roleMeaning:
		return "meaning"
	case roleExample:
		return "example"
	case roleTranslation:
		return "translation"
	default:
		return "none"
	}
}

// roleOf classifies el. Markup may carry incidental extra classes, so the
// checks run in a fixed priority and the first match wins.
func (m Markers) roleOf(el htmldoc.Element) role {
	switch {
	case el.HasClass(m.Header):
		return roleHeader
	case el.HasClass(m.Meaning):
		return roleMeaning
	case el.HasClass(m.Example):
		return roleExample
	case el.HasClass(m.Translation):
		return roleTranslation
	default:
		return roleNone
	}
}
