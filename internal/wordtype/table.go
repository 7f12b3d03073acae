package wordtype

import (
	"strings"

	"github.com/heartmarshall/dict-crawler/internal/domain"
)

// CategoryTable maps lower-cased canonical labels to persistence ids.
// It is owned by the persistence layer; extraction never builds one.
type CategoryTable map[string]int

// NewCategoryTable lower-cases and trims the keys of rows.
func NewCategoryTable(rows map[string]int) CategoryTable {
	t := make(CategoryTable, len(rows))
	for label, id := range rows {
		t[strings.ToLower(strings.TrimSpace(label))] = id
	}
	return t
}

// Lookup returns the id stored for c.
func (t CategoryTable) Lookup(c domain.Category) (int, bool) {
	id, ok := t[c.Label()]
	return id, ok
}
