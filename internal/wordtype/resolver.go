package wordtype

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/heartmarshall/dict-crawler/internal/domain"
)

// Resolver maps raw labels to categories through a fixed label table.
type Resolver struct {
	labels map[string]domain.Category
}

// NewResolver builds a Resolver from one or more label tables. Keys are
// normalized the same way Resolve normalizes its input.
func NewResolver(tables ...Labels) *Resolver {
	merged := Merge(tables...)
	labels := make(map[string]domain.Category, len(merged))
	for k, v := range merged {
		labels[NormalizeLabel(k)] = v
	}
	return &Resolver{labels: labels}
}

// Resolve returns the canonical category for label, or an
// *domain.UnrecognizedCategoryError carrying the original label.
func (r *Resolver) Resolve(label string) (domain.Category, error) {
	if c, ok := r.labels[NormalizeLabel(label)]; ok {
		return c, nil
	}
	return "", &domain.UnrecognizedCategoryError{Label: label}
}

// NormalizeLabel composes Unicode (Vietnamese pages mix precomposed and
// combining diacritics), lower-cases, collapses whitespace and strips
// surrounding punctuation such as "noun:" or "(adj.)".
func NormalizeLabel(label string) string {
	label = norm.NFC.String(label)
	label = domain.NormalizeText(label)
	return strings.Trim(label, " .:;,()[]*")
}
