package domain

import "fmt"

// WordDefinition is one dictionary entry for a headword: its pronunciation and
// the part-of-speech groups found on the page, in document order.
type WordDefinition struct {
	Word          string
	Pronunciation string
	Types         []WordTypeDefinition
}

// WordTypeDefinition groups the meanings of a headword under one category.
type WordTypeDefinition struct {
	Category Category
	Meanings []Meaning
}

// Meaning is a single gloss with its example sentences.
type Meaning struct {
	Text     string
	Examples []Example
}

// Example is a source-language sentence with an optional translation.
type Example struct {
	Sentence    string
	Translation string
}

// NewWordDefinition builds a WordDefinition. A nil types slice is stored as empty.
func NewWordDefinition(word, pronunciation string, types []WordTypeDefinition) *WordDefinition {
	if types == nil {
		types = []WordTypeDefinition{}
	}
	return &WordDefinition{
		Word:          word,
		Pronunciation: pronunciation,
		Types:         types,
	}
}

// Validate checks the invariants persistence relies on.
func (d *WordDefinition) Validate() error {
	var errs []FieldError
	if NormalizeText(d.Word) == "" {
		errs = append(errs, FieldError{Field: "word", Message: "required"})
	}
	for i, t := range d.Types {
		if !t.Category.IsValid() {
			errs = append(errs, FieldError{
				Field:   fmt.Sprintf("types[%d].category", i),
				Message: fmt.Sprintf("invalid category %q", t.Category),
			})
		}
	}
	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}

// MeaningCount returns the number of meanings across all types.
func (d *WordDefinition) MeaningCount() int {
	n := 0
	for _, t := range d.Types {
		n += len(t.Meanings)
	}
	return n
}

// ExampleCount returns the number of examples across all meanings.
func (d *WordDefinition) ExampleCount() int {
	n := 0
	for _, t := range d.Types {
		for _, m := range t.Meanings {
			n += len(m.Examples)
		}
	}
	return n
}
