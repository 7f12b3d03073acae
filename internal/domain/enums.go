package domain

// Category is the canonical part-of-speech category of a word type group.
// It does not depend on the label text used by any source site.
type Category string

const (
	CategoryNoun             Category = "NOUN"
	CategoryVerb             Category = "VERB"
	CategoryTransitiveVerb   Category = "TRANSITIVE_VERB"
	CategoryIntransitiveVerb Category = "INTRANSITIVE_VERB"
	CategoryAdjective        Category = "ADJECTIVE"
	CategoryAdverb           Category = "ADVERB"
	CategoryPreposition      Category = "PREPOSITION"
	CategoryConjunction      Category = "CONJUNCTION"
	CategoryInterjection     Category = "INTERJECTION"
	CategoryArticle          Category = "ARTICLE"
	CategoryPronoun          Category = "PRONOUN"
	CategoryAbbreviation     Category = "ABBREVIATION"
	CategoryPrefix           Category = "PREFIX"
)

// categoryLabels holds the lower-cased canonical label of each category.
// Persistence keys its category table by these labels.
var categoryLabels = map[Category]string{
	CategoryNoun:             "noun",
	CategoryVerb:             "verb",
	CategoryTransitiveVerb:   "transitive verb",
	CategoryIntransitiveVerb: "intransitive verb",
	CategoryAdjective:        "adjective",
	CategoryAdverb:           "adverb",
	CategoryPreposition:      "preposition",
	CategoryConjunction:      "conjunction",
	CategoryInterjection:     "interjection",
	CategoryArticle:          "article",
	CategoryPronoun:          "pronoun",
	CategoryAbbreviation:     "abbreviation",
	CategoryPrefix:           "prefix",
}

func (c Category) String() string { return string(c) }

func (c Category) IsValid() bool {
	_, ok := categoryLabels[c]
	return ok
}

// Label returns the lower-cased canonical label, or "" for an invalid category.
func (c Category) Label() string {
	return categoryLabels[c]
}

// AllCategories returns every canonical category in a stable order.
func AllCategories() []Category {
	return []Category{
		CategoryNoun,
		CategoryVerb,
		CategoryTransitiveVerb,
		CategoryIntransitiveVerb,
		CategoryAdjective,
		CategoryAdverb,
		CategoryPreposition,
		CategoryConjunction,
		CategoryInterjection,
		CategoryArticle,
		CategoryPronoun,
		CategoryAbbreviation,
		CategoryPrefix,
	}
}

// CategoryFromLabel is the inverse of Label.
func CategoryFromLabel(label string) (Category, bool) {
	for c, l := range categoryLabels {
		if l == label {
			return c, true
		}
	}
	return "", false
}
