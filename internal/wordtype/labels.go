// Package wordtype resolves part-of-speech labels found in dictionary markup
// to canonical domain categories.
// Pure functions: no I/O, no shared mutable state.
package wordtype

import "github.com/heartmarshall/dict-crawler/internal/domain"

// Labels maps a source-site label to a canonical category.
type Labels map[string]domain.Category

// VietnameseLabels covers the headers used by the Lạc Việt EN→VI dictionary.
var VietnameseLabels = Labels{
	"danh từ":       domain.CategoryNoun,
	"động từ":       domain.CategoryVerb,
	"ngoại động từ": domain.CategoryTransitiveVerb,
	"nội động từ":   domain.CategoryIntransitiveVerb,
	"tính từ":       domain.CategoryAdjective,
	"phó từ":        domain.CategoryAdverb,
	"trạng từ":      domain.CategoryAdverb,
	"giới từ":       domain.CategoryPreposition,
	"liên từ":       domain.CategoryConjunction,
	"thán từ":       domain.CategoryInterjection,
	"mạo từ":        domain.CategoryArticle,
	"đại từ":        domain.CategoryPronoun,
	"viết tắt":      domain.CategoryAbbreviation,
	"tiền tố":       domain.CategoryPrefix,
}

// EnglishLabels covers English headers, full and abbreviated.
var EnglishLabels = Labels{
	"noun":              domain.CategoryNoun,
	"n":                 domain.CategoryNoun,
	"verb":              domain.CategoryVerb,
	"v":                 domain.CategoryVerb,
	"transitive verb":   domain.CategoryTransitiveVerb,
	"vt":                domain.CategoryTransitiveVerb,
	"intransitive verb": domain.CategoryIntransitiveVerb,
	"vi":                domain.CategoryIntransitiveVerb,
	"adjective":         domain.CategoryAdjective,
	"adj":               domain.CategoryAdjective,
	"adverb":            domain.CategoryAdverb,
	"adv":               domain.CategoryAdverb,
	"preposition":       domain.CategoryPreposition,
	"prep":              domain.CategoryPreposition,
	"conjunction":       domain.CategoryConjunction,
	"conj":              domain.CategoryConjunction,
	"interjection":      domain.CategoryInterjection,
	"exclamation":       domain.CategoryInterjection,
	"article":           domain.CategoryArticle,
	"pronoun":           domain.CategoryPronoun,
	"pron":              domain.CategoryPronoun,
	"abbreviation":      domain.CategoryAbbreviation,
	"abbr":              domain.CategoryAbbreviation,
	"prefix":            domain.CategoryPrefix,
}

// Merge combines label tables. Later tables win on conflicting keys.
func Merge(tables ...Labels) Labels {
	out := make(Labels)
	for _, t := range tables {
		for k, v := range t {
			out[k] = v
		}
	}
	return out
}
