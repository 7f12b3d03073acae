package extractor

import (
	"log/slog"

	"github.com/heartmarshall/dict-crawler/internal/domain"
	"github.com/heartmarshall/dict-crawler/internal/htmldoc"
	"github.com/heartmarshall/dict-crawler/internal/wordtype"
)

// Classifier folds the flat marker list of one part-of-speech block into a
// nested WordTypeDefinition. It holds no per-block state and is safe for
// concurrent use; each call builds its own tree.
type Classifier struct {
	resolver *wordtype.Resolver
	markers  Markers
	clean    *TextCleaner
	log      *slog.Logger
}

// NewClassifier creates a Classifier for one site's markers.
func NewClassifier(resolver *wordtype.Resolver, markers Markers, logger *slog.Logger) *Classifier {
	return &Classifier{
		resolver: resolver,
		markers:  markers,
		clean:    NewTextCleaner(),
		log:      logger.With("component", "classifier"),
	}
}

// ClassifyBlock walks the markers of block in document order.
//
// It returns nil, nil when the block has no usable header. When the first
// header cannot be resolved it returns a *domain.UnrecognizedCategoryError and
// the caller skips the block. Meaning, example and translation markers that
// arrive without their parent are dropped.
func (c *Classifier) ClassifyBlock(doc *htmldoc.Document, block htmldoc.Element) (*domain.WordTypeDefinition, error) {
	var open *typeBuilder

	for _, el := range doc.SelectAll(block, c.markers.Elements) {
		r := c.markers.roleOf(el)
		if r == roleNone {
			continue
		}
		text := c.clean.Text(el)

		switch r {
		case roleHeader:
			if open != nil {
				c.log.Debug("extra header ignored",
					slog.String("block", block.ID()),
					slog.String("label", text),
					slog.String("category", open.category.String()),
				)
				continue
			}
			category, err := c.resolver.Resolve(text)
			if err != nil {
				return nil, err
			}
			open = &typeBuilder{category: category}

		case roleMeaning:
			if open == nil {
				continue
			}
			open.addMeaning(text)

		case roleExample:
			if open == nil {
				continue
			}
			open.addExample(text)

		case roleTranslation:
			if open == nil {
				continue
			}
			open.setTranslation(text)
		}
	}

	if open == nil {
		return nil, nil
	}
	t := open.build()
	return &t, nil
}

// typeBuilder is the open WordTypeDefinition during one ClassifyBlock call.
// The last meaning and its last example are the open ones.
type typeBuilder struct {
	category domain.Category
	meanings []meaningBuilder
}

type meaningBuilder struct {
	text     string
	examples []domain.Example
}

func (b *typeBuilder) addMeaning(text string) {
	b.meanings = append(b.meanings, meaningBuilder{text: text})
}

func (b *typeBuilder) addExample(sentence string) {
	if len(b.meanings) == 0 {
		return
	}
	m := &b.meanings[len(b.meanings)-1]
	m.examples = append(m.examples, domain.Example{Sentence: sentence})
}

func (b *typeBuilder) setTranslation(text string) {
	if len(b.meanings) == 0 {
		return
	}
	m := &b.meanings[len(b.meanings)-1]
	if len(m.examples) == 0 {
		return
	}
	m.examples[len(m.examples)-1].Translation = text
}

func (b *typeBuilder) build() domain.WordTypeDefinition {
	meanings := make([]domain.Meaning, 0, len(b.meanings))
	for _, m := range b.meanings {
		examples := make([]domain.Example, len(m.examples))
		copy(examples, m.examples)
		meanings = append(meanings, domain.Meaning{Text: m.text, Examples: examples})
	}
	return domain.WordTypeDefinition{Category: b.category, Meanings: meanings}
}
