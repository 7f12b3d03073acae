// Package extractor turns one dictionary HTML page into a domain.WordDefinition.
//
// A SiteExtractor selects the headword, the pronunciation and the
// part-of-speech blocks of a page, and a Classifier folds each block's flat
// marker list into a nested type/meaning/example tree. Site-specific
// differences live entirely in a Site profile.
package extractor

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/dict-crawler/internal/domain"
	"github.com/heartmarshall/dict-crawler/internal/htmldoc"
	"github.com/heartmarshall/dict-crawler/internal/wordtype"
)

// Extractor extracts one entry from a page.
// Errors wrap domain.ErrParse or domain.ErrNotFound.
type Extractor interface {
	Extract(html string) (*domain.WordDefinition, error)
}

// SkippedBlock describes a part-of-speech block dropped because its header
// could not be resolved.
type SkippedBlock struct {
	Index int
	ID    string
	Label string
}

// Report describes what an extraction left out.
type Report struct {
	SkippedBlocks  []SkippedBlock
	ExcludedBlocks int
}

// SiteExtractor is the Extractor for one Site. It is safe for concurrent use.
type SiteExtractor struct {
	site       Site
	classifier *Classifier
	clean      *TextCleaner
	log        *slog.Logger
}

var _ Extractor = (*SiteExtractor)(nil)

// NewSiteExtractor creates an extractor for site.
func NewSiteExtractor(site Site, logger *slog.Logger) *SiteExtractor {
	log := logger.With("component", "extractor", "site", site.Name)
	return &SiteExtractor{
		site:       site,
		classifier: NewClassifier(wordtype.NewResolver(site.Labels), site.Markers, log),
		clean:      NewTextCleaner(),
		log:        log,
	}
}

// Site returns the profile the extractor was built with.
func (x *SiteExtractor) Site() Site { return x.site }

// Extract parses page and returns its entry.
func (x *SiteExtractor) Extract(page string) (*domain.WordDefinition, error) {
	def, _, err := x.ExtractWithReport(page)
	return def, err
}

// ExtractWithReport is Extract plus a Report of skipped and excluded blocks.
func (x *SiteExtractor) ExtractWithReport(page string) (*domain.WordDefinition, Report, error) {
	var report Report

	doc, err := htmldoc.Parse(page)
	if err != nil {
		return nil, report, fmt.Errorf("%w: %w", domain.ErrParse, err)
	}

	headEl, ok := doc.First(x.site.Headword)
	if !ok {
		return nil, report, domain.ErrNotFound
	}
	headword := x.clean.Text(headEl)
	if headword == "" {
		return nil, report, domain.ErrNotFound
	}

	var pronunciation string
	if el, ok := doc.First(x.site.Pronunciation); ok {
		pronunciation = x.clean.Text(el)
	}

	types := make([]domain.WordTypeDefinition, 0)
	for i, block := range doc.SelectAll(doc, x.site.Blocks) {
		if x.site.excluded(block) {
			report.ExcludedBlocks++
			continue
		}

		t, err := x.classifier.ClassifyBlock(doc, block)
		if err != nil {
			var uce *domain.UnrecognizedCategoryError
			if errors.As(err, &uce) {
				report.SkippedBlocks = append(report.SkippedBlocks, SkippedBlock{Index: i, ID: block.ID(), Label: uce.Label})
				x.log.Warn("block skipped",
					slog.String("word", headword),
					slog.String("block", block.ID()),
					slog.String("label", uce.Label),
				)
				continue
			}
			return nil, report, fmt.Errorf("extractor: classify block %d: %w", i, err)
		}
		if t == nil {
			continue
		}
		types = append(types, *t)
	}

	def := domain.NewWordDefinition(headword, pronunciation, types)

	x.log.Debug("entry extracted",
		slog.String("word", def.Word),
		slog.Int("types", len(def.Types)),
		slog.Int("meanings", def.MeaningCount()),
		slog.Int("examples", def.ExampleCount()),
	)

	return def, report, nil
}
