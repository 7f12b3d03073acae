// Package crawler drives a bulk crawl: for each word in a list it fetches the
// dictionary page, extracts the entry and hands it to a sink, using a bounded
// worker pool. Per-word failures are counted, never fatal.
package crawler

import (
	"context"

	"github.com/heartmarshall/dict-crawler/internal/domain"
	"github.com/heartmarshall/dict-crawler/internal/extractor"
)

// Fetcher returns the raw page for a word.
// Implemented by dictsite.Provider.
type Fetcher interface {
	FetchHTML(ctx context.Context, word string) (string, error)
}

// EntryExtractor turns a page into an entry.
// Implemented by extractor.SiteExtractor.
type EntryExtractor interface {
	ExtractWithReport(page string) (*domain.WordDefinition, extractor.Report, error)
}

// Sink receives extracted entries. Implementations must be safe for
// concurrent use.
type Sink interface {
	Save(ctx context.Context, def *domain.WordDefinition) error
}

// WordIndex answers whether a word is already stored, for resumed runs.
// Implemented by wordrepo.Repo.
type WordIndex interface {
	WordExists(ctx context.Context, word string) (bool, error)
}

// Deps are the collaborators of a Crawler. Index and Metrics may be nil.
type Deps struct {
	Fetcher   Fetcher
	Extractor EntryExtractor
	Sink      Sink
	Index     WordIndex
	Metrics   *Metrics
}
