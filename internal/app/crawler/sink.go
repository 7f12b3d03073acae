package crawler

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/heartmarshall/dict-crawler/internal/adapter/postgres/wordrepo"
	"github.com/heartmarshall/dict-crawler/internal/domain"
	"github.com/heartmarshall/dict-crawler/internal/wordtype"
)

// ---------------------------------------------------------------------------
// JSON lines
// ---------------------------------------------------------------------------

// JSONLinesSink writes one JSON object per entry. Used for dry runs.
type JSONLinesSink struct {
	mu  sync.Mutex
	enc *json.Encoder
}

// NewJSONLinesSink creates a sink writing to w.
func NewJSONLinesSink(w io.Writer) *JSONLinesSink {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return &JSONLinesSink{enc: enc}
}

// Save encodes def as a single line.
func (s *JSONLinesSink) Save(_ context.Context, def *domain.WordDefinition) error {
	rec := EncodeDefinition(def)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enc.Encode(rec); err != nil {
		return fmt.Errorf("encode %q: %w", def.Word, err)
	}
	return nil
}

// DefinitionJSON is the serialized form of an entry.
type DefinitionJSON struct {
	Word          string     `json:"word"`
	Pronunciation string     `json:"pronunciation,omitempty"`
	Types         []TypeJSON `json:"types"`
}

// TypeJSON is a serialized part-of-speech group.
type TypeJSON struct {
	Category string        `json:"category"`
	Meanings []MeaningJSON `json:"meanings"`
}

// MeaningJSON is a serialized meaning.
type MeaningJSON struct {
	Text     string        `json:"text"`
	Examples []ExampleJSON `json:"examples"`
}

// ExampleJSON is a serialized example.
type ExampleJSON struct {
	Sentence    string `json:"sentence"`
	Translation string `json:"translation,omitempty"`
}

// EncodeDefinition maps an entry to its JSON form. Categories are written as
// their stable labels.
func EncodeDefinition(def *domain.WordDefinition) DefinitionJSON {
	out := DefinitionJSON{
		Word:          def.Word,
		Pronunciation: def.Pronunciation,
		Types:         make([]TypeJSON, 0, len(def.Types)),
	}
	for _, t := range def.Types {
		tj := TypeJSON{Category: t.Category.Label(), Meanings: make([]MeaningJSON, 0, len(t.Meanings))}
		for _, m := range t.Meanings {
			mj := MeaningJSON{Text: m.Text, Examples: make([]ExampleJSON, 0, len(m.Examples))}
			for _, e := range m.Examples {
				mj.Examples = append(mj.Examples, ExampleJSON(e))
			}
			tj.Meanings = append(tj.Meanings, mj)
		}
		out.Types = append(out.Types, tj)
	}
	return out
}

// ---------------------------------------------------------------------------
// PostgreSQL
// ---------------------------------------------------------------------------

// WordStore is the persistence used by RepoSink.
// Implemented by wordrepo.Repo.
type WordStore interface {
	SaveWord(ctx context.Context, def *domain.WordDefinition, table wordtype.CategoryTable) (wordrepo.SaveResult, error)
}

// RepoSink stores entries through the word repository, resolving categories
// with a table loaded once at startup.
type RepoSink struct {
	store WordStore
	table wordtype.CategoryTable
	log   *slog.Logger
}

// NewRepoSink creates a RepoSink.
func NewRepoSink(store WordStore, table wordtype.CategoryTable, logger *slog.Logger) *RepoSink {
	return &RepoSink{store: store, table: table, log: logger.With("component", "repo_sink")}
}

// Save stores def. Groups whose category has no stored row are dropped and logged.
func (s *RepoSink) Save(ctx context.Context, def *domain.WordDefinition) error {
	res, err := s.store.SaveWord(ctx, def, s.table)
	if err != nil {
		return err
	}
	if res.SkippedTypes > 0 {
		s.log.WarnContext(ctx, "categories missing from word_types",
			slog.Int("skipped_types", res.SkippedTypes),
		)
	}
	return nil
}
