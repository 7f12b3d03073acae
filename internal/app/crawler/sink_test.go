package crawler

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/heartmarshall/dict-crawler/internal/adapter/postgres/wordrepo"
	"github.com/heartmarshall/dict-crawler/internal/domain"
	"github.com/heartmarshall/dict-crawler/internal/wordtype"
)

func sampleDefinition() *domain.WordDefinition {
	return domain.NewWordDefinition("run", "rʌn", []domain.WordTypeDefinition{
		{
			Category: domain.CategoryVerb,
			Meanings: []domain.Meaning{{
				Text:     "chạy",
				Examples: []domain.Example{{Sentence: "I run <fast>", Translation: "tôi chạy nhanh"}},
			}},
		},
		{Category: domain.CategoryNoun, Meanings: []domain.Meaning{}},
	})
}

func TestJSONLinesSink_Save(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	sink := NewJSONLinesSink(&buf)

	if err := sink.Save(context.Background(), sampleDefinition()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := sink.Save(context.Background(), domain.NewWordDefinition("walk", "", nil)); err != nil {
		t.Fatalf("Save: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	want := []string{
		`{"word":"run","pronunciation":"rʌn","types":[{"category":"verb","meanings":[{"text":"chạy","examples":[{"sentence":"I run <fast>","translation":"tôi chạy nhanh"}]}]},{"category":"noun","meanings":[]}]}`,
		`{"word":"walk","types":[]}`,
	}
	if diff := cmp.Diff(want, lines); diff != "" {
		t.Errorf("lines mismatch (-want +got):\n%s", diff)
	}
}

type fakeStore struct {
	res   wordrepo.SaveResult
	err   error
	table wordtype.CategoryTable
}

func (s *fakeStore) SaveWord(_ context.Context, _ *domain.WordDefinition, table wordtype.CategoryTable) (wordrepo.SaveResult, error) {
	s.table = table
	return s.res, s.err
}

func TestRepoSink_Save(t *testing.T) {
	t.Parallel()

	table := wordtype.NewCategoryTable(map[string]int{"verb": 2})
	store := &fakeStore{res: wordrepo.SaveResult{Types: 1, SkippedTypes: 1}}
	sink := NewRepoSink(store, table, testLogger())

	if err := sink.Save(context.Background(), sampleDefinition()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if id, ok := store.table.Lookup(domain.CategoryVerb); !ok || id != 2 {
		t.Errorf("table not passed through: got %d, %v", id, ok)
	}

	store.err = errors.New("boom")
	if err := sink.Save(context.Background(), sampleDefinition()); err == nil {
		t.Error("expected store error to propagate")
	}
}
