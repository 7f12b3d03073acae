package wordrepo

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/heartmarshall/dict-crawler/internal/domain"
)

func ptr[T any](v T) *T { return &v }

func TestAssemble(t *testing.T) {
	t.Parallel()

	rows := []treeRow{
		{linkID: 1, label: "verb", meaningID: ptr(10), meaning: ptr("chạy"), sentence: ptr("I run."), translation: ptr("Tôi chạy.")},
		{linkID: 1, label: "verb", meaningID: ptr(10), meaning: ptr("chạy"), sentence: ptr("She runs."), translation: ptr("")},
		{linkID: 1, label: "verb", meaningID: ptr(11), meaning: ptr("điều hành")},
		{linkID: 2, label: "noun"},
		{linkID: 3, label: "adjective", meaningID: ptr(12), meaning: ptr("nhanh")},
	}

	want := []domain.WordTypeDefinition{
		{
			Category: domain.CategoryVerb,
			Meanings: []domain.Meaning{
				{Text: "chạy", Examples: []domain.Example{
					{Sentence: "I run.", Translation: "Tôi chạy."},
					{Sentence: "She runs."},
				}},
				{Text: "điều hành", Examples: []domain.Example{}},
			},
		},
		{Category: domain.CategoryNoun, Meanings: []domain.Meaning{}},
		{
			Category: domain.CategoryAdjective,
			Meanings: []domain.Meaning{{Text: "nhanh", Examples: []domain.Example{}}},
		},
	}

	if diff := cmp.Diff(want, assemble(rows)); diff != "" {
		t.Errorf("assemble() mismatch (-want +got):\n%s", diff)
	}
}

func TestAssemble_Empty(t *testing.T) {
	t.Parallel()

	got := assemble(nil)
	if got == nil || len(got) != 0 {
		t.Errorf("assemble(nil) = %#v, want empty non-nil slice", got)
	}
}
