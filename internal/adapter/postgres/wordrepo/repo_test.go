package wordrepo_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/dict-crawler/internal/adapter/postgres"
	"github.com/heartmarshall/dict-crawler/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/dict-crawler/internal/adapter/postgres/wordrepo"
	"github.com/heartmarshall/dict-crawler/internal/domain"
	"github.com/heartmarshall/dict-crawler/internal/wordtype"
)

func newRepo(t *testing.T) (*wordrepo.Repo, *pgxpool.Pool) {
	t.Helper()
	pool := testhelper.SetupTestDB(t)
	txm := postgres.NewTxManager(pool)
	return wordrepo.New(pool, txm), pool
}

func seededTable(t *testing.T, repo *wordrepo.Repo) wordtype.CategoryTable {
	t.Helper()
	ctx := context.Background()
	if _, err := repo.SeedCategories(ctx); err != nil {
		t.Fatalf("SeedCategories: %v", err)
	}
	table, err := repo.CategoryTable(ctx)
	if err != nil {
		t.Fatalf("CategoryTable: %v", err)
	}
	return table
}

func buildDefinition(word string) *domain.WordDefinition {
	return domain.NewWordDefinition(word, "/rʌn/", []domain.WordTypeDefinition{
		{
			Category: domain.CategoryVerb,
			Meanings: []domain.Meaning{
				{Text: "chạy", Examples: []domain.Example{
					{Sentence: "He runs every morning.", Translation: "Anh ấy chạy mỗi sáng."},
					{Sentence: "Run!"},
				}},
				{Text: "điều hành", Examples: []domain.Example{}},
			},
		},
		{Category: domain.CategoryNoun, Meanings: []domain.Meaning{}},
	})
}

func TestRepo_SeedCategories_Idempotent(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)
	ctx := context.Background()

	if _, err := repo.SeedCategories(ctx); err != nil {
		t.Fatalf("first seed: %v", err)
	}
	inserted, err := repo.SeedCategories(ctx)
	if err != nil {
		t.Fatalf("second seed: %v", err)
	}
	if inserted != 0 {
		t.Errorf("second seed inserted %d rows, want 0", inserted)
	}

	table, err := repo.CategoryTable(ctx)
	if err != nil {
		t.Fatalf("CategoryTable: %v", err)
	}
	for _, c := range domain.AllCategories() {
		if _, ok := table.Lookup(c); !ok {
			t.Errorf("category %s missing from table", c)
		}
	}
}

func TestRepo_SaveWord_RoundTrip(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)
	ctx := context.Background()
	table := seededTable(t, repo)

	def := buildDefinition(testhelper.UniqueWord("run"))

	res, err := repo.SaveWord(ctx, def, table)
	if err != nil {
		t.Fatalf("SaveWord: %v", err)
	}
	if res.Types != 2 || res.SkippedTypes != 0 || res.Meanings != 2 || res.Examples != 2 {
		t.Errorf("SaveResult = %+v", res)
	}

	got, err := repo.GetWord(ctx, def.Word)
	if err != nil {
		t.Fatalf("GetWord: %v", err)
	}
	if diff := cmp.Diff(def, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("GetWord mismatch (-want +got):\n%s", diff)
	}

	exists, err := repo.WordExists(ctx, def.Word)
	if err != nil {
		t.Fatalf("WordExists: %v", err)
	}
	if !exists {
		t.Error("WordExists = false after SaveWord")
	}
}

func TestRepo_SaveWord_SkipsUnknownCategories(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	seededTable(t, repo)

	// Only nouns are known to this caller.
	full, err := repo.CategoryTable(ctx)
	if err != nil {
		t.Fatalf("CategoryTable: %v", err)
	}
	nounID, _ := full.Lookup(domain.CategoryNoun)
	table := wordtype.NewCategoryTable(map[string]int{"noun": nounID})

	def := buildDefinition(testhelper.UniqueWord("skip"))
	res, err := repo.SaveWord(ctx, def, table)
	if err != nil {
		t.Fatalf("SaveWord: %v", err)
	}
	if res.Types != 1 || res.SkippedTypes != 1 {
		t.Errorf("SaveResult = %+v, want 1 stored and 1 skipped", res)
	}
	if n := testhelper.CountRows(t, pool, "word_type_links", "word_id = $1", res.WordID); n != 1 {
		t.Errorf("links = %d, want 1", n)
	}
}

func TestRepo_SaveWord_ReplacesPreviousGroups(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	table := seededTable(t, repo)

	word := testhelper.UniqueWord("again")
	first, err := repo.SaveWord(ctx, buildDefinition(word), table)
	if err != nil {
		t.Fatalf("first SaveWord: %v", err)
	}

	updated := domain.NewWordDefinition(word, "/əˈɡen/", []domain.WordTypeDefinition{
		{Category: domain.CategoryAdverb, Meanings: []domain.Meaning{{Text: "lại", Examples: []domain.Example{}}}},
	})
	second, err := repo.SaveWord(ctx, updated, table)
	if err != nil {
		t.Fatalf("second SaveWord: %v", err)
	}
	if second.WordID != first.WordID {
		t.Errorf("WordID changed on upsert: %d -> %d", first.WordID, second.WordID)
	}

	got, err := repo.GetWord(ctx, word)
	if err != nil {
		t.Fatalf("GetWord: %v", err)
	}
	if diff := cmp.Diff(updated, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("GetWord mismatch (-want +got):\n%s", diff)
	}
	if n := testhelper.CountRows(t, pool, "words", "word_normalized = $1", domain.NormalizeText(word)); n != 1 {
		t.Errorf("word rows = %d, want 1", n)
	}
}

func TestRepo_SaveWord_Invalid(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)

	_, err := repo.SaveWord(context.Background(), domain.NewWordDefinition("  ", "", nil), wordtype.CategoryTable{})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("SaveWord error = %v, want ErrValidation", err)
	}
}

func TestRepo_GetWord_NotFound(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)

	_, err := repo.GetWord(context.Background(), testhelper.UniqueWord("missing"))
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("GetWord error = %v, want ErrNotFound", err)
	}
}

func TestRepo_WordExists_Normalized(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)
	ctx := context.Background()
	table := seededTable(t, repo)

	word := testhelper.UniqueWord("self driving")
	if _, err := repo.SaveWord(ctx, buildDefinition(word), table); err != nil {
		t.Fatalf("SaveWord: %v", err)
	}

	exists, err := repo.WordExists(ctx, "  SELF   "+word[len("self "):])
	if err != nil {
		t.Fatalf("WordExists: %v", err)
	}
	if !exists {
		t.Error("WordExists should match case- and whitespace-insensitively")
	}
}
