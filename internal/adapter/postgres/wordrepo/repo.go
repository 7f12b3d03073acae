// Package wordrepo persists extracted dictionary entries: the headword row,
// one link per part-of-speech group, and the meanings and examples below it,
// with their document order kept in position columns.
package wordrepo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/dict-crawler/internal/adapter/postgres"
	"github.com/heartmarshall/dict-crawler/internal/domain"
	"github.com/heartmarshall/dict-crawler/internal/wordtype"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// viLabels are the Lạc Việt header labels stored next to each category.
var viLabels = map[domain.Category]string{
	domain.CategoryNoun:             "Danh từ",
	domain.CategoryVerb:             "Động từ",
	domain.CategoryTransitiveVerb:   "Ngoại động từ",
	domain.CategoryIntransitiveVerb: "Nội động từ",
	domain.CategoryAdjective:        "Tính từ",
	domain.CategoryAdverb:           "Phó từ",
	domain.CategoryPreposition:      "Giới từ",
	domain.CategoryConjunction:      "Liên từ",
	domain.CategoryInterjection:     "Thán từ",
	domain.CategoryArticle:          "Mạo từ",
	domain.CategoryPronoun:          "Đại từ",
	domain.CategoryAbbreviation:     "Viết tắt",
	domain.CategoryPrefix:           "Tiền tố",
}

// Repo provides dictionary persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
	txm  *postgres.TxManager
}

// New creates a new word repository.
func New(pool *pgxpool.Pool, txm *postgres.TxManager) *Repo {
	return &Repo{pool: pool, txm: txm}
}

// SaveResult reports what SaveWord stored.
type SaveResult struct {
	WordID       int
	Types        int
	SkippedTypes int
	Meanings     int
	Examples     int
}

// ---------------------------------------------------------------------------
// Categories
// ---------------------------------------------------------------------------

// SeedCategories inserts the canonical categories that are not yet stored.
// Returns the number of inserted rows.
func (r *Repo) SeedCategories(ctx context.Context) (int, error) {
	q := psql.Insert("word_types").Columns("label", "vi")
	for _, c := range domain.AllCategories() {
		q = q.Values(c.Label(), viLabels[c])
	}
	q = q.Suffix("ON CONFLICT (label) DO NOTHING")

	sql, args, err := q.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build seed categories: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sql, args...)
	if err != nil {
		return 0, postgres.MapError(err, "word_types", "seed")
	}
	return int(tag.RowsAffected()), nil
}

// CategoryTable returns the stored categories keyed by lower-cased label.
func (r *Repo) CategoryTable(ctx context.Context) (wordtype.CategoryTable, error) {
	sql, args, err := psql.Select("id", "label").From("word_types").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build category table: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "word_types", "all")
	}

	ids, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (labelID, error) {
		var l labelID
		err := row.Scan(&l.id, &l.label)
		return l, err
	})
	if err != nil {
		return nil, postgres.MapError(err, "word_types", "all")
	}

	m := make(map[string]int, len(ids))
	for _, l := range ids {
		m[l.label] = l.id
	}
	return wordtype.NewCategoryTable(m), nil
}

type labelID struct {
	id    int
	label string
}

// ---------------------------------------------------------------------------
// Words
// ---------------------------------------------------------------------------

// WordExists reports whether word is already stored.
func (r *Repo) WordExists(ctx context.Context, word string) (bool, error) {
	sql, args, err := psql.Select("1").
		From("words").
		Where(squirrel.Eq{"word_normalized": domain.NormalizeText(word)}).
		Prefix("SELECT EXISTS(").
		Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build word exists: %w", err)
	}

	var exists bool
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...).Scan(&exists); err != nil {
		return false, postgres.MapError(err, "word", word)
	}
	return exists, nil
}

// SaveWord stores def in one transaction. The headword row is upserted and
// its previous groups are replaced. Groups whose category is missing from
// table are skipped and counted in SaveResult.SkippedTypes.
func (r *Repo) SaveWord(ctx context.Context, def *domain.WordDefinition, table wordtype.CategoryTable) (SaveResult, error) {
	var res SaveResult
	if err := def.Validate(); err != nil {
		return res, err
	}

	err := r.txm.RunInTx(ctx, func(ctx context.Context) error {
		q := postgres.QuerierFromCtx(ctx, r.pool)

		wordID, err := r.upsertWord(ctx, q, def)
		if err != nil {
			return err
		}
		res.WordID = wordID

		del, args, err := psql.Delete("word_type_links").Where(squirrel.Eq{"word_id": wordID}).ToSql()
		if err != nil {
			return fmt.Errorf("build delete links: %w", err)
		}
		if _, err := q.Exec(ctx, del, args...); err != nil {
			return postgres.MapError(err, "word_type_links", wordID)
		}

		for _, t := range def.Types {
			typeID, ok := table.Lookup(t.Category)
			if !ok {
				res.SkippedTypes++
				continue
			}
			if err := r.insertType(ctx, q, wordID, typeID, res.Types, t, &res); err != nil {
				return err
			}
			res.Types++
		}
		return nil
	})
	if err != nil {
		return SaveResult{}, err
	}
	return res, nil
}

func (r *Repo) upsertWord(ctx context.Context, q postgres.Querier, def *domain.WordDefinition) (int, error) {
	sql, args, err := psql.Insert("words").
		Columns("word", "word_normalized", "pronunciation").
		Values(def.Word, domain.NormalizeText(def.Word), def.Pronunciation).
		Suffix(`ON CONFLICT (word_normalized) DO UPDATE
			SET word = EXCLUDED.word, pronunciation = EXCLUDED.pronunciation, updated_at = now()
			RETURNING id`).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build upsert word: %w", err)
	}

	var id int
	if err := q.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, postgres.MapError(err, "word", def.Word)
	}
	return id, nil
}

func (r *Repo) insertType(ctx context.Context, q postgres.Querier, wordID, typeID, position int, t domain.WordTypeDefinition, res *SaveResult) error {
	sql, args, err := psql.Insert("word_type_links").
		Columns("word_id", "word_type_id", "position").
		Values(wordID, typeID, position).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert link: %w", err)
	}

	var linkID int
	if err := q.QueryRow(ctx, sql, args...).Scan(&linkID); err != nil {
		return postgres.MapError(err, "word_type_link", wordID)
	}

	for i, m := range t.Meanings {
		meaningID, err := r.insertMeaning(ctx, q, linkID, i, m.Text)
		if err != nil {
			return err
		}
		res.Meanings++

		n, err := r.insertExamples(ctx, q, meaningID, m.Examples)
		if err != nil {
			return err
		}
		res.Examples += n
	}
	return nil
}

func (r *Repo) insertMeaning(ctx context.Context, q postgres.Querier, linkID, position int, text string) (int, error) {
	sql, args, err := psql.Insert("word_meanings").
		Columns("word_type_link_id", "meaning", "position").
		Values(linkID, text, position).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build insert meaning: %w", err)
	}

	var id int
	if err := q.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, postgres.MapError(err, "word_meaning", linkID)
	}
	return id, nil
}

// insertExamples queues every example of one meaning in a single pgx.Batch.
func (r *Repo) insertExamples(ctx context.Context, q postgres.Querier, meaningID int, examples []domain.Example) (int, error) {
	if len(examples) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for i, ex := range examples {
		sql, args, err := psql.Insert("examples").
			Columns("word_meaning_id", "sentence", "translation", "position").
			Values(meaningID, ex.Sentence, ex.Translation, i).
			ToSql()
		if err != nil {
			return 0, fmt.Errorf("build insert example: %w", err)
		}
		batch.Queue(sql, args...)
	}

	return sendBatchExec(ctx, q, batch, meaningID)
}

// sendBatchExec sends a batch of Exec statements and returns the total
// number of affected rows.
func sendBatchExec(ctx context.Context, q postgres.Querier, batch *pgx.Batch, key any) (int, error) {
	br := q.SendBatch(ctx, batch)
	defer br.Close()

	total := 0
	for i := 0; i < batch.Len(); i++ {
		tag, err := br.Exec()
		if err != nil {
			return total, postgres.MapError(err, "example", key)
		}
		total += int(tag.RowsAffected())
	}
	return total, nil
}
