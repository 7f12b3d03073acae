package wordrepo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/dict-crawler/internal/adapter/postgres"
	"github.com/heartmarshall/dict-crawler/internal/domain"
)

// GetWord loads the stored entry for word, rebuilding the tree in position
// order. Returns domain.ErrNotFound if the word is not stored.
func (r *Repo) GetWord(ctx context.Context, word string) (*domain.WordDefinition, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := psql.Select("id", "word", "pronunciation").
		From("words").
		Where(squirrel.Eq{"word_normalized": domain.NormalizeText(word)}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get word: %w", err)
	}

	var (
		wordID int
		def    domain.WordDefinition
	)
	if err := q.QueryRow(ctx, sql, args...).Scan(&wordID, &def.Word, &def.Pronunciation); err != nil {
		return nil, postgres.MapError(err, "word", word)
	}

	rows, err := r.queryTree(ctx, q, wordID)
	if err != nil {
		return nil, err
	}

	def.Types = assemble(rows)
	return &def, nil
}

// treeRow is one row of the flattened link → meaning → example join.
// Meaning and example columns are NULL where the outer joins found nothing.
type treeRow struct {
	linkID      int
	label       string
	meaningID   *int
	meaning     *string
	sentence    *string
	translation *string
}

func (r *Repo) queryTree(ctx context.Context, q postgres.Querier, wordID int) ([]treeRow, error) {
	sql, args, err := psql.Select(
		"l.id", "t.label", "m.id", "m.meaning", "e.sentence", "e.translation",
	).
		From("word_type_links l").
		Join("word_types t ON t.id = l.word_type_id").
		LeftJoin("word_meanings m ON m.word_type_link_id = l.id").
		LeftJoin("examples e ON e.word_meaning_id = m.id").
		Where(squirrel.Eq{"l.word_id": wordID}).
		OrderBy("l.position", "m.position", "e.position").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build word tree: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "word_tree", wordID)
	}

	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (treeRow, error) {
		var tr treeRow
		err := row.Scan(&tr.linkID, &tr.label, &tr.meaningID, &tr.meaning, &tr.sentence, &tr.translation)
		return tr, err
	})
	if err != nil {
		return nil, postgres.MapError(err, "word_tree", wordID)
	}
	return out, nil
}

// assemble folds ordered join rows back into the nested tree.
func assemble(rows []treeRow) []domain.WordTypeDefinition {
	types := make([]domain.WordTypeDefinition, 0)
	lastLink, lastMeaning := -1, -1

	for _, row := range rows {
		if row.linkID != lastLink {
			category, _ := domain.CategoryFromLabel(row.label)
			types = append(types, domain.WordTypeDefinition{Category: category, Meanings: []domain.Meaning{}})
			lastLink, lastMeaning = row.linkID, -1
		}
		if row.meaningID == nil {
			continue
		}
		t := &types[len(types)-1]
		if *row.meaningID != lastMeaning {
			t.Meanings = append(t.Meanings, domain.Meaning{Text: *row.meaning, Examples: []domain.Example{}})
			lastMeaning = *row.meaningID
		}
		if row.sentence == nil {
			continue
		}
		m := &t.Meanings[len(t.Meanings)-1]
		m.Examples = append(m.Examples, domain.Example{Sentence: *row.sentence, Translation: *row.translation})
	}
	return types
}
