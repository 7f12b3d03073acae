package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/dict-crawler/internal/domain"
)

// UniqueWord returns prefix plus a short random suffix, so parallel tests
// sharing one database never collide on words.word_normalized.
func UniqueWord(prefix string) string {
	return prefix + "-" + uuid.New().String()[:8]
}

// SeedCategories inserts every canonical category (idempotent) and returns
// the label → id mapping as stored.
func SeedCategories(t *testing.T, pool *pgxpool.Pool) map[string]int {
	t.Helper()
	ctx := context.Background()

	for _, c := range domain.AllCategories() {
		_, err := pool.Exec(ctx,
			`INSERT INTO word_types (label) VALUES ($1) ON CONFLICT (label) DO NOTHING`,
			c.Label(),
		)
		if err != nil {
			t.Fatalf("testhelper: SeedCategories insert %s: %v", c, err)
		}
	}

	rows, err := pool.Query(ctx, `SELECT id, label FROM word_types`)
	if err != nil {
		t.Fatalf("testhelper: SeedCategories select: %v", err)
	}
	defer rows.Close()

	out := make(map[string]int)
	for rows.Next() {
		var (
			id    int
			label string
		)
		if err := rows.Scan(&id, &label); err != nil {
			t.Fatalf("testhelper: SeedCategories scan: %v", err)
		}
		out[label] = id
	}
	if err := rows.Err(); err != nil {
		t.Fatalf("testhelper: SeedCategories rows: %v", err)
	}
	return out
}

// CountRows returns the number of rows in table matching where.
// table and where come from test code, never from input.
func CountRows(t *testing.T, pool *pgxpool.Pool, table, where string, args ...any) int {
	t.Helper()
	var n int
	err := pool.QueryRow(context.Background(),
		`SELECT count(*) FROM `+table+` WHERE `+where, args...,
	).Scan(&n)
	if err != nil {
		t.Fatalf("testhelper: CountRows %s: %v", table, err)
	}
	return n
}
