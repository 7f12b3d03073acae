package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey string

const (
	runIDKey ctxKey = "run_id"
	wordKey  ctxKey = "word"
)

// WithRunID stores the crawl run ID in the context.
func WithRunID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, runIDKey, id)
}

// RunIDFromCtx extracts the crawl run ID from the context.
// Returns uuid.Nil and false if the value is missing, nil UUID, or wrong type.
func RunIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(runIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// WithWord stores the word being processed in the context.
func WithWord(ctx context.Context, word string) context.Context {
	return context.WithValue(ctx, wordKey, word)
}

// WordFromCtx extracts the word being processed from the context.
// Returns an empty string if absent.
func WordFromCtx(ctx context.Context) string {
	w, _ := ctx.Value(wordKey).(string)
	return w
}
