package crawler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/dict-crawler/internal/domain"
	"github.com/heartmarshall/dict-crawler/pkg/ctxutil"
)

// Crawler processes word lists.
type Crawler struct {
	deps Deps
	cfg  Config
	log  *slog.Logger
}

// New creates a Crawler. Concurrency below one is treated as one.
func New(logger *slog.Logger, deps Deps, cfg Config) *Crawler {
	if cfg.Concurrency < 1 {
		cfg.Concurrency = 1
	}
	return &Crawler{
		deps: deps,
		cfg:  cfg,
		log:  logger.With("component", "crawler"),
	}
}

// Run processes words with at most Concurrency in flight. Individual word
// failures are counted in Stats. Once ctx is cancelled no further word is
// started, and words left unstarted are not counted. Run returns an error only
// when that leaves words unprocessed; the stats collected so far are returned
// with it.
func (c *Crawler) Run(ctx context.Context, words []string) (Stats, error) {
	if c.cfg.MaxWords > 0 && len(words) > c.cfg.MaxWords {
		words = words[:c.cfg.MaxWords]
	}

	runID := uuid.New()
	ctx = ctxutil.WithRunID(ctx, runID)
	start := time.Now()

	c.log.InfoContext(ctx, "crawl started",
		slog.Int("words", len(words)),
		slog.Int("concurrency", c.cfg.Concurrency),
		slog.Bool("skip_existing", c.cfg.SkipExisting),
	)

	rec := &statsRecorder{}

	var g errgroup.Group
	g.SetLimit(c.cfg.Concurrency)

	var started atomic.Int64
	for _, word := range words {
		if ctx.Err() != nil {
			break
		}
		// g.Go blocks until a slot frees up, which may be after cancellation.
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			started.Add(1)
			c.process(ctx, word, rec)
			return nil
		})
	}
	_ = g.Wait()

	var dispatchErr error
	if err := ctx.Err(); err != nil && int(started.Load()) < len(words) {
		dispatchErr = fmt.Errorf("crawl interrupted: %w", err)
	}

	stats := rec.snapshot()
	c.log.InfoContext(ctx, "crawl finished",
		slog.Int("total", stats.Total),
		slog.Int("saved", stats.Saved),
		slog.Int("not_found", stats.NotFound),
		slog.Int("parse_failed", stats.ParseFailed),
		slog.Int("mismatched", stats.Mismatched),
		slog.Int("skipped", stats.Skipped),
		slog.Int("fetch_failed", stats.FetchFailed),
		slog.Int("save_failed", stats.SaveFailed),
		slog.Int("skipped_blocks", stats.SkippedBlocks),
		slog.Duration("duration", time.Since(start)),
	)
	return stats, dispatchErr
}

func (c *Crawler) process(ctx context.Context, word string, rec *statsRecorder) {
	ctx = ctxutil.WithWord(ctx, word)
	start := time.Now()

	c.deps.Metrics.begin()
	defer c.deps.Metrics.end()

	outcome, skippedBlocks := c.processWord(ctx, word)

	rec.record(outcome, skippedBlocks)
	c.deps.Metrics.observe(outcome, skippedBlocks, time.Since(start))
}

func (c *Crawler) processWord(ctx context.Context, word string) (Outcome, int) {
	if c.cfg.SkipExisting && c.deps.Index != nil {
		exists, err := c.deps.Index.WordExists(ctx, word)
		if err != nil {
			c.log.WarnContext(ctx, "existence check failed, crawling anyway", slog.String("error", err.Error()))
		} else if exists {
			c.log.DebugContext(ctx, "word already stored")
			return OutcomeSkipped, 0
		}
	}

	page, err := c.deps.Fetcher.FetchHTML(ctx, word)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.log.InfoContext(ctx, "word not on site")
		return OutcomeNotFound, 0
	case err != nil:
		c.log.WarnContext(ctx, "fetch failed", slog.String("error", err.Error()))
		return OutcomeFetchFailed, 0
	}

	def, report, err := c.deps.Extractor.ExtractWithReport(page)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.log.InfoContext(ctx, "no entry on page")
		return OutcomeNotFound, 0
	case err != nil:
		c.log.WarnContext(ctx, "extract failed", slog.String("error", err.Error()))
		return OutcomeParseFailed, 0
	}
	skipped := len(report.SkippedBlocks)

	// Sites redirect unknown words to a nearby headword.
	if domain.NormalizeText(def.Word) != domain.NormalizeText(word) {
		c.log.InfoContext(ctx, "headword mismatch", slog.String("headword", def.Word))
		return OutcomeMismatched, skipped
	}

	if err := c.deps.Sink.Save(ctx, def); err != nil {
		c.log.ErrorContext(ctx, "save failed", slog.String("error", err.Error()))
		return OutcomeSaveFailed, skipped
	}

	c.log.DebugContext(ctx, "word saved",
		slog.Int("types", len(def.Types)),
		slog.Int("meanings", def.MeaningCount()),
		slog.Int("examples", def.ExampleCount()),
		slog.Int("skipped_blocks", skipped),
	)
	return OutcomeSaved, skipped
}
