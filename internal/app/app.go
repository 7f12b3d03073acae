package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/dict-crawler/internal/adapter/postgres"
	"github.com/heartmarshall/dict-crawler/internal/adapter/postgres/wordrepo"
	"github.com/heartmarshall/dict-crawler/internal/adapter/provider/dictsite"
	"github.com/heartmarshall/dict-crawler/internal/app/crawler"
	"github.com/heartmarshall/dict-crawler/internal/config"
	"github.com/heartmarshall/dict-crawler/internal/extractor"
)

// Run executes one crawl: it reads the word list, builds the site extractor
// and HTTP provider, prepares the sink (PostgreSQL, or JSON lines on a dry
// run) and drives the crawler. The metrics endpoint, when enabled, lives for
// the duration of the run.
func Run(ctx context.Context, cfg *config.Config, logger *slog.Logger) (crawler.Stats, error) {
	logger.InfoContext(ctx, "starting crawl",
		slog.String("version", BuildVersion()),
		slog.String("site", cfg.Crawler.Site),
		slog.Bool("dry_run", cfg.Crawler.DryRun),
	)

	site, err := extractor.SiteByName(cfg.Crawler.Site)
	if err != nil {
		return crawler.Stats{}, err
	}

	baseURL := cfg.Crawler.BaseURL
	if baseURL == "" {
		baseURL = dictsite.DefaultBaseURLs[site.Name]
	}
	if baseURL == "" {
		return crawler.Stats{}, fmt.Errorf("no base URL for site %q", site.Name)
	}

	words, err := readWords(cfg.Crawler.WordsPath)
	if err != nil {
		return crawler.Stats{}, err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := crawler.NewMetrics(reg)

	if cfg.Metrics.Enabled {
		stop := serveMetrics(cfg.Metrics.Addr, reg, logger)
		defer stop()
	}

	deps := crawler.Deps{
		Fetcher:   dictsite.NewProvider(baseURL, cfg.HTTP, logger),
		Extractor: extractor.NewSiteExtractor(site, logger),
		Metrics:   metrics,
	}

	if cfg.Crawler.DryRun {
		out, closeOut, err := openOutput(cfg.Crawler.OutputPath)
		if err != nil {
			return crawler.Stats{}, err
		}
		defer closeOut()
		deps.Sink = crawler.NewJSONLinesSink(out)
	} else {
		store, closeStore, err := openStore(ctx, cfg.Database, cfg.Crawler.Concurrency, logger)
		if err != nil {
			return crawler.Stats{}, err
		}
		defer closeStore()

		table, err := store.CategoryTable(ctx)
		if err != nil {
			return crawler.Stats{}, fmt.Errorf("load categories: %w", err)
		}
		deps.Sink = crawler.NewRepoSink(store, table, logger)
		deps.Index = store
	}

	c := crawler.New(logger, deps, crawler.ConfigFrom(cfg.Crawler))
	return c.Run(ctx, words)
}

func readWords(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()
	return crawler.ReadWordList(f)
}

func openOutput(path string) (io.Writer, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create output: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}

// openStore connects, migrates and seeds the dictionary database.
func openStore(ctx context.Context, cfg config.DatabaseConfig, workers int, logger *slog.Logger) (*wordrepo.Repo, func(), error) {
	if err := postgres.Migrate(ctx, cfg.DSN, logger); err != nil {
		return nil, nil, err
	}

	pool, err := postgres.NewPool(ctx, cfg, workers)
	if err != nil {
		return nil, nil, fmt.Errorf("connect to database: %w", err)
	}

	repo := wordrepo.New(pool, postgres.NewTxManager(pool))
	seeded, err := repo.SeedCategories(ctx)
	if err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("seed categories: %w", err)
	}
	if seeded > 0 {
		logger.InfoContext(ctx, "seeded categories", slog.Int("count", seeded))
	}

	return repo, pool.Close, nil
}

func serveMetrics(addr string, reg *prometheus.Registry, logger *slog.Logger) func() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		logger.Info("metrics server listening", slog.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", slog.String("error", err.Error()))
		}
	}()

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}
}
