// Command crawler fetches dictionary pages for a list of words, extracts the
// entries and stores them in PostgreSQL, or prints them as JSON lines on a
// dry run.
//
// Flags:
//
//	--config       path to YAML config (default: $CONFIG_PATH, then ./config.yaml)
//	--words        word list file, one word per line
//	--site         site profile (lacviet, cambridge)
//	--concurrency  words processed in parallel
//	--dry-run      print entries instead of writing to DB
//	--recrawl      fetch words that are already stored
//	--version      print version and exit
//
// Exit codes: 0 = success, 1 = error, 2 = finished with failed words.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/heartmarshall/dict-crawler/internal/app"
	"github.com/heartmarshall/dict-crawler/internal/config"
	"github.com/heartmarshall/dict-crawler/internal/extractor"
)

func main() {
	configFlag := flag.String("config", "", "path to YAML config file")
	wordsFlag := flag.String("words", "", "word list file (overrides crawler.words_path)")
	siteFlag := flag.String("site", "", "site profile: "+strings.Join(extractor.SiteNames(), ", "))
	concurrencyFlag := flag.Int("concurrency", 0, "words processed in parallel (overrides crawler.concurrency)")
	dryRunFlag := flag.Bool("dry-run", false, "print entries as JSON lines without writing to DB")
	recrawlFlag := flag.Bool("recrawl", false, "fetch words that are already stored")
	versionFlag := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *versionFlag {
		fmt.Println(app.BuildVersion())
		return
	}

	// CLI dry run must be known before validation so a missing DSN is accepted.
	if *dryRunFlag {
		_ = os.Setenv("CRAWLER_DRY_RUN", "true")
	}

	path := *configFlag
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	cfg, err := config.LoadFile(path)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// CLI flags override config.
	if *wordsFlag != "" {
		cfg.Crawler.WordsPath = *wordsFlag
	}
	if *siteFlag != "" {
		cfg.Crawler.Site = *siteFlag
	}
	if *recrawlFlag {
		cfg.Crawler.Recrawl = true
	}
	if *concurrencyFlag > 0 {
		cfg.Crawler.Concurrency = *concurrencyFlag
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	stats, err := app.Run(ctx, cfg, logger)
	if err != nil {
		logger.Error("crawl failed", slog.String("error", err.Error()))
		stop()
		os.Exit(1)
	}

	if stats.Failed() > 0 {
		logger.Warn("crawl completed with failures", slog.Int("failed", stats.Failed()))
		stop()
		os.Exit(2)
	}

	logger.Info("crawl completed successfully")
}
