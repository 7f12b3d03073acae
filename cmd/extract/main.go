// Command extract runs the entry extractor on a saved HTML page and prints
// the result as indented JSON. Useful for checking a site profile against a
// page without crawling.
//
// Usage:
//
//	extract [--site lacviet] page.html
//
// Reads stdin when no file is given. The bytes are decoded by the charset
// the page declares (byte order mark or <meta>), falling back to detection.
//
// Exit codes: 0 = entry printed, 1 = error, 2 = no entry on page.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/heartmarshall/dict-crawler/internal/app"
	"github.com/heartmarshall/dict-crawler/internal/app/crawler"
	"github.com/heartmarshall/dict-crawler/internal/config"
	"github.com/heartmarshall/dict-crawler/internal/domain"
	"github.com/heartmarshall/dict-crawler/internal/extractor"
	"github.com/heartmarshall/dict-crawler/internal/htmldoc"
)

func main() {
	siteFlag := flag.String("site", "lacviet", "site profile: "+strings.Join(extractor.SiteNames(), ", "))
	verboseFlag := flag.Bool("v", false, "log skipped blocks and debug details")
	flag.Parse()

	level := "warn"
	if *verboseFlag {
		level = "debug"
	}
	logger := app.NewLogger(config.LogConfig{Level: level, Format: "text"})

	os.Exit(run(*siteFlag, flag.Arg(0), os.Stdout, logger))
}

func run(siteName, path string, out io.Writer, logger *slog.Logger) int {
	site, err := extractor.SiteByName(siteName)
	if err != nil {
		logger.Error("unknown site", slog.String("error", err.Error()))
		return 1
	}

	raw, err := readInput(path)
	if err != nil {
		logger.Error("read page", slog.String("error", err.Error()))
		return 1
	}

	page, err := htmldoc.Decode(raw, "")
	if err != nil {
		logger.Error("decode page", slog.String("error", err.Error()))
		return 1
	}

	def, report, err := extractor.NewSiteExtractor(site, logger).ExtractWithReport(page)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		logger.Warn("no entry on page")
		return 2
	case err != nil:
		logger.Error("extract", slog.String("error", err.Error()))
		return 1
	}

	for _, b := range report.SkippedBlocks {
		logger.Info("skipped block", slog.Int("index", b.Index), slog.String("id", b.ID), slog.String("label", b.Label))
	}

	enc := json.NewEncoder(out)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(crawler.EncodeDefinition(def)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}
