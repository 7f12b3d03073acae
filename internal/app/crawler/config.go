package crawler

import "github.com/heartmarshall/dict-crawler/internal/config"

// Config holds crawl run settings.
type Config struct {
	Concurrency  int
	MaxWords     int
	SkipExisting bool
}

// ConfigFrom picks the crawl run settings out of the application config.
func ConfigFrom(cfg config.CrawlerConfig) Config {
	return Config{
		Concurrency:  cfg.Concurrency,
		MaxWords:     cfg.MaxWords,
		SkipExisting: !cfg.Recrawl,
	}
}
