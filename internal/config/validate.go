package config

import (
	"fmt"
	"slices"
	"strings"
)

var (
	validLogLevels  = []string{"debug", "info", "warn", "error"}
	validLogFormats = []string{"json", "text"}
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if !c.Crawler.DryRun && c.Database.DSN == "" {
		return fmt.Errorf("database.dsn is required unless crawler.dry_run is set")
	}
	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns (%d) must be <= max_conns (%d)", c.Database.MinConns, c.Database.MaxConns)
	}

	if err := c.Log.validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	if err := c.Crawler.validate(); err != nil {
		return fmt.Errorf("crawler: %w", err)
	}
	if err := c.HTTP.validate(); err != nil {
		return fmt.Errorf("http: %w", err)
	}
	if c.Metrics.Enabled && c.Metrics.Addr == "" {
		return fmt.Errorf("metrics.addr is required when metrics are enabled")
	}

	return nil
}

func (l *LogConfig) validate() error {
	if !slices.Contains(validLogLevels, strings.ToLower(l.Level)) {
		return fmt.Errorf("level must be one of %v (got %q)", validLogLevels, l.Level)
	}
	if !slices.Contains(validLogFormats, strings.ToLower(l.Format)) {
		return fmt.Errorf("format must be one of %v (got %q)", validLogFormats, l.Format)
	}
	return nil
}

func (c *CrawlerConfig) validate() error {
	if c.Site == "" {
		return fmt.Errorf("site is required")
	}
	if c.Concurrency < 1 || c.Concurrency > 64 {
		return fmt.Errorf("concurrency must be between 1 and 64 (got %d)", c.Concurrency)
	}
	if c.MaxWords < 0 {
		return fmt.Errorf("max_words must be >= 0 (got %d)", c.MaxWords)
	}
	return nil
}

func (h *HTTPConfig) validate() error {
	if h.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", h.Timeout)
	}
	if h.RetryMax < 0 {
		return fmt.Errorf("retry_max must be >= 0 (got %d)", h.RetryMax)
	}
	if h.RetryWaitMin > h.RetryWaitMax {
		return fmt.Errorf("retry_wait_min (%v) must be <= retry_wait_max (%v)", h.RetryWaitMin, h.RetryWaitMax)
	}
	if h.RatePerSecond < 0 {
		return fmt.Errorf("rate_per_second must be >= 0 (got %v)", h.RatePerSecond)
	}
	if h.RatePerSecond > 0 && h.Burst < 1 {
		return fmt.Errorf("burst must be >= 1 when rate_per_second is set (got %d)", h.Burst)
	}
	return nil
}
