package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	return path
}

const validYAML = `
database:
  dsn: "postgres://u:p@localhost:5432/testdb"
  max_conns: 8
  min_conns: 1

log:
  level: "debug"
  format: "text"

crawler:
  words_path: "/data/words.txt"
  site: "cambridge"
  base_url: "https://dictionary.example.com/dictionary/english"
  concurrency: 8
  max_words: 100
  recrawl: true

http:
  timeout: "5s"
  retry_max: 2
  retry_wait_min: "100ms"
  retry_wait_max: "2s"
  rate_per_second: 5
  burst: 3

metrics:
  enabled: true
  addr: "127.0.0.1:9100"
`

func validConfig() *Config {
	return &Config{
		Database: DatabaseConfig{DSN: "postgres://u:p@localhost:5432/testdb", MaxConns: 10, MinConns: 2},
		Log:      LogConfig{Level: "info", Format: "json"},
		Crawler:  CrawlerConfig{WordsPath: "words.txt", Site: "lacviet", Concurrency: 4},
		HTTP: HTTPConfig{
			Timeout:       15 * time.Second,
			RetryMax:      3,
			RetryWaitMin:  500 * time.Millisecond,
			RetryWaitMax:  10 * time.Second,
			RatePerSecond: 2,
			Burst:         1,
		},
		Metrics: MetricsConfig{Addr: ":9090"},
	}
}

func TestLoad_ValidYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, validYAML)
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Database
	if cfg.Database.DSN != "postgres://u:p@localhost:5432/testdb" {
		t.Errorf("database.dsn = %q", cfg.Database.DSN)
	}
	if cfg.Database.MaxConns != 8 {
		t.Errorf("database.max_conns = %d, want 8", cfg.Database.MaxConns)
	}

	// Log
	if cfg.Log.Level != "debug" || cfg.Log.Format != "text" {
		t.Errorf("log = %+v, want debug/text", cfg.Log)
	}

	// Crawler
	if cfg.Crawler.Site != "cambridge" {
		t.Errorf("crawler.site = %q, want cambridge", cfg.Crawler.Site)
	}
	if cfg.Crawler.Concurrency != 8 {
		t.Errorf("crawler.concurrency = %d, want 8", cfg.Crawler.Concurrency)
	}
	if cfg.Crawler.MaxWords != 100 {
		t.Errorf("crawler.max_words = %d, want 100", cfg.Crawler.MaxWords)
	}
	if !cfg.Crawler.Recrawl {
		t.Error("crawler.recrawl = false, want true")
	}

	// HTTP
	if cfg.HTTP.Timeout != 5*time.Second {
		t.Errorf("http.timeout = %v, want 5s", cfg.HTTP.Timeout)
	}
	if cfg.HTTP.RetryWaitMin != 100*time.Millisecond {
		t.Errorf("http.retry_wait_min = %v, want 100ms", cfg.HTTP.RetryWaitMin)
	}
	if cfg.HTTP.RatePerSecond != 5 || cfg.HTTP.Burst != 3 {
		t.Errorf("http rate = %v/%d, want 5/3", cfg.HTTP.RatePerSecond, cfg.HTTP.Burst)
	}

	// Metrics
	if !cfg.Metrics.Enabled || cfg.Metrics.Addr != "127.0.0.1:9100" {
		t.Errorf("metrics = %+v", cfg.Metrics)
	}
}

func TestLoad_ENVOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, validYAML)
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("CRAWLER_CONCURRENCY", "2")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Crawler.Concurrency != 2 {
		t.Errorf("crawler.concurrency = %d, want 2 (ENV override)", cfg.Crawler.Concurrency)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("log.level = %q, want warn (ENV override)", cfg.Log.Level)
	}
}

func TestLoad_RecrawlFromYAML(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want bool
	}{
		{name: "explicit true", yaml: "crawler:\n  recrawl: true\n", want: true},
		{name: "explicit false", yaml: "crawler:\n  recrawl: false\n", want: false},
		{name: "absent", yaml: "crawler:\n  site: lacviet\n", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeYAML(t, t.TempDir(), "database:\n  dsn: postgres://u@localhost/db\n"+tt.yaml)
			t.Setenv("CONFIG_PATH", path)

			cfg, err := Load()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cfg.Crawler.Recrawl != tt.want {
				t.Errorf("crawler.recrawl = %v, want %v", cfg.Crawler.Recrawl, tt.want)
			}
		})
	}
}

func TestLoad_NoFile_ENVOnly(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("DATABASE_DSN", "postgres://env@localhost/db")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Database.DSN != "postgres://env@localhost/db" {
		t.Errorf("database.dsn = %q", cfg.Database.DSN)
	}
	// Defaults
	if cfg.Crawler.Site != "lacviet" {
		t.Errorf("crawler.site = %q, want default lacviet", cfg.Crawler.Site)
	}
	if cfg.Crawler.Concurrency != 4 {
		t.Errorf("crawler.concurrency = %d, want default 4", cfg.Crawler.Concurrency)
	}
	if cfg.Crawler.Recrawl {
		t.Error("crawler.recrawl = true, want default false")
	}
	if cfg.HTTP.Timeout != 15*time.Second {
		t.Errorf("http.timeout = %v, want default 15s", cfg.HTTP.Timeout)
	}
	if cfg.HTTP.RatePerSecond != 2 {
		t.Errorf("http.rate_per_second = %v, want default 2", cfg.HTTP.RatePerSecond)
	}
	if cfg.Log.Format != "json" {
		t.Errorf("log.format = %q, want default json", cfg.Log.Format)
	}
}

func TestLoad_DryRunWithoutDSN(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("DATABASE_DSN", "")
	t.Setenv("CRAWLER_DRY_RUN", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.Crawler.DryRun {
		t.Error("crawler.dry_run = false, want true")
	}
}

func TestLoad_ExplicitPathNotFound(t *testing.T) {
	t.Setenv("CONFIG_PATH", "/nonexistent/config.yaml")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for explicit missing config path")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, "crawler: [unclosed")
	t.Setenv("CONFIG_PATH", path)

	if _, err := Load(); err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "dsn required", mutate: func(c *Config) { c.Database.DSN = "" }, wantErr: "database.dsn"},
		{name: "dsn optional on dry run", mutate: func(c *Config) { c.Database.DSN = ""; c.Crawler.DryRun = true }},
		{name: "min conns above max", mutate: func(c *Config) { c.Database.MinConns = 20 }, wantErr: "min_conns"},
		{name: "bad log level", mutate: func(c *Config) { c.Log.Level = "trace" }, wantErr: "log: level"},
		{name: "bad log format", mutate: func(c *Config) { c.Log.Format = "xml" }, wantErr: "log: format"},
		{name: "upper-case log level", mutate: func(c *Config) { c.Log.Level = "DEBUG" }},
		{name: "empty site", mutate: func(c *Config) { c.Crawler.Site = "" }, wantErr: "crawler: site"},
		{name: "zero concurrency", mutate: func(c *Config) { c.Crawler.Concurrency = 0 }, wantErr: "concurrency"},
		{name: "huge concurrency", mutate: func(c *Config) { c.Crawler.Concurrency = 65 }, wantErr: "concurrency"},
		{name: "max concurrency", mutate: func(c *Config) { c.Crawler.Concurrency = 64 }},
		{name: "negative max words", mutate: func(c *Config) { c.Crawler.MaxWords = -1 }, wantErr: "max_words"},
		{name: "zero timeout", mutate: func(c *Config) { c.HTTP.Timeout = 0 }, wantErr: "http: timeout"},
		{name: "negative retries", mutate: func(c *Config) { c.HTTP.RetryMax = -1 }, wantErr: "retry_max"},
		{name: "retry waits inverted", mutate: func(c *Config) { c.HTTP.RetryWaitMin = time.Minute }, wantErr: "retry_wait_min"},
		{name: "negative rate", mutate: func(c *Config) { c.HTTP.RatePerSecond = -1 }, wantErr: "rate_per_second"},
		{name: "zero burst with rate", mutate: func(c *Config) { c.HTTP.Burst = 0 }, wantErr: "burst"},
		{name: "unlimited rate ignores burst", mutate: func(c *Config) { c.HTTP.RatePerSecond = 0; c.HTTP.Burst = 0 }},
		{name: "metrics without addr", mutate: func(c *Config) { c.Metrics.Enabled = true; c.Metrics.Addr = "" }, wantErr: "metrics.addr"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to contain %q", err.Error(), tt.wantErr)
			}
		})
	}
}
