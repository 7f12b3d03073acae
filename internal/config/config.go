package config

import "time"

// Config is the root application configuration.
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
	Crawler  CrawlerConfig  `yaml:"crawler"`
	HTTP     HTTPConfig     `yaml:"http"`
	Metrics  MetricsConfig  `yaml:"metrics"`
}

// DatabaseConfig holds PostgreSQL connection settings.
// DSN may be empty for dry runs, which never touch the database.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CrawlerConfig holds crawl run settings.
type CrawlerConfig struct {
	WordsPath   string `yaml:"words_path"  env:"CRAWLER_WORDS_PATH"  env-default:"words.txt"`
	Site        string `yaml:"site"        env:"CRAWLER_SITE"        env-default:"lacviet"`
	BaseURL     string `yaml:"base_url"    env:"CRAWLER_BASE_URL"`
	Concurrency int    `yaml:"concurrency" env:"CRAWLER_CONCURRENCY" env-default:"4"`
	MaxWords    int    `yaml:"max_words"   env:"CRAWLER_MAX_WORDS"   env-default:"0"`
	// Recrawl fetches words that are already stored. Off by default, so a
	// resumed run skips them. Inverted so that the default is the zero value:
	// cleanenv applies env-default to any field a YAML file leaves at zero.
	Recrawl     bool   `yaml:"recrawl"     env:"CRAWLER_RECRAWL"     env-default:"false"`
	DryRun      bool   `yaml:"dry_run"     env:"CRAWLER_DRY_RUN"     env-default:"false"`
	// OutputPath is the JSON-lines file written on dry runs; empty means stdout.
	OutputPath  string `yaml:"output_path" env:"CRAWLER_OUTPUT_PATH"`
}

// HTTPConfig holds settings for fetching dictionary pages.
type HTTPConfig struct {
	Timeout       time.Duration `yaml:"timeout"         env:"HTTP_TIMEOUT"         env-default:"15s"`
	RetryMax      int           `yaml:"retry_max"       env:"HTTP_RETRY_MAX"       env-default:"3"`
	RetryWaitMin  time.Duration `yaml:"retry_wait_min"  env:"HTTP_RETRY_WAIT_MIN"  env-default:"500ms"`
	RetryWaitMax  time.Duration `yaml:"retry_wait_max"  env:"HTTP_RETRY_WAIT_MAX"  env-default:"10s"`
	RatePerSecond float64       `yaml:"rate_per_second" env:"HTTP_RATE_PER_SECOND" env-default:"2"`
	Burst         int           `yaml:"burst"           env:"HTTP_BURST"           env-default:"1"`
	UserAgent     string        `yaml:"user_agent"      env:"HTTP_USER_AGENT"      env-default:"dict-crawler/1.0"`
}

// MetricsConfig holds Prometheus exposition settings.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled" env:"METRICS_ENABLED" env-default:"false"`
	Addr    string `yaml:"addr"    env:"METRICS_ADDR"    env-default:":9090"`
}
