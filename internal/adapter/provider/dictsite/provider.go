package dictsite

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/hashicorp/go-retryablehttp"
	"golang.org/x/time/rate"

	"github.com/heartmarshall/dict-crawler/internal/config"
	"github.com/heartmarshall/dict-crawler/internal/domain"
	"github.com/heartmarshall/dict-crawler/internal/htmldoc"
)

// DefaultBaseURLs holds the page URL prefix of each built-in site.
var DefaultBaseURLs = map[string]string{
	"lacviet":   "http://tratu.coviet.vn/hoc-tieng-anh/tu-dien/lac-viet/A-V",
	"cambridge": "https://dictionary.cambridge.org/dictionary/english",
}

// Provider fetches raw dictionary pages over HTTP.
type Provider struct {
	baseURL string
	client  *resty.Client
	limiter *rate.Limiter
	log     *slog.Logger
}

// NewProvider creates a Provider for pages under baseURL. Requests are paced
// by cfg.RatePerSecond (0 means unlimited) and retried by go-retryablehttp on
// network errors, 429 and 5xx responses.
func NewProvider(baseURL string, cfg config.HTTPConfig, logger *slog.Logger) *Provider {
	log := logger.With("adapter", "dictsite")

	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = cfg.RetryMax
	retryClient.RetryWaitMin = cfg.RetryWaitMin
	retryClient.RetryWaitMax = cfg.RetryWaitMax
	retryClient.HTTPClient.Timeout = cfg.Timeout
	retryClient.Logger = log
	// Hand the last response back instead of an error so the caller sees its status.
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	client := resty.NewWithClient(retryClient.StandardClient()).
		SetHeader("User-Agent", cfg.UserAgent).
		SetHeader("Accept", "text/html,application/xhtml+xml")

	limiter := rate.NewLimiter(rate.Inf, 0)
	if cfg.RatePerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RatePerSecond), cfg.Burst)
	}

	return &Provider{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		limiter: limiter,
		log:     log,
	}
}

// Endpoint returns the page URL for word: whitespace-separated tokens are
// path-escaped and joined with "+", e.g. "self driving" -> base/self+driving.html.
func Endpoint(base, word string) string {
	tokens := strings.Fields(word)
	for i, tok := range tokens {
		tokens[i] = url.PathEscape(tok)
	}
	return strings.TrimRight(base, "/") + "/" + strings.Join(tokens, "+") + ".html"
}

// FetchHTML returns the page for word decoded to UTF-8.
// Returns domain.ErrNotFound if the site answers 404.
func (p *Provider) FetchHTML(ctx context.Context, word string) (string, error) {
	if strings.TrimSpace(word) == "" {
		return "", domain.NewValidationError("word", "required")
	}
	if err := p.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("dictsite: wait for rate limit: %w", err)
	}

	reqURL := Endpoint(p.baseURL, word)
	p.log.DebugContext(ctx, "dictsite request", slog.String("url", reqURL))

	resp, err := p.client.R().SetContext(ctx).Get(reqURL)
	if err != nil {
		p.log.ErrorContext(ctx, "dictsite request failed", slog.String("url", reqURL), slog.String("error", err.Error()))
		return "", fmt.Errorf("dictsite: request failed: %w", err)
	}

	switch resp.StatusCode() {
	case http.StatusOK:
	case http.StatusNotFound:
		return "", domain.ErrNotFound
	default:
		return "", fmt.Errorf("dictsite: unexpected status %d", resp.StatusCode())
	}

	page, err := htmldoc.Decode(resp.Body(), resp.Header().Get("Content-Type"))
	if err != nil {
		return "", fmt.Errorf("dictsite: decode body: %w", err)
	}

	p.log.DebugContext(ctx, "dictsite response",
		slog.Int("status", resp.StatusCode()),
		slog.Int("bytes", len(resp.Body())),
		slog.Duration("duration", resp.Time()),
	)

	return page, nil
}
