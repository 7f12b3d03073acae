package crawler

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the crawl's Prometheus collectors.
type Metrics struct {
	Words         *prometheus.CounterVec
	WordDuration  prometheus.Histogram
	SkippedBlocks prometheus.Counter
	InFlight      prometheus.Gauge
}

// NewMetrics registers the crawl collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Words: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dict_crawler_words_total",
				Help: "Words processed, by outcome",
			},
			[]string{"outcome"},
		),
		WordDuration: f.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "dict_crawler_word_duration_seconds",
				Help:    "Time to fetch, extract and save one word",
				Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30},
			},
		),
		SkippedBlocks: f.NewCounter(
			prometheus.CounterOpts{
				Name: "dict_crawler_skipped_blocks_total",
				Help: "Part-of-speech blocks dropped for an unrecognized header",
			},
		),
		InFlight: f.NewGauge(
			prometheus.GaugeOpts{
				Name: "dict_crawler_words_in_flight",
				Help: "Words currently being processed",
			},
		),
	}
}

func (m *Metrics) observe(o Outcome, skippedBlocks int, d time.Duration) {
	if m == nil {
		return
	}
	m.Words.WithLabelValues(string(o)).Inc()
	m.WordDuration.Observe(d.Seconds())
	m.SkippedBlocks.Add(float64(skippedBlocks))
}

func (m *Metrics) begin() {
	if m != nil {
		m.InFlight.Inc()
	}
}

func (m *Metrics) end() {
	if m != nil {
		m.InFlight.Dec()
	}
}
