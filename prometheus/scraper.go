// Package prometheus instruments sitepdf interfaces with Prometheus metrics.
package prometheus

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/fwojciec/sitepdf"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome label values.
const (
	OutcomeOK = "ok"
)

// Ensure InstrumentedScraper implements sitepdf.Scraper at compile time.
var _ sitepdf.Scraper = (*InstrumentedScraper)(nil)

// InstrumentedScraper counts scrapes by host and outcome and observes their
// duration.
type InstrumentedScraper struct {
	next     sitepdf.Scraper
	total    *prometheus.CounterVec
	duration *prometheus.HistogramVec
	blocks   prometheus.Counter
}

// NewInstrumentedScraper wraps next and registers its collectors with reg.
func NewInstrumentedScraper(next sitepdf.Scraper, reg prometheus.Registerer) *InstrumentedScraper {
	factory := promauto.With(reg)
	return &InstrumentedScraper{
		next: next,
		total: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sitepdf_scrapes_total",
				Help: "Total number of scrapes, labeled by site and outcome.",
			},
			[]string{"site", "outcome"},
		),
		duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "sitepdf_scrape_duration_seconds",
				Help:    "Histogram of scrape latencies, labeled by outcome.",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
			},
			[]string{"outcome"},
		),
		blocks: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "sitepdf_blocks_total",
				Help: "Total number of text blocks extracted.",
			},
		),
	}
}

// Scrape delegates to the wrapped scraper and records metrics.
func (s *InstrumentedScraper) Scrape(ctx context.Context, url string) (result *sitepdf.ScrapeResult, err error) {
	defer func(begin time.Time) {
		outcome := OutcomeOK
		if err != nil {
			outcome = sitepdf.ErrorCode(err)
		}
		s.total.WithLabelValues(SanitizeSite(url), outcome).Inc()
		s.duration.WithLabelValues(outcome).Observe(time.Since(begin).Seconds())
		if result != nil {
			s.blocks.Add(float64(len(result.Blocks)))
		}
	}(time.Now())
	return s.next.Scrape(ctx, url)
}

// SanitizeSite extracts a lowercase hostname from rawURL.
// It returns "unknown" if the URL is invalid.
func SanitizeSite(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Hostname() == "" {
		return "unknown"
	}
	return strings.ToLower(u.Hostname())
}
