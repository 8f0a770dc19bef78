package prometheus_test

import (
	"context"
	"testing"

	"github.com/fwojciec/sitepdf"
	"github.com/fwojciec/sitepdf/mock"
	sitepdfprom "github.com/fwojciec/sitepdf/prometheus"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstrumentedScraper_Scrape(t *testing.T) {
	t.Parallel()

	t.Run("counts outcomes by site", func(t *testing.T) {
		t.Parallel()

		reg := prometheus.NewRegistry()
		inner := &mock.Scraper{
			ScrapeFn: func(_ context.Context, url string) (*sitepdf.ScrapeResult, error) {
				if url == "https://Example.com/missing" {
					return nil, sitepdf.Errorf(sitepdf.EUNAVAILABLE, "HTTP 404")
				}
				return &sitepdf.ScrapeResult{URL: url, Blocks: []sitepdf.Block{{Text: "a"}, {Text: "b"}}}, nil
			},
		}
		s := sitepdfprom.NewInstrumentedScraper(inner, reg)

		_, err := s.Scrape(context.Background(), "https://example.com/")
		require.NoError(t, err)
		_, err = s.Scrape(context.Background(), "https://example.com/docs")
		require.NoError(t, err)
		_, err = s.Scrape(context.Background(), "https://Example.com/missing")
		require.Error(t, err)

		metrics, err := reg.Gather()
		require.NoError(t, err)
		counts := map[string]float64{}
		for _, mf := range metrics {
			if mf.GetName() != "sitepdf_scrapes_total" {
				continue
			}
			for _, m := range mf.GetMetric() {
				labels := map[string]string{}
				for _, lp := range m.GetLabel() {
					labels[lp.GetName()] = lp.GetValue()
				}
				counts[labels["site"]+"/"+labels["outcome"]] = m.GetCounter().GetValue()
			}
		}

		assert.Equal(t, map[string]float64{
			"example.com/ok":          2,
			"example.com/unavailable": 1,
		}, counts)
		series, err := testutil.GatherAndCount(reg, "sitepdf_scrape_duration_seconds")
		require.NoError(t, err)
		assert.Equal(t, 2, series)
	})

	t.Run("counts extracted blocks", func(t *testing.T) {
		t.Parallel()

		reg := prometheus.NewRegistry()
		inner := &mock.Scraper{
			ScrapeFn: func(_ context.Context, url string) (*sitepdf.ScrapeResult, error) {
				return &sitepdf.ScrapeResult{URL: url, Blocks: make([]sitepdf.Block, 3)}, nil
			},
		}
		s := sitepdfprom.NewInstrumentedScraper(inner, reg)

		_, _ = s.Scrape(context.Background(), "https://example.com/a")
		_, _ = s.Scrape(context.Background(), "https://example.com/b")

		count, err := testutil.GatherAndCount(reg, "sitepdf_blocks_total")
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})
}

func TestSanitizeSite(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "example.com", sitepdfprom.SanitizeSite("https://EXAMPLE.com:8080/x"))
	assert.Equal(t, "unknown", sitepdfprom.SanitizeSite("not a url"))
	assert.Equal(t, "unknown", sitepdfprom.SanitizeSite("http://[::1"))
}
