package mock

import (
	"context"

	"github.com/fwojciec/sitepdf"
)

var _ sitepdf.Scraper = (*Scraper)(nil)

// Scraper is a mock implementation of sitepdf.Scraper.
type Scraper struct {
	ScrapeFn func(ctx context.Context, url string) (*sitepdf.ScrapeResult, error)
}

func (s *Scraper) Scrape(ctx context.Context, url string) (*sitepdf.ScrapeResult, error) {
	return s.ScrapeFn(ctx, url)
}

var _ sitepdf.AcceptancePolicy = (*AcceptancePolicy)(nil)

// AcceptancePolicy is a mock implementation of sitepdf.AcceptancePolicy.
type AcceptancePolicy struct {
	AcceptFn func(result *sitepdf.ScrapeResult) bool
}

func (p *AcceptancePolicy) Accept(result *sitepdf.ScrapeResult) bool {
	return p.AcceptFn(result)
}

var _ sitepdf.DocumentWriter = (*DocumentWriter)(nil)

// DocumentWriter is a mock implementation of sitepdf.DocumentWriter.
type DocumentWriter struct {
	WriteDocumentFn func(ctx context.Context, results []*sitepdf.PageResult) error
}

func (w *DocumentWriter) WriteDocument(ctx context.Context, results []*sitepdf.PageResult) error {
	return w.WriteDocumentFn(ctx, results)
}
