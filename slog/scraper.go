package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/sitepdf"
)

// Ensure LoggingScraper implements sitepdf.Scraper.
var _ sitepdf.Scraper = (*LoggingScraper)(nil)

// LoggingScraper wraps a Scraper with logging.
type LoggingScraper struct {
	next   sitepdf.Scraper
	logger *slog.Logger
}

// NewLoggingScraper creates a new LoggingScraper.
func NewLoggingScraper(next sitepdf.Scraper, logger *slog.Logger) *LoggingScraper {
	return &LoggingScraper{next: next, logger: logger}
}

// Scrape delegates to the wrapped scraper and logs the outcome.
func (s *LoggingScraper) Scrape(ctx context.Context, url string) (result *sitepdf.ScrapeResult, err error) {
	defer func(begin time.Time) {
		attrs := []any{"url", url, "duration", time.Since(begin)}
		if result != nil {
			attrs = append(attrs,
				"title", result.Title,
				"blocks", len(result.Blocks),
				"links", len(result.Links),
			)
		}
		if err != nil {
			attrs = append(attrs, "code", sitepdf.ErrorCode(err), "err", err)
		}
		s.logger.Info("scrape", attrs...)
	}(time.Now())
	return s.next.Scrape(ctx, url)
}

// Ensure LoggingDocumentWriter implements sitepdf.DocumentWriter.
var _ sitepdf.DocumentWriter = (*LoggingDocumentWriter)(nil)

// LoggingDocumentWriter wraps a DocumentWriter with logging.
type LoggingDocumentWriter struct {
	next   sitepdf.DocumentWriter
	logger *slog.Logger
}

// NewLoggingDocumentWriter creates a new LoggingDocumentWriter.
func NewLoggingDocumentWriter(next sitepdf.DocumentWriter, logger *slog.Logger) *LoggingDocumentWriter {
	return &LoggingDocumentWriter{next: next, logger: logger}
}

// WriteDocument delegates to the wrapped writer and logs the outcome.
func (w *LoggingDocumentWriter) WriteDocument(ctx context.Context, results []*sitepdf.PageResult) (err error) {
	defer func(begin time.Time) {
		w.logger.Info("write document",
			"pages", len(results),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.WriteDocument(ctx, results)
}
