package slog

import (
	"log/slog"

	"github.com/fwojciec/sitepdf"
	"github.com/fwojciec/sitepdf/crawl"
)

// LogProgress returns a ProgressFunc that logs every crawl event with its
// session ID before passing it to next. A nil next only logs.
func LogProgress(logger *slog.Logger, next crawl.ProgressFunc) crawl.ProgressFunc {
	return func(e crawl.ProgressEvent) {
		l := logger.With("session", e.SessionID)
		switch e.Type {
		case crawl.ProgressVisiting:
			l.Debug("crawl visit", "url", e.URL)
		case crawl.ProgressAccepted:
			l.Info("crawl accept",
				"url", e.URL,
				"title", e.Title,
				"hash", e.ContentHash,
				"accepted", e.Accepted,
				"max", e.Max,
			)
		case crawl.ProgressSkipped:
			attrs := []any{"url", e.URL, "reason", e.Reason.String()}
			if e.Error != nil {
				attrs = append(attrs, "code", sitepdf.ErrorCode(e.Error), "err", e.Error)
			}
			l.Info("crawl skip", attrs...)
		case crawl.ProgressFinished:
			l.Info("crawl finished", "accepted", e.Accepted, "max", e.Max)
		}
		if next != nil {
			next(e)
		}
	}
}
