package main

import (
	"fmt"

	"github.com/fwojciec/sitepdf"
	"github.com/fwojciec/sitepdf/crawl"
	sitepdfslog "github.com/fwojciec/sitepdf/slog"
)

// Run executes the crawl command.
func (c *CrawlCmd) Run(deps *Dependencies) error {
	progress := func(e crawl.ProgressEvent) {
		switch e.Type {
		case crawl.ProgressVisiting:
			fmt.Fprintf(deps.Stdout, "Processing: %s\n", e.URL)
		case crawl.ProgressAccepted:
			fmt.Fprintf(deps.Stdout, "Saved: %s [%d/%d]\n", truncateTitle(e.Title, 20), e.Accepted, e.Max)
		case crawl.ProgressSkipped:
			if e.Reason == crawl.SkipPolicy {
				fmt.Fprintf(deps.Stdout, "Skipped: %s (%s)\n", truncateURL(e.URL, 60), e.Reason)
				return
			}
			fmt.Fprintf(deps.Stderr, "Error processing %s: %s\n", truncateURL(e.URL, 60), sitepdf.ErrorMessage(e.Error))
		}
	}

	results, err := deps.Crawler.Crawl(deps.Ctx, c.URL, deps.Config.Crawl.MaxPages, sitepdfslog.LogProgress(deps.Logger, progress))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitepdf.ErrorMessage(err))
		return err
	}

	if len(results) == 0 {
		fmt.Fprintln(deps.Stdout, "No pages accepted")
		return nil
	}

	if err := deps.Writer.WriteDocument(deps.Ctx, results); err != nil {
		fmt.Fprintf(deps.Stderr, "error writing %s: %s\n", c.OutputPath(), sitepdf.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Wrote %d pages to %s\n", len(results), c.OutputPath())
	return nil
}
