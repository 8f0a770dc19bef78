package crawl

import (
	"context"
	"strings"

	"github.com/fwojciec/sitepdf"
)

var _ sitepdf.Scraper = (*Pipeline)(nil)

// Pipeline scrapes a page locally: fetch, extract, format, resolve links.
type Pipeline struct {
	Fetcher   sitepdf.Fetcher
	Extractor sitepdf.Extractor
	Formatter sitepdf.BlockFormatter
	Links     sitepdf.LinkResolver
}

// Scrape fetches url and returns its blocks and same-host links.
// Fetch failures are EUNAVAILABLE; pages without content are ENOTFOUND.
// A link resolution failure leaves Links empty without failing the page.
func (p *Pipeline) Scrape(ctx context.Context, url string) (*sitepdf.ScrapeResult, error) {
	html, err := p.Fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, withCode(err, sitepdf.EUNAVAILABLE)
	}

	extracted, err := p.Extractor.Extract(html, url)
	if err != nil {
		return nil, withCode(err, sitepdf.ENOTFOUND)
	}

	blocks, err := p.Formatter.Format(extracted.ContentHTML)
	if err != nil {
		return nil, withCode(err, sitepdf.ENOTFOUND)
	}
	if len(blocks) == 0 {
		return nil, sitepdf.Errorf(sitepdf.ENOTFOUND, "no content found at %s", url)
	}

	links, err := p.Links.ResolveLinks(html, url)
	if err != nil {
		links = nil
	}

	title := strings.TrimSpace(extracted.Title)
	if title == "" {
		title = sitepdf.NoTitle
	}

	return &sitepdf.ScrapeResult{
		URL:    url,
		Title:  title,
		Blocks: blocks,
		Links:  links,
	}, nil
}

// withCode keeps application errors as they are and reports any other
// error under code.
func withCode(err error, code string) error {
	if sitepdf.ErrorCode(err) != sitepdf.EINTERNAL {
		return err
	}
	return sitepdf.Errorf(code, "%v", err)
}
