package sitepdf

import "context"

// NoTitle is used for pages whose extracted title is empty.
const NoTitle = "No Title"

// ScrapeResult is the outcome of fetching, extracting and formatting one URL.
type ScrapeResult struct {
	URL    string
	Title  string
	Blocks []Block

	// Links holds same-host absolute URLs found on the page, in first-seen
	// order and without duplicates.
	Links []string
}

// Scraper fetches a URL and returns its extracted blocks and links.
// Implementations report fetch failures as EUNAVAILABLE and pages without
// extractable content as ENOTFOUND.
type Scraper interface {
	Scrape(ctx context.Context, url string) (*ScrapeResult, error)
}

// PageResult is one accepted crawl outcome. It is never modified after the
// crawler appends it to the session results.
type PageResult struct {
	URL    string
	Title  string
	Blocks []Block

	// ContentHash fingerprints the joined block text. It is informational
	// only; pages are deduplicated by URL.
	ContentHash string
}

// TextLength returns the length of the page's joined block text.
func (p *PageResult) TextLength() int {
	return TextLength(p.Blocks)
}

// AcceptancePolicy decides whether a scraped page is kept. Rejected pages
// are not recorded and their links are not explored.
type AcceptancePolicy interface {
	Accept(result *ScrapeResult) bool
}

// DocumentWriter writes accumulated page results to storage.
type DocumentWriter interface {
	WriteDocument(ctx context.Context, results []*PageResult) error
}
