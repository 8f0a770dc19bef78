package sitepdf

import "context"

// DefaultUserAgent identifies the crawler to origin servers.
const DefaultUserAgent = "Mozilla/5.0 (compatible; MyScraper/1.0)"

// Fetcher retrieves raw HTML from URLs.
type Fetcher interface {
	// Fetch requests the URL and returns the response body.
	// Non-success statuses and network errors are reported as EUNAVAILABLE.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases fetcher resources.
	Close() error
}
