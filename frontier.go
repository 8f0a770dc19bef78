package sitepdf

import "context"

// Frontier is the ordered queue of URLs awaiting a fetch attempt.
// Pop returns URLs in the order they were pushed. A URL is queued at most
// once per crawl, so each URL gets a single fetch attempt.
type Frontier interface {
	// Push queues url. Returns false if url was already queued.
	Push(url string) bool

	// Pop returns the oldest URL. The bool result is false if the frontier is empty.
	Pop() (string, bool)

	Len() int
}

// VisitedSet records URLs that produced an accepted page.
type VisitedSet interface {
	// Add records url. Returns false if it was already present.
	Add(url string) bool

	Has(url string) bool

	Len() int
}

// Pacer spaces out requests to an origin server.
type Pacer interface {
	// Wait blocks until the next request to host may be issued.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, host string) error
}
