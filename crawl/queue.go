package crawl

import (
	"sync"

	"github.com/fwojciec/sitepdf"
	"github.com/fwojciec/sitepdf/bloom"
)

// Compile-time interface verification.
var _ sitepdf.Frontier = (*Queue)(nil)

// Queue is an in-memory FIFO frontier with Bloom filter deduplication.
// A URL the filter reports as seen is never queued again, whether its
// earlier attempt was accepted, rejected or failed.
// It is safe for concurrent use by multiple goroutines.
type Queue struct {
	mu    sync.Mutex
	seen  *bloom.Filter
	items []string
}

// NewQueue creates an empty Queue sized for n expected URLs with the given
// false positive rate for deduplication.
func NewQueue(n uint, fpRate float64) *Queue {
	return &Queue{seen: bloom.NewFilter(n, fpRate)}
}

// Push appends url to the back of the queue.
// Returns false if url has already been queued.
func (q *Queue) Push(url string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.seen.TestAndAdd(url) {
		return false
	}
	q.items = append(q.items, url)
	return true
}

// Pop removes and returns the front of the queue.
// The bool result is false if the queue is empty.
func (q *Queue) Pop() (string, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.items) == 0 {
		return "", false
	}
	url := q.items[0]
	q.items[0] = ""
	q.items = q.items[1:]
	return url, true
}

// Len returns the number of queued URLs.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}
