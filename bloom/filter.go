// Package bloom provides probabilistic URL deduplication for the crawl
// frontier.
package bloom

import (
	"sync"

	"github.com/bits-and-blooms/bloom/v3"
)

// Default sizing for a single crawl. The rate is kept low because a false
// positive silently drops a link that was never queued.
const (
	DefaultExpectedURLs      = 10000
	DefaultFalsePositiveRate = 1e-6
)

// Filter remembers URLs in constant memory. It answers "definitely new" or
// "probably seen"; it never forgets a URL it was given.
// It is safe for concurrent use by multiple goroutines.
type Filter struct {
	mu sync.Mutex
	f  *bloom.BloomFilter
}

// NewFilter creates a Filter sized for n expected URLs with the given false
// positive rate. A zero n uses DefaultExpectedURLs.
func NewFilter(n uint, fpRate float64) *Filter {
	if n == 0 {
		n = DefaultExpectedURLs
	}
	return &Filter{f: bloom.NewWithEstimates(n, fpRate)}
}

// TestAndAdd records url and reports whether it was probably seen before.
func (f *Filter) TestAndAdd(url string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.f.TestAndAddString(url)
}

// Test reports whether url was probably seen. False positives are possible;
// false negatives are not.
func (f *Filter) Test(url string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.f.TestString(url)
}

// EstimatedCount returns the approximate number of distinct URLs recorded.
func (f *Filter) EstimatedCount() uint {
	f.mu.Lock()
	defer f.mu.Unlock()
	return uint(f.f.ApproximatedSize())
}
