package crawl

import (
	"sync"

	"github.com/fwojciec/sitepdf"
)

var _ sitepdf.VisitedSet = (*VisitedSet)(nil)

// VisitedSet is an exact set of accepted URLs.
// It is safe for concurrent use by multiple goroutines.
type VisitedSet struct {
	mu   sync.Mutex
	urls map[string]struct{}
}

// NewVisitedSet creates an empty VisitedSet.
func NewVisitedSet() *VisitedSet {
	return &VisitedSet{urls: make(map[string]struct{})}
}

// Add records url. Returns false if it was already present.
func (v *VisitedSet) Add(url string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	if _, ok := v.urls[url]; ok {
		return false
	}
	v.urls[url] = struct{}{}
	return true
}

// Has reports whether url has been added.
func (v *VisitedSet) Has(url string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	_, ok := v.urls[url]
	return ok
}

// Len returns the number of distinct URLs added.
func (v *VisitedSet) Len() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.urls)
}
