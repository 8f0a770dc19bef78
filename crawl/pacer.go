package crawl

import (
	"context"
	"sync"
	"time"

	"github.com/fwojciec/sitepdf"
	"golang.org/x/time/rate"
)

var _ sitepdf.Pacer = FixedDelay{}

// FixedDelay waits the same duration before every request regardless of host.
type FixedDelay struct {
	Delay time.Duration
}

// Wait sleeps for Delay or until ctx is canceled.
func (d FixedDelay) Wait(ctx context.Context, _ string) error {
	if d.Delay <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d.Delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

var _ sitepdf.Pacer = (*DomainLimiter)(nil)

// DomainLimiter provides per-domain rate limiting using token buckets.
// Each host gets its own limiter, so pacing one origin never delays
// requests to another.
type DomainLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      float64
}

// NewDomainLimiter creates a new DomainLimiter with the specified requests per second limit.
// Each domain gets its own limiter with a burst of 1 (no bursting allowed).
func NewDomainLimiter(rps float64) *DomainLimiter {
	return &DomainLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rps,
	}
}

// NewDomainLimiterEvery creates a DomainLimiter allowing one request per
// interval to each host.
func NewDomainLimiterEvery(interval time.Duration) *DomainLimiter {
	return NewDomainLimiter(float64(rate.Every(interval)))
}

// Wait blocks until the rate limit allows a request to the domain.
// Returns an error if the context is canceled before the wait completes.
func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	d.mu.Lock()
	limiter, ok := d.limiters[domain]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(d.rps), 1)
		d.limiters[domain] = limiter
	}
	d.mu.Unlock()

	return limiter.Wait(ctx)
}
