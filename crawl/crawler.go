// Package crawl provides breadth-first site crawling orchestration.
// It coordinates scraping, acceptance, pacing and link expansion for one
// crawl session at a time.
package crawl

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/sitepdf"
	"github.com/fwojciec/sitepdf/bloom"
	"github.com/google/uuid"
)

// Defaults applied when a Crawler field is nil.
const (
	DefaultMinTextLength = 50
	DefaultDelay         = 500 * time.Millisecond
)

// Crawler crawls a site breadth-first from a seed URL.
// Only one fetch is in flight at a time.
type Crawler struct {
	Scraper sitepdf.Scraper
	Policy  sitepdf.AcceptancePolicy
	Pacer   sitepdf.Pacer
}

// Session holds the loop-carried state of one crawl run. It is created at
// crawl start and discarded when the run ends.
type Session struct {
	ID       string
	Seed     string
	Frontier sitepdf.Frontier
	Visited  sitepdf.VisitedSet
	Results  []*sitepdf.PageResult
}

// NewSession validates and normalizes seed and pushes it onto frontier.
func NewSession(seed string, frontier sitepdf.Frontier, visited sitepdf.VisitedSet) (*Session, error) {
	u, err := sitepdf.ParseTarget(seed)
	if err != nil {
		return nil, err
	}
	s := &Session{
		ID:       uuid.NewString(),
		Seed:     sitepdf.NormalizeURL(u),
		Frontier: frontier,
		Visited:  visited,
	}
	s.Frontier.Push(s.Seed)
	return s, nil
}

// ProgressEvent reports progress during a crawl.
type ProgressEvent struct {
	Type      ProgressType
	SessionID string
	URL       string
	Title     string
	Accepted  int
	Max       int

	// ContentHash is set for ProgressAccepted.
	ContentHash string

	// Reason and Error are set for ProgressSkipped.
	Reason SkipReason
	Error  error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressVisiting ProgressType = iota
	ProgressAccepted
	ProgressSkipped
	ProgressFinished
)

// SkipReason explains why a visited URL produced no page.
type SkipReason int

const (
	SkipFetch SkipReason = iota
	SkipExtraction
	SkipPolicy
)

func (r SkipReason) String() string {
	switch r {
	case SkipFetch:
		return "fetch failed"
	case SkipExtraction:
		return "no content"
	case SkipPolicy:
		return "content too short"
	default:
		return "unknown"
	}
}

// ProgressFunc is a callback for reporting crawl progress.
type ProgressFunc func(event ProgressEvent)

// Crawl runs a fresh session from seed and returns the accepted pages in
// crawl order.
func (c *Crawler) Crawl(ctx context.Context, seed string, maxPages int, progress ProgressFunc) ([]*sitepdf.PageResult, error) {
	if maxPages <= 0 {
		return nil, sitepdf.Errorf(sitepdf.EINVALID, "max pages must be positive")
	}
	s, err := NewSession(seed, NewQueue(bloom.DefaultExpectedURLs, bloom.DefaultFalsePositiveRate), NewVisitedSet())
	if err != nil {
		return nil, err
	}
	return c.Run(ctx, s, maxPages, progress)
}

// Run drives s until its frontier is empty or maxPages pages are accepted.
// Fetch, extraction and policy failures skip the URL. A failure to fetch
// the seed aborts the run with an EUNAVAILABLE error and no results. When
// ctx is canceled Run returns the pages accepted so far with ctx.Err().
func (c *Crawler) Run(ctx context.Context, s *Session, maxPages int, progress ProgressFunc) ([]*sitepdf.PageResult, error) {
	if progress == nil {
		progress = func(ProgressEvent) {}
	}
	policy := c.policy()
	pacer := c.pacer()

	event := func(typ ProgressType, u string) ProgressEvent {
		return ProgressEvent{
			Type:      typ,
			SessionID: s.ID,
			URL:       u,
			Accepted:  len(s.Results),
			Max:       maxPages,
		}
	}

	attempts := 0
	for s.Frontier.Len() > 0 && len(s.Results) < maxPages {
		if err := ctx.Err(); err != nil {
			return s.Results, err
		}

		current, ok := s.Frontier.Pop()
		if !ok {
			break
		}
		if s.Visited.Has(current) {
			continue
		}

		if attempts > 0 {
			if err := pacer.Wait(ctx, hostOf(current)); err != nil {
				return s.Results, err
			}
		}
		attempts++

		progress(event(ProgressVisiting, current))

		result, err := c.Scraper.Scrape(ctx, current)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return s.Results, ctxErr
			}
			reason := SkipExtraction
			if sitepdf.ErrorCode(err) == sitepdf.EUNAVAILABLE {
				reason = SkipFetch
				if attempts == 1 && current == s.Seed {
					return nil, sitepdf.Errorf(sitepdf.EUNAVAILABLE, "cannot reach seed %s: %s", current, sitepdf.ErrorMessage(err))
				}
			}
			e := event(ProgressSkipped, current)
			e.Reason, e.Error = reason, err
			progress(e)
			continue
		}

		if !policy.Accept(result) {
			e := event(ProgressSkipped, current)
			e.Reason = SkipPolicy
			e.Title = result.Title
			progress(e)
			continue
		}

		s.Visited.Add(current)
		s.Results = append(s.Results, &sitepdf.PageResult{
			URL:         current,
			Title:       result.Title,
			Blocks:      result.Blocks,
			ContentHash: ComputeHash(sitepdf.JoinBlocks(result.Blocks)),
		})
		e := event(ProgressAccepted, current)
		e.Title = result.Title
		e.ContentHash = s.Results[len(s.Results)-1].ContentHash
		progress(e)

		for _, link := range result.Links {
			if !s.Visited.Has(link) {
				s.Frontier.Push(link)
			}
		}
	}

	progress(event(ProgressFinished, ""))
	return s.Results, nil
}

func (c *Crawler) policy() sitepdf.AcceptancePolicy {
	if c.Policy == nil {
		return MinTextLength{Min: DefaultMinTextLength}
	}
	return c.Policy
}

func (c *Crawler) pacer() sitepdf.Pacer {
	if c.Pacer == nil {
		return FixedDelay{Delay: DefaultDelay}
	}
	return c.Pacer
}

// hostOf returns the host of rawURL, or rawURL itself if it cannot be parsed.
func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	return u.Host
}

// ComputeHash fingerprints content using xxhash.
func ComputeHash(content string) string {
	return fmt.Sprintf("%x", xxhash.Sum64String(content))
}
