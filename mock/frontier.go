package mock

import (
	"context"

	"github.com/fwojciec/sitepdf"
)

var _ sitepdf.Frontier = (*Frontier)(nil)

// Frontier is a mock implementation of sitepdf.Frontier.
type Frontier struct {
	PushFn func(url string) bool
	PopFn  func() (string, bool)
	LenFn  func() int
}

func (f *Frontier) Push(url string) bool {
	return f.PushFn(url)
}

func (f *Frontier) Pop() (string, bool) {
	return f.PopFn()
}

func (f *Frontier) Len() int {
	return f.LenFn()
}

var _ sitepdf.VisitedSet = (*VisitedSet)(nil)

// VisitedSet is a mock implementation of sitepdf.VisitedSet.
type VisitedSet struct {
	AddFn func(url string) bool
	HasFn func(url string) bool
	LenFn func() int
}

func (v *VisitedSet) Add(url string) bool {
	return v.AddFn(url)
}

func (v *VisitedSet) Has(url string) bool {
	return v.HasFn(url)
}

func (v *VisitedSet) Len() int {
	return v.LenFn()
}

var _ sitepdf.Pacer = (*Pacer)(nil)

// Pacer is a mock implementation of sitepdf.Pacer.
type Pacer struct {
	WaitFn func(ctx context.Context, host string) error
}

func (p *Pacer) Wait(ctx context.Context, host string) error {
	return p.WaitFn(ctx, host)
}
