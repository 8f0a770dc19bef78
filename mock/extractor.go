package mock

import "github.com/fwojciec/sitepdf"

var _ sitepdf.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of sitepdf.Extractor.
type Extractor struct {
	ExtractFn func(html, baseURL string) (*sitepdf.ExtractResult, error)
}

func (e *Extractor) Extract(html, baseURL string) (*sitepdf.ExtractResult, error) {
	return e.ExtractFn(html, baseURL)
}

var _ sitepdf.LinkResolver = (*LinkResolver)(nil)

// LinkResolver is a mock implementation of sitepdf.LinkResolver.
type LinkResolver struct {
	ResolveLinksFn func(html, baseURL string) ([]string, error)
}

func (r *LinkResolver) ResolveLinks(html, baseURL string) ([]string, error) {
	return r.ResolveLinksFn(html, baseURL)
}
