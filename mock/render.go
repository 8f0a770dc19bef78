package mock

import (
	"io"

	"github.com/fwojciec/sitepdf"
)

var _ sitepdf.Measurer = (*Measurer)(nil)

// Measurer is a mock implementation of sitepdf.Measurer.
type Measurer struct {
	WidthFn func(text string, font sitepdf.Font) float64
}

func (m *Measurer) Width(text string, font sitepdf.Font) float64 {
	return m.WidthFn(text, font)
}

var _ sitepdf.Renderer = (*Renderer)(nil)

// Renderer is a mock implementation of sitepdf.Renderer.
type Renderer struct {
	RenderFn func(w io.Writer, layout sitepdf.Layout, pages []*sitepdf.RenderedPage) error
}

func (r *Renderer) Render(w io.Writer, layout sitepdf.Layout, pages []*sitepdf.RenderedPage) error {
	return r.RenderFn(w, layout, pages)
}

var _ sitepdf.Paginator = (*Paginator)(nil)

// Paginator is a mock implementation of sitepdf.Paginator.
type Paginator struct {
	PaginateFn func(results []*sitepdf.PageResult) []*sitepdf.RenderedPage
}

func (p *Paginator) Paginate(results []*sitepdf.PageResult) []*sitepdf.RenderedPage {
	return p.PaginateFn(results)
}
