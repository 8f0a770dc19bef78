package fs

import (
	"context"

	"github.com/fwojciec/sitepdf"
)

// Ensure PDFWriter implements sitepdf.DocumentWriter at compile time.
var _ sitepdf.DocumentWriter = (*PDFWriter)(nil)

// PDFWriter paginates results and renders them into a single file.
type PDFWriter struct {
	Path      string
	Layout    sitepdf.Layout
	Paginator sitepdf.Paginator
	Renderer  sitepdf.Renderer
}

// WriteDocument paginates results and writes the rendered document to Path.
// Nothing is left at Path if rendering fails.
func (w *PDFWriter) WriteDocument(ctx context.Context, results []*sitepdf.PageResult) error {
	if len(results) == 0 {
		return sitepdf.Errorf(sitepdf.EINVALID, "no pages to write")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	pages := w.Paginator.Paginate(results)

	f, err := CreateOutputFile(w.Path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Abort() }()

	if err := w.Renderer.Render(f, w.Layout, pages); err != nil {
		return err
	}
	return f.Commit()
}
