package fpdf

import (
	"io"

	"github.com/fwojciec/sitepdf"
)

// Ensure Renderer implements sitepdf.Renderer at compile time.
var _ sitepdf.Renderer = (*Renderer)(nil)

// Renderer draws rendered pages into a PDF document.
type Renderer struct {
	// Title is written to the document metadata when set.
	Title string
}

// NewRenderer creates a Renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render draws pages in order and writes the PDF to w. Page breaks are
// taken from pages only; fpdf's automatic page breaking is disabled.
func (r *Renderer) Render(w io.Writer, layout sitepdf.Layout, pages []*sitepdf.RenderedPage) error {
	if err := layout.Validate(); err != nil {
		return err
	}

	pdf := newDocument(layout)
	pdf.SetCreator("sitepdf", true)
	if r.Title != "" {
		pdf.SetTitle(r.Title, true)
	}
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for _, page := range pages {
		pdf.AddPage()
		for _, op := range page.Ops {
			switch op.Kind {
			case sitepdf.DrawText:
				pdf.SetFont(op.Font.Family, op.Font.Style, op.Font.Size)
				pdf.SetTextColor(int(op.Color.R), int(op.Color.G), int(op.Color.B))
				text := tr(op.Text)
				x := op.X
				if op.Align == sitepdf.AlignCenter {
					x -= pdf.GetStringWidth(text) / 2
				}
				pdf.Text(x, op.Y, text)
			case sitepdf.DrawRule:
				pdf.SetDrawColor(int(op.Color.R), int(op.Color.G), int(op.Color.B))
				pdf.Line(op.X, op.Y, op.X2, op.Y)
			}
		}
	}

	if err := pdf.Error(); err != nil {
		return sitepdf.Errorf(sitepdf.EINTERNAL, "render PDF: %v", err)
	}
	return pdf.Output(w)
}
