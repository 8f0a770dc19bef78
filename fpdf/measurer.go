// Package fpdf measures and draws laid-out pages with go-pdf/fpdf using the
// PDF core fonts. Text is translated from UTF-8 to cp1252 before it is
// measured or drawn.
package fpdf

import (
	"sync"

	"github.com/fwojciec/sitepdf"
	"github.com/go-pdf/fpdf"
)

// Ensure Measurer implements sitepdf.Measurer at compile time.
var _ sitepdf.Measurer = (*Measurer)(nil)

// Measurer reports text widths in millimetres.
// It is safe for concurrent use by multiple goroutines.
type Measurer struct {
	mu        sync.Mutex
	pdf       *fpdf.Fpdf
	translate func(string) string
}

// NewMeasurer creates a Measurer.
func NewMeasurer() *Measurer {
	pdf := newDocument(sitepdf.DefaultConfig().Layout)
	return &Measurer{
		pdf:       pdf,
		translate: pdf.UnicodeTranslatorFromDescriptor(""),
	}
}

// Width returns the width of text drawn in font.
func (m *Measurer) Width(text string, font sitepdf.Font) float64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.pdf.SetFont(font.Family, font.Style, font.Size)
	return m.pdf.GetStringWidth(m.translate(text))
}

// newDocument creates an empty document sized to layout.
func newDocument(layout sitepdf.Layout) *fpdf.Fpdf {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: layout.PageWidth, Ht: layout.PageHeight},
	})
	pdf.SetMargins(layout.Margins.Left, layout.Margins.Top, layout.Margins.Right)
	pdf.SetAutoPageBreak(false, 0)
	return pdf
}
