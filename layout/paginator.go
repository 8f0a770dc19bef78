// Package layout paginates page results onto fixed-size pages.
package layout

import "github.com/fwojciec/sitepdf"

// Style holds fonts and vertical spacing in layout units.
type Style struct {
	TitleFont   sitepdf.Font
	URLFont     sitepdf.Font
	BodyFont    sitepdf.Font
	HeadingFont sitepdf.Font
	QuoteFont   sitepdf.Font
	CodeFont    sitepdf.Font

	TitleLineHeight float64
	TitleGap        float64 // after the title
	URLLineHeight   float64
	URLGap          float64 // after the source URL
	DividerGap      float64 // after the divider rule
	LineHeight      float64
	BlockGap        float64
	HeadingSpace    float64 // before major headings
}

// DefaultStyle returns the standard document style.
func DefaultStyle() Style {
	return Style{
		TitleFont:   sitepdf.Font{Family: "helvetica", Style: "B", Size: 16},
		URLFont:     sitepdf.Font{Family: "helvetica", Style: "I", Size: 9},
		BodyFont:    sitepdf.Font{Family: "helvetica", Size: 11},
		HeadingFont: sitepdf.Font{Family: "helvetica", Style: "B", Size: 11},
		QuoteFont:   sitepdf.Font{Family: "helvetica", Style: "I", Size: 11},
		CodeFont:    sitepdf.Font{Family: "courier", Size: 10},

		TitleLineHeight: 8,
		TitleGap:        2,
		URLLineHeight:   4,
		URLGap:          10,
		DividerGap:      15,
		LineHeight:      5,
		BlockGap:        5,
		HeadingSpace:    4,
	}
}

// Paginator lays out page results. It is deterministic: the same results,
// layout, style and measurer always produce the same pages.
type Paginator struct {
	Measurer sitepdf.Measurer
	Layout   sitepdf.Layout
	Style    Style
}

// NewPaginator creates a Paginator with the default style.
func NewPaginator(m sitepdf.Measurer, layout sitepdf.Layout) *Paginator {
	return &Paginator{
		Measurer: m,
		Layout:   layout,
		Style:    DefaultStyle(),
	}
}

// Paginate lays out results in order. Every result starts on a new page
// with a centered title, its source URL and a divider, followed by its
// blocks. A block that does not fit the rest of the page moves to the next
// page; a block taller than a whole page is split across pages line by line.
func (p *Paginator) Paginate(results []*sitepdf.PageResult) []*sitepdf.RenderedPage {
	c := &cursor{layout: p.Layout}
	for _, r := range results {
		c.newPage()
		p.header(c, r)
		for _, b := range r.Blocks {
			p.block(c, b)
		}
	}
	return c.pages
}

func (p *Paginator) header(c *cursor, r *sitepdf.PageResult) {
	s := p.Style
	l := p.Layout
	centerX := l.PageWidth / 2

	title := r.Title
	if title == "" {
		title = sitepdf.NoTitle
	}
	lines := Wrap(p.Measurer, title, s.TitleFont, l.ContentWidth())
	for i, line := range lines {
		c.text(line, centerX, c.y+float64(i)*s.TitleLineHeight, s.TitleFont, sitepdf.Black, sitepdf.AlignCenter)
	}
	c.y += float64(len(lines))*s.TitleLineHeight + s.TitleGap

	// URLs rarely contain spaces, so long ones are broken between runes.
	urlLines := Wrap(p.Measurer, r.URL, s.URLFont, l.ContentWidth())
	for i, line := range urlLines {
		c.text(line, centerX, c.y+float64(i)*s.URLLineHeight, s.URLFont, sitepdf.DarkGray, sitepdf.AlignCenter)
	}
	if len(urlLines) > 1 {
		c.y += float64(len(urlLines)-1) * s.URLLineHeight
	}
	c.y += s.URLGap

	c.rule(l.Margins.Left, l.PageWidth-l.Margins.Right, c.y, sitepdf.LightGray)
	c.y += s.DividerGap
}

func (p *Paginator) block(c *cursor, b sitepdf.Block) {
	s := p.Style
	l := p.Layout

	if b.Kind.IsMajor() {
		c.y += s.HeadingSpace
	}

	font := p.fontFor(b.Kind)
	lines := Wrap(p.Measurer, b.Text, font, l.ContentWidth())
	height := float64(len(lines)) * s.LineHeight

	if c.y+height > l.Bottom() && height <= l.Bottom()-l.Margins.Top {
		c.newPage()
	}
	for _, line := range lines {
		if c.y+s.LineHeight > l.Bottom() && c.y > l.Margins.Top {
			c.newPage()
		}
		c.text(line, l.Margins.Left, c.y, font, sitepdf.Black, sitepdf.AlignLeft)
		c.y += s.LineHeight
	}
	c.y += s.BlockGap
}

func (p *Paginator) fontFor(kind sitepdf.BlockKind) sitepdf.Font {
	switch {
	case kind.IsMajor():
		return p.Style.HeadingFont
	case kind == sitepdf.KindBlockquote:
		return p.Style.QuoteFont
	case kind == sitepdf.KindPreformatted:
		return p.Style.CodeFont
	default:
		return p.Style.BodyFont
	}
}

// cursor tracks the page being filled and the vertical write position.
type cursor struct {
	layout sitepdf.Layout
	pages  []*sitepdf.RenderedPage
	page   *sitepdf.RenderedPage
	y      float64
}

func (c *cursor) newPage() {
	c.page = &sitepdf.RenderedPage{Number: len(c.pages) + 1}
	c.pages = append(c.pages, c.page)
	c.y = c.layout.Margins.Top
}

func (c *cursor) text(s string, x, y float64, font sitepdf.Font, color sitepdf.Color, align sitepdf.Align) {
	c.page.Ops = append(c.page.Ops, sitepdf.DrawOp{
		Kind:  sitepdf.DrawText,
		Text:  s,
		X:     x,
		Y:     y,
		Font:  font,
		Color: color,
		Align: align,
	})
}

func (c *cursor) rule(x1, x2, y float64, color sitepdf.Color) {
	c.page.Ops = append(c.page.Ops, sitepdf.DrawOp{
		Kind:  sitepdf.DrawRule,
		X:     x1,
		X2:    x2,
		Y:     y,
		Color: color,
	})
}
