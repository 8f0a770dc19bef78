package sitepdf

import "io"

// Font selects a typeface for drawing and measuring text.
type Font struct {
	Family string  // "helvetica", "courier", "times"
	Style  string  // "", "B", "I" or "BI"
	Size   float64 // points
}

// Color is an RGB drawing color.
type Color struct {
	R, G, B uint8
}

// Common colors.
var (
	Black     = Color{0, 0, 0}
	DarkGray  = Color{100, 100, 100}
	LightGray = Color{220, 220, 220}
)

// Margins are page margins in layout units.
type Margins struct {
	Top    float64 `mapstructure:"top"`
	Right  float64 `mapstructure:"right"`
	Bottom float64 `mapstructure:"bottom"`
	Left   float64 `mapstructure:"left"`
}

// Layout describes fixed-size pages in millimetres.
type Layout struct {
	PageWidth  float64 `mapstructure:"page_width"`
	PageHeight float64 `mapstructure:"page_height"`
	Margins    Margins `mapstructure:"margins"`
}

// ContentWidth returns the width available between the side margins.
func (l Layout) ContentWidth() float64 {
	return l.PageWidth - l.Margins.Left - l.Margins.Right
}

// ContentHeight returns the height available between the top and bottom margins.
func (l Layout) ContentHeight() float64 {
	return l.PageHeight - l.Margins.Top - l.Margins.Bottom
}

// Bottom returns the lowest y coordinate text may reach.
func (l Layout) Bottom() float64 {
	return l.PageHeight - l.Margins.Bottom
}

// Validate returns an error if the layout leaves no room for content.
func (l Layout) Validate() error {
	if l.PageWidth <= 0 || l.PageHeight <= 0 {
		return Errorf(EINVALID, "page size must be positive")
	}
	if l.ContentWidth() <= 0 || l.ContentHeight() <= 0 {
		return Errorf(EINVALID, "margins leave no room for content")
	}
	return nil
}

// DrawKind identifies a drawing operation.
type DrawKind int

// Drawing operations.
const (
	DrawText DrawKind = iota
	DrawRule
)

// Align controls horizontal text placement relative to DrawOp.X.
type Align int

// Text alignments.
const (
	AlignLeft Align = iota
	AlignCenter
)

// DrawOp is a single positioned drawing command. Text ops place one line
// with its baseline at Y. Rule ops draw a line from (X, Y) to (X2, Y).
type DrawOp struct {
	Kind  DrawKind
	Text  string
	X     float64
	X2    float64
	Y     float64
	Font  Font
	Color Color
	Align Align
}

// RenderedPage is one laid-out output page.
type RenderedPage struct {
	// Number is 1-based.
	Number int
	Ops    []DrawOp
}

// Measurer reports the rendered width of text.
type Measurer interface {
	Width(text string, font Font) float64
}

// Renderer draws laid-out pages into an output format.
type Renderer interface {
	Render(w io.Writer, layout Layout, pages []*RenderedPage) error
}

// Paginator lays out page results onto fixed-size pages.
type Paginator interface {
	Paginate(results []*PageResult) []*RenderedPage
}
