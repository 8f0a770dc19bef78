// Package goquery implements block formatting and link resolution on top of
// goquery's DOM traversal.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/sitepdf"
	"golang.org/x/net/html/atom"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Ensure Formatter implements sitepdf.BlockFormatter at compile time.
var _ sitepdf.BlockFormatter = (*Formatter)(nil)

// blockSelector matches every element that can become a block.
const blockSelector = "h1, h2, h3, h4, h5, p, li, blockquote, pre"

var blockKinds = map[atom.Atom]sitepdf.BlockKind{
	atom.H1:         sitepdf.KindHeading1,
	atom.H2:         sitepdf.KindHeading2,
	atom.H3:         sitepdf.KindHeading3,
	atom.H4:         sitepdf.KindHeading4,
	atom.H5:         sitepdf.KindHeading5,
	atom.P:          sitepdf.KindParagraph,
	atom.Li:         sitepdf.KindListItem,
	atom.Blockquote: sitepdf.KindBlockquote,
	atom.Pre:        sitepdf.KindPreformatted,
}

// Formatter turns extracted content HTML into text blocks.
type Formatter struct{}

// NewFormatter creates a new Formatter.
func NewFormatter() *Formatter {
	return &Formatter{}
}

// Format returns the blocks of contentHTML in document order.
//
// An element whose ancestor chain contains another block element is skipped,
// so a paragraph inside a list item contributes its text to the list item
// only. Text is whitespace-collapsed; list items get a bullet prefix and
// major headings are upper-cased.
func (f *Formatter) Format(contentHTML string) ([]sitepdf.Block, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(contentHTML))
	if err != nil {
		return nil, sitepdf.Errorf(sitepdf.EINVALID, "failed to parse HTML: %v", err)
	}

	// Casers are stateful; one per call.
	upper := cases.Upper(language.Und)

	var blocks []sitepdf.Block
	doc.Find(blockSelector).Each(func(_ int, sel *goquery.Selection) {
		if sel.ParentsFiltered(blockSelector).Length() > 0 {
			return
		}

		kind, ok := blockKinds[sel.Nodes[0].DataAtom]
		if !ok {
			return
		}

		text := normalizeSpace(sel.Text())
		if text == "" {
			return
		}

		switch {
		case kind == sitepdf.KindListItem:
			text = sitepdf.BulletGlyph + " " + text
		case kind.IsMajor():
			text = upper.String(text)
		}

		blocks = append(blocks, sitepdf.Block{Kind: kind, Text: text})
	})

	return blocks, nil
}

// normalizeSpace collapses whitespace runs to a single space and trims.
func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
