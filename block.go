package sitepdf

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// BulletGlyph prefixes the text of every list item block.
const BulletGlyph = "•"

// BlockKind identifies the semantic role of a Block.
type BlockKind int

// Block kinds, in heading-level order first.
const (
	KindParagraph BlockKind = iota
	KindHeading1
	KindHeading2
	KindHeading3
	KindHeading4
	KindHeading5
	KindListItem
	KindBlockquote
	KindPreformatted
)

var blockKindNames = map[BlockKind]string{
	KindParagraph:    "paragraph",
	KindHeading1:     "heading1",
	KindHeading2:     "heading2",
	KindHeading3:     "heading3",
	KindHeading4:     "heading4",
	KindHeading5:     "heading5",
	KindListItem:     "list-item",
	KindBlockquote:   "blockquote",
	KindPreformatted: "preformatted",
}

// String returns the kind's name, e.g. "heading2" or "list-item".
func (k BlockKind) String() string {
	if name, ok := blockKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// IsHeading reports whether k is one of the five heading levels.
func (k BlockKind) IsHeading() bool {
	return k >= KindHeading1 && k <= KindHeading5
}

// IsMajor reports whether k is a heading of level 1-3. Major headings are
// upper-cased when formatted and emphasized when rendered.
func (k BlockKind) IsMajor() bool {
	return k >= KindHeading1 && k <= KindHeading3
}

// HeadingLevel returns 1-5 for headings and 0 for every other kind.
func (k BlockKind) HeadingLevel() int {
	if !k.IsHeading() {
		return 0
	}
	return int(k - KindHeading1 + 1)
}

// Block is one unit of extracted text. Text is whitespace-collapsed and
// trimmed, and already carries its formatting markers (bullet prefix,
// upper-cased major headings).
type Block struct {
	Kind BlockKind
	Text string
}

// BlockFormatter turns extracted content HTML into an ordered sequence of
// blocks.
type BlockFormatter interface {
	// Format returns blocks in document order. Elements nested inside another
	// block-level element never produce a second block, and elements that are
	// empty after whitespace normalization are dropped.
	Format(contentHTML string) ([]Block, error)
}

// blockSeparator separates block texts in joined content.
const blockSeparator = "\n\n"

// JoinBlocks joins block texts with a blank line between blocks.
// This is the content representation exchanged by the extraction service.
func JoinBlocks(blocks []Block) string {
	texts := make([]string, 0, len(blocks))
	for _, b := range blocks {
		texts = append(texts, b.Text)
	}
	return strings.Join(texts, blockSeparator)
}

// TextLength returns the length in characters of the joined block content.
func TextLength(blocks []Block) int {
	return utf8.RuneCountInString(JoinBlocks(blocks))
}

// HeadingHeuristic recognizes major headings from text alone. It is used
// only where block kinds were lost, such as content received from a remote
// extraction service.
type HeadingHeuristic struct {
	// MaxLength is the exclusive upper bound on heading length in characters.
	MaxLength int
}

// Match reports whether text looks like a formatted major heading: it is
// entirely upper-case, contains at least one cased letter, is shorter than
// MaxLength and does not start with the bullet glyph.
func (h HeadingHeuristic) Match(text string) bool {
	if text == "" || strings.HasPrefix(text, BulletGlyph) {
		return false
	}
	if utf8.RuneCountInString(text) >= h.MaxLength {
		return false
	}
	cased := false
	for _, r := range text {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			cased = true
		}
	}
	return cased
}

// ParseBlocks rebuilds blocks from joined content. Paragraphs are separated
// by blank lines; bullet-prefixed paragraphs become list items and
// paragraphs matched by h become level 1 headings.
func ParseBlocks(content string, h HeadingHeuristic) []Block {
	var blocks []Block
	for _, part := range strings.Split(content, blockSeparator) {
		text := strings.TrimSpace(part)
		if text == "" {
			continue
		}
		kind := KindParagraph
		switch {
		case strings.HasPrefix(text, BulletGlyph):
			kind = KindListItem
		case h.Match(text):
			kind = KindHeading1
		}
		blocks = append(blocks, Block{Kind: kind, Text: text})
	}
	return blocks
}
