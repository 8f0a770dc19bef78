package goquery_test

import (
	"testing"

	"github.com/fwojciec/sitepdf"
	"github.com/fwojciec/sitepdf/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatter_Format(t *testing.T) {
	t.Parallel()

	t.Run("emits blocks in document order", func(t *testing.T) {
		t.Parallel()

		html := `<div>
<h2>Getting started</h2>
<p>First paragraph.</p>
<ul><li>One</li><li>Two</li></ul>
<blockquote>Quoted text</blockquote>
<pre>go   build  ./...</pre>
<h4>Details</h4>
</div>`

		blocks, err := goquery.NewFormatter().Format(html)

		require.NoError(t, err)
		assert.Equal(t, []sitepdf.Block{
			{Kind: sitepdf.KindHeading2, Text: "GETTING STARTED"},
			{Kind: sitepdf.KindParagraph, Text: "First paragraph."},
			{Kind: sitepdf.KindListItem, Text: "• One"},
			{Kind: sitepdf.KindListItem, Text: "• Two"},
			{Kind: sitepdf.KindBlockquote, Text: "Quoted text"},
			{Kind: sitepdf.KindPreformatted, Text: "go build ./..."},
			{Kind: sitepdf.KindHeading4, Text: "Details"},
		}, blocks)
	})

	t.Run("emits one block for a paragraph inside a list item", func(t *testing.T) {
		t.Parallel()

		html := `<ul><li><p>Item with paragraph</p></li></ul>`

		blocks, err := goquery.NewFormatter().Format(html)

		require.NoError(t, err)
		require.Len(t, blocks, 1)
		assert.Equal(t, sitepdf.KindListItem, blocks[0].Kind)
		assert.Equal(t, "• Item with paragraph", blocks[0].Text)
	})

	t.Run("suppresses list items nested in a blockquote", func(t *testing.T) {
		t.Parallel()

		html := `<blockquote><p>Said:</p><ul><li>nested</li></ul></blockquote><p>After</p>`

		blocks, err := goquery.NewFormatter().Format(html)

		require.NoError(t, err)
		assert.Equal(t, []sitepdf.Block{
			{Kind: sitepdf.KindBlockquote, Text: "Said:nested"},
			{Kind: sitepdf.KindParagraph, Text: "After"},
		}, blocks)
	})

	t.Run("upper-cases major headings only", func(t *testing.T) {
		t.Parallel()

		html := `<h1>Introduction</h1><h3>Straße</h3><h5>Minor heading</h5>`

		blocks, err := goquery.NewFormatter().Format(html)

		require.NoError(t, err)
		require.Len(t, blocks, 3)
		assert.Equal(t, "INTRODUCTION", blocks[0].Text)
		assert.Equal(t, "STRASSE", blocks[1].Text)
		assert.Equal(t, "Minor heading", blocks[2].Text)
	})

	t.Run("collapses whitespace", func(t *testing.T) {
		t.Parallel()

		html := "<p>\n   Lots\tof\n\n   space   </p>"

		blocks, err := goquery.NewFormatter().Format(html)

		require.NoError(t, err)
		require.Len(t, blocks, 1)
		assert.Equal(t, "Lots of space", blocks[0].Text)
	})

	t.Run("drops empty elements", func(t *testing.T) {
		t.Parallel()

		html := `<p>   </p><li></li><h2> </h2><p>Kept</p>`

		blocks, err := goquery.NewFormatter().Format(html)

		require.NoError(t, err)
		assert.Equal(t, []sitepdf.Block{{Kind: sitepdf.KindParagraph, Text: "Kept"}}, blocks)
	})

	t.Run("ignores h6 and non-block elements", func(t *testing.T) {
		t.Parallel()

		html := `<h6>Tiny</h6><div>Loose text</div><span>inline</span>`

		blocks, err := goquery.NewFormatter().Format(html)

		require.NoError(t, err)
		assert.Empty(t, blocks)
	})

	t.Run("never emits a block whose ancestor is also a block", func(t *testing.T) {
		t.Parallel()

		html := `<ol><li>outer<ul><li><p>inner</p></li></ul></li></ol><blockquote><pre>code</pre></blockquote>`

		blocks, err := goquery.NewFormatter().Format(html)

		require.NoError(t, err)
		assert.Equal(t, []sitepdf.Block{
			{Kind: sitepdf.KindListItem, Text: "• outerinner"},
			{Kind: sitepdf.KindBlockquote, Text: "code"},
		}, blocks)
	})
}
