package layout

import (
	"strings"

	"github.com/fwojciec/sitepdf"
)

// Wrap breaks text into lines no wider than width when drawn in font.
// Lines are filled greedily word by word. A word wider than width on its
// own is broken between runes. Explicit newlines always end a line.
func Wrap(m sitepdf.Measurer, text string, font sitepdf.Font, width float64) []string {
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		lines = append(lines, wrapParagraph(m, para, font, width)...)
	}
	return lines
}

func wrapParagraph(m sitepdf.Measurer, text string, font sitepdf.Font, width float64) []string {
	var lines []string
	line := ""
	for _, word := range strings.Fields(text) {
		if line != "" {
			candidate := line + " " + word
			if m.Width(candidate, font) <= width {
				line = candidate
				continue
			}
			lines = append(lines, line)
			line = ""
		}
		if m.Width(word, font) <= width {
			line = word
			continue
		}
		pieces := breakWord(m, word, font, width)
		lines = append(lines, pieces[:len(pieces)-1]...)
		line = pieces[len(pieces)-1]
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}

// breakWord splits word into pieces that each fit width. Every piece holds
// at least one rune.
func breakWord(m sitepdf.Measurer, word string, font sitepdf.Font, width float64) []string {
	var pieces []string
	var cur []rune
	for _, r := range word {
		next := append(cur, r)
		if len(cur) > 0 && m.Width(string(next), font) > width {
			pieces = append(pieces, string(cur))
			cur = []rune{r}
			continue
		}
		cur = next
	}
	if len(cur) > 0 {
		pieces = append(pieces, string(cur))
	}
	return pieces
}
