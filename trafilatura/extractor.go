// Package trafilatura extracts main page content with go-trafilatura.
package trafilatura

import (
	"bytes"
	"net/url"
	"strings"

	"github.com/fwojciec/sitepdf"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements sitepdf.Extractor at compile time.
var _ sitepdf.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
// It falls back to readability and dom-distiller heuristics when its own
// extraction finds too little.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string, baseURL string) (*sitepdf.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, sitepdf.Errorf(sitepdf.EINVALID, "empty HTML input")
	}

	pageURL, err := url.Parse(baseURL)
	if err != nil {
		return nil, sitepdf.Errorf(sitepdf.EINVALID, "invalid base URL: %v", err)
	}

	opts := trafilatura.Options{
		EnableFallback: true,
		OriginalURL:    pageURL,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, sitepdf.Errorf(sitepdf.ENOTFOUND, "no article found: %v", err)
	}
	if result.ContentNode == nil {
		return nil, sitepdf.Errorf(sitepdf.ENOTFOUND, "no article found")
	}

	contentHTML, err := renderNode(result.ContentNode)
	if err != nil {
		return nil, err
	}

	return &sitepdf.ExtractResult{
		Title:       result.Metadata.Title,
		ContentHTML: contentHTML,
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
