// Package readability extracts main page content with go-readability, a port
// of Mozilla's Readability.
package readability

import (
	"net/url"
	"strings"

	"github.com/fwojciec/sitepdf"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements sitepdf.Extractor at compile time.
var _ sitepdf.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content.
// Every failure to produce an article is reported as ENOTFOUND.
func (e *Extractor) Extract(rawHTML string, baseURL string) (*sitepdf.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, sitepdf.Errorf(sitepdf.EINVALID, "empty HTML input")
	}

	pageURL, err := url.Parse(baseURL)
	if err != nil {
		return nil, sitepdf.Errorf(sitepdf.EINVALID, "invalid base URL: %v", err)
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), pageURL)
	if err != nil {
		return nil, sitepdf.Errorf(sitepdf.ENOTFOUND, "no article found: %v", err)
	}
	if strings.TrimSpace(article.TextContent) == "" {
		return nil, sitepdf.Errorf(sitepdf.ENOTFOUND, "no article found")
	}

	return &sitepdf.ExtractResult{
		Title:       article.Title,
		ContentHTML: article.Content,
	}, nil
}
