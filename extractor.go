package sitepdf

// ExtractResult holds the extracted content from an HTML page.
type ExtractResult struct {
	// Title is the page title extracted from metadata.
	Title string

	// ContentHTML is the main content as clean HTML.
	// Boilerplate (nav, footer, sidebar, ads) has been removed.
	ContentHTML string
}

// Extractor extracts main content from HTML pages, removing boilerplate.
type Extractor interface {
	// Extract processes raw HTML and returns the main content.
	// The baseURL is used to resolve relative references in the content.
	// Returns ENOTFOUND when no article content can be found.
	Extract(html string, baseURL string) (*ExtractResult, error)
}

// LinkResolver discovers crawlable links in raw HTML.
type LinkResolver interface {
	// ResolveLinks returns absolute URLs from anchor elements whose hostname
	// equals the hostname of baseURL. Results are in document order without
	// duplicates. Malformed hrefs are skipped.
	ResolveLinks(html string, baseURL string) ([]string, error)
}
