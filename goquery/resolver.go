package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/sitepdf"
)

// Ensure LinkResolver implements sitepdf.LinkResolver at compile time.
var _ sitepdf.LinkResolver = (*LinkResolver)(nil)

// LinkResolver extracts same-host links from anchor elements.
type LinkResolver struct{}

// NewLinkResolver creates a new LinkResolver.
func NewLinkResolver() *LinkResolver {
	return &LinkResolver{}
}

// ResolveLinks parses HTML and returns same-host absolute links.
// Links keep the order of their first occurrence. Fragments are dropped, so
// links differing only by fragment are duplicates. Hrefs that fail to parse
// or use non-HTTP schemes (javascript:, mailto:, etc.) are skipped.
func (r *LinkResolver) ResolveLinks(html string, baseURL string) ([]string, error) {
	base, err := sitepdf.ParseTarget(baseURL)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, sitepdf.Errorf(sitepdf.EINVALID, "failed to parse HTML: %v", err)
	}

	seen := make(map[string]struct{})
	var links []string

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		href = strings.TrimSpace(href)
		if href == "" {
			return
		}

		resolved := resolveURL(base, href)
		if resolved == nil || !isSameHost(base, resolved) {
			return
		}

		link := sitepdf.NormalizeURL(resolved)
		if _, ok := seen[link]; ok {
			return
		}
		seen[link] = struct{}{}
		links = append(links, link)
	})

	return links, nil
}

// resolveURL resolves href against base. Returns nil for malformed hrefs and
// for results that are not http or https URLs.
func resolveURL(base *url.URL, href string) *url.URL {
	ref, err := url.Parse(href)
	if err != nil {
		return nil
	}
	u := base.ResolveReference(ref)
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil
	}
	return u
}

// isSameHost reports whether u has exactly the hostname of base.
// Ports are ignored and subdomains never match.
func isSameHost(base, u *url.URL) bool {
	return strings.EqualFold(u.Hostname(), base.Hostname())
}
