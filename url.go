package sitepdf

import (
	"net/url"
	"strings"
)

// ParseTarget parses a crawl target. Only absolute http and https URLs with
// a host are valid targets.
func ParseTarget(rawURL string) (*url.URL, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return nil, Errorf(EINVALID, "invalid URL %q: %v", rawURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, Errorf(EINVALID, "unsupported URL scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return nil, Errorf(EINVALID, "URL %q has no host", rawURL)
	}
	return u, nil
}

// NormalizeURL returns the comparison form of u: scheme, lower-cased host,
// path and query. The fragment is dropped and an empty path becomes "/", so
// "https://example.com" and "https://example.com/" compare equal.
func NormalizeURL(u *url.URL) string {
	n := *u
	n.Host = strings.ToLower(n.Host)
	if n.Path == "" {
		n.Path = "/"
		n.RawPath = ""
	}
	n.Fragment = ""
	n.RawFragment = ""
	return n.String()
}
