package crawl

import "github.com/fwojciec/sitepdf"

var _ sitepdf.AcceptancePolicy = MinTextLength{}

// MinTextLength accepts pages whose joined block text is longer than Min
// characters.
type MinTextLength struct {
	Min int
}

// Accept reports whether result carries more than Min characters of text.
func (p MinTextLength) Accept(result *sitepdf.ScrapeResult) bool {
	return sitepdf.TextLength(result.Blocks) > p.Min
}
