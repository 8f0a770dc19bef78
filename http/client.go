package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/fwojciec/sitepdf"
)

// Ensure Client implements sitepdf.Scraper at compile time.
var _ sitepdf.Scraper = (*Client)(nil)

// Client scrapes pages through a remote extraction service.
type Client struct {
	baseURL   string
	heuristic sitepdf.HeadingHeuristic
	client    *http.Client
}

// NewClient creates a Client for the service at baseURL. The heuristic
// rebuilds block kinds from the joined content the service returns.
func NewClient(baseURL string, heuristic sitepdf.HeadingHeuristic, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}
	return &Client{
		baseURL:   strings.TrimSuffix(baseURL, "/"),
		heuristic: heuristic,
		client:    &http.Client{Timeout: timeout},
	}
}

// Scrape asks the service to scrape url.
func (c *Client) Scrape(ctx context.Context, url string) (*sitepdf.ScrapeResult, error) {
	body, err := json.Marshal(ScrapeRequest{URL: url})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/scrape", bytes.NewReader(body))
	if err != nil {
		return nil, sitepdf.Errorf(sitepdf.EINVALID, "invalid service URL: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, sitepdf.Errorf(sitepdf.EUNAVAILABLE, "extraction service: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var e ErrorResponse
		data, _ := io.ReadAll(io.LimitReader(resp.Body, maxRequestBytes))
		_ = json.Unmarshal(data, &e)
		return nil, errorFromStatus(resp.StatusCode, e.Error)
	}

	var out ScrapeResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, sitepdf.Errorf(sitepdf.EUNAVAILABLE, "decode service response: %v", err)
	}

	title := out.Title
	if title == "" {
		title = sitepdf.NoTitle
	}

	return &sitepdf.ScrapeResult{
		URL:    url,
		Title:  title,
		Blocks: sitepdf.ParseBlocks(out.Content, c.heuristic),
		Links:  out.Links,
	}, nil
}
