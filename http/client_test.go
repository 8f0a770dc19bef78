package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fwojciec/sitepdf"
	"github.com/fwojciec/sitepdf/crawl"
	sitepdfhttp "github.com/fwojciec/sitepdf/http"
	"github.com/fwojciec/sitepdf/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var heuristic = sitepdf.HeadingHeuristic{MaxLength: 100}

func TestClient_Scrape(t *testing.T) {
	t.Parallel()

	t.Run("rebuilds blocks from service content", func(t *testing.T) {
		t.Parallel()

		scraper := &mock.Scraper{
			ScrapeFn: func(_ context.Context, url string) (*sitepdf.ScrapeResult, error) {
				return &sitepdf.ScrapeResult{
					URL:   url,
					Title: "Guide",
					Blocks: []sitepdf.Block{
						{Kind: sitepdf.KindHeading2, Text: "GETTING STARTED"},
						{Kind: sitepdf.KindParagraph, Text: "Install the tool first."},
						{Kind: sitepdf.KindListItem, Text: "• Download"},
					},
					Links: []string{"https://example.com/a", "https://example.com/b"},
				}, nil
			},
		}
		srv := newTestServer(t, scraper)
		client := sitepdfhttp.NewClient(srv.URL, heuristic, time.Second)

		result, err := client.Scrape(context.Background(), "https://example.com/guide")

		require.NoError(t, err)
		assert.Equal(t, "https://example.com/guide", result.URL)
		assert.Equal(t, "Guide", result.Title)
		assert.Equal(t, []sitepdf.Block{
			{Kind: sitepdf.KindHeading1, Text: "GETTING STARTED"},
			{Kind: sitepdf.KindParagraph, Text: "Install the tool first."},
			{Kind: sitepdf.KindListItem, Text: "• Download"},
		}, result.Blocks)
		assert.Equal(t, []string{"https://example.com/a", "https://example.com/b"}, result.Links)
	})

	t.Run("maps statuses back to error codes", func(t *testing.T) {
		t.Parallel()

		for _, code := range []string{sitepdf.EINVALID, sitepdf.ENOTFOUND, sitepdf.EUNAVAILABLE} {
			scraper := &mock.Scraper{
				ScrapeFn: func(context.Context, string) (*sitepdf.ScrapeResult, error) {
					return nil, sitepdf.Errorf(code, "no article found")
				},
			}
			srv := newTestServer(t, scraper)
			client := sitepdfhttp.NewClient(srv.URL, heuristic, time.Second)

			_, err := client.Scrape(context.Background(), "https://example.com/")

			require.Error(t, err)
			assert.Equal(t, code, sitepdf.ErrorCode(err))
			assert.Equal(t, "no article found", sitepdf.ErrorMessage(err))
		}
	})

	t.Run("treats internal server errors as unavailable", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"error":"Failed to fetch: Not Found"}`))
		}))
		defer srv.Close()
		client := sitepdfhttp.NewClient(srv.URL, heuristic, time.Second)

		_, err := client.Scrape(context.Background(), "https://example.com/")

		assert.Equal(t, sitepdf.EUNAVAILABLE, sitepdf.ErrorCode(err))
		assert.Equal(t, "Failed to fetch: Not Found", sitepdf.ErrorMessage(err))
	})

	t.Run("keeps unknown statuses internal", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		}))
		defer srv.Close()
		client := sitepdfhttp.NewClient(srv.URL, heuristic, time.Second)

		_, err := client.Scrape(context.Background(), "https://example.com/")

		assert.Equal(t, sitepdf.EINTERNAL, sitepdf.ErrorCode(err))
	})

	t.Run("falls back to a placeholder title", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"title":"","content":"Body text.","links":[]}`))
		}))
		defer srv.Close()
		client := sitepdfhttp.NewClient(srv.URL, heuristic, time.Second)

		result, err := client.Scrape(context.Background(), "https://example.com/")

		require.NoError(t, err)
		assert.Equal(t, sitepdf.NoTitle, result.Title)
	})

	t.Run("reports an unreachable service as unavailable", func(t *testing.T) {
		t.Parallel()

		client := sitepdfhttp.NewClient("http://non-existent-host.invalid", heuristic, 100*time.Millisecond)

		_, err := client.Scrape(context.Background(), "https://example.com/")

		require.Error(t, err)
		assert.Equal(t, sitepdf.EUNAVAILABLE, sitepdf.ErrorCode(err))
	})
}

func TestClient_CrawlFailsOnUnreachableSeed(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"Failed to fetch: Service Unavailable"}`))
	}))
	defer srv.Close()
	c := &crawl.Crawler{Scraper: sitepdfhttp.NewClient(srv.URL, heuristic, time.Second)}

	results, err := c.Crawl(context.Background(), "https://example.com/", 5, nil)

	assert.Equal(t, sitepdf.EUNAVAILABLE, sitepdf.ErrorCode(err))
	assert.Nil(t, results)
}
