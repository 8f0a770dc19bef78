package main

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fwojciec/sitepdf"
	"github.com/fwojciec/sitepdf/crawl"
	"github.com/fwojciec/sitepdf/fs"
	sitehttp "github.com/fwojciec/sitepdf/http"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
	Config *sitepdf.Config

	Crawler *crawl.Crawler
	Writer  sitepdf.DocumentWriter
	Server  *sitehttp.Server
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config  string `short:"C" type:"path" help:"Path to a YAML, JSON or TOML config file"`
	Verbose bool   `short:"v" help:"Log fetches and scrapes to stderr"`

	Crawl CrawlCmd `cmd:"" help:"Crawl a site and save its pages as one document"`
	Serve ServeCmd `cmd:"" help:"Run the extraction service"`
}

// Output formats.
const (
	FormatPDF      = "pdf"
	FormatMarkdown = "markdown"
)

// CrawlCmd is the "crawl" subcommand. Tuning flags are pointers so that an
// explicit zero still overrides the configured value.
type CrawlCmd struct {
	URL       string         `arg:"" help:"Seed URL"`
	MaxPages  *int           `short:"n" name:"max-pages" help:"Maximum number of pages to include"`
	Output    string         `short:"o" help:"Output name; sanitized, defaults to scraped-doc"`
	Dir       string         `short:"d" default:"." type:"path" help:"Directory to write the output to"`
	Format    string         `short:"f" enum:"pdf,markdown" default:"pdf" help:"Output format (pdf, markdown)"`
	Delay     *time.Duration `help:"Pause between fetches"`
	MinLength *int           `name:"min-length" help:"Minimum content length for a page to be included"`
	Timeout   *time.Duration `short:"t" help:"Fetch timeout per page"`
	Extractor string         `short:"e" help:"Content extractor (readability, trafilatura)"`
	Service   *string        `help:"Base URL of a remote extraction service; empty crawls locally"`
	PerHost   bool           `name:"per-host" help:"Pace with a per-host token bucket instead of a fixed sleep"`
}

func (c *CrawlCmd) apply(cfg *sitepdf.Config) {
	if c.MaxPages != nil {
		cfg.Crawl.MaxPages = *c.MaxPages
	}
	if c.Delay != nil {
		cfg.Crawl.Delay = *c.Delay
	}
	if c.MinLength != nil {
		cfg.Crawl.MinContentLength = *c.MinLength
	}
	if c.Timeout != nil {
		cfg.Crawl.Timeout = *c.Timeout
	}
	if c.Extractor != "" {
		cfg.Crawl.Extractor = c.Extractor
	}
	if c.Service != nil {
		cfg.Service.URL = *c.Service
	}
}

func (c *CrawlCmd) pacer(cfg *sitepdf.Config) sitepdf.Pacer {
	if c.PerHost {
		return crawl.NewDomainLimiterEvery(cfg.Crawl.Delay)
	}
	return crawl.FixedDelay{Delay: cfg.Crawl.Delay}
}

// OutputPath returns the file (pdf) or directory (markdown) written by the
// command.
func (c *CrawlCmd) OutputPath() string {
	ext := FormatPDF
	if c.Format == FormatMarkdown {
		ext = ""
	}
	return filepath.Join(c.Dir, fs.SafeFilename(c.Output, ext))
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr      string `short:"a" help:"Listen address"`
	Extractor string `short:"e" help:"Content extractor (readability, trafilatura)"`
}

func (c *ServeCmd) apply(cfg *sitepdf.Config) {
	if c.Addr != "" {
		cfg.Service.Addr = c.Addr
	}
	if c.Extractor != "" {
		cfg.Crawl.Extractor = c.Extractor
	}
	// A service never proxies to another service.
	cfg.Service.URL = ""
}
