package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/sitepdf"
	"github.com/fwojciec/sitepdf/crawl"
	"github.com/fwojciec/sitepdf/fpdf"
	"github.com/fwojciec/sitepdf/fs"
	"github.com/fwojciec/sitepdf/goquery"
	sitehttp "github.com/fwojciec/sitepdf/http"
	"github.com/fwojciec/sitepdf/layout"
	sitepdfprom "github.com/fwojciec/sitepdf/prometheus"
	"github.com/fwojciec/sitepdf/readability"
	sitepdfslog "github.com/fwojciec/sitepdf/slog"
	"github.com/fwojciec/sitepdf/trafilatura"
	"github.com/fwojciec/sitepdf/viper"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Fetcher is closed when Run returns.
	Fetcher sitepdf.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.Fetcher != nil {
		return m.Fetcher.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("sitepdf"),
		kong.Description("Crawl a website and collect its readable content into a PDF"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'sitepdf --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	cfg, err := viper.LoadConfig(cli.Config)
	if err != nil {
		fmt.Fprintf(stderr, "Hint: check %s or the SITEPDF_* environment variables\n", configName(cli.Config))
		return err
	}

	deps.Logger = newLogger(stderr, cli.Verbose)

	switch {
	case strings.HasPrefix(kongCtx.Command(), "crawl"):
		cli.Crawl.apply(cfg)
		if err := cfg.Validate(); err != nil {
			return err
		}
		deps.Config = cfg
		deps.Crawler = &crawl.Crawler{
			Scraper: m.scraper(cfg, deps.Logger, nil),
			Policy:  crawl.MinTextLength{Min: cfg.Crawl.MinContentLength},
			Pacer:   cli.Crawl.pacer(cfg),
		}
		deps.Writer = sitepdfslog.NewLoggingDocumentWriter(newWriter(cfg, &cli.Crawl), deps.Logger)
		defer m.Close()

	case strings.HasPrefix(kongCtx.Command(), "serve"):
		cli.Serve.apply(cfg)
		if err := cfg.Validate(); err != nil {
			return err
		}
		deps.Config = cfg
		// The service always logs requests.
		if !cli.Verbose {
			deps.Logger = newLogger(stderr, true)
		}
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		deps.Server = sitehttp.NewServer(
			m.scraper(cfg, deps.Logger, reg),
			sitehttp.WithLogger(deps.Logger),
			sitehttp.WithMetrics(reg),
		)
		defer m.Close()
	}

	return kongCtx.Run(deps)
}

// scraper builds the Scraper for cfg: the remote service client when a
// service URL is configured, the local pipeline otherwise. When reg is not
// nil scrapes are also counted.
func (m *Main) scraper(cfg *sitepdf.Config, logger *slog.Logger, reg prometheus.Registerer) sitepdf.Scraper {
	var s sitepdf.Scraper
	if cfg.Service.URL != "" {
		s = sitehttp.NewClient(cfg.Service.URL, cfg.Crawl.HeadingHeuristic(), cfg.Crawl.Timeout)
	} else {
		m.Fetcher = sitepdfslog.NewLoggingFetcher(
			sitehttp.NewFetcher(
				sitehttp.WithTimeout(cfg.Crawl.Timeout),
				sitehttp.WithUserAgent(cfg.Crawl.UserAgent),
			),
			logger,
		)
		s = &crawl.Pipeline{
			Fetcher:   m.Fetcher,
			Extractor: newExtractor(cfg.Crawl.Extractor),
			Formatter: goquery.NewFormatter(),
			Links:     goquery.NewLinkResolver(),
		}
	}

	s = sitepdfslog.NewLoggingScraper(s, logger)
	if reg != nil {
		s = sitepdfprom.NewInstrumentedScraper(s, reg)
	}
	return s
}

func newExtractor(name string) sitepdf.Extractor {
	if name == sitepdf.ExtractorTrafilatura {
		return trafilatura.NewExtractor()
	}
	return readability.NewExtractor()
}

// newWriter returns the DocumentWriter for the crawl output format.
func newWriter(cfg *sitepdf.Config, c *CrawlCmd) sitepdf.DocumentWriter {
	if c.Format == FormatMarkdown {
		return fs.NewMarkdownWriter(c.OutputPath())
	}

	r := fpdf.NewRenderer()
	r.Title = c.Output
	return &fs.PDFWriter{
		Path:      c.OutputPath(),
		Layout:    cfg.Layout,
		Paginator: layout.NewPaginator(fpdf.NewMeasurer(), cfg.Layout),
		Renderer:  r,
	}
}

// newLogger returns a text logger on w, or a discarding logger when not
// verbose.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo}))
}

func configName(path string) string {
	if path == "" {
		return "sitepdf.yaml"
	}
	return filepath.Base(path)
}
