package sitepdf

import "time"

// Config holds all tunable settings.
type Config struct {
	Crawl   CrawlConfig   `mapstructure:"crawl"`
	Layout  Layout        `mapstructure:"layout"`
	Service ServiceConfig `mapstructure:"service"`
}

// CrawlConfig controls crawling, extraction and acceptance.
type CrawlConfig struct {
	MaxPages         int           `mapstructure:"max_pages"`
	Delay            time.Duration `mapstructure:"delay"`
	MinContentLength int           `mapstructure:"min_content_length"`
	HeadingMaxLength int           `mapstructure:"heading_max_length"`
	UserAgent        string        `mapstructure:"user_agent"`
	Timeout          time.Duration `mapstructure:"timeout"`
	Extractor        string        `mapstructure:"extractor"`
}

// ServiceConfig controls the extraction service.
type ServiceConfig struct {
	// Addr is the listen address for "serve".
	Addr string `mapstructure:"addr"`

	// URL is the base URL of a remote extraction service. When set, the
	// crawler scrapes through it instead of fetching pages itself.
	URL string `mapstructure:"url"`
}

// Extractor names.
const (
	ExtractorReadability = "readability"
	ExtractorTrafilatura = "trafilatura"
)

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Crawl: CrawlConfig{
			MaxPages:         5,
			Delay:            500 * time.Millisecond,
			MinContentLength: 50,
			HeadingMaxLength: 100,
			UserAgent:        DefaultUserAgent,
			Timeout:          30 * time.Second,
			Extractor:        ExtractorReadability,
		},
		Layout: Layout{
			PageWidth:  210,
			PageHeight: 297,
			Margins:    Margins{Top: 20, Right: 20, Bottom: 20, Left: 20},
		},
		Service: ServiceConfig{
			Addr: ":3000",
		},
	}
}

// Validate returns an error if the configuration contains invalid values.
func (c *Config) Validate() error {
	if c.Crawl.MaxPages <= 0 {
		return Errorf(EINVALID, "max pages must be positive")
	}
	if c.Crawl.Delay < 0 {
		return Errorf(EINVALID, "delay must not be negative")
	}
	if c.Crawl.MinContentLength < 0 {
		return Errorf(EINVALID, "minimum content length must not be negative")
	}
	if c.Crawl.HeadingMaxLength <= 0 {
		return Errorf(EINVALID, "heading max length must be positive")
	}
	switch c.Crawl.Extractor {
	case ExtractorReadability, ExtractorTrafilatura:
	default:
		return Errorf(EINVALID, "unknown extractor %q", c.Crawl.Extractor)
	}
	return c.Layout.Validate()
}

// HeadingHeuristic returns the heuristic configured for this crawl.
func (c CrawlConfig) HeadingHeuristic() HeadingHeuristic {
	return HeadingHeuristic{MaxLength: c.HeadingMaxLength}
}
