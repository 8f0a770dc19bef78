// Package viper loads sitepdf configuration from defaults, an optional
// config file and SITEPDF_* environment variables.
package viper

import (
	"errors"
	"strings"

	"github.com/fwojciec/sitepdf"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable, e.g. SITEPDF_CRAWL_MAX_PAGES.
const EnvPrefix = "SITEPDF"

// LoadConfig reads configuration. Priority (highest to lowest): env vars >
// config file > defaults. When path is empty, sitepdf.{yaml,json,toml} is
// looked up in the working directory and may be absent; an explicit path
// must exist.
func LoadConfig(path string) (*sitepdf.Config, error) {
	cfg := sitepdf.DefaultConfig()

	v := viper.New()
	setDefaults(v, &cfg)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("sitepdf")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, sitepdf.Errorf(sitepdf.EINVALID, "read config: %v", err)
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, sitepdf.Errorf(sitepdf.EINVALID, "decode config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setDefaults registers every key so AutomaticEnv can override it.
func setDefaults(v *viper.Viper, cfg *sitepdf.Config) {
	v.SetDefault("crawl.max_pages", cfg.Crawl.MaxPages)
	v.SetDefault("crawl.delay", cfg.Crawl.Delay)
	v.SetDefault("crawl.min_content_length", cfg.Crawl.MinContentLength)
	v.SetDefault("crawl.heading_max_length", cfg.Crawl.HeadingMaxLength)
	v.SetDefault("crawl.user_agent", cfg.Crawl.UserAgent)
	v.SetDefault("crawl.timeout", cfg.Crawl.Timeout)
	v.SetDefault("crawl.extractor", cfg.Crawl.Extractor)

	v.SetDefault("layout.page_width", cfg.Layout.PageWidth)
	v.SetDefault("layout.page_height", cfg.Layout.PageHeight)
	v.SetDefault("layout.margins.top", cfg.Layout.Margins.Top)
	v.SetDefault("layout.margins.right", cfg.Layout.Margins.Right)
	v.SetDefault("layout.margins.bottom", cfg.Layout.Margins.Bottom)
	v.SetDefault("layout.margins.left", cfg.Layout.Margins.Left)

	v.SetDefault("service.addr", cfg.Service.Addr)
	v.SetDefault("service.url", cfg.Service.URL)
}
