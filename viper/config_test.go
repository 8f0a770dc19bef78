package viper_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fwojciec/sitepdf"
	"github.com/fwojciec/sitepdf/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Parallel()

	cfg, err := viper.LoadConfig("")

	require.NoError(t, err)
	assert.Equal(t, sitepdf.DefaultConfig(), *cfg)
}

func TestLoadConfig_File(t *testing.T) {
	t.Parallel()

	t.Run("overrides defaults from YAML", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "sitepdf.yaml", `
crawl:
  max_pages: 12
  delay: 2s
  extractor: trafilatura
layout:
  margins:
    left: 15
service:
  url: http://localhost:3000
`)

		cfg, err := viper.LoadConfig(path)

		require.NoError(t, err)
		assert.Equal(t, 12, cfg.Crawl.MaxPages)
		assert.Equal(t, 2*time.Second, cfg.Crawl.Delay)
		assert.Equal(t, sitepdf.ExtractorTrafilatura, cfg.Crawl.Extractor)
		assert.Equal(t, 15.0, cfg.Layout.Margins.Left)
		assert.Equal(t, 20.0, cfg.Layout.Margins.Right)
		assert.Equal(t, "http://localhost:3000", cfg.Service.URL)
		assert.Equal(t, 50, cfg.Crawl.MinContentLength)
	})

	t.Run("reads JSON", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "sitepdf.json", `{"crawl": {"min_content_length": 200}}`)

		cfg, err := viper.LoadConfig(path)

		require.NoError(t, err)
		assert.Equal(t, 200, cfg.Crawl.MinContentLength)
	})

	t.Run("fails for a missing explicit file", func(t *testing.T) {
		t.Parallel()

		_, err := viper.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))

		assert.Equal(t, sitepdf.EINVALID, sitepdf.ErrorCode(err))
	})

	t.Run("validates the result", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "sitepdf.yaml", "crawl:\n  max_pages: 0\n")

		_, err := viper.LoadConfig(path)

		assert.Equal(t, sitepdf.EINVALID, sitepdf.ErrorCode(err))
	})
}

// Environment tests mutate process state and cannot run in parallel.
func TestLoadConfig_Env(t *testing.T) {
	t.Setenv("SITEPDF_CRAWL_MAX_PAGES", "9")
	t.Setenv("SITEPDF_CRAWL_DELAY", "250ms")
	t.Setenv("SITEPDF_SERVICE_ADDR", ":8080")

	path := writeFile(t, "sitepdf.yaml", "crawl:\n  max_pages: 3\n")

	cfg, err := viper.LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, 9, cfg.Crawl.MaxPages, "env overrides file")
	assert.Equal(t, 250*time.Millisecond, cfg.Crawl.Delay)
	assert.Equal(t, ":8080", cfg.Service.Addr)
}
