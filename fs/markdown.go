package fs

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/fwojciec/sitepdf"
)

// Ensure MarkdownWriter implements sitepdf.DocumentWriter at compile time.
var _ sitepdf.DocumentWriter = (*MarkdownWriter)(nil)

// MarkdownWriter writes one markdown file per page result under a directory.
// Files are written to dir+".tmp" and moved into place once all succeed.
type MarkdownWriter struct {
	dir string

	// Now returns the crawl date written to frontmatter.
	Now func() time.Time
}

// NewMarkdownWriter creates a MarkdownWriter targeting dir.
func NewMarkdownWriter(dir string) *MarkdownWriter {
	return &MarkdownWriter{dir: dir, Now: time.Now}
}

func (w *MarkdownWriter) tempDir() string {
	return w.dir + ".tmp"
}

// WriteDocument writes results and replaces any previous output directory.
// Two results mapping to the same file is an ECONFLICT; nothing is written.
func (w *MarkdownWriter) WriteDocument(ctx context.Context, results []*sitepdf.PageResult) error {
	if len(results) == 0 {
		return sitepdf.Errorf(sitepdf.EINVALID, "no pages to write")
	}

	paths := make([]string, len(results))
	owners := make(map[string]string, len(results))
	for i, r := range results {
		relPath, err := URLToPath(r.URL)
		if err != nil {
			return err
		}
		if prev, ok := owners[relPath]; ok {
			return sitepdf.Errorf(sitepdf.ECONFLICT, "%s and %s both map to %s", prev, r.URL, relPath)
		}
		owners[relPath] = r.URL
		paths[i] = relPath
	}

	if err := os.RemoveAll(w.tempDir()); err != nil {
		return err
	}

	crawled := w.Now()
	for i, r := range results {
		if err := ctx.Err(); err != nil {
			_ = os.RemoveAll(w.tempDir())
			return err
		}
		if err := w.save(paths[i], r, crawled); err != nil {
			_ = os.RemoveAll(w.tempDir())
			return err
		}
	}

	if err := os.RemoveAll(w.dir); err != nil {
		return err
	}
	return os.Rename(w.tempDir(), w.dir)
}

func (w *MarkdownWriter) save(relPath string, r *sitepdf.PageResult, crawled time.Time) error {
	fullPath := filepath.Join(w.tempDir(), relPath)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	return os.WriteFile(fullPath, []byte(FormatPage(r, crawled)), 0644)
}

// URLToPath converts a page URL to a relative file path. A query string is
// sanitized into the file name so pages differing only by query get
// distinct files.
// Example: https://example.com/docs/api/users → docs/api/users.md
// Example: https://example.com/list?page=2 → list_page-2.md
func URLToPath(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", sitepdf.Errorf(sitepdf.EINVALID, "invalid URL %q", rawURL)
	}

	path := strings.TrimPrefix(u.Path, "/")

	// Root and trailing slash become index.md in that directory
	if path == "" || strings.HasSuffix(path, "/") {
		path += "index"
	}
	if u.RawQuery != "" {
		path += "_" + SafeFilename(u.RawQuery, "")
	}
	path += ".md"

	if !filepath.IsLocal(filepath.FromSlash(path)) {
		return "", sitepdf.Errorf(sitepdf.EINVALID, "path traversal in %q", rawURL)
	}
	return path, nil
}

// FormatPage formats a page result as markdown with YAML frontmatter.
// Source and title are double-quoted YAML scalars.
func FormatPage(r *sitepdf.PageResult, crawled time.Time) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("source: ")
	b.WriteString(strconv.Quote(r.URL))
	b.WriteString("\ntitle: ")
	b.WriteString(strconv.Quote(r.Title))
	if r.ContentHash != "" {
		b.WriteString("\nhash: ")
		b.WriteString(r.ContentHash)
	}
	b.WriteString("\ncrawled: ")
	b.WriteString(crawled.Format("2006-01-02"))
	b.WriteString("\n---\n\n")

	for i, block := range r.Blocks {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(formatBlock(block))
	}
	b.WriteString("\n")
	return b.String()
}

func formatBlock(block sitepdf.Block) string {
	switch {
	case block.Kind.IsHeading():
		return strings.Repeat("#", block.Kind.HeadingLevel()) + " " + block.Text
	case block.Kind == sitepdf.KindListItem:
		return "- " + strings.TrimSpace(strings.TrimPrefix(block.Text, sitepdf.BulletGlyph))
	case block.Kind == sitepdf.KindBlockquote:
		return "> " + block.Text
	case block.Kind == sitepdf.KindPreformatted:
		return "```\n" + block.Text + "\n```"
	default:
		return block.Text
	}
}
