// Package fs writes crawl output to the local file system.
package fs

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/sitepdf"
)

// DefaultFilename is used when a name sanitizes to nothing.
const DefaultFilename = "scraped-doc"

// SafeFilename lower-cases name, replaces every character outside a-z and
// 0-9 with "-" and appends ext (given without the dot).
func SafeFilename(name, ext string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultFilename
	}
	safe := strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			return r
		}
		return '-'
	}, strings.ToLower(name))
	if ext == "" {
		return safe
	}
	return safe + "." + ext
}

// OutputFile is written in place at path+".tmp" and only appears at path
// after Commit.
type OutputFile struct {
	*os.File
	path string
	done bool
}

// CreateOutputFile creates the temporary file for path, creating parent
// directories as needed.
func CreateOutputFile(path string) (*OutputFile, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	f, err := os.Create(path + ".tmp")
	if err != nil {
		return nil, err
	}
	return &OutputFile{File: f, path: path}, nil
}

// Path returns the final path of the file.
func (f *OutputFile) Path() string {
	return f.path
}

// Commit closes the file and atomically moves it into place.
func (f *OutputFile) Commit() error {
	if f.done {
		return sitepdf.Errorf(sitepdf.ECONFLICT, "output file %s already closed", f.path)
	}
	f.done = true
	if err := f.File.Close(); err != nil {
		_ = os.Remove(f.File.Name())
		return err
	}
	return os.Rename(f.File.Name(), f.path)
}

// Abort closes and removes the temporary file. It is a no-op after Commit,
// so it is safe to defer.
func (f *OutputFile) Abort() error {
	if f.done {
		return nil
	}
	f.done = true
	_ = f.File.Close()
	return os.Remove(f.File.Name())
}
