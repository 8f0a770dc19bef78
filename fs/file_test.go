package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/sitepdf/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSafeFilename(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		ext  string
		want string
	}{
		{name: "keeps lowercase alphanumerics", in: "report2024", ext: "pdf", want: "report2024.pdf"},
		{name: "lowercases letters", in: "My Docs", ext: "pdf", want: "my-docs.pdf"},
		{name: "replaces punctuation", in: "a/b.c_d", ext: "pdf", want: "a-b-c-d.pdf"},
		{name: "replaces non-ASCII letters", in: "café", ext: "pdf", want: "caf-.pdf"},
		{name: "defaults empty names", in: "  ", ext: "pdf", want: "scraped-doc.pdf"},
		{name: "omits empty extension", in: "Site", ext: "", want: "site"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, fs.SafeFilename(tt.in, tt.ext))
		})
	}
}

func TestOutputFile(t *testing.T) {
	t.Parallel()

	t.Run("appears only after commit", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "out", "doc.pdf")
		f, err := fs.CreateOutputFile(path)
		require.NoError(t, err)

		_, err = f.WriteString("%PDF-1.3")
		require.NoError(t, err)

		_, err = os.Stat(path)
		assert.True(t, os.IsNotExist(err), "final file should not exist until commit")
		_, err = os.Stat(path + ".tmp")
		require.NoError(t, err)

		require.NoError(t, f.Commit())

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "%PDF-1.3", string(data))
		_, err = os.Stat(path + ".tmp")
		assert.True(t, os.IsNotExist(err))
		assert.Equal(t, path, f.Path())
	})

	t.Run("abort removes the temporary file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "doc.pdf")
		f, err := fs.CreateOutputFile(path)
		require.NoError(t, err)

		require.NoError(t, f.Abort())

		_, err = os.Stat(path + ".tmp")
		assert.True(t, os.IsNotExist(err))
		_, err = os.Stat(path)
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("abort after commit keeps the file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "doc.pdf")
		f, err := fs.CreateOutputFile(path)
		require.NoError(t, err)
		require.NoError(t, f.Commit())

		require.NoError(t, f.Abort())

		_, err = os.Stat(path)
		require.NoError(t, err)
	})

	t.Run("replaces an existing file on commit", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "doc.pdf")
		require.NoError(t, os.WriteFile(path, []byte("old"), 0644))

		f, err := fs.CreateOutputFile(path)
		require.NoError(t, err)
		_, err = f.WriteString("new")
		require.NoError(t, err)
		require.NoError(t, f.Commit())

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "new", string(data))
	})
}
