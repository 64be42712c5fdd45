package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/awahed/dtcref/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteReport(t *testing.T) {
	t.Parallel()

	t.Run("writes the file contents", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "report.html")

		err := fs.WriteReport(path, []byte("<html></html>"))

		require.NoError(t, err)
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "<html></html>", string(data))
	})

	t.Run("creates missing parent directories", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "reports", "2026", "report.json")

		err := fs.WriteReport(path, []byte("[]"))

		require.NoError(t, err)
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "[]", string(data))
	})

	t.Run("replaces an existing report", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "report.txt")
		require.NoError(t, os.WriteFile(path, []byte("old"), 0644))

		err := fs.WriteReport(path, []byte("new"))

		require.NoError(t, err)
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "new", string(data))
	})

	t.Run("leaves no temporary files behind", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "report.txt")

		require.NoError(t, fs.WriteReport(path, []byte("content")))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "report.txt", entries[0].Name())
	})
}
