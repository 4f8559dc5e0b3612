//go:build !integration

package fileutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o644))

	assert.True(t, FileExists(path), "Existing file should be detected")
	assert.False(t, FileExists(filepath.Join(dir, "missing.json")), "Missing file should not be detected")
	assert.False(t, FileExists(dir), "Directory should not count as a file")
}

func TestDirExists(t *testing.T) {
	dir := t.TempDir()
	assert.True(t, DirExists(dir), "Existing directory should be detected")
	assert.False(t, DirExists(filepath.Join(dir, "missing")), "Missing directory should not be detected")

	path := filepath.Join(dir, "file.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o644))
	assert.False(t, DirExists(path), "File should not count as a directory")
}

func TestListJSONFiles(t *testing.T) {
	t.Run("missing directory yields nothing", func(t *testing.T) {
		files, err := ListJSONFiles(filepath.Join(t.TempDir(), "missing"))
		require.NoError(t, err, "Missing directory should not be an error")
		assert.Empty(t, files, "Missing directory should yield no files")
	})

	t.Run("filters and sorts", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "b.json"), []byte("{}"), 0o644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "a.json"), []byte("{}"), 0o644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "readme.md"), []byte("x"), 0o644))
		require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.json"), 0o755))

		files, err := ListJSONFiles(dir)
		require.NoError(t, err, "Listing should succeed")
		require.Len(t, files, 2, "Only regular JSON files should be listed")
		assert.Equal(t, filepath.Join(dir, "a.json"), files[0], "Listing should be sorted")
		assert.Equal(t, filepath.Join(dir, "b.json"), files[1], "Listing should be sorted")
	})

	t.Run("nested files are not discovered", func(t *testing.T) {
		dir := t.TempDir()
		sub := filepath.Join(dir, "nested")
		require.NoError(t, os.Mkdir(sub, 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(sub, "deep.json"), []byte("{}"), 0o644))

		files, err := ListJSONFiles(dir)
		require.NoError(t, err, "Listing should succeed")
		assert.Empty(t, files, "Discovery is non-recursive")
	})
}
