package fs_test

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/catsync/internal/adapters/fs"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestWalker_WalkFiles(t *testing.T) {
	// tmp/
	//   .git/config
	//   ignored/file
	//   ui/icons.atlas
	//   ui/sprites/a.png
	//   README.md
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, ".git", "config"), "git config")
	writeFile(t, filepath.Join(tmpDir, "ignored", "file"), "ignored content")
	writeFile(t, filepath.Join(tmpDir, "ui", "icons.atlas"), "sprites: []")
	writeFile(t, filepath.Join(tmpDir, "ui", "sprites", "a.png"), "png")
	writeFile(t, filepath.Join(tmpDir, "README.md"), "# Readme")

	walker := fs.NewWalker()

	got := slices.Collect(walker.WalkFiles(tmpDir, []string{"ignored"}))
	slices.Sort(got)

	want := []string{
		filepath.Join(tmpDir, "README.md"),
		filepath.Join(tmpDir, "ui", "icons.atlas"),
		filepath.Join(tmpDir, "ui", "sprites", "a.png"),
	}
	assert.Equal(t, want, got)
}

func TestWalker_WalkRelative(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "ui", "sprites", "a.png"), "png")
	writeFile(t, filepath.Join(tmpDir, "ui", "sprites", "b.png"), "png")
	writeFile(t, filepath.Join(tmpDir, "ui", "sprites", "b.png.meta"), "meta")

	walker := fs.NewWalker()

	got := slices.Collect(walker.WalkRelative(filepath.Join(tmpDir, "ui"), []string{"*.meta"}))
	slices.Sort(got)

	assert.Equal(t, []string{"sprites/a.png", "sprites/b.png"}, got)
}

func TestWalker_EarlyStop(t *testing.T) {
	tmpDir := t.TempDir()
	for _, name := range []string{"a", "b", "c"} {
		writeFile(t, filepath.Join(tmpDir, name), name)
	}

	count := 0
	for range fs.NewWalker().WalkFiles(tmpDir, nil) {
		count++
		break
	}
	assert.Equal(t, 1, count)
}

func TestHasher(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "catalog_main.json")
	writeFile(t, path, `{"id":"main"}`)

	h := fs.NewHasher()

	fileHash, err := h.ComputeFileHash(path)
	require.NoError(t, err)
	assert.Len(t, fileHash, 16)
	assert.Equal(t, h.HashBytes([]byte(`{"id":"main"}`)), fileHash)
	assert.NotEqual(t, h.HashBytes([]byte(`{"id":"dlc"}`)), fileHash)

	_, err = h.ComputeFileHash(filepath.Join(tmpDir, "missing"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open file")
}
