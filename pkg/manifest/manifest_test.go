package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/dotsync/pkg/errors"
)

func TestLoad_MissingFileIsEmptyManifest(t *testing.T) {
	m, err := Load(filepath.Join(t.TempDir(), "manifest.yaml"))
	require.NoError(t, err)

	assert.Equal(t, Version, m.Version)
	assert.Empty(t, m.Symlinks)
	assert.Empty(t, m.Templates)
}

func TestSaveAndLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "manifest.yaml")

	m := New()
	m.AddSymlink("vim/vimrc", "/home/u/.vimrc")
	m.AddSymlink("zsh/zshrc", "/home/u/.zshrc")
	m.AddTemplate("git/gitconfig", "/home/u/.gitconfig")

	require.NoError(t, m.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, m.Symlinks, loaded.Symlinks)
	assert.Equal(t, m.Templates, loaded.Templates)
	assert.Equal(t, Version, loaded.Version)
}

func TestSave_CreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "manifest.yaml")
	require.NoError(t, New().Save(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0644), info.Mode().Perm())
}

func TestSave_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "manifest.yaml")

	m := New()
	m.AddSymlink("a", "/b")
	require.NoError(t, m.Save(path))
	require.NoError(t, m.Save(path)) // overwrite

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "manifest.yaml", entries[0].Name())
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest.yaml")
	require.NoError(t, os.WriteFile(path, []byte("symlinks: [not a map"), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrManifestParse))
}

func TestRemove(t *testing.T) {
	m := New()
	m.AddSymlink("a", "/1")
	m.AddTemplate("b", "/2")

	m.RemoveSymlink("a")
	m.RemoveTemplate("b")
	m.RemoveSymlink("never-added")

	assert.Empty(t, m.Symlinks)
	assert.Empty(t, m.Templates)
}

func TestLoad_NilMapsNormalized(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version: 1\n"), 0644))

	m, err := Load(path)
	require.NoError(t, err)
	assert.NotNil(t, m.Symlinks)
	assert.NotNil(t, m.Templates)
}
