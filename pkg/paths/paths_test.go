package paths

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ExplicitRoot(t *testing.T) {
	root := t.TempDir()

	p, err := New(root)
	require.NoError(t, err)
	assert.Equal(t, root, p.DotfilesRoot())
}

func TestNew_EnvRoot(t *testing.T) {
	root := t.TempDir()
	t.Setenv(EnvDotfilesRoot, root)

	p, err := New("")
	require.NoError(t, err)
	assert.Equal(t, root, p.DotfilesRoot())
}

func TestNew_ArgumentBeatsEnv(t *testing.T) {
	argRoot := t.TempDir()
	t.Setenv(EnvDotfilesRoot, "/somewhere/else")

	p, err := New(argRoot)
	require.NoError(t, err)
	assert.Equal(t, argRoot, p.DotfilesRoot())
}

func TestNew_DefaultRootUnderHome(t *testing.T) {
	t.Setenv("HOME", "/home/testuser")
	t.Setenv(EnvDotfilesRoot, "")

	p, err := New("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/home/testuser", DefaultDotfilesDir), p.DotfilesRoot())
}

func TestNew_DirOverrides(t *testing.T) {
	dataDir := t.TempDir()
	cacheDir := t.TempDir()
	t.Setenv(EnvDataDir, dataDir)
	t.Setenv(EnvCacheDir, cacheDir)

	p, err := New(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, dataDir, p.DataDir())
	assert.Equal(t, cacheDir, p.CacheDir())
}

func TestDerivedPaths(t *testing.T) {
	root := t.TempDir()
	dataDir := t.TempDir()
	t.Setenv(EnvDataDir, dataDir)

	p, err := New(root)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(root, ConfigFile), p.ConfigPath())
	assert.Equal(t, filepath.Join(dataDir, ManifestFile), p.ManifestPath())
	assert.Equal(t, filepath.Join(root, "vim", "vimrc"), p.SourcePath("vim/vimrc"))
}
