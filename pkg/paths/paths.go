// Package paths provides centralized path handling for dotsync.
// It implements XDG Base Directory specification compliance and
// provides a consistent API for all path operations in the codebase.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/arthur-debert/dotsync/pkg/errors"
)

// Environment variable names
const (
	// EnvDotfilesRoot is the primary environment variable for dotfiles location
	EnvDotfilesRoot = "DOTSYNC_ROOT"

	// EnvDataDir overrides the XDG data directory for dotsync
	EnvDataDir = "DOTSYNC_DATA_DIR"

	// EnvCacheDir overrides the XDG cache directory for dotsync
	EnvCacheDir = "DOTSYNC_CACHE_DIR"
)

// Default directories and files
const (
	// DefaultDotfilesDir is the default directory name for dotfiles
	DefaultDotfilesDir = "dotfiles"

	// AppDirName is the directory name for dotsync-specific files
	AppDirName = "dotsync"

	// ConfigFile is the name of the configuration file in the dotfiles root
	ConfigFile = "dotsync.toml"

	// ManifestFile is the name of the deployed-state manifest
	ManifestFile = "manifest.yaml"
)

// Paths resolves every location dotsync reads or writes. Resolution order is
// explicit argument, then environment override, then XDG default.
type Paths struct {
	dotfilesRoot string
	dataDir      string
	cacheDir     string
}

// New creates a Paths instance. dotfilesRoot may be empty, in which case
// DOTSYNC_ROOT and then ~/dotfiles are used.
func New(dotfilesRoot string) (*Paths, error) {
	root := dotfilesRoot
	if root == "" {
		root = os.Getenv(EnvDotfilesRoot)
	}
	if root == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "cannot determine home directory")
		}
		root = filepath.Join(home, DefaultDotfilesDir)
	}
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "invalid dotfiles root %s", root)
	}

	dataDir := os.Getenv(EnvDataDir)
	if dataDir == "" {
		dataDir = filepath.Join(xdg.DataHome, AppDirName)
	}

	cacheDir := os.Getenv(EnvCacheDir)
	if cacheDir == "" {
		cacheDir = filepath.Join(xdg.CacheHome, AppDirName)
	}

	return &Paths{
		dotfilesRoot: root,
		dataDir:      dataDir,
		cacheDir:     cacheDir,
	}, nil
}

// DotfilesRoot returns the root directory holding managed source files.
func (p *Paths) DotfilesRoot() string {
	return p.dotfilesRoot
}

// DataDir returns the directory for dotsync's persistent state.
func (p *Paths) DataDir() string {
	return p.dataDir
}

// CacheDir returns the root under which rendered template output is cached,
// namespaced by source path.
func (p *Paths) CacheDir() string {
	return p.cacheDir
}

// ConfigPath returns the expected location of the configuration file.
func (p *Paths) ConfigPath() string {
	return filepath.Join(p.dotfilesRoot, ConfigFile)
}

// ManifestPath returns the location of the deployed-state manifest.
func (p *Paths) ManifestPath() string {
	return filepath.Join(p.dataDir, ManifestFile)
}

// SourcePath resolves a config-relative source path against the dotfiles root.
func (p *Paths) SourcePath(source string) string {
	return filepath.Join(p.dotfilesRoot, source)
}
