// Package manifest persists the existing deployed state: for every source
// file dotsync has deployed, the target path it was deployed to. The manifest
// is the authority on "existing state" for reconciliation; disk is never
// scanned directly.
package manifest

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/dotsync/pkg/errors"
	"github.com/arthur-debert/dotsync/pkg/logging"
)

// Version is written into every manifest for forward compatibility.
const Version = 1

// Manifest records deployed artifacts as source path to target path
// mappings, one map per artifact kind. These maps feed state.New directly.
type Manifest struct {
	Version   int               `yaml:"version"`
	Symlinks  map[string]string `yaml:"symlinks"`
	Templates map[string]string `yaml:"templates"`
}

// New returns an empty manifest.
func New() *Manifest {
	return &Manifest{
		Version:   Version,
		Symlinks:  make(map[string]string),
		Templates: make(map[string]string),
	}
}

// Load reads the manifest at path. A missing file is not an error: it means
// nothing has been deployed yet, so an empty manifest is returned.
func Load(path string) (*Manifest, error) {
	logger := logging.GetLogger("manifest")

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		logger.Debug().Str("path", path).Msg("no manifest found, assuming empty deployed state")
		return New(), nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrManifestLoad, "cannot read manifest %s", path)
	}

	m := New()
	if err := yaml.Unmarshal(data, m); err != nil {
		return nil, errors.Wrapf(err, errors.ErrManifestParse, "cannot parse manifest %s", path)
	}
	if m.Symlinks == nil {
		m.Symlinks = make(map[string]string)
	}
	if m.Templates == nil {
		m.Templates = make(map[string]string)
	}

	logger.Debug().
		Str("path", path).
		Int("symlinks", len(m.Symlinks)).
		Int("templates", len(m.Templates)).
		Msg("loaded manifest")

	return m, nil
}

// Save writes the manifest atomically: marshal to a temp file in the target
// directory, then rename over path. Parent directories are created as needed.
func (m *Manifest) Save(path string) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return errors.Wrap(err, errors.ErrManifestWrite, "cannot marshal manifest")
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrManifestWrite, "cannot create manifest directory %s", dir)
	}

	tmp, err := os.CreateTemp(dir, ".manifest-*.yaml")
	if err != nil {
		return errors.Wrap(err, errors.ErrManifestWrite, "cannot create temp manifest")
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return errors.Wrap(err, errors.ErrManifestWrite, "cannot write temp manifest")
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return errors.Wrap(err, errors.ErrManifestWrite, "cannot close temp manifest")
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		os.Remove(tmpPath)
		return errors.Wrapf(err, errors.ErrManifestWrite, "cannot chmod manifest %s", tmpPath)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return errors.Wrapf(err, errors.ErrManifestWrite, "cannot replace manifest %s", path)
	}

	logger := logging.GetLogger("manifest")
	logger.Debug().
		Str("path", path).
		Int("symlinks", len(m.Symlinks)).
		Int("templates", len(m.Templates)).
		Msg("saved manifest")

	return nil
}

// AddSymlink records a deployed symlink.
func (m *Manifest) AddSymlink(source, target string) {
	m.Symlinks[source] = target
}

// AddTemplate records a deployed template.
func (m *Manifest) AddTemplate(source, target string) {
	m.Templates[source] = target
}

// RemoveSymlink drops a symlink record.
func (m *Manifest) RemoveSymlink(source string) {
	delete(m.Symlinks, source)
}

// RemoveTemplate drops a template record.
func (m *Manifest) RemoveTemplate(source string) {
	delete(m.Templates, source)
}
