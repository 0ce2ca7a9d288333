package cli

import (
	"github.com/arthur-debert/dotsync/pkg/config"
	"github.com/arthur-debert/dotsync/pkg/manifest"
	"github.com/arthur-debert/dotsync/pkg/paths"
	"github.com/arthur-debert/dotsync/pkg/render"
	"github.com/arthur-debert/dotsync/pkg/state"
)

// environment bundles everything a command needs for one reconciliation pass.
type environment struct {
	paths    *paths.Paths
	config   *config.Config
	manifest *manifest.Manifest
	renderer *render.Renderer
}

// loadEnvironment resolves paths and loads config plus the deployed-state
// manifest.
func loadEnvironment() (*environment, error) {
	p, err := paths.New(rootFlag)
	if err != nil {
		return nil, err
	}

	cfgPath := configFile
	if cfgPath == "" {
		cfgPath = p.ConfigPath()
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}

	man, err := manifest.Load(p.ManifestPath())
	if err != nil {
		return nil, err
	}

	return &environment{
		paths:    p,
		config:   cfg,
		manifest: man,
		renderer: render.New(cfg.Variables),
	}, nil
}

// loadBareEnvironment skips config loading; undeploy only needs paths and
// the manifest, and must keep working after the config file is gone.
func loadBareEnvironment() (*environment, error) {
	p, err := paths.New(rootFlag)
	if err != nil {
		return nil, err
	}

	man, err := manifest.Load(p.ManifestPath())
	if err != nil {
		return nil, err
	}

	return &environment{
		paths:    p,
		manifest: man,
		renderer: render.New(nil),
	}, nil
}

// fileState builds the reconciliation aggregate from the loaded desired and
// existing state.
func (env *environment) fileState() *state.FileState {
	return state.New(
		env.config.Symlinks,
		env.config.Templates,
		env.manifest.Symlinks,
		env.manifest.Templates,
		env.paths.CacheDir(),
	)
}

// undeployState builds an aggregate with empty desired state, so everything
// currently deployed classifies as deleted.
func (env *environment) undeployState() *state.FileState {
	return state.New(
		nil,
		nil,
		env.manifest.Symlinks,
		env.manifest.Templates,
		env.paths.CacheDir(),
	)
}
