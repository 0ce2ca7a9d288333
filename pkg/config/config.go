// Package config loads the dotsync configuration file and turns it into the
// desired-state mappings the reconciler consumes.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/dotsync/pkg/errors"
	"github.com/arthur-debert/dotsync/pkg/logging"
	"github.com/arthur-debert/dotsync/pkg/types"
)

// Config is the parsed desired state: where every managed source file should
// be deployed, plus the variables available to template rendering.
type Config struct {
	Symlinks  map[string]types.SymbolicTarget
	Templates map[string]types.TemplateTarget
	Variables map[string]string
}

// rawConfig mirrors the TOML document. Symlink and template values are either
// a bare target string or a table, so they decode through interface{} first.
type rawConfig struct {
	Variables map[string]string      `toml:"variables"`
	Symlinks  map[string]interface{} `toml:"symlinks"`
	Templates map[string]interface{} `toml:"templates"`
}

// Load reads and parses the configuration file at path.
func Load(path string) (*Config, error) {
	logger := logging.GetLogger("config")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "cannot read config file %s", path)
	}

	var raw rawConfig
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "cannot parse config file %s", path)
	}

	cfg := &Config{
		Symlinks:  make(map[string]types.SymbolicTarget, len(raw.Symlinks)),
		Templates: make(map[string]types.TemplateTarget, len(raw.Templates)),
		Variables: raw.Variables,
	}
	if cfg.Variables == nil {
		cfg.Variables = make(map[string]string)
	}

	for source, value := range raw.Symlinks {
		target, err := parseSymlinkTarget(value)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigValid, "invalid symlink entry %q", source)
		}
		cfg.Symlinks[source] = target
	}

	for source, value := range raw.Templates {
		target, err := parseTemplateTarget(value)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigValid, "invalid template entry %q", source)
		}
		cfg.Templates[source] = target
	}

	logger.Debug().
		Str("path", path).
		Int("symlinks", len(cfg.Symlinks)).
		Int("templates", len(cfg.Templates)).
		Msg("loaded config")

	return cfg, nil
}

// parseSymlinkTarget accepts either "~/.vimrc" or
// { target = "~/.vimrc", owner = "user:group" }.
func parseSymlinkTarget(value interface{}) (types.SymbolicTarget, error) {
	switch v := value.(type) {
	case string:
		return types.SymbolicTarget{Target: ExpandHome(v)}, nil
	case map[string]interface{}:
		fields, err := targetFields(v, false)
		if err != nil {
			return types.SymbolicTarget{}, err
		}
		return types.SymbolicTarget{Target: fields.target, Owner: fields.owner}, nil
	default:
		return types.SymbolicTarget{}, fmt.Errorf("must be a target string or a table, got %T", value)
	}
}

// parseTemplateTarget accepts only the table form since templates carry
// optional append/prepend decoration.
func parseTemplateTarget(value interface{}) (types.TemplateTarget, error) {
	switch v := value.(type) {
	case string:
		return types.TemplateTarget{Target: ExpandHome(v)}, nil
	case map[string]interface{}:
		fields, err := targetFields(v, true)
		if err != nil {
			return types.TemplateTarget{}, err
		}
		return types.TemplateTarget{
			Target:  fields.target,
			Owner:   fields.owner,
			Append:  fields.append,
			Prepend: fields.prepend,
		}, nil
	default:
		return types.TemplateTarget{}, fmt.Errorf("must be a target string or a table, got %T", value)
	}
}

type parsedFields struct {
	target  string
	owner   *types.Owner
	append  string
	prepend string
}

func targetFields(table map[string]interface{}, allowDecoration bool) (parsedFields, error) {
	var fields parsedFields

	for key, value := range table {
		str, ok := value.(string)
		if !ok {
			return fields, fmt.Errorf("field %q must be a string, got %T", key, value)
		}
		switch key {
		case "target":
			fields.target = ExpandHome(str)
		case "owner":
			owner, err := types.ParseOwner(str)
			if err != nil {
				return fields, err
			}
			fields.owner = owner
		case "append":
			if !allowDecoration {
				return fields, fmt.Errorf("field %q is only valid for templates", key)
			}
			fields.append = str
		case "prepend":
			if !allowDecoration {
				return fields, fmt.Errorf("field %q is only valid for templates", key)
			}
			fields.prepend = str
		default:
			return fields, fmt.Errorf("unknown field %q", key)
		}
	}

	if fields.target == "" {
		return fields, fmt.Errorf("missing required field \"target\"")
	}
	return fields, nil
}

// ExpandHome replaces a leading ~ with the current user's home directory.
func ExpandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
	}
	return path
}
