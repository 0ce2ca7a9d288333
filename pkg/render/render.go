// Package render turns template sources into their base content by
// substituting ${name} variable references. Decoration of the result
// (append/prepend) is applied afterwards by the state package.
package render

import (
	"os"
	"strings"

	"github.com/arthur-debert/dotsync/pkg/errors"
	"github.com/arthur-debert/dotsync/pkg/logging"
)

// Renderer substitutes variables into template content. Variables come from
// the config [variables] table layered over a small set of environment
// defaults.
type Renderer struct {
	variables map[string]string
}

// New creates a Renderer. Config variables override the environment defaults
// (HOME, USER, SHELL, HOSTNAME).
func New(configVars map[string]string) *Renderer {
	vars := make(map[string]string, len(configVars)+4)
	vars["HOME"] = os.Getenv("HOME")
	vars["USER"] = os.Getenv("USER")
	vars["SHELL"] = os.Getenv("SHELL")
	hostname, _ := os.Hostname()
	vars["HOSTNAME"] = hostname

	for k, v := range configVars {
		vars[k] = v
	}

	return &Renderer{variables: vars}
}

// RenderFile reads the template at path and renders it.
func (r *Renderer) RenderFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrTemplateRead, "cannot read template %s", path)
	}
	return r.Render(string(data)), nil
}

// Render substitutes every ${name} reference found in the variables map.
// Unknown references and bare $name forms are left intact so that shell
// syntax in deployed files survives rendering. This is a plain substitution
// pass, not a template engine.
func (r *Renderer) Render(content string) string {
	var b strings.Builder
	rest := content
	for {
		i := strings.Index(rest, "${")
		if i < 0 {
			b.WriteString(rest)
			break
		}
		j := strings.Index(rest[i+2:], "}")
		if j < 0 {
			b.WriteString(rest)
			break
		}
		b.WriteString(rest[:i])
		name := rest[i+2 : i+2+j]
		if value, ok := r.variables[name]; ok {
			b.WriteString(value)
		} else {
			b.WriteString(rest[i : i+2+j+1])
		}
		rest = rest[i+2+j+1:]
	}
	result := b.String()

	logger := logging.GetLogger("render")
	logger.Trace().
		Int("bytes", len(result)).
		Msg("rendered template content")

	return result
}

// Variables exposes the effective variable map, mainly for diagnostics.
func (r *Renderer) Variables() map[string]string {
	out := make(map[string]string, len(r.variables))
	for k, v := range r.variables {
		out[k] = v
	}
	return out
}

// HasReferences reports whether content contains any ${name} reference.
func HasReferences(content string) bool {
	return strings.Contains(content, "${")
}
