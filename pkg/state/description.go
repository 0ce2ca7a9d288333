package state

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/dotsync/pkg/types"
)

// SymlinkDescription is one desired or existing symlink deployment: a source
// file under management that should appear at Target.Target as a symlink.
type SymlinkDescription struct {
	Source string
	Target types.SymbolicTarget
}

// TemplateDescription is one desired or existing template deployment. Cache
// is the deterministic location of the rendered output for Source, namespaced
// under the cache root so per-template intermediate state is tracked
// independently of the final target.
type TemplateDescription struct {
	Source string
	Target types.TemplateTarget
	Cache  string
}

// NewTemplateDescription derives the cache path from the cache root and
// source path.
func NewTemplateDescription(source string, target types.TemplateTarget, cacheRoot string) TemplateDescription {
	return TemplateDescription{
		Source: source,
		Target: target,
		Cache:  filepath.Join(cacheRoot, source),
	}
}

// Compare orders symlink descriptions by (Source, Target.Target). The same
// key decides identity: a zero result means the two descriptions refer to the
// same deployed artifact. Owner is excluded on purpose.
func (d SymlinkDescription) Compare(other SymlinkDescription) int {
	if c := strings.Compare(d.Source, other.Source); c != 0 {
		return c
	}
	return strings.Compare(d.Target.Target, other.Target.Target)
}

// Compare orders template descriptions by (Source, Target.Target). Owner,
// Append, Prepend, and Cache are excluded from the key.
func (d TemplateDescription) Compare(other TemplateDescription) int {
	if c := strings.Compare(d.Source, other.Source); c != 0 {
		return c
	}
	return strings.Compare(d.Target.Target, other.Target.Target)
}

// ApplyActions attaches the target's literal append and prepend text around
// rendered content. Concatenation is verbatim, no escaping or trimming, and
// both decorations may apply at once.
func (d TemplateDescription) ApplyActions(content string) string {
	return d.Target.Prepend + content + d.Target.Append
}

func (d SymlinkDescription) String() string {
	return fmt.Sprintf("symlink %q -> %q", d.Source, d.Target.Target)
}

func (d TemplateDescription) String() string {
	return fmt.Sprintf("template %q -> %q", d.Source, d.Target.Target)
}
