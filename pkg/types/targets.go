// Package types defines the value types shared across dotsync: deployment
// target descriptors and the ownership attached to deployed artifacts.
package types

import (
	"fmt"
	"strings"
)

// Owner identifies the user and optional group a deployed artifact should
// belong to. A nil *Owner means "whoever runs dotsync", which is also what
// existing-state inspection reports since ownership cannot be recovered from
// the manifest.
type Owner struct {
	User  string
	Group string
}

// ParseOwner parses "user" or "user:group" as written in config files.
func ParseOwner(s string) (*Owner, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.SplitN(s, ":", 2)
	if parts[0] == "" {
		return nil, fmt.Errorf("owner %q has empty user", s)
	}
	owner := &Owner{User: parts[0]}
	if len(parts) == 2 {
		if parts[1] == "" {
			return nil, fmt.Errorf("owner %q has empty group", s)
		}
		owner.Group = parts[1]
	}
	return owner, nil
}

// String renders the owner back into the "user:group" config form.
func (o *Owner) String() string {
	if o == nil {
		return ""
	}
	if o.Group == "" {
		return o.User
	}
	return o.User + ":" + o.Group
}

// SymbolicTarget describes where a symlink should point and who should own it.
type SymbolicTarget struct {
	Target string
	Owner  *Owner
}

// TemplateTarget describes a template's destination plus the literal text
// attached around its rendered content. Empty Append/Prepend means no
// decoration; concatenating the empty string is a no-op, so no separate
// presence flag is needed.
type TemplateTarget struct {
	Target  string
	Owner   *Owner
	Append  string
	Prepend string
}
