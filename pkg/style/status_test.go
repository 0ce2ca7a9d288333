package style

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arthur-debert/dotsync/pkg/state"
	"github.com/arthur-debert/dotsync/pkg/types"
)

func TestRenderStatus_Plain(t *testing.T) {
	desired := map[string]types.SymbolicTarget{
		"file1s": {Target: "file1t"},
		"file5s": {Target: "file5t"},
	}
	existing := map[string]string{
		"file1s": "file1t",
		"file2s": "file2t",
	}

	st := state.New(desired, nil, existing, nil, "cache")
	out := RenderStatus(st, false)

	assert.Contains(t, out, "To delete (1)")
	assert.Contains(t, out, `symlink "file2s" -> "file2t"`)
	assert.Contains(t, out, "To create (1)")
	assert.Contains(t, out, `symlink "file5s" -> "file5t"`)
	assert.Contains(t, out, "Up to date (1)")
	assert.Contains(t, out, `symlink "file1s" -> "file1t"`)
	assert.NotContains(t, out, "\x1b[", "plain output must not contain ANSI escapes")
}

func TestRenderStatus_InSync(t *testing.T) {
	desired := map[string]types.SymbolicTarget{"a": {Target: "1"}}
	existing := map[string]string{"a": "1"}

	st := state.New(desired, nil, existing, nil, "cache")
	out := RenderStatus(st, false)

	assert.Contains(t, out, "Everything is in sync.")
	assert.NotContains(t, out, "To delete")
	assert.NotContains(t, out, "To create")
}

func TestRenderStatus_EmptyState(t *testing.T) {
	st := state.New(nil, nil, nil, nil, "cache")
	out := RenderStatus(st, false)

	assert.Equal(t, "Everything is in sync.", strings.TrimSpace(out))
}

func TestRenderStatus_TemplatesListed(t *testing.T) {
	desired := map[string]types.TemplateTarget{
		"git/gitconfig": {Target: "/home/u/.gitconfig"},
	}

	st := state.New(nil, desired, nil, nil, "cache")
	out := RenderStatus(st, false)

	assert.Contains(t, out, `template "git/gitconfig" -> "/home/u/.gitconfig"`)
}
