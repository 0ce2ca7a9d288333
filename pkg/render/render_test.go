package render

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/dotsync/pkg/errors"
)

func TestRender_Substitution(t *testing.T) {
	r := New(map[string]string{"email": "me@example.com", "name": "Me"})

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "single reference",
			content: "email = ${email}",
			want:    "email = me@example.com",
		},
		{
			name:    "multiple references",
			content: "${name} <${email}>",
			want:    "Me <me@example.com>",
		},
		{
			name:    "unknown reference left intact",
			content: "path = ${XDG_DATA_HOME}/app",
			want:    "path = ${XDG_DATA_HOME}/app",
		},
		{
			name:    "bare dollar untouched",
			content: "export PATH=$PATH:/bin",
			want:    "export PATH=$PATH:/bin",
		},
		{
			name:    "unterminated reference untouched",
			content: "broken ${email",
			want:    "broken ${email",
		},
		{
			name:    "no references",
			content: "plain text",
			want:    "plain text",
		},
		{
			name:    "empty content",
			content: "",
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Render(tt.content))
		})
	}
}

func TestNew_ConfigOverridesEnvironment(t *testing.T) {
	t.Setenv("USER", "envuser")

	r := New(map[string]string{"USER": "configuser"})
	assert.Equal(t, "user: configuser", r.Render("user: ${USER}"))
}

func TestNew_EnvironmentDefaults(t *testing.T) {
	t.Setenv("HOME", "/home/testuser")

	r := New(nil)
	assert.Equal(t, "/home/testuser", r.Render("${HOME}"))
}

func TestRenderFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gitconfig")
	require.NoError(t, os.WriteFile(path, []byte("[user]\n  email = ${email}\n"), 0644))

	r := New(map[string]string{"email": "me@example.com"})
	content, err := r.RenderFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[user]\n  email = me@example.com\n", content)
}

func TestRenderFile_Missing(t *testing.T) {
	r := New(nil)
	_, err := r.RenderFile(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrTemplateRead))
}

func TestVariables_ReturnsCopy(t *testing.T) {
	r := New(map[string]string{"a": "1"})
	vars := r.Variables()
	vars["a"] = "mutated"

	assert.Equal(t, "1", r.Render("${a}"))
}

func TestHasReferences(t *testing.T) {
	assert.True(t, HasReferences("a ${b} c"))
	assert.False(t, HasReferences("a $b c"))
}
