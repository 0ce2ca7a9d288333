package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_Formatting(t *testing.T) {
	err := New(ErrConfigLoad, "cannot read config")
	assert.Equal(t, "[CONFIG_LOAD] cannot read config", err.Error())

	wrapped := Wrap(fmt.Errorf("permission denied"), ErrConfigLoad, "cannot read config")
	assert.Equal(t, "[CONFIG_LOAD] cannot read config: permission denied", wrapped.Error())
}

func TestWrap_NilReturnsNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, ErrInternal, "nope"))
	assert.Nil(t, Wrapf(nil, ErrInternal, "nope %d", 1))
}

func TestUnwrap(t *testing.T) {
	inner := fmt.Errorf("inner")
	err := Wrap(inner, ErrFileWrite, "outer")

	assert.Equal(t, inner, stderrors.Unwrap(err))
	assert.True(t, stderrors.Is(err, inner))
}

func TestIs_MatchesByCode(t *testing.T) {
	err := Newf(ErrSymlinkCreate, "cannot link %s", "/a")
	assert.True(t, stderrors.Is(err, New(ErrSymlinkCreate, "anything")))
	assert.False(t, stderrors.Is(err, New(ErrFileWrite, "anything")))
}

func TestIsErrorCode_ThroughWrapping(t *testing.T) {
	err := New(ErrManifestParse, "bad yaml")
	wrapped := fmt.Errorf("loading state: %w", err)

	assert.True(t, IsErrorCode(wrapped, ErrManifestParse))
	assert.False(t, IsErrorCode(wrapped, ErrManifestLoad))
	assert.Equal(t, ErrManifestParse, GetErrorCode(wrapped))
}

func TestGetErrorCode_Fallback(t *testing.T) {
	assert.Equal(t, ErrUnknown, GetErrorCode(fmt.Errorf("plain")))
}

func TestWithDetail(t *testing.T) {
	err := New(ErrFileWrite, "write failed").
		WithDetail("path", "/tmp/x").
		WithDetail("attempt", 2)

	require.NotNil(t, err.Details)
	assert.Equal(t, "/tmp/x", err.Details["path"])
	assert.Equal(t, 2, err.Details["attempt"])
}
