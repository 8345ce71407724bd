package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapErrorPreservesKindAndCause(t *testing.T) {
	cause := errors.New("dial tcp: refused")
	err := WrapError(ErrExtraction, "pdftoppm", cause)
	require.Error(t, err)

	assert.ErrorIs(t, err, ErrExtraction)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "pdftoppm")
}

func TestWrapErrorNil(t *testing.T) {
	assert.NoError(t, WrapError(ErrConfig, "load", nil))
}

func TestIsKindDistinguishesSentinels(t *testing.T) {
	err := WrapError(ErrConfig, "ocr", errors.New("tessdata missing"))
	assert.True(t, IsKind(err, ErrConfig))
	assert.False(t, IsKind(err, ErrNotFound))
	assert.False(t, IsKind(err, ErrExtraction))
}
