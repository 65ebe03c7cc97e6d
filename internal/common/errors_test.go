package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapError(t *testing.T) {
	assert.Nil(t, WrapError(nil, "context"))

	cause := errors.New("disk full")
	wrapped := WrapError(cause, "xlsx write")
	require.Error(t, wrapped)
	assert.Equal(t, "xlsx write: disk full", wrapped.Error())
	assert.True(t, errors.Is(wrapped, cause))
}

func TestAppErrorUnwrap(t *testing.T) {
	err := NewAppError("CONFIG_ERROR", "bad value", ErrInvalidInput)
	assert.True(t, errors.Is(err, ErrInvalidInput))
	assert.Equal(t, "CONFIG_ERROR: bad value: invalid input", err.Error())
}
