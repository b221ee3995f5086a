package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCode_String(t *testing.T) {
	tests := []struct {
		code     Code
		expected string
	}{
		{Unknown, "Unknown"},
		{Upstream, "Upstream"},
		{InvalidParam, "InvalidParam"},
		{InvalidState, "InvalidState"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.code.String())
		})
	}

	assert.Equal(t, "Code(999)", Code(999).String())
}

func TestNew(t *testing.T) {
	err := New(InvalidParam, "bad destination")

	require.NotNil(t, err)
	assert.Equal(t, InvalidParam, err.Code)
	assert.Equal(t, "bad destination", err.Message)
	assert.Empty(t, err.Op)
	assert.Nil(t, err.Cause)
}

func TestNewf(t *testing.T) {
	err := Newf(InvalidParam, "invalid log level %q", "loud")

	require.NotNil(t, err)
	assert.Equal(t, `invalid log level "loud"`, err.Message)
}

func TestWrap(t *testing.T) {
	cause := fmt.Errorf("permission denied")
	err := Wrap(Upstream, "failed to open log file", cause)

	require.NotNil(t, err)
	assert.Equal(t, Upstream, err.Code)
	assert.Equal(t, cause, err.Cause)
}

func TestError_Format(t *testing.T) {
	cause := fmt.Errorf("root cause")

	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name:     "message only",
			err:      New(Unknown, "something failed"),
			expected: "something failed",
		},
		{
			name:     "with op",
			err:      New(InvalidParam, "bad value").WithOp("modlog.SetDestination"),
			expected: "modlog.SetDestination: bad value",
		},
		{
			name:     "with cause",
			err:      Wrap(Upstream, "read failed", cause),
			expected: "read failed: root cause",
		},
		{
			name:     "with op and cause",
			err:      Wrap(Upstream, "read failed", cause).WithOp("config.Load"),
			expected: "config.Load: read failed: root cause",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("root cause")
	err := Wrap(Upstream, "wrapped", cause)

	assert.Equal(t, cause, errors.Unwrap(err))
	assert.True(t, errors.Is(err, cause))
}

func TestGetCode(t *testing.T) {
	assert.Equal(t, InvalidParam, GetCode(New(InvalidParam, "x")))
	assert.Equal(t, Unknown, GetCode(fmt.Errorf("plain")))
	assert.Equal(t, Unknown, GetCode(nil))

	// Codes survive wrapping with fmt.Errorf.
	wrapped := fmt.Errorf("context: %w", New(InvalidState, "x"))
	assert.Equal(t, InvalidState, GetCode(wrapped))
}

func TestIsCode(t *testing.T) {
	err := New(InvalidState, "already initialized")

	assert.True(t, IsCode(err, InvalidState))
	assert.False(t, IsCode(err, InvalidParam))
}
