package modlog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samothx/ModuleLogger/errs"
)

func TestParseDestination(t *testing.T) {
	tests := []struct {
		input    string
		expected Destination
	}{
		{"stdout", DestStdout},
		{"stderr", DestStderr},
		{"stream", DestStream},
		{"streamstdout", DestStreamStdout},
		{"streamstderr", DestStreamStderr},
		{"buffer", DestBuffer},
		{"bufferstdout", DestBufferStdout},
		{"bufferstderr", DestBufferStderr},
		{"STDOUT", DestStdout},
		{"StreamStderr", DestStreamStderr},
		{"BUFFERstdout", DestBufferStdout},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			dest, err := ParseDestination(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, dest)
		})
	}
}

func TestParseDestination_Invalid(t *testing.T) {
	for _, input := range []string{"", "file", "console", "stream "} {
		_, err := ParseDestination(input)
		require.Error(t, err)
		assert.True(t, errs.IsCode(err, errs.InvalidParam))
	}
}

func TestDestination_String(t *testing.T) {
	assert.Equal(t, "streamstdout", DestStreamStdout.String())
	assert.Equal(t, "bufferstderr", DestBufferStderr.String())
	assert.Equal(t, "unknown", Destination(99).String())
}

// TestDestination_Predicates checks the grouping of the closed set along
// the persistence and console-affinity axes.
func TestDestination_Predicates(t *testing.T) {
	tests := []struct {
		dest     Destination
		isStream bool
		isBuffer bool
		isStdout bool
		isStderr bool
	}{
		{DestStdout, false, false, true, false},
		{DestStderr, false, false, false, true},
		{DestStream, true, false, false, false},
		{DestStreamStdout, true, false, true, false},
		{DestStreamStderr, true, false, false, true},
		{DestBuffer, false, true, false, false},
		{DestBufferStdout, false, true, true, false},
		{DestBufferStderr, false, true, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.dest.String(), func(t *testing.T) {
			assert.Equal(t, tt.isStream, tt.dest.IsStream())
			assert.Equal(t, tt.isBuffer, tt.dest.IsBuffer())
			assert.Equal(t, tt.isStdout, tt.dest.IsStdout())
			assert.Equal(t, tt.isStderr, tt.dest.IsStderr())
		})
	}
}
