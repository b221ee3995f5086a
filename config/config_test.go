package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

// TestConfig_Clone checks that Clone is a deep copy: mutating the clone
// must not leak into the original.
func TestConfig_Clone(t *testing.T) {
	cfg := &Config{
		DefaultLevel: strPtr("debug"),
		ModLevel:     map[string]string{"a": "trace"},
		LogDest:      strPtr("buffer"),
		Color:        boolPtr(true),
	}

	clone := cfg.Clone()
	require.NotNil(t, clone)

	*clone.DefaultLevel = "error"
	clone.ModLevel["a"] = "warn"
	clone.ModLevel["b"] = "info"

	assert.Equal(t, "debug", *cfg.DefaultLevel)
	assert.Equal(t, "trace", cfg.ModLevel["a"])
	assert.NotContains(t, cfg.ModLevel, "b")
	assert.Nil(t, clone.LogStream)
	assert.Nil(t, clone.BriefInfo)
}

func TestConfig_CloneEmpty(t *testing.T) {
	clone := (&Config{}).Clone()

	require.NotNil(t, clone)
	assert.Nil(t, clone.DefaultLevel)
	assert.Nil(t, clone.ModLevel)
}
