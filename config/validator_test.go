package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samothx/ModuleLogger/errs"
)

func TestValidator_Valid(t *testing.T) {
	tests := []struct {
		name string
		cfg  *Config
	}{
		{"empty", &Config{}},
		{"level only", &Config{DefaultLevel: strPtr("WARN")}},
		{"console dest", &Config{LogDest: strPtr("bufferstdout")}},
		{"stream dest with stream", &Config{LogDest: strPtr("stream"), LogStream: strPtr("x.log")}},
		{"mod levels", &Config{ModLevel: map[string]string{"a": "trace", "a::b": "Error"}}},
	}

	validator := NewValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Empty(t, validator.Validate(tt.cfg))
		})
	}
}

func TestValidator_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		cfg   *Config
		field string
	}{
		{"bad default level", &Config{DefaultLevel: strPtr("loud")}, "default_level"},
		{"bad module level", &Config{ModLevel: map[string]string{"a": "silent"}}, "mod_level"},
		{"bad destination", &Config{LogDest: strPtr("file")}, "log_dest"},
		{"stream without file", &Config{LogDest: strPtr("streamstdout")}, "log_stream"},
	}

	validator := NewValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			validationErrs := validator.Validate(tt.cfg)
			require.Len(t, validationErrs, 1)

			var ve *ValidationError
			require.ErrorAs(t, validationErrs[0], &ve)
			assert.Equal(t, tt.field, ve.Field)
		})
	}
}

// TestValidator_CollectsAllErrors checks that every failure is reported,
// not just the first.
func TestValidator_CollectsAllErrors(t *testing.T) {
	cfg := &Config{
		DefaultLevel: strPtr("loud"),
		LogDest:      strPtr("nowhere"),
		ModLevel:     map[string]string{"a": "silent"},
	}

	validationErrs := NewValidator().Validate(cfg)
	assert.Len(t, validationErrs, 3)
}

func TestValidateOrError(t *testing.T) {
	validator := NewValidator()

	assert.NoError(t, validator.ValidateOrError(&Config{}))

	err := validator.ValidateOrError(&Config{DefaultLevel: strPtr("loud")})
	require.Error(t, err)
	assert.True(t, errs.IsCode(err, errs.InvalidParam))
	assert.Contains(t, err.Error(), "default_level")
}
