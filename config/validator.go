package config

import (
	"fmt"
	"strings"

	"github.com/samothx/ModuleLogger/errs"
)

// ValidationError represents a single configuration validation failure.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation: %s: %s", e.Field, e.Message)
}

// Validator validates configuration.
type Validator struct {
	// validLevels defines the accepted log level names.
	validLevels map[string]bool
	// validDests defines the accepted destination names.
	validDests map[string]bool
	// streamDests marks the destination names that require a log_stream.
	streamDests map[string]bool
}

// NewValidator creates a new validator.
func NewValidator() *Validator {
	return &Validator{
		validLevels: map[string]bool{
			"trace":   true,
			"debug":   true,
			"info":    true,
			"warn":    true,
			"warning": true,
			"error":   true,
		},
		validDests: map[string]bool{
			"stdout":       true,
			"stderr":       true,
			"stream":       true,
			"streamstdout": true,
			"streamstderr": true,
			"buffer":       true,
			"bufferstdout": true,
			"bufferstderr": true,
		},
		streamDests: map[string]bool{
			"stream":       true,
			"streamstdout": true,
			"streamstderr": true,
		},
	}
}

// Validate validates the configuration and returns all errors. Collecting
// them all at once beats failing on the first one when a hand-edited file
// has several typos.
func (v *Validator) Validate(cfg *Config) []error {
	var validationErrs []error

	if cfg.DefaultLevel != nil && !v.validLevels[strings.ToLower(*cfg.DefaultLevel)] {
		validationErrs = append(validationErrs, &ValidationError{
			Field:   "default_level",
			Message: fmt.Sprintf("invalid log level %q: must be one of: trace, debug, info, warn, error", *cfg.DefaultLevel),
		})
	}

	for module, level := range cfg.ModLevel {
		if !v.validLevels[strings.ToLower(level)] {
			validationErrs = append(validationErrs, &ValidationError{
				Field:   "mod_level",
				Message: fmt.Sprintf("invalid log level %q for module %q", level, module),
			})
		}
	}

	if cfg.LogDest != nil {
		dest := strings.ToLower(*cfg.LogDest)
		if !v.validDests[dest] {
			validationErrs = append(validationErrs, &ValidationError{
				Field:   "log_dest",
				Message: fmt.Sprintf("invalid log destination %q", *cfg.LogDest),
			})
		} else if v.streamDests[dest] && cfg.LogStream == nil {
			validationErrs = append(validationErrs, &ValidationError{
				Field:   "log_stream",
				Message: fmt.Sprintf("missing log_stream for destination %q", *cfg.LogDest),
			})
		}
	}

	return validationErrs
}

// ValidateOrError validates the configuration and folds all failures into a
// single InvalidParam error, or nil if the configuration is valid.
func (v *Validator) ValidateOrError(cfg *Config) error {
	validationErrs := v.Validate(cfg)
	if len(validationErrs) == 0 {
		return nil
	}

	messages := make([]string, len(validationErrs))
	for i, err := range validationErrs {
		messages[i] = err.Error()
	}
	return errs.New(errs.InvalidParam, strings.Join(messages, "; ")).
		WithOp("config.Validate")
}
