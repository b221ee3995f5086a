// Package config loads the ModuleLogger runtime configuration from YAML
// files. It is a plain settings loader: values are carried as raw strings
// and pointers, where a nil pointer marks a key that was absent from the
// file and must leave the prior value untouched. Semantic interpretation of
// level and destination names is left to the logging core.
package config

// Config represents the file-shaped logger configuration. All keys are
// optional.
type Config struct {
	// DefaultLevel is the default log level name, one of trace, debug,
	// info, warn, error (case-insensitive).
	DefaultLevel *string `yaml:"default_level"`
	// ModLevel maps module paths to log level names.
	ModLevel map[string]string `yaml:"mod_level"`
	// LogDest is one of the eight canonical destination names.
	LogDest *string `yaml:"log_dest"`
	// LogStream is the log file path, required iff LogDest is a stream
	// destination.
	LogStream *string `yaml:"log_stream"`
	// Color enables colored output.
	Color *bool `yaml:"color"`
	// BriefInfo drops the module tag from info-level lines.
	BriefInfo *bool `yaml:"brief_info"`
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	clone := &Config{
		DefaultLevel: clonePtr(c.DefaultLevel),
		LogDest:      clonePtr(c.LogDest),
		LogStream:    clonePtr(c.LogStream),
		Color:        clonePtr(c.Color),
		BriefInfo:    clonePtr(c.BriefInfo),
	}
	if c.ModLevel != nil {
		clone.ModLevel = make(map[string]string, len(c.ModLevel))
		for module, level := range c.ModLevel {
			clone.ModLevel[module] = level
		}
	}
	return clone
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
