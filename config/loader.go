package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/samothx/ModuleLogger/errs"
)

// Load reads and parses the YAML configuration file at path and validates
// it. Unlike application config files, the path is always explicit here, so
// a missing file is an error rather than a fallback to defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.Wrapf(errs.Upstream, err, "failed to read config file %q", path).
			WithOp("config.Load")
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errs.Wrapf(errs.Upstream, err, "failed to parse config file %q", path).
			WithOp("config.Load")
	}

	if err := NewValidator().ValidateOrError(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FromEnv loads the configuration file named by the EnvConfig environment
// variable. It returns a nil Config without error when the variable is
// unset, in which case pure defaults and API calls govern behavior.
func FromEnv() (*Config, error) {
	path := os.Getenv(EnvConfig)
	if path == "" {
		return nil, nil
	}
	return Load(path)
}
