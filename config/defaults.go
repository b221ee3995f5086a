package config

const (
	// EnvConfig is the environment variable naming the path of the
	// configuration file. If unset, no file-based configuration is
	// attempted.
	EnvConfig = "MODLOG_CONFIG"

	// DefaultLevelName is the level used when no configuration names one.
	DefaultLevelName = "info"

	// DefaultDestName is the destination used when no configuration names
	// one. It cannot be a stream destination.
	DefaultDestName = "stderr"
)
