// Package modlog implements a process-wide, module-scoped logging runtime.
// Every record carries a hierarchical module path (segments separated by "::"
// or "."), and the effective minimum level for a record is resolved per module
// with fallback to progressively shorter parent paths and finally a default.
// Output can be routed to stdout, stderr, a caller- or file-backed stream, an
// in-memory buffer, or dual combinations of a persistent sink with a console
// stream. The runtime registers itself as the process's log/slog sink and
// keeps the facade's global level gate in sync with the most verbose level
// any module can emit at.
package modlog

import (
	"strings"

	"github.com/samothx/ModuleLogger/errs"
)

// Level represents logging severity levels.
// Levels are ordered from most verbose (Trace) to least verbose (Error).
type Level int

const (
	// LevelTrace is for very fine-grained tracing output.
	LevelTrace Level = iota
	// LevelDebug is for detailed debugging information.
	LevelDebug
	// LevelInfo is for general informational messages.
	LevelInfo
	// LevelWarn is for warning messages about potential issues.
	LevelWarn
	// LevelError is for error messages about failures.
	LevelError
)

// DefaultLevel is the level used when no configuration overrides it.
const DefaultLevel = LevelInfo

// String returns the string representation of the level.
func (l Level) String() string {
	switch l {
	case LevelTrace:
		return "trace"
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "unknown"
	}
}

// Tag returns the upper-case level name as printed in log lines.
func (l Level) Tag() string {
	return strings.ToUpper(l.String())
}

// ParseLevel converts a string to a Level. Matching is case-insensitive and
// accepts "warning" as an alias for "warn". Unrecognized strings yield an
// InvalidParam error.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(s) {
	case "trace":
		return LevelTrace, nil
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return DefaultLevel, errs.Newf(errs.InvalidParam, "invalid log level %q", s).
			WithOp("modlog.ParseLevel")
	}
}
