package modlog

import (
	"context"
	"log/slog"
)

// ModuleKey is the attribute key the slog adapter reads the module path
// from. A "module" attribute on a record, or bound via Logger.With,
// identifies the record's source module.
const ModuleKey = "module"

// SlogLevelTrace is the slog.Level at which trace records are emitted;
// slog has no native trace level.
const SlogLevelTrace = slog.LevelDebug - 4

// levelFromSlog maps an slog level onto the runtime's levels. Custom levels
// fall into the nearest bucket.
func levelFromSlog(level slog.Level) Level {
	switch {
	case level < slog.LevelDebug:
		return LevelTrace
	case level < slog.LevelInfo:
		return LevelDebug
	case level < slog.LevelWarn:
		return LevelInfo
	case level < slog.LevelError:
		return LevelWarn
	default:
		return LevelError
	}
}

// handler adapts the Logger to the log/slog facade. It resolves the module
// path from the ModuleKey attribute or from nested group names joined with
// "::". All other attributes are ignored: structured key-value fields are
// outside the scope of this runtime.
type handler struct {
	core   *Logger
	module string
}

// installSlog registers the core as the process's slog default sink.
func installSlog(core *Logger) {
	slog.SetDefault(slog.New(&handler{core: core}))
}

// Enabled implements the facade's global severity gate. Records below the
// gate never reach the emitter at all; this is an optimization on top of
// the authoritative per-module check in Log.
func (h *handler) Enabled(_ context.Context, level slog.Level) bool {
	return levelFromSlog(level) >= h.core.GateLevel()
}

// Handle emits the record through the core.
func (h *handler) Handle(_ context.Context, record slog.Record) error {
	module := h.module
	record.Attrs(func(attr slog.Attr) bool {
		if attr.Key == ModuleKey {
			module = attr.Value.String()
			return false
		}
		return true
	})
	h.core.Log(levelFromSlog(record.Level), module, record.Message)
	return nil
}

// WithAttrs binds a module path when the attributes carry the ModuleKey;
// other attributes are dropped.
func (h *handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *h
	for _, attr := range attrs {
		if attr.Key == ModuleKey {
			next.module = attr.Value.String()
		}
	}
	return &next
}

// WithGroup appends a segment to the bound module path.
func (h *handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := *h
	if next.module == "" {
		next.module = name
	} else {
		next.module += "::" + name
	}
	return &next
}
