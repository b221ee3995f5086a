package modlog

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/samothx/ModuleLogger/config"
	"github.com/samothx/ModuleLogger/errs"
)

// Options configures a Logger.
type Options struct {
	// DefaultLevel is the level applied to modules without an override.
	DefaultLevel Level
	// Destination is the initial output destination. Stream destinations
	// are not valid here since no stream can be attached yet; they are
	// normalized to DefaultDestination.
	Destination Destination
	// Timestamp enables the timestamp prefix on log lines.
	Timestamp bool
	// Millis extends the timestamp with millisecond precision.
	Millis bool
	// Color enables per-level color decoration.
	Color bool
	// BriefInfo drops the module tag from info-level lines.
	BriefInfo bool
	// Stdout overrides the stdout console stream, mainly for tests.
	Stdout io.Writer
	// Stderr overrides the stderr console stream, mainly for tests.
	Stderr io.Writer
}

// DefaultOptions returns the defaults the runtime starts with: info level,
// stderr destination, timestamps without milliseconds, no color.
func DefaultOptions() Options {
	return Options{
		DefaultLevel: DefaultLevel,
		Destination:  DefaultDestination,
		Timestamp:    true,
	}
}

// Logger is the logging runtime core. It owns the level table, the sink
// manager, and the decoration flags, all guarded by a single lock so that
// destination switches appear instantaneous to concurrent emitters. It is
// meant to be constructed once at the composition root and passed to the
// components that need it; Default provides the process-wide instance for
// the facade registration hook.
type Logger struct {
	mu     sync.Mutex
	levels *levelTable
	sinks  *sinkManager

	color     bool
	timestamp bool
	millis    bool
	brief     bool

	// gate mirrors levels.gateLevel() for lock-free reads on the facade's
	// Enabled fast path.
	gate      atomic.Int32
	installed atomic.Bool
	faults    atomic.Uint64
}

// New creates a Logger with the given options. It has no global side
// effects; use Install to register it as the process's slog sink.
func New(opts Options) *Logger {
	dest := opts.Destination
	if dest.IsStream() {
		dest = DefaultDestination
	}
	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := opts.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	l := &Logger{
		levels:    newLevelTable(opts.DefaultLevel),
		sinks:     newSinkManager(dest, stdout, stderr),
		color:     opts.Color,
		timestamp: opts.Timestamp,
		millis:    opts.Millis,
		brief:     opts.BriefInfo,
	}
	l.gate.Store(int32(opts.DefaultLevel))
	return l
}

var (
	defaultOnce   sync.Once
	defaultLogger *Logger
)

// Default returns the process-wide Logger, constructing it on first access.
// Construction applies the configuration file named by the MODLOG_CONFIG
// environment variable, if set, and registers the logger as the slog
// default sink. Configuration failures are reported to stderr and never
// prevent the logger from becoming ready with defaults.
func Default() *Logger {
	defaultOnce.Do(func() {
		defaultLogger = New(DefaultOptions())
		defaultLogger.bootstrap()
	})
	return defaultLogger
}

// bootstrap performs the one-time initialization sequence: environment
// configuration, then facade registration.
func (l *Logger) bootstrap() {
	cfg, err := config.FromEnv()
	switch {
	case err != nil:
		fmt.Fprintf(os.Stderr, "modlog: failed to load config from %s=%q: %v\n",
			config.EnvConfig, os.Getenv(config.EnvConfig), err)
	case cfg != nil:
		if err := l.SetConfig(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "modlog: failed to apply config: %v\n", err)
		}
	}
	l.Install()
}

// Install registers the logger as the process's slog default sink and puts
// the facade's level gate in place. Registration happens exactly once for
// the process lifetime; repeated calls are idempotent no-ops.
func (l *Logger) Install() {
	if !l.installed.CompareAndSwap(false, true) {
		return
	}
	installSlog(l)
}

// Log emits one record. The record is dropped without side effects when its
// level is more verbose than the effective level resolved for the module
// path. Write failures are swallowed, logging is fire-and-forget for the
// caller, but they are counted for diagnostics.
func (l *Logger) Log(level Level, module, message string) {
	if module == "" {
		module = "undefined"
	}
	now := time.Now()

	l.mu.Lock()
	if level < l.levels.resolve(module) {
		l.mu.Unlock()
		return
	}
	line := formatRecord(now, level, module, message, formatOptions{
		timestamp: l.timestamp,
		millis:    l.millis,
		brief:     l.brief,
	})
	if l.color {
		line = colorize(line, level)
	}
	err := l.sinks.write([]byte(line))
	l.mu.Unlock()

	if err != nil {
		l.faults.Add(1)
	}
}

// Tracef emits a formatted record at trace level.
func (l *Logger) Tracef(module, format string, args ...interface{}) {
	l.Log(LevelTrace, module, fmt.Sprintf(format, args...))
}

// Debugf emits a formatted record at debug level.
func (l *Logger) Debugf(module, format string, args ...interface{}) {
	l.Log(LevelDebug, module, fmt.Sprintf(format, args...))
}

// Infof emits a formatted record at info level.
func (l *Logger) Infof(module, format string, args ...interface{}) {
	l.Log(LevelInfo, module, fmt.Sprintf(format, args...))
}

// Warnf emits a formatted record at warn level.
func (l *Logger) Warnf(module, format string, args ...interface{}) {
	l.Log(LevelWarn, module, fmt.Sprintf(format, args...))
}

// Errorf emits a formatted record at error level.
func (l *Logger) Errorf(module, format string, args ...interface{}) {
	l.Log(LevelError, module, fmt.Sprintf(format, args...))
}

// SetDefaultLevel replaces the default level for modules without an
// override.
func (l *Logger) SetDefaultLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.levels.setDefault(level)
	l.syncGate()
}

// DefaultLevel returns the current default level.
func (l *Logger) DefaultLevel() Level {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.levels.defaultLevel()
}

// SetModuleLevel sets the level override for one module path. The override
// also applies to all descendants of the path that carry no more specific
// override of their own.
func (l *Logger) SetModuleLevel(module string, level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.levels.setOverride(module, level)
	l.syncGate()
}

// ResolveLevel returns the effective level for a module path.
func (l *Logger) ResolveLevel(module string) Level {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.levels.resolve(module)
}

// GateLevel returns the most verbose level any module can currently emit
// at. Records below the gate are discarded by the facade before they reach
// the runtime; the per-module check stays authoritative.
func (l *Logger) GateLevel() Level {
	return Level(l.gate.Load())
}

// SetDestination switches the output destination. Stream destinations
// require a non-nil stream; for all others stream must be nil-able and is
// ignored. The prior sink is flushed before it is detached. The stream
// remains owned by the caller and is never closed by the runtime.
func (l *Logger) SetDestination(dest Destination, stream io.Writer) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.sinks.setDestination(dest, stream, nil)
}

// Destination returns the currently active destination.
func (l *Logger) Destination() Destination {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.sinks.destination()
}

// SetLogFile creates the file at path and switches to the stream
// destination matching the console affinity of dest: stdout-affine
// destinations become StreamStdout, stderr-affine become StreamStderr, and
// all others plain Stream. With buffered set, writes go through a
// bufio.Writer. Any unretrieved buffer contents are written to the new
// stream before the switch, so nothing accepted into the buffer is lost.
// The file is owned by the runtime and closed when later detached.
func (l *Logger) SetLogFile(dest Destination, path string, buffered bool) error {
	const op = "modlog.SetLogFile"

	streamDest := DestStream
	if dest.IsStdout() {
		streamDest = DestStreamStdout
	} else if dest.IsStderr() {
		streamDest = DestStreamStderr
	}

	file, err := os.Create(path)
	if err != nil {
		return errs.Wrapf(errs.Upstream, err, "failed to create file %q", path).WithOp(op)
	}
	var stream io.Writer = file
	if buffered {
		stream = bufio.NewWriter(file)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if contents, ok := l.sinks.retrieveBuffer(); ok && len(contents) > 0 {
		if _, err := stream.Write(contents); err != nil {
			_ = file.Close()
			return errs.Wrapf(errs.Upstream, err, "failed to write buffer to file %q", path).WithOp(op)
		}
		flushWriter(stream)
	}

	return l.sinks.setDestination(streamDest, stream, file)
}

// Buffer returns and clears the contents of the in-memory buffer. The
// second return value is false if no buffer has ever been allocated. The
// buffer survives destination switches, so content written before a switch
// away from a buffer destination stays retrievable.
func (l *Logger) Buffer() ([]byte, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.sinks.retrieveBuffer()
}

// SetColor enables or disables color decoration.
func (l *Logger) SetColor(color bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.color = color
}

// SetTimestamp enables or disables the timestamp prefix.
func (l *Logger) SetTimestamp(timestamp bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.timestamp = timestamp
}

// SetMillis enables or disables millisecond timestamp precision.
func (l *Logger) SetMillis(millis bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.millis = millis
}

// SetBriefInfo enables or disables brief info lines (no module tag).
func (l *Logger) SetBriefInfo(brief bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.brief = brief
}

// Flush flushes whichever sinks are active for the current destination.
func (l *Logger) Flush() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.sinks.flush()
}

// Faults returns the number of swallowed per-record write failures since
// the logger was created.
func (l *Logger) Faults() uint64 {
	return l.faults.Load()
}

// SetConfig applies a loaded configuration: default level, module
// overrides (last writer wins per path), destination including opening the
// configured log file in append mode, and the color and brief flags.
// Absent keys leave the prior values untouched. The destination is only
// switched when it differs from the current one or is stream-class, so a
// re-applied config reopens its log file. Settings are applied in order;
// on error, settings already applied stay in effect.
func (l *Logger) SetConfig(cfg *config.Config) error {
	const op = "modlog.SetConfig"

	l.mu.Lock()
	defer l.mu.Unlock()
	// The gate must follow the table on every exit, including error returns
	// after some levels have already been applied.
	defer l.syncGate()

	if cfg.DefaultLevel != nil {
		level, err := ParseLevel(*cfg.DefaultLevel)
		if err != nil {
			return err
		}
		l.levels.setDefault(level)
	}
	if len(cfg.ModLevel) > 0 {
		overrides := make(map[string]Level, len(cfg.ModLevel))
		for module, name := range cfg.ModLevel {
			level, err := ParseLevel(name)
			if err != nil {
				return err
			}
			overrides[module] = level
		}
		l.levels.merge(overrides)
	}

	if cfg.LogDest != nil {
		dest, err := ParseDestination(*cfg.LogDest)
		if err != nil {
			return err
		}
		if dest != l.sinks.destination() || dest.IsStream() {
			if dest.IsStream() {
				if cfg.LogStream == nil {
					return errs.Newf(errs.InvalidParam, "missing log_stream for destination %q", dest).
						WithOp(op)
				}
				file, err := os.OpenFile(*cfg.LogStream, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
				if err != nil {
					return errs.Wrapf(errs.Upstream, err, "failed to open log file %q", *cfg.LogStream).
						WithOp(op)
				}
				if err := l.sinks.setDestination(dest, file, file); err != nil {
					_ = file.Close()
					return err
				}
			} else if err := l.sinks.setDestination(dest, nil, nil); err != nil {
				return err
			}
		}
	}

	if cfg.Color != nil {
		l.color = *cfg.Color
	}
	if cfg.BriefInfo != nil {
		l.brief = *cfg.BriefInfo
	}
	return nil
}

// syncGate publishes the level table's gate to the lock-free mirror.
// Callers must hold the lock.
func (l *Logger) syncGate() {
	l.gate.Store(int32(l.levels.gateLevel()))
}
