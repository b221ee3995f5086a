package modlog

import (
	"fmt"
	"strings"
	"time"

	"github.com/muesli/termenv"
)

const (
	timestampLayout       = "2006-01-02 15:04:05"
	timestampMillisLayout = "2006-01-02 15:04:05.000"
)

// colorProfile is pinned to plain ANSI so decorated output is stable across
// terminals and testable byte for byte.
var colorProfile = termenv.ANSI

// levelColor maps each level to a fixed ANSI foreground color.
func levelColor(level Level) termenv.Color {
	switch level {
	case LevelError:
		return colorProfile.Color("1") // red
	case LevelWarn:
		return colorProfile.Color("3") // yellow
	case LevelInfo:
		return colorProfile.Color("2") // green
	case LevelDebug:
		return colorProfile.Color("6") // cyan
	default:
		return colorProfile.Color("4") // blue, trace
	}
}

// formatOptions carries the decoration flags that shape a log line.
type formatOptions struct {
	timestamp bool
	millis    bool
	brief     bool
}

// formatRecord builds one log line: an optional timestamp, the fixed-width
// level tag, the module tag in brackets, and the message, terminated by a
// newline. In brief mode Info records carry no module tag.
func formatRecord(now time.Time, level Level, module, message string, opts formatOptions) string {
	var b strings.Builder
	b.Grow(len(module) + len(message) + 32)

	if opts.timestamp {
		if opts.millis {
			b.WriteString(now.Format(timestampMillisLayout))
		} else {
			b.WriteString(now.Format(timestampLayout))
		}
		b.WriteByte(' ')
	}

	fmt.Fprintf(&b, "%-5s ", level.Tag())

	if !(opts.brief && level == LevelInfo) {
		b.WriteByte('[')
		b.WriteString(module)
		b.WriteString("] ")
	}

	b.WriteString(message)
	b.WriteByte('\n')
	return b.String()
}

// colorize wraps a formatted line in the ANSI color for its level. The
// trailing newline stays outside the styled span so terminals reset cleanly
// at end of line.
func colorize(line string, level Level) string {
	text := strings.TrimSuffix(line, "\n")
	styled := colorProfile.String(text).Foreground(levelColor(level)).String()
	return styled + "\n"
}
