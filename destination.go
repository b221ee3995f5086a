package modlog

import (
	"strings"

	"github.com/samothx/ModuleLogger/errs"
)

// Destination identifies the configured output target class for log lines.
// The set is closed and spans two independent axes: console affinity
// (none / stdout / stderr) and persistence (none / stream / buffer).
type Destination int

const (
	// DestStdout logs to stdout only.
	DestStdout Destination = iota
	// DestStderr logs to stderr only.
	DestStderr
	// DestStream logs to an attached stream (typically a file).
	DestStream
	// DestStreamStdout logs to an attached stream and to stdout.
	DestStreamStdout
	// DestStreamStderr logs to an attached stream and to stderr.
	DestStreamStderr
	// DestBuffer logs to an in-memory buffer.
	DestBuffer
	// DestBufferStdout logs to an in-memory buffer and to stdout.
	DestBufferStdout
	// DestBufferStderr logs to an in-memory buffer and to stderr.
	DestBufferStderr
)

// DefaultDestination is the destination used when no configuration overrides
// it. It cannot be a stream destination since no stream is attached yet.
const DefaultDestination = DestStderr

// destNames maps canonical destination names to their values. Parsing is
// case-insensitive against this table.
var destNames = []struct {
	name string
	dest Destination
}{
	{"stdout", DestStdout},
	{"stderr", DestStderr},
	{"stream", DestStream},
	{"streamstdout", DestStreamStdout},
	{"streamstderr", DestStreamStderr},
	{"buffer", DestBuffer},
	{"bufferstdout", DestBufferStdout},
	{"bufferstderr", DestBufferStderr},
}

// String returns the canonical name of the destination.
func (d Destination) String() string {
	for _, entry := range destNames {
		if entry.dest == d {
			return entry.name
		}
	}
	return "unknown"
}

// IsStream reports whether the destination writes to an attached stream.
func (d Destination) IsStream() bool {
	return d == DestStream || d == DestStreamStdout || d == DestStreamStderr
}

// IsBuffer reports whether the destination writes to an in-memory buffer.
func (d Destination) IsBuffer() bool {
	return d == DestBuffer || d == DestBufferStdout || d == DestBufferStderr
}

// IsStdout reports whether the destination writes to stdout.
func (d Destination) IsStdout() bool {
	return d == DestStdout || d == DestStreamStdout || d == DestBufferStdout
}

// IsStderr reports whether the destination writes to stderr.
func (d Destination) IsStderr() bool {
	return d == DestStderr || d == DestStreamStderr || d == DestBufferStderr
}

// ParseDestination converts a destination name to a Destination. Matching is
// case-insensitive. Unrecognized names yield an InvalidParam error.
func ParseDestination(s string) (Destination, error) {
	for _, entry := range destNames {
		if strings.EqualFold(entry.name, s) {
			return entry.dest, nil
		}
	}
	return DefaultDestination, errs.Newf(errs.InvalidParam, "invalid log destination %q", s).
		WithOp("modlog.ParseDestination")
}
