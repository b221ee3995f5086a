package modlog

import (
	"bytes"
	"io"

	"github.com/samothx/ModuleLogger/errs"
)

// flusher is implemented by buffered writers such as bufio.Writer.
type flusher interface {
	Flush() error
}

// syncer is implemented by os.File.
type syncer interface {
	Sync() error
}

// sinkManager owns the concrete output targets backing the current
// destination: an optional attached stream, an optional in-memory buffer,
// and the two console streams. Switching destinations flushes the prior
// sink before detaching it, so no accepted bytes are ever dropped. The
// buffer, once allocated, is preserved across destination switches and is
// cleared only when retrieved. Callers must hold the Logger lock;
// sinkManager itself is not synchronized.
type sinkManager struct {
	dest   Destination
	stream io.Writer
	// closer is set when the stream was opened by the runtime itself, in
	// which case it is closed on detach. Caller-supplied streams are never
	// closed.
	closer io.Closer
	buffer *bytes.Buffer
	stdout io.Writer
	stderr io.Writer
}

func newSinkManager(dest Destination, stdout, stderr io.Writer) *sinkManager {
	m := &sinkManager{
		dest:   dest,
		stdout: stdout,
		stderr: stderr,
	}
	if dest.IsBuffer() {
		m.buffer = &bytes.Buffer{}
	}
	return m
}

// destination returns the currently active destination.
func (m *sinkManager) destination() Destination {
	return m.dest
}

// setDestination validates the destination against the presence of a stream,
// flushes the prior sink, and atomically swaps state. Stream destinations
// require a non-nil stream. For buffer destinations a fresh buffer is
// allocated only if none exists yet. The closer, if non-nil, marks the
// stream as owned by the runtime and is closed when the stream is detached.
func (m *sinkManager) setDestination(dest Destination, stream io.Writer, closer io.Closer) error {
	if dest.IsStream() && stream == nil {
		return errs.Newf(errs.InvalidParam, "no stream given for log destination %q", dest).
			WithOp("modlog.SetDestination")
	}

	m.flush()

	if dest.IsStream() {
		m.detachStream()
		m.stream = stream
		m.closer = closer
	} else {
		m.detachStream()
		if dest.IsBuffer() && m.buffer == nil {
			m.buffer = &bytes.Buffer{}
		}
	}
	m.dest = dest
	return nil
}

// write fans a formatted line out according to the destination semantics.
// Dual destinations write to the persistent sink and the console stream,
// swallowing console errors so the persistent sink is never starved by a
// console fault. The returned error reflects the primary sink only.
func (m *sinkManager) write(line []byte) error {
	switch m.dest {
	case DestStdout:
		_, err := m.stdout.Write(line)
		return err
	case DestStderr:
		_, err := m.stderr.Write(line)
		return err
	case DestStream:
		if m.stream == nil {
			// internal consistency safeguard, not expected behavior
			_, err := m.stderr.Write(line)
			return err
		}
		_, err := m.stream.Write(line)
		return err
	case DestStreamStdout:
		err := m.writeStream(line)
		_, _ = m.stdout.Write(line) // secondary console write, errors swallowed
		return err
	case DestStreamStderr:
		err := m.writeStream(line)
		_, _ = m.stderr.Write(line) // secondary console write, errors swallowed
		return err
	case DestBuffer:
		if m.buffer == nil {
			_, err := m.stderr.Write(line)
			return err
		}
		_, err := m.buffer.Write(line)
		return err
	case DestBufferStdout:
		err := m.writeBuffer(line)
		_, _ = m.stdout.Write(line) // secondary console write, errors swallowed
		return err
	case DestBufferStderr:
		err := m.writeBuffer(line)
		_, _ = m.stderr.Write(line) // secondary console write, errors swallowed
		return err
	default:
		_, err := m.stderr.Write(line)
		return err
	}
}

// retrieveBuffer returns and clears the buffer contents. The second return
// value is false if no buffer has been allocated.
func (m *sinkManager) retrieveBuffer() ([]byte, bool) {
	if m.buffer == nil {
		return nil, false
	}
	contents := make([]byte, m.buffer.Len())
	copy(contents, m.buffer.Bytes())
	m.buffer.Reset()
	return contents, true
}

// flush flushes whichever sinks are active for the current destination.
// It is a no-op when nothing flushable is attached.
func (m *sinkManager) flush() {
	if m.dest.IsStream() && m.stream != nil {
		flushWriter(m.stream)
	}
	if m.dest.IsStdout() {
		flushWriter(m.stdout)
	} else if m.dest.IsStderr() {
		flushWriter(m.stderr)
	}
}

func (m *sinkManager) writeStream(line []byte) error {
	if m.stream == nil {
		return nil
	}
	_, err := m.stream.Write(line)
	return err
}

func (m *sinkManager) writeBuffer(line []byte) error {
	if m.buffer == nil {
		return nil
	}
	_, err := m.buffer.Write(line)
	return err
}

// detachStream drops the attached stream, closing it if the runtime owns it.
// The stream has already been flushed by the caller.
func (m *sinkManager) detachStream() {
	if m.closer != nil {
		_ = m.closer.Close()
	}
	m.stream = nil
	m.closer = nil
}

// flushWriter performs a best-effort flush on writers that support it.
func flushWriter(w io.Writer) {
	switch f := w.(type) {
	case flusher:
		_ = f.Flush()
	case syncer:
		_ = f.Sync()
	}
}
