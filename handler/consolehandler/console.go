package consolehandler

import (
	"bytes"
	"io"
	"os"
	"sync"
)

// isConcurrentSafeWriter returns true if the writer is known to be safe for
// concurrent Write calls, allowing the handler to skip write-level locking.
func isConcurrentSafeWriter(w io.Writer) bool {
	if w == io.Discard {
		return true
	}
	_, ok := w.(*os.File)
	return ok
}

// ConsoleConfig holds configuration for console handler
type ConsoleConfig struct {
	// Writer to write to (default: os.Stdout)
	Writer io.Writer
	// ConcurrentWriter indicates the Writer supports concurrent Write calls.
	// Automatically detected for io.Discard and *os.File; set true for
	// other goroutine-safe writers.
	ConcurrentWriter bool
}

// ConsoleHandler prints rendered lines. Each line, newline included, is
// handed to the writer in a single Write call so that lines printed by
// other goroutines never interleave with it.
type ConsoleHandler struct {
	writer         io.Writer
	concurrentSafe bool
	mu             sync.Mutex // protects buf and writer when not concurrentSafe
	buf            bytes.Buffer
}

// applyConsoleDefaults fills in zero-value fields with defaults.
func applyConsoleDefaults(cfg *ConsoleConfig) {
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}
}

// NewConsoleHandler creates a new console handler
func NewConsoleHandler(cfg ConsoleConfig) *ConsoleHandler {
	applyConsoleDefaults(&cfg)
	h := &ConsoleHandler{
		writer:         cfg.Writer,
		concurrentSafe: cfg.ConcurrentWriter || isConcurrentSafeWriter(cfg.Writer),
	}
	h.buf.Grow(256)
	return h
}

// Stdout returns a handler writing to os.Stdout
func Stdout() *ConsoleHandler {
	return NewConsoleHandler(ConsoleConfig{Writer: os.Stdout})
}

// linePool serves concurrent-safe writers, which skip the handler lock
var linePool = sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

// WriteLine prints line followed by a newline
func (h *ConsoleHandler) WriteLine(line []byte) error {
	if h.concurrentSafe {
		b := linePool.Get().(*bytes.Buffer)
		b.Reset()
		b.Write(line)
		b.WriteByte('\n')
		_, err := h.writer.Write(b.Bytes())
		if b.Cap() <= 64*1024 {
			linePool.Put(b)
		}
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.buf.Reset()
	h.buf.Write(line)
	h.buf.WriteByte('\n')
	_, err := h.writer.Write(h.buf.Bytes())
	return err
}

// Close is a no-op. The underlying writer is not closed: the process
// owns stdout.
func (h *ConsoleHandler) Close() error {
	return nil
}
