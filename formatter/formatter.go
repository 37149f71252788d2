package formatter

import (
	"bytes"
	"sync"
	"time"

	"github.com/philipp01105/tslog/core"
)

// Formatter renders an entry into a single line of text, without the
// trailing newline. t is the render time, not the enqueue time.
type Formatter interface {
	Format(t time.Time, entry *core.Entry) []byte
}

// BufferFormatter is an optional interface that formatters can implement
// to format directly into a caller-provided buffer, avoiding internal
// buffer pool overhead. The sink worker owns one buffer and prefers this
// path.
type BufferFormatter interface {
	// FormatEntry appends the rendered line to buf.
	FormatEntry(t time.Time, entry *core.Entry, buf *bytes.Buffer)
}

// Config holds common formatter configuration
type Config struct {
	// UTC renders timestamps in UTC instead of local wall-clock time
	UTC bool
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}
