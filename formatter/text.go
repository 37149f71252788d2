package formatter

import (
	"bytes"
	"time"

	"github.com/philipp01105/tslog/core"
)

// TextFormatter renders "[XXX] (HH:MM:SS.mmm) > message"
type TextFormatter struct {
	Config
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(cfg Config) *TextFormatter {
	return &TextFormatter{Config: cfg}
}

// Format renders an entry into a freshly allocated slice
func (f *TextFormatter) Format(t time.Time, entry *core.Entry) []byte {
	buf := getBuffer()
	defer putBuffer(buf)

	f.FormatEntry(t, entry, buf)

	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result
}

// FormatEntry appends the rendered line to buf
func (f *TextFormatter) FormatEntry(t time.Time, entry *core.Entry, buf *bytes.Buffer) {
	if f.UTC {
		t = t.UTC()
	}

	buf.WriteByte('[')
	buf.WriteString(entry.Category().Code())
	buf.WriteString("] (")
	appendClock(buf, t)
	buf.WriteString(") > ")
	buf.WriteString(entry.Payload())
}

// appendClock writes HH:MM:SS.mmm, zero padded
func appendClock(buf *bytes.Buffer, t time.Time) {
	hour, minute, sec := t.Clock()
	milli := t.Nanosecond() / int(time.Millisecond)

	var b [12]byte
	b[0] = byte('0' + hour/10)
	b[1] = byte('0' + hour%10)
	b[2] = ':'
	b[3] = byte('0' + minute/10)
	b[4] = byte('0' + minute%10)
	b[5] = ':'
	b[6] = byte('0' + sec/10)
	b[7] = byte('0' + sec%10)
	b[8] = '.'
	b[9] = byte('0' + milli/100)
	b[10] = byte('0' + milli/10%10)
	b[11] = byte('0' + milli%10)
	buf.Write(b[:])
}
