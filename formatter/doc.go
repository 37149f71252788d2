// Package formatter renders log entries into text lines.
//
// Every line has the shape
//
//	[INF] (14:03:07.042) > message
//
// where the three letter code comes from the entry's category and the
// clock is the time the worker rendered the line. Hours, minutes and
// seconds are padded to two digits, milliseconds to three.
//
// TextFormatter implements both Formatter, which returns a []byte, and
// BufferFormatter, which appends into a caller-owned bytes.Buffer. The
// sink worker owns one buffer and uses the BufferFormatter path, so the
// steady state allocates nothing per line.
//
// Buffers larger than 64 KiB are not returned to the pool to prevent
// a single large log line from permanently inflating memory usage.
package formatter
