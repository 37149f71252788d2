// Package handler defines the destinations the sink worker writes to and
// the counters it keeps while doing so.
//
// A Handler receives fully rendered lines, one at a time, from the single
// worker goroutine; it therefore needs no locking of its own. Every line
// is flushed before WriteLine returns. Destinations that touch the
// filesystem implement Opener so that files are created by the worker,
// never by a producer.
//
// Built-in destinations:
//
//   - filehandler.FileHandler writes one category family to a file that
//     is either truncated at start or appended to across runs.
//   - consolehandler.ConsoleHandler mirrors lines to stdout (or any
//     io.Writer) and serializes concurrent writers.
//   - multihandler.MultiHandler fans lines out to several handlers.
//   - sloghandler adapts log/slog onto a sink.
//
// Stats tracks processed, dropped, filtered, blocked and failed counts
// and can be read at runtime via StatsProvider.
package handler
