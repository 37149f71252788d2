// Package core defines the shared types used across tslog.
//
// It provides the Category type that classifies every line and routes it
// to a destination family, the immutable Entry handed from producers to
// the sink worker, and caller lookup for location-stamped messages.
//
// Seven categories are built in (TRACE, DEBUG, INFO, WARN, ERROR,
// EXCEPTION, RESULTS). RegisterCategory adds more; each custom category
// names its own family and therefore gets its own file.
//
// Entry objects are pooled via sync.Pool. NewEntry renders the message
// on the producer's goroutine; the worker returns the entry with
// PutEntry once the line is written.
package core
