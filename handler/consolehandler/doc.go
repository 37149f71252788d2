// Package consolehandler provides the console collaborator of the sink:
// a destination that mirrors rendered lines to stdout or any io.Writer.
//
// ConsoleHandler serializes concurrent callers and writes each line in a
// single Write call, so a line echoed by the sink worker never interleaves
// with output printed elsewhere through the same handler.
package consolehandler
