// Package multihandler fans one stream of rendered lines out to several
// handlers, e.g. mirroring the console output into a tee file.
package multihandler
