package handler

// Handler is an output destination owned by the sink worker. It is only
// ever called from the worker goroutine.
type Handler interface {
	// WriteLine writes one rendered line, appends the newline and
	// flushes, so the line is durable before the next one is processed.
	WriteLine(line []byte) error

	// Close flushes and releases the destination. Calling it more than
	// once is safe.
	Close() error
}

// Opener is implemented by destinations that acquire their resources
// lazily, on the worker goroutine, rather than at construction.
type Opener interface {
	Open() error
}

// StatsProvider exposes a snapshot of runtime counters
type StatsProvider interface {
	Stats() Snapshot
}
