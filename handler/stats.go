package handler

import (
	"sync/atomic"
)

// Stats tracks sink statistics. All counters are updated atomically and
// may be read from any goroutine.
type Stats struct {
	// ProcessedTotal counts lines written by the worker
	ProcessedTotal uint64
	// DroppedTotal counts entries refused because the sink was shutting
	// down or terminated
	DroppedTotal uint64
	// FilteredTotal counts calls for administratively disabled categories
	FilteredTotal uint64
	// BlockedTotal counts times a producer waited on a full queue
	BlockedTotal uint64
	// WriteFailures counts lines that could not be written to their
	// destination (open or write error)
	WriteFailures uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// IncrementProcessed atomically increments the processed counter
func (s *Stats) IncrementProcessed() {
	atomic.AddUint64(&s.ProcessedTotal, 1)
}

// IncrementDropped atomically increments the dropped counter
func (s *Stats) IncrementDropped() {
	atomic.AddUint64(&s.DroppedTotal, 1)
}

// IncrementFiltered atomically increments the filtered counter
func (s *Stats) IncrementFiltered() {
	atomic.AddUint64(&s.FilteredTotal, 1)
}

// IncrementBlocked atomically increments the blocked counter
func (s *Stats) IncrementBlocked() {
	atomic.AddUint64(&s.BlockedTotal, 1)
}

// IncrementWriteFailures atomically increments the write failure counter
func (s *Stats) IncrementWriteFailures() {
	atomic.AddUint64(&s.WriteFailures, 1)
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	atomic.StoreUint64(&s.ProcessedTotal, 0)
	atomic.StoreUint64(&s.DroppedTotal, 0)
	atomic.StoreUint64(&s.FilteredTotal, 0)
	atomic.StoreUint64(&s.BlockedTotal, 0)
	atomic.StoreUint64(&s.WriteFailures, 0)
}

// Snapshot is a point-in-time copy of Stats
type Snapshot struct {
	ProcessedTotal uint64
	DroppedTotal   uint64
	FilteredTotal  uint64
	BlockedTotal   uint64
	WriteFailures  uint64
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	return Snapshot{
		ProcessedTotal: atomic.LoadUint64(&s.ProcessedTotal),
		DroppedTotal:   atomic.LoadUint64(&s.DroppedTotal),
		FilteredTotal:  atomic.LoadUint64(&s.FilteredTotal),
		BlockedTotal:   atomic.LoadUint64(&s.BlockedTotal),
		WriteFailures:  atomic.LoadUint64(&s.WriteFailures),
	}
}
