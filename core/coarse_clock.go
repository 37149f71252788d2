package core

import (
	"sync"
	"sync/atomic"
	"time"
)

// coarseResolution is well below the millisecond precision of rendered
// timestamps, so lines stamped from the cache look identical to lines
// stamped with time.Now.
const coarseResolution = 500 * time.Microsecond

var (
	coarseClockOnce sync.Once
	coarseNow       atomic.Pointer[time.Time]
)

// StartCoarseClock starts the background goroutine that caches
// time.Now() every 500µs. It is safe to call multiple times; the
// goroutine is started exactly once and lives as long as the process.
func StartCoarseClock() {
	coarseClockOnce.Do(func() {
		t := time.Now()
		coarseNow.Store(&t)
		go func() {
			ticker := time.NewTicker(coarseResolution)
			for range ticker.C {
				t := time.Now()
				coarseNow.Store(&t)
			}
		}()
	})
}

// CoarseNow returns the most recently cached time. It starts the clock
// on first use, so it never returns the zero time.
func CoarseNow() time.Time {
	if p := coarseNow.Load(); p != nil {
		return *p
	}
	StartCoarseClock()
	return *coarseNow.Load()
}
