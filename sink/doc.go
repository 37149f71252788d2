// Package sink implements the asynchronous category logger.
//
// Producers call Log from any goroutine. The call renders the message to
// text, enqueues it on a bounded FIFO queue and returns; a single worker
// goroutine takes entries off the queue, formats them as
//
//	[INF] (14:03:07.042) > message
//
// and writes each line to the file of its category family, flushing after
// every line, and optionally mirrors it to the console. When the queue is
// full, Log blocks until the worker makes room.
//
// Shutdown enqueues a stop marker behind everything already queued and
// waits, bounded by the grace window, for the worker to drain and close
// its files. Entries logged after shutdown has begun are discarded.
//
//	s := sink.New(sink.Config{})
//	s.Log(core.Info, "started")
//	s.Log(core.Results, "accuracy=0.93")
//	s.ShutdownAndExit(sink.ExitOK)
package sink
