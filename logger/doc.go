// Package logger is the public API of tslog. Most users only need to
// import this package.
//
// A Logger is immutable after construction and only forwards to a
// sink.Sink, so it is safe for concurrent use without locking. Methods
// are named after the categories they write:
//
//	log := logger.New(sink.New(sink.Config{}))
//	log.Info("ready")
//	log.Resultsf("epoch=%d loss=%.4f", 12, 0.0731)
//	log.Shutdown()
//
// The package also keeps a process-wide default logger. Init creates it
// explicitly; otherwise the first package-level call builds it from the
// TSL_* environment variables:
//
//	logger.Info("no setup needed")
//
// AutoLog and ErrFrom prepend the package, function and line of their
// caller. Fatal and FatalErr log, drain the sink and exit the process.
package logger
