package logger_test

import (
	"os"
	"time"

	"github.com/philipp01105/tslog/handler/consolehandler"
	"github.com/philipp01105/tslog/logger"
	"github.com/philipp01105/tslog/sink"
)

func exampleSink() (*sink.Sink, func()) {
	dir, err := os.MkdirTemp("", "tslog-logger-example")
	if err != nil {
		panic(err)
	}
	s := sink.New(sink.Config{
		Dir:       dir,
		QueueSize: 64,
		Console:   consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{Writer: os.Stdout}),
		Clock: func() time.Time {
			return time.Date(2026, 1, 2, 8, 30, 0, 0, time.Local)
		},
	})
	return s, func() { os.RemoveAll(dir) }
}

// Create a Logger with the Builder pattern.
func ExampleNewBuilder() {
	s, cleanup := exampleSink()
	defer cleanup()

	log := logger.NewBuilder().
		WithSink(s).
		WithPrefix("trainer").
		Build()

	log.Info("ready")
	log.Resultsf("epoch=%d loss=%.4f", 12, 0.0731)
	log.Shutdown()
	// Output:
	// [INF] (08:30:00.000) > trainer: ready
	// [RES] (08:30:00.000) > trainer: epoch=12 loss=0.0731
}

// Use With to create child loggers that tag their lines.
func ExampleLogger_With() {
	s, cleanup := exampleSink()
	defer cleanup()

	log := logger.New(s)
	db := log.With("db")
	db.Warn("slow query")
	db.With("tx").Error("rolled back")
	log.Shutdown()
	// Output:
	// [WAR] (08:30:00.000) > db: slow query
	// [ERR] (08:30:00.000) > db: tx: rolled back
}
