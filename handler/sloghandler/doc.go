// Package sloghandler lets log/slog write through a tslog sink.
//
//	s := sink.New(sink.Config{})
//	slog.SetDefault(slog.New(sloghandler.New(s, &sloghandler.Options{Level: slog.LevelDebug})))
//	slog.Info("connected", "host", "db-1", "attempt", 2)
//	// [INF] (14:03:07.042) > connected host=db-1 attempt=2
//
// Records below slog.LevelDebug are written as TRACE.
package sloghandler
