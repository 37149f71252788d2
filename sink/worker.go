package sink

import (
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/philipp01105/tslog/core"
	"github.com/philipp01105/tslog/handler"
	"github.com/philipp01105/tslog/handler/filehandler"
)

// process is the worker loop. It owns dests, failed and buf.
func (s *Sink) process() {
	defer s.finish()

	if err := s.ensureDir(s.dir); err != nil {
		s.errLog.Error("cannot create log directory", zap.String("dir", s.dir), zap.Error(err))
	}
	if o, ok := s.console.(handler.Opener); ok {
		if err := o.Open(); err != nil {
			s.errLog.Error("cannot open console", zap.Error(err))
		}
	}
	// Families of custom categories registered elsewhere in the process
	// open on their first line only.
	for _, family := range []string{core.FamilyLog, core.FamilyResults} {
		s.destination(family)
	}
	for family := range s.families {
		s.destination(family)
	}

	for e := range s.queue {
		if e == sentinel {
			return
		}
		s.write(e)
	}
}

func (s *Sink) write(e *core.Entry) {
	cat := e.Category()

	s.buf.Reset()
	s.formatter.FormatEntry(s.clock(), e, &s.buf)
	line := s.buf.Bytes()

	family := cat.Family()
	if dest := s.destination(family); dest != nil {
		if err := dest.WriteLine(line); err != nil {
			s.stats.IncrementWriteFailures()
			s.errLog.Error("write failed", zap.String("family", family), zap.Error(err))
		}
	} else {
		s.stats.IncrementWriteFailures()
	}

	if s.echo && !s.quiet[cat] {
		if err := s.console.WriteLine(line); err != nil {
			s.errLog.Error("console write failed", zap.Error(err))
		}
	}

	s.stats.IncrementProcessed()
	core.PutEntry(e)
}

// destination returns the open handler for family, opening it on first
// use. A family that failed to open is reported once and returns nil
// from then on.
func (s *Sink) destination(family string) handler.Handler {
	if h, ok := s.dests[family]; ok {
		return h
	}
	if _, ok := s.failed[family]; ok {
		return nil
	}

	path := s.Path(family)
	fh, err := filehandler.NewFileHandler(filehandler.FileConfig{
		Filename: path,
		Rewrite:  s.families[family].Rewrite,
	})
	if err == nil {
		err = fh.Open()
	}
	if err != nil {
		s.failed[family] = err
		s.errLog.Error("cannot open log file",
			zap.String("family", family),
			zap.String("path", path),
			zap.Error(err),
		)
		return nil
	}

	s.dests[family] = fh
	return fh
}

// finish marks the sink terminated, discards entries that raced the
// sentinel, closes every destination and finally closes done.
func (s *Sink) finish() {
	s.state.Store(int32(StateTerminated))
	s.drain()

	var err error
	for family, h := range s.dests {
		err = multierr.Append(err, h.Close())
		delete(s.dests, family)
	}
	if err != nil {
		s.errLog.Error("closing log files", zap.Error(err))
	}
	_ = s.errLog.Sync()

	close(s.done)
	// A producer blocked in enqueue may have taken a slot freed by the
	// first drain before it saw done.
	s.drain()
}

// drain discards every queued entry, counting each as dropped
func (s *Sink) drain() {
	for {
		select {
		case e := <-s.queue:
			if e != sentinel {
				core.PutEntry(e)
				s.stats.IncrementDropped()
			}
		default:
			return
		}
	}
}
