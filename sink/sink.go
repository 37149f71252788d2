package sink

import (
	"bytes"
	"context"
	"errors"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/philipp01105/tslog/core"
	"github.com/philipp01105/tslog/formatter"
	"github.com/philipp01105/tslog/handler"
	"github.com/philipp01105/tslog/handler/filehandler"
)

// sentinel tells the worker to stop. It is compared by identity and
// never rendered.
var sentinel = &core.Entry{}

// Sink is the asynchronous category logger. Any number of goroutines may
// call Log; a single worker goroutine renders and writes every entry in
// the order it was enqueued.
type Sink struct {
	queue chan *core.Entry
	state atomic.Int32
	done  chan struct{}
	stats *handler.Stats

	runStart    time.Time
	dir         string
	graceWindow time.Duration
	families    map[string]Family
	disabled    map[core.Category]bool
	quiet       map[core.Category]bool
	echo        bool
	ensureDir   func(string) error
	exit        func(int)
	errLog      *zap.Logger
	clock       func() time.Time
	formatter   formatter.BufferFormatter
	console     handler.Handler

	// Owned by the worker goroutine
	dests  map[string]handler.Handler
	failed map[string]error
	buf    bytes.Buffer
}

// New creates a sink and starts its worker. The worker creates the log
// directory and opens the family files itself; New touches no files.
func New(cfg Config) *Sink {
	applyDefaults(&cfg)

	s := &Sink{
		queue:       make(chan *core.Entry, cfg.QueueSize),
		done:        make(chan struct{}),
		stats:       handler.NewStats(),
		runStart:    time.Now(),
		dir:         cfg.Dir,
		graceWindow: cfg.GraceWindow,
		families:    copyFamilies(cfg.Families),
		disabled:    copyCategorySet(cfg.Disabled),
		quiet:       copyCategorySet(cfg.Quiet),
		echo:        !cfg.DisableConsole,
		ensureDir:   cfg.EnsureDir,
		exit:        cfg.Exit,
		errLog:      cfg.ErrorLog,
		clock:       cfg.Clock,
		formatter:   cfg.Formatter,
		console:     cfg.Console,
		dests:       make(map[string]handler.Handler),
		failed:      make(map[string]error),
	}
	s.buf.Grow(256)

	s.state.Store(int32(StateCreated))
	s.state.Store(int32(StateRunning))
	go s.process()

	return s
}

// Log enqueues msg under cat. It blocks while the queue is full. Calls
// for disabled categories, and calls made once shutdown has begun, are
// silently discarded.
func (s *Sink) Log(cat core.Category, msg interface{}) {
	_ = s.LogContext(context.Background(), cat, msg)
}

// LogContext is Log with a way out of a full queue: if ctx is done while
// the caller is blocked, the entry is abandoned and an *InterruptedError
// is returned. A nil error means the entry was enqueued or deliberately
// discarded.
func (s *Sink) LogContext(ctx context.Context, cat core.Category, msg interface{}) error {
	if s.disabled[cat] {
		s.stats.IncrementFiltered()
		return nil
	}
	if State(s.state.Load()) != StateRunning {
		s.stats.IncrementDropped()
		return nil
	}
	return s.enqueue(ctx, core.NewEntry(cat, msg))
}

// Exception enqueues an EXCEPTION entry carrying err and its stack text.
// A nil err is ignored.
func (s *Sink) Exception(err error) {
	if err == nil {
		return
	}
	s.Log(core.Exception, "\n"+StackText(err))
}

func (s *Sink) enqueue(ctx context.Context, e *core.Entry) error {
	select {
	case s.queue <- e:
		return nil
	default:
	}

	s.stats.IncrementBlocked()
	select {
	case s.queue <- e:
		return nil
	case <-s.done:
		// The worker is gone; waiting longer would deadlock the caller
		core.PutEntry(e)
		s.stats.IncrementDropped()
		return nil
	case <-ctx.Done():
		core.PutEntry(e)
		return &InterruptedError{Op: "log", Cause: context.Cause(ctx)}
	}
}

// Shutdown stops accepting entries and waits, at most GraceWindow, for
// the worker to write everything enqueued before the call and close its
// files. Calling it again is a no-op apart from the same bounded wait.
func (s *Sink) Shutdown() error {
	return s.ShutdownContext(context.Background())
}

// ShutdownContext is Shutdown with an interruptible wait. It returns nil
// once the worker finished, ErrGraceExpired when the grace window ran
// out first, or an *InterruptedError when ctx ended first.
func (s *Sink) ShutdownContext(ctx context.Context) error {
	if s.state.CompareAndSwap(int32(StateRunning), int32(StateShuttingDown)) {
		s.sendSentinel()
	}

	// A finished worker wins over an ended ctx
	select {
	case <-s.done:
		return nil
	default:
	}

	timer := time.NewTimer(s.graceWindow)
	defer timer.Stop()

	select {
	case <-s.done:
		return nil
	case <-timer.C:
		return ErrGraceExpired
	case <-ctx.Done():
		select {
		case <-s.done:
			return nil
		default:
		}
		return &InterruptedError{Op: "shutdown", Cause: context.Cause(ctx)}
	}
}

// sendSentinel queues the stop marker behind every entry already
// enqueued. With the queue full it hands the send to a goroutine so the
// caller's grace window starts immediately.
func (s *Sink) sendSentinel() {
	select {
	case s.queue <- sentinel:
		return
	default:
	}
	go func() {
		select {
		case s.queue <- sentinel:
		case <-s.done:
		}
	}()
}

// ShutdownAndExit shuts the sink down and terminates the process with code
func (s *Sink) ShutdownAndExit(code int) {
	s.ShutdownAndExitContext(context.Background(), code)
}

// ShutdownAndExitContext shuts down and exits with code. If ctx ends
// during the wait the process exits with ExitInterrupted instead. An
// expired grace window is reported and the exit proceeds with code.
func (s *Sink) ShutdownAndExitContext(ctx context.Context, code int) {
	err := s.ShutdownContext(ctx)
	var interrupted *InterruptedError
	switch {
	case errors.As(err, &interrupted):
		s.errLog.Error("shutdown wait interrupted", zap.Error(err))
		s.exit(ExitInterrupted)
	case err != nil:
		s.errLog.Error("exiting before the worker finished",
			zap.Error(err),
			zap.Int("pending", len(s.queue)),
		)
		s.exit(code)
	default:
		s.exit(code)
	}
}

// ExitWithMessage logs msg as ERROR, then shuts down and exits with ExitOK
func (s *Sink) ExitWithMessage(msg interface{}) {
	s.Log(core.Error, msg)
	s.ShutdownAndExit(ExitOK)
}

// ExitWithError logs err as EXCEPTION, then shuts down and exits with ExitOK
func (s *Sink) ExitWithError(err error) {
	s.Exception(err)
	s.ShutdownAndExit(ExitOK)
}

// ExitWithErrorMessage logs err as EXCEPTION and msg as ERROR, then shuts
// down and exits with ExitOK
func (s *Sink) ExitWithErrorMessage(err error, msg interface{}) {
	s.Exception(err)
	s.Log(core.Error, msg)
	s.ShutdownAndExit(ExitOK)
}

// State returns the current lifecycle state
func (s *Sink) State() State {
	return State(s.state.Load())
}

// Done is closed once the worker has exited and closed its files
func (s *Sink) Done() <-chan struct{} {
	return s.done
}

// Enabled reports whether entries of cat are currently accepted
func (s *Sink) Enabled(cat core.Category) bool {
	return !s.disabled[cat] && s.State() == StateRunning
}

// Stats returns a snapshot of the current statistics
func (s *Sink) Stats() handler.Snapshot {
	return s.stats.GetSnapshot()
}

// QueueLen returns the number of entries waiting for the worker
func (s *Sink) QueueLen() int {
	return len(s.queue)
}

// QueueCap returns the capacity of the queue
func (s *Sink) QueueCap() int {
	return cap(s.queue)
}

// RunStart returns the time the sink was created. Append-mode file
// names embed it.
func (s *Sink) RunStart() time.Time {
	return s.runStart
}

// Path returns the file the given family is written to
func (s *Sink) Path(family string) string {
	f, ok := s.families[family]
	if !ok {
		return filehandler.AppendPath(s.dir, family, s.runStart)
	}
	if f.Rewrite {
		return filehandler.RewritePath(s.dir, f.Name)
	}
	return filehandler.AppendPath(s.dir, f.Name, s.runStart)
}
