package logger

import (
	"fmt"

	"github.com/philipp01105/tslog/core"
	"github.com/philipp01105/tslog/sink"
)

// Logger is a category-named front end to a sink (immutable)
type Logger struct {
	sink       *sink.Sink
	prefix     string
	callerSkip int
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	sink       *sink.Sink
	prefix     string
	callerSkip int
}

// NewBuilder creates a new logger builder
func NewBuilder() *Builder {
	return &Builder{}
}

// WithSink sets the sink every entry is handed to
func (b *Builder) WithSink(s *sink.Sink) *Builder {
	b.sink = s
	return b
}

// WithPrefix prepends prefix and ": " to every message
func (b *Builder) WithPrefix(prefix string) *Builder {
	b.prefix = joinPrefix(b.prefix, prefix)
	return b
}

// WithCallerSkip adds frames to skip when AutoLog and ErrFrom resolve
// their caller, for helpers that wrap the logger.
func (b *Builder) WithCallerSkip(skip int) *Builder {
	b.callerSkip = skip
	return b
}

// Build creates the Logger instance
func (b *Builder) Build() *Logger {
	return &Logger{
		sink:       b.sink,
		prefix:     b.prefix,
		callerSkip: b.callerSkip,
	}
}

// New returns a logger writing to s
func New(s *sink.Sink) *Logger {
	return NewBuilder().WithSink(s).Build()
}

func joinPrefix(parent, prefix string) string {
	if parent == "" {
		return prefix
	}
	if prefix == "" {
		return parent
	}
	return parent + ": " + prefix
}

// With creates a child logger whose messages carry an additional prefix
func (l *Logger) With(prefix string) *Logger {
	return &Logger{
		sink:       l.sink,
		prefix:     joinPrefix(l.prefix, prefix),
		callerSkip: l.callerSkip,
	}
}

// Sink returns the sink the logger writes to
func (l *Logger) Sink() *sink.Sink {
	return l.sink
}

// Enabled reports whether entries of cat would currently be accepted
func (l *Logger) Enabled(cat core.Category) bool {
	return l.sink != nil && l.sink.Enabled(cat)
}

// Log logs msg under cat
func (l *Logger) Log(cat core.Category, msg interface{}) {
	if l.sink == nil {
		return
	}
	l.sink.Log(cat, l.withPrefix(msg))
}

func (l *Logger) withPrefix(msg interface{}) interface{} {
	if l.prefix == "" {
		return msg
	}
	return l.prefix + ": " + fmt.Sprint(msg)
}

// logf formats only when the category is accepted
func (l *Logger) logf(cat core.Category, format string, args []interface{}) {
	if !l.Enabled(cat) {
		return
	}
	l.sink.Log(cat, l.withPrefix(fmt.Sprintf(format, args...)))
}

// Trace logs a trace message
func (l *Logger) Trace(msg interface{}) { l.Log(core.Trace, msg) }

// Debug logs a debug message
func (l *Logger) Debug(msg interface{}) { l.Log(core.Debug, msg) }

// Info logs an info message
func (l *Logger) Info(msg interface{}) { l.Log(core.Info, msg) }

// Warn logs a warning message
func (l *Logger) Warn(msg interface{}) { l.Log(core.Warn, msg) }

// Error logs an error message
func (l *Logger) Error(msg interface{}) { l.Log(core.Error, msg) }

// Results logs a line to the results file
func (l *Logger) Results(msg interface{}) { l.Log(core.Results, msg) }

// Exception logs err with its stack text. A nil err is ignored. The
// prefix, if any, goes in front of the stack text.
func (l *Logger) Exception(err error) {
	if l.sink == nil || err == nil {
		return
	}
	if l.prefix == "" {
		l.sink.Exception(err)
		return
	}
	l.sink.Log(core.Exception, l.prefix+": \n"+sink.StackText(err))
}

// Tracef logs a trace message with formatting
func (l *Logger) Tracef(format string, args ...interface{}) { l.logf(core.Trace, format, args) }

// Debugf logs a debug message with formatting
func (l *Logger) Debugf(format string, args ...interface{}) { l.logf(core.Debug, format, args) }

// Infof logs an info message with formatting
func (l *Logger) Infof(format string, args ...interface{}) { l.logf(core.Info, format, args) }

// Warnf logs a warning message with formatting
func (l *Logger) Warnf(format string, args ...interface{}) { l.logf(core.Warn, format, args) }

// Errorf logs an error message with formatting
func (l *Logger) Errorf(format string, args ...interface{}) { l.logf(core.Error, format, args) }

// Resultsf logs a results line with formatting
func (l *Logger) Resultsf(format string, args ...interface{}) { l.logf(core.Results, format, args) }

// AutoLog logs msg as INFO together with the package, function and line
// of the code that called it.
func (l *Logger) AutoLog(msg interface{}) {
	l.Log(core.Info, stackInfo("AutoLog", core.GetCaller(1+l.callerSkip), msg))
}

// ErrFrom is AutoLog at ERROR.
func (l *Logger) ErrFrom(msg interface{}) {
	l.Log(core.Error, stackInfo("ErrFrom", core.GetCaller(1+l.callerSkip), msg))
}

func stackInfo(helper string, caller core.CallerInfo, msg interface{}) string {
	if !caller.Defined {
		return fmt.Sprintf("%s: caller unavailable: %v", helper, msg)
	}
	return fmt.Sprintf("\n\t*** %s ***\n\tpackage:  %s\n\tfunction: %s\n\tline:     %s:%d\n\tmessage:  %v",
		helper, caller.Package, caller.Function, caller.ShortFile, caller.Line, msg)
}

// Fatal logs msg as ERROR, shuts the sink down and exits the process
// with code 0.
func (l *Logger) Fatal(msg interface{}) {
	if l.sink == nil {
		return
	}
	l.sink.ExitWithMessage(l.withPrefix(msg))
}

// Fatalf is Fatal with formatting
func (l *Logger) Fatalf(format string, args ...interface{}) {
	l.Fatal(fmt.Sprintf(format, args...))
}

// FatalErr logs err as EXCEPTION, shuts the sink down and exits the
// process with code 0.
func (l *Logger) FatalErr(err error) {
	if l.sink == nil {
		return
	}
	l.sink.ExitWithError(err)
}

// Shutdown drains and closes the sink
func (l *Logger) Shutdown() error {
	if l.sink == nil {
		return nil
	}
	return l.sink.Shutdown()
}
