package sink

import (
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/tslog/core"
	"github.com/philipp01105/tslog/formatter"
	"github.com/philipp01105/tslog/handler"
	"github.com/philipp01105/tslog/handler/consolehandler"
)

const (
	// DefaultDir is the log directory, relative to the working directory
	DefaultDir = "logs"
	// DefaultQueueSize is the capacity of the entry queue
	DefaultQueueSize = 1000000
	// DefaultGraceWindow bounds how long Shutdown waits for the worker
	DefaultGraceWindow = 2 * time.Second

	// ExitOK is the exit code of a clean ShutdownAndExit
	ExitOK = 0
	// ExitInterrupted is used when the shutdown wait was interrupted
	ExitInterrupted = 6
)

// Family describes where the lines of one category family are written
type Family struct {
	// Name is the file base name, e.g. "tslog"
	Name string
	// Rewrite selects a fixed path truncated on every run; otherwise the
	// path carries the run start time and is appended to
	Rewrite bool
}

// DefaultFamilies returns the built-in families: the shared log is
// rewritten each run, results are kept per run.
func DefaultFamilies() map[string]Family {
	return map[string]Family{
		core.FamilyLog:     {Name: core.FamilyLog, Rewrite: true},
		core.FamilyResults: {Name: core.FamilyResults, Rewrite: false},
	}
}

// Config holds configuration for a Sink
type Config struct {
	// Dir is the directory holding the log files (default: "logs")
	Dir string
	// QueueSize is the capacity of the bounded queue (default: 1000000)
	QueueSize int
	// GraceWindow bounds the Shutdown wait (default: 2s)
	GraceWindow time.Duration
	// Families sets the rewrite policy per family. Families not listed
	// here, such as those of custom categories, append.
	Families map[string]Family
	// Disabled categories are discarded before an entry is built
	Disabled map[core.Category]bool
	// DisableConsole turns off console mirroring for every category
	DisableConsole bool
	// Quiet categories are written to their file but not to the console
	// (default: TRACE is quiet)
	Quiet map[core.Category]bool
	// Console receives mirrored lines (default: stdout)
	Console handler.Handler
	// Formatter renders lines (default: formatter.TextFormatter)
	Formatter formatter.BufferFormatter
	// EnsureDir creates the log directory (default: os.MkdirAll)
	EnsureDir func(path string) error
	// Exit terminates the process (default: os.Exit)
	Exit func(code int)
	// ErrorLog receives I/O failures of the worker (default: one line
	// per failure on stderr)
	ErrorLog *zap.Logger
	// Clock supplies render timestamps (default: time.Now)
	Clock func() time.Time
	// CoarseClock renders timestamps from core.CoarseNow when Clock is nil
	CoarseClock bool
}

// applyDefaults fills in zero-value fields with defaults.
func applyDefaults(cfg *Config) {
	if cfg.Dir == "" {
		cfg.Dir = DefaultDir
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = DefaultQueueSize
	}
	if cfg.GraceWindow <= 0 {
		cfg.GraceWindow = DefaultGraceWindow
	}
	if cfg.Families == nil {
		cfg.Families = DefaultFamilies()
	}
	if cfg.Quiet == nil {
		cfg.Quiet = map[core.Category]bool{core.Trace: true}
	}
	if cfg.Console == nil {
		cfg.Console = consolehandler.Stdout()
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter(formatter.Config{})
	}
	if cfg.EnsureDir == nil {
		cfg.EnsureDir = func(path string) error { return os.MkdirAll(path, 0755) }
	}
	if cfg.Exit == nil {
		cfg.Exit = os.Exit
	}
	if cfg.ErrorLog == nil {
		cfg.ErrorLog = NewErrorLog(os.Stderr)
	}
	if cfg.Clock == nil {
		if cfg.CoarseClock {
			core.StartCoarseClock()
			cfg.Clock = core.CoarseNow
		} else {
			cfg.Clock = time.Now
		}
	}
}

// NewErrorLog builds the default diagnostic logger: console encoded,
// error level and above, one line per record.
func NewErrorLog(w zapcore.WriteSyncer) *zap.Logger {
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.StacktraceKey = ""
	enc := zapcore.NewConsoleEncoder(encCfg)
	return zap.New(zapcore.NewCore(enc, zapcore.Lock(w), zap.ErrorLevel)).Named("tslog")
}

// copyCategorySet copies m so that later changes by the caller do not
// race with producers reading it.
func copyCategorySet(m map[core.Category]bool) map[core.Category]bool {
	out := make(map[core.Category]bool, len(m))
	for k, v := range m {
		if v {
			out[k] = true
		}
	}
	return out
}

func copyFamilies(m map[string]Family) map[string]Family {
	out := make(map[string]Family, len(m))
	for k, v := range m {
		if v.Name == "" {
			v.Name = k
		}
		out[k] = v
	}
	return out
}
