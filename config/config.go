// Package config loads sink settings from a YAML file and TSL_*
// environment variables.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/philipp01105/tslog/core"
	"github.com/philipp01105/tslog/sink"
)

// ErrInvalidSettings is returned for settings that cannot build a sink
var ErrInvalidSettings = errors.New("invalid settings")

// Settings are the user-facing knobs of a sink. Every boolean defaults to
// false so a YAML file and the environment agree on what an unset key
// means.
type Settings struct {
	// Dir is the log directory
	Dir string `yaml:"dir" env:"TSL_DIR" env-default:"logs" env-description:"log directory"`

	// QueueSize is the capacity of the entry queue
	QueueSize int `yaml:"queueSize" env:"TSL_QUEUE_SIZE" env-default:"1000000" env-description:"capacity of the entry queue"`

	// GraceWindow bounds the shutdown wait
	GraceWindow time.Duration `yaml:"graceWindow" env:"TSL_GRACE_WINDOW" env-default:"2s" env-description:"maximum shutdown wait"`

	DisableConsole bool `yaml:"disableConsole" env:"TSL_DISABLE_CONSOLE" env-description:"do not mirror lines to stdout"`

	// AppendLog keeps one timestamped shared log per run instead of
	// rewriting logs/tslog.log
	AppendLog bool `yaml:"appendLog" env:"TSL_APPEND_LOG" env-description:"timestamped shared log per run"`

	// RewriteResults rewrites logs/results.log instead of keeping one
	// timestamped results file per run
	RewriteResults bool `yaml:"rewriteResults" env:"TSL_REWRITE_RESULTS" env-description:"single results file rewritten each run"`

	DisableTrace bool `yaml:"disableTrace" env:"TSL_DISABLE_TRACE" env-description:"discard TRACE entries"`
	DisableDebug bool `yaml:"disableDebug" env:"TSL_DISABLE_DEBUG" env-description:"discard DEBUG entries"`
	DisableInfo  bool `yaml:"disableInfo" env:"TSL_DISABLE_INFO" env-description:"discard INFO entries"`
	DisableWarn  bool `yaml:"disableWarn" env:"TSL_DISABLE_WARN" env-description:"discard WARN entries"`

	TraceConsole bool `yaml:"traceConsole" env:"TSL_TRACE_CONSOLE" env-description:"mirror TRACE lines to stdout"`
	QuietDebug   bool `yaml:"quietDebug" env:"TSL_QUIET_DEBUG" env-description:"keep DEBUG lines out of stdout"`

	CoarseClock bool `yaml:"coarseClock" env:"TSL_COARSE_CLOCK" env-description:"timestamp from a 500us ticker"`

	// Categories registers custom categories, each with its own file
	Categories []CategorySettings `yaml:"categories"`
}

// CategorySettings describes a custom category
type CategorySettings struct {
	Name    string `yaml:"name"`
	Code    string `yaml:"code"`
	Family  string `yaml:"family"`
	Rewrite bool   `yaml:"rewrite"`
}

// Load reads settings from the YAML file at path, letting TSL_*
// variables override it. With an empty path only the environment and
// the defaults are used.
func Load(path string) (Settings, error) {
	var s Settings
	var err error
	if path != "" {
		err = cleanenv.ReadConfig(path, &s)
	} else {
		err = cleanenv.ReadEnv(&s)
	}
	if err != nil {
		return Settings{}, fmt.Errorf("load settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Describe returns a table of the supported environment variables
func Describe() (string, error) {
	return cleanenv.GetDescription(&Settings{}, nil)
}

// Validate checks the settings without side effects
func (s Settings) Validate() error {
	if s.QueueSize <= 0 {
		return fmt.Errorf("%w: queueSize must be positive, got %d", ErrInvalidSettings, s.QueueSize)
	}
	if s.GraceWindow <= 0 {
		return fmt.Errorf("%w: graceWindow must be positive, got %s", ErrInvalidSettings, s.GraceWindow)
	}
	for _, c := range s.Categories {
		if c.Name == "" || len(c.Code) != 3 {
			return fmt.Errorf("%w: category %q needs a name and a three letter code", ErrInvalidSettings, c.Name)
		}
	}
	return nil
}

// SinkConfig registers the custom categories and translates the settings
// into a sink.Config.
func (s Settings) SinkConfig() (sink.Config, error) {
	if err := s.Validate(); err != nil {
		return sink.Config{}, err
	}

	families := sink.DefaultFamilies()
	families[core.FamilyLog] = sink.Family{Name: core.FamilyLog, Rewrite: !s.AppendLog}
	families[core.FamilyResults] = sink.Family{Name: core.FamilyResults, Rewrite: s.RewriteResults}

	for _, c := range s.Categories {
		family := c.Family
		if family == "" {
			family = c.Name
		}
		if _, err := core.RegisterCategory(c.Name, c.Code, family); err != nil {
			return sink.Config{}, fmt.Errorf("category %s: %w", c.Name, err)
		}
		families[family] = sink.Family{Name: family, Rewrite: c.Rewrite}
	}

	disabled := map[core.Category]bool{
		core.Trace: s.DisableTrace,
		core.Debug: s.DisableDebug,
		core.Info:  s.DisableInfo,
		core.Warn:  s.DisableWarn,
	}
	quiet := map[core.Category]bool{
		core.Trace: !s.TraceConsole,
		core.Debug: s.QuietDebug,
	}

	return sink.Config{
		Dir:            s.Dir,
		QueueSize:      s.QueueSize,
		GraceWindow:    s.GraceWindow,
		Families:       families,
		Disabled:       disabled,
		Quiet:          quiet,
		DisableConsole: s.DisableConsole,
		CoarseClock:    s.CoarseClock,
	}, nil
}
