package sloghandler

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/philipp01105/tslog/core"
)

// Sink is the part of *sink.Sink the adapter needs
type Sink interface {
	LogContext(ctx context.Context, cat core.Category, msg interface{}) error
	Enabled(cat core.Category) bool
}

// Options configures a Handler
type Options struct {
	// Level is the minimum slog level handled (default: slog.LevelInfo).
	// Categories disabled on the sink are skipped regardless.
	Level slog.Leveler
}

// Handler implements slog.Handler on top of a sink. The record message
// and its attributes, rendered as key=value, form the entry payload.
type Handler struct {
	sink  Sink
	level slog.Leveler
	attrs string
	group string
}

// New creates a slog.Handler writing to s
func New(s Sink, opts *Options) *Handler {
	h := &Handler{sink: s, level: slog.LevelInfo}
	if opts != nil && opts.Level != nil {
		h.level = opts.Level
	}
	return h
}

// Category maps a slog level onto a sink category. Levels below
// slog.LevelDebug map to TRACE.
func Category(level slog.Level) core.Category {
	switch {
	case level >= slog.LevelError:
		return core.Error
	case level >= slog.LevelWarn:
		return core.Warn
	case level >= slog.LevelInfo:
		return core.Info
	case level >= slog.LevelDebug:
		return core.Debug
	default:
		return core.Trace
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level() && h.sink.Enabled(Category(level))
}

// Handle renders the record and enqueues it. A ctx that ends while the
// queue is full abandons the record and the error is returned.
func (h *Handler) Handle(ctx context.Context, record slog.Record) error {
	var b strings.Builder
	b.WriteString(record.Message)
	b.WriteString(h.attrs)
	record.Attrs(func(a slog.Attr) bool {
		appendAttr(&b, h.group, a)
		return true
	})
	return h.sink.LogContext(ctx, Category(record.Level), b.String())
}

// WithAttrs returns a new Handler with additional attributes.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	var b strings.Builder
	b.WriteString(h.attrs)
	for _, a := range attrs {
		appendAttr(&b, h.group, a)
	}
	return &Handler{sink: h.sink, level: h.level, attrs: b.String(), group: h.group}
}

// WithGroup returns a new Handler with the given group name.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	group := name
	if h.group != "" {
		group = h.group + "." + name
	}
	return &Handler{sink: h.sink, level: h.level, attrs: h.attrs, group: group}
}

// appendAttr writes " key=value", flattening groups into dotted keys.
func appendAttr(b *strings.Builder, group string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}

	key := a.Key
	if group != "" && key != "" {
		key = group + "." + key
	} else if key == "" {
		key = group
	}

	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			appendAttr(b, key, ga)
		}
		return
	}

	b.WriteByte(' ')
	b.WriteString(key)
	b.WriteByte('=')
	b.WriteString(quoteIfNeeded(valueString(a.Value)))
}

func valueString(v slog.Value) string {
	switch v.Kind() {
	case slog.KindTime:
		return v.Time().Format(time.RFC3339Nano)
	case slog.KindDuration:
		return v.Duration().String()
	default:
		return v.String()
	}
}

func quoteIfNeeded(s string) string {
	if s == "" {
		return `""`
	}
	for _, r := range s {
		if unicode.IsSpace(r) || r == '"' || r == '=' || !unicode.IsPrint(r) {
			return strconv.Quote(s)
		}
	}
	return s
}
