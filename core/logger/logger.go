package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

type options struct {
	out   io.Writer
	level slog.Level
	json  bool
	attrs []slog.Attr
}

// Option configures New.
type Option func(*options)

// WithOutput sets the destination. Defaults to os.Stderr.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		if w != nil {
			o.out = w
		}
	}
}

// WithLevel sets the minimum level. Defaults to slog.LevelInfo.
func WithLevel(level slog.Level) Option {
	return func(o *options) {
		o.level = level
	}
}

// WithJSONFormatter switches output to JSON.
func WithJSONFormatter() Option {
	return func(o *options) {
		o.json = true
	}
}

// WithTextFormatter switches output to logfmt-style text. This is the default.
func WithTextFormatter() Option {
	return func(o *options) {
		o.json = false
	}
}

// WithAttr adds attributes to every record.
func WithAttr(attrs ...slog.Attr) Option {
	return func(o *options) {
		o.attrs = append(o.attrs, attrs...)
	}
}

// New creates a logger.
func New(opts ...Option) *slog.Logger {
	o := &options{out: os.Stderr, level: slog.LevelInfo}
	for _, opt := range opts {
		opt(o)
	}

	handlerOpts := &slog.HandlerOptions{Level: o.level}
	var h slog.Handler
	if o.json {
		h = slog.NewJSONHandler(o.out, handlerOpts)
	} else {
		h = slog.NewTextHandler(o.out, handlerOpts)
	}
	if len(o.attrs) > 0 {
		h = h.WithAttrs(o.attrs)
	}

	return slog.New(h)
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// ParseLevel maps "debug", "info", "warn"/"warning" and "error" to slog levels.
// Unknown values return slog.LevelInfo.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
