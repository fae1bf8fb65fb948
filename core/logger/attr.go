package logger

import (
	"log/slog"
	"strconv"
	"time"
)

// Group creates a group of attributes under a single key.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// Uses index-based keys to preserve error order. Returns empty Attr for all nil errors.
func Errors(errs ...error) slog.Attr {
	count := 0
	for _, err := range errs {
		if err != nil {
			count++
		}
	}
	if count == 0 {
		return slog.Attr{}
	}

	as := make([]slog.Attr, 0, count)
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// Returns empty Attr for nil errors.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Elapsed records the duration since start.
func Elapsed(start time.Time) slog.Attr {
	return slog.Duration("elapsed", time.Since(start))
}

// Component names the subsystem emitting the record.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Domain names a translation domain.
func Domain(name string) slog.Attr {
	return slog.String("domain", name)
}

// Locale names a locale tag. Empty input yields an empty Attr.
func Locale(tag string) slog.Attr {
	if tag == "" {
		return slog.Attr{}
	}
	return slog.String("locale", tag)
}

// MessageID records a source message. The context is included only when present.
func MessageID(context string, hasContext bool, id string) slog.Attr {
	if !hasContext {
		return slog.Group("message", slog.String("id", id))
	}
	return slog.Group("message", slog.String("context", context), slog.String("id", id))
}

// File records a catalog file or object name.
func File(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("file", name)
}

// Count creates an integer attribute with a custom key.
func Count(key string, n int) slog.Attr {
	return slog.Int(key, n)
}
