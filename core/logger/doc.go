// Package logger builds slog loggers and attribute helpers for the t7e packages and tools.
//
// Library packages accept a *slog.Logger and default to discarding output; binaries
// construct one with New:
//
//	log := logger.New(
//		logger.WithLevel(logger.ParseLevel("debug")),
//		logger.WithJSONFormatter(),
//		logger.WithAttr(logger.Component("t7e")),
//	)
//
//	log.Warn("plural forms rejected",
//		logger.Domain("messages"),
//		logger.Error(err),
//	)
//
// Attribute helpers return an empty slog.Attr for nil or empty input, which slog drops,
// so callers do not need nil checks:
//
//	log.Info("catalog loaded", logger.Error(nil)) // no "error" key is written
package logger
