// Package logger builds slog loggers with consistent defaults and
// provides attribute helpers that keep log keys uniform across the
// module.
//
// The factory defaults to JSON output at info level, which suits log
// aggregation in production; switch to text for local development:
//
//	log := logger.New(
//		logger.WithFormat(logger.FormatText),
//		logger.WithLevel(slog.LevelDebug),
//		logger.WithAttr(slog.String("service", "billing")),
//	)
//	logger.SetAsDefault(log)
//
// Attribute helpers pin the key names used throughout the module, so a
// statement is always logged under "statement" and an error under
// "error":
//
//	log.Error("failed to deallocate evicted statement",
//		logger.StatementName(name),
//		logger.Error(err),
//	)
package logger
