// Package logging provides structured logging for recipe-api components.
//
// It wraps the standard library slog package with service-wide defaults:
// JSON output to stderr, module/version context on every record, and
// LOG_LEVEL environment based configuration.
//
// Setting the default logger (recommended, early in main):
//
//	logging.SetDefaultStructuredLogger("recipesd", version)
//
//	slog.Info("processing request", "id", "req-123")
//	slog.Error("operation failed", "error", err)
//
// Supported log levels (case-insensitive): debug, info (default), warn,
// error. Debug logs include source location.
package logging
