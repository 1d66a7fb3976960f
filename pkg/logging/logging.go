package logging

import (
	"log"
	"log/slog"
	"os"
	"strings"
)

const logLevelEnvVar = "LOG_LEVEL"

// ParseLevel converts a level string into a slog.Level. It is
// case-insensitive and accepts both "warn" and "warning". Unrecognized
// values (including empty) fall back to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
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

// levelFromEnv reads the LOG_LEVEL environment variable.
func levelFromEnv() slog.Level {
	return ParseLevel(os.Getenv(logLevelEnvVar))
}

// NewStructuredLogger creates a JSON logger writing to stderr with module
// and version attributes attached to every record. Source locations are
// included when the level is debug.
func NewStructuredLogger(module, version, level string) *slog.Logger {
	lvl := ParseLevel(level)
	h := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level:     lvl,
		AddSource: lvl == slog.LevelDebug,
	})

	return slog.New(h).With(
		"module", module,
		"version", version,
	)
}

// SetDefaultStructuredLogger installs a structured logger as the slog
// default, with the level taken from the LOG_LEVEL environment variable.
func SetDefaultStructuredLogger(module, version string) {
	SetDefaultStructuredLoggerWithLevel(module, version, levelFromEnv().String())
}

// SetDefaultStructuredLoggerWithLevel installs a structured logger as the
// slog default at an explicit level.
func SetDefaultStructuredLoggerWithLevel(module, version, level string) {
	slog.SetDefault(NewStructuredLogger(module, version, level))
}

// NewLogLogger bridges the standard library log package to the default
// slog handler at the given level.
func NewLogLogger(level slog.Level) *log.Logger {
	return slog.NewLogLogger(slog.Default().Handler(), level)
}
