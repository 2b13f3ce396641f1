// Package rblog configures the process-wide slog default the same way
// across the CLI and the test suite.
package rblog

import (
	"log/slog"
	"os"
	"strings"
)

// InitSlog configures slog based on the LOG_LEVEL environment variable.
// Supported levels: debug, info, warn, error. Unset or unrecognized
// values fall back to info.
func InitSlog() {
	if logLevel, ok := os.LookupEnv("LOG_LEVEL"); ok {
		var level slog.Level

		switch strings.ToLower(logLevel) {
		case "debug":
			level = slog.LevelDebug
		case "info":
			level = slog.LevelInfo
		case "warn":
			level = slog.LevelWarn
		case "error":
			level = slog.LevelError
		default:
			level = slog.LevelInfo
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		handler := slog.NewTextHandler(os.Stderr, opts)
		slog.SetDefault(slog.New(handler))
	}
}

// InitTestSlog installs a WARN-level default logger unless LOG_LEVEL is
// already set, so scanner/diagnostic debug noise never contaminates
// golden-output comparisons in tests.
func InitTestSlog() {
	InitSlog()
	if _, ok := os.LookupEnv("LOG_LEVEL"); !ok {
		opts := &slog.HandlerOptions{Level: slog.LevelWarn}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, opts)))
	}
}
