// Package logger builds the process-wide slog logger from the configured
// level and format. Output goes to stderr so stdout stays free for command
// output and the MCP stdio transport.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

var defaultLogger *slog.Logger

// Setup installs a logger writing to w at the given level and format. Unknown
// levels fall back to info, unknown formats to text. A nil w means stderr.
func Setup(level, format string, w io.Writer) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}

	var h slog.Handler
	if strings.ToLower(format) == "json" {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	defaultLogger = slog.New(h)
	return defaultLogger
}

func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// L returns the logger installed by Setup, or an info-level text logger on
// stderr if Setup has not run.
func L() *slog.Logger {
	if defaultLogger == nil {
		return Setup("info", "text", nil)
	}
	return defaultLogger
}
