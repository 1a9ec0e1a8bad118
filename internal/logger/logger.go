// Package logger configures the process-wide slog logger.
//
// Level and format come from the environment (LOG_LEVEL, LOG_FORMAT) so the
// binary behaves the same under systemd, CI, and a plain shell. The TUI
// redirects output to a file to keep the alternate screen clean.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Setup installs the default slog logger writing to w. When w is nil the
// logger writes to stderr.
func Setup(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}

	opts := &slog.HandlerOptions{Level: level()}

	var h slog.Handler
	switch strings.ToLower(os.Getenv("LOG_FORMAT")) {
	case "json":
		h = slog.NewJSONHandler(w, opts)
	default:
		h = slog.NewTextHandler(w, opts)
	}
	slog.SetDefault(slog.New(h))
}

// L returns the configured logger.
func L() *slog.Logger { return slog.Default() }

func level() slog.Level {
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
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
