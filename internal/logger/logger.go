// Package logger configures structured logging.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// ParseLevel maps a configured level name to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelWarn, fmt.Errorf("unknown log level %q", s)
	}
}

// Setup builds the application logger and installs it as the slog default.
//
// With a path, logs are appended to that file as JSON. Without one they
// go to fallback as text; pass io.Discard while the TUI owns the
// terminal. The returned close function releases the log file.
func Setup(level, path string, fallback io.Writer) (*slog.Logger, func() error, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, nil, err
	}
	opts := &slog.HandlerOptions{Level: lvl}

	var (
		handler slog.Handler
		closer  = func() error { return nil }
	)
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		handler = slog.NewJSONHandler(f, opts)
		closer = f.Close
	} else {
		if fallback == nil {
			fallback = os.Stderr
		}
		handler = slog.NewTextHandler(fallback, opts)
	}

	log := slog.New(handler)
	slog.SetDefault(log)
	return log, closer, nil
}
