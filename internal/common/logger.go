package common

import (
	"context"
	"fmt"
	"log/slog"
	"os"
)

// Fields represents structured logging fields.
type Fields map[string]any

// SetupLogger configures the global logger. When file is non-empty the log
// is appended there (the timestamped event log); otherwise it goes to stderr.
func SetupLogger(level slog.Level, format, file string) error {
	out := os.Stderr
	if file != "" {
		f, err := os.OpenFile(file, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		out = f
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var handler slog.Handler
	switch format {
	case "json":
		handler = slog.NewJSONHandler(out, opts)
	case "console":
		handler = slog.NewTextHandler(out, opts)
	default:
		handler = slog.NewTextHandler(out, opts)
	}

	slog.SetDefault(slog.New(handler))

	return nil
}

// LogError logs an error with additional context.
func LogError(err error, msg string, fields Fields) {
	attrs := make([]slog.Attr, 0, len(fields)+1)
	attrs = append(attrs, slog.String("error", err.Error()))

	for k, v := range fields {
		attrs = append(attrs, slog.Any(k, v))
	}

	slog.LogAttrs(context.Background(), slog.LevelError, msg, attrs...)
}

// LogInfo logs an info message with fields.
func LogInfo(msg string, fields Fields) {
	attrs := make([]slog.Attr, 0, len(fields))
	for k, v := range fields {
		attrs = append(attrs, slog.Any(k, v))
	}

	slog.LogAttrs(context.Background(), slog.LevelInfo, msg, attrs...)
}

// LogDebug logs a debug message with fields.
func LogDebug(msg string, fields Fields) {
	attrs := make([]slog.Attr, 0, len(fields))
	for k, v := range fields {
		attrs = append(attrs, slog.Any(k, v))
	}

	slog.LogAttrs(context.Background(), slog.LevelDebug, msg, attrs...)
}
