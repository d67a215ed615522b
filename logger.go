package algovista

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/iayr1/algovista-sub001/widget"
)

// Logger wraps slog.Logger with algovista-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	return NewFormatLogger(os.Stderr, "json", level)
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewFormatLogger(os.Stderr, "text", level)
}

// NewFormatLogger creates a Logger writing to w in the given format
// ("text" or "json"; anything else falls back to text).
func NewFormatLogger(w io.Writer, format string, level slog.Level) *Logger {
	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if strings.EqualFold(format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return &Logger{Logger: slog.New(handler)}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// ParseLevel parses "debug", "info", "warn" or "error" (case-insensitive).
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("algovista: invalid log level %q", s)
	}
	return level, nil
}

// WithAlgorithm adds an algorithm id field to the logger.
func (l *Logger) WithAlgorithm(id string) *Logger {
	return &Logger{
		Logger: l.Logger.With("algorithm", id),
	}
}

// WithWidget adds a widget kind field to the logger.
func (l *Logger) WithWidget(kind widget.Kind) *Logger {
	return &Logger{
		Logger: l.Logger.With("widget", string(kind)),
	}
}

// LogRender logs the rendering of one view.
func (l *Logger) LogRender(ctx context.Context, view, id string, bytes int, duration time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "render failed",
			"view", view,
			"algorithm", id,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "render completed",
			"view", view,
			"algorithm", id,
			"bytes", bytes,
			"duration", duration,
		)
	}
}

// LogNotFound logs a lookup of an unknown algorithm id.
func (l *Logger) LogNotFound(ctx context.Context, id string) {
	l.InfoContext(ctx, "algorithm not found",
		"algorithm", id,
	)
}

// LogPublish logs a completed or failed static export.
func (l *Logger) LogPublish(ctx context.Context, objects int, bytes int64, duration time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "publish failed",
			"objects", objects,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "publish completed",
			"objects", objects,
			"bytes", bytes,
			"duration", duration,
		)
	}
}

// LogRequest logs one served HTTP request. Server errors log at warn level.
func (l *Logger) LogRequest(ctx context.Context, method, path string, status, bytes int, duration time.Duration) {
	level := slog.LevelInfo
	if status >= 500 {
		level = slog.LevelWarn
	}
	l.Log(ctx, level, "request",
		"method", method,
		"path", path,
		"status", status,
		"bytes", bytes,
		"duration", duration,
	)
}
