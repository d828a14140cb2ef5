package barch

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with barch-specific helpers so that all
// operations log consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger with the given handler. If handler is nil, a
// default text handler to stderr is used.
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

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// LogCompress logs a whole-image compress operation.
func (l *Logger) LogCompress(ctx context.Context, width, height uint, words uint, duration time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "compress failed",
			"width", width,
			"height", height,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "compress completed",
			"width", width,
			"height", height,
			"pixel_words", words,
			"duration", duration,
		)
	}
}

// LogUncompress logs a whole-image uncompress operation.
func (l *Logger) LogUncompress(ctx context.Context, width, height uint, duration time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "uncompress failed",
			"width", width,
			"height", height,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "uncompress completed",
			"width", width,
			"height", height,
			"duration", duration,
		)
	}
}

// LogPut logs storing an archive in a blob store.
func (l *Logger) LogPut(ctx context.Context, name string, bytes int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "archive put failed",
			"name", name,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "archive stored",
			"name", name,
			"bytes", bytes,
		)
	}
}

// LogOpen logs fetching an archive from a blob store.
func (l *Logger) LogOpen(ctx context.Context, name string, err error) {
	if err != nil {
		l.ErrorContext(ctx, "archive open failed",
			"name", name,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "archive opened",
			"name", name,
		)
	}
}
