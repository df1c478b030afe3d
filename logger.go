package genestring

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with genestring-specific context.
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
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
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

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// noopLogger backs the zero-value Genestring and the default options.
var noopLogger = NoopLogger()

// WithOffset adds a bit offset field to the logger.
func (l *Logger) WithOffset(offset uint64) *Logger {
	return &Logger{
		Logger: l.Logger.With("offset", offset),
	}
}

// WithBits adds a field width (in bits) to the logger.
func (l *Logger) WithBits(bits uint64) *Logger {
	return &Logger{
		Logger: l.Logger.With("bits", bits),
	}
}

// LogFill logs a bulk fill operation.
func (l *Logger) LogFill(words int) {
	l.Debug("fill completed",
		"words", words,
	)
}

// LogTransplant logs a transplant operation.
func (l *Logger) LogTransplant(offset, bits uint64, err error) {
	if err != nil {
		l.Error("transplant failed",
			"offset", offset,
			"bits", bits,
			"error", err,
		)
	} else {
		l.Debug("transplant completed",
			"offset", offset,
			"bits", bits,
		)
	}
}
