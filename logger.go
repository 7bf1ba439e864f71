package nanoflow

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with nanoflow-specific context.
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

// WithColumn adds a column field to the logger.
func (l *Logger) WithColumn(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("column", name),
	}
}

// WithMask adds a mask field to the logger.
func (l *Logger) WithMask(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("mask", name),
	}
}

// WithEvents adds an event count field to the logger.
func (l *Logger) WithEvents(n int) *Logger {
	return &Logger{
		Logger: l.Logger.With("events", n),
	}
}

// LogDefine logs a column derivation.
func (l *Logger) LogDefine(output string, inputs []string, events int) {
	l.Debug("column derived",
		"column", output,
		"inputs", inputs,
		"events", events,
	)
}

// LogFilter logs a selection mask evaluation.
func (l *Logger) LogFilter(mask string, passed uint64, events int) {
	l.Debug("selection evaluated",
		"mask", mask,
		"passed", passed,
		"events", events,
	)
}

// LogSnapshot logs a snapshot write.
func (l *Logger) LogSnapshot(columns, events int, codecName string) {
	l.Info("snapshot written",
		"columns", columns,
		"events", events,
		"codec", codecName,
	)
}
