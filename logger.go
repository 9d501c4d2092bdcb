package homr

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with homr-specific operation helpers.
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
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	}))
}

// WithSplit adds a split field to the logger.
func (l *Logger) WithSplit(s Split) *Logger {
	return &Logger{
		Logger: l.Logger.With("split", s.String()),
	}
}

// LogLoad logs the outcome of loading one split.
func (l *Logger) LogLoad(ctx context.Context, s Split, examples int, duration time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "load failed",
			"split", s.String(),
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "split loaded",
			"split", s.String(),
			"examples", examples,
			"duration", duration,
		)
	}
}

// LogFetch logs a split file download.
func (l *Logger) LogFetch(ctx context.Context, name, path string, fetched bool, err error) {
	switch {
	case err != nil:
		l.ErrorContext(ctx, "fetch failed",
			"name", name,
			"error", err,
		)
	case fetched:
		l.InfoContext(ctx, "file downloaded",
			"name", name,
			"path", path,
		)
	default:
		l.DebugContext(ctx, "file present",
			"name", name,
			"path", path,
		)
	}
}

// LogEvaluate logs an evaluation run.
func (l *Logger) LogEvaluate(ctx context.Context, examples int, score float64, err error) {
	if err != nil {
		l.ErrorContext(ctx, "evaluation failed",
			"examples", examples,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "evaluation completed",
			"examples", examples,
			"edit_distance", score,
		)
	}
}
