package goalseek

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with goal-seek specific helpers.
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
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithRunID adds a run_id field identifying one seek.
func (l *Logger) WithRunID(id string) *Logger {
	return &Logger{
		Logger: l.Logger.With("run_id", id),
	}
}

// WithTarget adds the target value to the logger.
func (l *Logger) WithTarget(target float64) *Logger {
	return &Logger{
		Logger: l.Logger.With("target", target),
	}
}

// LogStep logs one iteration at debug level.
func (l *Logger) LogStep(ctx context.Context, step Step) {
	l.DebugContext(ctx, "seek step",
		"iteration", step.Iteration,
		"lower", step.Lower,
		"upper", step.Upper,
		"input", step.Input,
		"value", step.Value,
		"skipped", step.Skipped,
	)
}

// LogSeek logs the outcome of a seek.
func (l *Logger) LogSeek(ctx context.Context, res Result, err error) {
	if err != nil {
		l.WarnContext(ctx, "seek failed",
			"iterations", res.Iterations,
			"skipped", res.Skipped,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "seek converged",
			"value", res.Value,
			"iterations", res.Iterations,
			"skipped", res.Skipped,
		)
	}
}

// LogBatch logs a SeekAll run.
func (l *Logger) LogBatch(ctx context.Context, count, failed int) {
	if failed > 0 {
		l.WarnContext(ctx, "batch seek completed with failures",
			"total", count,
			"failed", failed,
			"success", count-failed,
		)
	} else {
		l.InfoContext(ctx, "batch seek completed",
			"count", count,
		)
	}
}
