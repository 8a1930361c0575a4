package kmeans3d

import (
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with kmeans3d-specific context.
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

// NewJSONLogger creates a Logger that writes JSON-formatted logs to w.
// A nil w writes to stderr.
func NewJSONLogger(w io.Writer, level slog.Level) *Logger {
	if w == nil {
		w = os.Stderr
	}
	return NewLogger(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that writes human-readable text logs to w.
// A nil w writes to stderr.
func NewTextLogger(w io.Writer, level slog.Level) *Logger {
	if w == nil {
		w = os.Stderr
	}
	return NewLogger(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	}))
}

// WithK adds a k (cluster count) field to the logger.
func (l *Logger) WithK(k int) *Logger {
	return &Logger{
		Logger: l.Logger.With("k", k),
	}
}

// WithCount adds a point count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("points", count),
	}
}

// LogIteration logs one assignment + update round.
func (l *Logger) LogIteration(index int, movement float64, empty int) {
	if empty > 0 {
		l.Debug("iteration reseeded empty clusters",
			"iteration", index,
			"movement", movement,
			"empty", empty,
		)
		return
	}
	l.Debug("iteration completed",
		"iteration", index,
		"movement", movement,
	)
}

// LogCluster logs a clustering run.
func (l *Logger) LogCluster(stats RunStats, err error) {
	if err != nil {
		l.Error("clustering failed",
			"points", stats.Points,
			"k", stats.K,
			"error", err,
		)
		return
	}
	l.Info("clustering completed",
		"points", stats.Points,
		"k", stats.K,
		"iterations", stats.Iterations,
		"converged", stats.Converged,
		"reseeds", stats.Reseeds,
	)
}
