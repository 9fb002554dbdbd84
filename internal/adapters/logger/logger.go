// Package logger implements a logging adapter using log/slog.
package logger

import (
	"io"
	"log/slog"
	"os"
	"sync"

	"go.trai.ch/stitch/internal/core/ports"
)

// Logger implements ports.Logger using log/slog.
type Logger struct {
	logger *slog.Logger
	level  slog.Level
	mu     sync.RWMutex
}

// New creates a new Logger writing to stderr. Setting STITCH_DEBUG in the
// environment lowers the level to debug.
func New() ports.Logger {
	level := slog.LevelInfo
	if os.Getenv("STITCH_DEBUG") != "" {
		level = slog.LevelDebug
	}
	l := &Logger{level: level}
	l.setWriter(os.Stderr)
	return l
}

// SetOutput updates the logger's output destination.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.setWriter(w)
}

func (l *Logger) setWriter(w io.Writer) {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: l.level,
	})
	l.logger = slog.New(handler)
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Debug(msg)
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg)
}

// Error logs an error message.
func (l *Logger) Error(err error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Error("operation failed", "error", err)
}
