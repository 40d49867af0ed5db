// Package logger wraps logrus with leveled, key-value, context-aware
// logging. A trace ID present in the context is attached to every entry.
package logger

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/quickhirelabor/quickhire/internal/config"
)

// Logger is the standard application logger.
type Logger struct {
	l *logrus.Logger
}

var std = &Logger{l: logrus.StandardLogger()}

// StdLogger returns the standard logger instance.
func StdLogger() *Logger {
	return std
}

// New configures the standard logger from config and returns a cleanup
// function that flushes and closes any file output.
func New(cfg *config.Logger) (func(), error) {
	cleanup := func() {}
	if cfg == nil {
		return cleanup, nil
	}

	level := logrus.InfoLevel
	if cfg.Level > 0 && cfg.Level <= int(logrus.TraceLevel) {
		level = logrus.Level(cfg.Level)
	}
	std.l.SetLevel(level)

	switch cfg.Format {
	case "json":
		std.l.SetFormatter(&logrus.JSONFormatter{})
	default:
		std.l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	var out io.Writer = os.Stdout
	if cfg.Output == "file" && cfg.OutputFile != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.OutputFile), 0o755); err != nil {
			return cleanup, fmt.Errorf("failed to create log directory: %w", err)
		}
		f, err := os.OpenFile(cfg.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return cleanup, fmt.Errorf("failed to open log file: %w", err)
		}
		out = f
		cleanup = func() { _ = f.Close() }
	}
	std.l.SetOutput(out)

	return cleanup, nil
}

// SetLevel adjusts the standard logger's level at runtime. Out-of-range
// values are ignored.
func SetLevel(level int) {
	if level > 0 && level <= int(logrus.TraceLevel) {
		std.l.SetLevel(logrus.Level(level))
	}
}

// AddHook attaches a logrus hook to the logger.
func (l *Logger) AddHook(hook logrus.Hook) {
	l.l.AddHook(hook)
}

func (l *Logger) entry(ctx context.Context, kv []any) *logrus.Entry {
	fields := logrus.Fields{}
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			key = fmt.Sprint(kv[i])
		}
		fields[key] = kv[i+1]
	}
	if traceID := getTraceID(ctx); traceID != "" {
		fields[traceFieldName] = traceID
	}
	return l.l.WithFields(fields)
}

// Debug logs at debug level with key-value pairs.
func (l *Logger) Debug(ctx context.Context, msg string, kv ...any) {
	l.entry(ctx, kv).Debug(msg)
}

// Info logs at info level with key-value pairs.
func (l *Logger) Info(ctx context.Context, msg string, kv ...any) {
	l.entry(ctx, kv).Info(msg)
}

// Warn logs at warn level with key-value pairs.
func (l *Logger) Warn(ctx context.Context, msg string, kv ...any) {
	l.entry(ctx, kv).Warn(msg)
}

// Error logs at error level with key-value pairs.
func (l *Logger) Error(ctx context.Context, msg string, kv ...any) {
	l.entry(ctx, kv).Error(msg)
}

// Fatal logs at fatal level with key-value pairs and exits.
func (l *Logger) Fatal(ctx context.Context, msg string, kv ...any) {
	l.entry(ctx, kv).Fatal(msg)
}
