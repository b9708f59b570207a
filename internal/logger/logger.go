package logger

import (
	"context"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger defines the leveled logging contract used across the pipeline.
// Every method takes the call's context so run-scoped fields travel with it.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...interface{})
	Info(ctx context.Context, msg string, args ...interface{})
	Warn(ctx context.Context, msg string, args ...interface{})
	Error(ctx context.Context, msg string, args ...interface{})
}

type runIDKey struct{}

// WithRunID returns a context carrying a run identifier. The logger attaches
// it as a field to every line logged under that context.
func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, runIDKey{}, runID)
}

// RunID extracts the run identifier from ctx, or "" when none is set.
func RunID(ctx context.Context) string {
	if id, ok := ctx.Value(runIDKey{}).(string); ok {
		return id
	}
	return ""
}

type implLogger struct {
	console *logrus.Logger
	file    *logrus.Logger
}

// New creates a console-only Logger at the given level.
func New(level string) Logger {
	return &implLogger{console: newConsoleLogger(level)}
}

// NewWithFile creates a Logger that writes text to stdout and JSON to a
// rotating file at path.
func NewWithFile(level, path string) Logger {
	return &implLogger{
		console: newConsoleLogger(level),
		file:    newFileLogger(level, path),
	}
}

func newConsoleLogger(level string) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stdout)
	l.SetLevel(parseLevel(level))
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	return l
}

func newFileLogger(level, path string) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(&lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // MB
		MaxBackups: 10,
		MaxAge:     30, // days
		Compress:   true,
	})
	l.SetLevel(parseLevel(level))
	l.SetFormatter(&logrus.JSONFormatter{})
	return l
}

func parseLevel(level string) logrus.Level {
	lvl, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}

func (l *implLogger) log(ctx context.Context, level logrus.Level, msg string, args ...interface{}) {
	for _, sink := range []*logrus.Logger{l.console, l.file} {
		if sink == nil {
			continue
		}
		entry := logrus.NewEntry(sink)
		if id := RunID(ctx); id != "" {
			entry = entry.WithField("run_id", id)
		}
		entry.Logf(level, msg, args...)
	}
}

func (l *implLogger) Debug(ctx context.Context, msg string, args ...interface{}) {
	l.log(ctx, logrus.DebugLevel, msg, args...)
}

func (l *implLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	l.log(ctx, logrus.InfoLevel, msg, args...)
}

func (l *implLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	l.log(ctx, logrus.WarnLevel, msg, args...)
}

func (l *implLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	l.log(ctx, logrus.ErrorLevel, msg, args...)
}
