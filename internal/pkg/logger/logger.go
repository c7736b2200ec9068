// Package logger provides the process wide Logger used by repositories,
// services, handlers and jobs, backed by log/slog.
package logger

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/MGTheTrain/travel-marketplace/internal/pkg/config"
)

// Logger defines the logging interface shared by repositories, services and handlers.
// Messages are built like fmt.Sprint, e.g. log.Info("Created invoice ", number).
type Logger interface {
	Debug(args ...interface{})
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})
	Fatal(args ...interface{})
	Panic(args ...interface{})

	// With returns a Logger that adds the given key/value pairs to every record.
	With(keyValues ...interface{}) Logger
}

type slogLogger struct {
	logger *slog.Logger
	exit   func(code int)
}

func newSlogLogger(handler slog.Handler, service string) *slogLogger {
	l := slog.New(handler)
	if service != "" {
		l = l.With("service", service)
	}
	return &slogLogger{logger: l, exit: os.Exit}
}

func (l *slogLogger) Debug(args ...interface{}) { l.logger.Debug(fmt.Sprint(args...)) }
func (l *slogLogger) Info(args ...interface{})  { l.logger.Info(fmt.Sprint(args...)) }
func (l *slogLogger) Warn(args ...interface{})  { l.logger.Warn(fmt.Sprint(args...)) }
func (l *slogLogger) Error(args ...interface{}) { l.logger.Error(fmt.Sprint(args...)) }

// Fatal logs at error level and terminates the process
func (l *slogLogger) Fatal(args ...interface{}) {
	l.logger.Error(fmt.Sprint(args...), "fatal", true)
	l.exit(1)
}

// Panic logs at error level and panics with the message
func (l *slogLogger) Panic(args ...interface{}) {
	msg := fmt.Sprint(args...)
	l.logger.Error(msg, "panic", true)
	panic(msg)
}

func (l *slogLogger) With(keyValues ...interface{}) Logger {
	return &slogLogger{logger: l.logger.With(keyValues...), exit: l.exit}
}

// handlerOptions maps the configured level; critical has no slog level of its own
// and is treated as error.
func handlerOptions(level string) *slog.HandlerOptions {
	var lvl slog.Level
	switch level {
	case config.LogLevelDebug:
		lvl = slog.LevelDebug
	case config.LogLevelWarning:
		lvl = slog.LevelWarn
	case config.LogLevelError, config.LogLevelCritical:
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return &slog.HandlerOptions{Level: lvl}
}
