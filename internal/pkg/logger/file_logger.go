package logger

import (
	"log/slog"

	"github.com/MGTheTrain/travel-marketplace/internal/pkg/config"

	"github.com/natefinch/lumberjack"
)

// NewFileLogger writes JSON lines to settings.FilePath, rotated by size and age.
func NewFileLogger(settings *config.LoggerSettings) Logger {
	writer := &lumberjack.Logger{
		Filename:   settings.FilePath,
		MaxSize:    settings.MaxSize,
		MaxBackups: settings.MaxBackups,
		MaxAge:     settings.MaxAge,
		Compress:   settings.Compress,
	}
	return newSlogLogger(slog.NewJSONHandler(writer, handlerOptions(settings.LogLevel)), settings.Service)
}
