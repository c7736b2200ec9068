package logger

import (
	"io"
	"log/slog"
	"os"

	"github.com/MGTheTrain/travel-marketplace/internal/pkg/config"
)

// NewConsoleLogger writes to stdout, as text unless the settings ask for json.
func NewConsoleLogger(settings *config.LoggerSettings) Logger {
	return newWriterLogger(os.Stdout, settings)
}

func newWriterLogger(w io.Writer, settings *config.LoggerSettings) *slogLogger {
	opts := handlerOptions(settings.LogLevel)

	var handler slog.Handler
	if settings.Format == config.LogFormatJSON {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return newSlogLogger(handler, settings.Service)
}
