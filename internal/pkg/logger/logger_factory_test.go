//go:build unit
// +build unit

package logger

import (
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/MGTheTrain/travel-marketplace/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetProcessLogger() {
	mu.Lock()
	instance = nil
	mu.Unlock()
}

func TestNew(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "api.log")

	tests := []struct {
		name     string
		settings *config.LoggerSettings
		wantErr  bool
	}{
		{"console", &config.LoggerSettings{LogLevel: config.LogLevelInfo, LogType: config.LogTypeConsole}, false},
		{"console json", &config.LoggerSettings{LogLevel: config.LogLevelDebug, LogType: config.LogTypeConsole, Format: config.LogFormatJSON}, false},
		{"file", &config.LoggerSettings{LogLevel: config.LogLevelInfo, LogType: config.LogTypeFile, FilePath: logPath, MaxSize: 10, MaxBackups: 3, MaxAge: 28}, false},
		{"invalid level", &config.LoggerSettings{LogLevel: "verbose", LogType: config.LogTypeConsole}, true},
		{"unknown type", &config.LoggerSettings{LogLevel: config.LogLevelInfo, LogType: "syslog"}, true},
		{"file without rotation", &config.LoggerSettings{LogLevel: config.LogLevelInfo, LogType: config.LogTypeFile, FilePath: logPath}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := New(tt.settings)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, log)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, log)
		})
	}
}

func TestGetLogger_BeforeInit(t *testing.T) {
	resetProcessLogger()
	t.Cleanup(resetProcessLogger)

	log, err := GetLogger()
	assert.Nil(t, log)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not initialized")
}

func TestInitLogger_KeepsFirstLogger(t *testing.T) {
	resetProcessLogger()
	t.Cleanup(resetProcessLogger)

	require.NoError(t, InitLogger(&config.LoggerSettings{LogLevel: config.LogLevelInfo, LogType: config.LogTypeConsole}))
	first, err := GetLogger()
	require.NoError(t, err)

	require.NoError(t, InitLogger(&config.LoggerSettings{LogLevel: config.LogLevelDebug, LogType: config.LogTypeConsole}))
	second, err := GetLogger()
	require.NoError(t, err)

	assert.Same(t, first, second)
}

func TestInitLogger_RetryAfterFailure(t *testing.T) {
	resetProcessLogger()
	t.Cleanup(resetProcessLogger)

	assert.Error(t, InitLogger(&config.LoggerSettings{LogLevel: config.LogLevelInfo, LogType: config.LogTypeFile}))
	_, err := GetLogger()
	assert.Error(t, err)

	require.NoError(t, InitLogger(&config.LoggerSettings{LogLevel: config.LogLevelInfo, LogType: config.LogTypeConsole}))
	log, err := GetLogger()
	require.NoError(t, err)
	assert.NotNil(t, log)
}

func TestHandlerOptions_Levels(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{config.LogLevelDebug, slog.LevelDebug},
		{config.LogLevelInfo, slog.LevelInfo},
		{config.LogLevelWarning, slog.LevelWarn},
		{config.LogLevelError, slog.LevelError},
		{config.LogLevelCritical, slog.LevelError},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.want, handlerOptions(tt.level).Level.Level())
		})
	}
}
