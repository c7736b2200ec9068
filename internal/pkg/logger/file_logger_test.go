//go:build unit
// +build unit

package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/MGTheTrain/travel-marketplace/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fileSettings(t *testing.T, level string) *config.LoggerSettings {
	return &config.LoggerSettings{
		LogLevel:   level,
		LogType:    config.LogTypeFile,
		Service:    "marketplace-rest-api",
		FilePath:   filepath.Join(t.TempDir(), "marketplace.log"),
		MaxSize:    1,
		MaxBackups: 1,
		MaxAge:     1,
	}
}

func TestNewFileLogger_WritesJSONLines(t *testing.T) {
	settings := fileSettings(t, config.LogLevelInfo)
	log := NewFileLogger(settings)

	log.Debug("debug message")
	log.Info("invoice paid ", "INV-2026-000001")
	log.With("job", "generate_recurring").Error("job failed")

	content, err := os.ReadFile(settings.FilePath)
	require.NoError(t, err)

	output := string(content)
	assert.NotContains(t, output, "debug message")
	assert.Contains(t, output, `"msg":"invoice paid INV-2026-000001"`)
	assert.Contains(t, output, `"level":"ERROR"`)
	assert.Contains(t, output, `"job":"generate_recurring"`)
	assert.Contains(t, output, `"service":"marketplace-rest-api"`)
}

func TestNewFileLogger_CriticalLogsErrorsOnly(t *testing.T) {
	settings := fileSettings(t, config.LogLevelCritical)
	log := NewFileLogger(settings)

	log.Warn("ad cache write failed")
	log.Error("database unreachable")

	content, err := os.ReadFile(settings.FilePath)
	require.NoError(t, err)
	assert.NotContains(t, string(content), "ad cache write failed")
	assert.Contains(t, string(content), "database unreachable")
}
