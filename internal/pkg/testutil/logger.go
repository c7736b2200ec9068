package testutil

import (
	"testing"

	"github.com/MGTheTrain/travel-marketplace/internal/pkg/config"
	"github.com/MGTheTrain/travel-marketplace/internal/pkg/logger"

	"github.com/stretchr/testify/require"
)

// SetupTestLogger returns a console logger tagged with the running test's name.
// It does not touch the process logger, so parallel packages cannot race on it.
func SetupTestLogger(t *testing.T) logger.Logger {
	t.Helper()

	log, err := logger.New(&config.LoggerSettings{
		LogLevel: config.LogLevelWarning,
		LogType:  config.LogTypeConsole,
		Service:  "test",
	})
	require.NoError(t, err)

	return log.With("test", t.Name())
}
