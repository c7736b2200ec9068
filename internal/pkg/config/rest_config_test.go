//go:build unit
// +build unit

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rest-app.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestInitializeRestConfig_FromFile(t *testing.T) {
	path := writeConfig(t, `
port: "9090"
database:
  type: sqlite
  dsn: ":memory:"
auth:
  jwt_secret: "`+testSecret+`"
  token_ttl: 2h
cache:
  type: memory
  default_ttl: 30s
billing:
  currency: AED
  tax_percent: 5
  number_prefix: TRV
  due_days: 7
`)

	cfg, err := InitializeRestConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, SqliteDbType, cfg.Database.Type)
	assert.Equal(t, 2*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, 30*time.Second, cfg.Cache.DefaultTTL)
	assert.Equal(t, "AED", cfg.Billing.Currency)
	assert.InDelta(t, 5.0, cfg.Billing.TaxPercent, 0.0001)
	assert.Equal(t, "TRV", cfg.Billing.NumberPrefix)
	assert.Equal(t, LogTypeConsole, cfg.Logger.LogType)
	assert.Equal(t, LogFormatText, cfg.Logger.Format)
	assert.Equal(t, "travel-marketplace", cfg.Logger.Service)
	assert.Equal(t, "@daily", cfg.Scheduler.RecurringInvoices)
}

func TestInitializeRestConfig_EnvOverride(t *testing.T) {
	path := writeConfig(t, `
auth:
  jwt_secret: "`+testSecret+`"
`)
	t.Setenv("MARKETPLACE_PORT", "7070")
	t.Setenv("MARKETPLACE_BILLING_CURRENCY", "EUR")

	cfg, err := InitializeRestConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.Port)
	assert.Equal(t, "EUR", cfg.Billing.Currency)
}

func TestInitializeRestConfig_MissingSecret(t *testing.T) {
	path := writeConfig(t, `port: "8080"`)

	_, err := InitializeRestConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "auth")
}

func TestInitializeRestConfig_MissingFileUsesEnv(t *testing.T) {
	t.Setenv("MARKETPLACE_AUTH_JWT_SECRET", testSecret)

	cfg, err := InitializeRestConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
}

func TestSchedulerSettingsValidation(t *testing.T) {
	tests := []struct {
		name          string
		settings      *SchedulerSettings
		expectedError bool
	}{
		{"disabled ignores expressions", &SchedulerSettings{Enabled: false}, false},
		{"descriptors", &SchedulerSettings{Enabled: true, RecurringInvoices: "@daily", OverdueInvoices: "@every 1h"}, false},
		{"five field spec", &SchedulerSettings{Enabled: true, RecurringInvoices: "0 2 * * *", OverdueInvoices: "*/15 * * * *"}, false},
		{"missing spec", &SchedulerSettings{Enabled: true, RecurringInvoices: "@daily"}, true},
		{"invalid spec", &SchedulerSettings{Enabled: true, RecurringInvoices: "every day", OverdueInvoices: "@hourly"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.settings.Validate()
			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestStorageSettingsValidation(t *testing.T) {
	assert.NoError(t, (&StorageSettings{Type: LocalStorageType, LocalRoot: "/tmp/docs", MaxSizeMB: 5}).Validate())
	assert.Error(t, (&StorageSettings{Type: LocalStorageType, MaxSizeMB: 5}).Validate())
	assert.NoError(t, (&StorageSettings{Type: S3StorageType, S3Bucket: "docs", MaxSizeMB: 5}).Validate())
	assert.Error(t, (&StorageSettings{Type: S3StorageType, MaxSizeMB: 5}).Validate())
	assert.Error(t, (&StorageSettings{Type: "azure", MaxSizeMB: 5}).Validate())
}

func TestCacheSettingsValidation(t *testing.T) {
	assert.NoError(t, (&CacheSettings{Type: MemoryCacheType, DefaultTTL: time.Minute}).Validate())
	assert.Error(t, (&CacheSettings{Type: RedisCacheType, DefaultTTL: time.Minute}).Validate())
	assert.NoError(t, (&CacheSettings{Type: RedisCacheType, RedisAddr: "localhost:6379", DefaultTTL: time.Minute}).Validate())
}
