package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables overriding file settings,
// e.g. MARKETPLACE_DATABASE_DSN overrides database.dsn
const EnvPrefix = "MARKETPLACE"

// RestConfig aggregates all settings of the REST API process
type RestConfig struct {
	Port      string            `mapstructure:"port" validate:"required,numeric"`
	Database  DatabaseSettings  `mapstructure:"database"`
	Logger    LoggerSettings    `mapstructure:"logger"`
	Auth      AuthSettings      `mapstructure:"auth"`
	Cache     CacheSettings     `mapstructure:"cache"`
	Storage   StorageSettings   `mapstructure:"storage"`
	Scheduler SchedulerSettings `mapstructure:"scheduler"`
	RateLimit RateLimitSettings `mapstructure:"rate_limit"`
	Billing   BillingSettings   `mapstructure:"billing"`
}

// Validate validates every nested settings block
func (c *RestConfig) Validate() error {
	validate := validator.New()
	if err := validate.Var(c.Port, "required,numeric"); err != nil {
		return fmt.Errorf("invalid port %q: %w", c.Port, err)
	}

	checks := []struct {
		name string
		fn   func() error
	}{
		{"database", c.Database.Validate},
		{"logger", c.Logger.Validate},
		{"auth", c.Auth.Validate},
		{"cache", c.Cache.Validate},
		{"storage", c.Storage.Validate},
		{"scheduler", c.Scheduler.Validate},
		{"rate_limit", c.RateLimit.Validate},
		{"billing", c.Billing.Validate},
	}

	var errs []error
	for _, check := range checks {
		if err := check.fn(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", check.name, err))
		}
	}

	return errors.Join(errs...)
}

func restDefaults() map[string]any {
	return map[string]any{
		"port":                           "8080",
		"database.type":                  SqliteDbType,
		"database.dsn":                   "marketplace.db",
		"database.name":                  "",
		"database.max_open_conns":        25,
		"database.max_idle_conns":        5,
		"database.conn_max_lifetime":     30 * time.Minute,
		"database.slow_query":            200 * time.Millisecond,
		"logger.log_level":               LogLevelInfo,
		"logger.log_type":                LogTypeConsole,
		"logger.format":                  LogFormatText,
		"logger.service":                 "travel-marketplace",
		"logger.file_path":               "",
		"logger.max_size":                10,
		"logger.max_backups":             3,
		"logger.max_age":                 28,
		"logger.compress":                true,
		"auth.jwt_secret":                "",
		"auth.issuer":                    "travel-marketplace",
		"auth.token_ttl":                 24 * time.Hour,
		"cache.type":                     MemoryCacheType,
		"cache.redis_addr":               "",
		"cache.redis_password":           "",
		"cache.redis_db":                 0,
		"cache.max_entries":              1024,
		"cache.default_ttl":              5 * time.Minute,
		"storage.type":                   LocalStorageType,
		"storage.local_root":             "./data/documents",
		"storage.s3_bucket":              "",
		"storage.s3_region":              "us-east-1",
		"storage.s3_endpoint":            "",
		"storage.path_style":             false,
		"storage.max_size_mb":            10,
		"scheduler.enabled":              true,
		"scheduler.recurring_invoices":   "@daily",
		"scheduler.overdue_invoices":     "@hourly",
		"rate_limit.requests_per_second": 10.0,
		"rate_limit.burst":               20,
		"billing.currency":               "USD",
		"billing.tax_percent":            0.0,
		"billing.number_prefix":          "INV",
		"billing.due_days":               14,
	}
}

// InitializeRestConfig reads the YAML file at configPath, applies environment
// overrides and validates the result. A missing file is not an error when the
// environment supplies everything that is required.
func InitializeRestConfig(configPath string) (*RestConfig, error) {
	v := viper.New()

	for key, value := range restDefaults() {
		v.SetDefault(key, value)
	}

	v.SetConfigType("yaml")
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
			}
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg RestConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}
