package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// LoggerSettings selects the log sink, level and encoding. Service, when set,
// is attached to every record so API and CLI output can be told apart.
type LoggerSettings struct {
	LogLevel   string `mapstructure:"log_level" validate:"required,oneof=debug info warning error critical"`
	LogType    string `mapstructure:"log_type" validate:"required,oneof=console file"`
	Format     string `mapstructure:"format" validate:"omitempty,oneof=text json"`
	Service    string `mapstructure:"service" validate:"max=64"`
	FilePath   string `mapstructure:"file_path" validate:"required_if=LogType file"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"`
	Compress   bool   `mapstructure:"compress"`
}

// Validate checks the settings; rotation limits only matter for the file sink
func (s *LoggerSettings) Validate() error {
	if err := validator.New().Struct(s); err != nil {
		return fmt.Errorf("validation failed for LoggerSettings: %w", err)
	}
	if s.LogType != LogTypeFile {
		return nil
	}

	limits := []struct {
		key           string
		value, lo, hi int
	}{
		{"max_size", s.MaxSize, 1, 100},
		{"max_backups", s.MaxBackups, 1, 10},
		{"max_age", s.MaxAge, 1, 365},
	}
	var errs []error
	for _, l := range limits {
		if l.value < l.lo || l.value > l.hi {
			errs = append(errs, fmt.Errorf("%s must be between %d and %d, got %d", l.key, l.lo, l.hi, l.value))
		}
	}
	return errors.Join(errs...)
}
