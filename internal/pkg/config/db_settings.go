package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// PostgresDbType selects the PostgreSQL gorm driver
const PostgresDbType = "postgres"

// SqliteDbType selects the SQLite gorm driver
const SqliteDbType = "sqlite"

// DatabaseSettings holds the database connection and pool settings.
// SQLite always runs on a single connection whatever MaxOpenConns says.
type DatabaseSettings struct {
	Type            string        `mapstructure:"type" validate:"required,oneof=postgres sqlite"`
	DSN             string        `mapstructure:"dsn" validate:"required"`
	Name            string        `mapstructure:"name" validate:"required_if=Type postgres,max=63"`
	MaxOpenConns    int           `mapstructure:"max_open_conns" validate:"gte=0,lte=500"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns" validate:"gte=0,lte=500"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime" validate:"gte=0"`
	SlowQuery       time.Duration `mapstructure:"slow_query" validate:"gte=0"`
}

// Validate checks that all fields in DatabaseSettings are valid
func (s *DatabaseSettings) Validate() error {
	if err := validator.New().Struct(s); err != nil {
		return fmt.Errorf("validation failed for DatabaseSettings: %w", err)
	}
	return nil
}
