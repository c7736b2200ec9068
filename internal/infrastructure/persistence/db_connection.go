package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/MGTheTrain/travel-marketplace/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/travel-marketplace/internal/pkg/config"
	"github.com/MGTheTrain/travel-marketplace/internal/pkg/logger"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const defaultSlowQuery = 200 * time.Millisecond

// NewDBConnection opens the configured database and applies the pool settings.
// gorm's own messages (slow queries, errors) go to log.
func NewDBConnection(settings config.DatabaseSettings, log logger.Logger) (*gorm.DB, error) {
	cfg := &gorm.Config{
		TranslateError: true,
		Logger:         newGormLogger(log, settings.SlowQuery),
	}

	var (
		db  *gorm.DB
		err error
	)
	switch settings.Type {
	case config.PostgresDbType:
		db, err = openPostgres(settings, cfg)
	case config.SqliteDbType:
		db, err = openSQLite(settings, cfg)
	default:
		return nil, fmt.Errorf("unsupported database type: %s", settings.Type)
	}
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get raw DB connection: %w", err)
	}
	if settings.Type == config.SqliteDbType {
		// SQLite serialises writers and :memory: is per connection
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(settings.MaxOpenConns)
		if settings.MaxIdleConns > 0 {
			sqlDB.SetMaxIdleConns(settings.MaxIdleConns)
		}
	}
	sqlDB.SetConnMaxLifetime(settings.ConnMaxLifetime)

	log.Info("Connected to ", settings.Type, " database")
	return db, nil
}

// openPostgres connects with DSN and, when Name is set, creates that database
// if needed and reconnects to it
func openPostgres(settings config.DatabaseSettings, cfg *gorm.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(settings.DSN), cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	if settings.Name == "" {
		return db, nil
	}

	var exists bool
	if err := db.Raw("SELECT EXISTS (SELECT 1 FROM pg_database WHERE datname = ?)", settings.Name).Scan(&exists).Error; err != nil {
		_ = CloseDB(db)
		return nil, fmt.Errorf("failed to look up database %s: %w", settings.Name, err)
	}
	if !exists {
		if err := db.Exec(fmt.Sprintf("CREATE DATABASE %q", settings.Name)).Error; err != nil {
			_ = CloseDB(db)
			return nil, fmt.Errorf("failed to create database %s: %w", settings.Name, err)
		}
	}
	if err := CloseDB(db); err != nil {
		return nil, err
	}

	db, err = gorm.Open(postgres.Open(fmt.Sprintf("%s dbname=%s", settings.DSN, settings.Name)), cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database %s: %w", settings.Name, err)
	}
	return db, nil
}

func openSQLite(settings config.DatabaseSettings, cfg *gorm.Config) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(settings.DSN), cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to SQLite: %w", err)
	}
	return db, nil
}

// Migrate creates or updates the schema of every marketplace table
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// Ping checks that the database answers
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}
	return sqlDB.PingContext(ctx)
}

// CloseDB closes the database connection
func CloseDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}
	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}
	return nil
}

// gormWriter lets gorm's logger print through ours
type gormWriter struct {
	log logger.Logger
}

func (w gormWriter) Printf(format string, args ...interface{}) {
	w.log.Warn(fmt.Sprintf(format, args...))
}

func newGormLogger(log logger.Logger, slowQuery time.Duration) gormlogger.Interface {
	if slowQuery <= 0 {
		slowQuery = defaultSlowQuery
	}
	return gormlogger.New(gormWriter{log: log.With("component", "gorm")}, gormlogger.Config{
		SlowThreshold:             slowQuery,
		LogLevel:                  gormlogger.Warn,
		IgnoreRecordNotFoundError: true,
	})
}
