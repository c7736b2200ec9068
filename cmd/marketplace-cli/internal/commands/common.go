package commands

import (
	"fmt"

	"github.com/MGTheTrain/travel-marketplace/internal/infrastructure/persistence"
	"github.com/MGTheTrain/travel-marketplace/internal/pkg/config"
	"github.com/MGTheTrain/travel-marketplace/internal/pkg/logger"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// cliService tags CLI log records; the config file is shared with the API
const cliService = "marketplace-cli"

// commandContext is what every command needs: settings, a logger and an open database
type commandContext struct {
	cfg   *config.RestConfig
	log   logger.Logger
	db    *gorm.DB
	repos *persistence.Repositories
}

func (c *commandContext) close() {
	if err := persistence.CloseDB(c.db); err != nil {
		c.log.Warn("failed to close database: ", err)
	}
}

// newCommandContext loads the configuration named by the --config flag and connects to the database
func newCommandContext(cmd *cobra.Command) (*commandContext, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("invalid config flag: %w", err)
	}

	cfg, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize config: %w", err)
	}

	cfg.Logger.Service = cliService
	log, err := setupLogger(&cfg.Logger)
	if err != nil {
		return nil, err
	}
	log = log.With("command", cmd.CommandPath())

	db, err := persistence.NewDBConnection(cfg.Database, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	repos, err := persistence.NewRepositories(db, log)
	if err != nil {
		_ = persistence.CloseDB(db)
		return nil, fmt.Errorf("failed to create repositories: %w", err)
	}

	return &commandContext{cfg: cfg, log: log, db: db, repos: repos}, nil
}

func setupLogger(settings *config.LoggerSettings) (logger.Logger, error) {
	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}
