package commands

import (
	"github.com/MGTheTrain/travel-marketplace/internal/infrastructure/persistence"

	"github.com/spf13/cobra"
)

// MigrateCmd creates or updates the schema
func MigrateCmd(cmd *cobra.Command, _ []string) error {
	cc, err := newCommandContext(cmd)
	if err != nil {
		return err
	}
	defer cc.close()

	if err := persistence.Migrate(cc.db); err != nil {
		return err
	}
	cc.log.Info("Database migrations completed successfully")
	return nil
}

// InitDatabaseCommands registers the schema commands
func InitDatabaseCommands(rootCmd *cobra.Command) {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		Args:  cobra.NoArgs,
		RunE:  MigrateCmd,
	})
}
