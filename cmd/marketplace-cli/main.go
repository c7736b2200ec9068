// Package main is the entry point for the marketplace-cli application.
// It registers the maintenance sub-commands (schema migration, airport seeding,
// admin bootstrap and billing jobs) and executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/MGTheTrain/travel-marketplace/cmd/marketplace-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "marketplace-cli",
		Short: "Travel marketplace maintenance tool",
		Long: `marketplace-cli runs maintenance tasks against the marketplace database.
It reads the same configuration as the REST API: the YAML file given by --config
or CONFIG_PATH, overridden by MARKETPLACE_* environment variables.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().String("config", os.Getenv("CONFIG_PATH"), "Path to the YAML configuration file")

	commands.InitDatabaseCommands(rootCmd)
	commands.InitAirportCommands(rootCmd)
	commands.InitAccountCommands(rootCmd)
	commands.InitBillingCommands(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
}
