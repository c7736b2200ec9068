package commands

import (
	"fmt"
	"os"

	"github.com/MGTheTrain/travel-marketplace/internal/app"
	"github.com/MGTheTrain/travel-marketplace/internal/infrastructure/cache"

	"github.com/spf13/cobra"
)

// SeedAirportsCmd upserts the airports of a CSV file (iata,icao,name,city,country,lat,lon)
func SeedAirportsCmd(cmd *cobra.Command, _ []string) error {
	filePath, err := cmd.Flags().GetString("file")
	if err != nil {
		return fmt.Errorf("invalid file flag: %w", err)
	}

	cc, err := newCommandContext(cmd)
	if err != nil {
		return err
	}
	defer cc.close()

	// A process-local cache; the API's cache entries expire on their own TTL.
	airportService, err := app.NewAirportService(cc.repos.Airports, cache.NewMemoryCache(16, cc.cfg.Cache.DefaultTTL), cc.cfg.Cache.DefaultTTL, cc.log)
	if err != nil {
		return fmt.Errorf("failed to create airport service: %w", err)
	}

	file, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", filePath, err)
	}
	defer file.Close()

	result, err := airportService.Import(cmd.Context(), file)
	if err != nil {
		return err
	}
	cc.log.Info("Imported ", result.Imported, " airports, skipped ", result.Skipped, " rows")
	return nil
}

// InitAirportCommands registers the airport catalogue commands
func InitAirportCommands(rootCmd *cobra.Command) {
	seedCmd := &cobra.Command{
		Use:   "seed-airports",
		Short: "Import airports from a CSV file",
		Args:  cobra.NoArgs,
		RunE:  SeedAirportsCmd,
	}
	seedCmd.Flags().String("file", "", "CSV file with the columns iata,icao,name,city,country,lat,lon")
	_ = seedCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(seedCmd)
}
