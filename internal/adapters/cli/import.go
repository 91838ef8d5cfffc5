package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sitesspectral/spectral-go/internal/application/importer"
	"github.com/sitesspectral/spectral-go/internal/infrastructure/logging"
)

// NewImportCommand creates the import command with subcommands
func NewImportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Bulk-import platforms or instruments from a file",
		Long: `Bulk-import platforms or instruments from a CSV or JSON file.

Every row goes through the same validation and naming pipeline as a single
create: a row that would be rejected interactively is rejected here too,
reported as "row N: reason". Use --dry-run to preview the names a file
would produce without writing anything.

Examples:
  spectral import platforms --station SVB --file platforms.csv --dry-run
  spectral import platforms --station SVB --file platforms.csv
  spectral import instruments --station SVB --file instruments.json --stop-on-error`,
	}

	// Add subcommands
	cmd.AddCommand(newImportPlatformsCommand())
	cmd.AddCommand(newImportInstrumentsCommand())

	return cmd
}

// newImportPlatformsCommand creates the import platforms subcommand
func newImportPlatformsCommand() *cobra.Command {
	var (
		stationAcronym string
		file           string
		dryRun         bool
		rate           float64
		burst          int
		stopOnError    bool
	)

	cmd := &cobra.Command{
		Use:   "platforms",
		Short: "Bulk-provision platforms from a CSV or JSON file",
		Long: `Bulk-provision platforms at one station from a CSV or JSON file.

CSV files need a header row; JSON files hold an array of objects. Column
names follow the single-create fields (platform_type, ecosystem_code,
vendor, model, ...). Rows without a pinned mount_type_code get the next
free code, exactly as interactive creates do. UAV and satellite rows with
a known hardware identity auto-create their instrument payload.

Examples:
  spectral import platforms --station SVB --file platforms.csv --dry-run
  spectral import platforms --station SVB --file platforms.csv --rate 25`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if stationAcronym == "" {
				return fmt.Errorf("--station flag is required")
			}
			if file == "" {
				return fmt.Errorf("--file flag is required")
			}

			rows, err := importer.ReadRowsFile(file)
			if err != nil {
				return err
			}

			app, err := newAppContext()
			if err != nil {
				return err
			}

			logger, err := logging.New(app.Config.Logging)
			if err != nil {
				return err
			}
			defer logger.Sync()

			handler := importer.NewImportPlatformsHandler(
				app.Stations, app.Platforms, app.Instruments, app.Registry, app.Factory, logger)

			// Flags left unset fall back to the configured defaults.
			if !cmd.Flags().Changed("rate") {
				rate = app.Config.Import.RateLimit
			}
			if !cmd.Flags().Changed("burst") {
				burst = app.Config.Import.Burst
			}
			if !cmd.Flags().Changed("stop-on-error") {
				stopOnError = app.Config.Import.StopOnError
			}

			ctx := context.Background()
			response, err := handler.Handle(ctx, &importer.ImportPlatformsCommand{
				StationAcronym: stationAcronym,
				Rows:           rows,
				DryRun:         dryRun,
				RatePerSecond:  rate,
				Burst:          burst,
				StopOnError:    stopOnError,
			})
			if err != nil {
				return fmt.Errorf("failed to import platforms: %w", err)
			}

			result := response.(*importer.ImportPlatformsResponse)
			return printImportSummary("platform", result.Summary)
		},
	}

	cmd.Flags().StringVar(&stationAcronym, "station", "", "Station acronym (required)")
	cmd.Flags().StringVar(&file, "file", "", "CSV or JSON file to import (required)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Validate and preview names without writing")
	cmd.Flags().Float64Var(&rate, "rate", 0, "Max rows written per second (default from config)")
	cmd.Flags().IntVar(&burst, "burst", 0, "Write limiter burst size (default from config)")
	cmd.Flags().BoolVar(&stopOnError, "stop-on-error", false, "Abort on the first failing row")

	return cmd
}

// newImportInstrumentsCommand creates the import instruments subcommand
func newImportInstrumentsCommand() *cobra.Command {
	var (
		stationAcronym string
		file           string
		dryRun         bool
		rate           float64
		burst          int
		stopOnError    bool
	)

	cmd := &cobra.Command{
		Use:   "instruments",
		Short: "Bulk-mount instruments from a CSV or JSON file",
		Long: `Bulk-mount instruments on one station's platforms from a CSV or JSON
file. Each row addresses its platform with a platform_normalized_name (or
platform) column; rows pointing at another station's platforms are
rejected. Instrument numbers continue each platform's existing sequence.

Examples:
  spectral import instruments --station SVB --file instruments.csv --dry-run
  spectral import instruments --station SVB --file instruments.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if stationAcronym == "" {
				return fmt.Errorf("--station flag is required")
			}
			if file == "" {
				return fmt.Errorf("--file flag is required")
			}

			rows, err := importer.ReadRowsFile(file)
			if err != nil {
				return err
			}

			app, err := newAppContext()
			if err != nil {
				return err
			}

			logger, err := logging.New(app.Config.Logging)
			if err != nil {
				return err
			}
			defer logger.Sync()

			handler := importer.NewImportInstrumentsHandler(
				app.Stations, app.Platforms, app.Instruments, app.Factory, logger)

			// Flags left unset fall back to the configured defaults.
			if !cmd.Flags().Changed("rate") {
				rate = app.Config.Import.RateLimit
			}
			if !cmd.Flags().Changed("burst") {
				burst = app.Config.Import.Burst
			}
			if !cmd.Flags().Changed("stop-on-error") {
				stopOnError = app.Config.Import.StopOnError
			}

			ctx := context.Background()
			response, err := handler.Handle(ctx, &importer.ImportInstrumentsCommand{
				StationAcronym: stationAcronym,
				Rows:           rows,
				DryRun:         dryRun,
				RatePerSecond:  rate,
				Burst:          burst,
				StopOnError:    stopOnError,
			})
			if err != nil {
				return fmt.Errorf("failed to import instruments: %w", err)
			}

			result := response.(*importer.ImportInstrumentsResponse)
			return printImportSummary("instrument", result.Summary)
		},
	}

	cmd.Flags().StringVar(&stationAcronym, "station", "", "Station acronym (required)")
	cmd.Flags().StringVar(&file, "file", "", "CSV or JSON file to import (required)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Validate and preview names without writing")
	cmd.Flags().Float64Var(&rate, "rate", 0, "Max rows written per second (default from config)")
	cmd.Flags().IntVar(&burst, "burst", 0, "Write limiter burst size (default from config)")
	cmd.Flags().BoolVar(&stopOnError, "stop-on-error", false, "Abort on the first failing row")

	return cmd
}

// printImportSummary renders an import run's outcome. Row errors are part
// of a normal run (the summary already carries them), but the command
// still fails so scripts notice partial imports.
func printImportSummary(kind string, summary importer.ImportSummary) error {
	if summary.DryRun {
		fmt.Printf("Dry run: %d of %d rows valid, nothing written\n", len(summary.Imported), summary.Total)
		if len(summary.Imported) > 0 {
			fmt.Println("\nWould create:")
		}
	} else {
		fmt.Printf("✓ Imported %d of %d %s rows\n", len(summary.Imported), summary.Total, kind)
	}

	for _, outcome := range summary.Imported {
		line := fmt.Sprintf("  row %d: %s", outcome.Row, outcome.NormalizedName)
		if outcome.AutoInstruments > 0 {
			line += fmt.Sprintf("  (+%d instruments)", outcome.AutoInstruments)
		}
		fmt.Println(line)
	}

	if len(summary.Errors) > 0 {
		fmt.Printf("\nErrors (%d):\n", len(summary.Errors))
		for _, message := range summary.Errors {
			fmt.Printf("  %s\n", message)
		}
		return fmt.Errorf("%d of %d rows failed", len(summary.Errors), summary.Total)
	}

	return nil
}
