package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/sitesspectral/spectral-go/internal/application/export"
)

// NewExportCommand creates the export command with subcommands
func NewExportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export station packages",
		Long: `Export a station's full metadata tree as a station package.

A station package holds the station record, every platform registered at
it, each platform's instruments, and each instrument's regions of
interest, plus export metadata (run id, timestamp, counts).

Examples:
  spectral export station --station SVB
  spectral export station --station SVB --format json --output svb.json
  spectral export station --station SVB --output -`,
	}

	// Add subcommands
	cmd.AddCommand(newExportStationCommand())

	return cmd
}

// newExportStationCommand creates the export station subcommand
func newExportStationCommand() *cobra.Command {
	var (
		stationAcronym string
		formatFlag     string
		output         string
	)

	cmd := &cobra.Command{
		Use:   "station",
		Short: "Export one station's platform/instrument/ROI tree",
		Long: `Export one station's full platform/instrument/ROI tree.

The package is written to the configured export directory unless --output
names a file; --output - writes to stdout. The format defaults to the
configured one (yaml unless overridden).

Examples:
  spectral export station --station SVB
  spectral export station --station SVB --format json --output svb.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if stationAcronym == "" {
				return fmt.Errorf("--station flag is required")
			}

			app, err := newAppContext()
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("format") {
				formatFlag = app.Config.Export.Format
			}
			format, err := export.ParseFormat(formatFlag)
			if err != nil {
				return err
			}

			handler := export.NewExportStationHandler(app.Stations, app.Platforms, app.Instruments)

			ctx := context.Background()
			response, err := handler.Handle(ctx, &export.ExportStationCommand{
				StationAcronym: stationAcronym,
			})
			if err != nil {
				return fmt.Errorf("failed to export station: %w", err)
			}

			result := response.(*export.ExportStationResponse)
			pkg := result.Package

			data, err := pkg.Encode(format)
			if err != nil {
				return err
			}

			if output == "-" {
				_, err := os.Stdout.Write(data)
				return err
			}

			path := output
			if path == "" {
				filename := fmt.Sprintf("%s_station_package.%s", pkg.Export.StationAcronym, format)
				path = filepath.Join(app.Config.Export.OutputDir, filename)
			}
			if dir := filepath.Dir(path); dir != "." {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return fmt.Errorf("failed to create export directory: %w", err)
				}
			}
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return fmt.Errorf("failed to write station package: %w", err)
			}

			fmt.Println("✓ Station package exported")
			fmt.Printf("  Station:     %s\n", pkg.Export.StationAcronym)
			fmt.Printf("  Platforms:   %d\n", pkg.Export.PlatformCount)
			fmt.Printf("  Instruments: %d\n", pkg.Export.InstrumentCount)
			fmt.Printf("  ROIs:        %d\n", pkg.Export.ROICount)
			fmt.Printf("  File:        %s\n", path)

			return nil
		},
	}

	cmd.Flags().StringVar(&stationAcronym, "station", "", "Station acronym (required)")
	cmd.Flags().StringVar(&formatFlag, "format", "", "Package format: yaml or json (default from config)")
	cmd.Flags().StringVar(&output, "output", "", "Output file, or - for stdout (default: <export dir>/<acronym>_station_package.<format>)")

	return cmd
}
