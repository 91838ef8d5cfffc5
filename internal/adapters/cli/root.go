package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath string
)

// NewRootCommand creates the root command for the CLI
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "spectral",
		Short: "Spectral CLI - Manage monitoring station metadata",
		Long: `Spectral CLI manages the metadata of an environmental monitoring network:
research stations, the platforms mounted at them, and the instruments those
platforms carry. Platform names follow per-type naming grammars, and known
UAV and satellite hardware auto-provisions its instrument payload.

Examples:
  spectral station create --acronym SVB --name "Svartberget Research Station"
  spectral platform create --station SVB --type fixed --ecosystem FOR
  spectral platform create --station SVB --type uav --vendor DJI --model "Mavic 3M"
  spectral instrument create --platform SVB_FOR_PL01 --type phenocam
  spectral import platforms --station SVB --file platforms.csv --dry-run
  spectral export station --station SVB --format yaml
  spectral catalog uav`,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to config file (default: search ., ./configs, /etc/spectral)")

	// Add command groups
	rootCmd.AddCommand(NewStationCommand())
	rootCmd.AddCommand(NewPlatformCommand())
	rootCmd.AddCommand(NewInstrumentCommand())
	rootCmd.AddCommand(NewCatalogCommand())
	rootCmd.AddCommand(NewImportCommand())
	rootCmd.AddCommand(NewExportCommand())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
