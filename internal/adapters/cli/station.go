package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sitesspectral/spectral-go/internal/application/provisioning"
)

// NewStationCommand creates the station command with subcommands
func NewStationCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "station",
		Short: "Manage research stations",
		Long: `Manage the research stations of the monitoring network.

Stations are the anchor of every platform name: the acronym becomes the
first token of each generated normalized name and cannot change afterwards.

Examples:
  spectral station create --acronym SVB --name "Svartberget Research Station"
  spectral station list`,
	}

	// Add subcommands
	cmd.AddCommand(newStationCreateCommand())
	cmd.AddCommand(newStationListCommand())

	return cmd
}

// newStationCreateCommand creates the station create subcommand
func newStationCreateCommand() *cobra.Command {
	var (
		acronym     string
		displayName string
		description string
		country     string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Register a new research station",
		Long: `Register a new research station.

The acronym is upper-cased and used as the leading token of every platform
name generated at this station, so pick it carefully: it is immutable.

Example:
  spectral station create --acronym SVB --name "Svartberget Research Station" \
    --country Sweden --latitude 64.256 --longitude 19.775`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if acronym == "" {
				return fmt.Errorf("--acronym flag is required")
			}
			if displayName == "" {
				return fmt.Errorf("--name flag is required")
			}

			app, err := newAppContext()
			if err != nil {
				return err
			}

			handler := provisioning.NewCreateStationHandler(app.Stations)

			ctx := context.Background()
			response, err := handler.Handle(ctx, &provisioning.CreateStationCommand{
				Acronym:     acronym,
				DisplayName: displayName,
				Description: description,
				Country:     country,
				Latitude:    floatFlag(cmd, "latitude"),
				Longitude:   floatFlag(cmd, "longitude"),
			})
			if err != nil {
				return fmt.Errorf("failed to create station: %w", err)
			}

			result := response.(*provisioning.CreateStationResponse)
			s := result.Station

			fmt.Println("✓ Station registered successfully")
			fmt.Printf("  Acronym:  %s\n", s.Acronym)
			fmt.Printf("  Name:     %s\n", s.DisplayName)
			if s.Country != "" {
				fmt.Printf("  Country:  %s\n", s.Country)
			}
			if s.Latitude != nil && s.Longitude != nil {
				fmt.Printf("  Position: %g, %g\n", *s.Latitude, *s.Longitude)
			}
			fmt.Println("\nProvision a platform with: spectral platform create --station", s.Acronym)

			return nil
		},
	}

	cmd.Flags().StringVar(&acronym, "acronym", "", "Station acronym, e.g. SVB (required)")
	cmd.Flags().StringVar(&displayName, "name", "", "Station display name (required)")
	cmd.Flags().StringVar(&description, "description", "", "Free-form description")
	cmd.Flags().StringVar(&country, "country", "", "Country the station operates in")
	cmd.Flags().Float64("latitude", 0, "Station latitude in decimal degrees")
	cmd.Flags().Float64("longitude", 0, "Station longitude in decimal degrees")

	return cmd
}

// newStationListCommand creates the station list subcommand
func newStationListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all registered stations",
		Long: `List all research stations in the local database.

Example:
  spectral station list`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext()
			if err != nil {
				return err
			}

			handler := provisioning.NewListStationsHandler(app.Stations)

			ctx := context.Background()
			response, err := handler.Handle(ctx, &provisioning.ListStationsCommand{})
			if err != nil {
				return fmt.Errorf("failed to list stations: %w", err)
			}

			result := response.(*provisioning.ListStationsResponse)

			if len(result.Stations) == 0 {
				fmt.Println("No stations registered.")
				fmt.Println("\nRegister a station with: spectral station create --acronym <acronym> --name <name>")
				return nil
			}

			// Display table
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tACRONYM\tNAME\tCOUNTRY\tCREATED")
			fmt.Fprintln(w, "--\t-------\t----\t-------\t-------")

			for _, s := range result.Stations {
				created := ""
				if !s.CreatedAt.IsZero() {
					created = s.CreatedAt.Format("2006-01-02")
				}
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
					s.ID,
					s.Acronym,
					s.DisplayName,
					s.Country,
					created,
				)
			}

			w.Flush()

			return nil
		},
	}

	return cmd
}
