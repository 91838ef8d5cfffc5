package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sitesspectral/spectral-go/internal/application/provisioning"
	"github.com/sitesspectral/spectral-go/internal/domain/platform"
)

// NewPlatformCommand creates the platform command with subcommands
func NewPlatformCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "platform",
		Short: "Provision and manage platforms",
		Long: `Provision and manage monitoring platforms.

A platform is one monitoring position at a station: a fixed tower mast, a
UAV, a satellite data feed, a mobile carrier, or a surface/underwater
vehicle. Each type validates its own fields and generates its own
normalized name; known UAV models and satellite sensors auto-provision
their instrument payload.

Examples:
  spectral platform create --station SVB --type fixed --ecosystem FOR
  spectral platform create --station SVB --type uav --vendor DJI --model "Mavic 3M"
  spectral platform create --station SVB --type satellite --agency ESA --satellite S2A --sensor MSI
  spectral platform list --station SVB
  spectral platform info --name SVB_FOR_PL01 --instruments
  spectral platform update --name SVB_FOR_PL01 --status Decommissioned
  spectral platform delete --name SVB_FOR_PL01`,
	}

	// Add subcommands
	cmd.AddCommand(newPlatformCreateCommand())
	cmd.AddCommand(newPlatformListCommand())
	cmd.AddCommand(newPlatformInfoCommand())
	cmd.AddCommand(newPlatformUpdateCommand())
	cmd.AddCommand(newPlatformDeleteCommand())

	return cmd
}

// newPlatformCreateCommand creates the platform create subcommand
func newPlatformCreateCommand() *cobra.Command {
	var (
		stationAcronym string
		platformType   string
		displayName    string
		ecosystemCode  string
		mountCode      string
		mountPrefix    string

		vendor      string
		model       string
		agency      string
		satellite   string
		sensor      string
		carrierType string

		hullType       string
		propulsionType string
		navigationType string

		status            string
		mountingStructure string
		deploymentDate    string
		description       string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Provision a new platform",
		Long: `Provision a new platform at a station.

The normalized name is generated from the type's naming grammar; the next
free mount code is reserved automatically unless --mount-code pins one.
Fixed platforms require --ecosystem; UAV and satellite platforms reject it.
UAV platforms resolve --vendor/--model against the hardware catalog and
satellite platforms resolve --agency/--satellite/--sensor; a known identity
auto-creates its instrument payload.

Examples:
  spectral platform create --station SVB --type fixed --ecosystem FOR
  spectral platform create --station SVB --type fixed --ecosystem MIR --mount-prefix BL
  spectral platform create --station SVB --type uav --vendor DJI --model "Mavic 3M"
  spectral platform create --station SVB --type mobile --ecosystem FOR --carrier backpack`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if stationAcronym == "" {
				return fmt.Errorf("--station flag is required")
			}
			if platformType == "" {
				return fmt.Errorf("--type flag is required")
			}

			app, err := newAppContext()
			if err != nil {
				return err
			}

			handler := provisioning.NewCreatePlatformHandler(
				app.Stations, app.Platforms, app.Instruments, app.Registry, app.Factory)

			data := platform.Data{
				DisplayName:   displayName,
				EcosystemCode: ecosystemCode,
				MountTypeCode: mountCode,

				Latitude:        floatFlag(cmd, "latitude"),
				Longitude:       floatFlag(cmd, "longitude"),
				PlatformHeightM: floatFlag(cmd, "height"),

				Vendor: vendor,
				Model:  model,

				Agency:    agency,
				Satellite: satellite,
				Sensor:    sensor,

				CarrierType:      carrierType,
				MaxSpeedKMH:      floatFlag(cmd, "max-speed-kmh"),
				OperatingRangeKM: floatFlag(cmd, "operating-range-km"),
				BatteryRuntimeH:  floatFlag(cmd, "battery-runtime-h"),

				HullType:        hullType,
				PropulsionType:  propulsionType,
				NavigationType:  navigationType,
				DraftM:          floatFlag(cmd, "draft-m"),
				MaxDepthM:       floatFlag(cmd, "max-depth-m"),
				OperatingDepthM: floatFlag(cmd, "operating-depth-m"),
				EnduranceH:      floatFlag(cmd, "endurance-h"),
				MaxSpeedKN:      floatFlag(cmd, "max-speed-kn"),

				MountingStructure: mountingStructure,
				DeploymentDate:    deploymentDate,
				Description:       description,
				Status:            status,
			}

			ctx := context.Background()
			response, err := handler.Handle(ctx, &provisioning.CreatePlatformCommand{
				StationAcronym: stationAcronym,
				PlatformType:   platformType,
				MountPrefix:    mountPrefix,
				Data:           data,
			})
			if err != nil {
				return fmt.Errorf("failed to create platform: %w", err)
			}

			result := response.(*provisioning.CreatePlatformResponse)
			p := result.Platform

			fmt.Println("✓ Platform provisioned successfully")
			fmt.Printf("  Normalized Name: %s\n", p.NormalizedName())
			fmt.Printf("  Display Name:    %s\n", p.DisplayName())
			fmt.Printf("  Type:            %s\n", p.PlatformType())
			fmt.Printf("  Station:         %s\n", p.StationAcronym())
			if p.MountTypeCode() != "" {
				fmt.Printf("  Mount Code:      %s\n", p.MountTypeCode())
			}
			if p.EcosystemCode() != "" {
				fmt.Printf("  Ecosystem:       %s (%s)\n",
					p.EcosystemCode(), platform.EcosystemName(p.EcosystemCode()))
			}

			if len(result.Instruments) > 0 {
				fmt.Printf("\nAuto-created instruments (%d):\n", len(result.Instruments))
				for _, inst := range result.Instruments {
					fmt.Printf("  %s  %s\n", inst.NormalizedName(), inst.DisplayName())
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&stationAcronym, "station", "", "Station acronym (required)")
	cmd.Flags().StringVar(&platformType, "type", "", "Platform type: fixed, uav, satellite, mobile, usv, uuv (required)")
	cmd.Flags().StringVar(&displayName, "name", "", "Display name (defaults to the normalized name)")
	cmd.Flags().StringVar(&ecosystemCode, "ecosystem", "", "Ecosystem code (required for fixed/mobile/usv/uuv)")
	cmd.Flags().StringVar(&mountCode, "mount-code", "", "Pin a mount code, e.g. PL03 (default: next free)")
	cmd.Flags().StringVar(&mountPrefix, "mount-prefix", "", "Mount code family to reserve from (fixed: PL, BL, or GL)")
	cmd.Flags().Float64("latitude", 0, "Platform latitude in decimal degrees")
	cmd.Flags().Float64("longitude", 0, "Platform longitude in decimal degrees")
	cmd.Flags().Float64("height", 0, "Platform height above ground in meters")
	cmd.Flags().StringVar(&vendor, "vendor", "", "UAV vendor, e.g. DJI")
	cmd.Flags().StringVar(&model, "model", "", "UAV model, e.g. \"Mavic 3M\"")
	cmd.Flags().StringVar(&agency, "agency", "", "Satellite agency, e.g. ESA")
	cmd.Flags().StringVar(&satellite, "satellite", "", "Satellite, e.g. S2A")
	cmd.Flags().StringVar(&sensor, "sensor", "", "Satellite sensor, e.g. MSI")
	cmd.Flags().StringVar(&carrierType, "carrier", "", "Mobile carrier type: vehicle, boat, rover, backpack, bicycle, other")
	cmd.Flags().Float64("max-speed-kmh", 0, "Mobile carrier top speed (km/h)")
	cmd.Flags().Float64("operating-range-km", 0, "Mobile carrier operating range (km)")
	cmd.Flags().Float64("battery-runtime-h", 0, "Mobile carrier battery runtime (hours)")
	cmd.Flags().StringVar(&hullType, "hull", "", "USV/UUV hull type")
	cmd.Flags().StringVar(&propulsionType, "propulsion", "", "USV/UUV propulsion type")
	cmd.Flags().StringVar(&navigationType, "navigation", "", "UUV navigation type")
	cmd.Flags().Float64("draft-m", 0, "USV draft (m)")
	cmd.Flags().Float64("max-depth-m", 0, "UUV maximum depth (m)")
	cmd.Flags().Float64("operating-depth-m", 0, "UUV operating depth (m)")
	cmd.Flags().Float64("endurance-h", 0, "USV/UUV endurance (hours)")
	cmd.Flags().Float64("max-speed-kn", 0, "USV/UUV top speed (knots)")
	cmd.Flags().StringVar(&status, "status", "", "Initial status (default: Active)")
	cmd.Flags().StringVar(&mountingStructure, "mounting-structure", "", "Mounting structure description")
	cmd.Flags().StringVar(&deploymentDate, "deployment-date", "", "Deployment date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&description, "description", "", "Free-form description")

	return cmd
}

// newPlatformListCommand creates the platform list subcommand
func newPlatformListCommand() *cobra.Command {
	var stationAcronym string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List platforms",
		Long: `List platforms, optionally restricted to one station.

Examples:
  spectral platform list
  spectral platform list --station SVB`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext()
			if err != nil {
				return err
			}

			handler := provisioning.NewListPlatformsHandler(app.Platforms, app.Stations)

			ctx := context.Background()
			response, err := handler.Handle(ctx, &provisioning.ListPlatformsCommand{
				StationAcronym: stationAcronym,
			})
			if err != nil {
				return fmt.Errorf("failed to list platforms: %w", err)
			}

			result := response.(*provisioning.ListPlatformsResponse)

			if len(result.Platforms) == 0 {
				fmt.Println("No platforms found.")
				fmt.Println("\nProvision one with: spectral platform create --station <acronym> --type <type>")
				return nil
			}

			// Display table
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNORMALIZED NAME\tTYPE\tSTATION\tMOUNT\tECOSYSTEM\tSTATUS")
			fmt.Fprintln(w, "--\t---------------\t----\t-------\t-----\t---------\t------")

			for _, p := range result.Platforms {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
					p.ID(),
					p.NormalizedName(),
					p.PlatformType(),
					p.StationAcronym(),
					p.MountTypeCode(),
					p.EcosystemCode(),
					p.Status(),
				)
			}

			w.Flush()

			return nil
		},
	}

	cmd.Flags().StringVar(&stationAcronym, "station", "", "Restrict to one station")

	return cmd
}

// newPlatformInfoCommand creates the platform info subcommand
func newPlatformInfoCommand() *cobra.Command {
	var (
		platformID         int64
		normalizedName     string
		includeInstruments bool
	)

	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show detailed platform information",
		Long: `Show detailed information about one platform.

Specify the platform using either --id or --name.

Examples:
  spectral platform info --name SVB_FOR_PL01
  spectral platform info --id 12 --instruments`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if platformID == 0 && normalizedName == "" {
				return fmt.Errorf("--id or --name flag is required")
			}

			app, err := newAppContext()
			if err != nil {
				return err
			}

			handler := provisioning.NewGetPlatformHandler(app.Platforms, app.Instruments)

			ctx := context.Background()
			response, err := handler.Handle(ctx, &provisioning.GetPlatformCommand{
				PlatformID:         platformID,
				NormalizedName:     normalizedName,
				IncludeInstruments: includeInstruments,
			})
			if err != nil {
				return fmt.Errorf("failed to get platform: %w", err)
			}

			result := response.(*provisioning.GetPlatformResponse)
			p := result.Platform

			fmt.Printf("Platform Information\n")
			fmt.Printf("====================\n\n")
			fmt.Printf("ID:              %d\n", p.ID())
			fmt.Printf("Normalized Name: %s\n", p.NormalizedName())
			fmt.Printf("Display Name:    %s\n", p.DisplayName())
			fmt.Printf("Type:            %s\n", p.PlatformType())
			fmt.Printf("Station:         %s\n", p.StationAcronym())
			if p.MountTypeCode() != "" {
				fmt.Printf("Mount Code:      %s\n", p.MountTypeCode())
			}
			if p.EcosystemCode() != "" {
				fmt.Printf("Ecosystem:       %s (%s)\n",
					p.EcosystemCode(), platform.EcosystemName(p.EcosystemCode()))
			}
			fmt.Printf("Status:          %s\n", p.Status())
			if lat, lon, ok := p.Coordinates(); ok {
				fmt.Printf("Position:        %g, %g\n", lat, lon)
			}
			if p.PlatformHeightM() != nil {
				fmt.Printf("Height:          %g m\n", *p.PlatformHeightM())
			}
			if p.MountingStructure() != "" {
				fmt.Printf("Mounting:        %s\n", p.MountingStructure())
			}
			if p.DeploymentDate() != "" {
				fmt.Printf("Deployed:        %s\n", p.DeploymentDate())
			}
			if p.Description() != "" {
				fmt.Printf("Description:     %s\n", p.Description())
			}

			if includeInstruments {
				instruments := p.Instruments()
				if len(instruments) == 0 {
					fmt.Println("\nNo instruments mounted.")
					return nil
				}
				fmt.Printf("\nInstruments (%d):\n", len(instruments))
				w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
				fmt.Fprintln(w, "  NORMALIZED NAME\tTYPE\tSTATUS\tROIS")
				for _, inst := range instruments {
					fmt.Fprintf(w, "  %s\t%s\t%s\t%d\n",
						inst.NormalizedName(),
						inst.InstrumentType(),
						inst.Status(),
						len(inst.ROIs()),
					)
				}
				w.Flush()
			}

			return nil
		},
	}

	cmd.Flags().Int64Var(&platformID, "id", 0, "Platform ID")
	cmd.Flags().StringVar(&normalizedName, "name", "", "Platform normalized name")
	cmd.Flags().BoolVar(&includeInstruments, "instruments", false, "Include mounted instruments")

	return cmd
}

// newPlatformUpdateCommand creates the platform update subcommand
func newPlatformUpdateCommand() *cobra.Command {
	var (
		platformID     int64
		normalizedName string

		displayName       string
		status            string
		mountingStructure string
		deploymentDate    string
		description       string
	)

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update a platform's mutable fields",
		Long: `Update a platform's mutable fields.

The normalized name never changes after creation: fields that feed the
naming grammar (station, type, vendor/model, mount code, ...) cannot be
updated. Flags left unset keep their current values.

Examples:
  spectral platform update --name SVB_FOR_PL01 --status Inactive
  spectral platform update --id 12 --height 4.5 --description "moved to north mast"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if platformID == 0 && normalizedName == "" {
				return fmt.Errorf("--id or --name flag is required")
			}

			app, err := newAppContext()
			if err != nil {
				return err
			}

			handler := provisioning.NewUpdatePlatformHandler(app.Platforms, app.Registry)

			ctx := context.Background()
			response, err := handler.Handle(ctx, &provisioning.UpdatePlatformCommand{
				PlatformID:     platformID,
				NormalizedName: normalizedName,
				Data: platform.Data{
					DisplayName:       displayName,
					Latitude:          floatFlag(cmd, "latitude"),
					Longitude:         floatFlag(cmd, "longitude"),
					PlatformHeightM:   floatFlag(cmd, "height"),
					Status:            status,
					MountingStructure: mountingStructure,
					DeploymentDate:    deploymentDate,
					Description:       description,
				},
			})
			if err != nil {
				return fmt.Errorf("failed to update platform: %w", err)
			}

			result := response.(*provisioning.UpdatePlatformResponse)
			p := result.Platform

			fmt.Println("✓ Platform updated successfully")
			fmt.Printf("  Normalized Name: %s\n", p.NormalizedName())
			fmt.Printf("  Status:          %s\n", p.Status())

			return nil
		},
	}

	cmd.Flags().Int64Var(&platformID, "id", 0, "Platform ID")
	cmd.Flags().StringVar(&normalizedName, "name", "", "Platform normalized name")
	cmd.Flags().StringVar(&displayName, "display-name", "", "New display name")
	cmd.Flags().Float64("latitude", 0, "New latitude in decimal degrees")
	cmd.Flags().Float64("longitude", 0, "New longitude in decimal degrees")
	cmd.Flags().Float64("height", 0, "New platform height in meters")
	cmd.Flags().StringVar(&status, "status", "", "New status")
	cmd.Flags().StringVar(&mountingStructure, "mounting-structure", "", "New mounting structure description")
	cmd.Flags().StringVar(&deploymentDate, "deployment-date", "", "New deployment date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&description, "description", "", "New description")

	return cmd
}

// newPlatformDeleteCommand creates the platform delete subcommand
func newPlatformDeleteCommand() *cobra.Command {
	var (
		platformID     int64
		normalizedName string
	)

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a platform",
		Long: `Delete a platform.

Deletion is refused while instruments are still mounted; delete or move
them first.

Example:
  spectral platform delete --name SVB_FOR_PL01`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if platformID == 0 && normalizedName == "" {
				return fmt.Errorf("--id or --name flag is required")
			}

			app, err := newAppContext()
			if err != nil {
				return err
			}

			handler := provisioning.NewDeletePlatformHandler(app.Platforms, app.Instruments)

			ctx := context.Background()
			response, err := handler.Handle(ctx, &provisioning.DeletePlatformCommand{
				PlatformID:     platformID,
				NormalizedName: normalizedName,
			})
			if err != nil {
				return fmt.Errorf("failed to delete platform: %w", err)
			}

			result := response.(*provisioning.DeletePlatformResponse)

			fmt.Println("✓ Platform deleted")
			fmt.Printf("  Normalized Name: %s\n", result.NormalizedName)

			return nil
		},
	}

	cmd.Flags().Int64Var(&platformID, "id", 0, "Platform ID")
	cmd.Flags().StringVar(&normalizedName, "name", "", "Platform normalized name")

	return cmd
}
