package cli

import (
	"context"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sitesspectral/spectral-go/internal/application/provisioning"
)

// NewInstrumentCommand creates the instrument command with subcommands
func NewInstrumentCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "instrument",
		Short: "Mount and manage instruments",
		Long: `Mount and manage the instruments carried by platforms.

Instrument names extend their platform's normalized name with the type's
short code and a two-digit sequence number, e.g. SVB_FOR_PL01_PHE01.
Specifications are validated against the instrument type's field schema.

Examples:
  spectral instrument create --platform SVB_FOR_PL01 --type phenocam
  spectral instrument create --platform SVB_FOR_PL01 --type phenocam --spec interval_minutes=30
  spectral instrument list --platform SVB_FOR_PL01
  spectral instrument info --name SVB_FOR_PL01_PHE01
  spectral instrument update --name SVB_FOR_PL01_PHE01 --status Maintenance
  spectral instrument delete --name SVB_FOR_PL01_PHE01`,
	}

	// Add subcommands
	cmd.AddCommand(newInstrumentCreateCommand())
	cmd.AddCommand(newInstrumentListCommand())
	cmd.AddCommand(newInstrumentInfoCommand())
	cmd.AddCommand(newInstrumentUpdateCommand())
	cmd.AddCommand(newInstrumentDeleteCommand())

	return cmd
}

// newInstrumentCreateCommand creates the instrument create subcommand
func newInstrumentCreateCommand() *cobra.Command {
	var (
		platformID   int64
		platformName string

		instrumentType string
		displayName    string
		specs          []string

		description       string
		installationNotes string
		deploymentDate    string
		calibrationDate   string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Mount a new instrument on a platform",
		Long: `Mount a new instrument on an existing platform.

The instrument type must be registered in the catalog and compatible with
the platform's type. Specifications supplied with --spec are validated
against the type's field schema; fields with defaults are pre-filled.

Examples:
  spectral instrument create --platform SVB_FOR_PL01 --type phenocam
  spectral instrument create --platform-id 12 --type "Multispectral Sensor" \
    --spec number_of_bands=10 --spec spectral_bands="RGB, RedEdge, NIR"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if platformID == 0 && platformName == "" {
				return fmt.Errorf("--platform or --platform-id flag is required")
			}
			if instrumentType == "" {
				return fmt.Errorf("--type flag is required")
			}

			specifications, err := parseSpecFlags(specs)
			if err != nil {
				return err
			}

			app, err := newAppContext()
			if err != nil {
				return err
			}

			handler := provisioning.NewCreateInstrumentHandler(app.Platforms, app.Instruments, app.Factory)

			ctx := context.Background()
			response, err := handler.Handle(ctx, &provisioning.CreateInstrumentCommand{
				PlatformID:        platformID,
				PlatformName:      platformName,
				InstrumentType:    instrumentType,
				DisplayName:       displayName,
				Specifications:    specifications,
				Description:       description,
				InstallationNotes: installationNotes,
				DeploymentDate:    deploymentDate,
				CalibrationDate:   calibrationDate,
			})
			if err != nil {
				return fmt.Errorf("failed to create instrument: %w", err)
			}

			result := response.(*provisioning.CreateInstrumentResponse)
			inst := result.Instrument

			fmt.Println("✓ Instrument mounted successfully")
			fmt.Printf("  Normalized Name: %s\n", inst.NormalizedName())
			fmt.Printf("  Display Name:    %s\n", inst.DisplayName())
			fmt.Printf("  Type:            %s\n", inst.InstrumentType())
			fmt.Printf("  Status:          %s\n", inst.Status())

			return nil
		},
	}

	cmd.Flags().Int64Var(&platformID, "platform-id", 0, "Platform ID")
	cmd.Flags().StringVar(&platformName, "platform", "", "Platform normalized name")
	cmd.Flags().StringVar(&instrumentType, "type", "", "Instrument type key or display name (required)")
	cmd.Flags().StringVar(&displayName, "name", "", "Display name (defaults to the type's display name)")
	cmd.Flags().StringArrayVar(&specs, "spec", nil, "Specification as key=value (repeatable)")
	cmd.Flags().StringVar(&description, "description", "", "Free-form description")
	cmd.Flags().StringVar(&installationNotes, "installation-notes", "", "Installation notes")
	cmd.Flags().StringVar(&deploymentDate, "deployment-date", "", "Deployment date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&calibrationDate, "calibration-date", "", "Calibration date (YYYY-MM-DD)")

	return cmd
}

// newInstrumentListCommand creates the instrument list subcommand
func newInstrumentListCommand() *cobra.Command {
	var (
		platformID   int64
		platformName string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the instruments mounted on a platform",
		Long: `List the instruments mounted on one platform.

Examples:
  spectral instrument list --platform SVB_FOR_PL01
  spectral instrument list --platform-id 12`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if platformID == 0 && platformName == "" {
				return fmt.Errorf("--platform or --platform-id flag is required")
			}

			app, err := newAppContext()
			if err != nil {
				return err
			}

			handler := provisioning.NewListInstrumentsHandler(app.Platforms, app.Instruments)

			ctx := context.Background()
			response, err := handler.Handle(ctx, &provisioning.ListInstrumentsCommand{
				PlatformID:   platformID,
				PlatformName: platformName,
			})
			if err != nil {
				return fmt.Errorf("failed to list instruments: %w", err)
			}

			result := response.(*provisioning.ListInstrumentsResponse)

			if len(result.Instruments) == 0 {
				fmt.Printf("No instruments mounted on %s.\n", result.Platform.NormalizedName())
				fmt.Println("\nMount one with: spectral instrument create --platform", result.Platform.NormalizedName(), "--type <type>")
				return nil
			}

			fmt.Printf("Instruments on %s:\n\n", result.Platform.NormalizedName())

			// Display table
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNORMALIZED NAME\tTYPE\tSTATUS\tMEASUREMENT")
			fmt.Fprintln(w, "--\t---------------\t----\t------\t-----------")

			for _, inst := range result.Instruments {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
					inst.ID(),
					inst.NormalizedName(),
					inst.InstrumentType(),
					inst.Status(),
					inst.MeasurementStatus(),
				)
			}

			w.Flush()

			return nil
		},
	}

	cmd.Flags().Int64Var(&platformID, "platform-id", 0, "Platform ID")
	cmd.Flags().StringVar(&platformName, "platform", "", "Platform normalized name")

	return cmd
}

// newInstrumentInfoCommand creates the instrument info subcommand
func newInstrumentInfoCommand() *cobra.Command {
	var (
		instrumentID   int64
		normalizedName string
	)

	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show detailed instrument information",
		Long: `Show detailed information about one instrument, including its
specifications and regions of interest.

Examples:
  spectral instrument info --name SVB_FOR_PL01_PHE01
  spectral instrument info --id 42`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if instrumentID == 0 && normalizedName == "" {
				return fmt.Errorf("--id or --name flag is required")
			}

			app, err := newAppContext()
			if err != nil {
				return err
			}

			handler := provisioning.NewGetInstrumentHandler(app.Instruments)

			ctx := context.Background()
			response, err := handler.Handle(ctx, &provisioning.GetInstrumentCommand{
				InstrumentID:   instrumentID,
				NormalizedName: normalizedName,
			})
			if err != nil {
				return fmt.Errorf("failed to get instrument: %w", err)
			}

			result := response.(*provisioning.GetInstrumentResponse)
			inst := result.Instrument

			fmt.Printf("Instrument Information\n")
			fmt.Printf("======================\n\n")
			fmt.Printf("ID:              %d\n", inst.ID())
			fmt.Printf("Normalized Name: %s\n", inst.NormalizedName())
			fmt.Printf("Display Name:    %s\n", inst.DisplayName())
			fmt.Printf("Type:            %s\n", inst.InstrumentType())
			if inst.InstrumentNumber() != "" {
				fmt.Printf("Number:          %s\n", inst.InstrumentNumber())
			}
			fmt.Printf("Platform ID:     %d\n", inst.PlatformID())
			fmt.Printf("Status:          %s\n", inst.Status())
			fmt.Printf("Measurement:     %s\n", inst.MeasurementStatus())
			if inst.WasAutoCreated() {
				fmt.Printf("Auto-created:    yes\n")
			}
			if inst.DeploymentDate() != "" {
				fmt.Printf("Deployed:        %s\n", inst.DeploymentDate())
			}
			if inst.CalibrationDate() != "" {
				fmt.Printf("Calibrated:      %s\n", inst.CalibrationDate())
			}
			if inst.Description() != "" {
				fmt.Printf("Description:     %s\n", inst.Description())
			}
			if inst.InstallationNotes() != "" {
				fmt.Printf("Installation:    %s\n", inst.InstallationNotes())
			}
			if inst.MaintenanceNotes() != "" {
				fmt.Printf("Maintenance:     %s\n", inst.MaintenanceNotes())
			}

			specs := inst.Specifications()
			if len(specs) > 0 {
				fmt.Printf("\nSpecifications:\n")
				keys := make([]string, 0, len(specs))
				for key := range specs {
					keys = append(keys, key)
				}
				sort.Strings(keys)
				for _, key := range keys {
					fmt.Printf("  %s: %v\n", key, specs[key])
				}
			}

			rois := inst.ROIs()
			if len(rois) > 0 {
				fmt.Printf("\nRegions of interest (%d):\n", len(rois))
				for _, roi := range rois {
					line := "  " + roi.Name
					if roi.Color != "" {
						line += "  " + roi.Color
					}
					fmt.Println(line)
				}
			}

			return nil
		},
	}

	cmd.Flags().Int64Var(&instrumentID, "id", 0, "Instrument ID")
	cmd.Flags().StringVar(&normalizedName, "name", "", "Instrument normalized name")

	return cmd
}

// newInstrumentUpdateCommand creates the instrument update subcommand
func newInstrumentUpdateCommand() *cobra.Command {
	var (
		instrumentID   int64
		normalizedName string

		status            string
		measurementStatus string
		specs             []string
		maintenanceNotes  string
	)

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update an instrument's mutable fields",
		Long: `Update an instrument's status, measurement status, specifications,
or maintenance notes. Specifications are merged key by key and the merged
map is validated against the type's schema before anything changes.

Examples:
  spectral instrument update --name SVB_FOR_PL01_PHE01 --status Maintenance
  spectral instrument update --id 42 --spec interval_minutes=15 --maintenance-notes "lens cleaned"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if instrumentID == 0 && normalizedName == "" {
				return fmt.Errorf("--id or --name flag is required")
			}

			specifications, err := parseSpecFlags(specs)
			if err != nil {
				return err
			}

			app, err := newAppContext()
			if err != nil {
				return err
			}

			handler := provisioning.NewUpdateInstrumentHandler(app.Instruments, app.Factory)

			command := &provisioning.UpdateInstrumentCommand{
				InstrumentID:      instrumentID,
				NormalizedName:    normalizedName,
				Status:            status,
				MeasurementStatus: measurementStatus,
				Specifications:    specifications,
			}
			if cmd.Flags().Changed("maintenance-notes") {
				command.MaintenanceNotes = &maintenanceNotes
			}

			ctx := context.Background()
			response, err := handler.Handle(ctx, command)
			if err != nil {
				return fmt.Errorf("failed to update instrument: %w", err)
			}

			result := response.(*provisioning.UpdateInstrumentResponse)
			inst := result.Instrument

			fmt.Println("✓ Instrument updated successfully")
			fmt.Printf("  Normalized Name: %s\n", inst.NormalizedName())
			fmt.Printf("  Status:          %s\n", inst.Status())
			fmt.Printf("  Measurement:     %s\n", inst.MeasurementStatus())

			return nil
		},
	}

	cmd.Flags().Int64Var(&instrumentID, "id", 0, "Instrument ID")
	cmd.Flags().StringVar(&normalizedName, "name", "", "Instrument normalized name")
	cmd.Flags().StringVar(&status, "status", "", "New status: Active, Inactive, Maintenance, Decommissioned")
	cmd.Flags().StringVar(&measurementStatus, "measurement-status", "", "New measurement status: Operational, Degraded, Failed, Unknown")
	cmd.Flags().StringArrayVar(&specs, "spec", nil, "Specification to merge as key=value (repeatable)")
	cmd.Flags().StringVar(&maintenanceNotes, "maintenance-notes", "", "Replace the maintenance notes")

	return cmd
}

// newInstrumentDeleteCommand creates the instrument delete subcommand
func newInstrumentDeleteCommand() *cobra.Command {
	var (
		instrumentID   int64
		normalizedName string
	)

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete an instrument",
		Long: `Delete an instrument.

Example:
  spectral instrument delete --name SVB_FOR_PL01_PHE01`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if instrumentID == 0 && normalizedName == "" {
				return fmt.Errorf("--id or --name flag is required")
			}

			app, err := newAppContext()
			if err != nil {
				return err
			}

			handler := provisioning.NewDeleteInstrumentHandler(app.Instruments)

			ctx := context.Background()
			response, err := handler.Handle(ctx, &provisioning.DeleteInstrumentCommand{
				InstrumentID:   instrumentID,
				NormalizedName: normalizedName,
			})
			if err != nil {
				return fmt.Errorf("failed to delete instrument: %w", err)
			}

			result := response.(*provisioning.DeleteInstrumentResponse)

			fmt.Println("✓ Instrument deleted")
			fmt.Printf("  Normalized Name: %s\n", result.NormalizedName)

			return nil
		},
	}

	cmd.Flags().Int64Var(&instrumentID, "id", 0, "Instrument ID")
	cmd.Flags().StringVar(&normalizedName, "name", "", "Instrument normalized name")

	return cmd
}
