package cli

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sitesspectral/spectral-go/internal/domain/platform"
)

// NewCatalogCommand creates the catalog command with subcommands
func NewCatalogCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect the type and hardware catalogs",
		Long: `Inspect the catalogs the provisioning rules are built from: platform
types and their form fields, instrument types and their schemas, the known
UAV airframes, and the known satellite sensors.

The built-in catalog is used unless the config points at a catalog file.

Examples:
  spectral catalog platform-types
  spectral catalog instrument-types
  spectral catalog uav --vendor DJI
  spectral catalog satellites --agency ESA
  spectral catalog fields --type fixed
  spectral catalog ecosystems`,
	}

	// Add subcommands
	cmd.AddCommand(newCatalogPlatformTypesCommand())
	cmd.AddCommand(newCatalogInstrumentTypesCommand())
	cmd.AddCommand(newCatalogUAVCommand())
	cmd.AddCommand(newCatalogSatellitesCommand())
	cmd.AddCommand(newCatalogFieldsCommand())
	cmd.AddCommand(newCatalogEcosystemsCommand())

	return cmd
}

// newCatalogPlatformTypesCommand creates the catalog platform-types subcommand
func newCatalogPlatformTypesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "platform-types",
		Short: "List the registered platform types",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext()
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "CODE\tNAME\tECOSYSTEM\tAUTO-PROVISIONS")
			fmt.Fprintln(w, "----\t----\t---------\t---------------")

			for _, code := range app.Registry.TypeCodes() {
				strategy, err := app.Registry.Strategy(code)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
					strategy.TypeCode(),
					strategy.DisplayName(),
					yesNo(strategy.RequiresEcosystem()),
					yesNo(strategy.AutoCreatesInstruments()),
				)
			}

			w.Flush()

			return nil
		},
	}

	return cmd
}

// newCatalogInstrumentTypesCommand creates the catalog instrument-types subcommand
func newCatalogInstrumentTypesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "instrument-types",
		Short: "List the registered instrument types",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext()
			if err != nil {
				return err
			}

			registry := app.Factory.Registry()

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "TYPE\tNAME\tCODE\tCATEGORY\tPLATFORMS")
			fmt.Fprintln(w, "----\t----\t----\t--------\t---------")

			for _, key := range registry.Types() {
				def, found := registry.Get(key)
				if !found {
					continue
				}
				platforms := "any"
				if len(def.CompatiblePlatforms) > 0 {
					platforms = strings.Join(def.CompatiblePlatforms, ", ")
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					key,
					def.DisplayName,
					def.ShortCode,
					def.Category,
					platforms,
				)
			}

			w.Flush()

			return nil
		},
	}

	return cmd
}

// newCatalogUAVCommand creates the catalog uav subcommand
func newCatalogUAVCommand() *cobra.Command {
	var vendor string

	cmd := &cobra.Command{
		Use:   "uav",
		Short: "List the known UAV vendors and models",
		Long: `List the known UAV airframes.

Without --vendor, shows every vendor and its models. With --vendor, shows
that vendor's models together with the instrument payload each one
auto-creates.

Examples:
  spectral catalog uav
  spectral catalog uav --vendor DJI`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext()
			if err != nil {
				return err
			}

			if vendor != "" {
				def, found := app.UAVCatalog.ResolveVendor(vendor)
				if !found {
					return fmt.Errorf("unknown UAV vendor %q (known: %s)",
						vendor, strings.Join(app.UAVCatalog.KnownVendors(), ", "))
				}
				fmt.Printf("%s models:\n\n", def.Name)
				for _, model := range def.Models {
					fmt.Printf("  %s (%s)\n", model.Name, model.DisplayName)
					for _, payload := range model.Instruments {
						fmt.Printf("    - %s (%s)\n", payload.DisplayName, payload.InstrumentType)
					}
				}
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "VENDOR\tMODEL\tNAME\tPAYLOAD")
			fmt.Fprintln(w, "------\t-----\t----\t-------")

			for _, name := range app.UAVCatalog.KnownVendors() {
				def, found := app.UAVCatalog.ResolveVendor(name)
				if !found {
					continue
				}
				for _, model := range def.Models {
					fmt.Fprintf(w, "%s\t%s\t%s\t%d instruments\n",
						def.Name,
						model.Name,
						model.DisplayName,
						len(model.Instruments),
					)
				}
			}

			w.Flush()

			return nil
		},
	}

	cmd.Flags().StringVar(&vendor, "vendor", "", "Show one vendor's models and payloads")

	return cmd
}

// newCatalogSatellitesCommand creates the catalog satellites subcommand
func newCatalogSatellitesCommand() *cobra.Command {
	var agency string

	cmd := &cobra.Command{
		Use:   "satellites",
		Short: "List the known satellite agencies, satellites, and sensors",
		Long: `List the known satellite data sources.

Without --agency, shows every agency with its satellites and sensors. With
--agency, shows that agency's sensors together with the instrument payload
each one auto-creates.

Examples:
  spectral catalog satellites
  spectral catalog satellites --agency ESA`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext()
			if err != nil {
				return err
			}

			if agency != "" {
				def, found := app.SatelliteCatalog.ResolveAgency(agency)
				if !found {
					return fmt.Errorf("unknown agency %q (known: %s)",
						agency, strings.Join(app.SatelliteCatalog.KnownAgencies(), ", "))
				}
				fmt.Printf("%s satellites:\n\n", def.Name)
				for _, satellite := range def.Satellites {
					fmt.Printf("  %s (%s)\n", satellite.Name, satellite.DisplayName)
					for _, sensor := range satellite.Sensors {
						fmt.Printf("    %s (%s)\n", sensor.Name, sensor.DisplayName)
						for _, payload := range sensor.Instruments {
							fmt.Printf("      - %s (%s)\n", payload.DisplayName, payload.InstrumentType)
						}
					}
				}
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "AGENCY\tSATELLITE\tSENSOR\tNAME")
			fmt.Fprintln(w, "------\t---------\t------\t----")

			for _, name := range app.SatelliteCatalog.KnownAgencies() {
				def, found := app.SatelliteCatalog.ResolveAgency(name)
				if !found {
					continue
				}
				for _, satellite := range def.Satellites {
					for _, sensor := range satellite.Sensors {
						fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
							def.Name,
							satellite.Name,
							sensor.Name,
							sensor.DisplayName,
						)
					}
				}
			}

			w.Flush()

			return nil
		},
	}

	cmd.Flags().StringVar(&agency, "agency", "", "Show one agency's satellites and payloads")

	return cmd
}

// newCatalogFieldsCommand creates the catalog fields subcommand
func newCatalogFieldsCommand() *cobra.Command {
	var platformType string

	cmd := &cobra.Command{
		Use:   "fields",
		Short: "Show the form fields of a platform type",
		Long: `Show the declarative form fields a platform type expects, as rendered
by dashboards and import templates.

Example:
  spectral catalog fields --type fixed`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if platformType == "" {
				return fmt.Errorf("--type flag is required")
			}

			app, err := newAppContext()
			if err != nil {
				return err
			}

			fields, err := app.Registry.FormFields(platformType)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "FIELD\tLABEL\tTYPE\tREQUIRED\tOPTIONS")
			fmt.Fprintln(w, "-----\t-----\t----\t--------\t-------")

			for _, field := range fields {
				options := ""
				if len(field.Options) > 0 {
					values := make([]string, 0, len(field.Options))
					for _, option := range field.Options {
						values = append(values, option.Value)
					}
					options = strings.Join(values, ", ")
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					field.Name,
					field.Label,
					field.Type,
					yesNo(field.Required),
					options,
				)
			}

			w.Flush()

			return nil
		},
	}

	cmd.Flags().StringVar(&platformType, "type", "", "Platform type code (required)")

	return cmd
}

// newCatalogEcosystemsCommand creates the catalog ecosystems subcommand
func newCatalogEcosystemsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ecosystems",
		Short: "List the ecosystem codes",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "CODE\tNAME")
			fmt.Fprintln(w, "----\t----")

			for _, code := range platform.EcosystemCodes() {
				fmt.Fprintf(w, "%s\t%s\n", code, platform.EcosystemName(code))
			}

			w.Flush()

			return nil
		},
	}

	return cmd
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
