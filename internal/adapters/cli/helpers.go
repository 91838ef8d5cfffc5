package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/sitesspectral/spectral-go/internal/adapters/persistence"
	"github.com/sitesspectral/spectral-go/internal/domain/instrument"
	"github.com/sitesspectral/spectral-go/internal/domain/platform"
	"github.com/sitesspectral/spectral-go/internal/infrastructure/config"
	"github.com/sitesspectral/spectral-go/internal/infrastructure/database"
)

// appContext bundles what every command wires up before dispatching to a
// handler: configuration, the database-backed repositories, and the
// registries built from the hardware catalog.
type appContext struct {
	Config *config.Config
	DB     *gorm.DB

	Stations    *persistence.GormStationRepository
	Platforms   *persistence.GormPlatformRepository
	Instruments *persistence.GormInstrumentRepository

	UAVCatalog       *platform.UAVCatalog
	SatelliteCatalog *platform.SatelliteCatalog
	Registry         *platform.TypeRegistry
	Factory          *instrument.Factory
}

// newAppContext loads configuration, connects to the database, and builds
// the catalog registries. The schema is migrated on every run: the CLI is
// the database's only writer and sqlite migration is idempotent.
func newAppContext() (*appContext, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.NewConnection(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	catalog, err := config.LoadCatalog(cfg.Catalog.Path)
	if err != nil {
		return nil, err
	}

	instrumentRegistry := instrument.NewTypeRegistry(catalog.InstrumentTypes)
	factory := instrument.NewFactory(instrumentRegistry)

	uavCatalog := platform.NewUAVCatalog(catalog.UAVVendors)
	satelliteCatalog := platform.NewSatelliteCatalog(catalog.SatelliteAgencies)
	registry := platform.NewTypeRegistry(uavCatalog, satelliteCatalog, instrumentRegistry)

	return &appContext{
		Config:           cfg,
		DB:               db,
		Stations:         persistence.NewGormStationRepository(db),
		Platforms:        persistence.NewGormPlatformRepository(db),
		Instruments:      persistence.NewGormInstrumentRepository(db),
		UAVCatalog:       uavCatalog,
		SatelliteCatalog: satelliteCatalog,
		Registry:         registry,
		Factory:          factory,
	}, nil
}

// parseSpecFlags turns repeated --spec key=value flags into a specification
// map. Values that parse as numbers or booleans are typed accordingly so
// schema validation sees them the way a JSON import would deliver them.
func parseSpecFlags(specs []string) (map[string]interface{}, error) {
	if len(specs) == 0 {
		return nil, nil
	}
	out := make(map[string]interface{}, len(specs))
	for _, spec := range specs {
		key, value, found := strings.Cut(spec, "=")
		key = strings.TrimSpace(key)
		if !found || key == "" {
			return nil, fmt.Errorf("invalid --spec %q (expected key=value)", spec)
		}
		out[key] = parseSpecValue(strings.TrimSpace(value))
	}
	return out, nil
}

func parseSpecValue(value string) interface{} {
	if number, err := strconv.ParseFloat(value, 64); err == nil {
		return number
	}
	if boolean, err := strconv.ParseBool(value); err == nil {
		return boolean
	}
	return value
}

// floatFlag returns a float flag's value when the user set it, nil
// otherwise, keeping "absent" distinguishable from zero.
func floatFlag(cmd *cobra.Command, name string) *float64 {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	value, err := cmd.Flags().GetFloat64(name)
	if err != nil {
		return nil
	}
	return &value
}
