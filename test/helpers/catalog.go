package helpers

import (
	"github.com/sitesspectral/spectral-go/internal/domain/instrument"
	"github.com/sitesspectral/spectral-go/internal/domain/platform"
	"github.com/sitesspectral/spectral-go/internal/infrastructure/config"
)

// NewCatalogRegistries builds the platform type registry and instrument
// factory from the embedded default catalog, wired the same way the CLI
// container wires them.
func NewCatalogRegistries() (*platform.TypeRegistry, *instrument.Factory) {
	catalog := config.DefaultCatalog()

	instrumentRegistry := instrument.NewTypeRegistry(catalog.InstrumentTypes)
	factory := instrument.NewFactory(instrumentRegistry)

	uavCatalog := platform.NewUAVCatalog(catalog.UAVVendors)
	satelliteCatalog := platform.NewSatelliteCatalog(catalog.SatelliteAgencies)
	registry := platform.NewTypeRegistry(uavCatalog, satelliteCatalog, instrumentRegistry)

	return registry, factory
}
