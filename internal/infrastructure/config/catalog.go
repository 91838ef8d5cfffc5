package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sitesspectral/spectral-go/internal/domain/instrument"
	"github.com/sitesspectral/spectral-go/internal/domain/platform"
)

// CatalogConfig selects the hardware/type catalog source
type CatalogConfig struct {
	// Path to a catalog YAML file; empty means the built-in catalog
	Path string `mapstructure:"path"`
}

// Catalog is the parsed type/hardware catalog: the instrument type
// definitions plus the UAV and satellite hardware trees. It is loaded
// once at startup and treated as immutable afterwards; the registries
// built from it expose only read accessors.
type Catalog struct {
	InstrumentTypes   map[string]instrument.TypeDefinition `yaml:"instrument_types"`
	UAVVendors        []platform.UAVVendorDef              `yaml:"uav_vendors"`
	SatelliteAgencies []platform.AgencyDef                 `yaml:"satellite_agencies"`
}

// LoadCatalog reads a catalog YAML file, or returns the built-in catalog
// when the path is empty. A file that parses but declares no instrument
// types is rejected: an empty registry would make every instrument
// creation fail with "unknown type".
func LoadCatalog(path string) (*Catalog, error) {
	if path == "" {
		return DefaultCatalog(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var catalog Catalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file %s: %w", path, err)
	}

	if err := catalog.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog file %s: %w", path, err)
	}
	return &catalog, nil
}

// MustLoadCatalog loads the catalog and panics on error (for use in main.go)
func MustLoadCatalog(path string) *Catalog {
	catalog, err := LoadCatalog(path)
	if err != nil {
		panic(fmt.Sprintf("failed to load catalog: %v", err))
	}
	return catalog
}

// Validate checks the structural soundness of a parsed catalog.
func (c *Catalog) Validate() error {
	if len(c.InstrumentTypes) == 0 {
		return fmt.Errorf("catalog declares no instrument types")
	}
	for key, def := range c.InstrumentTypes {
		if def.DisplayName == "" {
			return fmt.Errorf("instrument type %q has no display_name", key)
		}
		if def.ShortCode == "" {
			return fmt.Errorf("instrument type %q has no short_code", key)
		}
	}
	for _, vendor := range c.UAVVendors {
		if vendor.Name == "" {
			return fmt.Errorf("uav vendor with empty name")
		}
		for _, model := range vendor.Models {
			if model.Name == "" {
				return fmt.Errorf("uav vendor %s has a model with empty name", vendor.Name)
			}
		}
	}
	for _, agency := range c.SatelliteAgencies {
		if agency.Name == "" {
			return fmt.Errorf("satellite agency with empty name")
		}
		for _, satellite := range agency.Satellites {
			if satellite.Name == "" {
				return fmt.Errorf("agency %s has a satellite with empty name", agency.Name)
			}
		}
	}
	return nil
}
