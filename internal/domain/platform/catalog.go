package platform

import "github.com/sitesspectral/spectral-go/internal/domain/shared"

// CatalogInstrument is one instrument payload a known hardware identity
// implies. Specifications are merged with the auto-provisioning markers
// when the payload is materialized.
type CatalogInstrument struct {
	InstrumentType string                 `yaml:"instrument_type" mapstructure:"instrument_type"`
	DisplayName    string                 `yaml:"display_name" mapstructure:"display_name"`
	Specifications map[string]interface{} `yaml:"specifications" mapstructure:"specifications"`
}

// UAVModelDef describes one known airframe: its canonical token, the
// human name, accepted aliases, and the instrument set it carries.
type UAVModelDef struct {
	Name        string              `yaml:"name" mapstructure:"name"`
	DisplayName string              `yaml:"display_name" mapstructure:"display_name"`
	Aliases     []string            `yaml:"aliases" mapstructure:"aliases"`
	Instruments []CatalogInstrument `yaml:"instruments" mapstructure:"instruments"`
}

// UAVVendorDef groups the models of one manufacturer.
type UAVVendorDef struct {
	Name    string        `yaml:"name" mapstructure:"name"`
	Aliases []string      `yaml:"aliases" mapstructure:"aliases"`
	Models  []UAVModelDef `yaml:"models" mapstructure:"models"`
}

// SensorDef describes one known payload sensor of a satellite.
type SensorDef struct {
	Name        string              `yaml:"name" mapstructure:"name"`
	DisplayName string              `yaml:"display_name" mapstructure:"display_name"`
	Aliases     []string            `yaml:"aliases" mapstructure:"aliases"`
	Instruments []CatalogInstrument `yaml:"instruments" mapstructure:"instruments"`
}

// SatelliteDef describes one known spacecraft and its sensors.
type SatelliteDef struct {
	Name        string      `yaml:"name" mapstructure:"name"`
	DisplayName string      `yaml:"display_name" mapstructure:"display_name"`
	Aliases     []string    `yaml:"aliases" mapstructure:"aliases"`
	Sensors     []SensorDef `yaml:"sensors" mapstructure:"sensors"`
}

// AgencyDef groups the satellites operated by one space agency.
type AgencyDef struct {
	Name        string         `yaml:"name" mapstructure:"name"`
	DisplayName string         `yaml:"display_name" mapstructure:"display_name"`
	Aliases     []string       `yaml:"aliases" mapstructure:"aliases"`
	Satellites  []SatelliteDef `yaml:"satellites" mapstructure:"satellites"`
}

// UAVCatalog resolves vendor and model tokens against the known airframe
// set. Lookups tolerate case, spaces, hyphens, underscores, dots and
// slashes: "dji", "DJI" and "D.J.I." all resolve to the same vendor.
type UAVCatalog struct {
	vendors      []UAVVendorDef
	vendorByKey  map[string]int
	modelsByKey  map[string]map[string]int
	vendorsOrder []string
}

// NewUAVCatalog indexes the vendor definitions for token lookup.
func NewUAVCatalog(vendors []UAVVendorDef) *UAVCatalog {
	catalog := &UAVCatalog{
		vendors:     vendors,
		vendorByKey: make(map[string]int),
		modelsByKey: make(map[string]map[string]int),
	}
	for vi, vendor := range vendors {
		catalog.vendorsOrder = append(catalog.vendorsOrder, vendor.Name)
		for _, key := range tokenKeys(vendor.Name, vendor.Aliases) {
			catalog.vendorByKey[key] = vi
		}
		models := make(map[string]int)
		for mi, model := range vendor.Models {
			for _, key := range tokenKeys(model.Name, model.Aliases) {
				models[key] = mi
			}
		}
		catalog.modelsByKey[normalizeToken(vendor.Name)] = models
	}
	return catalog
}

// ResolveVendor maps an input token to the canonical vendor definition.
func (c *UAVCatalog) ResolveVendor(input string) (UAVVendorDef, bool) {
	vi, ok := c.vendorByKey[normalizeToken(input)]
	if !ok {
		return UAVVendorDef{}, false
	}
	return c.vendors[vi], true
}

// ResolveModel maps vendor and model tokens to the canonical model
// definition. The vendor token may itself be an alias.
func (c *UAVCatalog) ResolveModel(vendor, model string) (UAVModelDef, bool) {
	vendorDef, ok := c.ResolveVendor(vendor)
	if !ok {
		return UAVModelDef{}, false
	}
	models := c.modelsByKey[normalizeToken(vendorDef.Name)]
	mi, ok := models[normalizeToken(model)]
	if !ok {
		return UAVModelDef{}, false
	}
	return vendorDef.Models[mi], true
}

// KnownVendors returns canonical vendor names in catalog order.
func (c *UAVCatalog) KnownVendors() []string {
	return append([]string(nil), c.vendorsOrder...)
}

// KnownModels returns canonical model names of a vendor in catalog order.
func (c *UAVCatalog) KnownModels(vendor string) []string {
	vendorDef, ok := c.ResolveVendor(vendor)
	if !ok {
		return nil
	}
	names := make([]string, 0, len(vendorDef.Models))
	for _, model := range vendorDef.Models {
		names = append(names, model.Name)
	}
	return names
}

// SatelliteCatalog resolves agency, satellite and sensor tokens against
// the known spacecraft set, with the same token tolerance as UAVCatalog.
type SatelliteCatalog struct {
	agencies        []AgencyDef
	agencyByKey     map[string]int
	satellitesByKey map[string]map[string]int
	sensorsByKey    map[string]map[string]int
	agenciesOrder   []string
}

// NewSatelliteCatalog indexes the agency definitions for token lookup.
func NewSatelliteCatalog(agencies []AgencyDef) *SatelliteCatalog {
	catalog := &SatelliteCatalog{
		agencies:        agencies,
		agencyByKey:     make(map[string]int),
		satellitesByKey: make(map[string]map[string]int),
		sensorsByKey:    make(map[string]map[string]int),
	}
	for ai, agency := range agencies {
		catalog.agenciesOrder = append(catalog.agenciesOrder, agency.Name)
		for _, key := range tokenKeys(agency.Name, agency.Aliases) {
			catalog.agencyByKey[key] = ai
		}
		agencyKey := normalizeToken(agency.Name)
		satellites := make(map[string]int)
		for si, satellite := range agency.Satellites {
			for _, key := range tokenKeys(satellite.Name, satellite.Aliases) {
				satellites[key] = si
			}
			sensors := make(map[string]int)
			for ni, sensor := range satellite.Sensors {
				for _, key := range tokenKeys(sensor.Name, sensor.Aliases) {
					sensors[key] = ni
				}
			}
			catalog.sensorsByKey[agencyKey+"/"+normalizeToken(satellite.Name)] = sensors
		}
		catalog.satellitesByKey[agencyKey] = satellites
	}
	return catalog
}

// ResolveAgency maps an input token to the canonical agency definition.
func (c *SatelliteCatalog) ResolveAgency(input string) (AgencyDef, bool) {
	ai, ok := c.agencyByKey[normalizeToken(input)]
	if !ok {
		return AgencyDef{}, false
	}
	return c.agencies[ai], true
}

// ResolveSatellite maps agency and satellite tokens to the canonical
// satellite definition.
func (c *SatelliteCatalog) ResolveSatellite(agency, satellite string) (SatelliteDef, bool) {
	agencyDef, ok := c.ResolveAgency(agency)
	if !ok {
		return SatelliteDef{}, false
	}
	satellites := c.satellitesByKey[normalizeToken(agencyDef.Name)]
	si, ok := satellites[normalizeToken(satellite)]
	if !ok {
		return SatelliteDef{}, false
	}
	return agencyDef.Satellites[si], true
}

// ResolveSensor maps agency, satellite and sensor tokens to the canonical
// sensor definition.
func (c *SatelliteCatalog) ResolveSensor(agency, satellite, sensor string) (SensorDef, bool) {
	agencyDef, ok := c.ResolveAgency(agency)
	if !ok {
		return SensorDef{}, false
	}
	satelliteDef, ok := c.ResolveSatellite(agencyDef.Name, satellite)
	if !ok {
		return SensorDef{}, false
	}
	key := normalizeToken(agencyDef.Name) + "/" + normalizeToken(satelliteDef.Name)
	ni, ok := c.sensorsByKey[key][normalizeToken(sensor)]
	if !ok {
		return SensorDef{}, false
	}
	return satelliteDef.Sensors[ni], true
}

// KnownAgencies returns canonical agency names in catalog order.
func (c *SatelliteCatalog) KnownAgencies() []string {
	return append([]string(nil), c.agenciesOrder...)
}

// KnownSatellites returns canonical satellite names of an agency.
func (c *SatelliteCatalog) KnownSatellites(agency string) []string {
	agencyDef, ok := c.ResolveAgency(agency)
	if !ok {
		return nil
	}
	names := make([]string, 0, len(agencyDef.Satellites))
	for _, satellite := range agencyDef.Satellites {
		names = append(names, satellite.Name)
	}
	return names
}

// KnownSensors returns canonical sensor names of a satellite.
func (c *SatelliteCatalog) KnownSensors(agency, satellite string) []string {
	satelliteDef, ok := c.ResolveSatellite(agency, satellite)
	if !ok {
		return nil
	}
	names := make([]string, 0, len(satelliteDef.Sensors))
	for _, sensor := range satelliteDef.Sensors {
		names = append(names, sensor.Name)
	}
	return names
}

// tokenKeys yields the lookup keys of a canonical name and its aliases.
func tokenKeys(name string, aliases []string) []string {
	keys := []string{normalizeToken(name)}
	for _, alias := range aliases {
		keys = append(keys, normalizeToken(alias))
	}
	return keys
}

// materializeInstruments turns catalog payloads into auto-instrument data
// for a concrete platform, stamping the provisioning markers and the
// ordinal instrument suffix ({CODE}{NN}, numbered across the whole set).
// Extra specifications, when given, are merged into every payload.
func materializeInstruments(platformName, sourceModel string, payloads []CatalogInstrument, extra map[string]interface{}, codes InstrumentCodeResolver) []shared.AutoInstrument {
	instruments := make([]shared.AutoInstrument, 0, len(payloads))
	for i, payload := range payloads {
		specs := make(map[string]interface{}, len(payload.Specifications)+len(extra)+2)
		for key, value := range payload.Specifications {
			specs[key] = value
		}
		for key, value := range extra {
			specs[key] = value
		}
		specs["auto_created"] = true
		specs["source_model"] = sourceModel
		suffix := FormatMountCode(codes.ResolveShortCode(payload.InstrumentType), i+1)
		displayName := payload.DisplayName
		if displayName == "" {
			displayName = payload.InstrumentType
		}
		instruments = append(instruments, shared.AutoInstrument{
			InstrumentType: payload.InstrumentType,
			NormalizedName: platformName + "_" + suffix,
			Number:         i + 1,
			DisplayName:    displayName,
			Specifications: specs,
		})
	}
	return instruments
}
