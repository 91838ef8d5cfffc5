package platform

import (
	"strings"

	"github.com/sitesspectral/spectral-go/internal/domain/shared"
)

// SatelliteStrategy implements the behavior of virtual satellite platforms:
// remote-sensing products referenced as if the sensor were mounted at the
// station. Agency, satellite, and sensor must each resolve against the
// three-level spacecraft catalog; a resolved sensor implies exactly one
// auto-provisioned instrument.
//
// Naming grammar: {STATION}_{AGENCY}_{SATELLITE}_{SENSOR}, e.g. SVB_ESA_S2A_MSI.
type SatelliteStrategy struct {
	catalog *SatelliteCatalog
	codes   InstrumentCodeResolver
}

// NewSatelliteStrategy creates a new satellite strategy over the given catalog.
func NewSatelliteStrategy(catalog *SatelliteCatalog, codes InstrumentCodeResolver) *SatelliteStrategy {
	return &SatelliteStrategy{
		catalog: catalog,
		codes:   codes,
	}
}

// TypeCode returns "satellite".
func (s *SatelliteStrategy) TypeCode() string {
	return TypeSatellite
}

// DisplayName returns the human label for satellite platforms.
func (s *SatelliteStrategy) DisplayName() string {
	return "Satellite"
}

// GenerateNormalizedName builds {STATION}_{AGENCY}_{SATELLITE}_{SENSOR}.
// There is no mount code: the sensor token closes the name.
func (s *SatelliteStrategy) GenerateNormalizedName(ctx NamingContext) (string, error) {
	station := upperCode(ctx.StationAcronym)
	agency := normalizeToken(ctx.Agency)
	satellite := normalizeToken(ctx.Satellite)
	sensor := normalizeToken(ctx.Sensor)
	if err := requireContext(map[string]string{
		"station_acronym": station,
		"agency":          agency,
		"satellite":       satellite,
		"sensor":          sensor,
	}, []string{"station_acronym", "agency", "satellite", "sensor"}); err != nil {
		return "", err
	}
	return joinName(station, agency, satellite, sensor), nil
}

// RequiredFields lists the fields a caller must supply for a satellite platform.
func (s *SatelliteStrategy) RequiredFields() []string {
	return []string{"station_acronym", "agency", "satellite", "sensor"}
}

// RequiresEcosystem reports that satellite names carry no ecosystem code.
func (s *SatelliteStrategy) RequiresEcosystem() bool {
	return false
}

// FormFields returns the field descriptors for the satellite form.
func (s *SatelliteStrategy) FormFields() []FormField {
	agencyOptions := make([]FormOption, 0)
	for _, agency := range s.catalog.KnownAgencies() {
		agencyDef, _ := s.catalog.ResolveAgency(agency)
		label := agencyDef.DisplayName
		if label == "" {
			label = agency
		}
		agencyOptions = append(agencyOptions, FormOption{Value: agency, Label: label})
	}
	return []FormField{
		{Name: "display_name", Label: "Display Name", Type: "text", Required: true},
		{Name: "agency", Label: "Agency", Type: "select", Required: true, Options: agencyOptions},
		{Name: "satellite", Label: "Satellite", Type: "text", Required: true,
			Help: "Spacecraft identifier, e.g. S2A (Sentinel-2A)"},
		{Name: "sensor", Label: "Sensor", Type: "text", Required: true,
			Help: "Payload sensor, e.g. MSI"},
		{Name: "description", Label: "Description", Type: "textarea"},
	}
}

// Validate aggregates every domain-rule violation of a satellite platform.
// Catalog resolution is checked level by level so the failure names the
// specific unresolved token.
func (s *SatelliteStrategy) Validate(data Data) shared.ValidationResult {
	result := shared.NewValidationResult()
	validateEcosystemForbidden(data, s.TypeCode(), &result)
	validateCoordinates(data, &result)

	agency := strings.TrimSpace(data.Agency)
	satellite := strings.TrimSpace(data.Satellite)
	sensor := strings.TrimSpace(data.Sensor)
	if agency == "" {
		result.AddError("agency is required for satellite platforms")
	}
	if satellite == "" {
		result.AddError("satellite is required for satellite platforms")
	}
	if sensor == "" {
		result.AddError("sensor is required for satellite platforms")
	}
	if agency == "" || satellite == "" || sensor == "" {
		return result
	}

	agencyDef, ok := s.catalog.ResolveAgency(agency)
	if !ok {
		result.AddError("unknown agency %q (known agencies: %s)",
			agency, strings.Join(s.catalog.KnownAgencies(), ", "))
		return result
	}
	satelliteDef, ok := s.catalog.ResolveSatellite(agencyDef.Name, satellite)
	if !ok {
		result.AddError("unknown satellite %q for agency %s (known satellites: %s)",
			satellite, agencyDef.Name, strings.Join(s.catalog.KnownSatellites(agencyDef.Name), ", "))
		return result
	}
	if _, ok := s.catalog.ResolveSensor(agencyDef.Name, satelliteDef.Name, sensor); !ok {
		result.AddError("unknown sensor %q for satellite %s (known sensors: %s)",
			sensor, satelliteDef.Name,
			strings.Join(s.catalog.KnownSensors(agencyDef.Name, satelliteDef.Name), ", "))
	}
	return result
}

// AutoCreatesInstruments reports that satellite platforms provision their
// sensor instrument.
func (s *SatelliteStrategy) AutoCreatesInstruments() bool {
	return true
}

// AutoCreatedInstruments returns the single instrument payload implied by
// the resolved sensor, named {platformName}_{CODE}01, with the agency and
// satellite display names folded into its specifications.
func (s *SatelliteStrategy) AutoCreatedInstruments(data Data) []shared.AutoInstrument {
	platformName, err := s.GenerateNormalizedName(data.NamingContext())
	if err != nil {
		return nil
	}
	agencyDef, ok := s.catalog.ResolveAgency(data.Agency)
	if !ok {
		return nil
	}
	satelliteDef, ok := s.catalog.ResolveSatellite(agencyDef.Name, data.Satellite)
	if !ok {
		return nil
	}
	sensorDef, ok := s.catalog.ResolveSensor(agencyDef.Name, satelliteDef.Name, data.Sensor)
	if !ok {
		return nil
	}
	agencyName := agencyDef.DisplayName
	if agencyName == "" {
		agencyName = agencyDef.Name
	}
	extra := map[string]interface{}{
		"agency":    agencyName,
		"satellite": satelliteDef.DisplayName,
	}
	sourceModel := satelliteDef.DisplayName + " " + sensorDef.Name
	return materializeInstruments(platformName, sourceModel, sensorDef.Instruments, extra, s.codes)
}
