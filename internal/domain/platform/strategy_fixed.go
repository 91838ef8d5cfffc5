package platform

import (
	"github.com/sitesspectral/spectral-go/internal/domain/shared"
)

// Fixed mount prefixes: PL pole/tower/mast, BL building, GL ground level.
var fixedMountPrefixes = []string{"PL", "BL", "GL"}

// groundLevelMaxHeightM caps the height of GL mounts; anything taller
// belongs on a PL mount.
const groundLevelMaxHeightM = 1.5

// FixedStrategy implements the behavior of stationary platforms: towers,
// masts, poles, building mounts, and ground-level installations.
//
// Naming grammar: {STATION}_{ECOSYSTEM}_{MOUNT}, e.g. SVB_FOR_PL01.
type FixedStrategy struct{}

// NewFixedStrategy creates a new fixed-platform strategy instance.
func NewFixedStrategy() *FixedStrategy {
	return &FixedStrategy{}
}

// TypeCode returns "fixed".
func (s *FixedStrategy) TypeCode() string {
	return TypeFixed
}

// DisplayName returns the human label for fixed platforms.
func (s *FixedStrategy) DisplayName() string {
	return "Fixed Platform"
}

// GenerateNormalizedName builds {STATION}_{ECOSYSTEM}_{MOUNT}.
func (s *FixedStrategy) GenerateNormalizedName(ctx NamingContext) (string, error) {
	station := upperCode(ctx.StationAcronym)
	ecosystem := upperCode(ctx.EcosystemCode)
	mount := upperCode(ctx.MountTypeCode)
	if err := requireContext(map[string]string{
		"station_acronym": station,
		"ecosystem_code":  ecosystem,
		"mount_type_code": mount,
	}, []string{"station_acronym", "ecosystem_code", "mount_type_code"}); err != nil {
		return "", err
	}
	return joinName(station, ecosystem, mount), nil
}

// RequiredFields lists the fields a caller must supply for a fixed platform.
func (s *FixedStrategy) RequiredFields() []string {
	return []string{"station_acronym", "ecosystem_code", "mount_type_code"}
}

// RequiresEcosystem reports that the ecosystem code is part of the grammar.
func (s *FixedStrategy) RequiresEcosystem() bool {
	return true
}

// FormFields returns the field descriptors for the fixed-platform form.
func (s *FixedStrategy) FormFields() []FormField {
	return []FormField{
		{Name: "display_name", Label: "Display Name", Type: "text", Required: true},
		{Name: "ecosystem_code", Label: "Ecosystem", Type: "select", Required: true, Options: ecosystemOptions()},
		{Name: "mount_type_code", Label: "Mount Type Code", Type: "text", Required: true,
			Help: "PL = pole/tower/mast, BL = building, GL = ground level (e.g. PL01)"},
		{Name: "latitude", Label: "Latitude", Type: "number", Min: floatPtr(-90), Max: floatPtr(90)},
		{Name: "longitude", Label: "Longitude", Type: "number", Min: floatPtr(-180), Max: floatPtr(180)},
		{Name: "platform_height_m", Label: "Platform Height (m)", Type: "number", Min: floatPtr(0), Max: floatPtr(500),
			Help: "Height above ground; GL mounts must stay below 1.5 m"},
		{Name: "mounting_structure", Label: "Mounting Structure", Type: "text"},
		{Name: "deployment_date", Label: "Deployment Date", Type: "date"},
		{Name: "description", Label: "Description", Type: "textarea"},
	}
}

// Validate aggregates every domain-rule violation of a fixed platform.
func (s *FixedStrategy) Validate(data Data) shared.ValidationResult {
	result := shared.NewValidationResult()
	validateEcosystemRequired(data, s.TypeCode(), &result)
	validateMountCode(data, fixedMountPrefixes, &result)
	validateCoordinates(data, &result)
	validateRange(&result, "platform_height_m", data.PlatformHeightM, 0, 500)
	if mountPrefixOf(upperCode(data.MountTypeCode)) == "GL" &&
		data.PlatformHeightM != nil && *data.PlatformHeightM >= groundLevelMaxHeightM {
		result.AddError("ground-level (GL) platforms must have platform_height_m below %g (got %g)",
			groundLevelMaxHeightM, *data.PlatformHeightM)
	}
	return result
}

// AutoCreatesInstruments reports that fixed platforms never auto-provision.
func (s *FixedStrategy) AutoCreatesInstruments() bool {
	return false
}

// AutoCreatedInstruments returns nil; fixed platforms carry no implied
// instrument set.
func (s *FixedStrategy) AutoCreatedInstruments(data Data) []shared.AutoInstrument {
	return nil
}
