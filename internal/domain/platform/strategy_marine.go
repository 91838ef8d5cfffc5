package platform

import (
	"github.com/sitesspectral/spectral-go/internal/domain/shared"
)

// Enumerations shared by the marine strategies.
var (
	hullTypes       = []string{"monohull", "catamaran", "trimaran", "rigid_inflatable", "other"}
	propulsionTypes = []string{"electric", "diesel", "hybrid", "solar", "wind", "other"}
	navigationTypes = []string{"autonomous", "remote_controlled", "tethered", "manual"}
)

// USVStrategy implements the behavior of unmanned surface vehicles:
// instrument-carrying boats surveying lakes, wetlands, and coastal water.
//
// Naming grammar: {STATION}_{ECOSYSTEM}_{MOUNT}, e.g. ANS_LAK_USV01.
type USVStrategy struct{}

// NewUSVStrategy creates a new surface-vehicle strategy instance.
func NewUSVStrategy() *USVStrategy {
	return &USVStrategy{}
}

// TypeCode returns "usv".
func (s *USVStrategy) TypeCode() string {
	return TypeUSV
}

// DisplayName returns the human label for surface vehicles.
func (s *USVStrategy) DisplayName() string {
	return "Unmanned Surface Vehicle (USV)"
}

// GenerateNormalizedName builds {STATION}_{ECOSYSTEM}_{MOUNT}.
func (s *USVStrategy) GenerateNormalizedName(ctx NamingContext) (string, error) {
	return marineNormalizedName(ctx)
}

// RequiredFields lists the fields a caller must supply for a surface vehicle.
func (s *USVStrategy) RequiredFields() []string {
	return []string{"station_acronym", "ecosystem_code", "mount_type_code"}
}

// RequiresEcosystem reports that the ecosystem code is part of the grammar.
func (s *USVStrategy) RequiresEcosystem() bool {
	return true
}

// FormFields returns the field descriptors for the surface-vehicle form.
// The ecosystem select offers the aquatic subset; validation accepts any
// valid ecosystem code so inland edge cases stay representable.
func (s *USVStrategy) FormFields() []FormField {
	return []FormField{
		{Name: "display_name", Label: "Display Name", Type: "text", Required: true},
		{Name: "ecosystem_code", Label: "Ecosystem", Type: "select", Required: true, Options: aquaticEcosystemOptions()},
		{Name: "mount_type_code", Label: "Mount Type Code", Type: "text", Required: true,
			Help: "USV-prefixed sequence, e.g. USV01"},
		{Name: "hull_type", Label: "Hull Type", Type: "select", Options: wordOptions(hullTypes)},
		{Name: "propulsion_type", Label: "Propulsion", Type: "select", Options: wordOptions(propulsionTypes)},
		{Name: "navigation_type", Label: "Navigation", Type: "select", Options: wordOptions(navigationTypes)},
		{Name: "draft_m", Label: "Draft (m)", Type: "number", Min: floatPtr(0), Max: floatPtr(10)},
		{Name: "max_speed_kn", Label: "Max Speed (kn)", Type: "number", Min: floatPtr(0), Max: floatPtr(100)},
		{Name: "endurance_h", Label: "Endurance (h)", Type: "number", Min: floatPtr(0), Max: floatPtr(720)},
		{Name: "deployment_date", Label: "Deployment Date", Type: "date"},
		{Name: "description", Label: "Description", Type: "textarea"},
	}
}

// Validate aggregates every domain-rule violation of a surface vehicle.
func (s *USVStrategy) Validate(data Data) shared.ValidationResult {
	result := shared.NewValidationResult()
	validateEcosystemRequired(data, s.TypeCode(), &result)
	validateMountCode(data, []string{"USV"}, &result)
	validateCoordinates(data, &result)
	validateOption(&result, "hull_type", data.HullType, hullTypes)
	validateOption(&result, "propulsion_type", data.PropulsionType, propulsionTypes)
	validateOption(&result, "navigation_type", data.NavigationType, navigationTypes)
	validateRange(&result, "draft_m", data.DraftM, 0, 10)
	validateRange(&result, "max_speed_kn", data.MaxSpeedKN, 0, 100)
	validateRange(&result, "endurance_h", data.EnduranceH, 0, 720)
	return result
}

// AutoCreatesInstruments reports that surface vehicles never auto-provision.
func (s *USVStrategy) AutoCreatesInstruments() bool {
	return false
}

// AutoCreatedInstruments returns nil.
func (s *USVStrategy) AutoCreatedInstruments(data Data) []shared.AutoInstrument {
	return nil
}

// UUVStrategy implements the behavior of unmanned underwater vehicles.
//
// Naming grammar: {STATION}_{ECOSYSTEM}_{MOUNT}, e.g. ANS_LAK_UUV01.
type UUVStrategy struct{}

// NewUUVStrategy creates a new underwater-vehicle strategy instance.
func NewUUVStrategy() *UUVStrategy {
	return &UUVStrategy{}
}

// TypeCode returns "uuv".
func (s *UUVStrategy) TypeCode() string {
	return TypeUUV
}

// DisplayName returns the human label for underwater vehicles.
func (s *UUVStrategy) DisplayName() string {
	return "Unmanned Underwater Vehicle (UUV)"
}

// GenerateNormalizedName builds {STATION}_{ECOSYSTEM}_{MOUNT}.
func (s *UUVStrategy) GenerateNormalizedName(ctx NamingContext) (string, error) {
	return marineNormalizedName(ctx)
}

// RequiredFields lists the fields a caller must supply for an underwater vehicle.
func (s *UUVStrategy) RequiredFields() []string {
	return []string{"station_acronym", "ecosystem_code", "mount_type_code"}
}

// RequiresEcosystem reports that the ecosystem code is part of the grammar.
func (s *UUVStrategy) RequiresEcosystem() bool {
	return true
}

// FormFields returns the field descriptors for the underwater-vehicle form.
func (s *UUVStrategy) FormFields() []FormField {
	return []FormField{
		{Name: "display_name", Label: "Display Name", Type: "text", Required: true},
		{Name: "ecosystem_code", Label: "Ecosystem", Type: "select", Required: true, Options: aquaticEcosystemOptions()},
		{Name: "mount_type_code", Label: "Mount Type Code", Type: "text", Required: true,
			Help: "UUV-prefixed sequence, e.g. UUV01"},
		{Name: "propulsion_type", Label: "Propulsion", Type: "select", Options: wordOptions(propulsionTypes)},
		{Name: "navigation_type", Label: "Navigation", Type: "select", Options: wordOptions(navigationTypes)},
		{Name: "max_depth_m", Label: "Max Depth (m)", Type: "number", Min: floatPtr(0), Max: floatPtr(11000)},
		{Name: "operating_depth_m", Label: "Operating Depth (m)", Type: "number", Min: floatPtr(0), Max: floatPtr(11000)},
		{Name: "max_speed_kn", Label: "Max Speed (kn)", Type: "number", Min: floatPtr(0), Max: floatPtr(50)},
		{Name: "endurance_h", Label: "Endurance (h)", Type: "number", Min: floatPtr(0), Max: floatPtr(720)},
		{Name: "deployment_date", Label: "Deployment Date", Type: "date"},
		{Name: "description", Label: "Description", Type: "textarea"},
	}
}

// Validate aggregates every domain-rule violation of an underwater vehicle,
// including the operating-depth/max-depth consistency check.
func (s *UUVStrategy) Validate(data Data) shared.ValidationResult {
	result := shared.NewValidationResult()
	validateEcosystemRequired(data, s.TypeCode(), &result)
	validateMountCode(data, []string{"UUV"}, &result)
	validateCoordinates(data, &result)
	validateOption(&result, "propulsion_type", data.PropulsionType, propulsionTypes)
	validateOption(&result, "navigation_type", data.NavigationType, navigationTypes)
	validateRange(&result, "max_depth_m", data.MaxDepthM, 0, 11000)
	validateRange(&result, "operating_depth_m", data.OperatingDepthM, 0, 11000)
	validateRange(&result, "max_speed_kn", data.MaxSpeedKN, 0, 50)
	validateRange(&result, "endurance_h", data.EnduranceH, 0, 720)
	if data.OperatingDepthM != nil && data.MaxDepthM != nil && *data.OperatingDepthM > *data.MaxDepthM {
		result.AddError("operating_depth_m must not exceed max_depth_m (got %g > %g)",
			*data.OperatingDepthM, *data.MaxDepthM)
	}
	return result
}

// AutoCreatesInstruments reports that underwater vehicles never auto-provision.
func (s *UUVStrategy) AutoCreatesInstruments() bool {
	return false
}

// AutoCreatedInstruments returns nil.
func (s *UUVStrategy) AutoCreatedInstruments(data Data) []shared.AutoInstrument {
	return nil
}

// marineNormalizedName builds the shared {STATION}_{ECOSYSTEM}_{MOUNT}
// grammar of the water-borne types.
func marineNormalizedName(ctx NamingContext) (string, error) {
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

// aquaticEcosystemOptions narrows the ecosystem select to the codes that
// make sense on water.
func aquaticEcosystemOptions() []FormOption {
	codes := []string{"LAK", "WET", "MAR", "GEN"}
	options := make([]FormOption, 0, len(codes))
	for _, code := range codes {
		options = append(options, FormOption{Value: code, Label: EcosystemName(code)})
	}
	return options
}

// wordOptions renders a lower-case enumeration as select options.
func wordOptions(words []string) []FormOption {
	options := make([]FormOption, 0, len(words))
	for _, word := range words {
		options = append(options, FormOption{Value: word, Label: word})
	}
	return options
}
