package platform

import (
	"strings"

	"github.com/sitesspectral/spectral-go/internal/domain/shared"
)

// carrierCodes maps each carrier type to the token used in mobile
// platform names.
var carrierCodes = map[string]string{
	"vehicle":  "VEH",
	"boat":     "BOA",
	"rover":    "ROV",
	"backpack": "BPK",
	"bicycle":  "BIC",
	"other":    "OTH",
}

// carrierTypeOrder keeps the enumeration stable for messages and forms.
var carrierTypeOrder = []string{"vehicle", "boat", "rover", "backpack", "bicycle", "other"}

// CarrierCode resolves a carrier type (word or already-coded token, any
// casing) to its three-letter naming code.
func CarrierCode(carrierType string) (string, bool) {
	trimmed := strings.TrimSpace(carrierType)
	if code, ok := carrierCodes[strings.ToLower(trimmed)]; ok {
		return code, true
	}
	upper := strings.ToUpper(trimmed)
	for _, code := range carrierCodes {
		if code == upper {
			return code, true
		}
	}
	return "", false
}

// CarrierTypes returns the carrier enumeration in canonical order.
func CarrierTypes() []string {
	return append([]string(nil), carrierTypeOrder...)
}

// MobileStrategy implements the behavior of mobile survey platforms:
// instrument packages carried along transects by a vehicle, boat, rover,
// backpack, or bicycle.
//
// Naming grammar: {STATION}_{ECOSYSTEM}_{CARRIER}_{MOUNT}, e.g. SVB_FOR_BPK_MOB01.
type MobileStrategy struct{}

// NewMobileStrategy creates a new mobile-platform strategy instance.
func NewMobileStrategy() *MobileStrategy {
	return &MobileStrategy{}
}

// TypeCode returns "mobile".
func (s *MobileStrategy) TypeCode() string {
	return TypeMobile
}

// DisplayName returns the human label for mobile platforms.
func (s *MobileStrategy) DisplayName() string {
	return "Mobile Platform"
}

// GenerateNormalizedName builds {STATION}_{ECOSYSTEM}_{CARRIER}_{MOUNT}.
// The carrier token is the three-letter code of the carrier type; an
// unrecognized carrier falls back to its normalized input token so the
// mismatch is still visible in validation rather than hidden here.
func (s *MobileStrategy) GenerateNormalizedName(ctx NamingContext) (string, error) {
	station := upperCode(ctx.StationAcronym)
	ecosystem := upperCode(ctx.EcosystemCode)
	mount := upperCode(ctx.MountTypeCode)
	carrier, ok := CarrierCode(ctx.CarrierType)
	if !ok {
		carrier = normalizeToken(ctx.CarrierType)
	}
	if err := requireContext(map[string]string{
		"station_acronym": station,
		"ecosystem_code":  ecosystem,
		"carrier_type":    carrier,
		"mount_type_code": mount,
	}, []string{"station_acronym", "ecosystem_code", "carrier_type", "mount_type_code"}); err != nil {
		return "", err
	}
	return joinName(station, ecosystem, carrier, mount), nil
}

// RequiredFields lists the fields a caller must supply for a mobile platform.
func (s *MobileStrategy) RequiredFields() []string {
	return []string{"station_acronym", "ecosystem_code", "carrier_type", "mount_type_code"}
}

// RequiresEcosystem reports that the ecosystem code is part of the grammar.
func (s *MobileStrategy) RequiresEcosystem() bool {
	return true
}

// FormFields returns the field descriptors for the mobile-platform form.
func (s *MobileStrategy) FormFields() []FormField {
	carrierOptions := make([]FormOption, 0, len(carrierTypeOrder))
	for _, carrier := range carrierTypeOrder {
		carrierOptions = append(carrierOptions, FormOption{
			Value: carrier,
			Label: strings.ToUpper(carrier[:1]) + carrier[1:],
		})
	}
	return []FormField{
		{Name: "display_name", Label: "Display Name", Type: "text", Required: true},
		{Name: "ecosystem_code", Label: "Ecosystem", Type: "select", Required: true, Options: ecosystemOptions()},
		{Name: "carrier_type", Label: "Carrier Type", Type: "select", Required: true, Options: carrierOptions},
		{Name: "mount_type_code", Label: "Mount Type Code", Type: "text", Required: true,
			Help: "MOB-prefixed sequence, e.g. MOB01"},
		{Name: "max_speed_kmh", Label: "Max Speed (km/h)", Type: "number", Min: floatPtr(0), Max: floatPtr(200)},
		{Name: "operating_range_km", Label: "Operating Range (km)", Type: "number", Min: floatPtr(0), Max: floatPtr(1000)},
		{Name: "battery_runtime_h", Label: "Battery Runtime (h)", Type: "number", Min: floatPtr(0), Max: floatPtr(168)},
		{Name: "deployment_date", Label: "Deployment Date", Type: "date"},
		{Name: "description", Label: "Description", Type: "textarea"},
	}
}

// Validate aggregates every domain-rule violation of a mobile platform.
func (s *MobileStrategy) Validate(data Data) shared.ValidationResult {
	result := shared.NewValidationResult()
	validateEcosystemRequired(data, s.TypeCode(), &result)
	validateMountCode(data, []string{"MOB"}, &result)
	validateCoordinates(data, &result)

	carrier := strings.TrimSpace(data.CarrierType)
	if carrier == "" {
		result.AddError("carrier_type is required for mobile platforms")
	} else if _, ok := CarrierCode(carrier); !ok {
		result.AddError("carrier_type must be one of: %s (got %q)",
			strings.Join(carrierTypeOrder, ", "), carrier)
	}

	validateRange(&result, "max_speed_kmh", data.MaxSpeedKMH, 0, 200)
	validateRange(&result, "operating_range_km", data.OperatingRangeKM, 0, 1000)
	validateRange(&result, "battery_runtime_h", data.BatteryRuntimeH, 0, 168)
	return result
}

// AutoCreatesInstruments reports that mobile platforms never auto-provision.
func (s *MobileStrategy) AutoCreatesInstruments() bool {
	return false
}

// AutoCreatedInstruments returns nil; the instrument package a carrier
// hauls is not implied by the carrier itself.
func (s *MobileStrategy) AutoCreatedInstruments(data Data) []shared.AutoInstrument {
	return nil
}
