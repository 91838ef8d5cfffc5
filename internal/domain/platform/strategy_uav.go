package platform

import (
	"strings"

	"github.com/sitesspectral/spectral-go/internal/domain/shared"
)

// UAVStrategy implements the behavior of unmanned aerial vehicles. The
// vendor and model must resolve against the airframe catalog; a resolved
// model implies a fixed instrument set that is provisioned together with
// the platform.
//
// Naming grammar: {STATION}_{VENDOR}_{MODEL}_{MOUNT}, e.g. SVB_DJI_M3M_UAV01.
type UAVStrategy struct {
	catalog *UAVCatalog
	codes   InstrumentCodeResolver
}

// NewUAVStrategy creates a new UAV strategy over the given airframe catalog.
func NewUAVStrategy(catalog *UAVCatalog, codes InstrumentCodeResolver) *UAVStrategy {
	return &UAVStrategy{
		catalog: catalog,
		codes:   codes,
	}
}

// TypeCode returns "uav".
func (s *UAVStrategy) TypeCode() string {
	return TypeUAV
}

// DisplayName returns the human label for UAV platforms.
func (s *UAVStrategy) DisplayName() string {
	return "Unmanned Aerial Vehicle (UAV)"
}

// GenerateNormalizedName builds {STATION}_{VENDOR}_{MODEL}_{MOUNT}. Vendor
// and model tokens are normalized so the same airframe always yields the
// same name regardless of input casing or punctuation.
func (s *UAVStrategy) GenerateNormalizedName(ctx NamingContext) (string, error) {
	station := upperCode(ctx.StationAcronym)
	vendor := normalizeToken(ctx.Vendor)
	model := normalizeToken(ctx.Model)
	mount := upperCode(ctx.MountTypeCode)
	if err := requireContext(map[string]string{
		"station_acronym": station,
		"vendor":          vendor,
		"model":           model,
		"mount_type_code": mount,
	}, []string{"station_acronym", "vendor", "model", "mount_type_code"}); err != nil {
		return "", err
	}
	return joinName(station, vendor, model, mount), nil
}

// RequiredFields lists the fields a caller must supply for a UAV platform.
func (s *UAVStrategy) RequiredFields() []string {
	return []string{"station_acronym", "vendor", "model", "mount_type_code"}
}

// RequiresEcosystem reports that UAV names carry no ecosystem code.
func (s *UAVStrategy) RequiresEcosystem() bool {
	return false
}

// FormFields returns the field descriptors for the UAV form. Vendor and
// model are selects driven by the airframe catalog.
func (s *UAVStrategy) FormFields() []FormField {
	vendorOptions := make([]FormOption, 0)
	for _, vendor := range s.catalog.KnownVendors() {
		vendorOptions = append(vendorOptions, FormOption{Value: vendor, Label: vendor})
	}
	return []FormField{
		{Name: "display_name", Label: "Display Name", Type: "text", Required: true},
		{Name: "vendor", Label: "Vendor", Type: "select", Required: true, Options: vendorOptions},
		{Name: "model", Label: "Model", Type: "text", Required: true,
			Help: "Airframe model, e.g. M3M (Mavic 3 Multispectral)"},
		{Name: "mount_type_code", Label: "Mount Type Code", Type: "text", Required: true,
			Help: "UAV-prefixed sequence, e.g. UAV01"},
		{Name: "latitude", Label: "Home Latitude", Type: "number", Min: floatPtr(-90), Max: floatPtr(90)},
		{Name: "longitude", Label: "Home Longitude", Type: "number", Min: floatPtr(-180), Max: floatPtr(180)},
		{Name: "deployment_date", Label: "Deployment Date", Type: "date"},
		{Name: "description", Label: "Description", Type: "textarea"},
	}
}

// Validate aggregates every domain-rule violation of a UAV platform,
// including catalog resolution of the vendor/model pair.
func (s *UAVStrategy) Validate(data Data) shared.ValidationResult {
	result := shared.NewValidationResult()
	validateEcosystemForbidden(data, s.TypeCode(), &result)
	validateMountCode(data, []string{"UAV"}, &result)
	validateCoordinates(data, &result)

	vendor := strings.TrimSpace(data.Vendor)
	model := strings.TrimSpace(data.Model)
	if vendor == "" {
		result.AddError("vendor is required for uav platforms")
	}
	if model == "" {
		result.AddError("model is required for uav platforms")
	}
	if vendor == "" || model == "" {
		return result
	}

	vendorDef, ok := s.catalog.ResolveVendor(vendor)
	if !ok {
		result.AddError("unknown vendor %q (known vendors: %s)",
			vendor, strings.Join(s.catalog.KnownVendors(), ", "))
		return result
	}
	if _, ok := s.catalog.ResolveModel(vendorDef.Name, model); !ok {
		result.AddError("unknown model %q for vendor %s (known models: %s)",
			model, vendorDef.Name, strings.Join(s.catalog.KnownModels(vendorDef.Name), ", "))
	}
	return result
}

// AutoCreatesInstruments reports that UAV platforms provision their
// airframe's instrument set.
func (s *UAVStrategy) AutoCreatesInstruments() bool {
	return true
}

// AutoCreatedInstruments returns one instrument payload per hardware
// component of the resolved airframe, named {platformName}_{CODE}{NN} in
// catalog order. Unknown identity or incomplete naming context yields nil;
// validation reports those cases.
func (s *UAVStrategy) AutoCreatedInstruments(data Data) []shared.AutoInstrument {
	platformName, err := s.GenerateNormalizedName(data.NamingContext())
	if err != nil {
		return nil
	}
	vendorDef, ok := s.catalog.ResolveVendor(data.Vendor)
	if !ok {
		return nil
	}
	modelDef, ok := s.catalog.ResolveModel(vendorDef.Name, data.Model)
	if !ok {
		return nil
	}
	sourceModel := vendorDef.Name + " " + modelDef.DisplayName
	return materializeInstruments(platformName, sourceModel, modelDef.Instruments, nil, s.codes)
}
