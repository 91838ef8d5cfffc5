package platform

import (
	"strings"

	"github.com/sitesspectral/spectral-go/internal/domain/shared"
)

// TypeStrategy defines the per-platform-type behavior: naming grammar,
// required fields, form metadata, validation rules, and (for types whose
// hardware identity implies a fixed instrument set) auto-provisioning.
//
// The strategy set is dispatched through TypeRegistry, which keeps the
// design open for extension: adding a platform type means writing one new
// strategy and registering it, without touching existing dispatch logic.
type TypeStrategy interface {
	// TypeCode returns the type tag the registry dispatches on ("fixed", "uav", ...).
	TypeCode() string

	// DisplayName returns the human label for the type.
	DisplayName() string

	// GenerateNormalizedName derives the canonical platform name from the
	// naming context. It is pure and deterministic, never consults
	// persistence, and fails with *MissingContextFieldError naming the
	// first absent required field.
	GenerateNormalizedName(ctx NamingContext) (string, error)

	// RequiredFields lists the context fields a caller must supply
	// before validation.
	RequiredFields() []string

	// RequiresEcosystem reports whether the ecosystem code participates
	// in this type's naming grammar.
	RequiresEcosystem() bool

	// FormFields returns the declarative field descriptors consumed by
	// presentation collaborators; domain logic never reads them.
	FormFields() []FormField

	// Validate checks the submitted data against this type's domain
	// rules. It never fails outright: every violation found is
	// aggregated in order so the caller can display all of them at once.
	Validate(data Data) shared.ValidationResult

	// AutoCreatesInstruments reports whether creating a platform of this
	// type implies a fixed instrument set.
	AutoCreatesInstruments() bool

	// AutoCreatedInstruments returns the instrument payloads implied by
	// the platform's hardware identity, in catalog order; an empty list
	// when the type does not auto-provision or the identity is unknown.
	AutoCreatedInstruments(data Data) []shared.AutoInstrument
}

// FormField is one declarative UI field descriptor. The dashboard renders
// platform forms from these; the core only declares them.
type FormField struct {
	Name     string
	Label    string
	Type     string // "text", "number", "select", "date", "textarea"
	Required bool
	Options  []FormOption
	Min      *float64
	Max      *float64
	Help     string
}

// FormOption is one choice of a select field.
type FormOption struct {
	Value string
	Label string
}

// ecosystemOptions renders the ecosystem enumeration as select options.
func ecosystemOptions() []FormOption {
	codes := EcosystemCodes()
	options := make([]FormOption, 0, len(codes))
	for _, code := range codes {
		options = append(options, FormOption{Value: code, Label: EcosystemName(code)})
	}
	return options
}

// Shared validation helpers. All append to the aggregated result instead
// of failing fast, matching the {valid, errors[]} contract.

func validateEcosystemRequired(data Data, typeCode string, result *shared.ValidationResult) {
	if strings.TrimSpace(data.EcosystemCode) == "" {
		result.AddError("ecosystem_code is required for %s platforms", typeCode)
		return
	}
	if !IsValidEcosystem(data.EcosystemCode) {
		result.AddError("ecosystem_code must be one of: %s (got %q)",
			strings.Join(EcosystemCodes(), ", "), data.EcosystemCode)
	}
}

func validateEcosystemForbidden(data Data, typeCode string, result *shared.ValidationResult) {
	if strings.TrimSpace(data.EcosystemCode) != "" {
		result.AddError("ecosystem_code must not be set for %s platforms (got %q)",
			typeCode, data.EcosystemCode)
	}
}

func validateMountCode(data Data, prefixes []string, result *shared.ValidationResult) {
	code := upperCode(data.MountTypeCode)
	if code == "" {
		result.AddError("mount_type_code is required")
		return
	}
	prefix := mountPrefixOf(code)
	for _, allowed := range prefixes {
		if prefix == allowed {
			return
		}
	}
	result.AddError("mount_type_code must start with one of: %s (got %q)",
		strings.Join(prefixes, ", "), data.MountTypeCode)
}

func validateCoordinates(data Data, result *shared.ValidationResult) {
	if data.Latitude != nil && (*data.Latitude < -90 || *data.Latitude > 90) {
		result.AddError("latitude must be between -90 and 90 (got %g)", *data.Latitude)
	}
	if data.Longitude != nil && (*data.Longitude < -180 || *data.Longitude > 180) {
		result.AddError("longitude must be between -180 and 180 (got %g)", *data.Longitude)
	}
}

func validateRange(result *shared.ValidationResult, field string, value *float64, min, max float64) {
	if value == nil {
		return
	}
	if *value < min || *value > max {
		result.AddError("%s must be between %g and %g (got %g)", field, min, max, *value)
	}
}

func validateOption(result *shared.ValidationResult, field, value string, allowed []string) {
	if strings.TrimSpace(value) == "" {
		return
	}
	for _, opt := range allowed {
		if strings.EqualFold(opt, value) {
			return
		}
	}
	result.AddError("%s must be one of: %s (got %q)",
		field, strings.Join(allowed, ", "), value)
}

func floatPtr(v float64) *float64 {
	return &v
}
