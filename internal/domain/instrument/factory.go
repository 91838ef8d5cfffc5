package instrument

import (
	"fmt"

	"github.com/sitesspectral/spectral-go/internal/domain/shared"
)

// Factory builds validated Instrument entities. It is the single
// construction path for callers: it rejects unknown instrument types,
// validates supplied specifications against the type's field schema, and
// runs entity-level validation before returning anything.
type Factory struct {
	registry *TypeRegistry
}

// NewFactory creates a factory over the given type registry.
func NewFactory(registry *TypeRegistry) *Factory {
	return &Factory{registry: registry}
}

// Registry exposes the underlying type registry for lookups the factory
// does not wrap (compatibility checks, form metadata).
func (f *Factory) Registry() *TypeRegistry {
	return f.registry
}

// Create validates the instrument type and specifications, then constructs
// and validates the entity.
func (f *Factory) Create(props Props) (*Instrument, error) {
	if !f.registry.Has(props.InstrumentType) {
		return nil, &ErrUnknownInstrumentType{
			InstrumentType: props.InstrumentType,
			Known:          f.registry.Types(),
		}
	}

	if len(props.Specifications) > 0 {
		result := f.registry.ValidateSpecifications(props.InstrumentType, props.Specifications)
		if !result.Valid {
			return nil, &ErrInvalidSpecifications{
				InstrumentType: props.InstrumentType,
				Violations:     result.Errors,
			}
		}
	}

	return NewInstrument(props)
}

// CreateFromAutoData adapts a platform strategy's auto-provisioning
// payload into a fully validated instrument owned by the given platform.
func (f *Factory) CreateFromAutoData(auto shared.AutoInstrument, platformID int64) (*Instrument, error) {
	displayName := auto.DisplayName
	if displayName == "" {
		displayName = auto.NormalizedName
	}

	number := ""
	if auto.Number > 0 {
		number = fmt.Sprintf("%02d", auto.Number)
	}

	return f.Create(Props{
		NormalizedName:   auto.NormalizedName,
		DisplayName:      displayName,
		PlatformID:       platformID,
		InstrumentType:   auto.InstrumentType,
		InstrumentNumber: number,
		Specifications:   auto.Specifications,
	})
}

// GenerateNormalizedName builds the canonical instrument name from the
// owning platform's normalized name, the instrument type's short code
// (derived from initials when the type is unregistered), and a two-digit
// zero-padded sequence number.
func (f *Factory) GenerateNormalizedName(platformNormalizedName, instrumentType string, number int) string {
	code := f.registry.ResolveShortCode(instrumentType)
	return fmt.Sprintf("%s_%s%02d", platformNormalizedName, code, number)
}

// DefaultSpecifications returns the schema defaults for a type so callers
// can pre-fill optional fields before editing.
func (f *Factory) DefaultSpecifications(instrumentType string) map[string]interface{} {
	return f.registry.DefaultSpecifications(instrumentType)
}
