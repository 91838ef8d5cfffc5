package platform

import (
	"strings"

	"github.com/sitesspectral/spectral-go/internal/domain/shared"
)

// TypeRegistry dispatches platform operations to the strategy registered
// for a type code, so callers never branch on the type themselves. Adding
// a platform type means registering one more strategy; nothing here or in
// the existing strategies changes.
//
// The registry is populated once at construction and read-only afterward.
type TypeRegistry struct {
	strategies map[string]TypeStrategy
	order      []string
}

// NewTypeRegistry builds the registry with the six standard strategies.
// The catalogs drive UAV and satellite hardware resolution; the code
// resolver names their auto-provisioned instruments.
func NewTypeRegistry(uavCatalog *UAVCatalog, satelliteCatalog *SatelliteCatalog, codes InstrumentCodeResolver) *TypeRegistry {
	registry := &TypeRegistry{
		strategies: make(map[string]TypeStrategy),
	}
	registry.Register(NewFixedStrategy())
	registry.Register(NewUAVStrategy(uavCatalog, codes))
	registry.Register(NewSatelliteStrategy(satelliteCatalog, codes))
	registry.Register(NewMobileStrategy())
	registry.Register(NewUSVStrategy())
	registry.Register(NewUUVStrategy())
	return registry
}

// Register adds a strategy under its type code, replacing any previous
// registration of the same code.
func (r *TypeRegistry) Register(strategy TypeStrategy) {
	code := strings.ToLower(strategy.TypeCode())
	if _, exists := r.strategies[code]; !exists {
		r.order = append(r.order, code)
	}
	r.strategies[code] = strategy
}

// Strategy returns the strategy registered for a type code. The type code
// is matched case-insensitively.
func (r *TypeRegistry) Strategy(typeCode string) (TypeStrategy, error) {
	strategy, ok := r.strategies[strings.ToLower(strings.TrimSpace(typeCode))]
	if !ok {
		return nil, &UnknownPlatformTypeError{TypeCode: typeCode, Known: r.TypeCodes()}
	}
	return strategy, nil
}

// TypeCodes returns the registered type codes in registration order.
func (r *TypeRegistry) TypeCodes() []string {
	return append([]string(nil), r.order...)
}

// GenerateNormalizedName dispatches name generation to the type's strategy.
func (r *TypeRegistry) GenerateNormalizedName(typeCode string, ctx NamingContext) (string, error) {
	strategy, err := r.Strategy(typeCode)
	if err != nil {
		return "", err
	}
	return strategy.GenerateNormalizedName(ctx)
}

// Validate dispatches data validation to the type's strategy.
func (r *TypeRegistry) Validate(typeCode string, data Data) (shared.ValidationResult, error) {
	strategy, err := r.Strategy(typeCode)
	if err != nil {
		return shared.ValidationResult{}, err
	}
	return strategy.Validate(data), nil
}

// FormFields dispatches form-descriptor lookup to the type's strategy.
func (r *TypeRegistry) FormFields(typeCode string) ([]FormField, error) {
	strategy, err := r.Strategy(typeCode)
	if err != nil {
		return nil, err
	}
	return strategy.FormFields(), nil
}

// AutoCreatedInstruments dispatches auto-provisioning payload lookup to
// the type's strategy.
func (r *TypeRegistry) AutoCreatedInstruments(typeCode string, data Data) ([]shared.AutoInstrument, error) {
	strategy, err := r.Strategy(typeCode)
	if err != nil {
		return nil, err
	}
	return strategy.AutoCreatedInstruments(data), nil
}
