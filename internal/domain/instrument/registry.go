package instrument

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sitesspectral/spectral-go/internal/domain/shared"
)

// TypeRegistry is the read-only lookup table over instrument type
// definitions. It is built once from catalog configuration at startup;
// no writer exists afterwards, so reads need no locking.
//
// Lookups are case-insensitive and work by type key, short code, or
// display name, so callers can pass whichever identifier they hold.
type TypeRegistry struct {
	types  map[string]TypeDefinition // canonical key -> definition
	byCode map[string]string         // lower(short code) -> canonical key
	byName map[string]string         // lower(display name) -> canonical key
}

// NewTypeRegistry builds a registry from catalog type definitions.
// The definitions map is copied; later mutation of the argument does not
// affect the registry.
func NewTypeRegistry(defs map[string]TypeDefinition) *TypeRegistry {
	r := &TypeRegistry{
		types:  make(map[string]TypeDefinition, len(defs)),
		byCode: make(map[string]string, len(defs)),
		byName: make(map[string]string, len(defs)),
	}
	for key, def := range defs {
		canonical := strings.ToLower(strings.TrimSpace(key))
		r.types[canonical] = def
		if def.ShortCode != "" {
			r.byCode[strings.ToLower(def.ShortCode)] = canonical
		}
		if def.DisplayName != "" {
			r.byName[strings.ToLower(def.DisplayName)] = canonical
		}
	}
	return r
}

// Get resolves a type by key, short code, or display name (all
// case-insensitive) and reports whether it is registered.
func (r *TypeRegistry) Get(keyOrName string) (TypeDefinition, bool) {
	needle := strings.ToLower(strings.TrimSpace(keyOrName))
	if def, ok := r.types[needle]; ok {
		return def, true
	}
	if key, ok := r.byCode[needle]; ok {
		return r.types[key], true
	}
	if key, ok := r.byName[needle]; ok {
		return r.types[key], true
	}
	return TypeDefinition{}, false
}

// Has reports whether the given type identifier is registered.
func (r *TypeRegistry) Has(keyOrName string) bool {
	_, ok := r.Get(keyOrName)
	return ok
}

// Types returns the canonical type keys, sorted.
func (r *TypeRegistry) Types() []string {
	keys := make([]string, 0, len(r.types))
	for key := range r.types {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Category returns the type's category, or "" for unregistered types.
func (r *TypeRegistry) Category(keyOrName string) string {
	def, ok := r.Get(keyOrName)
	if !ok {
		return ""
	}
	return def.Category
}

// ResolveShortCode returns the type's registered short code. Unregistered
// types fall back to a code derived from the type name's initials (upper-
// cased, capped at three letters) so name generation never fails outright.
func (r *TypeRegistry) ResolveShortCode(keyOrName string) string {
	if def, ok := r.Get(keyOrName); ok && def.ShortCode != "" {
		return def.ShortCode
	}
	return deriveShortCode(keyOrName)
}

// deriveShortCode builds a fallback code from the initials of the type
// name's words: "soil moisture probe" -> "SMP".
func deriveShortCode(typeName string) string {
	words := strings.FieldsFunc(typeName, func(ch rune) bool {
		return ch == ' ' || ch == '_' || ch == '-'
	})
	var initials []byte
	for _, w := range words {
		initials = append(initials, w[0])
		if len(initials) == 3 {
			break
		}
	}
	return strings.ToUpper(string(initials))
}

// IsCompatibleWithPlatform reports whether the instrument type may be
// mounted on the given platform type. Unregistered instrument types are
// never compatible; a registered type with an empty compatibility list
// declares no restriction.
func (r *TypeRegistry) IsCompatibleWithPlatform(keyOrName, platformType string) bool {
	def, ok := r.Get(keyOrName)
	if !ok {
		return false
	}
	if len(def.CompatiblePlatforms) == 0 {
		return true
	}
	needle := strings.ToLower(strings.TrimSpace(platformType))
	for _, pt := range def.CompatiblePlatforms {
		if strings.ToLower(pt) == needle {
			return true
		}
	}
	return false
}

// DefaultSpecifications returns the schema's declared default values so
// callers can pre-fill optional fields. Types without a schema yield an
// empty map.
func (r *TypeRegistry) DefaultSpecifications(keyOrName string) map[string]interface{} {
	defaults := make(map[string]interface{})
	def, ok := r.Get(keyOrName)
	if !ok {
		return defaults
	}
	for name, field := range def.Schema {
		if field.Default != nil {
			defaults[name] = field.Default
		}
	}
	return defaults
}

// ValidateSpecifications walks the type's field schema and aggregates
// every violation found: missing required field, wrong primitive type,
// numeric value out of range, value not in the declared options.
// A type without a schema (or an unregistered type) imposes no
// constraints and always validates.
func (r *TypeRegistry) ValidateSpecifications(keyOrName string, specs map[string]interface{}) shared.ValidationResult {
	result := shared.NewValidationResult()

	def, ok := r.Get(keyOrName)
	if !ok || len(def.Schema) == 0 {
		return result
	}

	// Walk fields in sorted order so violation order is deterministic.
	names := make([]string, 0, len(def.Schema))
	for name := range def.Schema {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		field := def.Schema[name]
		value, present := specs[name]
		if !present || value == nil {
			if field.Required {
				result.AddError("missing required specification field '%s'", name)
			}
			continue
		}
		validateFieldValue(&result, name, field, value)
	}
	return result
}

// validateFieldValue checks one present specification value against its
// declared field spec.
func validateFieldValue(result *shared.ValidationResult, name string, field FieldSpec, value interface{}) {
	switch field.Type {
	case "number":
		num, ok := toNumber(value)
		if !ok {
			result.AddError("specification field '%s' must be a number (got %T)", name, value)
			return
		}
		if field.Min != nil && num < *field.Min {
			result.AddError("specification field '%s' must be at least %g (got %g)", name, *field.Min, num)
		}
		if field.Max != nil && num > *field.Max {
			result.AddError("specification field '%s' must be at most %g (got %g)", name, *field.Max, num)
		}

	case "boolean":
		if _, ok := value.(bool); !ok {
			result.AddError("specification field '%s' must be a boolean (got %T)", name, value)
		}

	case "string", "select", "":
		str, ok := value.(string)
		if !ok {
			result.AddError("specification field '%s' must be a string (got %T)", name, value)
			return
		}
		if len(field.Options) > 0 && !containsFold(field.Options, str) {
			result.AddError("specification field '%s' must be one of: %s (got %q)",
				name, strings.Join(field.Options, ", "), str)
		}

	default:
		result.AddError("specification field '%s' has unsupported schema type %q", name, field.Type)
	}
}

// toNumber widens the numeric types a JSON or YAML decoder may hand us.
func toNumber(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

func containsFold(options []string, value string) bool {
	for _, opt := range options {
		if strings.EqualFold(opt, value) {
			return true
		}
	}
	return false
}

// String describes the registry contents, useful in logs.
func (r *TypeRegistry) String() string {
	return fmt.Sprintf("TypeRegistry[%d types]", len(r.types))
}
