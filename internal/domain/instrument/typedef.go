package instrument

// TypeDefinition describes one instrument kind known to the system.
// Definitions are catalog configuration data: loaded once at startup,
// never mutated afterwards. The map key under which a definition is
// registered is its canonical type key (e.g. "multispectral_sensor").
type TypeDefinition struct {
	// DisplayName is the human label, also usable as a lookup key
	// (case-insensitive), e.g. "Multispectral Sensor".
	DisplayName string `mapstructure:"display_name" yaml:"display_name"`

	// Description explains what the instrument kind measures.
	Description string `mapstructure:"description" yaml:"description,omitempty"`

	// Icon and Color are presentation metadata consumed by dashboards.
	Icon  string `mapstructure:"icon" yaml:"icon,omitempty"`
	Color string `mapstructure:"color" yaml:"color,omitempty"`

	// ShortCode is the token used in generated instrument names,
	// e.g. "PHE" for phenocams, "MS" for multispectral sensors.
	ShortCode string `mapstructure:"short_code" yaml:"short_code"`

	// Category groups types for filtering (e.g. "camera", "sensor").
	Category string `mapstructure:"category" yaml:"category,omitempty"`

	// CompatiblePlatforms lists the platform type codes this instrument
	// kind may be mounted on. An empty list means no restriction.
	CompatiblePlatforms []string `mapstructure:"compatible_platforms" yaml:"compatible_platforms,omitempty"`

	// Schema declares the type-specific specification fields. A type
	// without a schema accepts any specification map unchecked.
	Schema map[string]FieldSpec `mapstructure:"schema" yaml:"schema,omitempty"`
}

// FieldSpec declares one specification field: its primitive type, whether
// it is mandatory, and the bounds or enumeration its values must satisfy.
type FieldSpec struct {
	// Type is one of "number", "string", "boolean", "select".
	Type string `mapstructure:"type" yaml:"type"`

	// Label is the UI label; Help is free-form guidance text.
	Label string `mapstructure:"label" yaml:"label,omitempty"`
	Help  string `mapstructure:"help" yaml:"help,omitempty"`

	// Required marks the field as mandatory during validation.
	Required bool `mapstructure:"required" yaml:"required,omitempty"`

	// Min and Max bound numeric fields when set.
	Min *float64 `mapstructure:"min" yaml:"min,omitempty"`
	Max *float64 `mapstructure:"max" yaml:"max,omitempty"`

	// Options enumerates the allowed values for string/select fields.
	Options []string `mapstructure:"options" yaml:"options,omitempty"`

	// Default pre-fills the field when the caller supplies no value.
	Default interface{} `mapstructure:"default" yaml:"default,omitempty"`
}
