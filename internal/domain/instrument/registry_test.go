package instrument_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitesspectral/spectral-go/internal/domain/instrument"
)

func floatPtr(v float64) *float64 {
	return &v
}

func testDefinitions() map[string]instrument.TypeDefinition {
	return map[string]instrument.TypeDefinition{
		"phenocam": {
			DisplayName:         "Phenocam",
			ShortCode:           "PHE",
			Category:            "camera",
			CompatiblePlatforms: []string{"fixed"},
			Schema: map[string]instrument.FieldSpec{
				"channels": {
					Type:     "number",
					Required: true,
					Min:      floatPtr(1),
					Max:      floatPtr(50),
				},
				"image_format": {
					Type:    "select",
					Options: []string{"JPEG", "TIFF"},
					Default: "JPEG",
				},
				"ir_enabled": {
					Type: "boolean",
				},
			},
		},
		"multispectral_sensor": {
			DisplayName: "Multispectral Sensor",
			ShortCode:   "MS",
			Category:    "sensor",
		},
		"rgb_camera": {
			DisplayName: "RGB Camera",
			ShortCode:   "RGB",
			Category:    "camera",
		},
	}
}

func TestTypeRegistry_Get_ByKeyCodeAndDisplayName(t *testing.T) {
	registry := instrument.NewTypeRegistry(testDefinitions())

	byKey, okKey := registry.Get("phenocam")
	byCode, okCode := registry.Get("phe")
	byName, okName := registry.Get("Multispectral Sensor")

	require.True(t, okKey)
	require.True(t, okCode)
	require.True(t, okName)
	assert.Equal(t, "Phenocam", byKey.DisplayName)
	assert.Equal(t, "Phenocam", byCode.DisplayName)
	assert.Equal(t, "MS", byName.ShortCode)
}

func TestTypeRegistry_Get_UnknownType(t *testing.T) {
	registry := instrument.NewTypeRegistry(testDefinitions())

	_, ok := registry.Get("thermal_imager")

	assert.False(t, ok)
	assert.False(t, registry.Has("thermal_imager"))
}

func TestTypeRegistry_ResolveShortCode_FallsBackToInitials(t *testing.T) {
	registry := instrument.NewTypeRegistry(testDefinitions())

	assert.Equal(t, "PHE", registry.ResolveShortCode("Phenocam"))
	assert.Equal(t, "SMP", registry.ResolveShortCode("soil moisture probe"))
	assert.Equal(t, "WLS", registry.ResolveShortCode("water_level_sensor_array"))
}

func TestTypeRegistry_IsCompatibleWithPlatform(t *testing.T) {
	registry := instrument.NewTypeRegistry(testDefinitions())

	// Explicit list restricts; empty list allows everything; unknown type never matches.
	assert.True(t, registry.IsCompatibleWithPlatform("phenocam", "fixed"))
	assert.False(t, registry.IsCompatibleWithPlatform("phenocam", "uav"))
	assert.True(t, registry.IsCompatibleWithPlatform("rgb_camera", "uav"))
	assert.False(t, registry.IsCompatibleWithPlatform("thermal_imager", "fixed"))
}

func TestTypeRegistry_ValidateSpecifications_NumericRange(t *testing.T) {
	registry := instrument.NewTypeRegistry(testDefinitions())

	inRange := registry.ValidateSpecifications("phenocam", map[string]interface{}{
		"channels": 3,
	})
	belowMin := registry.ValidateSpecifications("phenocam", map[string]interface{}{
		"channels": 0,
	})
	aboveMax := registry.ValidateSpecifications("phenocam", map[string]interface{}{
		"channels": 51,
	})

	assert.True(t, inRange.Valid)
	assert.False(t, belowMin.Valid)
	assert.Contains(t, belowMin.ErrorMessage(), "at least 1")
	assert.False(t, aboveMax.Valid)
	assert.Contains(t, aboveMax.ErrorMessage(), "at most 50")
}

func TestTypeRegistry_ValidateSpecifications_MissingRequiredField(t *testing.T) {
	registry := instrument.NewTypeRegistry(testDefinitions())

	result := registry.ValidateSpecifications("phenocam", map[string]interface{}{
		"image_format": "JPEG",
	})

	assert.False(t, result.Valid)
	assert.Contains(t, result.ErrorMessage(), "missing required specification field 'channels'")
}

func TestTypeRegistry_ValidateSpecifications_WrongTypeAndBadOption(t *testing.T) {
	registry := instrument.NewTypeRegistry(testDefinitions())

	result := registry.ValidateSpecifications("phenocam", map[string]interface{}{
		"channels":     "three",
		"image_format": "BMP",
		"ir_enabled":   "yes",
	})

	assert.False(t, result.Valid)
	assert.Len(t, result.Errors, 3)
	assert.Contains(t, result.ErrorMessage(), "'channels' must be a number")
	assert.Contains(t, result.ErrorMessage(), "'image_format' must be one of: JPEG, TIFF")
	assert.Contains(t, result.ErrorMessage(), "'ir_enabled' must be a boolean")
}

func TestTypeRegistry_ValidateSpecifications_SchemaAbsentTypeIsUnconstrained(t *testing.T) {
	registry := instrument.NewTypeRegistry(testDefinitions())

	// No schema registered for the type, and not even a registered type:
	// both validate unconditionally.
	noSchema := registry.ValidateSpecifications("rgb_camera", map[string]interface{}{
		"anything": "goes", "channels": -99,
	})
	unknown := registry.ValidateSpecifications("thermal_imager", map[string]interface{}{
		"weird": true,
	})

	assert.True(t, noSchema.Valid)
	assert.True(t, unknown.Valid)
}

func TestTypeRegistry_DefaultSpecifications(t *testing.T) {
	registry := instrument.NewTypeRegistry(testDefinitions())

	defaults := registry.DefaultSpecifications("phenocam")

	assert.Equal(t, map[string]interface{}{"image_format": "JPEG"}, defaults)
	assert.Empty(t, registry.DefaultSpecifications("rgb_camera"))
}

func TestTypeRegistry_Types_Sorted(t *testing.T) {
	registry := instrument.NewTypeRegistry(testDefinitions())

	assert.Equal(t, []string{"multispectral_sensor", "phenocam", "rgb_camera"}, registry.Types())
}
