package platform_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitesspectral/spectral-go/internal/domain/platform"
	"github.com/sitesspectral/spectral-go/internal/domain/shared"
)

func testRegistry() *platform.TypeRegistry {
	return platform.NewTypeRegistry(testUAVCatalog(), testSatelliteCatalog(), testCodes())
}

func TestTypeRegistry_RegistersSixTypes(t *testing.T) {
	registry := testRegistry()

	assert.Equal(t, []string{"fixed", "uav", "satellite", "mobile", "usv", "uuv"}, registry.TypeCodes())
}

func TestTypeRegistry_Strategy_IsCaseInsensitive(t *testing.T) {
	registry := testRegistry()

	strategy, err := registry.Strategy("UAV")

	require.NoError(t, err)
	assert.Equal(t, "uav", strategy.TypeCode())
}

func TestTypeRegistry_Strategy_UnknownTypeListsRegisteredCodes(t *testing.T) {
	registry := testRegistry()

	_, err := registry.Strategy("zeppelin")

	require.Error(t, err)
	var unknown *platform.UnknownPlatformTypeError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "zeppelin", unknown.TypeCode)
	assert.Contains(t, err.Error(), "fixed")
	assert.Contains(t, err.Error(), "uuv")
}

func TestTypeRegistry_GenerateNormalizedName_Dispatches(t *testing.T) {
	registry := testRegistry()

	name, err := registry.GenerateNormalizedName("fixed", platform.NamingContext{
		StationAcronym: "SVB", EcosystemCode: "FOR", MountTypeCode: "PL01",
	})

	require.NoError(t, err)
	assert.Equal(t, "SVB_FOR_PL01", name)
}

func TestTypeRegistry_Validate_Dispatches(t *testing.T) {
	registry := testRegistry()

	result, err := registry.Validate("uav", platform.Data{
		StationAcronym: "SVB",
		Vendor:         "DJI",
		Model:          "M3M",
		MountTypeCode:  "UAV01",
	})

	require.NoError(t, err)
	assert.True(t, result.Valid)
}

func TestTypeRegistry_AutoCreatedInstruments_Dispatches(t *testing.T) {
	registry := testRegistry()

	fromUAV, err := registry.AutoCreatedInstruments("uav", platform.Data{
		StationAcronym: "SVB", Vendor: "DJI", Model: "M3M", MountTypeCode: "UAV01",
	})
	require.NoError(t, err)
	fromFixed, err2 := registry.AutoCreatedInstruments("fixed", platform.Data{
		StationAcronym: "SVB", EcosystemCode: "FOR", MountTypeCode: "PL01",
	})
	require.NoError(t, err2)

	assert.Len(t, fromUAV, 2)
	assert.Empty(t, fromFixed)
}

func TestTypeRegistry_FormFields_Dispatches(t *testing.T) {
	registry := testRegistry()

	fields, err := registry.FormFields("mobile")

	require.NoError(t, err)
	names := make([]string, 0, len(fields))
	for _, field := range fields {
		names = append(names, field.Name)
	}
	assert.Contains(t, names, "carrier_type")
	assert.Contains(t, names, "ecosystem_code")
}

// stubStrategy exercises the open/closed extension point.
type stubStrategy struct{}

func (s *stubStrategy) TypeCode() string    { return "blimp" }
func (s *stubStrategy) DisplayName() string { return "Blimp" }
func (s *stubStrategy) GenerateNormalizedName(ctx platform.NamingContext) (string, error) {
	return "BLIMP", nil
}
func (s *stubStrategy) RequiredFields() []string         { return nil }
func (s *stubStrategy) RequiresEcosystem() bool          { return false }
func (s *stubStrategy) FormFields() []platform.FormField { return nil }
func (s *stubStrategy) AutoCreatesInstruments() bool     { return false }
func (s *stubStrategy) Validate(data platform.Data) shared.ValidationResult {
	return shared.NewValidationResult()
}
func (s *stubStrategy) AutoCreatedInstruments(data platform.Data) []shared.AutoInstrument {
	return nil
}

func TestTypeRegistry_Register_AddsNewTypeWithoutTouchingOthers(t *testing.T) {
	registry := testRegistry()

	registry.Register(&stubStrategy{})

	strategy, err := registry.Strategy("blimp")
	require.NoError(t, err)
	assert.Equal(t, "Blimp", strategy.DisplayName())
	assert.Len(t, registry.TypeCodes(), 7)
}
