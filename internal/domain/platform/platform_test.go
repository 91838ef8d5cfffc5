package platform_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitesspectral/spectral-go/internal/domain/platform"
	"github.com/sitesspectral/spectral-go/internal/domain/shared"
)

func validFixedProps() platform.Props {
	return platform.Props{
		NormalizedName: "SVB_FOR_PL01",
		DisplayName:    "Svartberget Forest Tower",
		StationID:      1,
		StationAcronym: "SVB",
		PlatformType:   platform.TypeFixed,
		EcosystemCode:  "FOR",
		MountTypeCode:  "PL01",
	}
}

func TestNewPlatform_DefaultsStatusToActive(t *testing.T) {
	p, err := platform.NewPlatform(validFixedProps())

	require.NoError(t, err)
	assert.Equal(t, "Active", p.Status())
	assert.True(t, p.IsActive())
}

func TestNewPlatform_RejectsUnknownType(t *testing.T) {
	props := validFixedProps()
	props.PlatformType = "zeppelin"

	_, err := platform.NewPlatform(props)

	require.Error(t, err)
	var invalid *platform.ErrInvalidPlatform
	require.ErrorAs(t, err, &invalid)
	assert.Contains(t, err.Error(), "platform_type must be one of")
}

func TestNewPlatform_FixedRequiresEcosystem(t *testing.T) {
	props := validFixedProps()
	props.EcosystemCode = ""

	_, err := platform.NewPlatform(props)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "fixed platforms require an ecosystem_code")
}

func TestNewPlatform_UAVMustNotCarryEcosystem(t *testing.T) {
	props := platform.Props{
		NormalizedName: "SVB_DJI_M3M_UAV01",
		DisplayName:    "Svartberget M3M",
		StationID:      1,
		StationAcronym: "SVB",
		PlatformType:   platform.TypeUAV,
		EcosystemCode:  "FOR",
		MountTypeCode:  "UAV01",
	}

	_, err := platform.NewPlatform(props)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "must not carry an ecosystem_code")
}

func TestNewPlatform_CollectsAllViolations(t *testing.T) {
	_, err := platform.NewPlatform(platform.Props{
		PlatformType:  "fixed",
		EcosystemCode: "XXX",
	})

	require.Error(t, err)
	var invalid *platform.ErrInvalidPlatform
	require.ErrorAs(t, err, &invalid)
	// Missing name, display name, station, and a bad ecosystem code.
	assert.Len(t, invalid.Violations, 4)
}

func TestPlatform_ToJSONRoundTrip(t *testing.T) {
	// Arrange
	props := validFixedProps()
	props.Latitude = floatPtr(64.256)
	props.Longitude = floatPtr(19.771)
	props.PlatformHeightM = floatPtr(17.5)
	props.Description = "Main forest tower"
	original, err := platform.NewPlatform(props)
	require.NoError(t, err)
	require.NoError(t, original.AssignID(42))

	// Act
	restored, err := platform.FromDatabase(shared.Row(original.ToJSON()))

	// Assert
	require.NoError(t, err)
	assert.Equal(t, original.ID(), restored.ID())
	assert.Equal(t, original.NormalizedName(), restored.NormalizedName())
	assert.Equal(t, original.PlatformType(), restored.PlatformType())
	assert.Equal(t, original.EcosystemCode(), restored.EcosystemCode())
	assert.Equal(t, original.MountTypeCode(), restored.MountTypeCode())
	assert.Equal(t, original.Status(), restored.Status())
	assert.Equal(t, original.Description(), restored.Description())
	lat, lon, ok := restored.Coordinates()
	require.True(t, ok)
	assert.InDelta(t, 64.256, lat, 1e-9)
	assert.InDelta(t, 19.771, lon, 1e-9)
}

func TestPlatform_FromDatabase_AcceptsLegacyLocationCode(t *testing.T) {
	row := shared.Row{
		"id":              int64(7),
		"normalized_name": "SVB_FOR_PL01",
		"displayName":     "Svartberget Forest Tower",
		"station_id":      int64(1),
		"stationAcronym":  "svb",
		"platformType":    "Fixed",
		"ecosystem_code":  "for",
		"location_code":   "pl01",
	}

	p, err := platform.FromDatabase(row)

	require.NoError(t, err)
	assert.Equal(t, "PL01", p.MountTypeCode())
	assert.Equal(t, "fixed", p.PlatformType())
	assert.Equal(t, "SVB", p.StationAcronym())
	assert.Equal(t, "Active", p.Status())
	assert.Equal(t, "PL", p.MountPrefix())
}

func TestPlatform_ApplyData_UpdatesMutableFields(t *testing.T) {
	p, err := platform.NewPlatform(validFixedProps())
	require.NoError(t, err)

	p.ApplyData(platform.Data{
		DisplayName:     "Renamed Tower",
		PlatformHeightM: floatPtr(21),
		Description:     "raised in 2025 field season",
		Status:          "Maintenance",
	})

	assert.Equal(t, "Renamed Tower", p.DisplayName())
	assert.Equal(t, 21.0, *p.PlatformHeightM())
	assert.Equal(t, "Maintenance", p.Status())
	// Identity fields stay untouched.
	assert.Equal(t, "SVB_FOR_PL01", p.NormalizedName())
}

func TestPlatform_AssignID_RejectsReassignment(t *testing.T) {
	p, err := platform.NewPlatform(validFixedProps())
	require.NoError(t, err)
	require.NoError(t, p.AssignID(5))

	assert.NoError(t, p.AssignID(5))
	assert.Error(t, p.AssignID(9))
}

func TestDataFromSubmission_ToleratesKeyStyles(t *testing.T) {
	data := platform.DataFromSubmission(shared.Row{
		"displayName":     "Mixed Keys",
		"station_acronym": "SVB",
		"platform_type":   "mobile",
		"ecosystemCode":   "FOR",
		"carrier_type":    "backpack",
		"location_code":   "MOB01",
		"max_speed_kmh":   5.0,
	})

	assert.Equal(t, "Mixed Keys", data.DisplayName)
	assert.Equal(t, "SVB", data.StationAcronym)
	assert.Equal(t, "FOR", data.EcosystemCode)
	assert.Equal(t, "backpack", data.CarrierType)
	assert.Equal(t, "MOB01", data.MountTypeCode)
	require.NotNil(t, data.MaxSpeedKMH)
	assert.Equal(t, 5.0, *data.MaxSpeedKMH)
}

func TestFormatMountCode(t *testing.T) {
	assert.Equal(t, "PL03", platform.FormatMountCode("PL", 3))
	assert.Equal(t, "UAV01", platform.FormatMountCode("uav", 1))
	assert.Equal(t, "MOB12", platform.FormatMountCode("MOB", 12))
}

func TestCarrierCode(t *testing.T) {
	code, ok := platform.CarrierCode("Backpack")
	require.True(t, ok)
	assert.Equal(t, "BPK", code)

	code, ok = platform.CarrierCode("veh")
	require.True(t, ok)
	assert.Equal(t, "VEH", code)

	_, ok = platform.CarrierCode("sled")
	assert.False(t, ok)
}

func TestEcosystemCodes(t *testing.T) {
	codes := platform.EcosystemCodes()

	assert.Contains(t, codes, "FOR")
	assert.Contains(t, codes, "LAK")
	assert.True(t, platform.IsValidEcosystem("for"))
	assert.False(t, platform.IsValidEcosystem("XYZ"))
	assert.Equal(t, "Forest", platform.EcosystemName("FOR"))
}
