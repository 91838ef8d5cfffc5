package instrument_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitesspectral/spectral-go/internal/domain/instrument"
	"github.com/sitesspectral/spectral-go/internal/domain/shared"
)

func validProps() instrument.Props {
	return instrument.Props{
		NormalizedName: "SVB_FOR_PL01_PHE01",
		DisplayName:    "Forest Tower Phenocam",
		PlatformID:     3,
		InstrumentType: "phenocam",
	}
}

func TestNewInstrument_DefaultsStatuses(t *testing.T) {
	inst, err := instrument.NewInstrument(validProps())

	require.NoError(t, err)
	assert.Equal(t, instrument.StatusActive, inst.Status())
	assert.Equal(t, instrument.MeasurementUnknown, inst.MeasurementStatus())
	assert.True(t, inst.IsActive())
	assert.False(t, inst.IsOperational())
}

func TestNewInstrument_RejectsInvalidStatus(t *testing.T) {
	props := validProps()
	props.Status = instrument.Status("Broken")

	_, err := instrument.NewInstrument(props)

	require.Error(t, err)
	var invalid *instrument.ErrInvalidInstrument
	require.ErrorAs(t, err, &invalid)
	assert.Contains(t, err.Error(), "status must be one of Active, Inactive, Maintenance, Decommissioned")
}

func TestNewInstrument_CollectsAllViolations(t *testing.T) {
	_, err := instrument.NewInstrument(instrument.Props{
		Status:            instrument.Status("Broken"),
		MeasurementStatus: instrument.MeasurementStatus("Fuzzy"),
	})

	require.Error(t, err)
	var invalid *instrument.ErrInvalidInstrument
	require.ErrorAs(t, err, &invalid)
	// Name, display name, platform, type, and both status enums.
	assert.Len(t, invalid.Violations, 6)
}

func TestInstrument_ToJSONRoundTrip(t *testing.T) {
	// Arrange
	props := validProps()
	props.Specifications = map[string]interface{}{
		"channels":     3,
		"image_format": "JPEG",
	}
	props.Description = "south-facing canopy view"
	props.InstrumentNumber = "01"
	original, err := instrument.NewInstrument(props)
	require.NoError(t, err)
	require.NoError(t, original.AssignID(11))
	require.NoError(t, original.SetMeasurementStatus(instrument.MeasurementOperational))

	// Act
	restored, err := instrument.FromDatabase(shared.Row(original.ToJSON()))

	// Assert
	require.NoError(t, err)
	assert.Equal(t, original.ID(), restored.ID())
	assert.Equal(t, original.NormalizedName(), restored.NormalizedName())
	assert.Equal(t, original.InstrumentType(), restored.InstrumentType())
	assert.Equal(t, "01", restored.InstrumentNumber())
	assert.Equal(t, original.Status(), restored.Status())
	assert.Equal(t, original.MeasurementStatus(), restored.MeasurementStatus())
	assert.Equal(t, original.Specifications(), restored.Specifications())
	assert.True(t, restored.IsOperational())
}

func TestInstrument_FromDatabase_ToleratesLegacyShapes(t *testing.T) {
	row := shared.Row{
		"id":             int64(4),
		"normalizedName": "SVB_FOR_PL01_PHE01",
		"display_name":   "Forest Tower Phenocam",
		"platformId":     int64(3),
		"instrumentType": "phenocam",
		// Legacy rows stored specifications as a JSON text blob.
		"specifications": `{"channels": 3}`,
	}

	inst, err := instrument.FromDatabase(row)

	require.NoError(t, err)
	assert.Equal(t, int64(3), inst.PlatformID())
	assert.Equal(t, instrument.StatusActive, inst.Status())
	specs := inst.Specifications()
	assert.Equal(t, float64(3), specs["channels"])
}

func TestInstrument_WasAutoCreated(t *testing.T) {
	props := validProps()
	props.Specifications = map[string]interface{}{"auto_created": true, "source_model": "DJI Mavic 3 Multispectral"}
	auto, err := instrument.NewInstrument(props)
	require.NoError(t, err)

	manual, err := instrument.NewInstrument(validProps())
	require.NoError(t, err)

	assert.True(t, auto.WasAutoCreated())
	assert.False(t, manual.WasAutoCreated())
}

func TestInstrument_SpecificationsCopyIsIsolated(t *testing.T) {
	props := validProps()
	props.Specifications = map[string]interface{}{"channels": 3}
	inst, err := instrument.NewInstrument(props)
	require.NoError(t, err)

	specs := inst.Specifications()
	specs["channels"] = 99

	fresh, _ := inst.Specification("channels")
	assert.Equal(t, 3, fresh)
}

func TestInstrument_SetStatus_RejectsUnknownValues(t *testing.T) {
	inst, err := instrument.NewInstrument(validProps())
	require.NoError(t, err)

	assert.Error(t, inst.SetStatus(instrument.Status("Sleeping")))
	assert.NoError(t, inst.SetStatus(instrument.StatusMaintenance))
	assert.Equal(t, instrument.StatusMaintenance, inst.Status())
}

func TestStatusEnumerations(t *testing.T) {
	assert.True(t, instrument.StatusDecommissioned.IsValid())
	assert.False(t, instrument.Status("Retired").IsValid())
	assert.True(t, instrument.MeasurementDegraded.IsValid())
	assert.Contains(t, instrument.AllStatuses(), instrument.StatusInactive)
	assert.Contains(t, instrument.AllMeasurementStatuses(), instrument.MeasurementFailed)
}
