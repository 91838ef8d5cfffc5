package shared_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitesspectral/spectral-go/internal/domain/shared"
)

func TestRow_String_PrefersEarlierKeys(t *testing.T) {
	row := shared.Row{
		"mount_type_code": "PL01",
		"location_code":   "OLD01",
	}

	value := row.String("mount_type_code", "location_code")

	assert.Equal(t, "PL01", value)
}

func TestRow_String_FallsThroughAbsentKeys(t *testing.T) {
	row := shared.Row{"location_code": "PL01"}

	assert.Equal(t, "PL01", row.String("mount_type_code", "location_code"))
	assert.Equal(t, "", row.String("missing"))
}

func TestRow_Int64_WidensNumericTypes(t *testing.T) {
	// JSON decoders hand over float64, storage rows int64.
	assert.Equal(t, int64(7), shared.Row{"id": 7.0}.Int64("id"))
	assert.Equal(t, int64(7), shared.Row{"id": int64(7)}.Int64("id"))
	assert.Equal(t, int64(7), shared.Row{"id": 7}.Int64("id"))
	assert.Equal(t, int64(0), shared.Row{}.Int64("id"))
}

func TestRow_Float_DistinguishesAbsentFromZero(t *testing.T) {
	present := shared.Row{"latitude": 0.0}.Float("latitude")
	absent := shared.Row{}.Float("latitude")

	require.NotNil(t, present)
	assert.Equal(t, 0.0, *present)
	assert.Nil(t, absent)
}

func TestRow_ParsesNumericStrings(t *testing.T) {
	// CSV lines deliver every cell as a string.
	row := shared.Row{"latitude": "64.256", "platform_id": "42", "vendor": "DJI"}

	lat := row.Float("latitude")
	require.NotNil(t, lat)
	assert.Equal(t, 64.256, *lat)
	assert.Equal(t, int64(42), row.Int64("platform_id"))
	assert.Nil(t, row.Float("vendor"))
}

func TestRow_Time_ParsesRFC3339(t *testing.T) {
	row := shared.Row{"created_at": "2025-06-01T12:30:00Z"}

	parsed := row.Time("created_at")

	assert.Equal(t, time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC), parsed)
	assert.True(t, shared.Row{}.Time("created_at").IsZero())
}

func TestRow_Map_UnmarshalsJSONText(t *testing.T) {
	fromText := shared.Row{"specifications": `{"channels": 3}`}.Map("specifications")
	fromMap := shared.Row{"specifications": map[string]interface{}{"channels": 3}}.Map("specifications")

	require.NotNil(t, fromText)
	assert.Equal(t, float64(3), fromText["channels"])
	assert.Equal(t, 3, fromMap["channels"])
	assert.Nil(t, shared.Row{}.Map("specifications"))
}

func TestValidationResult_Aggregates(t *testing.T) {
	result := shared.NewValidationResult()
	assert.True(t, result.Valid)

	result.AddError("first problem: %s", "a")
	result.AddError("second problem")

	assert.False(t, result.Valid)
	assert.Equal(t, []string{"first problem: a", "second problem"}, result.Errors)
	assert.Equal(t, "first problem: a; second problem", result.ErrorMessage())
}

func TestValidationResult_Merge(t *testing.T) {
	target := shared.NewValidationResult()
	other := shared.NewValidationResult()
	other.AddError("carried over")

	target.Merge(other)
	target.Merge(shared.NewValidationResult())

	assert.False(t, target.Valid)
	assert.Equal(t, []string{"carried over"}, target.Errors)
}
