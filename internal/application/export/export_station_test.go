package export_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitesspectral/spectral-go/internal/application/export"
	"github.com/sitesspectral/spectral-go/internal/domain/instrument"
	"github.com/sitesspectral/spectral-go/internal/domain/platform"
	"github.com/sitesspectral/spectral-go/internal/domain/station"
	"github.com/sitesspectral/spectral-go/test/helpers"
)

type exportEnv struct {
	stations    *helpers.MockStationRepository
	platforms   *helpers.MockPlatformRepository
	instruments *helpers.MockInstrumentRepository
	handler     *export.ExportStationHandler
}

func newExportEnv(t *testing.T) *exportEnv {
	t.Helper()
	env := &exportEnv{
		stations:    helpers.NewMockStationRepository(),
		platforms:   helpers.NewMockPlatformRepository(),
		instruments: helpers.NewMockInstrumentRepository(),
	}
	env.handler = export.NewExportStationHandler(env.stations, env.platforms, env.instruments)

	s, err := station.NewStation("SVB", "Svartberget")
	require.NoError(t, err)
	env.stations.AddStation(s)
	return env
}

func (env *exportEnv) seedPlatform(t *testing.T, name, mountCode string) *platform.Platform {
	t.Helper()
	p, err := platform.NewPlatform(platform.Props{
		NormalizedName: name,
		DisplayName:    name,
		StationID:      1,
		StationAcronym: "SVB",
		PlatformType:   "fixed",
		EcosystemCode:  "FOR",
		MountTypeCode:  mountCode,
	})
	require.NoError(t, err)
	return env.platforms.AddPlatform(p)
}

func (env *exportEnv) seedInstrument(t *testing.T, platformID int64, name string) *instrument.Instrument {
	t.Helper()
	inst, err := instrument.NewInstrument(instrument.Props{
		NormalizedName: name,
		DisplayName:    name,
		PlatformID:     platformID,
		InstrumentType: "phenocam",
	})
	require.NoError(t, err)
	return env.instruments.AddInstrument(inst)
}

func TestExportStationHandler_AssemblesFullTree(t *testing.T) {
	// Arrange
	env := newExportEnv(t)
	first := env.seedPlatform(t, "SVB_FOR_BL01", "BL01")
	second := env.seedPlatform(t, "SVB_FOR_PL01", "PL01")
	cam := env.seedInstrument(t, second.ID(), "SVB_FOR_PL01_PHE01")
	env.seedInstrument(t, second.ID(), "SVB_FOR_PL01_PHE02")
	env.instruments.AddROI(cam.ID(), &instrument.ROI{
		InstrumentID: cam.ID(),
		Name:         "ROI_01",
		PolygonJSON:  `[[100,100],[400,100],[400,300]]`,
		Color:        "#FF0000",
	})
	env.instruments.AddROI(cam.ID(), &instrument.ROI{
		InstrumentID: cam.ID(),
		Name:         "ROI_02",
		PolygonJSON:  `[[0,0],[50,0],[50,50]]`,
		Color:        "#00FF00",
	})

	// Act
	response, err := env.handler.Handle(context.Background(), &export.ExportStationCommand{
		StationAcronym: "SVB",
	})

	// Assert
	require.NoError(t, err)
	pkg := response.(*export.ExportStationResponse).Package

	assert.Equal(t, "SVB", pkg.Export.StationAcronym)
	assert.Equal(t, 2, pkg.Export.PlatformCount)
	assert.Equal(t, 2, pkg.Export.InstrumentCount)
	assert.Equal(t, 2, pkg.Export.ROICount)
	assert.False(t, pkg.Export.ExportedAt.IsZero())
	_, err = uuid.Parse(pkg.Export.ExportID)
	assert.NoError(t, err)

	assert.Equal(t, "SVB", pkg.Station["acronym"])
	assert.Equal(t, "Svartberget", pkg.Station["display_name"])

	// Platforms ordered by normalized name, instruments nested under theirs
	require.Len(t, pkg.Platforms, 2)
	assert.Equal(t, first.NormalizedName(), pkg.Platforms[0].Platform["normalized_name"])
	assert.Empty(t, pkg.Platforms[0].Instruments)
	assert.Equal(t, second.NormalizedName(), pkg.Platforms[1].Platform["normalized_name"])
	require.Len(t, pkg.Platforms[1].Instruments, 2)

	camEntry := pkg.Platforms[1].Instruments[0]
	assert.Equal(t, "SVB_FOR_PL01_PHE01", camEntry.Instrument["normalized_name"])
	require.Len(t, camEntry.ROIs, 2)
	assert.Equal(t, "ROI_01", camEntry.ROIs[0]["name"])
	assert.Equal(t, "#FF0000", camEntry.ROIs[0]["color"])
	assert.Empty(t, pkg.Platforms[1].Instruments[1].ROIs)
}

func TestExportStationHandler_UnknownStation(t *testing.T) {
	// Arrange
	env := newExportEnv(t)

	// Act
	_, err := env.handler.Handle(context.Background(), &export.ExportStationCommand{
		StationAcronym: "XYZ",
	})

	// Assert
	var notFound *station.ErrStationNotFound
	require.ErrorAs(t, err, &notFound)
}

func TestStationPackage_EncodeFormats(t *testing.T) {
	// Arrange
	env := newExportEnv(t)
	p := env.seedPlatform(t, "SVB_FOR_PL01", "PL01")
	env.seedInstrument(t, p.ID(), "SVB_FOR_PL01_PHE01")

	response, err := env.handler.Handle(context.Background(), &export.ExportStationCommand{
		StationAcronym: "SVB",
	})
	require.NoError(t, err)
	pkg := response.(*export.ExportStationResponse).Package

	// Act
	jsonBytes, jsonErr := pkg.Encode(export.FormatJSON)
	yamlBytes, yamlErr := pkg.Encode(export.FormatYAML)

	// Assert
	require.NoError(t, jsonErr)
	assert.Contains(t, string(jsonBytes), `"export_id"`)
	assert.Contains(t, string(jsonBytes), `"SVB_FOR_PL01_PHE01"`)

	require.NoError(t, yamlErr)
	assert.Contains(t, string(yamlBytes), "station_acronym: SVB")
	assert.Contains(t, string(yamlBytes), "normalized_name: SVB_FOR_PL01_PHE01")
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected export.Format
		wantErr  bool
	}{
		{"", export.FormatJSON, false},
		{"json", export.FormatJSON, false},
		{"YAML", export.FormatYAML, false},
		{"yml", export.FormatYAML, false},
		{"xml", "", true},
	}

	for _, tc := range tests {
		format, err := export.ParseFormat(tc.input)
		if tc.wantErr {
			assert.Error(t, err, "input %q", tc.input)
			continue
		}
		require.NoError(t, err, "input %q", tc.input)
		assert.Equal(t, tc.expected, format, "input %q", tc.input)
	}
}
