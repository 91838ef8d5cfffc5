package importer_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitesspectral/spectral-go/internal/application/importer"
	"github.com/sitesspectral/spectral-go/internal/domain/instrument"
	"github.com/sitesspectral/spectral-go/internal/domain/platform"
	"github.com/sitesspectral/spectral-go/internal/domain/shared"
	"github.com/sitesspectral/spectral-go/internal/domain/station"
	"github.com/sitesspectral/spectral-go/test/helpers"
)

type importInstrumentsEnv struct {
	stations    *helpers.MockStationRepository
	platforms   *helpers.MockPlatformRepository
	instruments *helpers.MockInstrumentRepository
	handler     *importer.ImportInstrumentsHandler
}

func newImportInstrumentsEnv(t *testing.T) *importInstrumentsEnv {
	t.Helper()
	_, factory := helpers.NewCatalogRegistries()
	env := &importInstrumentsEnv{
		stations:    helpers.NewMockStationRepository(),
		platforms:   helpers.NewMockPlatformRepository(),
		instruments: helpers.NewMockInstrumentRepository(),
	}
	env.handler = importer.NewImportInstrumentsHandler(
		env.stations, env.platforms, env.instruments, factory, nil)

	for _, acronym := range []string{"SVB", "ANS"} {
		s, err := station.NewStation(acronym, acronym+" Station")
		require.NoError(t, err)
		env.stations.AddStation(s)
	}
	return env
}

func (env *importInstrumentsEnv) seedPlatform(t *testing.T, stationID int64, acronym, name string) *platform.Platform {
	t.Helper()
	p, err := platform.NewPlatform(platform.Props{
		NormalizedName: name,
		DisplayName:    name,
		StationID:      stationID,
		StationAcronym: acronym,
		PlatformType:   "fixed",
		EcosystemCode:  "FOR",
		MountTypeCode:  "PL01",
	})
	require.NoError(t, err)
	return env.platforms.AddPlatform(p)
}

func TestImportInstrumentsHandler_ImportsRowsScopedToStation(t *testing.T) {
	// Arrange
	env := newImportInstrumentsEnv(t)
	home := env.seedPlatform(t, 1, "SVB", "SVB_FOR_PL01")
	env.seedPlatform(t, 2, "ANS", "ANS_FOR_PL01")

	rows := []shared.Row{
		{"platform_normalized_name": "SVB_FOR_PL01", "instrument_type": "phenocam", "description": "west view"},
		{"platform": "SVB_FOR_PL01", "instrument_type": "phenocam"},
		{"platform_normalized_name": "ANS_FOR_PL01", "instrument_type": "phenocam"},
		{"instrument_type": "phenocam"},
	}

	// Act
	response, err := env.handler.Handle(context.Background(), &importer.ImportInstrumentsCommand{
		StationAcronym: "SVB",
		Rows:           rows,
		RatePerSecond:  500,
	})

	// Assert
	require.NoError(t, err)
	summary := response.(*importer.ImportInstrumentsResponse).Summary

	assert.Equal(t, 4, summary.Total)
	require.Len(t, summary.Imported, 2)
	assert.Equal(t, "SVB_FOR_PL01_PHE01", summary.Imported[0].NormalizedName)
	assert.Equal(t, "SVB_FOR_PL01_PHE02", summary.Imported[1].NormalizedName)

	require.Len(t, summary.Errors, 2)
	assert.Contains(t, summary.Errors[0], "row 3: platform ANS_FOR_PL01 does not belong to station SVB")
	assert.Contains(t, summary.Errors[1], "row 4: platform_normalized_name is required")

	count, err := env.instruments.CountByPlatform(context.Background(), home.ID())
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)

	first, err := env.instruments.FindByNormalizedName(context.Background(), "SVB_FOR_PL01_PHE01")
	require.NoError(t, err)
	assert.Equal(t, "west view", first.Description())
}

func TestImportInstrumentsHandler_DryRunPreviewsSequence(t *testing.T) {
	// Arrange
	env := newImportInstrumentsEnv(t)
	p := env.seedPlatform(t, 1, "SVB", "SVB_FOR_PL01")

	existing, err := instrument.NewInstrument(instrument.Props{
		NormalizedName: "SVB_FOR_PL01_PHE01",
		DisplayName:    "Phenocam",
		PlatformID:     p.ID(),
		InstrumentType: "phenocam",
	})
	require.NoError(t, err)
	env.instruments.AddInstrument(existing)

	rows := []shared.Row{
		{"platform_normalized_name": "SVB_FOR_PL01", "instrument_type": "phenocam"},
		{"platform_normalized_name": "SVB_FOR_PL01", "instrument_type": "phenocam"},
		{"platform_normalized_name": "SVB_FOR_PL01", "instrument_type": "phenocam",
			"specifications": map[string]interface{}{"image_format": "GIF"}},
	}

	// Act
	response, err := env.handler.Handle(context.Background(), &importer.ImportInstrumentsCommand{
		StationAcronym: "SVB",
		Rows:           rows,
		DryRun:         true,
	})

	// Assert - previews continue past the persisted PHE01 without writing
	require.NoError(t, err)
	summary := response.(*importer.ImportInstrumentsResponse).Summary

	assert.True(t, summary.DryRun)
	require.Len(t, summary.Imported, 2)
	assert.Equal(t, "SVB_FOR_PL01_PHE02", summary.Imported[0].NormalizedName)
	assert.Equal(t, "SVB_FOR_PL01_PHE03", summary.Imported[1].NormalizedName)

	require.Len(t, summary.Errors, 1)
	assert.Contains(t, summary.Errors[0], "row 3:")
	assert.Contains(t, summary.Errors[0], "image_format")

	count, err := env.instruments.CountByPlatform(context.Background(), p.ID())
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestImportInstrumentsHandler_RejectsIncompatibleType(t *testing.T) {
	// Arrange
	env := newImportInstrumentsEnv(t)
	env.seedPlatform(t, 1, "SVB", "SVB_FOR_PL01")

	rows := []shared.Row{
		{"platform_normalized_name": "SVB_FOR_PL01", "instrument_type": "ctd_profiler"},
	}

	// Act
	response, err := env.handler.Handle(context.Background(), &importer.ImportInstrumentsCommand{
		StationAcronym: "SVB",
		Rows:           rows,
	})

	// Assert
	require.NoError(t, err)
	summary := response.(*importer.ImportInstrumentsResponse).Summary
	assert.Empty(t, summary.Imported)
	require.Len(t, summary.Errors, 1)
	assert.Contains(t, summary.Errors[0], "row 1:")
	assert.Contains(t, summary.Errors[0], "ctd_profiler")
}
