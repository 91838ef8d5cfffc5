package importer_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitesspectral/spectral-go/internal/application/importer"
	"github.com/sitesspectral/spectral-go/internal/domain/shared"
	"github.com/sitesspectral/spectral-go/internal/domain/station"
	"github.com/sitesspectral/spectral-go/test/helpers"
)

type importPlatformsEnv struct {
	stations    *helpers.MockStationRepository
	platforms   *helpers.MockPlatformRepository
	instruments *helpers.MockInstrumentRepository
	handler     *importer.ImportPlatformsHandler
}

func newImportPlatformsEnv(t *testing.T) *importPlatformsEnv {
	t.Helper()
	registry, factory := helpers.NewCatalogRegistries()
	env := &importPlatformsEnv{
		stations:    helpers.NewMockStationRepository(),
		platforms:   helpers.NewMockPlatformRepository(),
		instruments: helpers.NewMockInstrumentRepository(),
	}
	env.handler = importer.NewImportPlatformsHandler(
		env.stations, env.platforms, env.instruments, registry, factory, nil)

	s, err := station.NewStation("SVB", "Svartberget")
	require.NoError(t, err)
	env.stations.AddStation(s)
	return env
}

func TestImportPlatformsHandler_ImportsRowsAndAccumulatesErrors(t *testing.T) {
	// Arrange
	env := newImportPlatformsEnv(t)
	rows := []shared.Row{
		{"platform_type": "fixed", "ecosystem_code": "FOR", "display_name": "Forest tower", "latitude": 64.256},
		{"platform_type": "fixed", "ecosystem_code": "FOR"},
		{"platform_type": "fixed", "ecosystem_code": "XXX"},
		{"ecosystem_code": "FOR"},
	}

	// Act
	response, err := env.handler.Handle(context.Background(), &importer.ImportPlatformsCommand{
		StationAcronym: "SVB",
		Rows:           rows,
		RatePerSecond:  500,
	})

	// Assert - valid rows sequence PL01, PL02; bad rows keep their position
	require.NoError(t, err)
	summary := response.(*importer.ImportPlatformsResponse).Summary

	assert.Equal(t, 4, summary.Total)
	require.Len(t, summary.Imported, 2)
	assert.Equal(t, 1, summary.Imported[0].Row)
	assert.Equal(t, "SVB_FOR_PL01", summary.Imported[0].NormalizedName)
	assert.Equal(t, 2, summary.Imported[1].Row)
	assert.Equal(t, "SVB_FOR_PL02", summary.Imported[1].NormalizedName)

	require.Len(t, summary.Errors, 2)
	assert.Contains(t, summary.Errors[0], "row 3:")
	assert.Contains(t, summary.Errors[1], "row 4: platform_type is required")

	persisted, err := env.platforms.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, persisted, 2)
}

func TestImportPlatformsHandler_UAVRowAutoProvisions(t *testing.T) {
	// Arrange
	env := newImportPlatformsEnv(t)
	rows := []shared.Row{
		{"platform_type": "uav", "vendor": "dji", "model": "m-3m"},
	}

	// Act
	response, err := env.handler.Handle(context.Background(), &importer.ImportPlatformsCommand{
		StationAcronym: "SVB",
		Rows:           rows,
	})

	// Assert
	require.NoError(t, err)
	summary := response.(*importer.ImportPlatformsResponse).Summary

	require.Len(t, summary.Imported, 1)
	assert.Equal(t, "SVB_DJI_M3M_UAV01", summary.Imported[0].NormalizedName)
	assert.Equal(t, 2, summary.Imported[0].AutoInstruments)

	p, err := env.platforms.FindByNormalizedName(context.Background(), "SVB_DJI_M3M_UAV01")
	require.NoError(t, err)
	count, err := env.instruments.CountByPlatform(context.Background(), p.ID())
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
}

func TestImportPlatformsHandler_DryRunWritesNothing(t *testing.T) {
	// Arrange
	env := newImportPlatformsEnv(t)
	rows := []shared.Row{
		{"platform_type": "fixed", "ecosystem_code": "FOR"},
		{"platform_type": "fixed", "ecosystem_code": "FOR"},
		{"platform_type": "uav", "vendor": "DJI", "model": "M3M"},
	}

	// Act
	response, err := env.handler.Handle(context.Background(), &importer.ImportPlatformsCommand{
		StationAcronym: "SVB",
		Rows:           rows,
		DryRun:         true,
	})

	// Assert - previews advance the sequence the way a real run would
	require.NoError(t, err)
	summary := response.(*importer.ImportPlatformsResponse).Summary

	assert.True(t, summary.DryRun)
	require.Len(t, summary.Imported, 3)
	assert.Equal(t, "SVB_FOR_PL01", summary.Imported[0].NormalizedName)
	assert.Equal(t, "SVB_FOR_PL02", summary.Imported[1].NormalizedName)
	assert.Equal(t, "SVB_DJI_M3M_UAV01", summary.Imported[2].NormalizedName)
	assert.Equal(t, 2, summary.Imported[2].AutoInstruments)

	persisted, err := env.platforms.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, persisted)
}

func TestImportPlatformsHandler_DryRunFlagsPinnedDuplicates(t *testing.T) {
	// Arrange
	env := newImportPlatformsEnv(t)
	rows := []shared.Row{
		{"platform_type": "fixed", "ecosystem_code": "FOR", "mount_type_code": "PL05"},
		{"platform_type": "fixed", "ecosystem_code": "FOR", "mount_type_code": "PL05"},
	}

	// Act
	response, err := env.handler.Handle(context.Background(), &importer.ImportPlatformsCommand{
		StationAcronym: "SVB",
		Rows:           rows,
		DryRun:         true,
	})

	// Assert
	require.NoError(t, err)
	summary := response.(*importer.ImportPlatformsResponse).Summary

	require.Len(t, summary.Imported, 1)
	assert.Equal(t, "SVB_FOR_PL05", summary.Imported[0].NormalizedName)
	require.Len(t, summary.Errors, 1)
	assert.Contains(t, summary.Errors[0], "row 2:")
	assert.Contains(t, summary.Errors[0], "SVB_FOR_PL05")
}

func TestImportPlatformsHandler_StopOnError(t *testing.T) {
	// Arrange
	env := newImportPlatformsEnv(t)
	rows := []shared.Row{
		{"platform_type": "fixed", "ecosystem_code": "FOR"},
		{"platform_type": "fixed", "ecosystem_code": "XXX"},
		{"platform_type": "fixed", "ecosystem_code": "MIR"},
	}

	// Act
	response, err := env.handler.Handle(context.Background(), &importer.ImportPlatformsCommand{
		StationAcronym: "SVB",
		Rows:           rows,
		StopOnError:    true,
	})

	// Assert - row 3 never runs
	require.NoError(t, err)
	summary := response.(*importer.ImportPlatformsResponse).Summary

	require.Len(t, summary.Imported, 1)
	assert.Equal(t, "SVB_FOR_PL01", summary.Imported[0].NormalizedName)
	require.Len(t, summary.Errors, 1)
	assert.Contains(t, summary.Errors[0], "row 2:")

	persisted, err := env.platforms.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, persisted, 1)
}

func TestImportPlatformsHandler_UnknownStation(t *testing.T) {
	// Arrange
	env := newImportPlatformsEnv(t)

	// Act
	_, err := env.handler.Handle(context.Background(), &importer.ImportPlatformsCommand{
		StationAcronym: "XYZ",
		Rows:           []shared.Row{{"platform_type": "fixed", "ecosystem_code": "FOR"}},
	})

	// Assert
	var notFound *station.ErrStationNotFound
	require.ErrorAs(t, err, &notFound)
}
