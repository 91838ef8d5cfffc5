package provisioning_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitesspectral/spectral-go/internal/application/provisioning"
	"github.com/sitesspectral/spectral-go/internal/domain/instrument"
	"github.com/sitesspectral/spectral-go/internal/domain/platform"
	"github.com/sitesspectral/spectral-go/internal/domain/station"
	"github.com/sitesspectral/spectral-go/test/helpers"
)

func platformWithStation(name string, stationID int64) (*platform.Platform, error) {
	return platform.NewPlatform(platform.Props{
		NormalizedName: name,
		DisplayName:    name,
		StationID:      stationID,
		StationAcronym: "ANS",
		PlatformType:   "fixed",
		EcosystemCode:  "LAK",
		MountTypeCode:  "PL01",
	})
}

func TestGetPlatformHandler_AttachesInstrumentsAndROIs(t *testing.T) {
	// Arrange
	platforms := helpers.NewMockPlatformRepository()
	instruments := helpers.NewMockInstrumentRepository()
	p := seedFixedPlatform(t, platforms, "SVB_FOR_PL01")
	inst := seedInstrument(t, instruments, p.ID(), "SVB_FOR_PL01_PHE01", "phenocam")
	instruments.AddROI(inst.ID(), &instrument.ROI{
		InstrumentID: inst.ID(),
		Name:         "ROI_01",
		PolygonJSON:  `{"type":"Polygon","coordinates":[[[0,0],[1,0],[1,1],[0,0]]]}`,
		Color:        "#FF0000",
	})
	handler := provisioning.NewGetPlatformHandler(platforms, instruments)

	// Act
	response, err := handler.Handle(context.Background(), &provisioning.GetPlatformCommand{
		NormalizedName:     "SVB_FOR_PL01",
		IncludeInstruments: true,
	})

	// Assert
	require.NoError(t, err)
	got := response.(*provisioning.GetPlatformResponse).Platform
	require.Len(t, got.Instruments(), 1)
	rois := got.Instruments()[0].ROIs()
	require.Len(t, rois, 1)
	assert.Equal(t, "ROI_01", rois[0].Name)
}

func TestGetPlatformHandler_WithoutInstruments(t *testing.T) {
	// Arrange
	platforms := helpers.NewMockPlatformRepository()
	instruments := helpers.NewMockInstrumentRepository()
	p := seedFixedPlatform(t, platforms, "SVB_FOR_PL01")
	seedInstrument(t, instruments, p.ID(), "SVB_FOR_PL01_PHE01", "phenocam")
	handler := provisioning.NewGetPlatformHandler(platforms, instruments)

	// Act
	response, err := handler.Handle(context.Background(), &provisioning.GetPlatformCommand{
		PlatformID: p.ID(),
	})

	// Assert
	require.NoError(t, err)
	assert.Empty(t, response.(*provisioning.GetPlatformResponse).Platform.Instruments())
}

func TestListPlatformsHandler_FiltersByStation(t *testing.T) {
	// Arrange
	stations := helpers.NewMockStationRepository()
	platforms := helpers.NewMockPlatformRepository()

	svb, err := station.NewStation("SVB", "Svartberget")
	require.NoError(t, err)
	stations.AddStation(svb)
	ans, err := station.NewStation("ANS", "Abisko")
	require.NoError(t, err)
	stations.AddStation(ans)

	seedFixedPlatform(t, platforms, "SVB_FOR_PL01")
	other, err := platformWithStation("ANS_LAK_PL01", ans.ID)
	require.NoError(t, err)
	platforms.AddPlatform(other)

	handler := provisioning.NewListPlatformsHandler(platforms, stations)

	// Act
	response, err := handler.Handle(context.Background(), &provisioning.ListPlatformsCommand{
		StationAcronym: "ANS",
	})

	// Assert
	require.NoError(t, err)
	result := response.(*provisioning.ListPlatformsResponse)
	require.Len(t, result.Platforms, 1)
	assert.Equal(t, "ANS_LAK_PL01", result.Platforms[0].NormalizedName())

	// Act - no filter lists everything
	response, err = handler.Handle(context.Background(), &provisioning.ListPlatformsCommand{})

	// Assert
	require.NoError(t, err)
	assert.Len(t, response.(*provisioning.ListPlatformsResponse).Platforms, 2)
}

func TestGetInstrumentHandler_AttachesROIs(t *testing.T) {
	// Arrange
	instruments := helpers.NewMockInstrumentRepository()
	inst := seedInstrument(t, instruments, 1, "SVB_FOR_PL01_PHE01", "phenocam")
	instruments.AddROI(inst.ID(), &instrument.ROI{InstrumentID: inst.ID(), Name: "ROI_01"})
	instruments.AddROI(inst.ID(), &instrument.ROI{InstrumentID: inst.ID(), Name: "ROI_02"})
	handler := provisioning.NewGetInstrumentHandler(instruments)

	// Act
	response, err := handler.Handle(context.Background(), &provisioning.GetInstrumentCommand{
		InstrumentID: inst.ID(),
	})

	// Assert
	require.NoError(t, err)
	got := response.(*provisioning.GetInstrumentResponse).Instrument
	assert.Len(t, got.ROIs(), 2)
}

func TestListInstrumentsHandler_ListsByPlatformName(t *testing.T) {
	// Arrange
	platforms := helpers.NewMockPlatformRepository()
	instruments := helpers.NewMockInstrumentRepository()
	p := seedFixedPlatform(t, platforms, "SVB_FOR_PL01")
	seedInstrument(t, instruments, p.ID(), "SVB_FOR_PL01_PHE01", "phenocam")
	seedInstrument(t, instruments, p.ID(), "SVB_FOR_PL01_MS01", "multispectral_sensor")
	seedInstrument(t, instruments, 999, "ANS_LAK_PL01_PHE01", "phenocam")
	handler := provisioning.NewListInstrumentsHandler(platforms, instruments)

	// Act
	response, err := handler.Handle(context.Background(), &provisioning.ListInstrumentsCommand{
		PlatformName: "SVB_FOR_PL01",
	})

	// Assert - ordered by normalized name, scoped to the platform
	require.NoError(t, err)
	result := response.(*provisioning.ListInstrumentsResponse)
	require.Len(t, result.Instruments, 2)
	assert.Equal(t, "SVB_FOR_PL01_MS01", result.Instruments[0].NormalizedName())
	assert.Equal(t, "SVB_FOR_PL01_PHE01", result.Instruments[1].NormalizedName())
}
