package export

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sitesspectral/spectral-go/internal/application/common"
	"github.com/sitesspectral/spectral-go/internal/domain/instrument"
	"github.com/sitesspectral/spectral-go/internal/domain/platform"
	"github.com/sitesspectral/spectral-go/internal/domain/station"
)

// ExportStationCommand represents a command to export one station's full
// platform/instrument/ROI tree as a station package
type ExportStationCommand struct {
	StationAcronym string
}

// ExportStationResponse represents the result of exporting a station
type ExportStationResponse struct {
	Package *StationPackage
}

// ExportStationHandler handles the ExportStation command
type ExportStationHandler struct {
	stations    station.Repository
	platforms   platform.Repository
	instruments instrument.Repository
}

// NewExportStationHandler creates a new ExportStationHandler
func NewExportStationHandler(
	stations station.Repository,
	platforms platform.Repository,
	instruments instrument.Repository,
) *ExportStationHandler {
	return &ExportStationHandler{
		stations:    stations,
		platforms:   platforms,
		instruments: instruments,
	}
}

// Handle executes the ExportStation command
func (h *ExportStationHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*ExportStationCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *ExportStationCommand")
	}
	if cmd.StationAcronym == "" {
		return nil, fmt.Errorf("station acronym is required")
	}

	s, err := h.stations.FindByAcronym(ctx, cmd.StationAcronym)
	if err != nil {
		return nil, err
	}

	stationPlatforms, err := h.platforms.FindByStation(ctx, s.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load platforms for %s: %w", s.Acronym, err)
	}

	pkg := &StationPackage{
		Station:   s.ToJSON(),
		Platforms: make([]PlatformExport, 0, len(stationPlatforms)),
	}

	instrumentCount := 0
	roiCount := 0
	for _, p := range stationPlatforms {
		platformInstruments, err := h.instruments.FindByPlatform(ctx, p.ID())
		if err != nil {
			return nil, fmt.Errorf("failed to load instruments for %s: %w", p.NormalizedName(), err)
		}

		entry := PlatformExport{
			Platform:    p.ToJSON(),
			Instruments: make([]InstrumentExport, 0, len(platformInstruments)),
		}
		for _, inst := range platformInstruments {
			rois, err := h.instruments.FindROIs(ctx, inst.ID())
			if err != nil {
				return nil, fmt.Errorf("failed to load ROIs for %s: %w", inst.NormalizedName(), err)
			}

			instrumentEntry := InstrumentExport{Instrument: inst.ToJSON()}
			for _, roi := range rois {
				instrumentEntry.ROIs = append(instrumentEntry.ROIs, roi.ToJSON())
			}
			roiCount += len(rois)
			entry.Instruments = append(entry.Instruments, instrumentEntry)
		}

		instrumentCount += len(platformInstruments)
		pkg.Platforms = append(pkg.Platforms, entry)
	}

	pkg.Export = ExportMeta{
		ExportID:        uuid.New().String(),
		ExportedAt:      time.Now().UTC(),
		StationAcronym:  s.Acronym,
		PlatformCount:   len(stationPlatforms),
		InstrumentCount: instrumentCount,
		ROICount:        roiCount,
	}

	return &ExportStationResponse{Package: pkg}, nil
}
