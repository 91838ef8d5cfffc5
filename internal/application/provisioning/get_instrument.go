package provisioning

import (
	"context"
	"fmt"

	"github.com/sitesspectral/spectral-go/internal/application/common"
	"github.com/sitesspectral/spectral-go/internal/domain/instrument"
)

// GetInstrumentCommand represents a command to fetch one instrument, by ID
// or normalized name, with its regions of interest attached.
type GetInstrumentCommand struct {
	InstrumentID   int64
	NormalizedName string
}

// GetInstrumentResponse represents the result of fetching an instrument
type GetInstrumentResponse struct {
	Instrument *instrument.Instrument
}

// GetInstrumentHandler handles the GetInstrument command
type GetInstrumentHandler struct {
	instruments instrument.Repository
}

// NewGetInstrumentHandler creates a new GetInstrumentHandler
func NewGetInstrumentHandler(instruments instrument.Repository) *GetInstrumentHandler {
	return &GetInstrumentHandler{instruments: instruments}
}

// Handle executes the GetInstrument command
func (h *GetInstrumentHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*GetInstrumentCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *GetInstrumentCommand")
	}

	var inst *instrument.Instrument
	var err error
	switch {
	case cmd.InstrumentID > 0:
		inst, err = h.instruments.FindByID(ctx, cmd.InstrumentID)
	case cmd.NormalizedName != "":
		inst, err = h.instruments.FindByNormalizedName(ctx, cmd.NormalizedName)
	default:
		return nil, fmt.Errorf("instrument_id or normalized_name is required")
	}
	if err != nil {
		return nil, err
	}

	rois, err := h.instruments.FindROIs(ctx, inst.ID())
	if err != nil {
		return nil, fmt.Errorf("failed to load ROIs: %w", err)
	}
	inst.AttachROIs(rois)

	return &GetInstrumentResponse{Instrument: inst}, nil
}
