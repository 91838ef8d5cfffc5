package provisioning

import (
	"context"
	"fmt"

	"github.com/sitesspectral/spectral-go/internal/application/common"
	"github.com/sitesspectral/spectral-go/internal/domain/instrument"
)

// DeleteInstrumentCommand represents a command to remove an instrument,
// addressed by ID or normalized name.
type DeleteInstrumentCommand struct {
	InstrumentID   int64
	NormalizedName string
}

// DeleteInstrumentResponse reports the removed instrument's identity.
type DeleteInstrumentResponse struct {
	InstrumentID   int64
	NormalizedName string
}

// DeleteInstrumentHandler handles the DeleteInstrument command
type DeleteInstrumentHandler struct {
	instruments instrument.Repository
}

// NewDeleteInstrumentHandler creates a new DeleteInstrumentHandler
func NewDeleteInstrumentHandler(instruments instrument.Repository) *DeleteInstrumentHandler {
	return &DeleteInstrumentHandler{instruments: instruments}
}

// Handle executes the DeleteInstrument command
func (h *DeleteInstrumentHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*DeleteInstrumentCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *DeleteInstrumentCommand")
	}

	inst, err := h.resolveInstrument(ctx, cmd)
	if err != nil {
		return nil, err
	}

	if err := h.instruments.Delete(ctx, inst.ID()); err != nil {
		return nil, fmt.Errorf("failed to delete instrument: %w", err)
	}

	return &DeleteInstrumentResponse{
		InstrumentID:   inst.ID(),
		NormalizedName: inst.NormalizedName(),
	}, nil
}

func (h *DeleteInstrumentHandler) resolveInstrument(ctx context.Context, cmd *DeleteInstrumentCommand) (*instrument.Instrument, error) {
	if cmd.InstrumentID > 0 {
		return h.instruments.FindByID(ctx, cmd.InstrumentID)
	}
	if cmd.NormalizedName != "" {
		return h.instruments.FindByNormalizedName(ctx, cmd.NormalizedName)
	}
	return nil, fmt.Errorf("instrument_id or normalized_name is required")
}
