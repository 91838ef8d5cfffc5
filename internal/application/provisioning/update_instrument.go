package provisioning

import (
	"context"
	"fmt"

	"github.com/sitesspectral/spectral-go/internal/application/common"
	"github.com/sitesspectral/spectral-go/internal/domain/instrument"
)

// UpdateInstrumentCommand represents a command to change an instrument's
// mutable fields. The instrument is addressed by ID or normalized name.
// Specification values are merged key by key after schema validation of
// the merged map; empty status strings leave the current value untouched.
type UpdateInstrumentCommand struct {
	InstrumentID   int64
	NormalizedName string

	Status            string
	MeasurementStatus string
	Specifications    map[string]interface{}
	MaintenanceNotes  *string
}

// UpdateInstrumentResponse represents the result of updating an instrument
type UpdateInstrumentResponse struct {
	Instrument *instrument.Instrument
}

// UpdateInstrumentHandler handles the UpdateInstrument command
type UpdateInstrumentHandler struct {
	instruments instrument.Repository
	factory     *instrument.Factory
}

// NewUpdateInstrumentHandler creates a new UpdateInstrumentHandler
func NewUpdateInstrumentHandler(instruments instrument.Repository, factory *instrument.Factory) *UpdateInstrumentHandler {
	return &UpdateInstrumentHandler{
		instruments: instruments,
		factory:     factory,
	}
}

// Handle executes the UpdateInstrument command
func (h *UpdateInstrumentHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*UpdateInstrumentCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *UpdateInstrumentCommand")
	}

	inst, err := h.resolveInstrument(ctx, cmd)
	if err != nil {
		return nil, err
	}

	if len(cmd.Specifications) > 0 {
		merged := inst.Specifications()
		for key, value := range cmd.Specifications {
			merged[key] = value
		}
		result := h.factory.Registry().ValidateSpecifications(inst.InstrumentType(), merged)
		if !result.Valid {
			return nil, &ValidationFailedError{
				Scope:  inst.InstrumentType() + " specifications",
				Result: result,
			}
		}
		for key, value := range cmd.Specifications {
			inst.SetSpecification(key, value)
		}
	}

	if cmd.Status != "" {
		if err := inst.SetStatus(instrument.Status(cmd.Status)); err != nil {
			return nil, err
		}
	}
	if cmd.MeasurementStatus != "" {
		if err := inst.SetMeasurementStatus(instrument.MeasurementStatus(cmd.MeasurementStatus)); err != nil {
			return nil, err
		}
	}
	if cmd.MaintenanceNotes != nil {
		inst.SetMaintenanceNotes(*cmd.MaintenanceNotes)
	}

	if err := h.instruments.Save(ctx, inst); err != nil {
		return nil, fmt.Errorf("failed to save instrument: %w", err)
	}

	return &UpdateInstrumentResponse{Instrument: inst}, nil
}

func (h *UpdateInstrumentHandler) resolveInstrument(ctx context.Context, cmd *UpdateInstrumentCommand) (*instrument.Instrument, error) {
	if cmd.InstrumentID > 0 {
		return h.instruments.FindByID(ctx, cmd.InstrumentID)
	}
	if cmd.NormalizedName != "" {
		return h.instruments.FindByNormalizedName(ctx, cmd.NormalizedName)
	}
	return nil, fmt.Errorf("instrument_id or normalized_name is required")
}
