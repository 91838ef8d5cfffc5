package provisioning

import (
	"context"
	"fmt"

	"github.com/sitesspectral/spectral-go/internal/application/common"
	"github.com/sitesspectral/spectral-go/internal/domain/instrument"
	"github.com/sitesspectral/spectral-go/internal/domain/platform"
)

// CreateInstrumentCommand represents a command to mount an instrument on
// an existing platform. The platform is addressed by ID or, when ID is
// zero, by normalized name.
type CreateInstrumentCommand struct {
	PlatformID   int64
	PlatformName string

	InstrumentType string
	DisplayName    string
	Specifications map[string]interface{}

	Description       string
	InstallationNotes string
	DeploymentDate    string
	CalibrationDate   string
}

// CreateInstrumentResponse represents the result of mounting an instrument
type CreateInstrumentResponse struct {
	Instrument *instrument.Instrument
}

// CreateInstrumentHandler handles the CreateInstrument command
type CreateInstrumentHandler struct {
	platforms   platform.Repository
	instruments instrument.Repository
	factory     *instrument.Factory
}

// NewCreateInstrumentHandler creates a new CreateInstrumentHandler
func NewCreateInstrumentHandler(
	platforms platform.Repository,
	instruments instrument.Repository,
	factory *instrument.Factory,
) *CreateInstrumentHandler {
	return &CreateInstrumentHandler{
		platforms:   platforms,
		instruments: instruments,
		factory:     factory,
	}
}

// Handle executes the CreateInstrument command
func (h *CreateInstrumentHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*CreateInstrumentCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *CreateInstrumentCommand")
	}

	p, err := h.resolvePlatform(ctx, cmd)
	if err != nil {
		return nil, err
	}

	registry := h.factory.Registry()
	def, found := registry.Get(cmd.InstrumentType)
	if !found {
		return nil, &instrument.ErrUnknownInstrumentType{
			InstrumentType: cmd.InstrumentType,
			Known:          registry.Types(),
		}
	}
	if !registry.IsCompatibleWithPlatform(cmd.InstrumentType, p.PlatformType()) {
		return nil, &IncompatibleInstrumentError{
			InstrumentType: cmd.InstrumentType,
			PlatformType:   p.PlatformType(),
		}
	}

	number, err := h.instruments.GetNextInstrumentNumber(ctx, p.ID(), def.ShortCode)
	if err != nil {
		return nil, fmt.Errorf("failed to reserve instrument number: %w", err)
	}
	name := h.factory.GenerateNormalizedName(p.NormalizedName(), cmd.InstrumentType, number)

	exists, err := h.instruments.NormalizedNameExists(ctx, name, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to check instrument name: %w", err)
	}
	if exists {
		return nil, &DuplicateNameError{Kind: "instrument", NormalizedName: name}
	}

	displayName := cmd.DisplayName
	if displayName == "" {
		displayName = def.DisplayName
	}

	inst, err := h.factory.Create(instrument.Props{
		NormalizedName:    name,
		DisplayName:       displayName,
		PlatformID:        p.ID(),
		InstrumentType:    cmd.InstrumentType,
		InstrumentNumber:  fmt.Sprintf("%02d", number),
		Specifications:    cmd.Specifications,
		Description:       cmd.Description,
		InstallationNotes: cmd.InstallationNotes,
		DeploymentDate:    cmd.DeploymentDate,
		CalibrationDate:   cmd.CalibrationDate,
	})
	if err != nil {
		return nil, err
	}

	if err := h.instruments.Save(ctx, inst); err != nil {
		return nil, fmt.Errorf("failed to save instrument: %w", err)
	}

	return &CreateInstrumentResponse{Instrument: inst}, nil
}

func (h *CreateInstrumentHandler) resolvePlatform(ctx context.Context, cmd *CreateInstrumentCommand) (*platform.Platform, error) {
	if cmd.PlatformID > 0 {
		return h.platforms.FindByID(ctx, cmd.PlatformID)
	}
	if cmd.PlatformName != "" {
		return h.platforms.FindByNormalizedName(ctx, cmd.PlatformName)
	}
	return nil, fmt.Errorf("platform_id or platform_name is required")
}
