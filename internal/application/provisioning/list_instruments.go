package provisioning

import (
	"context"
	"fmt"

	"github.com/sitesspectral/spectral-go/internal/application/common"
	"github.com/sitesspectral/spectral-go/internal/domain/instrument"
	"github.com/sitesspectral/spectral-go/internal/domain/platform"
)

// ListInstrumentsCommand represents a command to list the instruments
// mounted on one platform.
type ListInstrumentsCommand struct {
	PlatformID   int64
	PlatformName string
}

// ListInstrumentsResponse represents the result of listing instruments
type ListInstrumentsResponse struct {
	Platform    *platform.Platform
	Instruments []*instrument.Instrument
}

// ListInstrumentsHandler handles the ListInstruments command
type ListInstrumentsHandler struct {
	platforms   platform.Repository
	instruments instrument.Repository
}

// NewListInstrumentsHandler creates a new ListInstrumentsHandler
func NewListInstrumentsHandler(platforms platform.Repository, instruments instrument.Repository) *ListInstrumentsHandler {
	return &ListInstrumentsHandler{
		platforms:   platforms,
		instruments: instruments,
	}
}

// Handle executes the ListInstruments command
func (h *ListInstrumentsHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*ListInstrumentsCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *ListInstrumentsCommand")
	}

	var p *platform.Platform
	var err error
	switch {
	case cmd.PlatformID > 0:
		p, err = h.platforms.FindByID(ctx, cmd.PlatformID)
	case cmd.PlatformName != "":
		p, err = h.platforms.FindByNormalizedName(ctx, cmd.PlatformName)
	default:
		return nil, fmt.Errorf("platform_id or platform_name is required")
	}
	if err != nil {
		return nil, err
	}

	instruments, err := h.instruments.FindByPlatform(ctx, p.ID())
	if err != nil {
		return nil, fmt.Errorf("failed to list instruments: %w", err)
	}

	return &ListInstrumentsResponse{
		Platform:    p,
		Instruments: instruments,
	}, nil
}
