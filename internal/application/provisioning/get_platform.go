package provisioning

import (
	"context"
	"fmt"

	"github.com/sitesspectral/spectral-go/internal/application/common"
	"github.com/sitesspectral/spectral-go/internal/domain/instrument"
	"github.com/sitesspectral/spectral-go/internal/domain/platform"
)

// GetPlatformCommand represents a command to fetch one platform, by ID or
// normalized name, optionally with its mounted instruments and their ROIs.
type GetPlatformCommand struct {
	PlatformID         int64
	NormalizedName     string
	IncludeInstruments bool
}

// GetPlatformResponse represents the result of fetching a platform
type GetPlatformResponse struct {
	Platform *platform.Platform
}

// GetPlatformHandler handles the GetPlatform command
type GetPlatformHandler struct {
	platforms   platform.Repository
	instruments instrument.Repository
}

// NewGetPlatformHandler creates a new GetPlatformHandler
func NewGetPlatformHandler(platforms platform.Repository, instruments instrument.Repository) *GetPlatformHandler {
	return &GetPlatformHandler{
		platforms:   platforms,
		instruments: instruments,
	}
}

// Handle executes the GetPlatform command
func (h *GetPlatformHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*GetPlatformCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *GetPlatformCommand")
	}

	var p *platform.Platform
	var err error
	switch {
	case cmd.PlatformID > 0:
		p, err = h.platforms.FindByID(ctx, cmd.PlatformID)
	case cmd.NormalizedName != "":
		p, err = h.platforms.FindByNormalizedName(ctx, cmd.NormalizedName)
	default:
		return nil, fmt.Errorf("platform_id or normalized_name is required")
	}
	if err != nil {
		return nil, err
	}

	if cmd.IncludeInstruments {
		instruments, err := h.instruments.FindByPlatform(ctx, p.ID())
		if err != nil {
			return nil, fmt.Errorf("failed to load instruments: %w", err)
		}
		for _, inst := range instruments {
			rois, err := h.instruments.FindROIs(ctx, inst.ID())
			if err != nil {
				return nil, fmt.Errorf("failed to load ROIs for %s: %w", inst.NormalizedName(), err)
			}
			inst.AttachROIs(rois)
		}
		p.AttachInstruments(instruments)
	}

	return &GetPlatformResponse{Platform: p}, nil
}
