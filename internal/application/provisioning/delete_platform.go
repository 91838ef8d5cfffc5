package provisioning

import (
	"context"
	"fmt"

	"github.com/sitesspectral/spectral-go/internal/application/common"
	"github.com/sitesspectral/spectral-go/internal/domain/instrument"
	"github.com/sitesspectral/spectral-go/internal/domain/platform"
)

// DeletePlatformCommand represents a command to remove a platform. The
// platform is addressed by ID or, when ID is zero, by normalized name.
// Deletion is refused while instruments are still mounted.
type DeletePlatformCommand struct {
	PlatformID     int64
	NormalizedName string
}

// DeletePlatformResponse reports the removed platform's identity.
type DeletePlatformResponse struct {
	PlatformID     int64
	NormalizedName string
}

// DeletePlatformHandler handles the DeletePlatform command
type DeletePlatformHandler struct {
	platforms   platform.Repository
	instruments instrument.Repository
}

// NewDeletePlatformHandler creates a new DeletePlatformHandler
func NewDeletePlatformHandler(platforms platform.Repository, instruments instrument.Repository) *DeletePlatformHandler {
	return &DeletePlatformHandler{
		platforms:   platforms,
		instruments: instruments,
	}
}

// Handle executes the DeletePlatform command
func (h *DeletePlatformHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*DeletePlatformCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *DeletePlatformCommand")
	}

	p, err := h.resolvePlatform(ctx, cmd)
	if err != nil {
		return nil, err
	}

	count, err := h.instruments.CountByPlatform(ctx, p.ID())
	if err != nil {
		return nil, fmt.Errorf("failed to count instruments: %w", err)
	}
	if count > 0 {
		return nil, &PlatformHasInstrumentsError{PlatformID: p.ID(), Count: count}
	}

	if err := h.platforms.Delete(ctx, p.ID()); err != nil {
		return nil, fmt.Errorf("failed to delete platform: %w", err)
	}

	return &DeletePlatformResponse{
		PlatformID:     p.ID(),
		NormalizedName: p.NormalizedName(),
	}, nil
}

func (h *DeletePlatformHandler) resolvePlatform(ctx context.Context, cmd *DeletePlatformCommand) (*platform.Platform, error) {
	if cmd.PlatformID > 0 {
		return h.platforms.FindByID(ctx, cmd.PlatformID)
	}
	if cmd.NormalizedName != "" {
		return h.platforms.FindByNormalizedName(ctx, cmd.NormalizedName)
	}
	return nil, fmt.Errorf("platform_id or normalized_name is required")
}
