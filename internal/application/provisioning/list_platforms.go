package provisioning

import (
	"context"
	"fmt"

	"github.com/sitesspectral/spectral-go/internal/application/common"
	"github.com/sitesspectral/spectral-go/internal/domain/platform"
	"github.com/sitesspectral/spectral-go/internal/domain/station"
)

// ListPlatformsCommand represents a command to list platforms, optionally
// restricted to one station.
type ListPlatformsCommand struct {
	StationAcronym string
}

// ListPlatformsResponse represents the result of listing platforms
type ListPlatformsResponse struct {
	Platforms []*platform.Platform
}

// ListPlatformsHandler handles the ListPlatforms command
type ListPlatformsHandler struct {
	platforms platform.Repository
	stations  station.Repository
}

// NewListPlatformsHandler creates a new ListPlatformsHandler
func NewListPlatformsHandler(platforms platform.Repository, stations station.Repository) *ListPlatformsHandler {
	return &ListPlatformsHandler{
		platforms: platforms,
		stations:  stations,
	}
}

// Handle executes the ListPlatforms command
func (h *ListPlatformsHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*ListPlatformsCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *ListPlatformsCommand")
	}

	if cmd.StationAcronym == "" {
		platforms, err := h.platforms.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list platforms: %w", err)
		}
		return &ListPlatformsResponse{Platforms: platforms}, nil
	}

	s, err := h.stations.FindByAcronym(ctx, cmd.StationAcronym)
	if err != nil {
		return nil, err
	}
	platforms, err := h.platforms.FindByStation(ctx, s.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list platforms: %w", err)
	}
	return &ListPlatformsResponse{Platforms: platforms}, nil
}
