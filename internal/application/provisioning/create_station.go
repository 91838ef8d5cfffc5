package provisioning

import (
	"context"
	"errors"
	"fmt"

	"github.com/sitesspectral/spectral-go/internal/application/common"
	"github.com/sitesspectral/spectral-go/internal/domain/station"
)

// CreateStationCommand represents a command to register a research station
type CreateStationCommand struct {
	Acronym     string
	DisplayName string
	Description string
	Country     string
	Latitude    *float64
	Longitude   *float64
}

// CreateStationResponse represents the result of registering a station
type CreateStationResponse struct {
	Station *station.Station
}

// CreateStationHandler handles the CreateStation command
type CreateStationHandler struct {
	stations station.Repository
}

// NewCreateStationHandler creates a new CreateStationHandler
func NewCreateStationHandler(stations station.Repository) *CreateStationHandler {
	return &CreateStationHandler{stations: stations}
}

// Handle executes the CreateStation command
func (h *CreateStationHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*CreateStationCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *CreateStationCommand")
	}

	s, err := station.NewStation(cmd.Acronym, cmd.DisplayName)
	if err != nil {
		return nil, err
	}
	s.Description = cmd.Description
	s.Country = cmd.Country
	s.Latitude = cmd.Latitude
	s.Longitude = cmd.Longitude
	if err := s.Validate(); err != nil {
		return nil, err
	}

	existing, err := h.stations.FindByAcronym(ctx, s.Acronym)
	if err != nil {
		var notFound *station.ErrStationNotFound
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to check station acronym: %w", err)
		}
	}
	if existing != nil {
		return nil, &DuplicateNameError{Kind: "station", NormalizedName: s.Acronym}
	}

	if err := h.stations.Save(ctx, s); err != nil {
		return nil, fmt.Errorf("failed to save station: %w", err)
	}

	return &CreateStationResponse{Station: s}, nil
}
