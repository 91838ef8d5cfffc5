package provisioning

import (
	"context"
	"fmt"

	"github.com/sitesspectral/spectral-go/internal/application/common"
	"github.com/sitesspectral/spectral-go/internal/domain/station"
)

// ListStationsCommand represents a command to list all stations
type ListStationsCommand struct {
	// No parameters, lists all stations
}

// ListStationsResponse represents the result of listing stations
type ListStationsResponse struct {
	Stations []*station.Station
}

// ListStationsHandler handles the ListStations command
type ListStationsHandler struct {
	stations station.Repository
}

// NewListStationsHandler creates a new ListStationsHandler
func NewListStationsHandler(stations station.Repository) *ListStationsHandler {
	return &ListStationsHandler{stations: stations}
}

// Handle executes the ListStations command
func (h *ListStationsHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	_, ok := request.(*ListStationsCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *ListStationsCommand")
	}

	stations, err := h.stations.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list stations: %w", err)
	}

	return &ListStationsResponse{Stations: stations}, nil
}
