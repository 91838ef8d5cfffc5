package provisioning

import (
	"context"
	"fmt"

	"github.com/sitesspectral/spectral-go/internal/application/common"
	"github.com/sitesspectral/spectral-go/internal/domain/platform"
)

// UpdatePlatformCommand represents a command to change a platform's
// mutable fields. The platform is addressed by ID or, when ID is zero,
// by normalized name. Naming-grammar fields left empty in Data keep
// their current values; supplying different ones is rejected because
// the normalized name never changes after creation.
type UpdatePlatformCommand struct {
	PlatformID     int64
	NormalizedName string
	Data           platform.Data
}

// UpdatePlatformResponse represents the result of updating a platform
type UpdatePlatformResponse struct {
	Platform *platform.Platform
}

// UpdatePlatformHandler handles the UpdatePlatform command
type UpdatePlatformHandler struct {
	platforms platform.Repository
	registry  *platform.TypeRegistry
}

// NewUpdatePlatformHandler creates a new UpdatePlatformHandler
func NewUpdatePlatformHandler(platforms platform.Repository, registry *platform.TypeRegistry) *UpdatePlatformHandler {
	return &UpdatePlatformHandler{
		platforms: platforms,
		registry:  registry,
	}
}

// Handle executes the UpdatePlatform command
func (h *UpdatePlatformHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*UpdatePlatformCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *UpdatePlatformCommand")
	}

	p, err := h.resolvePlatform(ctx, cmd)
	if err != nil {
		return nil, err
	}

	merged := mergeUpdateData(p, cmd.Data)

	result, err := h.registry.Validate(p.PlatformType(), merged)
	if err != nil {
		return nil, err
	}
	if !result.Valid {
		return nil, &ValidationFailedError{
			Scope:  p.PlatformType() + " platform",
			Result: result,
		}
	}

	name, err := h.registry.GenerateNormalizedName(p.PlatformType(), merged.NamingContext())
	if err != nil {
		return nil, err
	}
	if name != p.NormalizedName() {
		return nil, &ImmutableNameError{NormalizedName: p.NormalizedName(), Attempted: name}
	}

	p.ApplyData(merged)

	if err := h.platforms.Save(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to save platform: %w", err)
	}

	return &UpdatePlatformResponse{Platform: p}, nil
}

func (h *UpdatePlatformHandler) resolvePlatform(ctx context.Context, cmd *UpdatePlatformCommand) (*platform.Platform, error) {
	if cmd.PlatformID > 0 {
		return h.platforms.FindByID(ctx, cmd.PlatformID)
	}
	if cmd.NormalizedName != "" {
		return h.platforms.FindByNormalizedName(ctx, cmd.NormalizedName)
	}
	return nil, fmt.Errorf("platform_id or normalized_name is required")
}

// mergeUpdateData overlays submitted data on the platform's current state
// so the strategy validates a complete picture. Grammar fields the entity
// stores come from the entity; identity tokens it does not store (vendor,
// model, agency, satellite, sensor, carrier) are read back from the
// normalized name.
func mergeUpdateData(p *platform.Platform, data platform.Data) platform.Data {
	data.PlatformType = p.PlatformType()
	data.StationAcronym = p.StationAcronym()
	if data.EcosystemCode == "" {
		data.EcosystemCode = p.EcosystemCode()
	}
	if data.MountTypeCode == "" {
		data.MountTypeCode = p.MountTypeCode()
	}

	identity, ok := platform.IdentityFromName(p.PlatformType(), p.NormalizedName())
	if !ok {
		return data
	}
	if data.Vendor == "" {
		data.Vendor = identity.Vendor
	}
	if data.Model == "" {
		data.Model = identity.Model
	}
	if data.Agency == "" {
		data.Agency = identity.Agency
	}
	if data.Satellite == "" {
		data.Satellite = identity.Satellite
	}
	if data.Sensor == "" {
		data.Sensor = identity.Sensor
	}
	if data.CarrierType == "" {
		data.CarrierType = identity.CarrierType
	}
	return data
}
