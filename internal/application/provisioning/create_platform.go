package provisioning

import (
	"context"
	"fmt"

	"github.com/sitesspectral/spectral-go/internal/application/common"
	"github.com/sitesspectral/spectral-go/internal/domain/instrument"
	"github.com/sitesspectral/spectral-go/internal/domain/platform"
	"github.com/sitesspectral/spectral-go/internal/domain/station"
)

// defaultMountPrefixes maps each platform type to the mount-code prefix
// reserved when the caller does not pin a code. Fixed is the only type
// with multiple valid prefixes (PL/BL/GL), so its callers may override
// via CreatePlatformCommand.MountPrefix. Satellite names carry no mount
// segment and never reserve one.
var defaultMountPrefixes = map[string]string{
	platform.TypeFixed:  "PL",
	platform.TypeUAV:    "UAV",
	platform.TypeMobile: "MOB",
	platform.TypeUSV:    "USV",
	platform.TypeUUV:    "UUV",
}

// DefaultMountPrefix returns the mount-code family reserved for a
// platform type when the caller pins no code. Empty for satellite,
// whose names carry no mount segment.
func DefaultMountPrefix(typeCode string) string {
	return defaultMountPrefixes[typeCode]
}

// CreatePlatformCommand represents a command to provision a new platform
type CreatePlatformCommand struct {
	StationAcronym string
	PlatformType   string

	// MountPrefix selects the mount-code family to reserve from when
	// Data.MountTypeCode is empty (fixed platforms: PL, BL, or GL).
	MountPrefix string

	Data platform.Data
}

// CreatePlatformResponse represents the result of provisioning a platform
type CreatePlatformResponse struct {
	Platform *platform.Platform

	// Instruments holds the auto-created instruments, in catalog order.
	// Empty for types without auto-provisioning.
	Instruments []*instrument.Instrument
}

// CreatePlatformHandler handles the CreatePlatform command: strategy
// validation, mount-code reservation, name generation, the uniqueness
// guard, entity persistence, and auto-provisioning expansion.
type CreatePlatformHandler struct {
	stations    station.Repository
	platforms   platform.Repository
	instruments instrument.Repository
	registry    *platform.TypeRegistry
	factory     *instrument.Factory
}

// NewCreatePlatformHandler creates a new CreatePlatformHandler
func NewCreatePlatformHandler(
	stations station.Repository,
	platforms platform.Repository,
	instruments instrument.Repository,
	registry *platform.TypeRegistry,
	factory *instrument.Factory,
) *CreatePlatformHandler {
	return &CreatePlatformHandler{
		stations:    stations,
		platforms:   platforms,
		instruments: instruments,
		registry:    registry,
		factory:     factory,
	}
}

// Handle executes the CreatePlatform command
func (h *CreatePlatformHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*CreatePlatformCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *CreatePlatformCommand")
	}

	strategy, err := h.registry.Strategy(cmd.PlatformType)
	if err != nil {
		return nil, err
	}

	st, err := h.stations.FindByAcronym(ctx, cmd.StationAcronym)
	if err != nil {
		return nil, err
	}

	data := cmd.Data
	data.PlatformType = strategy.TypeCode()
	data.StationAcronym = st.Acronym

	// Reserve the next mount code when the caller did not pin one.
	if data.MountTypeCode == "" {
		if prefix := h.mountPrefix(strategy, cmd.MountPrefix); prefix != "" {
			ecosystem := ""
			if strategy.RequiresEcosystem() {
				ecosystem = data.EcosystemCode
			}
			code, err := h.platforms.GetNextMountTypeCode(ctx, st.ID, prefix, ecosystem)
			if err != nil {
				return nil, fmt.Errorf("failed to reserve mount type code: %w", err)
			}
			data.MountTypeCode = code
		}
	}

	result, err := h.registry.Validate(strategy.TypeCode(), data)
	if err != nil {
		return nil, err
	}
	if !result.Valid {
		return nil, &ValidationFailedError{Scope: strategy.TypeCode() + " platform", Result: result}
	}

	name, err := h.registry.GenerateNormalizedName(strategy.TypeCode(), data.NamingContext())
	if err != nil {
		return nil, err
	}

	exists, err := h.platforms.NormalizedNameExists(ctx, name, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to check platform name: %w", err)
	}
	if exists {
		return nil, &DuplicateNameError{Kind: "platform", NormalizedName: name}
	}

	displayName := data.DisplayName
	if displayName == "" {
		displayName = name
	}

	p, err := platform.NewPlatform(platform.Props{
		NormalizedName:    name,
		DisplayName:       displayName,
		StationID:         st.ID,
		StationAcronym:    st.Acronym,
		PlatformType:      strategy.TypeCode(),
		EcosystemCode:     data.EcosystemCode,
		MountTypeCode:     data.MountTypeCode,
		Latitude:          data.Latitude,
		Longitude:         data.Longitude,
		PlatformHeightM:   data.PlatformHeightM,
		Status:            data.Status,
		MountingStructure: data.MountingStructure,
		DeploymentDate:    data.DeploymentDate,
		Description:       data.Description,
	})
	if err != nil {
		return nil, err
	}

	if err := h.platforms.Save(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to save platform: %w", err)
	}

	var created []*instrument.Instrument
	if strategy.AutoCreatesInstruments() {
		autos, err := h.registry.AutoCreatedInstruments(strategy.TypeCode(), data)
		if err != nil {
			return nil, err
		}
		for _, auto := range autos {
			inst, err := h.factory.CreateFromAutoData(auto, p.ID())
			if err != nil {
				return nil, fmt.Errorf("failed to build auto-created instrument %s: %w", auto.NormalizedName, err)
			}
			if err := h.instruments.Save(ctx, inst); err != nil {
				return nil, fmt.Errorf("failed to save auto-created instrument %s: %w", auto.NormalizedName, err)
			}
			created = append(created, inst)
		}
	}
	p.AttachInstruments(created)

	return &CreatePlatformResponse{Platform: p, Instruments: created}, nil
}

func (h *CreatePlatformHandler) mountPrefix(strategy platform.TypeStrategy, override string) string {
	if strategy.TypeCode() == platform.TypeSatellite {
		return ""
	}
	if override != "" {
		return override
	}
	return defaultMountPrefixes[strategy.TypeCode()]
}
