package importer

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/sitesspectral/spectral-go/internal/application/common"
	"github.com/sitesspectral/spectral-go/internal/application/provisioning"
	"github.com/sitesspectral/spectral-go/internal/domain/instrument"
	"github.com/sitesspectral/spectral-go/internal/domain/platform"
	"github.com/sitesspectral/spectral-go/internal/domain/shared"
	"github.com/sitesspectral/spectral-go/internal/domain/station"
)

// ImportPlatformsCommand represents a command to bulk-provision platforms
// at one station from parsed file rows
type ImportPlatformsCommand struct {
	StationAcronym string
	Rows           []shared.Row

	// DryRun validates every row and previews the names that would be
	// assigned without writing anything.
	DryRun bool

	// RatePerSecond paces writes between saves. Zero means unlimited.
	RatePerSecond float64

	// Burst is the write limiter's burst size (minimum 1).
	Burst int

	// StopOnError aborts the run at the first failing row instead of
	// accumulating its error and continuing.
	StopOnError bool
}

// ImportPlatformsResponse represents the result of a platform import run
type ImportPlatformsResponse struct {
	Summary ImportSummary
}

// ImportPlatformsHandler handles the ImportPlatforms command. Rows on the
// write path go through the CreatePlatform pipeline one by one; dry runs
// replay the same validation and naming steps against current state.
type ImportPlatformsHandler struct {
	create    *provisioning.CreatePlatformHandler
	stations  station.Repository
	platforms platform.Repository
	registry  *platform.TypeRegistry
	logger    *zap.Logger
}

// NewImportPlatformsHandler creates a new ImportPlatformsHandler
func NewImportPlatformsHandler(
	stations station.Repository,
	platforms platform.Repository,
	instruments instrument.Repository,
	registry *platform.TypeRegistry,
	factory *instrument.Factory,
	logger *zap.Logger,
) *ImportPlatformsHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ImportPlatformsHandler{
		create:    provisioning.NewCreatePlatformHandler(stations, platforms, instruments, registry, factory),
		stations:  stations,
		platforms: platforms,
		registry:  registry,
		logger:    logger,
	}
}

// Handle executes the ImportPlatforms command
func (h *ImportPlatformsHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*ImportPlatformsCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *ImportPlatformsCommand")
	}

	st, err := h.stations.FindByAcronym(ctx, cmd.StationAcronym)
	if err != nil {
		return nil, err
	}

	summary := ImportSummary{DryRun: cmd.DryRun, Total: len(cmd.Rows)}
	limiter := newWriteLimiter(cmd.RatePerSecond, cmd.Burst)
	preview := newNamePreview()

	for i, row := range cmd.Rows {
		rowNumber := i + 1
		data := platform.DataFromSubmission(row)
		if data.PlatformType == "" {
			summary.addError(rowNumber, fmt.Errorf("platform_type is required"))
			if cmd.StopOnError {
				break
			}
			continue
		}

		var outcome RowOutcome
		if cmd.DryRun {
			outcome, err = h.previewRow(ctx, st, data, preview)
		} else {
			outcome, err = h.importRow(ctx, st, data, limiter)
		}
		if err != nil {
			summary.addError(rowNumber, err)
			if cmd.StopOnError {
				break
			}
			continue
		}
		outcome.Row = rowNumber
		summary.Imported = append(summary.Imported, outcome)

		h.logger.Info("imported platform",
			zap.String("station", st.Acronym),
			zap.Int("row", rowNumber),
			zap.String("normalized_name", outcome.NormalizedName),
			zap.Int("auto_instruments", outcome.AutoInstruments),
			zap.Bool("dry_run", cmd.DryRun))
	}

	return &ImportPlatformsResponse{Summary: summary}, nil
}

func (h *ImportPlatformsHandler) importRow(ctx context.Context, st *station.Station, data platform.Data, limiter *writeLimiter) (RowOutcome, error) {
	if err := limiter.Wait(ctx); err != nil {
		return RowOutcome{}, err
	}

	response, err := h.create.Handle(ctx, &provisioning.CreatePlatformCommand{
		StationAcronym: st.Acronym,
		PlatformType:   data.PlatformType,
		Data:           data,
	})
	if err != nil {
		return RowOutcome{}, err
	}

	created := response.(*provisioning.CreatePlatformResponse)
	return RowOutcome{
		NormalizedName:  created.Platform.NormalizedName(),
		AutoInstruments: len(created.Instruments),
	}, nil
}

// previewRow mirrors the CreatePlatform pipeline up to the save: strategy
// validation, mount-code reservation, name generation, and the uniqueness
// guard, with sequence codes advanced past earlier rows of this run.
func (h *ImportPlatformsHandler) previewRow(ctx context.Context, st *station.Station, data platform.Data, preview *namePreview) (RowOutcome, error) {
	strategy, err := h.registry.Strategy(data.PlatformType)
	if err != nil {
		return RowOutcome{}, err
	}

	data.PlatformType = strategy.TypeCode()
	data.StationAcronym = st.Acronym

	if data.MountTypeCode == "" {
		if prefix := provisioning.DefaultMountPrefix(strategy.TypeCode()); prefix != "" {
			ecosystem := ""
			if strategy.RequiresEcosystem() {
				ecosystem = data.EcosystemCode
			}
			code, err := h.platforms.GetNextMountTypeCode(ctx, st.ID, prefix, ecosystem)
			if err != nil {
				return RowOutcome{}, fmt.Errorf("failed to preview mount type code: %w", err)
			}
			data.MountTypeCode = preview.bumpMountCode(st.ID, prefix, ecosystem, code)
		}
	}

	result, err := h.registry.Validate(strategy.TypeCode(), data)
	if err != nil {
		return RowOutcome{}, err
	}
	if !result.Valid {
		return RowOutcome{}, &provisioning.ValidationFailedError{Scope: strategy.TypeCode() + " platform", Result: result}
	}

	name, err := h.registry.GenerateNormalizedName(strategy.TypeCode(), data.NamingContext())
	if err != nil {
		return RowOutcome{}, err
	}

	exists, err := h.platforms.NormalizedNameExists(ctx, name, 0)
	if err != nil {
		return RowOutcome{}, fmt.Errorf("failed to check platform name: %w", err)
	}
	if exists || preview.taken(name) {
		return RowOutcome{}, &provisioning.DuplicateNameError{Kind: "platform", NormalizedName: name}
	}
	preview.claim(name)

	autoCount := 0
	if strategy.AutoCreatesInstruments() {
		autos, err := h.registry.AutoCreatedInstruments(strategy.TypeCode(), data)
		if err != nil {
			return RowOutcome{}, err
		}
		autoCount = len(autos)
	}

	return RowOutcome{NormalizedName: name, AutoInstruments: autoCount}, nil
}
