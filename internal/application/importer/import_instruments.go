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

// ImportInstrumentsCommand represents a command to bulk-mount instruments
// on one station's platforms from parsed file rows. Each row addresses its
// platform by normalized name.
type ImportInstrumentsCommand struct {
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

// ImportInstrumentsResponse represents the result of an instrument import run
type ImportInstrumentsResponse struct {
	Summary ImportSummary
}

// ImportInstrumentsHandler handles the ImportInstruments command
type ImportInstrumentsHandler struct {
	create      *provisioning.CreateInstrumentHandler
	stations    station.Repository
	platforms   platform.Repository
	instruments instrument.Repository
	factory     *instrument.Factory
	logger      *zap.Logger
}

// NewImportInstrumentsHandler creates a new ImportInstrumentsHandler
func NewImportInstrumentsHandler(
	stations station.Repository,
	platforms platform.Repository,
	instruments instrument.Repository,
	factory *instrument.Factory,
	logger *zap.Logger,
) *ImportInstrumentsHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ImportInstrumentsHandler{
		create:      provisioning.NewCreateInstrumentHandler(platforms, instruments, factory),
		stations:    stations,
		platforms:   platforms,
		instruments: instruments,
		factory:     factory,
		logger:      logger,
	}
}

// Handle executes the ImportInstruments command
func (h *ImportInstrumentsHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*ImportInstrumentsCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *ImportInstrumentsCommand")
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

		p, err := h.resolveRowPlatform(ctx, st, row)
		if err != nil {
			summary.addError(rowNumber, err)
			if cmd.StopOnError {
				break
			}
			continue
		}

		instrumentType := row.String("instrument_type", "instrumentType")
		if instrumentType == "" {
			summary.addError(rowNumber, fmt.Errorf("instrument_type is required"))
			if cmd.StopOnError {
				break
			}
			continue
		}

		var outcome RowOutcome
		if cmd.DryRun {
			outcome, err = h.previewRow(ctx, p, instrumentType, row, preview)
		} else {
			outcome, err = h.importRow(ctx, p, instrumentType, row, limiter)
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

		h.logger.Info("imported instrument",
			zap.String("station", st.Acronym),
			zap.Int("row", rowNumber),
			zap.String("normalized_name", outcome.NormalizedName),
			zap.Bool("dry_run", cmd.DryRun))
	}

	return &ImportInstrumentsResponse{Summary: summary}, nil
}

// resolveRowPlatform finds the row's platform and checks it belongs to the
// station the import is scoped to.
func (h *ImportInstrumentsHandler) resolveRowPlatform(ctx context.Context, st *station.Station, row shared.Row) (*platform.Platform, error) {
	name := row.String("platform_normalized_name", "platform")
	if name == "" {
		return nil, fmt.Errorf("platform_normalized_name is required")
	}

	p, err := h.platforms.FindByNormalizedName(ctx, name)
	if err != nil {
		return nil, err
	}
	if p.StationID() != st.ID {
		return nil, fmt.Errorf("platform %s does not belong to station %s", p.NormalizedName(), st.Acronym)
	}
	return p, nil
}

func (h *ImportInstrumentsHandler) importRow(ctx context.Context, p *platform.Platform, instrumentType string, row shared.Row, limiter *writeLimiter) (RowOutcome, error) {
	if err := limiter.Wait(ctx); err != nil {
		return RowOutcome{}, err
	}

	response, err := h.create.Handle(ctx, &provisioning.CreateInstrumentCommand{
		PlatformID:        p.ID(),
		InstrumentType:    instrumentType,
		DisplayName:       row.String("display_name", "displayName"),
		Specifications:    row.Map("specifications"),
		Description:       row.String("description"),
		InstallationNotes: row.String("installation_notes", "installationNotes"),
		DeploymentDate:    row.String("deployment_date", "deploymentDate"),
		CalibrationDate:   row.String("calibration_date", "calibrationDate"),
	})
	if err != nil {
		return RowOutcome{}, err
	}

	created := response.(*provisioning.CreateInstrumentResponse)
	return RowOutcome{NormalizedName: created.Instrument.NormalizedName()}, nil
}

// previewRow mirrors the CreateInstrument pipeline up to the save, with
// sequence numbers advanced past earlier rows of this run.
func (h *ImportInstrumentsHandler) previewRow(ctx context.Context, p *platform.Platform, instrumentType string, row shared.Row, preview *namePreview) (RowOutcome, error) {
	registry := h.factory.Registry()
	def, found := registry.Get(instrumentType)
	if !found {
		return RowOutcome{}, &instrument.ErrUnknownInstrumentType{
			InstrumentType: instrumentType,
			Known:          registry.Types(),
		}
	}
	if !registry.IsCompatibleWithPlatform(instrumentType, p.PlatformType()) {
		return RowOutcome{}, &provisioning.IncompatibleInstrumentError{
			InstrumentType: instrumentType,
			PlatformType:   p.PlatformType(),
		}
	}

	if specs := row.Map("specifications"); len(specs) > 0 {
		result := registry.ValidateSpecifications(instrumentType, specs)
		if !result.Valid {
			return RowOutcome{}, &instrument.ErrInvalidSpecifications{
				InstrumentType: instrumentType,
				Violations:     result.Errors,
			}
		}
	}

	number, err := h.instruments.GetNextInstrumentNumber(ctx, p.ID(), def.ShortCode)
	if err != nil {
		return RowOutcome{}, fmt.Errorf("failed to preview instrument number: %w", err)
	}
	number += preview.bumpInstrumentNumber(p.ID(), def.ShortCode)
	name := h.factory.GenerateNormalizedName(p.NormalizedName(), instrumentType, number)

	exists, err := h.instruments.NormalizedNameExists(ctx, name, 0)
	if err != nil {
		return RowOutcome{}, fmt.Errorf("failed to check instrument name: %w", err)
	}
	if exists || preview.taken(name) {
		return RowOutcome{}, &provisioning.DuplicateNameError{Kind: "instrument", NormalizedName: name}
	}
	preview.claim(name)

	return RowOutcome{NormalizedName: name}, nil
}
