package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"github.com/sitesspectral/spectral-go/internal/domain/instrument"
	"github.com/sitesspectral/spectral-go/internal/domain/shared"
)

// GormInstrumentRepository implements instrument.Repository using GORM
type GormInstrumentRepository struct {
	db *gorm.DB
}

// NewGormInstrumentRepository creates a new GORM instrument repository
func NewGormInstrumentRepository(db *gorm.DB) *GormInstrumentRepository {
	return &GormInstrumentRepository{db: db}
}

// Save persists an instrument and backfills the generated ID on insert
func (r *GormInstrumentRepository) Save(ctx context.Context, inst *instrument.Instrument) error {
	model, err := instrumentToModel(inst)
	if err != nil {
		return fmt.Errorf("failed to convert instrument to model: %w", err)
	}

	if model.ID == 0 {
		if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
			return fmt.Errorf("failed to create instrument: %w", err)
		}
		return inst.AssignID(model.ID)
	}

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update instrument: %w", err)
	}
	return nil
}

// Delete removes an instrument by ID
func (r *GormInstrumentRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&InstrumentModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete instrument: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return &instrument.ErrInstrumentNotFound{ID: id}
	}
	return nil
}

// FindByID retrieves an instrument by ID
func (r *GormInstrumentRepository) FindByID(ctx context.Context, id int64) (*instrument.Instrument, error) {
	var model InstrumentModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, &instrument.ErrInstrumentNotFound{ID: id}
		}
		return nil, fmt.Errorf("failed to find instrument: %w", result.Error)
	}
	return modelToInstrument(&model)
}

// FindByNormalizedName retrieves an instrument by its canonical name
func (r *GormInstrumentRepository) FindByNormalizedName(ctx context.Context, name string) (*instrument.Instrument, error) {
	normalized := strings.ToUpper(strings.TrimSpace(name))

	var model InstrumentModel
	result := r.db.WithContext(ctx).Where("normalized_name = ?", normalized).First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, &instrument.ErrInstrumentNotFound{NormalizedName: normalized}
		}
		return nil, fmt.Errorf("failed to find instrument: %w", result.Error)
	}
	return modelToInstrument(&model)
}

// FindByPlatform returns all instruments mounted on a platform
func (r *GormInstrumentRepository) FindByPlatform(ctx context.Context, platformID int64) ([]*instrument.Instrument, error) {
	var models []InstrumentModel
	result := r.db.WithContext(ctx).
		Where("platform_id = ?", platformID).
		Order("normalized_name").
		Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list instruments for platform %d: %w", platformID, result.Error)
	}

	instruments := make([]*instrument.Instrument, 0, len(models))
	for i := range models {
		inst, err := modelToInstrument(&models[i])
		if err != nil {
			return nil, fmt.Errorf("failed to map instrument %d: %w", models[i].ID, err)
		}
		instruments = append(instruments, inst)
	}
	return instruments, nil
}

// CountByPlatform returns the number of instruments mounted on a platform
func (r *GormInstrumentRepository) CountByPlatform(ctx context.Context, platformID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&InstrumentModel{}).
		Where("platform_id = ?", platformID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count instruments for platform %d: %w", platformID, err)
	}
	return count, nil
}

// NormalizedNameExists reports whether a name is already taken
func (r *GormInstrumentRepository) NormalizedNameExists(ctx context.Context, name string, excludeID int64) (bool, error) {
	normalized := strings.ToUpper(strings.TrimSpace(name))

	query := r.db.WithContext(ctx).Model(&InstrumentModel{}).Where("normalized_name = ?", normalized)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check instrument name: %w", err)
	}
	return count > 0, nil
}

// GetNextInstrumentNumber scans the instrument names of a platform for the
// given type code suffix and returns the next free sequence number. The
// suffix is the final underscore segment of the normalized name, e.g. the
// "PHE02" of "SVB_FOR_PL01_PHE02".
func (r *GormInstrumentRepository) GetNextInstrumentNumber(ctx context.Context, platformID int64, typeCode string) (int, error) {
	typeCode = strings.ToUpper(strings.TrimSpace(typeCode))
	if typeCode == "" {
		return 0, fmt.Errorf("instrument type code is required")
	}

	var names []string
	err := r.db.WithContext(ctx).Model(&InstrumentModel{}).
		Where("platform_id = ?", platformID).
		Pluck("normalized_name", &names).Error
	if err != nil {
		return 0, fmt.Errorf("failed to scan instrument names: %w", err)
	}

	highest := 0
	for _, name := range names {
		idx := strings.LastIndex(name, "_")
		if idx < 0 {
			continue
		}
		segment := name[idx+1:]
		if !strings.HasPrefix(segment, typeCode) {
			continue
		}
		n, err := strconv.Atoi(segment[len(typeCode):])
		if err != nil {
			continue // longer code sharing the first letters, e.g. MS vs MSP
		}
		if n > highest {
			highest = n
		}
	}
	return highest + 1, nil
}

// FindROIs returns the regions of interest of one instrument
func (r *GormInstrumentRepository) FindROIs(ctx context.Context, instrumentID int64) ([]*instrument.ROI, error) {
	var models []InstrumentROIModel
	result := r.db.WithContext(ctx).
		Where("instrument_id = ?", instrumentID).
		Order("id").
		Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list ROIs for instrument %d: %w", instrumentID, result.Error)
	}

	rois := make([]*instrument.ROI, 0, len(models))
	for i := range models {
		rois = append(rois, modelToROI(&models[i]))
	}
	return rois, nil
}

// SaveROI persists a region of interest and backfills the ID on insert
func (r *GormInstrumentRepository) SaveROI(ctx context.Context, roi *instrument.ROI) error {
	model := roiToModel(roi)

	if model.ID == 0 {
		if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
			return fmt.Errorf("failed to create ROI: %w", err)
		}
		roi.ID = model.ID
		return nil
	}

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update ROI: %w", err)
	}
	return nil
}

func instrumentToModel(inst *instrument.Instrument) (*InstrumentModel, error) {
	specs := inst.Specifications()
	var specsJSON string
	if len(specs) > 0 {
		bytes, err := json.Marshal(specs)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal specifications: %w", err)
		}
		specsJSON = string(bytes)
	} else {
		specsJSON = "{}"
	}

	return &InstrumentModel{
		ID:                inst.ID(),
		NormalizedName:    inst.NormalizedName(),
		DisplayName:       inst.DisplayName(),
		PlatformID:        inst.PlatformID(),
		InstrumentType:    inst.InstrumentType(),
		InstrumentNumber:  inst.InstrumentNumber(),
		Status:            string(inst.Status()),
		MeasurementStatus: string(inst.MeasurementStatus()),
		Specifications:    specsJSON,
		Description:       inst.Description(),
		InstallationNotes: inst.InstallationNotes(),
		MaintenanceNotes:  inst.MaintenanceNotes(),
		DeploymentDate:    inst.DeploymentDate(),
		CalibrationDate:   inst.CalibrationDate(),
		LegacyAcronym:     inst.LegacyAcronym(),
		CreatedAt:         inst.CreatedAt(),
		UpdatedAt:         inst.UpdatedAt(),
	}, nil
}

func modelToInstrument(model *InstrumentModel) (*instrument.Instrument, error) {
	row := shared.Row{
		"id":                 model.ID,
		"normalized_name":    model.NormalizedName,
		"display_name":       model.DisplayName,
		"platform_id":        model.PlatformID,
		"instrument_type":    model.InstrumentType,
		"instrument_number":  model.InstrumentNumber,
		"status":             model.Status,
		"measurement_status": model.MeasurementStatus,
		"specifications":     model.Specifications,
		"description":        model.Description,
		"installation_notes": model.InstallationNotes,
		"maintenance_notes":  model.MaintenanceNotes,
		"deployment_date":    model.DeploymentDate,
		"calibration_date":   model.CalibrationDate,
		"legacy_acronym":     model.LegacyAcronym,
		"created_at":         model.CreatedAt,
		"updated_at":         model.UpdatedAt,
	}
	return instrument.FromDatabase(row)
}

func roiToModel(roi *instrument.ROI) *InstrumentROIModel {
	return &InstrumentROIModel{
		ID:           roi.ID,
		InstrumentID: roi.InstrumentID,
		Name:         roi.Name,
		Description:  roi.Description,
		PolygonJSON:  roi.PolygonJSON,
		Color:        roi.Color,
		CreatedAt:    roi.CreatedAt,
		UpdatedAt:    roi.UpdatedAt,
	}
}

func modelToROI(model *InstrumentROIModel) *instrument.ROI {
	return &instrument.ROI{
		ID:           model.ID,
		InstrumentID: model.InstrumentID,
		Name:         model.Name,
		Description:  model.Description,
		PolygonJSON:  model.PolygonJSON,
		Color:        model.Color,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}
}
