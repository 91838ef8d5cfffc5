package persistence

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"github.com/sitesspectral/spectral-go/internal/domain/platform"
	"github.com/sitesspectral/spectral-go/internal/domain/shared"
)

// GormPlatformRepository implements platform.Repository using GORM
type GormPlatformRepository struct {
	db *gorm.DB
}

// NewGormPlatformRepository creates a new GORM platform repository
func NewGormPlatformRepository(db *gorm.DB) *GormPlatformRepository {
	return &GormPlatformRepository{db: db}
}

// Save persists a platform and backfills the generated ID on insert
func (r *GormPlatformRepository) Save(ctx context.Context, p *platform.Platform) error {
	model := platformToModel(p)

	if model.ID == 0 {
		if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
			return fmt.Errorf("failed to create platform: %w", err)
		}
		return p.AssignID(model.ID)
	}

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update platform: %w", err)
	}
	return nil
}

// Delete removes a platform by ID
func (r *GormPlatformRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&PlatformModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete platform: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return &platform.ErrPlatformNotFound{ID: id}
	}
	return nil
}

// FindByID retrieves a platform by ID
func (r *GormPlatformRepository) FindByID(ctx context.Context, id int64) (*platform.Platform, error) {
	var model PlatformModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, &platform.ErrPlatformNotFound{ID: id}
		}
		return nil, fmt.Errorf("failed to find platform: %w", result.Error)
	}
	return modelToPlatform(&model)
}

// FindByNormalizedName retrieves a platform by its canonical name
func (r *GormPlatformRepository) FindByNormalizedName(ctx context.Context, normalizedName string) (*platform.Platform, error) {
	name := strings.ToUpper(strings.TrimSpace(normalizedName))

	var model PlatformModel
	result := r.db.WithContext(ctx).Where("normalized_name = ?", name).First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, &platform.ErrPlatformNotFound{NormalizedName: name}
		}
		return nil, fmt.Errorf("failed to find platform: %w", result.Error)
	}
	return modelToPlatform(&model)
}

// FindByStation retrieves all platforms of a station ordered by name
func (r *GormPlatformRepository) FindByStation(ctx context.Context, stationID int64) ([]*platform.Platform, error) {
	var models []PlatformModel
	result := r.db.WithContext(ctx).
		Where("station_id = ?", stationID).
		Order("normalized_name").
		Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list platforms for station %d: %w", stationID, result.Error)
	}
	return modelsToPlatforms(models)
}

// List retrieves all platforms ordered by name
func (r *GormPlatformRepository) List(ctx context.Context) ([]*platform.Platform, error) {
	var models []PlatformModel
	result := r.db.WithContext(ctx).Order("normalized_name").Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list platforms: %w", result.Error)
	}
	return modelsToPlatforms(models)
}

// NormalizedNameExists reports whether a platform other than excludeID
// already carries the name
func (r *GormPlatformRepository) NormalizedNameExists(ctx context.Context, normalizedName string, excludeID int64) (bool, error) {
	name := strings.ToUpper(strings.TrimSpace(normalizedName))

	query := r.db.WithContext(ctx).Model(&PlatformModel{}).Where("normalized_name = ?", name)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check platform name: %w", err)
	}
	return count > 0, nil
}

// GetNextMountTypeCode scans the existing mount codes of a station for one
// prefix (and ecosystem, when the type's grammar carries one) and returns
// the next free code, e.g. "PL03" when PL01 and PL02 are taken. Gaps below
// the maximum are not reused, so decommissioned codes stay retired.
func (r *GormPlatformRepository) GetNextMountTypeCode(ctx context.Context, stationID int64, prefix, ecosystemCode string) (string, error) {
	prefix = strings.ToUpper(strings.TrimSpace(prefix))
	if prefix == "" {
		return "", fmt.Errorf("mount code prefix is required")
	}

	query := r.db.WithContext(ctx).Model(&PlatformModel{}).
		Where("station_id = ? AND mount_type_code LIKE ?", stationID, prefix+"%")
	if ecosystemCode != "" {
		query = query.Where("ecosystem_code = ?", strings.ToUpper(strings.TrimSpace(ecosystemCode)))
	}

	var codes []string
	if err := query.Pluck("mount_type_code", &codes).Error; err != nil {
		return "", fmt.Errorf("failed to scan mount type codes: %w", err)
	}

	highest := 0
	for _, code := range codes {
		n, err := strconv.Atoi(code[len(prefix):])
		if err != nil {
			continue // different prefix sharing the first letters, e.g. PL vs PLX
		}
		if n > highest {
			highest = n
		}
	}
	return platform.FormatMountCode(prefix, highest+1), nil
}

func platformToModel(p *platform.Platform) *PlatformModel {
	return &PlatformModel{
		ID:                p.ID(),
		NormalizedName:    p.NormalizedName(),
		DisplayName:       p.DisplayName(),
		StationID:         p.StationID(),
		StationAcronym:    p.StationAcronym(),
		PlatformType:      p.PlatformType(),
		EcosystemCode:     p.EcosystemCode(),
		MountTypeCode:     p.MountTypeCode(),
		Latitude:          p.Latitude(),
		Longitude:         p.Longitude(),
		PlatformHeightM:   p.PlatformHeightM(),
		Status:            p.Status(),
		MountingStructure: p.MountingStructure(),
		DeploymentDate:    p.DeploymentDate(),
		Description:       p.Description(),
		CreatedAt:         p.CreatedAt(),
		UpdatedAt:         p.UpdatedAt(),
	}
}

func modelToPlatform(model *PlatformModel) (*platform.Platform, error) {
	row := shared.Row{
		"id":                 model.ID,
		"normalized_name":    model.NormalizedName,
		"display_name":       model.DisplayName,
		"station_id":         model.StationID,
		"station_acronym":    model.StationAcronym,
		"platform_type":      model.PlatformType,
		"ecosystem_code":     model.EcosystemCode,
		"mount_type_code":    model.MountTypeCode,
		"status":             model.Status,
		"mounting_structure": model.MountingStructure,
		"deployment_date":    model.DeploymentDate,
		"description":        model.Description,
		"created_at":         model.CreatedAt,
		"updated_at":         model.UpdatedAt,
	}
	if model.Latitude != nil {
		row["latitude"] = *model.Latitude
	}
	if model.Longitude != nil {
		row["longitude"] = *model.Longitude
	}
	if model.PlatformHeightM != nil {
		row["platform_height_m"] = *model.PlatformHeightM
	}
	return platform.FromDatabase(row)
}

func modelsToPlatforms(models []PlatformModel) ([]*platform.Platform, error) {
	platforms := make([]*platform.Platform, 0, len(models))
	for i := range models {
		p, err := modelToPlatform(&models[i])
		if err != nil {
			return nil, fmt.Errorf("failed to map platform %d: %w", models[i].ID, err)
		}
		platforms = append(platforms, p)
	}
	return platforms, nil
}
