package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/sitesspectral/spectral-go/internal/domain/station"
)

// GormStationRepository implements station.Repository using GORM
type GormStationRepository struct {
	db *gorm.DB
}

// NewGormStationRepository creates a new GORM station repository
func NewGormStationRepository(db *gorm.DB) *GormStationRepository {
	return &GormStationRepository{db: db}
}

// Save persists a station (insert when ID is zero, update otherwise)
func (r *GormStationRepository) Save(ctx context.Context, s *station.Station) error {
	model := stationToModel(s)

	if model.ID == 0 {
		if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
			return fmt.Errorf("failed to create station: %w", err)
		}
		s.ID = model.ID
		return nil
	}

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update station: %w", err)
	}
	return nil
}

// FindByID retrieves a station by ID
func (r *GormStationRepository) FindByID(ctx context.Context, id int64) (*station.Station, error) {
	var model StationModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, &station.ErrStationNotFound{ID: id}
		}
		return nil, fmt.Errorf("failed to find station: %w", result.Error)
	}
	return modelToStation(&model), nil
}

// FindByAcronym retrieves a station by acronym (case-insensitive)
func (r *GormStationRepository) FindByAcronym(ctx context.Context, acronym string) (*station.Station, error) {
	normalized := strings.ToUpper(strings.TrimSpace(acronym))

	var model StationModel
	result := r.db.WithContext(ctx).Where("acronym = ?", normalized).First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, &station.ErrStationNotFound{Acronym: normalized}
		}
		return nil, fmt.Errorf("failed to find station: %w", result.Error)
	}
	return modelToStation(&model), nil
}

// List retrieves all stations ordered by acronym
func (r *GormStationRepository) List(ctx context.Context) ([]*station.Station, error) {
	var models []StationModel
	result := r.db.WithContext(ctx).Order("acronym").Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list stations: %w", result.Error)
	}

	stations := make([]*station.Station, 0, len(models))
	for i := range models {
		stations = append(stations, modelToStation(&models[i]))
	}
	return stations, nil
}

func stationToModel(s *station.Station) *StationModel {
	return &StationModel{
		ID:          s.ID,
		Acronym:     s.Acronym,
		DisplayName: s.DisplayName,
		Description: s.Description,
		Country:     s.Country,
		Latitude:    s.Latitude,
		Longitude:   s.Longitude,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func modelToStation(model *StationModel) *station.Station {
	return &station.Station{
		ID:          model.ID,
		Acronym:     model.Acronym,
		DisplayName: model.DisplayName,
		Description: model.Description,
		Country:     model.Country,
		Latitude:    model.Latitude,
		Longitude:   model.Longitude,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}
