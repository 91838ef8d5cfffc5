package persistence

import (
	"time"
)

// StationModel represents the stations table
type StationModel struct {
	ID          int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Acronym     string    `gorm:"column:acronym;unique;not null"`
	DisplayName string    `gorm:"column:display_name;not null"`
	Description string    `gorm:"column:description;type:text"`
	Country     string    `gorm:"column:country"`
	Latitude    *float64  `gorm:"column:latitude"`
	Longitude   *float64  `gorm:"column:longitude"`
	CreatedAt   time.Time `gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"column:updated_at;not null;autoUpdateTime"`
}

func (StationModel) TableName() string {
	return "stations"
}

// PlatformModel represents the platforms table
// NormalizedName is unique network-wide. StationAcronym is denormalized
// from the stations table because it is baked into generated names.
type PlatformModel struct {
	ID                int64         `gorm:"column:id;primaryKey;autoIncrement"`
	NormalizedName    string        `gorm:"column:normalized_name;unique;not null"`
	DisplayName       string        `gorm:"column:display_name;not null"`
	StationID         int64         `gorm:"column:station_id;not null;index"`
	Station           *StationModel `gorm:"foreignKey:StationID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	StationAcronym    string        `gorm:"column:station_acronym;not null"`
	PlatformType      string        `gorm:"column:platform_type;not null"`
	EcosystemCode     string        `gorm:"column:ecosystem_code"`
	MountTypeCode     string        `gorm:"column:mount_type_code"`
	Latitude          *float64      `gorm:"column:latitude"`
	Longitude         *float64      `gorm:"column:longitude"`
	PlatformHeightM   *float64      `gorm:"column:platform_height_m"`
	Status            string        `gorm:"column:status;not null;default:'Active'"`
	MountingStructure string        `gorm:"column:mounting_structure"`
	DeploymentDate    string        `gorm:"column:deployment_date"`
	Description       string        `gorm:"column:description;type:text"`
	CreatedAt         time.Time     `gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt         time.Time     `gorm:"column:updated_at;not null;autoUpdateTime"`
}

func (PlatformModel) TableName() string {
	return "platforms"
}

// InstrumentModel represents the instruments table
type InstrumentModel struct {
	ID                int64          `gorm:"column:id;primaryKey;autoIncrement"`
	NormalizedName    string         `gorm:"column:normalized_name;unique;not null"`
	DisplayName       string         `gorm:"column:display_name;not null"`
	PlatformID        int64          `gorm:"column:platform_id;not null;index"`
	Platform          *PlatformModel `gorm:"foreignKey:PlatformID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	InstrumentType    string         `gorm:"column:instrument_type;not null"`
	InstrumentNumber  string         `gorm:"column:instrument_number"`
	Status            string         `gorm:"column:status;not null;default:'Active'"`
	MeasurementStatus string         `gorm:"column:measurement_status;not null;default:'Unknown'"`
	Specifications    string         `gorm:"column:specifications;type:text"` // JSON as text
	Description       string         `gorm:"column:description;type:text"`
	InstallationNotes string         `gorm:"column:installation_notes;type:text"`
	MaintenanceNotes  string         `gorm:"column:maintenance_notes;type:text"`
	DeploymentDate    string         `gorm:"column:deployment_date"`
	CalibrationDate   string         `gorm:"column:calibration_date"`
	LegacyAcronym     string         `gorm:"column:legacy_acronym"`
	CreatedAt         time.Time      `gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt         time.Time      `gorm:"column:updated_at;not null;autoUpdateTime"`
}

func (InstrumentModel) TableName() string {
	return "instruments"
}

// InstrumentROIModel represents the instrument_rois table
type InstrumentROIModel struct {
	ID           int64            `gorm:"column:id;primaryKey;autoIncrement"`
	InstrumentID int64            `gorm:"column:instrument_id;not null;index"`
	Instrument   *InstrumentModel `gorm:"foreignKey:InstrumentID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Name         string           `gorm:"column:name;not null"`
	Description  string           `gorm:"column:description;type:text"`
	PolygonJSON  string           `gorm:"column:polygon_json;type:text;not null"` // GeoJSON as text
	Color        string           `gorm:"column:color"`
	CreatedAt    time.Time        `gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt    time.Time        `gorm:"column:updated_at;not null;autoUpdateTime"`
}

func (InstrumentROIModel) TableName() string {
	return "instrument_rois"
}
