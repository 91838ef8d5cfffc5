package platform

import (
	"github.com/sitesspectral/spectral-go/internal/domain/shared"
)

// Data is the canonical shape of a submitted platform: the fields a
// strategy validates before the entity is built. Optional numeric fields
// are pointers so "absent" and "zero" stay distinguishable.
type Data struct {
	DisplayName    string
	StationAcronym string
	PlatformType   string
	EcosystemCode  string
	MountTypeCode  string

	Latitude        *float64
	Longitude       *float64
	PlatformHeightM *float64

	// UAV identity
	Vendor string
	Model  string

	// Satellite identity
	Agency    string
	Satellite string
	Sensor    string

	// Mobile carrier fields
	CarrierType      string
	MaxSpeedKMH      *float64
	OperatingRangeKM *float64
	BatteryRuntimeH  *float64

	// USV/UUV descriptive fields
	HullType        string
	PropulsionType  string
	NavigationType  string
	DraftM          *float64
	MaxDepthM       *float64
	OperatingDepthM *float64
	EnduranceH      *float64
	MaxSpeedKN      *float64

	MountingStructure string
	DeploymentDate    string
	Description       string
	Status            string
}

// DataFromSubmission normalizes a submitted form or import row into the
// canonical Data shape. It is the single point tolerating camelCase,
// snake_case, and the deprecated location_code column; everything after
// this constructor works on one shape.
func DataFromSubmission(row shared.Row) Data {
	return Data{
		DisplayName:    row.String("display_name", "displayName"),
		StationAcronym: row.String("station_acronym", "stationAcronym", "station"),
		PlatformType:   row.String("platform_type", "platformType"),
		EcosystemCode:  row.String("ecosystem_code", "ecosystemCode"),
		MountTypeCode:  row.String("mount_type_code", "mountTypeCode", "location_code", "locationCode"),

		Latitude:        row.Float("latitude"),
		Longitude:       row.Float("longitude"),
		PlatformHeightM: row.Float("platform_height_m", "platformHeightM"),

		Vendor: row.String("vendor"),
		Model:  row.String("model"),

		Agency:    row.String("agency"),
		Satellite: row.String("satellite"),
		Sensor:    row.String("sensor"),

		CarrierType:      row.String("carrier_type", "carrierType"),
		MaxSpeedKMH:      row.Float("max_speed_kmh", "maxSpeedKmh"),
		OperatingRangeKM: row.Float("operating_range_km", "operatingRangeKm"),
		BatteryRuntimeH:  row.Float("battery_runtime_h", "batteryRuntimeH"),

		HullType:        row.String("hull_type", "hullType"),
		PropulsionType:  row.String("propulsion_type", "propulsionType"),
		NavigationType:  row.String("navigation_type", "navigationType"),
		DraftM:          row.Float("draft_m", "draftM"),
		MaxDepthM:       row.Float("max_depth_m", "maxDepthM"),
		OperatingDepthM: row.Float("operating_depth_m", "operatingDepthM"),
		EnduranceH:      row.Float("endurance_h", "enduranceH"),
		MaxSpeedKN:      row.Float("max_speed_kn", "maxSpeedKn"),

		MountingStructure: row.String("mounting_structure", "mountingStructure"),
		DeploymentDate:    row.String("deployment_date", "deploymentDate"),
		Description:       row.String("description"),
		Status:            row.String("status"),
	}
}

// NamingContext derives the naming-grammar inputs from submitted data.
func (d Data) NamingContext() NamingContext {
	return NamingContext{
		StationAcronym: d.StationAcronym,
		EcosystemCode:  d.EcosystemCode,
		MountTypeCode:  d.MountTypeCode,
		Vendor:         d.Vendor,
		Model:          d.Model,
		Agency:         d.Agency,
		Satellite:      d.Satellite,
		Sensor:         d.Sensor,
		CarrierType:    d.CarrierType,
	}
}
