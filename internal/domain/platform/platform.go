package platform

import (
	"fmt"
	"strings"
	"time"

	"github.com/sitesspectral/spectral-go/internal/domain/instrument"
	"github.com/sitesspectral/spectral-go/internal/domain/shared"
)

// Platform is the aggregate root representing one monitoring position at a
// station: a tower, a UAV, a referenced satellite sensor, a mobile
// carrier, or a water-borne vehicle. Its normalized name is the canonical
// identifier generated by the type's naming grammar.
type Platform struct {
	id                int64
	normalizedName    string
	displayName       string
	stationID         int64
	stationAcronym    string
	platformType      string
	ecosystemCode     string
	mountTypeCode     string
	latitude          *float64
	longitude         *float64
	platformHeightM   *float64
	status            string
	mountingStructure string
	deploymentDate    string
	description       string
	createdAt         time.Time
	updatedAt         time.Time
	instruments       []*instrument.Instrument
}

// Props carries the fields for constructing a platform. Status defaults to
// "Active" when left empty.
type Props struct {
	ID                int64
	NormalizedName    string
	DisplayName       string
	StationID         int64
	StationAcronym    string
	PlatformType      string
	EcosystemCode     string
	MountTypeCode     string
	Latitude          *float64
	Longitude         *float64
	PlatformHeightM   *float64
	Status            string
	MountingStructure string
	DeploymentDate    string
	Description       string
}

// NewPlatform creates a platform with validation. A platform that fails
// entity validation is never returned.
func NewPlatform(props Props) (*Platform, error) {
	if props.Status == "" {
		props.Status = "Active"
	}

	p := &Platform{
		id:                props.ID,
		normalizedName:    props.NormalizedName,
		displayName:       props.DisplayName,
		stationID:         props.StationID,
		stationAcronym:    upperCode(props.StationAcronym),
		platformType:      strings.ToLower(strings.TrimSpace(props.PlatformType)),
		ecosystemCode:     upperCode(props.EcosystemCode),
		mountTypeCode:     upperCode(props.MountTypeCode),
		latitude:          props.Latitude,
		longitude:         props.Longitude,
		platformHeightM:   props.PlatformHeightM,
		status:            props.Status,
		mountingStructure: props.MountingStructure,
		deploymentDate:    props.DeploymentDate,
		description:       props.Description,
		createdAt:         time.Now().UTC(),
		updatedAt:         time.Now().UTC(),
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// FromDatabase reconstructs a platform from a storage row or exported
// record. It accepts snake_case and camelCase keys plus the deprecated
// location_code column, and bypasses entity validation, since legacy rows
// may predate current invariants.
func FromDatabase(row shared.Row) (*Platform, error) {
	if row == nil {
		return nil, fmt.Errorf("cannot reconstruct platform from nil row")
	}

	p := &Platform{
		id:                row.Int64("id"),
		normalizedName:    row.String("normalized_name", "normalizedName"),
		displayName:       row.String("display_name", "displayName"),
		stationID:         row.Int64("station_id", "stationId"),
		stationAcronym:    upperCode(row.String("station_acronym", "stationAcronym", "station")),
		platformType:      strings.ToLower(row.String("platform_type", "platformType")),
		ecosystemCode:     upperCode(row.String("ecosystem_code", "ecosystemCode")),
		mountTypeCode:     upperCode(row.String("mount_type_code", "mountTypeCode", "location_code", "locationCode")),
		latitude:          row.Float("latitude"),
		longitude:         row.Float("longitude"),
		platformHeightM:   row.Float("platform_height_m", "platformHeightM"),
		status:            row.String("status"),
		mountingStructure: row.String("mounting_structure", "mountingStructure"),
		deploymentDate:    row.String("deployment_date", "deploymentDate"),
		description:       row.String("description"),
		createdAt:         row.Time("created_at", "createdAt"),
		updatedAt:         row.Time("updated_at", "updatedAt"),
	}

	if p.status == "" {
		p.status = "Active"
	}
	return p, nil
}

// Validate checks the platform's structural invariants. It returns a
// single terminal error joining every violation found.
func (p *Platform) Validate() error {
	var violations []string

	if p.normalizedName == "" {
		violations = append(violations, "normalized_name is required")
	}
	if p.displayName == "" {
		violations = append(violations, "display_name is required")
	}
	if p.stationID == 0 {
		violations = append(violations, "station_id is required")
	}
	if !IsKnownType(p.platformType) {
		violations = append(violations, fmt.Sprintf("platform_type must be one of %s (got %q)",
			strings.Join(KnownTypeCodes(), ", "), p.platformType))
	}

	switch p.platformType {
	case TypeFixed:
		if p.ecosystemCode == "" {
			violations = append(violations, "fixed platforms require an ecosystem_code")
		}
	case TypeUAV, TypeSatellite:
		if p.ecosystemCode != "" {
			violations = append(violations, fmt.Sprintf("%s platforms must not carry an ecosystem_code (got %q)",
				p.platformType, p.ecosystemCode))
		}
	}
	if p.ecosystemCode != "" && !IsValidEcosystem(p.ecosystemCode) {
		violations = append(violations, fmt.Sprintf("ecosystem_code must be one of: %s (got %q)",
			strings.Join(EcosystemCodes(), ", "), p.ecosystemCode))
	}

	if len(violations) > 0 {
		return &ErrInvalidPlatform{Violations: violations}
	}
	return nil
}

// Getters

func (p *Platform) ID() int64                 { return p.id }
func (p *Platform) NormalizedName() string    { return p.normalizedName }
func (p *Platform) DisplayName() string       { return p.displayName }
func (p *Platform) StationID() int64          { return p.stationID }
func (p *Platform) StationAcronym() string    { return p.stationAcronym }
func (p *Platform) PlatformType() string      { return p.platformType }
func (p *Platform) EcosystemCode() string     { return p.ecosystemCode }
func (p *Platform) MountTypeCode() string     { return p.mountTypeCode }
func (p *Platform) Latitude() *float64        { return p.latitude }
func (p *Platform) Longitude() *float64       { return p.longitude }
func (p *Platform) PlatformHeightM() *float64 { return p.platformHeightM }
func (p *Platform) Status() string            { return p.status }
func (p *Platform) MountingStructure() string { return p.mountingStructure }
func (p *Platform) DeploymentDate() string    { return p.deploymentDate }
func (p *Platform) Description() string       { return p.description }
func (p *Platform) CreatedAt() time.Time      { return p.createdAt }
func (p *Platform) UpdatedAt() time.Time      { return p.updatedAt }

// MountPrefix returns the structure prefix of the mount-type code
// ("PL01" -> "PL").
func (p *Platform) MountPrefix() string {
	return mountPrefixOf(p.mountTypeCode)
}

// Coordinates returns the platform position when both coordinates are set.
func (p *Platform) Coordinates() (lat, lon float64, ok bool) {
	if p.latitude == nil || p.longitude == nil {
		return 0, 0, false
	}
	return *p.latitude, *p.longitude, true
}

// IsActive reports whether the platform is administratively active.
func (p *Platform) IsActive() bool {
	return strings.EqualFold(p.status, "Active")
}

// Instruments returns the instruments attached by the caller. They are
// loaded separately, never auto-fetched.
func (p *Platform) Instruments() []*instrument.Instrument {
	return p.instruments
}

// AttachInstruments attaches instruments loaded by the caller.
func (p *Platform) AttachInstruments(instruments []*instrument.Instrument) {
	p.instruments = instruments
}

// Mutators

// AssignID backfills the identifier after the persistence adapter inserts
// the row. Assigning over an existing identifier is an error.
func (p *Platform) AssignID(id int64) error {
	if p.id != 0 && p.id != id {
		return fmt.Errorf("platform %s already has id %d", p.normalizedName, p.id)
	}
	p.id = id
	return nil
}

// SetStatus updates the status tag.
func (p *Platform) SetStatus(status string) error {
	if strings.TrimSpace(status) == "" {
		return fmt.Errorf("platform status cannot be empty")
	}
	p.status = status
	p.updatedAt = time.Now().UTC()
	return nil
}

// ApplyData folds the mutable fields of a validated submission into the
// entity, leaving identity fields (name, station, type) untouched. Update
// commands run strategy validation first; this only carries the values.
func (p *Platform) ApplyData(data Data) {
	if data.DisplayName != "" {
		p.displayName = data.DisplayName
	}
	if data.Latitude != nil {
		p.latitude = data.Latitude
	}
	if data.Longitude != nil {
		p.longitude = data.Longitude
	}
	if data.PlatformHeightM != nil {
		p.platformHeightM = data.PlatformHeightM
	}
	if data.MountingStructure != "" {
		p.mountingStructure = data.MountingStructure
	}
	if data.DeploymentDate != "" {
		p.deploymentDate = data.DeploymentDate
	}
	if data.Description != "" {
		p.description = data.Description
	}
	if data.Status != "" {
		p.status = data.Status
	}
	p.updatedAt = time.Now().UTC()
}

// ToJSON returns the canonical flat snake_case representation used for
// interchange with persistence and API layers. Feeding the result back
// through FromDatabase reconstructs an equivalent platform.
func (p *Platform) ToJSON() map[string]interface{} {
	out := map[string]interface{}{
		"normalized_name":    p.normalizedName,
		"display_name":       p.displayName,
		"station_id":         p.stationID,
		"station_acronym":    p.stationAcronym,
		"platform_type":      p.platformType,
		"ecosystem_code":     p.ecosystemCode,
		"mount_type_code":    p.mountTypeCode,
		"status":             p.status,
		"mounting_structure": p.mountingStructure,
		"deployment_date":    p.deploymentDate,
		"description":        p.description,
	}
	if p.id != 0 {
		out["id"] = p.id
	}
	if p.latitude != nil {
		out["latitude"] = *p.latitude
	}
	if p.longitude != nil {
		out["longitude"] = *p.longitude
	}
	if p.platformHeightM != nil {
		out["platform_height_m"] = *p.platformHeightM
	}
	if !p.createdAt.IsZero() {
		out["created_at"] = p.createdAt.UTC().Format(time.RFC3339)
	}
	if !p.updatedAt.IsZero() {
		out["updated_at"] = p.updatedAt.UTC().Format(time.RFC3339)
	}
	return out
}

// String provides a short human-readable representation.
func (p *Platform) String() string {
	return fmt.Sprintf("Platform[%s, type=%s, station=%s]",
		p.normalizedName, p.platformType, p.stationAcronym)
}
