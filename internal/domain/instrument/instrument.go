package instrument

import (
	"fmt"
	"time"

	"github.com/sitesspectral/spectral-go/internal/domain/shared"
)

// Instrument is the aggregate root representing one sensor or device
// mounted on a platform. Its normalized name is the canonical identifier
// generated from the owning platform's name, the instrument type's short
// code, and a sequence number.
type Instrument struct {
	id                int64
	normalizedName    string
	displayName       string
	platformID        int64
	instrumentType    string
	instrumentNumber  string
	status            Status
	measurementStatus MeasurementStatus
	specifications    map[string]interface{}
	description       string
	installationNotes string
	maintenanceNotes  string
	deploymentDate    string
	calibrationDate   string
	legacyAcronym     string
	createdAt         time.Time
	updatedAt         time.Time
	rois              []*ROI
}

// Props carries the fields for constructing an instrument. Status defaults
// to Active and MeasurementStatus to Unknown when left empty.
type Props struct {
	ID                int64
	NormalizedName    string
	DisplayName       string
	PlatformID        int64
	InstrumentType    string
	InstrumentNumber  string
	Status            Status
	MeasurementStatus MeasurementStatus
	Specifications    map[string]interface{}
	Description       string
	InstallationNotes string
	MaintenanceNotes  string
	DeploymentDate    string
	CalibrationDate   string
	LegacyAcronym     string
}

// NewInstrument creates an instrument with validation. An instrument that
// fails entity validation is never returned.
func NewInstrument(props Props) (*Instrument, error) {
	if props.Status == "" {
		props.Status = StatusActive
	}
	if props.MeasurementStatus == "" {
		props.MeasurementStatus = MeasurementUnknown
	}

	inst := &Instrument{
		id:                props.ID,
		normalizedName:    props.NormalizedName,
		displayName:       props.DisplayName,
		platformID:        props.PlatformID,
		instrumentType:    props.InstrumentType,
		instrumentNumber:  props.InstrumentNumber,
		status:            props.Status,
		measurementStatus: props.MeasurementStatus,
		specifications:    copySpecs(props.Specifications),
		description:       props.Description,
		installationNotes: props.InstallationNotes,
		maintenanceNotes:  props.MaintenanceNotes,
		deploymentDate:    props.DeploymentDate,
		calibrationDate:   props.CalibrationDate,
		legacyAcronym:     props.LegacyAcronym,
		createdAt:         time.Now().UTC(),
		updatedAt:         time.Now().UTC(),
	}

	if err := inst.Validate(); err != nil {
		return nil, err
	}
	return inst, nil
}

// FromDatabase reconstructs an instrument from a storage row or exported
// record. It accepts both snake_case and camelCase keys and bypasses
// entity validation, since legacy rows may predate current invariants.
func FromDatabase(row shared.Row) (*Instrument, error) {
	if row == nil {
		return nil, fmt.Errorf("cannot reconstruct instrument from nil row")
	}

	inst := &Instrument{
		id:                row.Int64("id"),
		normalizedName:    row.String("normalized_name", "normalizedName"),
		displayName:       row.String("display_name", "displayName"),
		platformID:        row.Int64("platform_id", "platformId"),
		instrumentType:    row.String("instrument_type", "instrumentType"),
		instrumentNumber:  row.String("instrument_number", "instrumentNumber"),
		status:            Status(row.String("status")),
		measurementStatus: MeasurementStatus(row.String("measurement_status", "measurementStatus")),
		specifications:    row.Map("specifications"),
		description:       row.String("description"),
		installationNotes: row.String("installation_notes", "installationNotes"),
		maintenanceNotes:  row.String("maintenance_notes", "maintenanceNotes"),
		deploymentDate:    row.String("deployment_date", "deploymentDate"),
		calibrationDate:   row.String("calibration_date", "calibrationDate"),
		legacyAcronym:     row.String("legacy_acronym", "legacyAcronym"),
		createdAt:         row.Time("created_at", "createdAt"),
		updatedAt:         row.Time("updated_at", "updatedAt"),
	}

	if inst.status == "" {
		inst.status = StatusActive
	}
	if inst.measurementStatus == "" {
		inst.measurementStatus = MeasurementUnknown
	}
	if inst.specifications == nil {
		inst.specifications = make(map[string]interface{})
	}
	return inst, nil
}

// Validate checks the instrument's structural invariants. It returns a
// single terminal error joining every violation found.
func (i *Instrument) Validate() error {
	var violations []string

	if i.normalizedName == "" {
		violations = append(violations, "normalized_name is required")
	}
	if i.displayName == "" {
		violations = append(violations, "display_name is required")
	}
	if i.platformID == 0 {
		violations = append(violations, "platform_id is required")
	}
	if i.instrumentType == "" {
		violations = append(violations, "instrument_type is required")
	}
	if !i.status.IsValid() {
		violations = append(violations, fmt.Sprintf("status must be one of Active, Inactive, Maintenance, Decommissioned (got %q)", i.status))
	}
	if !i.measurementStatus.IsValid() {
		violations = append(violations, fmt.Sprintf("measurement_status must be one of Operational, Degraded, Failed, Unknown (got %q)", i.measurementStatus))
	}

	if len(violations) > 0 {
		return &ErrInvalidInstrument{Violations: violations}
	}
	return nil
}

// Getters

func (i *Instrument) ID() int64                            { return i.id }
func (i *Instrument) NormalizedName() string               { return i.normalizedName }
func (i *Instrument) DisplayName() string                  { return i.displayName }
func (i *Instrument) PlatformID() int64                    { return i.platformID }
func (i *Instrument) InstrumentType() string               { return i.instrumentType }
func (i *Instrument) InstrumentNumber() string             { return i.instrumentNumber }
func (i *Instrument) Status() Status                       { return i.status }
func (i *Instrument) MeasurementStatus() MeasurementStatus { return i.measurementStatus }
func (i *Instrument) Description() string                  { return i.description }
func (i *Instrument) InstallationNotes() string            { return i.installationNotes }
func (i *Instrument) MaintenanceNotes() string             { return i.maintenanceNotes }
func (i *Instrument) DeploymentDate() string               { return i.deploymentDate }
func (i *Instrument) CalibrationDate() string              { return i.calibrationDate }
func (i *Instrument) LegacyAcronym() string                { return i.legacyAcronym }
func (i *Instrument) CreatedAt() time.Time                 { return i.createdAt }
func (i *Instrument) UpdatedAt() time.Time                 { return i.updatedAt }

// Specifications returns a copy of the specification map so callers cannot
// mutate entity state behind the validators' back.
func (i *Instrument) Specifications() map[string]interface{} {
	return copySpecs(i.specifications)
}

// Specification returns one specification value and whether it is set.
func (i *Instrument) Specification(key string) (interface{}, bool) {
	v, ok := i.specifications[key]
	return v, ok
}

// ROIs returns the regions of interest attached by the caller.
func (i *Instrument) ROIs() []*ROI {
	return i.rois
}

// Derived queries

// IsActive reports whether the instrument is administratively active.
func (i *Instrument) IsActive() bool {
	return i.status == StatusActive
}

// IsOperational reports whether the instrument is active and currently
// delivering usable measurements.
func (i *Instrument) IsOperational() bool {
	return i.status == StatusActive && i.measurementStatus == MeasurementOperational
}

// WasAutoCreated reports whether the instrument was materialized by
// platform auto-provisioning rather than registered by hand.
func (i *Instrument) WasAutoCreated() bool {
	v, ok := i.specifications["auto_created"]
	if !ok {
		return false
	}
	b, ok := v.(bool)
	return ok && b
}

// Mutators

// AssignID backfills the identifier after the persistence adapter inserts
// the row. Assigning over an existing identifier is an error.
func (i *Instrument) AssignID(id int64) error {
	if i.id != 0 && i.id != id {
		return fmt.Errorf("instrument %s already has id %d", i.normalizedName, i.id)
	}
	i.id = id
	return nil
}

// SetStatus updates the administrative status, rejecting unknown values.
func (i *Instrument) SetStatus(status Status) error {
	if !status.IsValid() {
		return fmt.Errorf("invalid instrument status: %q", status)
	}
	i.status = status
	i.updatedAt = time.Now().UTC()
	return nil
}

// SetMeasurementStatus updates the measurement status, rejecting unknown values.
func (i *Instrument) SetMeasurementStatus(status MeasurementStatus) error {
	if !status.IsValid() {
		return fmt.Errorf("invalid measurement status: %q", status)
	}
	i.measurementStatus = status
	i.updatedAt = time.Now().UTC()
	return nil
}

// SetSpecification sets one specification value. Schema validation is the
// factory's and the type registry's concern, not the entity's.
func (i *Instrument) SetSpecification(key string, value interface{}) {
	if i.specifications == nil {
		i.specifications = make(map[string]interface{})
	}
	i.specifications[key] = value
	i.updatedAt = time.Now().UTC()
}

// SetMaintenanceNotes replaces the maintenance notes.
func (i *Instrument) SetMaintenanceNotes(notes string) {
	i.maintenanceNotes = notes
	i.updatedAt = time.Now().UTC()
}

// AttachROIs attaches regions of interest loaded separately by the caller.
func (i *Instrument) AttachROIs(rois []*ROI) {
	i.rois = rois
}

// ToJSON returns the canonical flat snake_case representation used for
// interchange with persistence and API layers. Feeding the result back
// through FromDatabase reconstructs an equivalent entity.
func (i *Instrument) ToJSON() map[string]interface{} {
	out := map[string]interface{}{
		"normalized_name":    i.normalizedName,
		"display_name":       i.displayName,
		"platform_id":        i.platformID,
		"instrument_type":    i.instrumentType,
		"instrument_number":  i.instrumentNumber,
		"status":             string(i.status),
		"measurement_status": string(i.measurementStatus),
		"specifications":     copySpecs(i.specifications),
		"description":        i.description,
		"installation_notes": i.installationNotes,
		"maintenance_notes":  i.maintenanceNotes,
		"deployment_date":    i.deploymentDate,
		"calibration_date":   i.calibrationDate,
		"legacy_acronym":     i.legacyAcronym,
	}
	if i.id != 0 {
		out["id"] = i.id
	}
	if !i.createdAt.IsZero() {
		out["created_at"] = i.createdAt.UTC().Format(time.RFC3339)
	}
	if !i.updatedAt.IsZero() {
		out["updated_at"] = i.updatedAt.UTC().Format(time.RFC3339)
	}
	return out
}

// String provides a short human-readable representation.
func (i *Instrument) String() string {
	return fmt.Sprintf("Instrument[%s, type=%s, status=%s/%s]",
		i.normalizedName, i.instrumentType, i.status, i.measurementStatus)
}

func copySpecs(specs map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(specs))
	for k, v := range specs {
		out[k] = v
	}
	return out
}
