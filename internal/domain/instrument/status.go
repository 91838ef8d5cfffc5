package instrument

// Status represents the administrative lifecycle state of an instrument.
type Status string

const (
	StatusActive         Status = "Active"
	StatusInactive       Status = "Inactive"
	StatusMaintenance    Status = "Maintenance"
	StatusDecommissioned Status = "Decommissioned"
)

// AllStatuses returns every valid instrument status.
func AllStatuses() []Status {
	return []Status{StatusActive, StatusInactive, StatusMaintenance, StatusDecommissioned}
}

// IsValid checks membership in the status enumeration.
func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusMaintenance, StatusDecommissioned:
		return true
	default:
		return false
	}
}

func (s Status) String() string {
	return string(s)
}

// MeasurementStatus represents whether the instrument currently delivers
// usable data, independent of its administrative status: a mounted,
// Active instrument can still be Degraded or Failed.
type MeasurementStatus string

const (
	MeasurementOperational MeasurementStatus = "Operational"
	MeasurementDegraded    MeasurementStatus = "Degraded"
	MeasurementFailed      MeasurementStatus = "Failed"
	MeasurementUnknown     MeasurementStatus = "Unknown"
)

// AllMeasurementStatuses returns every valid measurement status.
func AllMeasurementStatuses() []MeasurementStatus {
	return []MeasurementStatus{MeasurementOperational, MeasurementDegraded, MeasurementFailed, MeasurementUnknown}
}

// IsValid checks membership in the measurement status enumeration.
func (m MeasurementStatus) IsValid() bool {
	switch m {
	case MeasurementOperational, MeasurementDegraded, MeasurementFailed, MeasurementUnknown:
		return true
	default:
		return false
	}
}

func (m MeasurementStatus) String() string {
	return string(m)
}
