package station

import (
	"fmt"
	"strings"
	"time"
)

// Station represents one research station in the monitoring network.
// Stations are reference data for the platform/instrument core: platforms
// denormalize the station acronym into their generated names, so the
// acronym is immutable once assigned.
type Station struct {
	ID          int64
	Acronym     string
	DisplayName string
	Description string
	Country     string
	Latitude    *float64
	Longitude   *float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewStation creates a station with a normalized (upper-cased) acronym.
func NewStation(acronym, displayName string) (*Station, error) {
	s := &Station{
		Acronym:     strings.ToUpper(strings.TrimSpace(acronym)),
		DisplayName: strings.TrimSpace(displayName),
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks the station's structural invariants.
func (s *Station) Validate() error {
	var violations []string
	if s.Acronym == "" {
		violations = append(violations, "acronym is required")
	}
	if s.DisplayName == "" {
		violations = append(violations, "display_name is required")
	}
	if s.Latitude != nil && (*s.Latitude < -90 || *s.Latitude > 90) {
		violations = append(violations, "latitude must be between -90 and 90")
	}
	if s.Longitude != nil && (*s.Longitude < -180 || *s.Longitude > 180) {
		violations = append(violations, "longitude must be between -180 and 180")
	}
	if len(violations) > 0 {
		return fmt.Errorf("station validation failed: %s", strings.Join(violations, "; "))
	}
	return nil
}

// ToJSON returns the flat snake_case representation used for interchange
// with persistence and export layers.
func (s *Station) ToJSON() map[string]interface{} {
	out := map[string]interface{}{
		"acronym":      s.Acronym,
		"display_name": s.DisplayName,
		"description":  s.Description,
		"country":      s.Country,
	}
	if s.ID != 0 {
		out["id"] = s.ID
	}
	if s.Latitude != nil {
		out["latitude"] = *s.Latitude
	}
	if s.Longitude != nil {
		out["longitude"] = *s.Longitude
	}
	if !s.CreatedAt.IsZero() {
		out["created_at"] = s.CreatedAt.UTC().Format(time.RFC3339)
	}
	if !s.UpdatedAt.IsZero() {
		out["updated_at"] = s.UpdatedAt.UTC().Format(time.RFC3339)
	}
	return out
}
