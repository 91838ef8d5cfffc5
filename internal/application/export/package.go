package export

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// StationPackage is the exported tree of one station: the station record,
// every platform registered at it, each platform's instruments, and each
// instrument's regions of interest. Entity records use the same flat
// snake_case maps the persistence layer exchanges, so a package can be
// re-imported without key translation.
type StationPackage struct {
	Export    ExportMeta       `json:"export" yaml:"export"`
	Station   EntityRecord     `json:"station" yaml:"station"`
	Platforms []PlatformExport `json:"platforms" yaml:"platforms"`
}

// PlatformExport is one platform with its mounted instruments.
type PlatformExport struct {
	Platform    EntityRecord       `json:"platform" yaml:"platform"`
	Instruments []InstrumentExport `json:"instruments" yaml:"instruments"`
}

// InstrumentExport is one instrument with its regions of interest.
type InstrumentExport struct {
	Instrument EntityRecord   `json:"instrument" yaml:"instrument"`
	ROIs       []EntityRecord `json:"rois,omitempty" yaml:"rois,omitempty"`
}

// EntityRecord is a flat snake_case entity snapshot as produced by the
// domain entities' ToJSON methods.
type EntityRecord = map[string]interface{}

// ExportMeta describes one export run.
type ExportMeta struct {
	ExportID        string    `json:"export_id" yaml:"export_id"`
	ExportedAt      time.Time `json:"exported_at" yaml:"exported_at"`
	StationAcronym  string    `json:"station_acronym" yaml:"station_acronym"`
	PlatformCount   int       `json:"platform_count" yaml:"platform_count"`
	InstrumentCount int       `json:"instrument_count" yaml:"instrument_count"`
	ROICount        int       `json:"roi_count" yaml:"roi_count"`
}

// Format selects the serialization of a station package.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat maps a user-supplied format string to a Format.
// The empty string defaults to JSON.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported export format %q (use json or yaml)", s)
	}
}

// Encode serializes the package in the requested format.
func (pkg *StationPackage) Encode(format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		return json.MarshalIndent(pkg, "", "  ")
	case FormatYAML:
		return yaml.Marshal(pkg)
	default:
		return nil, fmt.Errorf("unsupported export format %q (use json or yaml)", format)
	}
}
