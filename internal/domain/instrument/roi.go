package instrument

import "time"

// ROI is one region of interest drawn on an instrument's field of view.
// The polygon geometry is opaque to this core: it is stored and exported
// as the JSON text the drawing tool produced, never parsed here.
type ROI struct {
	ID           int64
	InstrumentID int64
	Name         string
	Description  string
	PolygonJSON  string
	Color        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ToJSON returns the flat snake_case representation used for interchange
// with persistence and export layers.
func (r *ROI) ToJSON() map[string]interface{} {
	out := map[string]interface{}{
		"name":         r.Name,
		"description":  r.Description,
		"polygon_json": r.PolygonJSON,
		"color":        r.Color,
	}
	if r.ID != 0 {
		out["id"] = r.ID
	}
	if r.InstrumentID != 0 {
		out["instrument_id"] = r.InstrumentID
	}
	if !r.CreatedAt.IsZero() {
		out["created_at"] = r.CreatedAt.UTC().Format(time.RFC3339)
	}
	if !r.UpdatedAt.IsZero() {
		out["updated_at"] = r.UpdatedAt.UTC().Format(time.RFC3339)
	}
	return out
}
