package instrument

import "context"

// Repository defines persistence operations for instruments. The core
// computes candidate names and validated entities; uniqueness checks and
// sequence reservation are the implementing adapter's duty and must be
// serialized per (platform, type code) by that adapter.
type Repository interface {
	// Save persists an instrument (insert or update) and backfills the
	// generated identifier on insert.
	Save(ctx context.Context, inst *Instrument) error

	// Delete removes an instrument by identifier.
	Delete(ctx context.Context, id int64) error

	// FindByID retrieves an instrument by identifier.
	FindByID(ctx context.Context, id int64) (*Instrument, error)

	// FindByNormalizedName retrieves an instrument by its canonical name.
	FindByNormalizedName(ctx context.Context, name string) (*Instrument, error)

	// FindByPlatform returns all instruments mounted on a platform,
	// ordered by normalized name.
	FindByPlatform(ctx context.Context, platformID int64) ([]*Instrument, error)

	// CountByPlatform returns the number of instruments mounted on a
	// platform. Platform deletion is gated on this being zero.
	CountByPlatform(ctx context.Context, platformID int64) (int64, error)

	// NormalizedNameExists reports whether a name is already taken,
	// ignoring the instrument with excludeID (0 excludes nothing).
	NormalizedNameExists(ctx context.Context, name string, excludeID int64) (bool, error)

	// GetNextInstrumentNumber returns the next free sequence number for
	// instruments of the given type code on the platform (1-based).
	GetNextInstrumentNumber(ctx context.Context, platformID int64, typeCode string) (int, error)

	// FindROIs returns the regions of interest of one instrument.
	FindROIs(ctx context.Context, instrumentID int64) ([]*ROI, error)
}
