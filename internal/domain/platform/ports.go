package platform

import "context"

// Repository defines the persistence operations for platforms.
//
// GetNextMountTypeCode is a read-then-write reservation: callers expect
// the implementation to serialize it per (station, prefix, ecosystem) so
// two concurrent creations never receive the same code.
type Repository interface {
	// Save persists a platform (insert when ID is zero, update otherwise).
	Save(ctx context.Context, platform *Platform) error

	// Delete removes a platform by ID.
	Delete(ctx context.Context, id int64) error

	// FindByID retrieves a platform by its database ID.
	FindByID(ctx context.Context, id int64) (*Platform, error)

	// FindByNormalizedName retrieves a platform by its canonical name.
	FindByNormalizedName(ctx context.Context, normalizedName string) (*Platform, error)

	// FindByStation retrieves all platforms of a station.
	FindByStation(ctx context.Context, stationID int64) ([]*Platform, error)

	// List retrieves all platforms.
	List(ctx context.Context) ([]*Platform, error)

	// NormalizedNameExists reports whether a platform other than excludeID
	// already carries the name. excludeID zero means no exclusion.
	NormalizedNameExists(ctx context.Context, normalizedName string, excludeID int64) (bool, error)

	// GetNextMountTypeCode returns the next free mount-type code for a
	// station, mount prefix, and ecosystem (e.g. "PL03" when PL01 and
	// PL02 are taken). The ecosystem code may be empty for types whose
	// grammar carries none.
	GetNextMountTypeCode(ctx context.Context, stationID int64, prefix, ecosystemCode string) (string, error)
}

// InstrumentCodeResolver resolves an instrument type name to the short
// code used inside generated instrument names. The instrument type
// registry implements it; strategies depend only on this narrow view.
type InstrumentCodeResolver interface {
	ResolveShortCode(instrumentType string) string
}
