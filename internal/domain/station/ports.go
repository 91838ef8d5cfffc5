package station

import "context"

// Repository defines persistence operations for stations.
// Implemented by the persistence adapter; the domain core only consumes it.
type Repository interface {
	// Save persists a station (insert or update).
	Save(ctx context.Context, s *Station) error

	// FindByID retrieves a station by its numeric identifier.
	FindByID(ctx context.Context, id int64) (*Station, error)

	// FindByAcronym retrieves a station by acronym (case-insensitive).
	FindByAcronym(ctx context.Context, acronym string) (*Station, error)

	// List returns all stations ordered by acronym.
	List(ctx context.Context) ([]*Station, error)
}
