package station

import "fmt"

// ErrStationNotFound indicates a lookup that matched no station.
type ErrStationNotFound struct {
	ID      int64
	Acronym string
}

func (e *ErrStationNotFound) Error() string {
	if e.Acronym != "" {
		return fmt.Sprintf("station not found: %s", e.Acronym)
	}
	return fmt.Sprintf("station not found: id=%d", e.ID)
}
