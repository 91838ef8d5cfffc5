package instrument

import (
	"fmt"
	"strings"
)

// ErrInvalidInstrument is the terminal entity-invariant error. It carries
// every violation found, joined into one message, because an instrument
// that fails structural validation must never be persisted or returned.
type ErrInvalidInstrument struct {
	Violations []string
}

func (e *ErrInvalidInstrument) Error() string {
	return fmt.Sprintf("instrument validation failed: %s", strings.Join(e.Violations, "; "))
}

// ErrUnknownInstrumentType indicates a type identifier that resolves to
// nothing in the instrument type registry.
type ErrUnknownInstrumentType struct {
	InstrumentType string
	Known          []string
}

func (e *ErrUnknownInstrumentType) Error() string {
	return fmt.Sprintf("unknown instrument type: %q (registered types: %s)",
		e.InstrumentType, strings.Join(e.Known, ", "))
}

// ErrInvalidSpecifications indicates a specification map that failed
// schema validation; the aggregated violations are joined in the message.
type ErrInvalidSpecifications struct {
	InstrumentType string
	Violations     []string
}

func (e *ErrInvalidSpecifications) Error() string {
	return fmt.Sprintf("invalid specifications for instrument type %q: %s",
		e.InstrumentType, strings.Join(e.Violations, "; "))
}

// ErrInstrumentNotFound indicates a lookup that matched no instrument.
type ErrInstrumentNotFound struct {
	ID             int64
	NormalizedName string
}

func (e *ErrInstrumentNotFound) Error() string {
	if e.NormalizedName != "" {
		return fmt.Sprintf("instrument not found: %s", e.NormalizedName)
	}
	return fmt.Sprintf("instrument not found: id=%d", e.ID)
}
