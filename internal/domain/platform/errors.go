package platform

import (
	"fmt"
	"strings"
)

// MissingContextFieldError is the fatal outcome of name generation when a
// required context value is absent. It names the first missing field.
type MissingContextFieldError struct {
	Field string
}

func (e *MissingContextFieldError) Error() string {
	return fmt.Sprintf("cannot generate normalized name: missing required field '%s'", e.Field)
}

// UnknownPlatformTypeError is returned by the type registry when asked to
// dispatch on an unregistered type code. It enumerates the registered
// codes so the caller can correct the input.
type UnknownPlatformTypeError struct {
	TypeCode string
	Known    []string
}

func (e *UnknownPlatformTypeError) Error() string {
	return fmt.Sprintf("unknown platform type: %q (registered types: %s)",
		e.TypeCode, strings.Join(e.Known, ", "))
}

// ErrInvalidPlatform is the terminal entity-invariant error carrying every
// violation found, joined into one message. A platform that fails this
// check must never be persisted or returned to a caller.
type ErrInvalidPlatform struct {
	Violations []string
}

func (e *ErrInvalidPlatform) Error() string {
	return fmt.Sprintf("platform validation failed: %s", strings.Join(e.Violations, "; "))
}

// ErrPlatformNotFound indicates a lookup that matched no platform.
type ErrPlatformNotFound struct {
	ID             int64
	NormalizedName string
}

func (e *ErrPlatformNotFound) Error() string {
	if e.NormalizedName != "" {
		return fmt.Sprintf("platform not found: %s", e.NormalizedName)
	}
	return fmt.Sprintf("platform not found: id=%d", e.ID)
}
