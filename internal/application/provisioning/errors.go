package provisioning

import (
	"fmt"

	"github.com/sitesspectral/spectral-go/internal/domain/shared"
)

// ValidationFailedError carries the aggregated strategy/schema violations
// of a rejected submission. Callers print Result.Errors one per line.
type ValidationFailedError struct {
	Scope  string
	Result shared.ValidationResult
}

func (e *ValidationFailedError) Error() string {
	return fmt.Sprintf("%s validation failed: %s", e.Scope, e.Result.ErrorMessage())
}

// DuplicateNameError indicates the uniqueness guard found the generated
// normalized name already taken. The service never retries; the caller
// decides whether to re-submit.
type DuplicateNameError struct {
	Kind           string
	NormalizedName string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("%s name already exists: %s", e.Kind, e.NormalizedName)
}

// ImmutableNameError rejects an update whose data would change the
// platform's naming-grammar fields. The normalized name is the entity's
// permanent identity; renaming means delete and recreate.
type ImmutableNameError struct {
	NormalizedName string
	Attempted      string
}

func (e *ImmutableNameError) Error() string {
	return fmt.Sprintf("cannot rename platform %s to %s: naming fields are immutable", e.NormalizedName, e.Attempted)
}

// PlatformHasInstrumentsError blocks platform deletion while dependent
// instruments exist.
type PlatformHasInstrumentsError struct {
	PlatformID int64
	Count      int64
}

func (e *PlatformHasInstrumentsError) Error() string {
	return fmt.Sprintf("cannot delete platform %d: %d dependent instrument(s) still mounted", e.PlatformID, e.Count)
}

// IncompatibleInstrumentError indicates an instrument type whose registry
// definition does not list the target platform's type as compatible.
type IncompatibleInstrumentError struct {
	InstrumentType string
	PlatformType   string
}

func (e *IncompatibleInstrumentError) Error() string {
	return fmt.Sprintf("instrument type %q is not compatible with %s platforms", e.InstrumentType, e.PlatformType)
}
