package shared

// AutoInstrument is the payload a platform type strategy emits for each
// instrument implied by the platform's hardware identity (UAV vendor/model
// or satellite agency/satellite/sensor). The instrument factory adapts the
// payload into a fully validated Instrument entity.
type AutoInstrument struct {
	// InstrumentType is the display name of the instrument type as
	// registered in the instrument type registry (e.g. "Multispectral Sensor").
	InstrumentType string

	// NormalizedName is the full canonical name, already in its final form:
	// {platformNormalizedName}_{TYPECODE}{NN}.
	NormalizedName string

	// Number is the 1-based ordinal behind the NN suffix, in catalog order.
	Number int

	// DisplayName is the human label for the created instrument.
	DisplayName string

	// Specifications carries the hardware catalog's declared fields
	// (channel count, band list, resolution, ...) plus the auto-created
	// traceability marker and the source model string.
	Specifications map[string]interface{}
}
