package platform

import (
	"fmt"
	"strings"
)

// NamingContext carries the values a strategy's naming grammar draws on.
// Only the fields a given platform type's grammar uses are consulted;
// the rest may stay empty.
type NamingContext struct {
	StationAcronym string
	EcosystemCode  string
	MountTypeCode  string

	// UAV identity
	Vendor string
	Model  string

	// Satellite identity
	Agency    string
	Satellite string
	Sensor    string

	// Mobile carrier identity
	CarrierType string
}

// normalizeToken upper-cases a hardware identity token and strips internal
// separators so the same vendor/model/agency always yields the same token
// regardless of how a caller capitalizes or punctuates its input:
// "Sentinel-2A" and "sentinel 2a" both become "SENTINEL2A".
func normalizeToken(s string) string {
	s = strings.ToUpper(strings.TrimSpace(s))
	return strings.Map(func(ch rune) rune {
		switch ch {
		case ' ', '-', '_', '.', '/':
			return -1
		}
		return ch
	}, s)
}

// upperCode trims and upper-cases station acronyms, ecosystem codes, and
// mount-type codes, which keep their separators.
func upperCode(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// requireContext returns the first absent field from the required list as
// a fatal MissingContextFieldError; a name can never be partially generated.
func requireContext(values map[string]string, order []string) error {
	for _, field := range order {
		if strings.TrimSpace(values[field]) == "" {
			return &MissingContextFieldError{Field: field}
		}
	}
	return nil
}

// joinName concatenates already-normalized name tokens.
func joinName(tokens ...string) string {
	return strings.Join(tokens, "_")
}

// IdentityFromName reconstructs the grammar tokens encoded in a stored
// normalized name. Tokens are taken from the end of the name, so a station
// acronym that itself contains underscores stays intact. Unknown platform
// types and names with too few tokens report ok=false.
func IdentityFromName(platformType, normalizedName string) (NamingContext, bool) {
	tokens := strings.Split(upperCode(normalizedName), "_")
	n := len(tokens)
	var ctx NamingContext

	switch strings.ToLower(strings.TrimSpace(platformType)) {
	case TypeFixed, TypeUSV, TypeUUV:
		if n < 3 {
			return ctx, false
		}
		ctx.MountTypeCode = tokens[n-1]
		ctx.EcosystemCode = tokens[n-2]
		ctx.StationAcronym = strings.Join(tokens[:n-2], "_")

	case TypeUAV:
		if n < 4 {
			return ctx, false
		}
		ctx.MountTypeCode = tokens[n-1]
		ctx.Model = tokens[n-2]
		ctx.Vendor = tokens[n-3]
		ctx.StationAcronym = strings.Join(tokens[:n-3], "_")

	case TypeSatellite:
		if n < 4 {
			return ctx, false
		}
		ctx.Sensor = tokens[n-1]
		ctx.Satellite = tokens[n-2]
		ctx.Agency = tokens[n-3]
		ctx.StationAcronym = strings.Join(tokens[:n-3], "_")

	case TypeMobile:
		if n < 4 {
			return ctx, false
		}
		ctx.MountTypeCode = tokens[n-1]
		ctx.CarrierType = tokens[n-2]
		ctx.EcosystemCode = tokens[n-3]
		ctx.StationAcronym = strings.Join(tokens[:n-3], "_")

	default:
		return ctx, false
	}
	return ctx, true
}

// mountPrefixOf splits the structure prefix off a mount-type code:
// "PL01" -> "PL". The prefix is the leading run of letters.
func mountPrefixOf(code string) string {
	code = upperCode(code)
	for i, ch := range code {
		if ch < 'A' || ch > 'Z' {
			return code[:i]
		}
	}
	return code
}

// FormatMountCode renders a mount-type code from a structure prefix and a
// 1-based sequence number: ("PL", 3) -> "PL03".
func FormatMountCode(prefix string, number int) string {
	return fmt.Sprintf("%s%02d", upperCode(prefix), number)
}
