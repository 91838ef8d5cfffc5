package platform

import "strings"

// The six platform type tags. Each tag has exactly one strategy; the
// registry dispatches on the tag so callers never branch on type
// themselves.
const (
	TypeFixed     = "fixed"
	TypeUAV       = "uav"
	TypeSatellite = "satellite"
	TypeMobile    = "mobile"
	TypeUSV       = "usv"
	TypeUUV       = "uuv"
)

// KnownTypeCodes returns the six platform type tags in display order.
func KnownTypeCodes() []string {
	return []string{TypeFixed, TypeUAV, TypeSatellite, TypeMobile, TypeUSV, TypeUUV}
}

// IsKnownType checks membership in the platform type enumeration.
func IsKnownType(code string) bool {
	switch strings.ToLower(strings.TrimSpace(code)) {
	case TypeFixed, TypeUAV, TypeSatellite, TypeMobile, TypeUSV, TypeUUV:
		return true
	default:
		return false
	}
}
