package platform

import (
	"sort"
	"strings"
)

// ecosystemNames is the fixed enumeration of ecosystem codes used across
// the monitoring network. The code becomes the {ECOSYSTEM} token in
// generated platform names (e.g. SVB_FOR_PL01).
var ecosystemNames = map[string]string{
	"FOR": "Forest",
	"AGR": "Arable Land",
	"MIR": "Mire",
	"LAK": "Lake",
	"WET": "Wetland",
	"GRA": "Grassland",
	"HEA": "Heathland",
	"ALP": "Alpine",
	"CON": "Coniferous Forest",
	"DEC": "Deciduous Forest",
	"MAR": "Marine",
	"PEA": "Peatland",
	"GEN": "General",
}

// IsValidEcosystem checks membership in the ecosystem enumeration
// (case-insensitive).
func IsValidEcosystem(code string) bool {
	_, ok := ecosystemNames[strings.ToUpper(strings.TrimSpace(code))]
	return ok
}

// EcosystemName returns the display name for a code, or "" when unknown.
func EcosystemName(code string) string {
	return ecosystemNames[strings.ToUpper(strings.TrimSpace(code))]
}

// EcosystemCodes returns all valid ecosystem codes, sorted.
func EcosystemCodes() []string {
	codes := make([]string, 0, len(ecosystemNames))
	for code := range ecosystemNames {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
