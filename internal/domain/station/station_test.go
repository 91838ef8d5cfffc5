package station_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitesspectral/spectral-go/internal/domain/station"
)

func TestNewStation_NormalizesAcronym(t *testing.T) {
	s, err := station.NewStation(" svb ", "Svartberget Research Station")

	require.NoError(t, err)
	assert.Equal(t, "SVB", s.Acronym)
	assert.Equal(t, "Svartberget Research Station", s.DisplayName)
}

func TestNewStation_RequiresAcronymAndName(t *testing.T) {
	_, err := station.NewStation("", "")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "acronym is required")
	assert.Contains(t, err.Error(), "display_name is required")
}

func TestStation_Validate_CoordinateBounds(t *testing.T) {
	s, err := station.NewStation("SVB", "Svartberget")
	require.NoError(t, err)

	bad := 91.0
	s.Latitude = &bad

	assert.Error(t, s.Validate())
}
