package persistence_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitesspectral/spectral-go/internal/adapters/persistence"
	"github.com/sitesspectral/spectral-go/internal/domain/station"
	"github.com/sitesspectral/spectral-go/test/helpers"
)

func TestStationRepository_SaveAndFind(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormStationRepository(db)

	s, err := station.NewStation("svb", "Svartberget Research Station")
	require.NoError(t, err)
	s.Country = "Sweden"
	lat, lon := 64.256, 19.771
	s.Latitude = &lat
	s.Longitude = &lon

	// Act - Save
	err = repo.Save(context.Background(), s)

	// Assert
	require.NoError(t, err)
	assert.NotZero(t, s.ID)

	// Act - FindByID
	found, err := repo.FindByID(context.Background(), s.ID)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "SVB", found.Acronym)
	assert.Equal(t, "Svartberget Research Station", found.DisplayName)
	assert.Equal(t, "Sweden", found.Country)
	require.NotNil(t, found.Latitude)
	assert.InDelta(t, 64.256, *found.Latitude, 0.0001)
}

func TestStationRepository_FindByAcronymIsCaseInsensitive(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormStationRepository(db)

	s, err := station.NewStation("ANS", "Abisko Research Station")
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), s))

	// Act
	found, err := repo.FindByAcronym(context.Background(), "ans")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "ANS", found.Acronym)
}

func TestStationRepository_FindByAcronymNotFound(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormStationRepository(db)

	// Act
	_, err := repo.FindByAcronym(context.Background(), "XXX")

	// Assert
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "station not found")
}

func TestStationRepository_ListOrderedByAcronym(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormStationRepository(db)

	for _, acronym := range []string{"SVB", "ANS", "GRI"} {
		s, err := station.NewStation(acronym, acronym+" Station")
		require.NoError(t, err)
		require.NoError(t, repo.Save(context.Background(), s))
	}

	// Act
	stations, err := repo.List(context.Background())

	// Assert
	require.NoError(t, err)
	require.Len(t, stations, 3)
	assert.Equal(t, "ANS", stations[0].Acronym)
	assert.Equal(t, "GRI", stations[1].Acronym)
	assert.Equal(t, "SVB", stations[2].Acronym)
}

func TestStationRepository_SaveUpdatesExisting(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormStationRepository(db)

	s, err := station.NewStation("SVB", "Svartberget")
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), s))

	// Act
	s.DisplayName = "Svartberget Research Station"
	s.Country = "Sweden"
	err = repo.Save(context.Background(), s)

	// Assert
	require.NoError(t, err)

	found, err := repo.FindByID(context.Background(), s.ID)
	require.NoError(t, err)
	assert.Equal(t, "Svartberget Research Station", found.DisplayName)
	assert.Equal(t, "Sweden", found.Country)
}
