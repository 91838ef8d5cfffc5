package persistence_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitesspectral/spectral-go/internal/adapters/persistence"
	"github.com/sitesspectral/spectral-go/internal/domain/platform"
	"github.com/sitesspectral/spectral-go/internal/domain/station"
	"github.com/sitesspectral/spectral-go/test/helpers"
)

func seedStation(t *testing.T, db interface {
	Save(ctx context.Context, s *station.Station) error
}, acronym string) *station.Station {
	t.Helper()
	s, err := station.NewStation(acronym, acronym+" Station")
	require.NoError(t, err)
	require.NoError(t, db.Save(context.Background(), s))
	return s
}

func fixedPlatform(t *testing.T, stationID int64, acronym, eco, mount string) *platform.Platform {
	t.Helper()
	p, err := platform.NewPlatform(platform.Props{
		NormalizedName: acronym + "_" + eco + "_" + mount,
		DisplayName:    "Test platform " + mount,
		StationID:      stationID,
		StationAcronym: acronym,
		PlatformType:   "fixed",
		EcosystemCode:  eco,
		MountTypeCode:  mount,
	})
	require.NoError(t, err)
	return p
}

func TestPlatformRepository_SaveAndFind(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	stations := persistence.NewGormStationRepository(db)
	repo := persistence.NewGormPlatformRepository(db)

	s := seedStation(t, stations, "SVB")
	height := 4.5
	p, err := platform.NewPlatform(platform.Props{
		NormalizedName:  "SVB_FOR_PL01",
		DisplayName:     "Forest tower 1",
		StationID:       s.ID,
		StationAcronym:  "SVB",
		PlatformType:    "fixed",
		EcosystemCode:   "FOR",
		MountTypeCode:   "PL01",
		PlatformHeightM: &height,
	})
	require.NoError(t, err)

	// Act - Save
	err = repo.Save(context.Background(), p)

	// Assert
	require.NoError(t, err)
	assert.NotZero(t, p.ID())

	// Act - FindByID
	found, err := repo.FindByID(context.Background(), p.ID())

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "SVB_FOR_PL01", found.NormalizedName())
	assert.Equal(t, "fixed", found.PlatformType())
	assert.Equal(t, "FOR", found.EcosystemCode())
	assert.Equal(t, "PL01", found.MountTypeCode())
	require.NotNil(t, found.PlatformHeightM())
	assert.InDelta(t, 4.5, *found.PlatformHeightM(), 0.0001)
	assert.Equal(t, "Active", found.Status())
}

func TestPlatformRepository_FindByNormalizedName(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	stations := persistence.NewGormStationRepository(db)
	repo := persistence.NewGormPlatformRepository(db)

	s := seedStation(t, stations, "SVB")
	p := fixedPlatform(t, s.ID, "SVB", "FOR", "PL01")
	require.NoError(t, repo.Save(context.Background(), p))

	// Act - lower-case lookup resolves the same row
	found, err := repo.FindByNormalizedName(context.Background(), "svb_for_pl01")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, p.ID(), found.ID())
}

func TestPlatformRepository_FindByIDNotFound(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormPlatformRepository(db)

	// Act
	_, err := repo.FindByID(context.Background(), 999)

	// Assert
	require.Error(t, err)
	var notFound *platform.ErrPlatformNotFound
	assert.ErrorAs(t, err, &notFound)
}

func TestPlatformRepository_NormalizedNameExists(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	stations := persistence.NewGormStationRepository(db)
	repo := persistence.NewGormPlatformRepository(db)

	s := seedStation(t, stations, "SVB")
	p := fixedPlatform(t, s.ID, "SVB", "FOR", "PL01")
	require.NoError(t, repo.Save(context.Background(), p))

	// Act & Assert
	exists, err := repo.NormalizedNameExists(context.Background(), "SVB_FOR_PL01", 0)
	require.NoError(t, err)
	assert.True(t, exists)

	// The platform itself is excluded when updating
	exists, err = repo.NormalizedNameExists(context.Background(), "SVB_FOR_PL01", p.ID())
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = repo.NormalizedNameExists(context.Background(), "SVB_FOR_PL99", 0)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestPlatformRepository_GetNextMountTypeCode(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	stations := persistence.NewGormStationRepository(db)
	repo := persistence.NewGormPlatformRepository(db)

	s := seedStation(t, stations, "SVB")
	require.NoError(t, repo.Save(context.Background(), fixedPlatform(t, s.ID, "SVB", "FOR", "PL01")))
	require.NoError(t, repo.Save(context.Background(), fixedPlatform(t, s.ID, "SVB", "FOR", "PL02")))

	// Act
	code, err := repo.GetNextMountTypeCode(context.Background(), s.ID, "PL", "FOR")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "PL03", code)
}

func TestPlatformRepository_GetNextMountTypeCodeCountsPerEcosystem(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	stations := persistence.NewGormStationRepository(db)
	repo := persistence.NewGormPlatformRepository(db)

	s := seedStation(t, stations, "SVB")
	require.NoError(t, repo.Save(context.Background(), fixedPlatform(t, s.ID, "SVB", "FOR", "PL01")))
	require.NoError(t, repo.Save(context.Background(), fixedPlatform(t, s.ID, "SVB", "FOR", "PL02")))

	// Act - a different ecosystem starts its own sequence
	code, err := repo.GetNextMountTypeCode(context.Background(), s.ID, "PL", "AGR")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "PL01", code)
}

func TestPlatformRepository_GetNextMountTypeCodeFirstForStation(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormPlatformRepository(db)

	// Act
	code, err := repo.GetNextMountTypeCode(context.Background(), 42, "UAV", "")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "UAV01", code)
}

func TestPlatformRepository_GetNextMountTypeCodeSkipsGaps(t *testing.T) {
	// Arrange - PL01 decommissioned and removed, PL05 remains
	db := helpers.NewTestDB(t)
	stations := persistence.NewGormStationRepository(db)
	repo := persistence.NewGormPlatformRepository(db)

	s := seedStation(t, stations, "SVB")
	require.NoError(t, repo.Save(context.Background(), fixedPlatform(t, s.ID, "SVB", "FOR", "PL05")))

	// Act
	code, err := repo.GetNextMountTypeCode(context.Background(), s.ID, "PL", "FOR")

	// Assert - continues past the highest, never refills gaps
	require.NoError(t, err)
	assert.Equal(t, "PL06", code)
}

func TestPlatformRepository_FindByStation(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	stations := persistence.NewGormStationRepository(db)
	repo := persistence.NewGormPlatformRepository(db)

	svb := seedStation(t, stations, "SVB")
	ans := seedStation(t, stations, "ANS")
	require.NoError(t, repo.Save(context.Background(), fixedPlatform(t, svb.ID, "SVB", "FOR", "PL02")))
	require.NoError(t, repo.Save(context.Background(), fixedPlatform(t, svb.ID, "SVB", "FOR", "PL01")))
	require.NoError(t, repo.Save(context.Background(), fixedPlatform(t, ans.ID, "ANS", "ALP", "PL01")))

	// Act
	platforms, err := repo.FindByStation(context.Background(), svb.ID)

	// Assert - only SVB platforms, ordered by name
	require.NoError(t, err)
	require.Len(t, platforms, 2)
	assert.Equal(t, "SVB_FOR_PL01", platforms[0].NormalizedName())
	assert.Equal(t, "SVB_FOR_PL02", platforms[1].NormalizedName())
}

func TestPlatformRepository_Delete(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	stations := persistence.NewGormStationRepository(db)
	repo := persistence.NewGormPlatformRepository(db)

	s := seedStation(t, stations, "SVB")
	p := fixedPlatform(t, s.ID, "SVB", "FOR", "PL01")
	require.NoError(t, repo.Save(context.Background(), p))

	// Act
	err := repo.Delete(context.Background(), p.ID())

	// Assert
	require.NoError(t, err)
	_, err = repo.FindByID(context.Background(), p.ID())
	assert.Error(t, err)

	// Deleting again reports not found
	err = repo.Delete(context.Background(), p.ID())
	var notFound *platform.ErrPlatformNotFound
	assert.ErrorAs(t, err, &notFound)
}

func TestPlatformRepository_SaveUpdatesExisting(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	stations := persistence.NewGormStationRepository(db)
	repo := persistence.NewGormPlatformRepository(db)

	s := seedStation(t, stations, "SVB")
	p := fixedPlatform(t, s.ID, "SVB", "FOR", "PL01")
	require.NoError(t, repo.Save(context.Background(), p))

	// Act
	require.NoError(t, p.SetStatus("Decommissioned"))
	err := repo.Save(context.Background(), p)

	// Assert
	require.NoError(t, err)
	found, err := repo.FindByID(context.Background(), p.ID())
	require.NoError(t, err)
	assert.Equal(t, "Decommissioned", found.Status())
}
