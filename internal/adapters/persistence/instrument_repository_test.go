package persistence_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitesspectral/spectral-go/internal/adapters/persistence"
	"github.com/sitesspectral/spectral-go/internal/domain/instrument"
	"github.com/sitesspectral/spectral-go/test/helpers"
	"gorm.io/gorm"
)

func seedPlatformRow(t *testing.T, db *gorm.DB, name string) int64 {
	t.Helper()
	model := persistence.PlatformModel{
		NormalizedName: name,
		DisplayName:    name,
		StationID:      1,
		StationAcronym: "SVB",
		PlatformType:   "fixed",
		EcosystemCode:  "FOR",
		MountTypeCode:  "PL01",
		Status:         "Active",
	}
	require.NoError(t, db.Create(&model).Error)
	return model.ID
}

func phenocam(t *testing.T, platformID int64, name string) *instrument.Instrument {
	t.Helper()
	inst, err := instrument.NewInstrument(instrument.Props{
		NormalizedName: name,
		DisplayName:    "Phenocam",
		PlatformID:     platformID,
		InstrumentType: "phenocam",
		Specifications: map[string]interface{}{"image_format": "JPEG"},
	})
	require.NoError(t, err)
	return inst
}

func TestInstrumentRepository_SaveAndFind(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormInstrumentRepository(db)
	platformID := seedPlatformRow(t, db, "SVB_FOR_PL01")

	inst := phenocam(t, platformID, "SVB_FOR_PL01_PHE01")

	// Act - Save
	err := repo.Save(context.Background(), inst)

	// Assert
	require.NoError(t, err)
	assert.NotZero(t, inst.ID())

	// Act - FindByID
	found, err := repo.FindByID(context.Background(), inst.ID())

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "SVB_FOR_PL01_PHE01", found.NormalizedName())
	assert.Equal(t, "phenocam", found.InstrumentType())
	assert.Equal(t, instrument.StatusActive, found.Status())
	assert.Equal(t, "JPEG", found.Specifications()["image_format"])
}

func TestInstrumentRepository_SpecificationsSurviveRoundTrip(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormInstrumentRepository(db)
	platformID := seedPlatformRow(t, db, "SVB_DJI_M3M_UAV01")

	inst, err := instrument.NewInstrument(instrument.Props{
		NormalizedName: "SVB_DJI_M3M_UAV01_MS01",
		DisplayName:    "Multispectral Sensor",
		PlatformID:     platformID,
		InstrumentType: "multispectral_sensor",
		Specifications: map[string]interface{}{
			"number_of_bands": 4,
			"spectral_bands":  "Green (560nm), Red (650nm), Red Edge (730nm), NIR (860nm)",
			"auto_created":    true,
			"source_model":    "DJI Mavic 3 Multispectral",
		},
	})
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), inst))

	// Act
	found, err := repo.FindByID(context.Background(), inst.ID())

	// Assert - values come back through the JSON text column
	require.NoError(t, err)
	specs := found.Specifications()
	assert.EqualValues(t, 4, specs["number_of_bands"])
	assert.Equal(t, true, specs["auto_created"])
	assert.Equal(t, "DJI Mavic 3 Multispectral", specs["source_model"])
	assert.True(t, found.WasAutoCreated())
}

func TestInstrumentRepository_FindByPlatformOrdered(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormInstrumentRepository(db)
	platformID := seedPlatformRow(t, db, "SVB_FOR_PL01")
	otherID := seedPlatformRow(t, db, "SVB_FOR_PL02")

	require.NoError(t, repo.Save(context.Background(), phenocam(t, platformID, "SVB_FOR_PL01_PHE02")))
	require.NoError(t, repo.Save(context.Background(), phenocam(t, platformID, "SVB_FOR_PL01_PHE01")))
	require.NoError(t, repo.Save(context.Background(), phenocam(t, otherID, "SVB_FOR_PL02_PHE01")))

	// Act
	instruments, err := repo.FindByPlatform(context.Background(), platformID)

	// Assert
	require.NoError(t, err)
	require.Len(t, instruments, 2)
	assert.Equal(t, "SVB_FOR_PL01_PHE01", instruments[0].NormalizedName())
	assert.Equal(t, "SVB_FOR_PL01_PHE02", instruments[1].NormalizedName())
}

func TestInstrumentRepository_CountByPlatform(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormInstrumentRepository(db)
	platformID := seedPlatformRow(t, db, "SVB_FOR_PL01")

	require.NoError(t, repo.Save(context.Background(), phenocam(t, platformID, "SVB_FOR_PL01_PHE01")))
	require.NoError(t, repo.Save(context.Background(), phenocam(t, platformID, "SVB_FOR_PL01_PHE02")))

	// Act
	count, err := repo.CountByPlatform(context.Background(), platformID)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	empty, err := repo.CountByPlatform(context.Background(), 999)
	require.NoError(t, err)
	assert.Zero(t, empty)
}

func TestInstrumentRepository_GetNextInstrumentNumber(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormInstrumentRepository(db)
	platformID := seedPlatformRow(t, db, "SVB_FOR_PL01")

	require.NoError(t, repo.Save(context.Background(), phenocam(t, platformID, "SVB_FOR_PL01_PHE01")))
	require.NoError(t, repo.Save(context.Background(), phenocam(t, platformID, "SVB_FOR_PL01_PHE02")))

	// Act & Assert - sequence continues per type code
	n, err := repo.GetNextInstrumentNumber(context.Background(), platformID, "PHE")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	// A different type code starts fresh on the same platform
	n, err = repo.GetNextInstrumentNumber(context.Background(), platformID, "RGB")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestInstrumentRepository_GetNextInstrumentNumberIgnoresLongerCodes(t *testing.T) {
	// Arrange - an MSP-suffixed name must not count toward the MS sequence
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormInstrumentRepository(db)
	platformID := seedPlatformRow(t, db, "SVB_FOR_PL01")

	inst, err := instrument.NewInstrument(instrument.Props{
		NormalizedName: "SVB_FOR_PL01_MSP03",
		DisplayName:    "Microspectrometer",
		PlatformID:     platformID,
		InstrumentType: "spectrometer",
	})
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), inst))

	// Act
	n, err := repo.GetNextInstrumentNumber(context.Background(), platformID, "MS")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestInstrumentRepository_NormalizedNameExists(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormInstrumentRepository(db)
	platformID := seedPlatformRow(t, db, "SVB_FOR_PL01")

	inst := phenocam(t, platformID, "SVB_FOR_PL01_PHE01")
	require.NoError(t, repo.Save(context.Background(), inst))

	// Act & Assert
	exists, err := repo.NormalizedNameExists(context.Background(), "svb_for_pl01_phe01", 0)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.NormalizedNameExists(context.Background(), "SVB_FOR_PL01_PHE01", inst.ID())
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestInstrumentRepository_DeleteAndROIs(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormInstrumentRepository(db)
	platformID := seedPlatformRow(t, db, "SVB_FOR_PL01")

	inst := phenocam(t, platformID, "SVB_FOR_PL01_PHE01")
	require.NoError(t, repo.Save(context.Background(), inst))

	roi := &instrument.ROI{
		InstrumentID: inst.ID(),
		Name:         "canopy",
		PolygonJSON:  `{"type":"Polygon","coordinates":[[[0,0],[1,0],[1,1],[0,0]]]}`,
		Color:        "#00FF00",
	}
	require.NoError(t, repo.SaveROI(context.Background(), roi))
	assert.NotZero(t, roi.ID)

	// Act - FindROIs
	rois, err := repo.FindROIs(context.Background(), inst.ID())

	// Assert
	require.NoError(t, err)
	require.Len(t, rois, 1)
	assert.Equal(t, "canopy", rois[0].Name)

	// Act - Delete instrument
	require.NoError(t, repo.Delete(context.Background(), inst.ID()))
	_, err = repo.FindByID(context.Background(), inst.ID())
	var notFound *instrument.ErrInstrumentNotFound
	assert.ErrorAs(t, err, &notFound)
}
