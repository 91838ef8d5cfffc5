package provisioning_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitesspectral/spectral-go/internal/application/provisioning"
	"github.com/sitesspectral/spectral-go/internal/domain/platform"
	"github.com/sitesspectral/spectral-go/test/helpers"
)

func TestDeletePlatformHandler_DeletesEmptyPlatform(t *testing.T) {
	// Arrange
	platforms := helpers.NewMockPlatformRepository()
	instruments := helpers.NewMockInstrumentRepository()
	p := seedFixedPlatform(t, platforms, "SVB_FOR_PL01")
	handler := provisioning.NewDeletePlatformHandler(platforms, instruments)

	// Act
	response, err := handler.Handle(context.Background(), &provisioning.DeletePlatformCommand{
		PlatformID: p.ID(),
	})

	// Assert
	require.NoError(t, err)
	result := response.(*provisioning.DeletePlatformResponse)
	assert.Equal(t, "SVB_FOR_PL01", result.NormalizedName)

	_, err = platforms.FindByID(context.Background(), p.ID())
	var notFound *platform.ErrPlatformNotFound
	assert.ErrorAs(t, err, &notFound)
}

func TestDeletePlatformHandler_RefusesWhileInstrumentsMounted(t *testing.T) {
	// Arrange
	platforms := helpers.NewMockPlatformRepository()
	instruments := helpers.NewMockInstrumentRepository()
	p := seedFixedPlatform(t, platforms, "SVB_FOR_PL01")
	seedInstrument(t, instruments, p.ID(), "SVB_FOR_PL01_PHE01", "phenocam")
	seedInstrument(t, instruments, p.ID(), "SVB_FOR_PL01_PHE02", "phenocam")
	handler := provisioning.NewDeletePlatformHandler(platforms, instruments)

	// Act
	_, err := handler.Handle(context.Background(), &provisioning.DeletePlatformCommand{
		NormalizedName: "SVB_FOR_PL01",
	})

	// Assert
	var blocked *provisioning.PlatformHasInstrumentsError
	require.ErrorAs(t, err, &blocked)
	assert.Equal(t, int64(2), blocked.Count)

	// Platform survives the refused delete.
	_, err = platforms.FindByID(context.Background(), p.ID())
	assert.NoError(t, err)
}

func TestDeletePlatformHandler_UnknownPlatform(t *testing.T) {
	// Arrange
	handler := provisioning.NewDeletePlatformHandler(
		helpers.NewMockPlatformRepository(), helpers.NewMockInstrumentRepository())

	// Act
	_, err := handler.Handle(context.Background(), &provisioning.DeletePlatformCommand{PlatformID: 42})

	// Assert
	var notFound *platform.ErrPlatformNotFound
	require.ErrorAs(t, err, &notFound)
}

func TestDeleteInstrumentHandler_DeletesByName(t *testing.T) {
	// Arrange
	instruments := helpers.NewMockInstrumentRepository()
	seedInstrument(t, instruments, 1, "SVB_FOR_PL01_PHE01", "phenocam")
	handler := provisioning.NewDeleteInstrumentHandler(instruments)

	// Act
	response, err := handler.Handle(context.Background(), &provisioning.DeleteInstrumentCommand{
		NormalizedName: "SVB_FOR_PL01_PHE01",
	})

	// Assert
	require.NoError(t, err)
	result := response.(*provisioning.DeleteInstrumentResponse)
	assert.Equal(t, "SVB_FOR_PL01_PHE01", result.NormalizedName)

	count, err := instruments.CountByPlatform(context.Background(), 1)
	require.NoError(t, err)
	assert.Zero(t, count)
}
