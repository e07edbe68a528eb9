package impl

import (
	"context"
	"testing"

	"sklad/internal/domain/entity"
	domainerrors "sklad/internal/domain/errors"
	mockRepo "sklad/internal/mocks/repository"
	"sklad/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestColorService(t *testing.T) (usecase.ColorUsecase, *mockRepo.MockColorRepository) {
	t.Helper()

	colorRepo := new(mockRepo.MockColorRepository)
	service := NewColorService(ColorServiceParams{
		ColorRepo: colorRepo,
		Logger:    newDiscardLogger(),
	})

	return service, colorRepo
}

func TestColorService_CreateColor_DerivesHexFromName(t *testing.T) {
	service, colorRepo := createTestColorService(t)
	ctx := context.Background()

	colorRepo.On("Create", ctx, mock.AnythingOfType("*entity.Color")).Return(nil)

	color, err := service.CreateColor(ctx, &usecase.ColorInput{Name: "красный"})

	require.NoError(t, err)
	assert.Equal(t, "#FF0000", color.Hex)
	colorRepo.AssertExpectations(t)
}

func TestColorService_CreateColor_SameNameSameHex(t *testing.T) {
	service, colorRepo := createTestColorService(t)
	ctx := context.Background()

	colorRepo.On("Create", ctx, mock.AnythingOfType("*entity.Color")).Return(nil)

	first, err := service.CreateColor(ctx, &usecase.ColorInput{Name: "Синий"})
	require.NoError(t, err)
	second, err := service.CreateColor(ctx, &usecase.ColorInput{Name: "синий"})
	require.NoError(t, err)

	assert.Equal(t, first.Hex, second.Hex)
}

func TestColorService_CreateColor_ExplicitHexWins(t *testing.T) {
	service, colorRepo := createTestColorService(t)
	ctx := context.Background()

	colorRepo.On("Create", ctx, mock.AnythingOfType("*entity.Color")).Return(nil)

	color, err := service.CreateColor(ctx, &usecase.ColorInput{Name: "красный", Hex: "#ab12cd"})

	require.NoError(t, err)
	assert.Equal(t, "#AB12CD", color.Hex)
}

func TestColorService_CreateColor_UnknownNameNoHex(t *testing.T) {
	service, colorRepo := createTestColorService(t)

	color, err := service.CreateColor(context.Background(), &usecase.ColorInput{Name: "фуксия-металлик"})

	require.Error(t, err)
	assert.Nil(t, color)
	assert.True(t, errors.Is(err, domainerrors.ErrUnknownColorName))
	colorRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestColorService_CreateColor_MalformedHex(t *testing.T) {
	service, _ := createTestColorService(t)

	color, err := service.CreateColor(context.Background(), &usecase.ColorInput{Name: "красный", Hex: "FF0000"})

	require.Error(t, err)
	assert.Nil(t, color)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestColorService_UpdateColor_RederivesHex(t *testing.T) {
	service, colorRepo := createTestColorService(t)
	ctx := context.Background()

	existing := &entity.Color{Name: "красный", Hex: "#FF0000"}

	colorRepo.On("FindByID", ctx, existing.ID).Return(existing, nil)
	colorRepo.On("Update", ctx, mock.AnythingOfType("*entity.Color")).Return(nil)

	color, err := service.UpdateColor(ctx, existing.ID, &usecase.ColorInput{Name: "зелёный"})

	require.NoError(t, err)
	assert.Equal(t, "#008000", color.Hex)
}
