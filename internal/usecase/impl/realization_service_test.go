package impl

import (
	"context"
	"testing"

	"sklad/internal/domain/entity"
	domainerrors "sklad/internal/domain/errors"
	"sklad/internal/domain/repository"
	mockRepo "sklad/internal/mocks/repository"
	"sklad/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type realizationServiceFixtures struct {
	service         usecase.RealizationUsecase
	realizationRepo *mockRepo.MockRealizationRepository
	productRepo     *mockRepo.MockProductRepository
}

func createTestRealizationService(t *testing.T) realizationServiceFixtures {
	t.Helper()

	realizationRepo := new(mockRepo.MockRealizationRepository)
	productRepo := new(mockRepo.MockProductRepository)

	factory := &mockRepo.StubRepositoryFactory{
		Realizations: realizationRepo,
		Products:     productRepo,
	}

	service := NewRealizationService(RealizationServiceParams{
		TxManager:       newStubTxManager(factory),
		RealizationRepo: realizationRepo,
		Logger:          newDiscardLogger(),
	})

	return realizationServiceFixtures{
		service:         service,
		realizationRepo: realizationRepo,
		productRepo:     productRepo,
	}
}

func TestRealizationService_CreateRealization_DecreasesStock(t *testing.T) {
	fx := createTestRealizationService(t)
	ctx := context.Background()

	actorID := uuid.New()
	productID := uuid.New()
	realizationID := uuid.New()

	fx.realizationRepo.On("Create", ctx, mock.AnythingOfType("*entity.Realization")).
		Run(func(args mock.Arguments) {
			realization := args.Get(1).(*entity.Realization)
			realization.ID = realizationID
		}).
		Return(nil)
	fx.productRepo.On("AdjustStock", ctx, productID, -7).Return(nil)
	fx.realizationRepo.On("FindByID", ctx, realizationID).
		Return(&entity.Realization{ID: realizationID, Number: "РН-001"}, nil)

	realization, err := fx.service.CreateRealization(ctx, actorID, &usecase.CreateRealizationInput{
		Number:   "РН-001",
		Customer: "ИП Иванов",
		Items: []*usecase.StockItemInput{
			{ProductID: productID, Quantity: 7, UnitAmount: 25000},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, realizationID, realization.ID)
	fx.productRepo.AssertExpectations(t)
}

func TestRealizationService_CreateRealization_InsufficientStock(t *testing.T) {
	fx := createTestRealizationService(t)
	ctx := context.Background()

	productID := uuid.New()

	fx.realizationRepo.On("Create", ctx, mock.AnythingOfType("*entity.Realization")).Return(nil)
	fx.productRepo.On("AdjustStock", ctx, productID, -100).
		Return(repository.ErrInsufficientStock)

	realization, err := fx.service.CreateRealization(ctx, uuid.New(), &usecase.CreateRealizationInput{
		Number: "РН-002",
		Items: []*usecase.StockItemInput{
			{ProductID: productID, Quantity: 100, UnitAmount: 25000},
		},
	})

	require.Error(t, err)
	assert.Nil(t, realization)
	assert.True(t, errors.Is(err, domainerrors.ErrInsufficientStock))
}

func TestRealizationService_DeleteRealization_ReturnsStock(t *testing.T) {
	fx := createTestRealizationService(t)
	ctx := context.Background()

	realizationID := uuid.New()
	productID := uuid.New()

	fx.realizationRepo.On("FindByID", ctx, realizationID).
		Return(&entity.Realization{
			ID: realizationID,
			Items: []*entity.RealizationItem{
				{ProductID: productID, Quantity: 4},
			},
		}, nil)
	fx.productRepo.On("AdjustStock", ctx, productID, 4).Return(nil)
	fx.realizationRepo.On("Delete", ctx, realizationID).Return(nil)

	err := fx.service.DeleteRealization(ctx, realizationID)

	require.NoError(t, err)
	fx.productRepo.AssertExpectations(t)
}
