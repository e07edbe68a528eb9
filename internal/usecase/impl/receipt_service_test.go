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

type receiptServiceFixtures struct {
	service     usecase.ReceiptUsecase
	receiptRepo *mockRepo.MockReceiptRepository
	productRepo *mockRepo.MockProductRepository
}

func createTestReceiptService(t *testing.T) receiptServiceFixtures {
	t.Helper()

	receiptRepo := new(mockRepo.MockReceiptRepository)
	productRepo := new(mockRepo.MockProductRepository)

	factory := &mockRepo.StubRepositoryFactory{
		Receipts: receiptRepo,
		Products: productRepo,
	}

	service := NewReceiptService(ReceiptServiceParams{
		TxManager:   newStubTxManager(factory),
		ReceiptRepo: receiptRepo,
		Logger:      newDiscardLogger(),
	})

	return receiptServiceFixtures{
		service:     service,
		receiptRepo: receiptRepo,
		productRepo: productRepo,
	}
}

func TestReceiptService_CreateReceipt_IncreasesStock(t *testing.T) {
	fx := createTestReceiptService(t)
	ctx := context.Background()

	actorID := uuid.New()
	productA := uuid.New()
	productB := uuid.New()
	receiptID := uuid.New()

	fx.receiptRepo.On("Create", ctx, mock.AnythingOfType("*entity.Receipt")).
		Run(func(args mock.Arguments) {
			receipt := args.Get(1).(*entity.Receipt)
			receipt.ID = receiptID
		}).
		Return(nil)
	fx.productRepo.On("AdjustStock", ctx, productA, 10).Return(nil)
	fx.productRepo.On("AdjustStock", ctx, productB, 3).Return(nil)
	fx.receiptRepo.On("FindByID", ctx, receiptID).
		Return(&entity.Receipt{ID: receiptID, Number: "ПН-001"}, nil)

	receipt, err := fx.service.CreateReceipt(ctx, actorID, &usecase.CreateReceiptInput{
		Number:   "ПН-001",
		Supplier: "ООО Поставщик",
		Items: []*usecase.StockItemInput{
			{ProductID: productA, Quantity: 10, UnitAmount: 15000},
			{ProductID: productB, Quantity: 3, UnitAmount: 99900},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, receiptID, receipt.ID)
	fx.productRepo.AssertExpectations(t)
}

func TestReceiptService_CreateReceipt_EmptyDocument(t *testing.T) {
	fx := createTestReceiptService(t)

	receipt, err := fx.service.CreateReceipt(context.Background(), uuid.New(), &usecase.CreateReceiptInput{
		Number: "ПН-002",
		Items:  nil,
	})

	require.Error(t, err)
	assert.Nil(t, receipt)
	assert.True(t, errors.Is(err, domainerrors.ErrEmptyDocument))
	fx.receiptRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestReceiptService_CreateReceipt_NonPositiveQuantity(t *testing.T) {
	fx := createTestReceiptService(t)

	receipt, err := fx.service.CreateReceipt(context.Background(), uuid.New(), &usecase.CreateReceiptInput{
		Number: "ПН-003",
		Items: []*usecase.StockItemInput{
			{ProductID: uuid.New(), Quantity: 0, UnitAmount: 100},
		},
	})

	require.Error(t, err)
	assert.Nil(t, receipt)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestReceiptService_DeleteReceipt_ReversesStock(t *testing.T) {
	fx := createTestReceiptService(t)
	ctx := context.Background()

	receiptID := uuid.New()
	productID := uuid.New()

	fx.receiptRepo.On("FindByID", ctx, receiptID).
		Return(&entity.Receipt{
			ID:     receiptID,
			Number: "ПН-004",
			Items: []*entity.ReceiptItem{
				{ProductID: productID, Quantity: 5},
			},
		}, nil)
	fx.productRepo.On("AdjustStock", ctx, productID, -5).Return(nil)
	fx.receiptRepo.On("Delete", ctx, receiptID).Return(nil)

	err := fx.service.DeleteReceipt(ctx, receiptID)

	require.NoError(t, err)
	fx.productRepo.AssertExpectations(t)
	fx.receiptRepo.AssertExpectations(t)
}

func TestReceiptService_DeleteReceipt_GoodsAlreadyShipped(t *testing.T) {
	fx := createTestReceiptService(t)
	ctx := context.Background()

	receiptID := uuid.New()
	productID := uuid.New()

	fx.receiptRepo.On("FindByID", ctx, receiptID).
		Return(&entity.Receipt{
			ID: receiptID,
			Items: []*entity.ReceiptItem{
				{ProductID: productID, Quantity: 5},
			},
		}, nil)
	fx.productRepo.On("AdjustStock", ctx, productID, -5).
		Return(repository.ErrInsufficientStock)

	err := fx.service.DeleteReceipt(ctx, receiptID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInsufficientStock))
	fx.receiptRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
