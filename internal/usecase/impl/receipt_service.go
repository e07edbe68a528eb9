package impl

import (
	"context"
	"log/slog"
	"strings"

	"sklad/internal/domain/entity"
	domainerrors "sklad/internal/domain/errors"
	"sklad/internal/domain/repository"
	"sklad/internal/usecase"
	"sklad/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// receiptService implements the ReceiptUsecase interface.
type receiptService struct {
	txManager   repository.TransactionManager
	receiptRepo repository.ReceiptRepository
	logger      *slog.Logger
}

// ReceiptServiceParams holds dependencies for receiptService, injected by Fx.
type ReceiptServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ReceiptRepo repository.ReceiptRepository
	Logger      *slog.Logger
}

// NewReceiptService is the constructor for receiptService.
func NewReceiptService(params ReceiptServiceParams) usecase.ReceiptUsecase {
	return &receiptService{
		txManager:   params.TxManager,
		receiptRepo: params.ReceiptRepo,
		logger:      params.Logger,
	}
}

// validateStockItems rejects documents without lines or with
// non-positive quantities before any database work starts.
func validateStockItems(items []*usecase.StockItemInput) error {
	if len(items) == 0 {
		return errors.Wrap(domainerrors.ErrEmptyDocument, "stock document rejected")
	}
	for _, item := range items {
		if item.Quantity <= 0 {
			return domainerrors.ErrValidationFailed.WrapMessage("item quantity must be positive")
		}
		if item.UnitAmount < 0 {
			return domainerrors.ErrValidationFailed.WrapMessage("negative item amount")
		}
	}

	return nil
}

func (srv *receiptService) GetReceipt(ctx context.Context, id uuid.UUID) (*entity.Receipt, error) {
	receipt, err := srv.receiptRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrReceiptNotFound) {
			return nil, errors.Wrap(domainerrors.ErrReceiptNotFound, "get receipt failed")
		}

		return nil, errors.Wrap(err, "failed to find receipt by id")
	}

	return receipt, nil
}

func (srv *receiptService) ListReceipts(ctx context.Context, input *usecase.ListInput) (*usecase.ListReceiptsOutput, error) {
	_, limit, offset := util.NormalizePagination(input.Page, input.Limit)

	receipts, total, err := srv.receiptRepo.List(ctx, repository.ListParams{
		Offset: offset,
		Limit:  limit,
		Search: input.Search,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list receipts")
	}

	return &usecase.ListReceiptsOutput{Receipts: receipts, Total: total}, nil
}

// CreateReceipt posts a goods arrival: the document and the stock
// increase of every line commit or roll back together.
func (srv *receiptService) CreateReceipt(ctx context.Context, actorID uuid.UUID, input *usecase.CreateReceiptInput) (*entity.Receipt, error) {
	number := strings.TrimSpace(input.Number)
	if number == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("receipt number is empty")
	}
	if err := validateStockItems(input.Items); err != nil {
		return nil, err
	}

	items := make([]*entity.ReceiptItem, 0, len(input.Items))
	for _, item := range input.Items {
		items = append(items, &entity.ReceiptItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitCost:  item.UnitAmount,
		})
	}

	receipt := &entity.Receipt{
		Number:      number,
		Supplier:    strings.TrimSpace(input.Supplier),
		Note:        strings.TrimSpace(input.Note),
		CreatedByID: actorID,
		Items:       items,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		receiptRepo := repoFactory.ReceiptRepo()
		productRepo := repoFactory.ProductRepo()

		if err := receiptRepo.Create(ctx, receipt); err != nil {
			return errors.Wrap(err, "failed to create receipt")
		}

		for _, item := range receipt.Items {
			if err := productRepo.AdjustStock(ctx, item.ProductID, item.Quantity); err != nil {
				if errors.Is(err, repository.ErrProductNotFound) {
					return errors.Wrap(domainerrors.ErrProductNotFound, "receipt posting failed")
				}

				return errors.Wrap(err, "failed to increase product stock")
			}
		}

		return nil
	})
	if err != nil {
		srv.logger.Error("Failed to execute receipt posting transaction", "error", err, "number", number)

		return nil, errors.Wrap(err, "failed to execute receipt posting transaction")
	}
	srv.logger.Info("Receipt posted", "receiptID", receipt.ID, "number", receipt.Number, "items", len(receipt.Items))

	return srv.GetReceipt(ctx, receipt.ID)
}

// DeleteReceipt removes a posted arrival and reverses its stock
// increase. Reversal can fail with insufficient stock when the goods
// have already been shipped out.
func (srv *receiptService) DeleteReceipt(ctx context.Context, id uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		receiptRepo := repoFactory.ReceiptRepo()
		productRepo := repoFactory.ProductRepo()

		receipt, err := receiptRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrReceiptNotFound) {
				return errors.Wrap(domainerrors.ErrReceiptNotFound, "delete receipt failed")
			}

			return errors.Wrap(err, "failed to find receipt by id")
		}

		for _, item := range receipt.Items {
			if err := productRepo.AdjustStock(ctx, item.ProductID, -item.Quantity); err != nil {
				if errors.Is(err, repository.ErrInsufficientStock) {
					return errors.Wrap(domainerrors.ErrInsufficientStock, "receipt reversal failed")
				}

				return errors.Wrap(err, "failed to reverse product stock")
			}
		}

		if err := receiptRepo.Delete(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete receipt")
		}

		return nil
	})
	if err != nil {
		srv.logger.Error("Failed to execute receipt deletion transaction", "error", err, "receiptID", id)

		return errors.Wrap(err, "failed to execute receipt deletion transaction")
	}
	srv.logger.Info("Receipt deleted", "receiptID", id)

	return nil
}
