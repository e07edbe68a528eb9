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

// realizationService implements the RealizationUsecase interface.
type realizationService struct {
	txManager       repository.TransactionManager
	realizationRepo repository.RealizationRepository
	logger          *slog.Logger
}

// RealizationServiceParams holds dependencies for realizationService, injected by Fx.
type RealizationServiceParams struct {
	fx.In

	TxManager       repository.TransactionManager
	RealizationRepo repository.RealizationRepository
	Logger          *slog.Logger
}

// NewRealizationService is the constructor for realizationService.
func NewRealizationService(params RealizationServiceParams) usecase.RealizationUsecase {
	return &realizationService{
		txManager:       params.TxManager,
		realizationRepo: params.RealizationRepo,
		logger:          params.Logger,
	}
}

func (srv *realizationService) GetRealization(ctx context.Context, id uuid.UUID) (*entity.Realization, error) {
	realization, err := srv.realizationRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRealizationNotFound) {
			return nil, errors.Wrap(domainerrors.ErrRealizationNotFound, "get realization failed")
		}

		return nil, errors.Wrap(err, "failed to find realization by id")
	}

	return realization, nil
}

func (srv *realizationService) ListRealizations(ctx context.Context, input *usecase.ListInput) (*usecase.ListRealizationsOutput, error) {
	_, limit, offset := util.NormalizePagination(input.Page, input.Limit)

	realizations, total, err := srv.realizationRepo.List(ctx, repository.ListParams{
		Offset: offset,
		Limit:  limit,
		Search: input.Search,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list realizations")
	}

	return &usecase.ListRealizationsOutput{Realizations: realizations, Total: total}, nil
}

// CreateRealization posts a shipment: the document and the stock
// decrease of every line commit or roll back together. A line that
// would drive stock below zero aborts the whole document.
func (srv *realizationService) CreateRealization(ctx context.Context, actorID uuid.UUID, input *usecase.CreateRealizationInput) (*entity.Realization, error) {
	number := strings.TrimSpace(input.Number)
	if number == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("realization number is empty")
	}
	if err := validateStockItems(input.Items); err != nil {
		return nil, err
	}

	items := make([]*entity.RealizationItem, 0, len(input.Items))
	for _, item := range input.Items {
		items = append(items, &entity.RealizationItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitAmount,
		})
	}

	realization := &entity.Realization{
		Number:      number,
		Customer:    strings.TrimSpace(input.Customer),
		Note:        strings.TrimSpace(input.Note),
		CreatedByID: actorID,
		Items:       items,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		realizationRepo := repoFactory.RealizationRepo()
		productRepo := repoFactory.ProductRepo()

		if err := realizationRepo.Create(ctx, realization); err != nil {
			return errors.Wrap(err, "failed to create realization")
		}

		for _, item := range realization.Items {
			if err := productRepo.AdjustStock(ctx, item.ProductID, -item.Quantity); err != nil {
				switch {
				case errors.Is(err, repository.ErrInsufficientStock):
					return errors.Wrap(domainerrors.ErrInsufficientStock, "realization posting failed")
				case errors.Is(err, repository.ErrProductNotFound):
					return errors.Wrap(domainerrors.ErrProductNotFound, "realization posting failed")
				default:
					return errors.Wrap(err, "failed to decrease product stock")
				}
			}
		}

		return nil
	})
	if err != nil {
		srv.logger.Error("Failed to execute realization posting transaction", "error", err, "number", number)

		return nil, errors.Wrap(err, "failed to execute realization posting transaction")
	}
	srv.logger.Info("Realization posted", "realizationID", realization.ID, "number", realization.Number, "items", len(realization.Items))

	return srv.GetRealization(ctx, realization.ID)
}

// DeleteRealization removes a posted shipment and returns its goods to stock.
func (srv *realizationService) DeleteRealization(ctx context.Context, id uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		realizationRepo := repoFactory.RealizationRepo()
		productRepo := repoFactory.ProductRepo()

		realization, err := realizationRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrRealizationNotFound) {
				return errors.Wrap(domainerrors.ErrRealizationNotFound, "delete realization failed")
			}

			return errors.Wrap(err, "failed to find realization by id")
		}

		for _, item := range realization.Items {
			if err := productRepo.AdjustStock(ctx, item.ProductID, item.Quantity); err != nil {
				return errors.Wrap(err, "failed to return product stock")
			}
		}

		if err := realizationRepo.Delete(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete realization")
		}

		return nil
	})
	if err != nil {
		srv.logger.Error("Failed to execute realization deletion transaction", "error", err, "realizationID", id)

		return errors.Wrap(err, "failed to execute realization deletion transaction")
	}
	srv.logger.Info("Realization deleted", "realizationID", id)

	return nil
}
