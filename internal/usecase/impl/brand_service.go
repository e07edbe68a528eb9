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

// brandService implements the BrandUsecase interface.
type brandService struct {
	brandRepo repository.BrandRepository
	logger    *slog.Logger
}

// BrandServiceParams holds dependencies for brandService, injected by Fx.
type BrandServiceParams struct {
	fx.In

	BrandRepo repository.BrandRepository
	Logger    *slog.Logger
}

// NewBrandService is the constructor for brandService.
func NewBrandService(params BrandServiceParams) usecase.BrandUsecase {
	return &brandService{
		brandRepo: params.BrandRepo,
		logger:    params.Logger,
	}
}

func (srv *brandService) GetBrand(ctx context.Context, id uuid.UUID) (*entity.Brand, error) {
	brand, err := srv.brandRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBrandNotFound) {
			return nil, errors.Wrap(domainerrors.ErrBrandNotFound, "get brand failed")
		}

		return nil, errors.Wrap(err, "failed to find brand by id")
	}

	return brand, nil
}

func (srv *brandService) ListBrands(ctx context.Context, input *usecase.ListInput) (*usecase.ListBrandsOutput, error) {
	_, limit, offset := util.NormalizePagination(input.Page, input.Limit)

	brands, total, err := srv.brandRepo.List(ctx, repository.ListParams{
		Offset: offset,
		Limit:  limit,
		Search: input.Search,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list brands")
	}

	return &usecase.ListBrandsOutput{Brands: brands, Total: total}, nil
}

func (srv *brandService) CreateBrand(ctx context.Context, input *usecase.NameInput) (*entity.Brand, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("brand name is empty")
	}

	brand := &entity.Brand{Name: name}
	if err := srv.brandRepo.Create(ctx, brand); err != nil {
		return nil, errors.Wrap(err, "failed to create brand")
	}
	srv.logger.Info("Brand created", "brandID", brand.ID, "name", brand.Name)

	return brand, nil
}

func (srv *brandService) UpdateBrand(ctx context.Context, id uuid.UUID, input *usecase.NameInput) (*entity.Brand, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("brand name is empty")
	}

	brand, err := srv.brandRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBrandNotFound) {
			return nil, errors.Wrap(domainerrors.ErrBrandNotFound, "update brand failed")
		}

		return nil, errors.Wrap(err, "failed to find brand by id")
	}

	brand.Name = name
	if err := srv.brandRepo.Update(ctx, brand); err != nil {
		return nil, errors.Wrap(err, "failed to update brand")
	}

	return brand, nil
}

func (srv *brandService) DeleteBrand(ctx context.Context, id uuid.UUID) error {
	if err := srv.brandRepo.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, repository.ErrBrandNotFound):
			return errors.Wrap(domainerrors.ErrBrandNotFound, "delete brand failed")
		case errors.Is(err, repository.ErrEntityInUse):
			return errors.Wrap(domainerrors.ErrEntityInUse, "delete brand failed")
		default:
			return errors.Wrap(err, "failed to delete brand")
		}
	}
	srv.logger.Info("Brand deleted", "brandID", id)

	return nil
}
