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

// categoryService implements the CategoryUsecase interface.
type categoryService struct {
	categoryRepo repository.CategoryRepository
	logger       *slog.Logger
}

// CategoryServiceParams holds dependencies for categoryService, injected by Fx.
type CategoryServiceParams struct {
	fx.In

	CategoryRepo repository.CategoryRepository
	Logger       *slog.Logger
}

// NewCategoryService is the constructor for categoryService.
func NewCategoryService(params CategoryServiceParams) usecase.CategoryUsecase {
	return &categoryService{
		categoryRepo: params.CategoryRepo,
		logger:       params.Logger,
	}
}

func (srv *categoryService) GetCategory(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	category, err := srv.categoryRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, errors.Wrap(domainerrors.ErrCategoryNotFound, "get category failed")
		}

		return nil, errors.Wrap(err, "failed to find category by id")
	}

	return category, nil
}

func (srv *categoryService) ListCategories(ctx context.Context, input *usecase.ListInput) (*usecase.ListCategoriesOutput, error) {
	_, limit, offset := util.NormalizePagination(input.Page, input.Limit)

	categories, total, err := srv.categoryRepo.List(ctx, repository.ListParams{
		Offset: offset,
		Limit:  limit,
		Search: input.Search,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return &usecase.ListCategoriesOutput{Categories: categories, Total: total}, nil
}

func (srv *categoryService) CreateCategory(ctx context.Context, input *usecase.NameInput) (*entity.Category, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("category name is empty")
	}

	category := &entity.Category{Name: name}
	if err := srv.categoryRepo.Create(ctx, category); err != nil {
		return nil, errors.Wrap(err, "failed to create category")
	}
	srv.logger.Info("Category created", "categoryID", category.ID, "name", category.Name)

	return category, nil
}

func (srv *categoryService) UpdateCategory(ctx context.Context, id uuid.UUID, input *usecase.NameInput) (*entity.Category, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("category name is empty")
	}

	category, err := srv.categoryRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, errors.Wrap(domainerrors.ErrCategoryNotFound, "update category failed")
		}

		return nil, errors.Wrap(err, "failed to find category by id")
	}

	category.Name = name
	if err := srv.categoryRepo.Update(ctx, category); err != nil {
		return nil, errors.Wrap(err, "failed to update category")
	}

	return category, nil
}

func (srv *categoryService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	if err := srv.categoryRepo.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, repository.ErrCategoryNotFound):
			return errors.Wrap(domainerrors.ErrCategoryNotFound, "delete category failed")
		case errors.Is(err, repository.ErrEntityInUse):
			return errors.Wrap(domainerrors.ErrEntityInUse, "delete category failed")
		default:
			return errors.Wrap(err, "failed to delete category")
		}
	}
	srv.logger.Info("Category deleted", "categoryID", id)

	return nil
}
