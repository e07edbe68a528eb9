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

// productService implements the ProductUsecase interface.
type productService struct {
	productRepo  repository.ProductRepository
	brandRepo    repository.BrandRepository
	categoryRepo repository.CategoryRepository
	colorRepo    repository.ColorRepository
	logger       *slog.Logger
}

// ProductServiceParams holds dependencies for productService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ProductRepo  repository.ProductRepository
	BrandRepo    repository.BrandRepository
	CategoryRepo repository.CategoryRepository
	ColorRepo    repository.ColorRepository
	Logger       *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		productRepo:  params.ProductRepo,
		brandRepo:    params.BrandRepo,
		categoryRepo: params.CategoryRepo,
		colorRepo:    params.ColorRepo,
		logger:       params.Logger,
	}
}

// checkReferences verifies that the given brand/category/color exist
// before a product points at them, turning FK failures into the
// specific not-found errors clients can act on.
func (srv *productService) checkReferences(ctx context.Context, brandID, categoryID, colorID *uuid.UUID) error {
	if brandID != nil {
		if _, err := srv.brandRepo.FindByID(ctx, *brandID); err != nil {
			if errors.Is(err, repository.ErrBrandNotFound) {
				return errors.Wrap(domainerrors.ErrBrandNotFound, "product reference check failed")
			}

			return errors.Wrap(err, "failed to check brand reference")
		}
	}
	if categoryID != nil {
		if _, err := srv.categoryRepo.FindByID(ctx, *categoryID); err != nil {
			if errors.Is(err, repository.ErrCategoryNotFound) {
				return errors.Wrap(domainerrors.ErrCategoryNotFound, "product reference check failed")
			}

			return errors.Wrap(err, "failed to check category reference")
		}
	}
	if colorID != nil {
		if _, err := srv.colorRepo.FindByID(ctx, *colorID); err != nil {
			if errors.Is(err, repository.ErrColorNotFound) {
				return errors.Wrap(domainerrors.ErrColorNotFound, "product reference check failed")
			}

			return errors.Wrap(err, "failed to check color reference")
		}
	}

	return nil
}

func (srv *productService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "get product failed")
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return product, nil
}

func (srv *productService) ListProducts(ctx context.Context, input *usecase.ListInput) (*usecase.ListProductsOutput, error) {
	_, limit, offset := util.NormalizePagination(input.Page, input.Limit)

	products, total, err := srv.productRepo.List(ctx, repository.ListParams{
		Offset: offset,
		Limit:  limit,
		Search: input.Search,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return &usecase.ListProductsOutput{Products: products, Total: total}, nil
}

func (srv *productService) CreateProduct(ctx context.Context, input *usecase.CreateProductInput) (*entity.Product, error) {
	name := strings.TrimSpace(input.Name)
	sku := strings.TrimSpace(input.SKU)
	if name == "" || sku == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("product name or sku is empty")
	}
	if input.Price < 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("negative price")
	}

	if err := srv.checkReferences(ctx, input.BrandID, input.CategoryID, input.ColorID); err != nil {
		return nil, err
	}

	product := &entity.Product{
		Name:       name,
		SKU:        sku,
		BrandID:    input.BrandID,
		CategoryID: input.CategoryID,
		ColorID:    input.ColorID,
		Unit:       strings.TrimSpace(input.Unit),
		Price:      input.Price,
	}
	if err := srv.productRepo.Create(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}
	srv.logger.Info("Product created", "productID", product.ID, "sku", product.SKU)

	return srv.GetProduct(ctx, product.ID)
}

func (srv *productService) UpdateProduct(ctx context.Context, id uuid.UUID, input *usecase.UpdateProductInput) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "update product failed")
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("product name is empty")
		}
		product.Name = name
	}
	if input.SKU != nil {
		sku := strings.TrimSpace(*input.SKU)
		if sku == "" {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("product sku is empty")
		}
		product.SKU = sku
	}
	if input.BrandID != nil {
		product.BrandID = *input.BrandID
	}
	if input.CategoryID != nil {
		product.CategoryID = *input.CategoryID
	}
	if input.ColorID != nil {
		product.ColorID = *input.ColorID
	}
	if input.Unit != nil {
		product.Unit = strings.TrimSpace(*input.Unit)
	}
	if input.Price != nil {
		if *input.Price < 0 {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("negative price")
		}
		product.Price = *input.Price
	}

	if err := srv.checkReferences(ctx, product.BrandID, product.CategoryID, product.ColorID); err != nil {
		return nil, err
	}

	if err := srv.productRepo.Update(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to update product")
	}
	srv.logger.Info("Product updated", "productID", product.ID)

	return srv.GetProduct(ctx, product.ID)
}

func (srv *productService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if err := srv.productRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return errors.Wrap(domainerrors.ErrProductNotFound, "delete product failed")
		}

		return errors.Wrap(err, "failed to delete product")
	}
	srv.logger.Info("Product deleted", "productID", id)

	return nil
}
