package postgres

import (
	"context"

	"sklad/internal/domain/entity"
	domainerrors "sklad/internal/domain/errors"
	"sklad/internal/domain/repository"
	"sklad/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// FindByID retrieves a product with its brand/category/color preloaded.
func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Preload("Brand").
		Preload("Category").
		Preload("Color").
		Where("id = ? AND deleted_at IS NULL", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return toProductDomain(&productM), nil
}

// FindBySKU retrieves a product by its unique article code.
func (repo *productRepository) FindBySKU(ctx context.Context, sku string) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Preload("Brand").
		Preload("Category").
		Preload("Color").
		Where("sku = ? AND deleted_at IS NULL", sku).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by sku")
	}

	return toProductDomain(&productM), nil
}

// List retrieves products with references preloaded; search matches
// name and SKU case-insensitively.
func (repo *productRepository) List(ctx context.Context, params repository.ListParams) ([]*entity.Product, int64, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("deleted_at IS NULL")

	if params.Search != "" {
		pattern := "%" + params.Search + "%"
		query = query.Where("name ILIKE ? OR sku ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count products")
	}

	var productModels []*model.ProductModel
	if err := query.
		Preload("Brand").
		Preload("Category").
		Preload("Color").
		Order("created_at DESC").
		Offset(params.Offset).
		Limit(params.Limit).
		Find(&productModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products, total, nil
}

// Create persists a new product.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDuplicateSKU.WrapMessage("sku already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid brand/category/color reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required product fields")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// Update modifies an existing product. Stock is intentionally excluded:
// it changes only through AdjustStock.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ? AND deleted_at IS NULL", product.ID).
		Updates(map[string]any{
			"name":        product.Name,
			"sku":         product.SKU,
			"brand_id":    product.BrandID,
			"category_id": product.CategoryID,
			"color_id":    product.ColorID,
			"unit":        product.Unit,
			"price":       product.Price,
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrDuplicateSKU.WrapMessage("sku already exists")
		}
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid brand/category/color reference")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// Delete soft-deletes a product by ID.
func (repo *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Update("deleted_at", gorm.Expr("NOW()"))
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// AdjustStock atomically changes the on-hand quantity by delta.
// The guard in the WHERE clause keeps stock non-negative; a decrement
// that would go below zero affects no rows and returns ErrInsufficientStock.
func (repo *productRepository) AdjustStock(ctx context.Context, id uuid.UUID, delta int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ? AND deleted_at IS NULL AND stock + ? >= 0", id, delta).
		Update("stock", gorm.Expr("stock + ?", delta))
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to adjust product stock")
	}
	if result.RowsAffected == 0 {
		// Distinguish a missing product from a stock underflow.
		var exists int64
		if err := repo.db.WithContext(ctx).
			Model(&model.ProductModel{}).
			Where("id = ? AND deleted_at IS NULL", id).
			Count(&exists).Error; err != nil {
			return errors.Wrap(err, "failed to check product existence")
		}
		if exists == 0 {
			return repository.ErrProductNotFound
		}

		return repository.ErrInsufficientStock
	}

	return nil
}

// --- Mapper Functions ---

func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:         data.ID,
		Name:       data.Name,
		SKU:        data.SKU,
		BrandID:    data.BrandID,
		CategoryID: data.CategoryID,
		ColorID:    data.ColorID,
		Unit:       data.Unit,
		Price:      data.Price,
		Stock:      data.Stock,
		Brand:      toBrandDomain(data.Brand),
		Category:   toCategoryDomain(data.Category),
		Color:      toColorDomain(data.Color),
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ID:         data.ID,
		Name:       data.Name,
		SKU:        data.SKU,
		BrandID:    data.BrandID,
		CategoryID: data.CategoryID,
		ColorID:    data.ColorID,
		Unit:       data.Unit,
		Price:      data.Price,
		Stock:      data.Stock,
	}
}
