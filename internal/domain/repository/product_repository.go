package repository

import (
	"context"
	"errors"

	"sklad/internal/domain/entity"

	"github.com/google/uuid"
)

// Product persistence errors.
var (
	ErrProductNotFound   = errors.New("product not found")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// ProductRepository defines persistence for catalog products.
type ProductRepository interface {
	// FindByID retrieves a product with its brand/category/color preloaded.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindBySKU retrieves a product by its unique article code.
	FindBySKU(ctx context.Context, sku string) (*entity.Product, error)

	// List retrieves products with references preloaded; search matches
	// name and SKU case-insensitively.
	List(ctx context.Context, params ListParams) ([]*entity.Product, int64, error)

	Create(ctx context.Context, product *entity.Product) error
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id uuid.UUID) error

	// AdjustStock atomically changes the on-hand quantity by delta
	// (negative for shipments). A decrement below zero returns
	// ErrInsufficientStock and leaves the row unchanged.
	AdjustStock(ctx context.Context, id uuid.UUID, delta int) error
}
