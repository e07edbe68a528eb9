package repository

import (
	"context"
	"errors"

	"sklad/internal/domain/entity"

	"github.com/google/uuid"
)

// Catalog lookup errors. Deletion of a referenced record returns ErrEntityInUse.
var (
	ErrBrandNotFound    = errors.New("brand not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrColorNotFound    = errors.New("color not found")
	ErrEntityInUse      = errors.New("entity is referenced by products")
)

// BrandRepository defines persistence for brands.
type BrandRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Brand, error)
	List(ctx context.Context, params ListParams) ([]*entity.Brand, int64, error)
	Create(ctx context.Context, brand *entity.Brand) error
	Update(ctx context.Context, brand *entity.Brand) error
	// Delete removes a brand; returns ErrEntityInUse while products reference it.
	Delete(ctx context.Context, id uuid.UUID) error
}

// CategoryRepository defines persistence for categories.
type CategoryRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)
	List(ctx context.Context, params ListParams) ([]*entity.Category, int64, error)
	Create(ctx context.Context, category *entity.Category) error
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ColorRepository defines persistence for colors.
type ColorRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Color, error)
	List(ctx context.Context, params ListParams) ([]*entity.Color, int64, error)
	Create(ctx context.Context, color *entity.Color) error
	Update(ctx context.Context, color *entity.Color) error
	Delete(ctx context.Context, id uuid.UUID) error
}
