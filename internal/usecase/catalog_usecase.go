package usecase

import (
	"context"

	"sklad/internal/domain/entity"

	"github.com/google/uuid"
)

// ListInput carries pagination and search shared by catalog listings.
type ListInput struct {
	Page   int
	Limit  int
	Search string
}

// NameInput is the payload for creating or renaming a brand/category.
type NameInput struct {
	Name string
}

// ColorInput is the payload for creating or updating a color. When Hex
// is empty it is derived from the Russian color name; unknown names are
// rejected.
type ColorInput struct {
	Name string
	Hex  string
}

// ListBrandsOutput returns one page of brands with the total match count.
type ListBrandsOutput struct {
	Brands []*entity.Brand
	Total  int64
}

// ListCategoriesOutput returns one page of categories with the total match count.
type ListCategoriesOutput struct {
	Categories []*entity.Category
	Total      int64
}

// ListColorsOutput returns one page of colors with the total match count.
type ListColorsOutput struct {
	Colors []*entity.Color
	Total  int64
}

// BrandUsecase defines brand catalog operations.
type BrandUsecase interface {
	GetBrand(ctx context.Context, id uuid.UUID) (*entity.Brand, error)
	ListBrands(ctx context.Context, input *ListInput) (*ListBrandsOutput, error)
	CreateBrand(ctx context.Context, input *NameInput) (*entity.Brand, error)
	UpdateBrand(ctx context.Context, id uuid.UUID, input *NameInput) (*entity.Brand, error)
	// DeleteBrand removes a brand; fails while products reference it.
	DeleteBrand(ctx context.Context, id uuid.UUID) error
}

// CategoryUsecase defines category catalog operations.
type CategoryUsecase interface {
	GetCategory(ctx context.Context, id uuid.UUID) (*entity.Category, error)
	ListCategories(ctx context.Context, input *ListInput) (*ListCategoriesOutput, error)
	CreateCategory(ctx context.Context, input *NameInput) (*entity.Category, error)
	UpdateCategory(ctx context.Context, id uuid.UUID, input *NameInput) (*entity.Category, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error
}

// ColorUsecase defines color catalog operations.
type ColorUsecase interface {
	GetColor(ctx context.Context, id uuid.UUID) (*entity.Color, error)
	ListColors(ctx context.Context, input *ListInput) (*ListColorsOutput, error)
	CreateColor(ctx context.Context, input *ColorInput) (*entity.Color, error)
	UpdateColor(ctx context.Context, id uuid.UUID, input *ColorInput) (*entity.Color, error)
	DeleteColor(ctx context.Context, id uuid.UUID) error
}
