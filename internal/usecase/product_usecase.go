package usecase

import (
	"context"

	"sklad/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateProductInput defines the data required to create a product.
// Stock always starts at zero; it changes only through stock documents.
type CreateProductInput struct {
	Name       string
	SKU        string
	BrandID    *uuid.UUID
	CategoryID *uuid.UUID
	ColorID    *uuid.UUID
	Unit       string
	Price      int64
}

// UpdateProductInput defines the mutable fields of a product.
// Nil pointers leave the field unchanged; reference pointers set to a
// nil UUID clear the reference.
type UpdateProductInput struct {
	Name       *string
	SKU        *string
	BrandID    **uuid.UUID
	CategoryID **uuid.UUID
	ColorID    **uuid.UUID
	Unit       *string
	Price      *int64
}

// ListProductsOutput returns one page of products with the total match count.
type ListProductsOutput struct {
	Products []*entity.Product
	Total    int64
}

// ProductUsecase defines product catalog operations.
type ProductUsecase interface {
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	ListProducts(ctx context.Context, input *ListInput) (*ListProductsOutput, error)
	CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, input *UpdateProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
}
