package usecase

import (
	"context"

	"sklad/internal/domain/entity"

	"github.com/google/uuid"
)

// StockItemInput is one product line of a stock document.
type StockItemInput struct {
	ProductID uuid.UUID
	Quantity  int
	// UnitAmount is the per-unit cost (receipts) or price (realizations)
	// in minor currency units.
	UnitAmount int64
}

// CreateReceiptInput defines the data required to post a goods arrival.
type CreateReceiptInput struct {
	Number   string
	Supplier string
	Note     string
	Items    []*StockItemInput
}

// CreateRealizationInput defines the data required to post a shipment.
type CreateRealizationInput struct {
	Number   string
	Customer string
	Note     string
	Items    []*StockItemInput
}

// ListReceiptsOutput returns one page of receipts with the total match count.
type ListReceiptsOutput struct {
	Receipts []*entity.Receipt
	Total    int64
}

// ListRealizationsOutput returns one page of realizations with the total match count.
type ListRealizationsOutput struct {
	Realizations []*entity.Realization
	Total        int64
}

// ReceiptUsecase defines goods-arrival document operations. Posting a
// receipt increases product stock atomically with the document itself;
// deleting one reverses the increase.
type ReceiptUsecase interface {
	GetReceipt(ctx context.Context, id uuid.UUID) (*entity.Receipt, error)
	ListReceipts(ctx context.Context, input *ListInput) (*ListReceiptsOutput, error)
	CreateReceipt(ctx context.Context, actorID uuid.UUID, input *CreateReceiptInput) (*entity.Receipt, error)
	DeleteReceipt(ctx context.Context, id uuid.UUID) error
}

// RealizationUsecase defines shipment document operations. Posting a
// realization decreases product stock; a line that would drive stock
// below zero rejects the whole document.
type RealizationUsecase interface {
	GetRealization(ctx context.Context, id uuid.UUID) (*entity.Realization, error)
	ListRealizations(ctx context.Context, input *ListInput) (*ListRealizationsOutput, error)
	CreateRealization(ctx context.Context, actorID uuid.UUID, input *CreateRealizationInput) (*entity.Realization, error)
	DeleteRealization(ctx context.Context, id uuid.UUID) error
}
