package repository

import (
	"context"
	"errors"
	"time"

	"sklad/internal/domain/entity"

	"github.com/google/uuid"
)

// Stock document errors.
var (
	ErrReceiptNotFound     = errors.New("receipt not found")
	ErrRealizationNotFound = errors.New("realization not found")
	ErrDuplicateNumber     = errors.New("duplicate document number")
)

// ReceiptRepository defines persistence for goods-arrival documents.
// Item loading prefers the receipt_id foreign key; legacy rows with a
// NULL foreign key are attached by the creation-time window fallback.
type ReceiptRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Receipt, error)
	List(ctx context.Context, params ListParams) ([]*entity.Receipt, int64, error)
	Create(ctx context.Context, receipt *entity.Receipt) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// RealizationRepository defines persistence for shipment documents.
type RealizationRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Realization, error)
	List(ctx context.Context, params ListParams) ([]*entity.Realization, int64, error)
	Create(ctx context.Context, realization *entity.Realization) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// MovementTotals aggregates receipt and realization quantities for one
// product over a reporting period.
type MovementTotals struct {
	ProductID      uuid.UUID
	ProductName    string
	ReceivedQty    int
	ShippedQty     int
	ReceivedCost   int64
	ShippedRevenue int64
}

// ReportRepository exposes the aggregate queries behind admin reports.
type ReportRepository interface {
	// StockLevels returns current stock per product joined with references.
	StockLevels(ctx context.Context, params ListParams) ([]*entity.Product, int64, error)

	// Movements aggregates receipts/realizations per product between from and to.
	Movements(ctx context.Context, from, to time.Time) ([]*MovementTotals, error)

	// Counts returns entity counts for the summary dashboard.
	Counts(ctx context.Context) (*SummaryCounts, error)
}

// SummaryCounts holds dashboard counters.
type SummaryCounts struct {
	Products     int64
	Users        int64
	Receipts     int64
	Realizations int64
	StockUnits   int64
}
