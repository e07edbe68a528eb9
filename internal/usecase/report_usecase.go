package usecase

import (
	"context"
	"time"

	"sklad/internal/domain/entity"
	"sklad/internal/domain/repository"
)

// MovementsInput bounds the movement report period. A zero From defaults
// to the beginning of time, a zero To to now.
type MovementsInput struct {
	From time.Time
	To   time.Time
}

// StockLevelsOutput returns one page of current stock with the total match count.
type StockLevelsOutput struct {
	Products []*entity.Product
	Total    int64
}

// MovementsOutput returns per-product movement totals for the period.
type MovementsOutput struct {
	From      time.Time
	To        time.Time
	Movements []*repository.MovementTotals
}

// SummaryOutput holds the dashboard counters.
type SummaryOutput struct {
	Products     int64
	Users        int64
	Receipts     int64
	Realizations int64
	StockUnits   int64
}

// ReportUsecase defines the admin reporting operations.
type ReportUsecase interface {
	// StockLevels reports the current stock per product, shortages first.
	StockLevels(ctx context.Context, input *ListInput) (*StockLevelsOutput, error)

	// Movements aggregates receipts and realizations per product over a period.
	Movements(ctx context.Context, input *MovementsInput) (*MovementsOutput, error)

	// Summary returns the dashboard counters.
	Summary(ctx context.Context) (*SummaryOutput, error)
}
