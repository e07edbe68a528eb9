package impl

import (
	"context"
	"log/slog"
	"time"

	"sklad/internal/domain/repository"
	"sklad/internal/usecase"
	"sklad/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// reportService implements the ReportUsecase interface.
type reportService struct {
	reportRepo repository.ReportRepository
	logger     *slog.Logger
}

// ReportServiceParams holds dependencies for reportService, injected by Fx.
type ReportServiceParams struct {
	fx.In

	ReportRepo repository.ReportRepository
	Logger     *slog.Logger
}

// NewReportService is the constructor for reportService.
func NewReportService(params ReportServiceParams) usecase.ReportUsecase {
	return &reportService{
		reportRepo: params.ReportRepo,
		logger:     params.Logger,
	}
}

// StockLevels reports the current stock per product, shortages first.
func (srv *reportService) StockLevels(ctx context.Context, input *usecase.ListInput) (*usecase.StockLevelsOutput, error) {
	_, limit, offset := util.NormalizePagination(input.Page, input.Limit)

	products, total, err := srv.reportRepo.StockLevels(ctx, repository.ListParams{
		Offset: offset,
		Limit:  limit,
		Search: input.Search,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to report stock levels")
	}

	return &usecase.StockLevelsOutput{Products: products, Total: total}, nil
}

// Movements aggregates receipts and realizations per product over a
// period. A zero From defaults to the beginning of time, a zero To to now.
func (srv *reportService) Movements(ctx context.Context, input *usecase.MovementsInput) (*usecase.MovementsOutput, error) {
	from := input.From
	to := input.To
	if to.IsZero() {
		to = time.Now()
	}
	if !from.IsZero() && from.After(to) {
		from, to = to, from
	}

	movements, err := srv.reportRepo.Movements(ctx, from, to)
	if err != nil {
		return nil, errors.Wrap(err, "failed to report movements")
	}

	return &usecase.MovementsOutput{
		From:      from,
		To:        to,
		Movements: movements,
	}, nil
}

// Summary returns the dashboard counters.
func (srv *reportService) Summary(ctx context.Context) (*usecase.SummaryOutput, error) {
	counts, err := srv.reportRepo.Counts(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to report summary counts")
	}

	return &usecase.SummaryOutput{
		Products:     counts.Products,
		Users:        counts.Users,
		Receipts:     counts.Receipts,
		Realizations: counts.Realizations,
		StockUnits:   counts.StockUnits,
	}, nil
}
