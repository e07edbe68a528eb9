package handler

import (
	"net/http"
	"time"

	"sklad/internal/delivery/http/response"
	domainerrors "sklad/internal/domain/errors"
	"sklad/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ReportHandler serves the admin reports.
type ReportHandler struct {
	uc usecase.ReportUsecase
}

// NewReportHandler is the constructor for ReportHandler, injected by Fx.
func NewReportHandler(uc usecase.ReportUsecase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// StockLevels reports current stock per product, shortages first.
func (h *ReportHandler) StockLevels(c echo.Context) error {
	page, limit, search := listQuery(c)

	output, err := h.uc.StockLevels(c.Request().Context(), &usecase.ListInput{
		Page:   page,
		Limit:  limit,
		Search: search,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.List(c, toProductViews(output.Products), page, limit, output.Total)
}

// Movements aggregates receipts and realizations per product between the
// "from" and "to" query parameters (RFC 3339).
func (h *ReportHandler) Movements(c echo.Context) error {
	from, err := parseTimeParam(c, "from")
	if err != nil {
		return errors.WithStack(err)
	}
	to, err := parseTimeParam(c, "to")
	if err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Movements(c.Request().Context(), &usecase.MovementsInput{From: from, To: to})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toMovementsView(output), "")
}

// Summary returns the dashboard counters.
func (h *ReportHandler) Summary(c echo.Context) error {
	output, err := h.uc.Summary(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, &SummaryView{
		Products:     output.Products,
		Users:        output.Users,
		Receipts:     output.Receipts,
		Realizations: output.Realizations,
		StockUnits:   output.StockUnits,
	}, "")
}

func parseTimeParam(c echo.Context, name string) (time.Time, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return time.Time{}, nil
	}

	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, domainerrors.ErrValidationFailed.WithDetails("некорректный параметр " + name)
	}

	return parsed, nil
}
