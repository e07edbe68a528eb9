package handler

import (
	"net/http"

	"sklad/internal/delivery/http/middleware"
	"sklad/internal/delivery/http/response"
	"sklad/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type stockItemRequest struct {
	ProductID  uuid.UUID `json:"product_id" validate:"required"`
	Quantity   int       `json:"quantity" validate:"required,gt=0"`
	UnitAmount int64     `json:"unit_amount" validate:"gte=0"`
}

func toStockItemInputs(items []*stockItemRequest) []*usecase.StockItemInput {
	inputs := make([]*usecase.StockItemInput, len(items))
	for i, item := range items {
		inputs[i] = &usecase.StockItemInput{
			ProductID:  item.ProductID,
			Quantity:   item.Quantity,
			UnitAmount: item.UnitAmount,
		}
	}

	return inputs
}

// ReceiptHandler serves goods-arrival documents.
type ReceiptHandler struct {
	uc usecase.ReceiptUsecase
}

// NewReceiptHandler is the constructor for ReceiptHandler, injected by Fx.
func NewReceiptHandler(uc usecase.ReceiptUsecase) *ReceiptHandler {
	return &ReceiptHandler{uc: uc}
}

type createReceiptRequest struct {
	Number   string              `json:"number" validate:"required"`
	Supplier string              `json:"supplier"`
	Note     string              `json:"note"`
	Items    []*stockItemRequest `json:"items" validate:"required,min=1,dive"`
}

func (h *ReceiptHandler) Get(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	receipt, err := h.uc.GetReceipt(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toReceiptView(receipt), "")
}

func (h *ReceiptHandler) List(c echo.Context) error {
	page, limit, search := listQuery(c)

	output, err := h.uc.ListReceipts(c.Request().Context(), &usecase.ListInput{
		Page:   page,
		Limit:  limit,
		Search: search,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.List(c, toReceiptViews(output.Receipts), page, limit, output.Total)
}

// Create posts a receipt: the document and its stock increases are applied
// in one transaction.
func (h *ReceiptHandler) Create(c echo.Context) error {
	actorID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Требуется авторизация")
	}

	var req createReceiptRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Некорректные данные поступления")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	receipt, err := h.uc.CreateReceipt(c.Request().Context(), actorID, &usecase.CreateReceiptInput{
		Number:   req.Number,
		Supplier: req.Supplier,
		Note:     req.Note,
		Items:    toStockItemInputs(req.Items),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toReceiptView(receipt), "Поступление проведено")
}

// Delete reverses a receipt, returning its quantities back off the stock.
func (h *ReceiptHandler) Delete(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.DeleteReceipt(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Поступление удалено")
}

// RealizationHandler serves shipment documents.
type RealizationHandler struct {
	uc usecase.RealizationUsecase
}

// NewRealizationHandler is the constructor for RealizationHandler, injected by Fx.
func NewRealizationHandler(uc usecase.RealizationUsecase) *RealizationHandler {
	return &RealizationHandler{uc: uc}
}

type createRealizationRequest struct {
	Number   string              `json:"number" validate:"required"`
	Customer string              `json:"customer"`
	Note     string              `json:"note"`
	Items    []*stockItemRequest `json:"items" validate:"required,min=1,dive"`
}

func (h *RealizationHandler) Get(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	realization, err := h.uc.GetRealization(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toRealizationView(realization), "")
}

func (h *RealizationHandler) List(c echo.Context) error {
	page, limit, search := listQuery(c)

	output, err := h.uc.ListRealizations(c.Request().Context(), &usecase.ListInput{
		Page:   page,
		Limit:  limit,
		Search: search,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.List(c, toRealizationViews(output.Realizations), page, limit, output.Total)
}

// Create posts a realization: stock is checked and decreased atomically,
// an insufficient balance rejects the whole document.
func (h *RealizationHandler) Create(c echo.Context) error {
	actorID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Требуется авторизация")
	}

	var req createRealizationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Некорректные данные реализации")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	realization, err := h.uc.CreateRealization(c.Request().Context(), actorID, &usecase.CreateRealizationInput{
		Number:   req.Number,
		Customer: req.Customer,
		Note:     req.Note,
		Items:    toStockItemInputs(req.Items),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toRealizationView(realization), "Реализация проведена")
}

// Delete reverses a realization, returning its quantities to the stock.
func (h *RealizationHandler) Delete(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.DeleteRealization(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Реализация удалена")
}
