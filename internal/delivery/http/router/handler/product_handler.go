package handler

import (
	"net/http"

	"sklad/internal/delivery/http/response"
	"sklad/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProductHandler serves the product catalog.
type ProductHandler struct {
	uc usecase.ProductUsecase
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(uc usecase.ProductUsecase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

type createProductRequest struct {
	Name       string     `json:"name" validate:"required"`
	SKU        string     `json:"sku" validate:"required"`
	BrandID    *uuid.UUID `json:"brand_id"`
	CategoryID *uuid.UUID `json:"category_id"`
	ColorID    *uuid.UUID `json:"color_id"`
	Unit       string     `json:"unit"`
	Price      int64      `json:"price" validate:"gte=0"`
}

type updateProductRequest struct {
	Name       *string      `json:"name" validate:"omitempty,min=1"`
	SKU        *string      `json:"sku" validate:"omitempty,min=1"`
	BrandID    nullableUUID `json:"brand_id"`
	CategoryID nullableUUID `json:"category_id"`
	ColorID    nullableUUID `json:"color_id"`
	Unit       *string      `json:"unit"`
	Price      *int64       `json:"price" validate:"omitempty,gte=0"`
}

func (h *ProductHandler) Get(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	product, err := h.uc.GetProduct(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductView(product), "")
}

func (h *ProductHandler) List(c echo.Context) error {
	page, limit, search := listQuery(c)

	output, err := h.uc.ListProducts(c.Request().Context(), &usecase.ListInput{
		Page:   page,
		Limit:  limit,
		Search: search,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.List(c, toProductViews(output.Products), page, limit, output.Total)
}

func (h *ProductHandler) Create(c echo.Context) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Некорректные данные товара")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	product, err := h.uc.CreateProduct(c.Request().Context(), &usecase.CreateProductInput{
		Name:       req.Name,
		SKU:        req.SKU,
		BrandID:    req.BrandID,
		CategoryID: req.CategoryID,
		ColorID:    req.ColorID,
		Unit:       req.Unit,
		Price:      req.Price,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toProductView(product), "Товар создан")
}

func (h *ProductHandler) Update(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var req updateProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Некорректные данные товара")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	input := &usecase.UpdateProductInput{
		Name:  req.Name,
		SKU:   req.SKU,
		Unit:  req.Unit,
		Price: req.Price,
	}
	if req.BrandID.Set {
		input.BrandID = &req.BrandID.Value
	}
	if req.CategoryID.Set {
		input.CategoryID = &req.CategoryID.Value
	}
	if req.ColorID.Set {
		input.ColorID = &req.ColorID.Value
	}

	product, err := h.uc.UpdateProduct(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductView(product), "Товар обновлён")
}

func (h *ProductHandler) Delete(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.DeleteProduct(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Товар удалён")
}
