package handler

import (
	"net/http"

	"sklad/internal/delivery/http/response"
	"sklad/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type nameRequest struct {
	Name string `json:"name" validate:"required"`
}

type colorRequest struct {
	Name string `json:"name" validate:"required"`
	Hex  string `json:"hex"`
}

// BrandHandler serves the brand reference.
type BrandHandler struct {
	uc usecase.BrandUsecase
}

// NewBrandHandler is the constructor for BrandHandler, injected by Fx.
func NewBrandHandler(uc usecase.BrandUsecase) *BrandHandler {
	return &BrandHandler{uc: uc}
}

func (h *BrandHandler) Get(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	brand, err := h.uc.GetBrand(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toBrandView(brand), "")
}

func (h *BrandHandler) List(c echo.Context) error {
	page, limit, search := listQuery(c)

	output, err := h.uc.ListBrands(c.Request().Context(), &usecase.ListInput{
		Page:   page,
		Limit:  limit,
		Search: search,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.List(c, toBrandViews(output.Brands), page, limit, output.Total)
}

func (h *BrandHandler) Create(c echo.Context) error {
	var req nameRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Некорректные данные бренда")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	brand, err := h.uc.CreateBrand(c.Request().Context(), &usecase.NameInput{Name: req.Name})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toBrandView(brand), "Бренд создан")
}

func (h *BrandHandler) Update(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var req nameRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Некорректные данные бренда")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	brand, err := h.uc.UpdateBrand(c.Request().Context(), id, &usecase.NameInput{Name: req.Name})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toBrandView(brand), "Бренд обновлён")
}

func (h *BrandHandler) Delete(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.DeleteBrand(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Бренд удалён")
}

// CategoryHandler serves the category reference.
type CategoryHandler struct {
	uc usecase.CategoryUsecase
}

// NewCategoryHandler is the constructor for CategoryHandler, injected by Fx.
func NewCategoryHandler(uc usecase.CategoryUsecase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

func (h *CategoryHandler) Get(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	category, err := h.uc.GetCategory(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCategoryView(category), "")
}

func (h *CategoryHandler) List(c echo.Context) error {
	page, limit, search := listQuery(c)

	output, err := h.uc.ListCategories(c.Request().Context(), &usecase.ListInput{
		Page:   page,
		Limit:  limit,
		Search: search,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.List(c, toCategoryViews(output.Categories), page, limit, output.Total)
}

func (h *CategoryHandler) Create(c echo.Context) error {
	var req nameRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Некорректные данные категории")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	category, err := h.uc.CreateCategory(c.Request().Context(), &usecase.NameInput{Name: req.Name})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toCategoryView(category), "Категория создана")
}

func (h *CategoryHandler) Update(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var req nameRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Некорректные данные категории")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	category, err := h.uc.UpdateCategory(c.Request().Context(), id, &usecase.NameInput{Name: req.Name})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCategoryView(category), "Категория обновлена")
}

func (h *CategoryHandler) Delete(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.DeleteCategory(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Категория удалена")
}

// ColorHandler serves the color reference. A missing hex code is derived
// from the Russian color name by the usecase.
type ColorHandler struct {
	uc usecase.ColorUsecase
}

// NewColorHandler is the constructor for ColorHandler, injected by Fx.
func NewColorHandler(uc usecase.ColorUsecase) *ColorHandler {
	return &ColorHandler{uc: uc}
}

func (h *ColorHandler) Get(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	color, err := h.uc.GetColor(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toColorView(color), "")
}

func (h *ColorHandler) List(c echo.Context) error {
	page, limit, search := listQuery(c)

	output, err := h.uc.ListColors(c.Request().Context(), &usecase.ListInput{
		Page:   page,
		Limit:  limit,
		Search: search,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.List(c, toColorViews(output.Colors), page, limit, output.Total)
}

func (h *ColorHandler) Create(c echo.Context) error {
	var req colorRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Некорректные данные цвета")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	color, err := h.uc.CreateColor(c.Request().Context(), &usecase.ColorInput{Name: req.Name, Hex: req.Hex})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toColorView(color), "Цвет создан")
}

func (h *ColorHandler) Update(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var req colorRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Некорректные данные цвета")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	color, err := h.uc.UpdateColor(c.Request().Context(), id, &usecase.ColorInput{Name: req.Name, Hex: req.Hex})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toColorView(color), "Цвет обновлён")
}

func (h *ColorHandler) Delete(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.DeleteColor(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Цвет удалён")
}
