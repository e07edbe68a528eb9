package handler

import (
	"sklad/internal/delivery/http/response"
	domainerrors "sklad/internal/domain/errors"
	"sklad/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ActionHandler serves the action audit log. Admin only.
type ActionHandler struct {
	uc usecase.AuditUsecase
}

// NewActionHandler is the constructor for ActionHandler, injected by Fx.
func NewActionHandler(uc usecase.AuditUsecase) *ActionHandler {
	return &ActionHandler{uc: uc}
}

// List returns one page of audit entries, newest first. Supports filtering
// by user ("user_id") and period ("from"/"to", RFC 3339).
func (h *ActionHandler) List(c echo.Context) error {
	page, limit, search := listQuery(c)

	var userID *uuid.UUID
	if raw := c.QueryParam("user_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			return domainerrors.ErrValidationFailed.WithDetails("некорректный параметр user_id")
		}
		userID = &parsed
	}

	from, err := parseTimeParam(c, "from")
	if err != nil {
		return errors.WithStack(err)
	}
	to, err := parseTimeParam(c, "to")
	if err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.ListActions(c.Request().Context(), &usecase.ListActionsInput{
		Page:   page,
		Limit:  limit,
		Search: search,
		UserID: userID,
		From:   from,
		To:     to,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.List(c, toUserActionViews(output.Actions), page, limit, output.Total)
}
