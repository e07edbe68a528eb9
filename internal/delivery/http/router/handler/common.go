// Package handler contains the HTTP handlers for the application.
package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	domainerrors "sklad/internal/domain/errors"
	"sklad/internal/util"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// nullableUUID distinguishes an absent JSON field from an explicit null.
// An explicit null clears the reference on update.
type nullableUUID struct {
	Set   bool
	Value *uuid.UUID
}

func (n *nullableUUID) UnmarshalJSON(data []byte) error {
	n.Set = true
	if string(data) == "null" {
		n.Value = nil

		return nil
	}

	return json.Unmarshal(data, &n.Value)
}

// nullableTime distinguishes an absent JSON field from an explicit null.
type nullableTime struct {
	Set   bool
	Value *time.Time
}

func (n *nullableTime) UnmarshalJSON(data []byte) error {
	n.Set = true
	if string(data) == "null" {
		n.Value = nil

		return nil
	}

	return json.Unmarshal(data, &n.Value)
}

// paramID parses the ":id" path parameter.
func paramID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("некорректный идентификатор")
	}

	return id, nil
}

// listQuery extracts the common pagination and search query parameters.
// Page and limit are normalized here so list meta reports the values the
// page was actually served with; the usecase clamps again on its own.
func listQuery(c echo.Context) (page, limit int, search string) {
	page, _ = strconv.Atoi(c.QueryParam("page"))
	limit, _ = strconv.Atoi(c.QueryParam("limit"))
	page, limit, _ = util.NormalizePagination(page, limit)

	return page, limit, c.QueryParam("search")
}

// HealthCheck reports service liveness.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
