package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	mockusecase "sklad/internal/mocks/usecase"
	"sklad/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuditContext(method, target, routePath string, userID *uuid.UUID) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath(routePath)
	if userID != nil {
		c.Set("userID", *userID)
	}

	return c, rec
}

func TestAuditMiddleware_RecordsMutatingRequest(t *testing.T) {
	userID := uuid.New()
	auditUC := new(mockusecase.MockAuditUsecase)
	auditUC.On("RecordAction", mock.Anything, mock.MatchedBy(func(input *usecase.RecordActionInput) bool {
		return input.UserID == userID &&
			input.Action == "products.create" &&
			input.Method == http.MethodPost &&
			input.Path == "/api/v1/products"
	})).Return(nil)

	m := NewAuditMiddleware(auditUC, slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, _ := newAuditContext(http.MethodPost, "/api/v1/products", "/api/v1/products", &userID)
	handler := m.Record(func(c echo.Context) error {
		return c.NoContent(http.StatusCreated)
	})

	require.NoError(t, handler(c))
	auditUC.AssertExpectations(t)
}

func TestAuditMiddleware_SkipsReads(t *testing.T) {
	userID := uuid.New()
	auditUC := new(mockusecase.MockAuditUsecase)

	m := NewAuditMiddleware(auditUC, slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, _ := newAuditContext(http.MethodGet, "/api/v1/products", "/api/v1/products", &userID)
	handler := m.Record(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))
	auditUC.AssertNotCalled(t, "RecordAction")
}

func TestAuditMiddleware_SkipsFailedRequests(t *testing.T) {
	userID := uuid.New()
	auditUC := new(mockusecase.MockAuditUsecase)

	m := NewAuditMiddleware(auditUC, slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, _ := newAuditContext(http.MethodPost, "/api/v1/products", "/api/v1/products", &userID)
	handler := m.Record(func(c echo.Context) error {
		return c.NoContent(http.StatusBadRequest)
	})

	require.NoError(t, handler(c))
	auditUC.AssertNotCalled(t, "RecordAction")
}

func TestAuditMiddleware_AdvisoryOnRecordFailure(t *testing.T) {
	userID := uuid.New()
	auditUC := new(mockusecase.MockAuditUsecase)
	auditUC.On("RecordAction", mock.Anything, mock.Anything).Return(assert.AnError)

	m := NewAuditMiddleware(auditUC, slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, rec := newAuditContext(http.MethodDelete, "/api/v1/products/123", "/api/v1/products/:id", &userID)
	handler := m.Record(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	// The audited request must still succeed
	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestActionName(t *testing.T) {
	tests := []struct {
		method    string
		routePath string
		want      string
	}{
		{http.MethodPost, "/api/v1/products", "products.create"},
		{http.MethodPut, "/api/v1/products/:id", "products.update"},
		{http.MethodDelete, "/api/v1/realizations/:id", "realizations.delete"},
		{http.MethodPost, "/api/v1/tasks/:id/status", "status.create"},
		{http.MethodDelete, "/", "delete"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, actionName(tt.method, tt.routePath))
	}
}
