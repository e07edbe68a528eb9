package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"sklad/internal/domain/service"
	mockservice "sklad/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runAuthenticated(t *testing.T, m *AuthMiddleware, req *http.Request) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var captured echo.Context
	handler := m.Authenticate(func(c echo.Context) error {
		captured = c

		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))

	if captured != nil {
		return rec, captured
	}

	return rec, c
}

func TestAuthMiddleware_Authenticate_BearerHeader(t *testing.T) {
	userID := uuid.New()
	tokenSvc := new(mockservice.MockTokenService)
	tokenSvc.On("ValidateAccessToken", "valid-token").
		Return(&service.TokenClaims{UserID: userID, Roles: []string{"manager"}, Type: "access"}, nil)

	m := NewAuthMiddleware(tokenSvc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products", nil)
	req.Header.Set("Authorization", "Bearer valid-token")

	rec, c := runAuthenticated(t, m, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	gotID, ok := UserID(c)
	require.True(t, ok)
	assert.Equal(t, userID, gotID)
	assert.Equal(t, []string{"manager"}, c.Get("roles"))
	tokenSvc.AssertExpectations(t)
}

func TestAuthMiddleware_Authenticate_Cookie(t *testing.T) {
	userID := uuid.New()
	tokenSvc := new(mockservice.MockTokenService)
	tokenSvc.On("ValidateAccessToken", "cookie-token").
		Return(&service.TokenClaims{UserID: userID, Roles: []string{"worker"}, Type: "access"}, nil)

	m := NewAuthMiddleware(tokenSvc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products", nil)
	req.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: "cookie-token"})

	rec, c := runAuthenticated(t, m, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	gotID, ok := UserID(c)
	require.True(t, ok)
	assert.Equal(t, userID, gotID)
}

func TestAuthMiddleware_Authenticate_MissingToken(t *testing.T) {
	tokenSvc := new(mockservice.MockTokenService)
	m := NewAuthMiddleware(tokenSvc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products", nil)
	rec, _ := runAuthenticated(t, m, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	tokenSvc.AssertNotCalled(t, "ValidateAccessToken")
}

func TestAuthMiddleware_Authenticate_InvalidToken(t *testing.T) {
	tokenSvc := new(mockservice.MockTokenService)
	tokenSvc.On("ValidateAccessToken", "garbage").Return(nil, errors.New("token is malformed"))

	m := NewAuthMiddleware(tokenSvc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products", nil)
	req.Header.Set("Authorization", "Bearer garbage")

	rec, _ := runAuthenticated(t, m, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	tests := []struct {
		name     string
		roles    []string
		required []string
		wantCode int
	}{
		{"admin allowed", []string{"admin"}, []string{"admin"}, http.StatusOK},
		{"any of several", []string{"manager"}, []string{"admin", "manager"}, http.StatusOK},
		{"worker denied", []string{"worker"}, []string{"admin", "manager"}, http.StatusForbidden},
		{"no roles on context", nil, []string{"admin"}, http.StatusForbidden},
	}

	m := NewAuthMiddleware(new(mockservice.MockTokenService))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodDelete, "/api/v1/products/1", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			if tt.roles != nil {
				c.Set("roles", tt.roles)
			}

			handler := m.RequireRole(tt.required...)(func(c echo.Context) error {
				return c.NoContent(http.StatusOK)
			})

			require.NoError(t, handler(c))
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
