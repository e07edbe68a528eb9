package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"sklad/config"
	"sklad/internal/delivery/http/validator"
	"sklad/internal/domain/entity"
	mockusecase "sklad/internal/mocks/usecase"
	"sklad/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newUserHandlerFixture() (*UserHandler, *mockusecase.MockUserUsecase) {
	uc := new(mockusecase.MockUserUsecase)
	h := NewUserHandler(uc, &config.AuthConfig{
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 720 * time.Hour,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	return h, uc
}

func newJSONContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func sessionCookies(rec *httptest.ResponseRecorder) map[string]*http.Cookie {
	cookies := make(map[string]*http.Cookie)
	res := rec.Result()
	for _, cookie := range res.Cookies() {
		cookies[cookie.Name] = cookie
	}

	return cookies
}

func TestUserHandler_Login_SetsSessionCookies(t *testing.T) {
	h, uc := newUserHandlerFixture()

	user := &entity.User{
		ID:    uuid.New(),
		Email: "ivanov@sklad.ru",
		Name:  "Иванов Иван",
		Role:  entity.RoleManager,
	}
	uc.On("Login", mock.Anything, &usecase.LoginInput{
		Email:    "ivanov@sklad.ru",
		Password: "secret123",
	}).Return(&usecase.LoginOutput{
		AccessToken:  "access-jwt",
		RefreshToken: "refresh-jwt",
		User:         user,
	}, nil)

	c, rec := newJSONContext(http.MethodPost, "/auth/login",
		`{"email":"ivanov@sklad.ru","password":"secret123"}`)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	cookies := sessionCookies(rec)
	require.Contains(t, cookies, "access_token")
	require.Contains(t, cookies, "refresh_token")
	assert.Equal(t, "access-jwt", cookies["access_token"].Value)
	assert.True(t, cookies["access_token"].HttpOnly)
	assert.Equal(t, "refresh-jwt", cookies["refresh_token"].Value)
	assert.Equal(t, "/auth", cookies["refresh_token"].Path)

	var body struct {
		Data struct {
			AccessToken string `json:"access_token"`
			User        struct {
				Email string `json:"email"`
			} `json:"user"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "access-jwt", body.Data.AccessToken)
	assert.Equal(t, "ivanov@sklad.ru", body.Data.User.Email)
	uc.AssertExpectations(t)
}

func TestUserHandler_Login_InvalidPayload(t *testing.T) {
	h, uc := newUserHandlerFixture()

	c, _ := newJSONContext(http.MethodPost, "/auth/login", `{"email":"not-an-email"}`)

	err := h.Login(c)

	require.Error(t, err)
	uc.AssertNotCalled(t, "Login")
}

func TestUserHandler_RefreshToken_FallsBackToCookie(t *testing.T) {
	h, uc := newUserHandlerFixture()

	uc.On("RefreshToken", mock.Anything, &usecase.RefreshTokenInput{
		RefreshToken: "cookie-refresh",
	}).Return(&usecase.RefreshTokenOutput{
		AccessToken:  "new-access",
		RefreshToken: "new-refresh",
	}, nil)

	c, rec := newJSONContext(http.MethodPost, "/auth/refresh", `{}`)
	c.Request().AddCookie(&http.Cookie{Name: "refresh_token", Value: "cookie-refresh"})

	require.NoError(t, h.RefreshToken(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	cookies := sessionCookies(rec)
	assert.Equal(t, "new-access", cookies["access_token"].Value)
	assert.Equal(t, "new-refresh", cookies["refresh_token"].Value)
	uc.AssertExpectations(t)
}

func TestUserHandler_Logout_ClearsCookies(t *testing.T) {
	h, uc := newUserHandlerFixture()

	uc.On("Logout", mock.Anything, &usecase.LogoutInput{RefreshToken: "refresh-jwt"}).Return(nil)

	c, rec := newJSONContext(http.MethodPost, "/auth/logout", `{"refresh_token":"refresh-jwt"}`)

	require.NoError(t, h.Logout(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	cookies := sessionCookies(rec)
	require.Contains(t, cookies, "access_token")
	assert.Empty(t, cookies["access_token"].Value)
	assert.Negative(t, cookies["access_token"].MaxAge)
	uc.AssertExpectations(t)
}

func TestUserHandler_ListUsers_MetaReportsNormalizedPagination(t *testing.T) {
	h, uc := newUserHandlerFixture()

	uc.On("ListUsers", mock.Anything, &usecase.ListUsersInput{Page: 1, Limit: 20}).
		Return(&usecase.ListUsersOutput{Users: nil, Total: 0}, nil)

	c, rec := newJSONContext(http.MethodGet, "/api/v1/users?page=0&limit=0", "")

	require.NoError(t, h.ListUsers(c))

	var body struct {
		Meta struct {
			Page  int `json:"page"`
			Limit int `json:"limit"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Meta.Page)
	assert.Equal(t, 20, body.Meta.Limit)
	uc.AssertExpectations(t)
}

func TestUserHandler_Register_UnknownRole(t *testing.T) {
	h, uc := newUserHandlerFixture()

	c, _ := newJSONContext(http.MethodPost, "/auth/register",
		`{"name":"Петров","email":"petrov@sklad.ru","password":"secret123","role":"director"}`)

	err := h.Register(c)

	require.Error(t, err)
	uc.AssertNotCalled(t, "Register")
}
