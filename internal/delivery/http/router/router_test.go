package router

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"sklad/config"
	"sklad/internal/delivery/http/middleware"
	"sklad/internal/delivery/http/router/handler"
	"sklad/internal/delivery/http/validator"
	"sklad/internal/domain/entity"
	"sklad/internal/domain/service"
	mockservice "sklad/internal/mocks/service"
	mockusecase "sklad/internal/mocks/usecase"
	"sklad/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type routerFixture struct {
	echo     *echo.Echo
	userUC   *mockusecase.MockUserUsecase
	auditUC  *mockusecase.MockAuditUsecase
	tokenSvc *mockservice.MockTokenService
}

func newRouterFixture() *routerFixture {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	userUC := new(mockusecase.MockUserUsecase)
	auditUC := new(mockusecase.MockAuditUsecase)
	tokenSvc := new(mockservice.MockTokenService)

	params := RouterParams{
		UserHandler:        handler.NewUserHandler(userUC, &config.AuthConfig{}, logger),
		BrandHandler:       handler.NewBrandHandler(nil),
		CategoryHandler:    handler.NewCategoryHandler(nil),
		ColorHandler:       handler.NewColorHandler(nil),
		ProductHandler:     handler.NewProductHandler(nil),
		ReceiptHandler:     handler.NewReceiptHandler(nil),
		RealizationHandler: handler.NewRealizationHandler(nil),
		ChatHandler:        handler.NewChatHandler(nil),
		TaskHandler:        handler.NewTaskHandler(nil),
		ReportHandler:      handler.NewReportHandler(nil),
		ActionHandler:      handler.NewActionHandler(nil),
		AuthMiddleware:     middleware.NewAuthMiddleware(tokenSvc),
		AuditMiddleware:    middleware.NewAuditMiddleware(auditUC, logger),
		RateLimit:          middleware.NewRateLimitMiddleware(&config.RateLimitConfig{Enabled: false}),
	}

	e := echo.New()
	e.Validator = validator.New()
	NewRouter(params).RegisterRoutes(e)

	return &routerFixture{echo: e, userUC: userUC, auditUC: auditUC, tokenSvc: tokenSvc}
}

func (fx *routerFixture) do(method, target, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	return rec
}

func TestRouter_RegisterIsAudited(t *testing.T) {
	fx := newRouterFixture()

	adminID := uuid.New()
	fx.tokenSvc.On("ValidateAccessToken", "admin-token").
		Return(&service.TokenClaims{UserID: adminID, Roles: []string{"admin"}, Type: "access"}, nil)
	fx.userUC.On("Register", mock.Anything, mock.Anything).Return(&usecase.RegisterOutput{
		User: &entity.User{ID: uuid.New(), Email: "petrov@sklad.ru", Name: "Петров", Role: entity.RoleWorker},
	}, nil)
	fx.auditUC.On("RecordAction", mock.Anything, mock.MatchedBy(func(input *usecase.RecordActionInput) bool {
		return input.UserID == adminID &&
			input.Action == "register.create" &&
			input.Path == "/auth/register"
	})).Return(nil)

	rec := fx.do(http.MethodPost, "/auth/register", "admin-token",
		`{"name":"Петров","email":"petrov@sklad.ru","password":"secret123","role":"worker"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	fx.auditUC.AssertExpectations(t)
}

func TestRouter_RegisterRequiresAdmin(t *testing.T) {
	fx := newRouterFixture()

	fx.tokenSvc.On("ValidateAccessToken", "worker-token").
		Return(&service.TokenClaims{UserID: uuid.New(), Roles: []string{"worker"}, Type: "access"}, nil)

	rec := fx.do(http.MethodPost, "/auth/register", "worker-token",
		`{"name":"Петров","email":"petrov@sklad.ru","password":"secret123","role":"worker"}`)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	fx.userUC.AssertNotCalled(t, "Register")
	fx.auditUC.AssertNotCalled(t, "RecordAction")
}

func TestRouter_LoginIsNotAudited(t *testing.T) {
	fx := newRouterFixture()

	fx.userUC.On("Login", mock.Anything, mock.Anything).Return(&usecase.LoginOutput{
		AccessToken:  "access",
		RefreshToken: "refresh",
		User:         &entity.User{ID: uuid.New(), Email: "ivanov@sklad.ru", Role: entity.RoleManager},
	}, nil)

	rec := fx.do(http.MethodPost, "/auth/login", "",
		`{"email":"ivanov@sklad.ru","password":"secret123"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	fx.auditUC.AssertNotCalled(t, "RecordAction")
}
