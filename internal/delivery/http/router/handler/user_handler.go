package handler

import (
	"log/slog"
	"net/http"
	"time"

	"sklad/config"
	"sklad/internal/delivery/http/middleware"
	"sklad/internal/delivery/http/response"
	"sklad/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const refreshTokenCookie = "refresh_token"

// UserHandler holds dependencies for account and session handlers.
type UserHandler struct {
	uc      usecase.UserUsecase
	authCfg *config.AuthConfig
	logger  *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, authCfg *config.AuthConfig, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:      uc,
		authCfg: authCfg,
		logger:  logger,
	}
}

type registerRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required,oneof=admin manager worker"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type updateUserRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1"`
	Role     *string `json:"role" validate:"omitempty,oneof=admin manager worker"`
	Password *string `json:"password" validate:"omitempty,min=6"`
}

// Register handles employee account creation. Admin only.
func (h *UserHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Некорректные данные регистрации")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Register(c.Request().Context(), &usecase.RegisterUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toUserView(output.User), "Сотрудник зарегистрирован")
}

// Login handles the user login request. On success the token pair is set
// as HttpOnly cookies for browser clients and returned in the body for
// API clients.
func (h *UserHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Некорректные данные входа")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	h.setSessionCookies(c, output.AccessToken, output.RefreshToken)

	return response.Success(c, http.StatusOK, &LoginView{
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
		User:         toUserView(output.User),
	}, "Вход выполнен")
}

// RefreshToken exchanges a refresh token for a new pair. The token comes
// from the body or, for browser clients, from the session cookie.
func (h *UserHandler) RefreshToken(c echo.Context) error {
	var req refreshRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Некорректный запрос обновления токена")
	}
	if req.RefreshToken == "" {
		if cookie, err := c.Cookie(refreshTokenCookie); err == nil {
			req.RefreshToken = cookie.Value
		}
	}

	output, err := h.uc.RefreshToken(c.Request().Context(), &usecase.RefreshTokenInput{
		RefreshToken: req.RefreshToken,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	h.setSessionCookies(c, output.AccessToken, output.RefreshToken)

	return response.Success(c, http.StatusOK, &TokenPairView{
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
	}, "Токен обновлён")
}

// Logout revokes the refresh token and clears the session cookies.
func (h *UserHandler) Logout(c echo.Context) error {
	var req refreshRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Некорректный запрос выхода")
	}
	if req.RefreshToken == "" {
		if cookie, err := c.Cookie(refreshTokenCookie); err == nil {
			req.RefreshToken = cookie.Value
		}
	}

	if err := h.uc.Logout(c.Request().Context(), &usecase.LogoutInput{RefreshToken: req.RefreshToken}); err != nil {
		return errors.WithStack(err)
	}

	h.clearSessionCookies(c)

	return response.Success(c, http.StatusOK, nil, "Выход выполнен")
}

// Me returns the authenticated user's own account.
func (h *UserHandler) Me(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Требуется авторизация")
	}

	user, err := h.uc.GetUser(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserView(user), "")
}

// GetUser returns one employee account. Admin only.
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	user, err := h.uc.GetUser(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserView(user), "")
}

// ListUsers returns one page of employee accounts. Admin only.
func (h *UserHandler) ListUsers(c echo.Context) error {
	page, limit, search := listQuery(c)

	output, err := h.uc.ListUsers(c.Request().Context(), &usecase.ListUsersInput{
		Page:   page,
		Limit:  limit,
		Search: search,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.List(c, toUserViews(output.Users), page, limit, output.Total)
}

// UpdateUser changes an employee's name, role or password. Admin only.
func (h *UserHandler) UpdateUser(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Некорректные данные сотрудника")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.uc.UpdateUser(c.Request().Context(), id, &usecase.UpdateUserInput{
		Name:     req.Name,
		Role:     req.Role,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserView(user), "Сотрудник обновлён")
}

// DeleteUser soft-deletes an employee account and revokes its sessions.
// Admin only.
func (h *UserHandler) DeleteUser(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.DeleteUser(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Сотрудник удалён")
}

func (h *UserHandler) setSessionCookies(c echo.Context, accessToken, refreshToken string) {
	secure := h.authCfg != nil && h.authCfg.CookieSecure

	accessMaxAge := 0
	refreshMaxAge := 0
	if h.authCfg != nil {
		accessMaxAge = int(h.authCfg.AccessTokenTTL / time.Second)
		refreshMaxAge = int(h.authCfg.RefreshTokenTTL / time.Second)
	}

	c.SetCookie(&http.Cookie{
		Name:     middleware.AccessTokenCookie,
		Value:    accessToken,
		Path:     "/",
		MaxAge:   accessMaxAge,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
	c.SetCookie(&http.Cookie{
		Name:     refreshTokenCookie,
		Value:    refreshToken,
		Path:     "/auth",
		MaxAge:   refreshMaxAge,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *UserHandler) clearSessionCookies(c echo.Context) {
	secure := h.authCfg != nil && h.authCfg.CookieSecure

	c.SetCookie(&http.Cookie{
		Name:     middleware.AccessTokenCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
	c.SetCookie(&http.Cookie{
		Name:     refreshTokenCookie,
		Value:    "",
		Path:     "/auth",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}
