// Package middleware contains the HTTP middleware of the delivery layer.
package middleware

import (
	"slices"
	"strings"

	"sklad/internal/delivery/http/response"
	"sklad/internal/domain/entity"
	"sklad/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// AccessTokenCookie is the session cookie carrying the access token
	// for browser clients. API clients use the Authorization header.
	AccessTokenCookie = "access_token"

	contextKeyUserID = "userID"
	contextKeyRoles  = "roles"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// extractToken pulls the access token from the Authorization header or,
// failing that, from the session cookie.
func extractToken(c echo.Context) string {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader != "" {
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString != authHeader {
			return tokenString
		}

		return ""
	}

	cookie, err := c.Cookie(AccessTokenCookie)
	if err != nil || cookie == nil {
		return ""
	}

	return cookie.Value
}

// Authenticate is the core middleware function that validates the JWT access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString := extractToken(c)
		if tokenString == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", "Требуется авторизация")
		}

		claims, err := m.tokenSvc.ValidateAccessToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "TOKEN_INVALID", "Недействительный или просроченный токен")
		}

		// Set user info on the context for handlers to use
		c.Set(contextKeyUserID, claims.UserID)
		c.Set(contextKeyRoles, claims.Roles)

		return next(c)
	}
}

// RequireRole is a middleware factory that checks if the user has one of
// the given roles. It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRoles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			roles, ok := c.Get(contextKeyRoles).([]string)
			if !ok {
				return response.Forbidden(c, "FORBIDDEN", "Доступ запрещён")
			}

			for _, required := range requiredRoles {
				if slices.Contains(roles, required) {
					return next(c)
				}
			}

			return response.Forbidden(c, "FORBIDDEN", "Доступ запрещён")
		}
	}
}

// UserID returns the authenticated user's ID from the request context.
func UserID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(contextKeyUserID).(uuid.UUID)

	return id, ok
}

// UserRoles returns the authenticated user's roles from the request context.
func UserRoles(c echo.Context) entity.Roles {
	roles, ok := c.Get(contextKeyRoles).([]string)
	if !ok {
		return nil
	}

	return entity.RolesFromStrings(roles)
}
