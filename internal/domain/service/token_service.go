package service

import (
	"time"

	"github.com/google/uuid"
)

// TokenClaims is the validated content of an issued token.
type TokenClaims struct {
	UserID uuid.UUID
	Roles  []string
	Type   string // "access" or "refresh"
}

// TokenService issues and validates session tokens.
type TokenService interface {
	// GenerateTokens creates a new access/refresh token pair for a user.
	// Roles are embedded only into the access token.
	GenerateTokens(userID uuid.UUID, roles []string) (accessToken string, refreshToken string, err error)

	// ValidateAccessToken parses and verifies an access token.
	ValidateAccessToken(tokenString string) (*TokenClaims, error)

	// ValidateRefreshToken parses and verifies a refresh token.
	ValidateRefreshToken(tokenString string) (*TokenClaims, error)

	// GetRefreshTokenDuration returns the configured refresh token lifetime.
	GetRefreshTokenDuration() time.Duration
}
