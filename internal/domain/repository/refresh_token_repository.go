package repository

import (
	"context"
	"errors"

	"sklad/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrRefreshTokenNotFound is returned when a refresh token does not exist.
var ErrRefreshTokenNotFound = errors.New("refresh token not found")

// RefreshTokenRepository defines persistence for revocable session tokens.
type RefreshTokenRepository interface {
	// Create persists a new refresh token.
	Create(ctx context.Context, token *entity.RefreshToken) error

	// FindByToken retrieves a refresh token by its opaque value.
	FindByToken(ctx context.Context, token string) (*entity.RefreshToken, error)

	// Revoke marks a token as revoked. Revoking an already revoked token is a no-op.
	Revoke(ctx context.Context, token string) error

	// RevokeAllForUser revokes every active token of a user.
	RevokeAllForUser(ctx context.Context, userID uuid.UUID) error

	// DeleteExpired removes tokens whose expiry is in the past.
	DeleteExpired(ctx context.Context) (int64, error)
}
