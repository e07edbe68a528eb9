// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"sklad/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterUserInput defines the data required to register a new employee.
type RegisterUserInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// RefreshTokenInput carries the refresh token being exchanged.
type RefreshTokenInput struct {
	RefreshToken string
}

// LogoutInput carries the refresh token being invalidated.
type LogoutInput struct {
	RefreshToken string
}

// UpdateUserInput defines the mutable fields of an employee account.
// Nil pointers leave the field unchanged.
type UpdateUserInput struct {
	Name     *string
	Role     *string
	Password *string
}

// ListUsersInput carries pagination and search for user listings.
type ListUsersInput struct {
	Page   int
	Limit  int
	Search string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's basic information.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// RefreshTokenOutput returns the rotated token pair.
type RefreshTokenOutput struct {
	AccessToken  string
	RefreshToken string
}

// ListUsersOutput returns one page of users with the total match count.
type ListUsersOutput struct {
	Users []*entity.User
	Total int64
}

// UserUsecase defines the interface for account and session operations.
// This is the contract that the delivery layer depends on.
type UserUsecase interface {
	// Register creates a new employee account. Admin only.
	Register(ctx context.Context, input *RegisterUserInput) (*RegisterOutput, error)

	// Login verifies credentials and issues a token pair.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// RefreshToken rotates a valid refresh token into a new pair.
	RefreshToken(ctx context.Context, input *RefreshTokenInput) (*RefreshTokenOutput, error)

	// Logout revokes the presented refresh token.
	Logout(ctx context.Context, input *LogoutInput) error

	// GetUser retrieves a single employee account.
	GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// ListUsers retrieves employee accounts. Admin only.
	ListUsers(ctx context.Context, input *ListUsersInput) (*ListUsersOutput, error)

	// UpdateUser modifies an employee account. Admin only.
	UpdateUser(ctx context.Context, id uuid.UUID, input *UpdateUserInput) (*entity.User, error)

	// DeleteUser soft-deletes an employee account and revokes its sessions. Admin only.
	DeleteUser(ctx context.Context, id uuid.UUID) error
}
