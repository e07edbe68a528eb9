// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents an employee account in the warehouse system.
type User struct {
	ID           uuid.UUID // The unique identifier for the user.
	Email        string    // Login identifier, unique across the system.
	Name         string    // Display name shown in chat and audit entries.
	PasswordHash string    // bcrypt hash of the user's password. Never serialized to clients.
	Role         Role      // The user's role, drives authorization.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RefreshToken is a persisted, revocable session token.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Token     string
	ExpiresAt time.Time
	RevokedAt *time.Time
	CreatedAt time.Time
}

// IsActive reports whether the token can still be exchanged for access tokens.
func (t *RefreshToken) IsActive(now time.Time) bool {
	return t.RevokedAt == nil && now.Before(t.ExpiresAt)
}
