// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserAction is an audit-log entry describing a mutating request
// performed by an authenticated user.
type UserAction struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Action    string // e.g. "product.create", "realization.delete".
	Method    string
	Path      string
	EntityID  string // Identifier of the touched entity when known, free form.
	CreatedAt time.Time
}
