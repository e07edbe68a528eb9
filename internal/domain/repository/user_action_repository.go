package repository

import (
	"context"
	"time"

	"sklad/internal/domain/entity"

	"github.com/google/uuid"
)

// UserActionFilter narrows audit-log listings.
type UserActionFilter struct {
	UserID *uuid.UUID
	From   time.Time
	To     time.Time
}

// UserActionRepository defines persistence for the action audit log.
type UserActionRepository interface {
	// Create appends an audit entry. Never updated or deleted by the application.
	Create(ctx context.Context, action *entity.UserAction) error

	// List retrieves audit entries newest-first with pagination and filters.
	List(ctx context.Context, params ListParams, filter UserActionFilter) ([]*entity.UserAction, int64, error)
}
