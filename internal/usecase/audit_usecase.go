package usecase

import (
	"context"
	"time"

	"sklad/internal/domain/entity"

	"github.com/google/uuid"
)

// RecordActionInput describes one mutating request for the audit log.
type RecordActionInput struct {
	UserID   uuid.UUID
	Action   string
	Method   string
	Path     string
	EntityID string
}

// ListActionsInput carries pagination plus the audit filters.
type ListActionsInput struct {
	Page   int
	Limit  int
	Search string
	UserID *uuid.UUID
	From   time.Time
	To     time.Time
}

// ListActionsOutput returns one page of audit entries with the total match count.
type ListActionsOutput struct {
	Actions []*entity.UserAction
	Total   int64
}

// AuditUsecase defines the action audit log operations.
type AuditUsecase interface {
	// RecordAction appends an audit entry. Failures are reported but
	// must not abort the request being audited.
	RecordAction(ctx context.Context, input *RecordActionInput) error

	// ListActions retrieves audit entries newest-first. Admin only.
	ListActions(ctx context.Context, input *ListActionsInput) (*ListActionsOutput, error)
}
