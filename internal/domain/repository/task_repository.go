package repository

import (
	"context"
	"errors"

	"sklad/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrTaskNotFound is returned when a task does not exist.
var ErrTaskNotFound = errors.New("task not found")

// TaskRepository defines persistence for work items.
type TaskRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Task, error)

	// List retrieves tasks newest-first; assigneeID (optional, nil
	// disables it) filters by assignee.
	List(ctx context.Context, params ListParams, assigneeID *uuid.UUID) ([]*entity.Task, int64, error)

	Create(ctx context.Context, task *entity.Task) error
	Update(ctx context.Context, task *entity.Task) error
	Delete(ctx context.Context, id uuid.UUID) error
}
