package usecase

import (
	"context"
	"time"

	"sklad/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateTaskInput defines the data required to create a task.
type CreateTaskInput struct {
	Title       string
	Description string
	AssigneeID  *uuid.UUID
	DueDate     *time.Time
}

// UpdateTaskInput defines the mutable fields of a task. Status changes
// go through ChangeTaskStatus, not here.
type UpdateTaskInput struct {
	Title       *string
	Description *string
	AssigneeID  **uuid.UUID
	DueDate     **time.Time
}

// ListTasksInput carries pagination plus the optional assignee filter.
type ListTasksInput struct {
	Page       int
	Limit      int
	Search     string
	AssigneeID *uuid.UUID
}

// ListTasksOutput returns one page of tasks with the total match count.
type ListTasksOutput struct {
	Tasks []*entity.Task
	Total int64
}

// TaskUsecase defines work item operations.
type TaskUsecase interface {
	GetTask(ctx context.Context, id uuid.UUID) (*entity.Task, error)
	ListTasks(ctx context.Context, input *ListTasksInput) (*ListTasksOutput, error)
	CreateTask(ctx context.Context, creatorID uuid.UUID, input *CreateTaskInput) (*entity.Task, error)
	UpdateTask(ctx context.Context, id uuid.UUID, input *UpdateTaskInput) (*entity.Task, error)

	// ChangeTaskStatus moves a task along its workflow. Disallowed
	// transitions are rejected.
	ChangeTaskStatus(ctx context.Context, id uuid.UUID, status entity.TaskStatus) (*entity.Task, error)

	DeleteTask(ctx context.Context, id uuid.UUID) error
}
