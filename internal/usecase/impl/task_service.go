package impl

import (
	"context"
	"log/slog"
	"strings"

	"sklad/internal/domain/entity"
	domainerrors "sklad/internal/domain/errors"
	"sklad/internal/domain/repository"
	"sklad/internal/usecase"
	"sklad/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// taskService implements the TaskUsecase interface.
type taskService struct {
	taskRepo repository.TaskRepository
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// TaskServiceParams holds dependencies for taskService, injected by Fx.
type TaskServiceParams struct {
	fx.In

	TaskRepo repository.TaskRepository
	UserRepo repository.UserRepository
	Logger   *slog.Logger
}

// NewTaskService is the constructor for taskService.
func NewTaskService(params TaskServiceParams) usecase.TaskUsecase {
	return &taskService{
		taskRepo: params.TaskRepo,
		userRepo: params.UserRepo,
		logger:   params.Logger,
	}
}

// checkAssignee verifies the assignee account exists.
func (srv *taskService) checkAssignee(ctx context.Context, assigneeID *uuid.UUID) error {
	if assigneeID == nil {
		return nil
	}

	if _, err := srv.userRepo.FindByID(ctx, *assigneeID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrUserNotFound, "assignee check failed")
		}

		return errors.Wrap(err, "failed to check assignee")
	}

	return nil
}

func (srv *taskService) GetTask(ctx context.Context, id uuid.UUID) (*entity.Task, error) {
	task, err := srv.taskRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return nil, errors.Wrap(domainerrors.ErrTaskNotFound, "get task failed")
		}

		return nil, errors.Wrap(err, "failed to find task by id")
	}

	return task, nil
}

func (srv *taskService) ListTasks(ctx context.Context, input *usecase.ListTasksInput) (*usecase.ListTasksOutput, error) {
	_, limit, offset := util.NormalizePagination(input.Page, input.Limit)

	tasks, total, err := srv.taskRepo.List(ctx, repository.ListParams{
		Offset: offset,
		Limit:  limit,
		Search: input.Search,
	}, input.AssigneeID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tasks")
	}

	return &usecase.ListTasksOutput{Tasks: tasks, Total: total}, nil
}

func (srv *taskService) CreateTask(ctx context.Context, creatorID uuid.UUID, input *usecase.CreateTaskInput) (*entity.Task, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("task title is empty")
	}

	if err := srv.checkAssignee(ctx, input.AssigneeID); err != nil {
		return nil, err
	}

	task := &entity.Task{
		Title:       title,
		Description: strings.TrimSpace(input.Description),
		AssigneeID:  input.AssigneeID,
		Status:      entity.TaskStatusOpen,
		DueDate:     input.DueDate,
		CreatedByID: creatorID,
	}
	if err := srv.taskRepo.Create(ctx, task); err != nil {
		return nil, errors.Wrap(err, "failed to create task")
	}
	srv.logger.Info("Task created", "taskID", task.ID, "title", task.Title)

	return task, nil
}

func (srv *taskService) UpdateTask(ctx context.Context, id uuid.UUID, input *usecase.UpdateTaskInput) (*entity.Task, error) {
	task, err := srv.taskRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return nil, errors.Wrap(domainerrors.ErrTaskNotFound, "update task failed")
		}

		return nil, errors.Wrap(err, "failed to find task by id")
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("task title is empty")
		}
		task.Title = title
	}
	if input.Description != nil {
		task.Description = strings.TrimSpace(*input.Description)
	}
	if input.AssigneeID != nil {
		if err := srv.checkAssignee(ctx, *input.AssigneeID); err != nil {
			return nil, err
		}
		task.AssigneeID = *input.AssigneeID
	}
	if input.DueDate != nil {
		task.DueDate = *input.DueDate
	}

	if err := srv.taskRepo.Update(ctx, task); err != nil {
		return nil, errors.Wrap(err, "failed to update task")
	}
	srv.logger.Info("Task updated", "taskID", task.ID)

	return task, nil
}

// ChangeTaskStatus moves a task along its workflow.
func (srv *taskService) ChangeTaskStatus(ctx context.Context, id uuid.UUID, status entity.TaskStatus) (*entity.Task, error) {
	if !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown task status")
	}

	task, err := srv.taskRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return nil, errors.Wrap(domainerrors.ErrTaskNotFound, "change task status failed")
		}

		return nil, errors.Wrap(err, "failed to find task by id")
	}

	if !task.Status.CanTransitionTo(status) {
		return nil, errors.Wrap(domainerrors.ErrInvalidTaskTransition, "change task status failed")
	}

	task.Status = status
	if err := srv.taskRepo.Update(ctx, task); err != nil {
		return nil, errors.Wrap(err, "failed to update task status")
	}
	srv.logger.Info("Task status changed", "taskID", task.ID, "status", task.Status)

	return task, nil
}

func (srv *taskService) DeleteTask(ctx context.Context, id uuid.UUID) error {
	if err := srv.taskRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return errors.Wrap(domainerrors.ErrTaskNotFound, "delete task failed")
		}

		return errors.Wrap(err, "failed to delete task")
	}
	srv.logger.Info("Task deleted", "taskID", id)

	return nil
}
