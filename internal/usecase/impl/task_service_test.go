package impl

import (
	"context"
	"testing"

	"sklad/internal/domain/entity"
	domainerrors "sklad/internal/domain/errors"
	mockRepo "sklad/internal/mocks/repository"
	"sklad/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type taskServiceFixtures struct {
	service  usecase.TaskUsecase
	taskRepo *mockRepo.MockTaskRepository
	userRepo *mockRepo.MockUserRepository
}

func createTestTaskService(t *testing.T) taskServiceFixtures {
	t.Helper()

	taskRepo := new(mockRepo.MockTaskRepository)
	userRepo := new(mockRepo.MockUserRepository)

	service := NewTaskService(TaskServiceParams{
		TaskRepo: taskRepo,
		UserRepo: userRepo,
		Logger:   newDiscardLogger(),
	})

	return taskServiceFixtures{service: service, taskRepo: taskRepo, userRepo: userRepo}
}

func TestTaskService_CreateTask_StartsOpen(t *testing.T) {
	fx := createTestTaskService(t)
	ctx := context.Background()

	creatorID := uuid.New()

	fx.taskRepo.On("Create", ctx, mock.AnythingOfType("*entity.Task")).Return(nil)

	task, err := fx.service.CreateTask(ctx, creatorID, &usecase.CreateTaskInput{
		Title: "Пересчитать остатки на складе",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.TaskStatusOpen, task.Status)
	assert.Equal(t, creatorID, task.CreatedByID)
}

func TestTaskService_CreateTask_UnknownAssignee(t *testing.T) {
	fx := createTestTaskService(t)
	ctx := context.Background()

	assigneeID := uuid.New()

	fx.userRepo.On("FindByID", ctx, assigneeID).
		Return(nil, errors.New("user not found"))

	task, err := fx.service.CreateTask(ctx, uuid.New(), &usecase.CreateTaskInput{
		Title:      "Принять поставку",
		AssigneeID: &assigneeID,
	})

	require.Error(t, err)
	assert.Nil(t, task)
	fx.taskRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestTaskService_ChangeTaskStatus_AllowedTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    entity.TaskStatus
		to      entity.TaskStatus
		allowed bool
	}{
		{"open to in_progress", entity.TaskStatusOpen, entity.TaskStatusInProgress, true},
		{"in_progress to done", entity.TaskStatusInProgress, entity.TaskStatusDone, true},
		{"in_progress back to open", entity.TaskStatusInProgress, entity.TaskStatusOpen, true},
		{"open straight to done", entity.TaskStatusOpen, entity.TaskStatusDone, false},
		{"done is terminal", entity.TaskStatusDone, entity.TaskStatusOpen, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestTaskService(t)
			ctx := context.Background()

			taskID := uuid.New()
			fx.taskRepo.On("FindByID", ctx, taskID).
				Return(&entity.Task{ID: taskID, Status: tt.from}, nil)
			if tt.allowed {
				fx.taskRepo.On("Update", ctx, mock.AnythingOfType("*entity.Task")).Return(nil)
			}

			task, err := fx.service.ChangeTaskStatus(ctx, taskID, tt.to)

			if tt.allowed {
				require.NoError(t, err)
				assert.Equal(t, tt.to, task.Status)
			} else {
				require.Error(t, err)
				assert.True(t, errors.Is(err, domainerrors.ErrInvalidTaskTransition))
				fx.taskRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
			}
		})
	}
}

func TestTaskService_ChangeTaskStatus_UnknownStatus(t *testing.T) {
	fx := createTestTaskService(t)

	task, err := fx.service.ChangeTaskStatus(context.Background(), uuid.New(), entity.TaskStatus("archived"))

	require.Error(t, err)
	assert.Nil(t, task)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}
