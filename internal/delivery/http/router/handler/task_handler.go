package handler

import (
	"net/http"
	"time"

	"sklad/internal/delivery/http/middleware"
	"sklad/internal/delivery/http/response"
	"sklad/internal/domain/entity"
	domainerrors "sklad/internal/domain/errors"
	"sklad/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// TaskHandler serves the work item board.
type TaskHandler struct {
	uc usecase.TaskUsecase
}

// NewTaskHandler is the constructor for TaskHandler, injected by Fx.
func NewTaskHandler(uc usecase.TaskUsecase) *TaskHandler {
	return &TaskHandler{uc: uc}
}

type createTaskRequest struct {
	Title       string     `json:"title" validate:"required"`
	Description string     `json:"description"`
	AssigneeID  *uuid.UUID `json:"assignee_id"`
	DueDate     *time.Time `json:"due_date"`
}

type updateTaskRequest struct {
	Title       *string      `json:"title" validate:"omitempty,min=1"`
	Description *string      `json:"description"`
	AssigneeID  nullableUUID `json:"assignee_id"`
	DueDate     nullableTime `json:"due_date"`
}

type changeTaskStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

func (h *TaskHandler) Get(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	task, err := h.uc.GetTask(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toTaskView(task), "")
}

// List returns one page of tasks. The optional "assignee_id" parameter
// narrows the list to one employee's tasks.
func (h *TaskHandler) List(c echo.Context) error {
	page, limit, search := listQuery(c)

	var assigneeID *uuid.UUID
	if raw := c.QueryParam("assignee_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			return domainerrors.ErrValidationFailed.WithDetails("некорректный параметр assignee_id")
		}
		assigneeID = &parsed
	}

	output, err := h.uc.ListTasks(c.Request().Context(), &usecase.ListTasksInput{
		Page:       page,
		Limit:      limit,
		Search:     search,
		AssigneeID: assigneeID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.List(c, toTaskViews(output.Tasks), page, limit, output.Total)
}

func (h *TaskHandler) Create(c echo.Context) error {
	creatorID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Требуется авторизация")
	}

	var req createTaskRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Некорректные данные задачи")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	task, err := h.uc.CreateTask(c.Request().Context(), creatorID, &usecase.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		AssigneeID:  req.AssigneeID,
		DueDate:     req.DueDate,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toTaskView(task), "Задача создана")
}

func (h *TaskHandler) Update(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var req updateTaskRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Некорректные данные задачи")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	input := &usecase.UpdateTaskInput{
		Title:       req.Title,
		Description: req.Description,
	}
	if req.AssigneeID.Set {
		input.AssigneeID = &req.AssigneeID.Value
	}
	if req.DueDate.Set {
		input.DueDate = &req.DueDate.Value
	}

	task, err := h.uc.UpdateTask(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toTaskView(task), "Задача обновлена")
}

// ChangeStatus moves a task along its workflow. Invalid transitions are
// rejected by the usecase.
func (h *TaskHandler) ChangeStatus(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var req changeTaskStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Некорректный статус задачи")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	task, err := h.uc.ChangeTaskStatus(c.Request().Context(), id, entity.TaskStatus(req.Status))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toTaskView(task), "Статус задачи изменён")
}

func (h *TaskHandler) Delete(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.DeleteTask(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Задача удалена")
}
