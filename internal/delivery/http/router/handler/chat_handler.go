package handler

import (
	"net/http"
	"time"

	"sklad/internal/delivery/http/middleware"
	"sklad/internal/delivery/http/response"
	domainerrors "sklad/internal/domain/errors"
	"sklad/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ChatHandler serves the shared staff chat.
type ChatHandler struct {
	uc usecase.ChatUsecase
}

// NewChatHandler is the constructor for ChatHandler, injected by Fx.
func NewChatHandler(uc usecase.ChatUsecase) *ChatHandler {
	return &ChatHandler{uc: uc}
}

type postMessageRequest struct {
	Text string `json:"text" validate:"required"`
}

// PostMessage appends a message to the chat under the authenticated user's name.
func (h *ChatHandler) PostMessage(c echo.Context) error {
	authorID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Требуется авторизация")
	}

	var req postMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Некорректное сообщение")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	message, err := h.uc.PostMessage(c.Request().Context(), authorID, &usecase.PostMessageInput{Text: req.Text})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toChatMessageView(message), "Сообщение отправлено")
}

// ListMessages returns one page of chat history, oldest first. The
// optional "since" parameter (RFC 3339) supports incremental polling.
func (h *ChatHandler) ListMessages(c echo.Context) error {
	page, limit, search := listQuery(c)

	var since time.Time
	if raw := c.QueryParam("since"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return domainerrors.ErrValidationFailed.WithDetails("некорректный параметр since")
		}
		since = parsed
	}

	output, err := h.uc.ListMessages(c.Request().Context(), &usecase.ListMessagesInput{
		Page:   page,
		Limit:  limit,
		Search: search,
		Since:  since,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.List(c, toChatMessageViews(output.Messages), page, limit, output.Total)
}

// DeleteMessage removes a message. Authors delete their own messages,
// admins delete any.
func (h *ChatHandler) DeleteMessage(c echo.Context) error {
	actorID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Требуется авторизация")
	}

	id, err := paramID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.DeleteMessage(c.Request().Context(), actorID, middleware.UserRoles(c), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Сообщение удалено")
}
