package impl

import (
	"context"
	"log/slog"

	"sklad/internal/domain/entity"
	domainerrors "sklad/internal/domain/errors"
	"sklad/internal/domain/repository"
	"sklad/internal/usecase"
	"sklad/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// maxMessageLength caps chat messages; anything longer is a paste accident.
const maxMessageLength = 2000

// chatService implements the ChatUsecase interface.
type chatService struct {
	chatRepo repository.ChatRepository
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// ChatServiceParams holds dependencies for chatService, injected by Fx.
type ChatServiceParams struct {
	fx.In

	ChatRepo repository.ChatRepository
	UserRepo repository.UserRepository
	Logger   *slog.Logger
}

// NewChatService is the constructor for chatService.
func NewChatService(params ChatServiceParams) usecase.ChatUsecase {
	return &chatService{
		chatRepo: params.ChatRepo,
		userRepo: params.UserRepo,
		logger:   params.Logger,
	}
}

// PostMessage appends a message authored by the given user. The author
// name is denormalized into the message so listings survive account
// deletions.
func (srv *chatService) PostMessage(ctx context.Context, authorID uuid.UUID, input *usecase.PostMessageInput) (*entity.ChatMessage, error) {
	text := util.CleanText(input.Text)
	if text == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("message text is empty")
	}
	if len([]rune(text)) > maxMessageLength {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("message text is too long")
	}

	author, err := srv.userRepo.FindByID(ctx, authorID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "post message failed")
		}

		return nil, errors.Wrap(err, "failed to find message author")
	}

	message := &entity.ChatMessage{
		AuthorID:   author.ID,
		AuthorName: author.Name,
		Text:       text,
	}
	if err := srv.chatRepo.Create(ctx, message); err != nil {
		return nil, errors.Wrap(err, "failed to create chat message")
	}
	srv.logger.Debug("Chat message posted", "messageID", message.ID, "authorID", author.ID)

	return message, nil
}

// ListMessages retrieves messages newest-first with the optional Since filter.
func (srv *chatService) ListMessages(ctx context.Context, input *usecase.ListMessagesInput) (*usecase.ListMessagesOutput, error) {
	_, limit, offset := util.NormalizePagination(input.Page, input.Limit)

	messages, total, err := srv.chatRepo.List(ctx, repository.ListParams{
		Offset: offset,
		Limit:  limit,
		Search: input.Search,
	}, input.Since)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list chat messages")
	}

	return &usecase.ListMessagesOutput{Messages: messages, Total: total}, nil
}

// DeleteMessage removes a message. Authors delete their own messages;
// admins delete any.
func (srv *chatService) DeleteMessage(ctx context.Context, actorID uuid.UUID, actorRoles entity.Roles, id uuid.UUID) error {
	message, err := srv.chatRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMessageNotFound) {
			return errors.Wrap(domainerrors.ErrMessageNotFound, "delete message failed")
		}

		return errors.Wrap(err, "failed to find chat message")
	}

	if message.AuthorID != actorID && !actorRoles.Contains(entity.RoleAdmin) {
		return errors.Wrap(domainerrors.ErrNotMessageAuthor, "delete message failed")
	}

	if err := srv.chatRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete chat message")
	}
	srv.logger.Debug("Chat message deleted", "messageID", id, "actorID", actorID)

	return nil
}
