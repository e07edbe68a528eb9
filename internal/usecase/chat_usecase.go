package usecase

import (
	"context"
	"time"

	"sklad/internal/domain/entity"

	"github.com/google/uuid"
)

// PostMessageInput is the payload for sending a chat message.
type PostMessageInput struct {
	Text string
}

// ListMessagesInput carries pagination plus the optional Since filter
// used by clients polling for new messages.
type ListMessagesInput struct {
	Page   int
	Limit  int
	Search string
	Since  time.Time
}

// ListMessagesOutput returns one page of messages with the total match count.
type ListMessagesOutput struct {
	Messages []*entity.ChatMessage
	Total    int64
}

// ChatUsecase defines staff chat operations.
type ChatUsecase interface {
	// PostMessage appends a message authored by the given user.
	PostMessage(ctx context.Context, authorID uuid.UUID, input *PostMessageInput) (*entity.ChatMessage, error)

	// ListMessages retrieves messages newest-first.
	ListMessages(ctx context.Context, input *ListMessagesInput) (*ListMessagesOutput, error)

	// DeleteMessage removes a message. Authors delete their own
	// messages; admins delete any.
	DeleteMessage(ctx context.Context, actorID uuid.UUID, actorRoles entity.Roles, id uuid.UUID) error
}
