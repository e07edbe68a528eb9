package repository

import (
	"context"
	"errors"
	"time"

	"sklad/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrMessageNotFound is returned when a chat message does not exist.
var ErrMessageNotFound = errors.New("chat message not found")

// ChatRepository defines persistence for staff chat messages.
type ChatRepository interface {
	Create(ctx context.Context, message *entity.ChatMessage) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.ChatMessage, error)

	// List retrieves messages newest-first; since (optional, zero value
	// disables it) returns only messages created after the given time.
	List(ctx context.Context, params ListParams, since time.Time) ([]*entity.ChatMessage, int64, error)

	Delete(ctx context.Context, id uuid.UUID) error
}
