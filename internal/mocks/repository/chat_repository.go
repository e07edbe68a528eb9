package repository

import (
	"context"
	"time"

	"sklad/internal/domain/entity"
	"sklad/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockChatRepository mocks repository.ChatRepository.
type MockChatRepository struct {
	mock.Mock
}

func (m *MockChatRepository) Create(ctx context.Context, message *entity.ChatMessage) error {
	args := m.Called(ctx, message)

	return args.Error(0)
}

func (m *MockChatRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ChatMessage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.ChatMessage), args.Error(1)
}

func (m *MockChatRepository) List(ctx context.Context, params repository.ListParams, since time.Time) ([]*entity.ChatMessage, int64, error) {
	args := m.Called(ctx, params, since)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}

	return args.Get(0).([]*entity.ChatMessage), args.Get(1).(int64), args.Error(2)
}

func (m *MockChatRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}
