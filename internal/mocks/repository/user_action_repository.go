package repository

import (
	"context"

	"sklad/internal/domain/entity"
	"sklad/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockUserActionRepository mocks repository.UserActionRepository.
type MockUserActionRepository struct {
	mock.Mock
}

func (m *MockUserActionRepository) Create(ctx context.Context, action *entity.UserAction) error {
	args := m.Called(ctx, action)

	return args.Error(0)
}

func (m *MockUserActionRepository) List(ctx context.Context, params repository.ListParams, filter repository.UserActionFilter) ([]*entity.UserAction, int64, error) {
	args := m.Called(ctx, params, filter)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}

	return args.Get(0).([]*entity.UserAction), args.Get(1).(int64), args.Error(2)
}
