package repository

import (
	"context"
	"time"

	"sklad/internal/domain/entity"
	"sklad/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockReceiptRepository mocks repository.ReceiptRepository.
type MockReceiptRepository struct {
	mock.Mock
}

func (m *MockReceiptRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Receipt, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Receipt), args.Error(1)
}

func (m *MockReceiptRepository) List(ctx context.Context, params repository.ListParams) ([]*entity.Receipt, int64, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}

	return args.Get(0).([]*entity.Receipt), args.Get(1).(int64), args.Error(2)
}

func (m *MockReceiptRepository) Create(ctx context.Context, receipt *entity.Receipt) error {
	args := m.Called(ctx, receipt)

	return args.Error(0)
}

func (m *MockReceiptRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

// MockRealizationRepository mocks repository.RealizationRepository.
type MockRealizationRepository struct {
	mock.Mock
}

func (m *MockRealizationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Realization, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Realization), args.Error(1)
}

func (m *MockRealizationRepository) List(ctx context.Context, params repository.ListParams) ([]*entity.Realization, int64, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}

	return args.Get(0).([]*entity.Realization), args.Get(1).(int64), args.Error(2)
}

func (m *MockRealizationRepository) Create(ctx context.Context, realization *entity.Realization) error {
	args := m.Called(ctx, realization)

	return args.Error(0)
}

func (m *MockRealizationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

// MockReportRepository mocks repository.ReportRepository.
type MockReportRepository struct {
	mock.Mock
}

func (m *MockReportRepository) StockLevels(ctx context.Context, params repository.ListParams) ([]*entity.Product, int64, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}

	return args.Get(0).([]*entity.Product), args.Get(1).(int64), args.Error(2)
}

func (m *MockReportRepository) Movements(ctx context.Context, from, to time.Time) ([]*repository.MovementTotals, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*repository.MovementTotals), args.Error(1)
}

func (m *MockReportRepository) Counts(ctx context.Context) (*repository.SummaryCounts, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*repository.SummaryCounts), args.Error(1)
}
