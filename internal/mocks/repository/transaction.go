package repository

import (
	"context"

	"sklad/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockRepositoryFactory mocks repository.RepositoryFactory.
type MockRepositoryFactory struct {
	mock.Mock
}

func (m *MockRepositoryFactory) UserRepo() repository.UserRepository {
	args := m.Called()

	return args.Get(0).(repository.UserRepository)
}

func (m *MockRepositoryFactory) RefreshTokenRepo() repository.RefreshTokenRepository {
	args := m.Called()

	return args.Get(0).(repository.RefreshTokenRepository)
}

func (m *MockRepositoryFactory) ProductRepo() repository.ProductRepository {
	args := m.Called()

	return args.Get(0).(repository.ProductRepository)
}

func (m *MockRepositoryFactory) ReceiptRepo() repository.ReceiptRepository {
	args := m.Called()

	return args.Get(0).(repository.ReceiptRepository)
}

func (m *MockRepositoryFactory) RealizationRepo() repository.RealizationRepository {
	args := m.Called()

	return args.Get(0).(repository.RealizationRepository)
}

// MockTransactionManager mocks repository.TransactionManager.
type MockTransactionManager struct {
	mock.Mock
}

func (m *MockTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	args := m.Called(ctx, fn)

	return args.Error(0)
}

// StubTransactionManager runs the unit of work directly against a fixed
// factory without any transaction, which is what most service tests need.
type StubTransactionManager struct {
	Factory repository.RepositoryFactory
}

func (s *StubTransactionManager) Execute(_ context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	return fn(s.Factory)
}

// StubRepositoryFactory returns fixed repositories, usually mocks.
type StubRepositoryFactory struct {
	Users         repository.UserRepository
	RefreshTokens repository.RefreshTokenRepository
	Products      repository.ProductRepository
	Receipts      repository.ReceiptRepository
	Realizations  repository.RealizationRepository
}

func (s *StubRepositoryFactory) UserRepo() repository.UserRepository { return s.Users }

func (s *StubRepositoryFactory) RefreshTokenRepo() repository.RefreshTokenRepository {
	return s.RefreshTokens
}

func (s *StubRepositoryFactory) ProductRepo() repository.ProductRepository { return s.Products }

func (s *StubRepositoryFactory) ReceiptRepo() repository.ReceiptRepository { return s.Receipts }

func (s *StubRepositoryFactory) RealizationRepo() repository.RealizationRepository {
	return s.Realizations
}
