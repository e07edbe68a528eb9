package repository

import "context"

// RepositoryFactory creates repository instances bound to a single
// transaction. Only the repositories that take part in multi-step
// atomic operations are exposed here.
type RepositoryFactory interface {
	UserRepo() UserRepository
	RefreshTokenRepo() RefreshTokenRepository
	ProductRepo() ProductRepository
	ReceiptRepo() ReceiptRepository
	RealizationRepo() RealizationRepository
}

// TransactionManager runs a unit of work inside a database transaction.
// The callback receives a factory whose repositories all share the
// transaction; any returned error rolls the transaction back.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(repoFactory RepositoryFactory) error) error
}
