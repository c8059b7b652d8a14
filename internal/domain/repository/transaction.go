package repository

import "context"

// RepositoryFactory creates repository instances bound to a single
// transaction. The use case layer receives one inside TransactionManager.Execute
// and must perform all writes through it.
type RepositoryFactory interface {
	UserRepo() UserRepository
	ImageRepo() ImageRepository
}

// TransactionManager runs a unit of work atomically.
type TransactionManager interface {
	// Execute runs fn within a single database transaction. A non-nil error
	// from fn rolls the transaction back and is returned unchanged.
	Execute(ctx context.Context, fn func(repoFactory RepositoryFactory) error) error
}
