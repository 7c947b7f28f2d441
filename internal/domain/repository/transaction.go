package repository

import "context"

// TransactionManager runs a unit of work against one database transaction.
type TransactionManager interface {
	// Execute commits when fn returns nil and rolls back otherwise, including on panic.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to the running transaction.
type RepositoryFactory interface {
	UserRepo() UserRepository
	ProfileRepo() ProfileRepository
	CardRepo() CardRepository
}
