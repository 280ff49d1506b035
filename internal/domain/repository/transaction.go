package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// Use cases depend on this instead of a concrete DB driver so that the
// multi-record flows (purchase, rating recompute, registration) stay atomic
// without knowing about GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	// Otherwise it is committed. All repository operations obtained through
	// the factory share the same transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to one transaction.
type RepositoryFactory interface {
	// UserRepo returns a UserRepository bound to the current transaction.
	UserRepo() UserRepository

	// CompanyRepo returns a CompanyRepository bound to the current transaction.
	CompanyRepo() CompanyRepository

	// GameRepo returns a GameRepository bound to the current transaction.
	GameRepo() GameRepository

	// CommentRepo returns a CommentRepository bound to the current transaction.
	CommentRepo() CommentRepository

	// PurchaseRepo returns a PurchaseRepository bound to the current transaction.
	PurchaseRepo() PurchaseRepository
}
