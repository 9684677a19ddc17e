package persistence

import (
	"context"
)

// UnitOfWork coordinates the atomic unit of the ledger: a group of store
// operations that all succeed or are all undone together. Repositories
// obtained through the getters with a transactional context join that unit;
// with a plain context they run against the base connection.
type UnitOfWork interface {
	// Begin starts a new atomic unit and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the atomic unit in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the atomic unit in the given context. Rolling back
	// an already-resolved unit is a no-op, so it is safe to defer.
	Rollback(ctx context.Context) error

	// GetWalletRepository returns a wallet repository bound to the current unit
	GetWalletRepository(ctx context.Context) WalletRepository

	// GetTransactionRepository returns a ledger repository bound to the current unit
	GetTransactionRepository(ctx context.Context) TransactionRepository

	// GetPurchaseRepository returns a purchase repository bound to the current unit
	GetPurchaseRepository(ctx context.Context) PurchaseRepository

	// GetVideoRepository returns a video repository bound to the current unit
	GetVideoRepository(ctx context.Context) VideoRepository

	// GetUserRepository returns a user repository bound to the current unit
	GetUserRepository(ctx context.Context) UserRepository
}
