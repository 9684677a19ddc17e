package persistence

import (
	"context"

	"github.com/arenalabs/arena-store/internal/domain/entity"
)

// WalletSummary aggregates a wallet's lifetime activity for the balance endpoint
type WalletSummary struct {
	TotalDepositedPaise int64
	TotalSpentPaise     int64
	TransactionCount    int64
}

// TransactionRepository defines methods to interact with the append-only
// wallet ledger. Entries are created once and never updated or deleted.
type TransactionRepository interface {
	// Create appends a new ledger entry and fills in its generated id
	//
	// Possible errors:
	// - ErrDuplicateDeposit: if a DEPOSIT with the same payment id exists
	// - ErrConstraintViolation: if referential integrity is violated
	// - ErrStoreUnavailable: if the store cannot be reached
	Create(ctx context.Context, transaction *entity.WalletTransaction) error

	// GetDepositByPaymentID retrieves the DEPOSIT entry recorded for a
	// gateway payment id. The partial unique index guarantees at most one
	// such entry exists, however old it is.
	//
	// Possible errors:
	// - ErrTransactionNotFound: if no deposit for the payment id exists
	// - ErrStoreUnavailable: if the store cannot be reached
	GetDepositByPaymentID(ctx context.Context, paymentID string) (*entity.WalletTransaction, error)

	// DepositExists checks if a DEPOSIT entry with the given gateway payment
	// id already exists. Used to make deposit verification idempotent under
	// replayed gateway callbacks.
	//
	// Possible errors:
	// - ErrStoreUnavailable: if the store cannot be reached
	DepositExists(ctx context.Context, paymentID string) (bool, error)

	// ListByUser returns a page of a user's ledger entries in reverse
	// creation order, optionally filtered by type, plus the total count.
	//
	// Possible errors:
	// - ErrStoreUnavailable: if the store cannot be reached
	ListByUser(ctx context.Context, userID uint64, typeFilter string, limit, offset int) ([]entity.WalletTransaction, int64, error)

	// SummaryByUser aggregates lifetime deposits, lifetime spend and entry
	// count for a user's wallet
	//
	// Possible errors:
	// - ErrStoreUnavailable: if the store cannot be reached
	SummaryByUser(ctx context.Context, userID uint64) (*WalletSummary, error)
}
