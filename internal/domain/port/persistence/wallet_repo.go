package persistence

import (
	"context"

	"github.com/arenalabs/arena-store/internal/domain/entity"
)

// WalletRepository defines methods to interact with wallet rows.
// LockByUserID is the unit of mutual exclusion for the ledger: it must be
// called inside an active atomic unit and holds a row-level lock until that
// unit commits or rolls back.
type WalletRepository interface {
	// GetByUserID retrieves a user's wallet without locking
	//
	// Possible errors:
	// - ErrWalletNotFound: if the user has no wallet yet
	// - ErrStoreUnavailable: if the store cannot be reached
	GetByUserID(ctx context.Context, userID uint64) (*entity.Wallet, error)

	// GetOrCreate retrieves a user's wallet, creating an empty one on first access
	//
	// Possible errors:
	// - ErrUserNotFound: if the referenced user does not exist
	// - ErrStoreUnavailable: if the store cannot be reached
	GetOrCreate(ctx context.Context, userID uint64) (*entity.Wallet, error)

	// LockByUserID locks the wallet row FOR UPDATE and returns its current
	// state, creating the wallet first if the user has none. Must run inside
	// an active atomic unit; concurrent callers for the same wallet serialize
	// on the row lock.
	//
	// Possible errors:
	// - ErrUserNotFound: if the referenced user does not exist
	// - ErrStoreUnavailable: if the store cannot be reached
	LockByUserID(ctx context.Context, userID uint64) (*entity.Wallet, error)

	// UpdateBalance persists a new balance for a wallet previously locked in
	// the same atomic unit
	//
	// Possible errors:
	// - ErrWalletNotFound: if the wallet row vanished
	// - ErrConstraintViolation: if the balance check constraint rejects the value
	// - ErrStoreUnavailable: if the store cannot be reached
	UpdateBalance(ctx context.Context, walletID uint64, balancePaise int64) error
}
