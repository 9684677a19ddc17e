package persistence

import (
	"context"

	"github.com/arenalabs/arena-store/internal/domain/entity"
)

// PurchaseRepository defines methods to interact with purchase records.
// A (user, video) pair holds at most one purchase; the store enforces this
// with a uniqueness constraint as the final backstop.
type PurchaseRepository interface {
	// Create inserts a new purchase record and fills in its generated id
	//
	// Possible errors:
	// - ErrAlreadyOwned: if a purchase for (user, video) already exists
	// - ErrConstraintViolation: if referential integrity is violated
	// - ErrStoreUnavailable: if the store cannot be reached
	Create(ctx context.Context, purchase *entity.Purchase) error

	// CreateIfAbsent inserts the purchase unless one already exists for
	// (user, video); in that case it returns the existing record with
	// created=false. This is the idempotency primitive for retried gateway
	// callbacks: a replay is a safe no-op, not an error.
	//
	// Possible errors:
	// - ErrConstraintViolation: if referential integrity is violated
	// - ErrStoreUnavailable: if the store cannot be reached
	CreateIfAbsent(ctx context.Context, purchase *entity.Purchase) (existing *entity.Purchase, created bool, err error)

	// GetByUserAndVideo retrieves the purchase for a (user, video) pair
	//
	// Possible errors:
	// - ErrPurchaseNotFound: if the user has not bought the video
	// - ErrStoreUnavailable: if the store cannot be reached
	GetByUserAndVideo(ctx context.Context, userID, videoID uint64) (*entity.Purchase, error)

	// ExistsByUserAndVideo checks whether the user already owns the video
	//
	// Possible errors:
	// - ErrStoreUnavailable: if the store cannot be reached
	ExistsByUserAndVideo(ctx context.Context, userID, videoID uint64) (bool, error)

	// ListByUser returns all purchases of a user in reverse purchase order
	//
	// Possible errors:
	// - ErrStoreUnavailable: if the store cannot be reached
	ListByUser(ctx context.Context, userID uint64) ([]entity.Purchase, error)
}
