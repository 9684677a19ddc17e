package persistence

import (
	"context"

	"github.com/arenalabs/arena-store/internal/domain/entity"
)

// UserRepository defines methods to interact with user identities
type UserRepository interface {
	// GetByID retrieves a user by id
	//
	// Possible errors:
	// - ErrUserNotFound: if no user with the given id exists
	// - ErrStoreUnavailable: if the store cannot be reached
	GetByID(ctx context.Context, id uint64) (*entity.User, error)

	// GetByIdentifier retrieves a user by email or username (case-insensitive)
	//
	// Possible errors:
	// - ErrUserNotFound: if no matching user exists
	// - ErrStoreUnavailable: if the store cannot be reached
	GetByIdentifier(ctx context.Context, identifier string) (*entity.User, error)

	// Create inserts a new user and fills in its generated id
	//
	// Possible errors:
	// - ErrDuplicateUser: if the username or email is already taken
	// - ErrStoreUnavailable: if the store cannot be reached
	Create(ctx context.Context, user *entity.User) error

	// Exists checks whether a user with the given id exists
	//
	// Possible errors:
	// - ErrStoreUnavailable: if the store cannot be reached
	Exists(ctx context.Context, id uint64) (bool, error)
}
