package persistence

import (
	"context"

	"github.com/arenalabs/arena-store/internal/domain/entity"
)

// VideoRepository defines read access to the video catalog. The ledger reads
// the price at purchase time and never writes.
type VideoRepository interface {
	// GetByID retrieves a video by id
	//
	// Possible errors:
	// - ErrVideoNotFound: if no video with the given id exists
	// - ErrStoreUnavailable: if the store cannot be reached
	GetByID(ctx context.Context, id uint64) (*entity.Video, error)
}
