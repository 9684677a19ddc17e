package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/arenalabs/arena-store/internal/domain/entity"
	errs "github.com/arenalabs/arena-store/internal/domain/error"
	coreport "github.com/arenalabs/arena-store/internal/domain/port/core"
	"github.com/arenalabs/arena-store/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// VideoRepository implements persistence.VideoRepository using GORM
type VideoRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewVideoRepository creates a new VideoRepository instance
func NewVideoRepository(db *gorm.DB, logger coreport.Logger) *VideoRepository {
	return &VideoRepository{
		db:     db,
		logger: logger,
	}
}

// GetByID retrieves a video by id
func (r *VideoRepository) GetByID(ctx context.Context, id uint64) (*entity.Video, error) {
	var videoModel model.Video
	result := r.db.WithContext(ctx).First(&videoModel, id)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrVideoNotFound
		}
		r.logger.Error("Failed to get video", map[string]any{
			"video_id": id,
			"error":    result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrStoreUnavailable, result.Error.Error())
	}

	return &entity.Video{
		ID:         videoModel.ID,
		Title:      videoModel.Title,
		PricePaise: videoModel.PricePaise,
		CreatedAt:  videoModel.CreatedAt,
	}, nil
}
