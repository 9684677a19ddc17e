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
	"gorm.io/gorm/clause"
)

// PurchaseRepository implements persistence.PurchaseRepository using GORM
type PurchaseRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewPurchaseRepository creates a new PurchaseRepository instance
func NewPurchaseRepository(db *gorm.DB, logger coreport.Logger) *PurchaseRepository {
	return &PurchaseRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// entityToModel converts a purchase entity to a database model
func (r *PurchaseRepository) entityToModel(purchase *entity.Purchase) model.Purchase {
	return model.Purchase{
		UserID:              purchase.UserID,
		VideoID:             purchase.VideoID,
		PaymentID:           purchase.PaymentID,
		OrderID:             purchase.OrderID,
		AmountPaise:         purchase.AmountPaise,
		Method:              string(purchase.Method),
		WalletTransactionID: purchase.WalletTransactionID,
		PurchasedAt:         purchase.PurchasedAt,
	}
}

// modelToEntity converts a purchase model to an entity
func (r *PurchaseRepository) modelToEntity(m *model.Purchase) *entity.Purchase {
	return &entity.Purchase{
		ID:                  m.ID,
		UserID:              m.UserID,
		VideoID:             m.VideoID,
		PaymentID:           m.PaymentID,
		OrderID:             m.OrderID,
		AmountPaise:         m.AmountPaise,
		Method:              entity.PaymentMethod(m.Method),
		WalletTransactionID: m.WalletTransactionID,
		PurchasedAt:         m.PurchasedAt,
	}
}

// Create inserts a new purchase record and fills in its generated id
func (r *PurchaseRepository) Create(ctx context.Context, purchase *entity.Purchase) error {
	purchaseModel := r.entityToModel(purchase)
	result := r.db.WithContext(ctx).Create(&purchaseModel)

	if result.Error != nil {
		if r.errorClassifier.IsDuplicateKeyError(result.Error) {
			r.logger.Warn("Purchase already recorded", map[string]any{
				"user_id":  purchase.UserID,
				"video_id": purchase.VideoID,
			})
			return errs.NewAlreadyOwnedError(purchase.UserID, purchase.VideoID)
		}
		if r.errorClassifier.IsConstraintError(result.Error) {
			return fmt.Errorf("%w: %s", errs.ErrConstraintViolation, result.Error.Error())
		}
		r.logger.Error("Failed to create purchase", map[string]any{
			"user_id":  purchase.UserID,
			"video_id": purchase.VideoID,
			"error":    result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrStoreUnavailable, result.Error.Error())
	}

	purchase.ID = purchaseModel.ID

	r.logger.Info("Purchase recorded", map[string]any{
		"purchase_id":  purchase.ID,
		"user_id":      purchase.UserID,
		"video_id":     purchase.VideoID,
		"method":       purchase.Method,
		"amount_paise": purchase.AmountPaise,
	})
	return nil
}

// CreateIfAbsent inserts the purchase unless one already exists for the
// (user, video) pair. A replayed gateway confirmation lands here and gets the
// original row back with created=false.
func (r *PurchaseRepository) CreateIfAbsent(ctx context.Context, purchase *entity.Purchase) (*entity.Purchase, bool, error) {
	purchaseModel := r.entityToModel(purchase)
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "video_id"}},
			DoNothing: true,
		}).
		Create(&purchaseModel)

	if result.Error != nil {
		if r.errorClassifier.IsConstraintError(result.Error) && !r.errorClassifier.IsDuplicateKeyError(result.Error) {
			return nil, false, fmt.Errorf("%w: %s", errs.ErrConstraintViolation, result.Error.Error())
		}
		r.logger.Error("Failed to insert purchase", map[string]any{
			"user_id":  purchase.UserID,
			"video_id": purchase.VideoID,
			"error":    result.Error.Error(),
		})
		return nil, false, fmt.Errorf("%w: %s", errs.ErrStoreUnavailable, result.Error.Error())
	}

	if result.RowsAffected == 0 {
		existing, err := r.GetByUserAndVideo(ctx, purchase.UserID, purchase.VideoID)
		if err != nil {
			return nil, false, err
		}
		r.logger.Info("Purchase replay detected, returning existing record", map[string]any{
			"purchase_id": existing.ID,
			"user_id":     purchase.UserID,
			"video_id":    purchase.VideoID,
		})
		return existing, false, nil
	}

	purchase.ID = purchaseModel.ID

	r.logger.Info("Purchase recorded", map[string]any{
		"purchase_id":  purchase.ID,
		"user_id":      purchase.UserID,
		"video_id":     purchase.VideoID,
		"method":       purchase.Method,
		"amount_paise": purchase.AmountPaise,
	})
	return purchase, true, nil
}

// GetByUserAndVideo retrieves the purchase for a (user, video) pair
func (r *PurchaseRepository) GetByUserAndVideo(ctx context.Context, userID, videoID uint64) (*entity.Purchase, error) {
	var purchaseModel model.Purchase
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND video_id = ?", userID, videoID).
		First(&purchaseModel)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrPurchaseNotFound
		}
		r.logger.Error("Failed to get purchase", map[string]any{
			"user_id":  userID,
			"video_id": videoID,
			"error":    result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrStoreUnavailable, result.Error.Error())
	}

	return r.modelToEntity(&purchaseModel), nil
}

// ExistsByUserAndVideo checks whether the user already owns the video
func (r *PurchaseRepository) ExistsByUserAndVideo(ctx context.Context, userID, videoID uint64) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.Purchase{}).
		Where("user_id = ? AND video_id = ?", userID, videoID).
		Count(&count)

	if result.Error != nil {
		r.logger.Error("Failed to check purchase existence", map[string]any{
			"user_id":  userID,
			"video_id": videoID,
			"error":    result.Error.Error(),
		})
		return false, fmt.Errorf("%w: %s", errs.ErrStoreUnavailable, result.Error.Error())
	}

	return count > 0, nil
}

// ListByUser returns all purchases of a user in reverse purchase order
func (r *PurchaseRepository) ListByUser(ctx context.Context, userID uint64) ([]entity.Purchase, error) {
	var models []model.Purchase
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("purchased_at DESC, id DESC").
		Find(&models)

	if result.Error != nil {
		r.logger.Error("Failed to list purchases", map[string]any{
			"user_id": userID,
			"error":   result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrStoreUnavailable, result.Error.Error())
	}

	purchases := make([]entity.Purchase, 0, len(models))
	for i := range models {
		purchases = append(purchases, *r.modelToEntity(&models[i]))
	}
	return purchases, nil
}
