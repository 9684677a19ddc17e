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

// WalletRepository implements persistence.WalletRepository using GORM
type WalletRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewWalletRepository creates a new WalletRepository instance
func NewWalletRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *WalletRepository {
	return &WalletRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// modelToEntity converts a wallet model to an entity
func (r *WalletRepository) modelToEntity(m *model.Wallet) *entity.Wallet {
	wallet := &entity.Wallet{
		ID:        m.ID,
		UserID:    m.UserID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	wallet.SetBalance(m.BalancePaise)
	return wallet
}

// GetByUserID retrieves a user's wallet without locking
func (r *WalletRepository) GetByUserID(ctx context.Context, userID uint64) (*entity.Wallet, error) {
	var walletModel model.Wallet
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&walletModel)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrWalletNotFound
		}
		r.logger.Error("Failed to get wallet", map[string]any{
			"user_id": userID,
			"error":   result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrStoreUnavailable, result.Error.Error())
	}

	return r.modelToEntity(&walletModel), nil
}

// GetOrCreate retrieves a user's wallet, creating an empty one on first
// access. The conflict clause makes concurrent first accesses converge on a
// single row instead of failing.
func (r *WalletRepository) GetOrCreate(ctx context.Context, userID uint64) (*entity.Wallet, error) {
	wallet, err := r.GetByUserID(ctx, userID)
	if err == nil {
		return wallet, nil
	}
	if !errors.Is(err, errs.ErrWalletNotFound) {
		return nil, err
	}

	now := r.timeProvider.Now()
	walletModel := model.Wallet{
		UserID:       userID,
		BalancePaise: 0,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoNothing: true,
		}).
		Create(&walletModel)

	if result.Error != nil {
		if r.errorClassifier.IsConstraintError(result.Error) && !r.errorClassifier.IsDuplicateKeyError(result.Error) {
			r.logger.Warn("Wallet creation rejected for unknown user", map[string]any{
				"user_id": userID,
			})
			return nil, errs.ErrUserNotFound
		}
		r.logger.Error("Failed to create wallet", map[string]any{
			"user_id": userID,
			"error":   result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrStoreUnavailable, result.Error.Error())
	}

	// Lost the conflict race: another request created the row first
	if result.RowsAffected == 0 {
		return r.GetByUserID(ctx, userID)
	}

	r.logger.Info("Wallet created", map[string]any{
		"user_id":   userID,
		"wallet_id": walletModel.ID,
	})
	return r.modelToEntity(&walletModel), nil
}

// LockByUserID locks the wallet row FOR UPDATE and returns its current state.
// Must run inside an active atomic unit; the lock is held until that unit
// resolves, serializing all balance mutations for the wallet across every
// running instance.
func (r *WalletRepository) LockByUserID(ctx context.Context, userID uint64) (*entity.Wallet, error) {
	r.logger.Debug("Acquiring wallet row lock", map[string]any{
		"user_id": userID,
	})

	var walletModel model.Wallet
	result := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ?", userID).
		First(&walletModel)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			// First ledger operation for this user: create, then re-lock so
			// the caller always holds the row
			if _, err := r.GetOrCreate(ctx, userID); err != nil {
				return nil, err
			}
			return r.LockByUserID(ctx, userID)
		}
		r.logger.Error("Failed to lock wallet", map[string]any{
			"user_id": userID,
			"error":   result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrStoreUnavailable, result.Error.Error())
	}

	r.logger.Debug("Wallet row lock acquired", map[string]any{
		"user_id":       userID,
		"wallet_id":     walletModel.ID,
		"balance_paise": walletModel.BalancePaise,
	})
	return r.modelToEntity(&walletModel), nil
}

// UpdateBalance persists a new balance for a wallet previously locked in the
// same atomic unit
func (r *WalletRepository) UpdateBalance(ctx context.Context, walletID uint64, balancePaise int64) error {
	result := r.db.WithContext(ctx).Model(&model.Wallet{}).
		Where("id = ?", walletID).
		Updates(map[string]interface{}{
			"balance_paise": balancePaise,
			"updated_at":    r.timeProvider.Now(),
		})

	if result.Error != nil {
		if r.errorClassifier.IsCheckViolation(result.Error) {
			r.logger.Error("Balance update rejected by check constraint", map[string]any{
				"wallet_id":     walletID,
				"balance_paise": balancePaise,
			})
			return fmt.Errorf("%w: %s", errs.ErrConstraintViolation, result.Error.Error())
		}
		r.logger.Error("Failed to update wallet balance", map[string]any{
			"wallet_id": walletID,
			"error":     result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrStoreUnavailable, result.Error.Error())
	}

	if result.RowsAffected == 0 {
		r.logger.Warn("Wallet not found during balance update", map[string]any{
			"wallet_id": walletID,
		})
		return errs.ErrWalletNotFound
	}

	r.logger.Debug("Wallet balance updated", map[string]any{
		"wallet_id":     walletID,
		"balance_paise": balancePaise,
	})
	return nil
}
