package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/arenalabs/arena-store/internal/domain/entity"
	errs "github.com/arenalabs/arena-store/internal/domain/error"
	coreport "github.com/arenalabs/arena-store/internal/domain/port/core"
	"github.com/arenalabs/arena-store/internal/domain/port/persistence"
	"github.com/arenalabs/arena-store/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// TransactionRepository implements persistence.TransactionRepository using GORM
type TransactionRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// entityToModel converts a ledger entry entity to a database model
func (r *TransactionRepository) entityToModel(transaction *entity.WalletTransaction) model.WalletTransaction {
	return model.WalletTransaction{
		UserID:        transaction.UserID,
		WalletID:      transaction.WalletID,
		Type:          string(transaction.Type),
		AmountPaise:   transaction.AmountPaise,
		BalanceBefore: transaction.BalanceBefore,
		BalanceAfter:  transaction.BalanceAfter,
		PaymentID:     transaction.PaymentID,
		OrderID:       transaction.OrderID,
		ReferenceType: transaction.ReferenceType,
		ReferenceID:   transaction.ReferenceID,
		Description:   transaction.Description,
		Status:        string(transaction.Status),
		CreatedAt:     transaction.CreatedAt,
	}
}

// modelToEntity converts a ledger entry model to an entity
func (r *TransactionRepository) modelToEntity(m *model.WalletTransaction) *entity.WalletTransaction {
	return &entity.WalletTransaction{
		ID:            m.ID,
		UserID:        m.UserID,
		WalletID:      m.WalletID,
		Type:          entity.TransactionType(m.Type),
		AmountPaise:   m.AmountPaise,
		BalanceBefore: m.BalanceBefore,
		BalanceAfter:  m.BalanceAfter,
		PaymentID:     m.PaymentID,
		OrderID:       m.OrderID,
		ReferenceType: m.ReferenceType,
		ReferenceID:   m.ReferenceID,
		Description:   m.Description,
		Status:        entity.TransactionStatus(m.Status),
		CreatedAt:     m.CreatedAt,
	}
}

// Create appends a new ledger entry and fills in its generated id
func (r *TransactionRepository) Create(ctx context.Context, transaction *entity.WalletTransaction) error {
	r.logger.Debug("Creating ledger entry", map[string]any{
		"user_id":      transaction.UserID,
		"wallet_id":    transaction.WalletID,
		"type":         transaction.Type,
		"amount_paise": transaction.AmountPaise,
	})

	transactionModel := r.entityToModel(transaction)
	result := r.db.WithContext(ctx).Create(&transactionModel)

	if result.Error != nil {
		if r.errorClassifier.IsDuplicateKeyError(result.Error) {
			// Only the partial unique index on deposit payment ids can fire
			// here; the ledger has no other uniqueness
			r.logger.Warn("Duplicate deposit detected", map[string]any{
				"user_id":    transaction.UserID,
				"payment_id": transaction.PaymentID,
			})
			return errs.ErrDuplicateDeposit
		}
		if r.errorClassifier.IsConstraintError(result.Error) {
			r.logger.Error("Ledger entry rejected by constraint", map[string]any{
				"user_id": transaction.UserID,
				"error":   result.Error.Error(),
			})
			return fmt.Errorf("%w: %s", errs.ErrConstraintViolation, result.Error.Error())
		}
		r.logger.Error("Failed to create ledger entry", map[string]any{
			"user_id": transaction.UserID,
			"error":   result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrStoreUnavailable, result.Error.Error())
	}

	transaction.ID = transactionModel.ID

	r.logger.Info("Ledger entry created", map[string]any{
		"transaction_id": transaction.ID,
		"user_id":        transaction.UserID,
		"type":           transaction.Type,
		"amount_paise":   transaction.AmountPaise,
		"balance_after":  transaction.BalanceAfter,
	})
	return nil
}

// GetDepositByPaymentID retrieves the DEPOSIT entry recorded for a gateway
// payment id. The partial unique index on deposit payment ids guarantees at
// most one row can match.
func (r *TransactionRepository) GetDepositByPaymentID(ctx context.Context, paymentID string) (*entity.WalletTransaction, error) {
	var transactionModel model.WalletTransaction
	result := r.db.WithContext(ctx).
		Where("payment_id = ? AND type = ?", paymentID, string(entity.TypeDeposit)).
		First(&transactionModel)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrTransactionNotFound
		}
		r.logger.Error("Failed to get deposit by payment id", map[string]any{
			"payment_id": paymentID,
			"error":      result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrStoreUnavailable, result.Error.Error())
	}

	return r.modelToEntity(&transactionModel), nil
}

// DepositExists checks if a DEPOSIT entry with the given gateway payment id
// already exists
func (r *TransactionRepository) DepositExists(ctx context.Context, paymentID string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.WalletTransaction{}).
		Where("payment_id = ? AND type = ?", paymentID, string(entity.TypeDeposit)).
		Count(&count)

	if result.Error != nil {
		r.logger.Error("Failed to check deposit existence", map[string]any{
			"payment_id": paymentID,
			"error":      result.Error.Error(),
		})
		return false, fmt.Errorf("%w: %s", errs.ErrStoreUnavailable, result.Error.Error())
	}

	return count > 0, nil
}

// ListByUser returns a page of a user's ledger entries in reverse creation
// order, optionally filtered by type, plus the total count
func (r *TransactionRepository) ListByUser(ctx context.Context, userID uint64, typeFilter string, limit, offset int) ([]entity.WalletTransaction, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.WalletTransaction{}).
		Where("user_id = ?", userID)
	if typeFilter != "" {
		query = query.Where("type = ?", typeFilter)
	}

	var total int64
	if result := query.Count(&total); result.Error != nil {
		r.logger.Error("Failed to count ledger entries", map[string]any{
			"user_id": userID,
			"error":   result.Error.Error(),
		})
		return nil, 0, fmt.Errorf("%w: %s", errs.ErrStoreUnavailable, result.Error.Error())
	}

	var models []model.WalletTransaction
	result := query.
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&models)

	if result.Error != nil {
		r.logger.Error("Failed to list ledger entries", map[string]any{
			"user_id": userID,
			"error":   result.Error.Error(),
		})
		return nil, 0, fmt.Errorf("%w: %s", errs.ErrStoreUnavailable, result.Error.Error())
	}

	entries := make([]entity.WalletTransaction, 0, len(models))
	for i := range models {
		entries = append(entries, *r.modelToEntity(&models[i]))
	}
	return entries, total, nil
}

// SummaryByUser aggregates lifetime deposits, lifetime spend and entry count
// for a user's wallet
func (r *TransactionRepository) SummaryByUser(ctx context.Context, userID uint64) (*persistence.WalletSummary, error) {
	var row struct {
		TotalDeposited int64
		TotalSpent     int64
		Count          int64
	}

	result := r.db.WithContext(ctx).Model(&model.WalletTransaction{}).
		Select(
			"COALESCE(SUM(CASE WHEN amount_paise > 0 THEN amount_paise ELSE 0 END), 0) AS total_deposited, "+
				"COALESCE(SUM(CASE WHEN amount_paise < 0 THEN -amount_paise ELSE 0 END), 0) AS total_spent, "+
				"COUNT(*) AS count").
		Where("user_id = ?", userID).
		Scan(&row)

	if result.Error != nil {
		r.logger.Error("Failed to aggregate ledger summary", map[string]any{
			"user_id": userID,
			"error":   result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrStoreUnavailable, result.Error.Error())
	}

	return &persistence.WalletSummary{
		TotalDepositedPaise: row.TotalDeposited,
		TotalSpentPaise:     row.TotalSpent,
		TransactionCount:    row.Count,
	}, nil
}
