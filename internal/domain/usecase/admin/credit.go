package admin

import (
	"context"
	"fmt"

	"github.com/arenalabs/arena-store/internal/domain/entity"
	errs "github.com/arenalabs/arena-store/internal/domain/error"
	coreport "github.com/arenalabs/arena-store/internal/domain/port/core"
	"github.com/arenalabs/arena-store/internal/domain/port/persistence"
	"github.com/arenalabs/arena-store/internal/domain/usecase/wallet"
)

// CreditTool is the privileged out-of-band wallet credit used by support for
// refunds and bonuses. It reuses the wallet service's deposit primitive; the
// only difference is the wider amount band and the admin-attributed
// description on the ledger entry.
type CreditTool struct {
	walletSvc *wallet.Service
	users     persistence.UserRepository
	logger    coreport.Logger
}

// NewCreditTool creates a new admin credit tool
func NewCreditTool(walletSvc *wallet.Service, users persistence.UserRepository, logger coreport.Logger) *CreditTool {
	return &CreditTool{
		walletSvc: walletSvc,
		users:     users,
		logger:    logger,
	}
}

// Credit adds funds to the target user's wallet on behalf of an administrator
func (t *CreditTool) Credit(ctx context.Context, adminUsername string, userID uint64, amountPaise int64) (*entity.WalletTransaction, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if err := wallet.ValidateAdminCreditAmount(amountPaise); err != nil {
		return nil, err
	}

	exists, err := t.users.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errs.ErrUserNotFound
	}

	entry, err := t.walletSvc.Credit(ctx, userID, amountPaise, wallet.CreditSource{
		Description: fmt.Sprintf("Admin credit of ₹%s by %s",
			entity.PaiseToRupeeString(amountPaise), adminUsername),
	})
	if err != nil {
		return nil, err
	}

	t.logger.Info("Admin credit applied", map[string]any{
		"admin":         adminUsername,
		"user_id":       userID,
		"amount_paise":  amountPaise,
		"balance_after": entry.BalanceAfter,
	})
	return entry, nil
}
