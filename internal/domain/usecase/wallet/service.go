package wallet

import (
	"context"
	"fmt"

	"github.com/arenalabs/arena-store/internal/domain/entity"
	errs "github.com/arenalabs/arena-store/internal/domain/error"
	coreport "github.com/arenalabs/arena-store/internal/domain/port/core"
	"github.com/arenalabs/arena-store/internal/domain/port/persistence"
)

// CreditSource describes where a deposit came from, for the ledger entry
type CreditSource struct {
	PaymentID   string
	OrderID     string
	Description string
}

// Summary is the wallet overview returned by the balance endpoint
type Summary struct {
	BalancePaise        int64
	TotalDepositedPaise int64
	TotalSpentPaise     int64
	TransactionCount    int64
}

// Service owns all balance mutation logic. Every mutation locks the wallet
// row and appends a ledger entry inside one atomic unit; the row lock
// serializes concurrent mutations to the same wallet across all instances.
type Service struct {
	uow          persistence.UnitOfWork
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates a new wallet service
func NewService(uow persistence.UnitOfWork, timeProvider coreport.TimeProvider, logger coreport.Logger) *Service {
	return &Service{
		uow:          uow,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Credit increases the user's balance inside its own atomic unit and returns
// the completed DEPOSIT ledger entry. Amount bounds are the caller's
// responsibility (deposit and admin flows use different bands); the amount
// must be positive.
func (s *Service) Credit(ctx context.Context, userID uint64, amountPaise int64, src CreditSource) (*entity.WalletTransaction, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if err := entity.ValidatePositiveAmount(amountPaise); err != nil {
		return nil, err
	}

	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrStoreUnavailable, err.Error())
	}
	defer func() {
		_ = s.uow.Rollback(txCtx)
	}()

	exists, err := s.uow.GetUserRepository(txCtx).Exists(txCtx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errs.ErrUserNotFound
	}

	entry, err := s.creditLocked(txCtx, userID, amountPaise, src)
	if err != nil {
		return nil, err
	}

	if err := s.uow.Commit(txCtx); err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrStoreUnavailable, err.Error())
	}

	s.logger.Info("Wallet credited", map[string]any{
		"user_id":       userID,
		"amount_paise":  amountPaise,
		"balance_after": entry.BalanceAfter,
		"payment_id":    src.PaymentID,
	})
	return entry, nil
}

// creditLocked performs the lock-then-act credit inside an already-open unit
func (s *Service) creditLocked(txCtx context.Context, userID uint64, amountPaise int64, src CreditSource) (*entity.WalletTransaction, error) {
	wallets := s.uow.GetWalletRepository(txCtx)

	w, err := wallets.LockByUserID(txCtx, userID)
	if err != nil {
		return nil, err
	}

	entry, err := entity.NewDepositTransaction(
		userID, w.ID, amountPaise, w.Balance(),
		src.PaymentID, src.OrderID, src.Description,
		s.timeProvider,
	)
	if err != nil {
		return nil, err
	}

	if _, err := w.Credit(amountPaise, s.timeProvider); err != nil {
		return nil, err
	}
	if err := wallets.UpdateBalance(txCtx, w.ID, w.Balance()); err != nil {
		return nil, errs.NewLedgerError(userID, w.ID, amountPaise, "credit", err)
	}
	if err := s.uow.GetTransactionRepository(txCtx).Create(txCtx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// Debit decreases the user's balance to fund a video purchase. It joins the
// caller's atomic unit: ctx must come from UnitOfWork.Begin, so the debit,
// the ledger entry and the purchase record resolve together. Fails with an
// insufficient-funds error before touching anything if the locked balance is
// too low; no partial debit is possible.
func (s *Service) Debit(ctx context.Context, userID uint64, pricePaise int64, videoID uint64, description string) (*entity.WalletTransaction, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if err := entity.ValidatePositiveAmount(pricePaise); err != nil {
		return nil, err
	}

	wallets := s.uow.GetWalletRepository(ctx)

	w, err := wallets.LockByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !w.CanDebit(pricePaise) {
		s.logger.Warn("Insufficient funds for wallet debit", map[string]any{
			"user_id":        userID,
			"required_paise": pricePaise,
			"balance_paise":  w.Balance(),
		})
		return nil, errs.NewInsufficientFundsError(userID, pricePaise, w.Balance())
	}

	entry, err := entity.NewPurchaseTransaction(
		userID, w.ID, pricePaise, w.Balance(), videoID, description, s.timeProvider,
	)
	if err != nil {
		return nil, err
	}

	if _, err := w.Debit(pricePaise, s.timeProvider); err != nil {
		return nil, err
	}
	if err := wallets.UpdateBalance(ctx, w.ID, w.Balance()); err != nil {
		return nil, errs.NewLedgerError(userID, w.ID, pricePaise, "debit", err)
	}
	if err := s.uow.GetTransactionRepository(ctx).Create(ctx, entry); err != nil {
		return nil, err
	}

	s.logger.Info("Wallet debited", map[string]any{
		"user_id":       userID,
		"amount_paise":  pricePaise,
		"balance_after": entry.BalanceAfter,
		"video_id":      videoID,
	})
	return entry, nil
}

// GetSummary returns the wallet balance plus lifetime aggregates, creating
// the wallet lazily on first access
func (s *Service) GetSummary(ctx context.Context, userID uint64) (*Summary, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}

	w, err := s.uow.GetWalletRepository(ctx).GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	agg, err := s.uow.GetTransactionRepository(ctx).SummaryByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &Summary{
		BalancePaise:        w.Balance(),
		TotalDepositedPaise: agg.TotalDepositedPaise,
		TotalSpentPaise:     agg.TotalSpentPaise,
		TransactionCount:    agg.TransactionCount,
	}, nil
}

// ListTransactions returns a page of the user's ledger history
func (s *Service) ListTransactions(ctx context.Context, userID uint64, typeFilter string, limit, offset int) ([]entity.WalletTransaction, int64, error) {
	if userID == 0 {
		return nil, 0, errs.ErrInvalidUserID
	}
	if typeFilter != "" && !entity.IsValidTransactionType(typeFilter) {
		return nil, 0, fmt.Errorf("%w: unknown transaction type %q", errs.ErrInvalidRequest, typeFilter)
	}
	limit, offset = NormalizePage(limit, offset)

	return s.uow.GetTransactionRepository(ctx).ListByUser(ctx, userID, typeFilter, limit, offset)
}
