package deposit

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/arenalabs/arena-store/internal/domain/entity"
	errs "github.com/arenalabs/arena-store/internal/domain/error"
	coreport "github.com/arenalabs/arena-store/internal/domain/port/core"
	"github.com/arenalabs/arena-store/internal/domain/port/gateway"
	"github.com/arenalabs/arena-store/internal/domain/port/persistence"
	"github.com/arenalabs/arena-store/internal/domain/usecase/wallet"
)

// VerifyRequest carries a gateway deposit confirmation
type VerifyRequest struct {
	OrderID     string
	PaymentID   string
	Signature   string
	AmountPaise int64
}

// VerifyResult reports the credit resolved for a verified payment.
// Transaction is the ledger entry that credited the payment id; for a
// replayed verification it is the original entry and BalancePaise is the
// wallet's current balance, not the balance at credit time.
type VerifyResult struct {
	Transaction  *entity.WalletTransaction
	BalancePaise int64
}

// Service turns verified gateway payments into wallet credits. Verification
// is idempotent per payment id: a replayed callback never double-credits.
type Service struct {
	walletSvc    *wallet.Service
	uow          persistence.UnitOfWork
	verifier     gateway.SignatureVerifier
	orders       gateway.OrderClient
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates a new deposit service
func NewService(
	walletSvc *wallet.Service,
	uow persistence.UnitOfWork,
	verifier gateway.SignatureVerifier,
	orders gateway.OrderClient,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		walletSvc:    walletSvc,
		uow:          uow,
		verifier:     verifier,
		orders:       orders,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// CreateOrder validates the amount and creates a gateway order for a wallet
// deposit. Runs entirely outside any atomic unit.
func (s *Service) CreateOrder(ctx context.Context, userID uint64, amountPaise int64) (*gateway.Order, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if err := wallet.ValidateDepositAmount(amountPaise); err != nil {
		return nil, err
	}
	if !s.orders.Enabled() {
		return nil, errs.ErrGatewayUnavailable
	}

	receipt := fmt.Sprintf("wallet_%d_%s", userID, uuid.NewString()[:8])
	order, err := s.orders.CreateOrder(ctx, amountPaise, receipt, map[string]string{
		"user_id": fmt.Sprintf("%d", userID),
		"purpose": "wallet_deposit",
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Deposit order created", map[string]any{
		"user_id":      userID,
		"order_id":     order.ID,
		"amount_paise": amountPaise,
	})
	return order, nil
}

// Verify checks the gateway signature and credits the wallet. A second call
// with the same payment id returns the current balance without crediting
// again; the partial unique index on deposit payment ids is the backstop if
// two replays race past the existence check.
func (s *Service) Verify(ctx context.Context, userID uint64, req VerifyRequest) (*VerifyResult, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if req.OrderID == "" || req.PaymentID == "" || req.Signature == "" {
		return nil, fmt.Errorf("%w: missing payment details", errs.ErrPaymentVerificationFailed)
	}
	if err := wallet.ValidateDepositAmount(req.AmountPaise); err != nil {
		return nil, err
	}

	if !s.verifier.Verify(req.OrderID, req.PaymentID, req.Signature) {
		s.logger.Warn("Deposit signature rejected", map[string]any{
			"user_id":  userID,
			"order_id": req.OrderID,
		})
		return nil, errs.ErrPaymentVerificationFailed
	}

	// Fast-path replay check before taking any locks
	txRepo := s.uow.GetTransactionRepository(ctx)
	exists, err := txRepo.DepositExists(ctx, req.PaymentID)
	if err != nil {
		return nil, err
	}
	if exists {
		return s.replayedDeposit(ctx, userID, req.PaymentID)
	}

	entry, err := s.walletSvc.Credit(ctx, userID, req.AmountPaise, wallet.CreditSource{
		PaymentID:   req.PaymentID,
		OrderID:     req.OrderID,
		Description: fmt.Sprintf("Wallet deposit of ₹%s", entity.PaiseToRupeeString(req.AmountPaise)),
	})
	if err != nil {
		if errors.Is(err, errs.ErrDuplicateDeposit) {
			// Lost the race against a concurrent replay; the credit happened once
			return s.replayedDeposit(ctx, userID, req.PaymentID)
		}
		return nil, err
	}
	return &VerifyResult{Transaction: entry, BalancePaise: entry.BalanceAfter}, nil
}

// replayedDeposit resolves an already-credited payment id to its original
// ledger entry and the wallet's current balance. The lookup is by payment id,
// so a retried callback is safe no matter how far down the ledger the credit
// sits.
func (s *Service) replayedDeposit(ctx context.Context, userID uint64, paymentID string) (*VerifyResult, error) {
	entry, err := s.uow.GetTransactionRepository(ctx).GetDepositByPaymentID(ctx, paymentID)
	if err != nil {
		if errors.Is(err, errs.ErrTransactionNotFound) {
			return nil, errs.ErrPaymentVerificationFailed
		}
		return nil, err
	}

	// Credited under another user id, or not a credit at all; surface as a
	// verification failure
	if entry.UserID != userID || !entry.IsCredit() {
		return nil, errs.ErrPaymentVerificationFailed
	}

	w, err := s.uow.GetWalletRepository(ctx).GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Replayed deposit verification, returning existing credit", map[string]any{
		"user_id":        userID,
		"payment_id":     paymentID,
		"transaction_id": entry.ID,
	})
	return &VerifyResult{Transaction: entry, BalancePaise: w.Balance()}, nil
}

// Config reports the public checkout parameters for the frontend
func (s *Service) Config() (keyID string, enabled bool) {
	return s.orders.KeyID(), s.orders.Enabled()
}
