package entity

import (
	"time"

	errs "github.com/arenalabs/arena-store/internal/domain/error"
	coreport "github.com/arenalabs/arena-store/internal/domain/port/core"
)

// TransactionType represents the kind of balance-affecting event
type TransactionType string

// Transaction types
const (
	TypeDeposit  TransactionType = "DEPOSIT"
	TypePurchase TransactionType = "PURCHASE"
	TypeRefund   TransactionType = "REFUND"
)

// TransactionStatus defines possible status values for a ledger entry
type TransactionStatus string

// TransactionStatus constants
const (
	StatusPending   TransactionStatus = "pending"
	StatusCompleted TransactionStatus = "completed"
	StatusFailed    TransactionStatus = "failed"
	StatusRefunded  TransactionStatus = "refunded"
)

// Reference types for the thing a transaction paid for
const (
	ReferenceVideo = "video"
)

// WalletTransaction is an immutable append-only ledger entry. The signed
// amount is positive for deposits and negative for purchases; replaying all
// entries of a wallet in creation order reproduces its current balance.
type WalletTransaction struct {
	ID            uint64            // Unique identifier for the ledger entry
	UserID        uint64            // Owning user
	WalletID      uint64            // Wallet this entry belongs to
	Type          TransactionType   // DEPOSIT, PURCHASE or REFUND
	AmountPaise   int64             // Signed amount in paise
	BalanceBefore int64             // Wallet balance before this entry
	BalanceAfter  int64             // Wallet balance after this entry
	PaymentID     string            // External gateway payment id, if any
	OrderID       string            // External gateway order id, if any
	ReferenceType string            // What was purchased ("video"), if any
	ReferenceID   uint64            // Id of the referenced item, if any
	Description   string            // Free-text description
	Status        TransactionStatus // Entry status
	CreatedAt     time.Time         // When the entry was created
}

// IsValidTransactionType validates if the type is one of the allowed values
func IsValidTransactionType(t string) bool {
	return t == string(TypeDeposit) || t == string(TypePurchase) || t == string(TypeRefund)
}

// NewDepositTransaction builds a ledger entry for a wallet credit. The amount
// must be positive; balanceAfter must equal balanceBefore + amount.
func NewDepositTransaction(
	userID, walletID uint64,
	amountPaise, balanceBefore int64,
	paymentID, orderID, description string,
	timeProvider coreport.TimeProvider,
) (*WalletTransaction, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if err := ValidatePositiveAmount(amountPaise); err != nil {
		return nil, err
	}

	return &WalletTransaction{
		UserID:        userID,
		WalletID:      walletID,
		Type:          TypeDeposit,
		AmountPaise:   amountPaise,
		BalanceBefore: balanceBefore,
		BalanceAfter:  balanceBefore + amountPaise,
		PaymentID:     paymentID,
		OrderID:       orderID,
		Description:   description,
		Status:        StatusCompleted,
		CreatedAt:     timeProvider.Now(),
	}, nil
}

// NewPurchaseTransaction builds a ledger entry for a wallet debit funding a
// video purchase. The stored amount is negative.
func NewPurchaseTransaction(
	userID, walletID uint64,
	pricePaise, balanceBefore int64,
	videoID uint64,
	description string,
	timeProvider coreport.TimeProvider,
) (*WalletTransaction, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if videoID == 0 {
		return nil, errs.ErrInvalidVideoID
	}
	if err := ValidatePositiveAmount(pricePaise); err != nil {
		return nil, err
	}
	if balanceBefore < pricePaise {
		return nil, errs.NewInsufficientFundsError(userID, pricePaise, balanceBefore)
	}

	return &WalletTransaction{
		UserID:        userID,
		WalletID:      walletID,
		Type:          TypePurchase,
		AmountPaise:   -pricePaise,
		BalanceBefore: balanceBefore,
		BalanceAfter:  balanceBefore - pricePaise,
		ReferenceType: ReferenceVideo,
		ReferenceID:   videoID,
		Description:   description,
		Status:        StatusCompleted,
		CreatedAt:     timeProvider.Now(),
	}, nil
}

// IsCredit returns true if this entry increased the wallet balance
func (t *WalletTransaction) IsCredit() bool {
	return t.AmountPaise > 0
}

// IsDebit returns true if this entry decreased the wallet balance
func (t *WalletTransaction) IsDebit() bool {
	return t.AmountPaise < 0
}
