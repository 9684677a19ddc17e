package entity

import (
	"time"

	errs "github.com/arenalabs/arena-store/internal/domain/error"
	coreport "github.com/arenalabs/arena-store/internal/domain/port/core"
)

// Wallet represents a user's stored-value balance. One wallet per user.
// The balance is mutated exclusively through Credit and Debit; it can never
// go negative.
type Wallet struct {
	ID        uint64    // Unique identifier for the wallet
	UserID    uint64    // Owning user (unique, 1:1)
	balance   int64     // Balance in paise (private to guard the invariant)
	CreatedAt time.Time // When the wallet was created
	UpdatedAt time.Time // When the wallet was last mutated
}

// NewWallet creates an empty wallet for the given user
func NewWallet(userID uint64, timeProvider coreport.TimeProvider) (*Wallet, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	now := timeProvider.Now()
	return &Wallet{
		UserID:    userID,
		balance:   0,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Balance returns the current balance in paise
func (w *Wallet) Balance() int64 {
	return w.balance
}

// SetBalance updates the balance directly (for internal use, like repositories)
func (w *Wallet) SetBalance(balancePaise int64) {
	w.balance = balancePaise
}

// CanDebit reports whether the wallet holds at least the given amount
func (w *Wallet) CanDebit(amountPaise int64) bool {
	return w.balance >= amountPaise
}

// Credit adds the amount to the balance and returns the new balance
func (w *Wallet) Credit(amountPaise int64, timeProvider coreport.TimeProvider) (int64, error) {
	if err := ValidatePositiveAmount(amountPaise); err != nil {
		return w.balance, err
	}
	w.balance += amountPaise
	w.UpdatedAt = timeProvider.Now()
	return w.balance, nil
}

// Debit subtracts the amount from the balance if sufficient funds exist.
// Returns the new balance, or an error leaving the balance untouched.
func (w *Wallet) Debit(amountPaise int64, timeProvider coreport.TimeProvider) (int64, error) {
	if err := ValidatePositiveAmount(amountPaise); err != nil {
		return w.balance, err
	}
	if w.balance < amountPaise {
		return w.balance, errs.NewInsufficientFundsError(w.UserID, amountPaise, w.balance)
	}
	w.balance -= amountPaise
	w.UpdatedAt = timeProvider.Now()
	return w.balance, nil
}
