package wallet

import (
	"github.com/arenalabs/arena-store/internal/domain/entity"
)

// Amount bounds in paise. Self-service deposits accept ₹10–₹10,000; admin
// credits use the wider support band ₹1–₹100,000.
const (
	DepositMinPaise = 1_000
	DepositMaxPaise = 1_000_000

	AdminCreditMinPaise = 100
	AdminCreditMaxPaise = 10_000_000
)

// Pagination defaults for the transaction history endpoint
const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

// ValidateDepositAmount checks a self-service deposit amount against the bounds
func ValidateDepositAmount(amountPaise int64) error {
	return entity.ValidateAmountInRange(amountPaise, DepositMinPaise, DepositMaxPaise)
}

// ValidateAdminCreditAmount checks an admin credit amount against the bounds
func ValidateAdminCreditAmount(amountPaise int64) error {
	return entity.ValidateAmountInRange(amountPaise, AdminCreditMinPaise, AdminCreditMaxPaise)
}

// NormalizePage clamps limit/offset to sane values
func NormalizePage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
