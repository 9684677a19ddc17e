package entity

import (
	"fmt"

	errs "github.com/arenalabs/arena-store/internal/domain/error"
)

// All ledger math is integer arithmetic in paise (minor currency units).
// No floating point anywhere in the ledger path.

// ValidatePositiveAmount checks that an amount is a positive number of paise
func ValidatePositiveAmount(amountPaise int64) error {
	if amountPaise <= 0 {
		return fmt.Errorf("%w: got %d", errs.ErrInvalidAmount, amountPaise)
	}
	return nil
}

// ValidateAmountInRange checks that an amount lies inside [minPaise, maxPaise]
func ValidateAmountInRange(amountPaise, minPaise, maxPaise int64) error {
	if err := ValidatePositiveAmount(amountPaise); err != nil {
		return err
	}
	if amountPaise < minPaise || amountPaise > maxPaise {
		return fmt.Errorf("%w: %d paise not in [%d, %d]",
			errs.ErrAmountOutOfRange, amountPaise, minPaise, maxPaise)
	}
	return nil
}

// PaiseToRupeeString formats paise as a rupee string with 2 decimal places.
// For example 9900 becomes "99.00" and -9900 becomes "-99.00".
// Used only for descriptions and display, never for arithmetic.
func PaiseToRupeeString(amountPaise int64) string {
	isNegative := amountPaise < 0
	if isNegative {
		amountPaise = -amountPaise
	}
	s := fmt.Sprintf("%d.%02d", amountPaise/100, amountPaise%100)
	if isNegative {
		return "-" + s
	}
	return s
}
