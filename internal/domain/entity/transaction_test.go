package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/arenalabs/arena-store/internal/domain/error"
)

func TestNewDepositTransaction(t *testing.T) {
	mockTime, fixed := pinnedTime(t)

	t.Run("Valid deposit entry", func(t *testing.T) {
		entry, err := NewDepositTransaction(
			1,               // userID
			10,              // walletID
			5000,            // amountPaise
			2500,            // balanceBefore
			"pay_abc123",    // paymentID
			"order_xyz789",  // orderID
			"Wallet top-up", // description
			mockTime,
		)

		require.NoError(t, err)
		assert.Equal(t, uint64(1), entry.UserID)
		assert.Equal(t, uint64(10), entry.WalletID)
		assert.Equal(t, TypeDeposit, entry.Type)
		assert.Equal(t, int64(5000), entry.AmountPaise)
		assert.Equal(t, int64(2500), entry.BalanceBefore)
		assert.Equal(t, int64(7500), entry.BalanceAfter)
		assert.Equal(t, "pay_abc123", entry.PaymentID)
		assert.Equal(t, "order_xyz789", entry.OrderID)
		assert.Equal(t, StatusCompleted, entry.Status)
		assert.Equal(t, fixed, entry.CreatedAt)
		assert.True(t, entry.IsCredit())
		assert.False(t, entry.IsDebit())
	})

	t.Run("Zero user id", func(t *testing.T) {
		entry, err := NewDepositTransaction(0, 10, 5000, 0, "pay_1", "order_1", "", mockTime)

		assert.Nil(t, entry)
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
	})

	t.Run("Non-positive amount", func(t *testing.T) {
		entry, err := NewDepositTransaction(1, 10, 0, 0, "pay_1", "order_1", "", mockTime)

		assert.Nil(t, entry)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})
}

func TestNewPurchaseTransaction(t *testing.T) {
	mockTime, _ := pinnedTime(t)

	t.Run("Valid purchase entry stores negative amount", func(t *testing.T) {
		entry, err := NewPurchaseTransaction(
			1,     // userID
			10,    // walletID
			9900,  // pricePaise
			15000, // balanceBefore
			77,    // videoID
			"Purchased video: Final Highlights",
			mockTime,
		)

		require.NoError(t, err)
		assert.Equal(t, TypePurchase, entry.Type)
		assert.Equal(t, int64(-9900), entry.AmountPaise)
		assert.Equal(t, int64(15000), entry.BalanceBefore)
		assert.Equal(t, int64(5100), entry.BalanceAfter)
		assert.Equal(t, ReferenceVideo, entry.ReferenceType)
		assert.Equal(t, uint64(77), entry.ReferenceID)
		assert.Empty(t, entry.PaymentID)
		assert.True(t, entry.IsDebit())
		assert.False(t, entry.IsCredit())
	})

	t.Run("Exact balance purchase lands on zero", func(t *testing.T) {
		entry, err := NewPurchaseTransaction(1, 10, 9900, 9900, 77, "", mockTime)

		require.NoError(t, err)
		assert.Equal(t, int64(0), entry.BalanceAfter)
	})

	t.Run("Insufficient balance rejected", func(t *testing.T) {
		entry, err := NewPurchaseTransaction(1, 10, 9900, 9899, 77, "", mockTime)

		assert.Nil(t, entry)
		assert.True(t, errs.IsInsufficientFundsError(err))
	})

	t.Run("Zero video id", func(t *testing.T) {
		entry, err := NewPurchaseTransaction(1, 10, 9900, 15000, 0, "", mockTime)

		assert.Nil(t, entry)
		assert.ErrorIs(t, err, errs.ErrInvalidVideoID)
	})
}

func TestIsValidTransactionType(t *testing.T) {
	assert.True(t, IsValidTransactionType("DEPOSIT"))
	assert.True(t, IsValidTransactionType("PURCHASE"))
	assert.True(t, IsValidTransactionType("REFUND"))
	assert.False(t, IsValidTransactionType("deposit"))
	assert.False(t, IsValidTransactionType("WITHDRAWAL"))
	assert.False(t, IsValidTransactionType(""))
}
