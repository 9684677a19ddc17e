package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/arenalabs/arena-store/internal/domain/error"
)

func TestNewGatewayPurchase(t *testing.T) {
	mockTime, fixed := pinnedTime(t)

	t.Run("Valid gateway purchase", func(t *testing.T) {
		p, err := NewGatewayPurchase(1, 77, 9900, "pay_abc", "order_xyz", mockTime)

		require.NoError(t, err)
		assert.Equal(t, uint64(1), p.UserID)
		assert.Equal(t, uint64(77), p.VideoID)
		assert.Equal(t, int64(9900), p.AmountPaise)
		assert.Equal(t, MethodGateway, p.Method)
		assert.Equal(t, "pay_abc", p.PaymentID)
		assert.Equal(t, "order_xyz", p.OrderID)
		assert.Nil(t, p.WalletTransactionID)
		assert.Equal(t, fixed, p.PurchasedAt)
	})

	t.Run("Invalid inputs", func(t *testing.T) {
		_, err := NewGatewayPurchase(0, 77, 9900, "pay", "order", mockTime)
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)

		_, err = NewGatewayPurchase(1, 0, 9900, "pay", "order", mockTime)
		assert.ErrorIs(t, err, errs.ErrInvalidVideoID)

		_, err = NewGatewayPurchase(1, 77, 0, "pay", "order", mockTime)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})
}

func TestNewWalletPurchase(t *testing.T) {
	mockTime, _ := pinnedTime(t)

	t.Run("Valid wallet purchase links ledger entry", func(t *testing.T) {
		p, err := NewWalletPurchase(1, 77, 9900, 555, mockTime)

		require.NoError(t, err)
		assert.Equal(t, MethodWallet, p.Method)
		require.NotNil(t, p.WalletTransactionID)
		assert.Equal(t, uint64(555), *p.WalletTransactionID)
		assert.Empty(t, p.PaymentID)
		assert.Empty(t, p.OrderID)
	})

	t.Run("Invalid amount", func(t *testing.T) {
		_, err := NewWalletPurchase(1, 77, -1, 555, mockTime)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})
}
