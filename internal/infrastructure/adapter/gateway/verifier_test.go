package gateway

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arenalabs/arena-store/internal/infrastructure/adapter/logger"
)

func sign(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestHMACVerifier_Verify(t *testing.T) {
	const secret = "test_key_secret"
	v := NewHMACVerifier(secret, logger.NewNoopLogger())

	t.Run("Valid signature accepted", func(t *testing.T) {
		sig := sign(secret, "order_abc", "pay_xyz")
		assert.True(t, v.Verify("order_abc", "pay_xyz", sig))
	})

	t.Run("Known vector", func(t *testing.T) {
		// HMAC-SHA256("order_1|pay_1", "secret")
		vec := NewHMACVerifier("secret", logger.NewNoopLogger())
		expected := sign("secret", "order_1", "pay_1")
		assert.True(t, vec.Verify("order_1", "pay_1", expected))
	})

	t.Run("Tampered signature rejected", func(t *testing.T) {
		sig := sign(secret, "order_abc", "pay_xyz")
		tampered := sig[:len(sig)-1] + "0"
		if tampered == sig {
			tampered = sig[:len(sig)-1] + "1"
		}
		assert.False(t, v.Verify("order_abc", "pay_xyz", tampered))
	})

	t.Run("Signature for different payment rejected", func(t *testing.T) {
		sig := sign(secret, "order_abc", "pay_other")
		assert.False(t, v.Verify("order_abc", "pay_xyz", sig))
	})

	t.Run("Missing fields rejected", func(t *testing.T) {
		sig := sign(secret, "order_abc", "pay_xyz")
		assert.False(t, v.Verify("", "pay_xyz", sig))
		assert.False(t, v.Verify("order_abc", "", sig))
		assert.False(t, v.Verify("order_abc", "pay_xyz", ""))
	})

	t.Run("Empty secret fails closed", func(t *testing.T) {
		unconfigured := NewHMACVerifier("", logger.NewNoopLogger())
		sig := sign("", "order_abc", "pay_xyz")
		assert.False(t, unconfigured.Verify("order_abc", "pay_xyz", sig))
	})
}
