package gateway

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"

	coreport "github.com/arenalabs/arena-store/internal/domain/port/core"
)

// HMACVerifier verifies Razorpay payment signatures. The gateway signs
// "orderID|paymentID" with HMAC-SHA256 under the key secret and sends the
// hex digest alongside the payment confirmation.
type HMACVerifier struct {
	secret []byte
	logger coreport.Logger
}

// NewHMACVerifier creates a verifier bound to the gateway key secret
func NewHMACVerifier(secret string, logger coreport.Logger) *HMACVerifier {
	return &HMACVerifier{
		secret: []byte(secret),
		logger: logger,
	}
}

// Verify checks the signature over (orderID, paymentID). Any missing field
// or mismatch yields false.
func (v *HMACVerifier) Verify(orderID, paymentID, signature string) bool {
	if orderID == "" || paymentID == "" || signature == "" || len(v.secret) == 0 {
		return false
	}

	mac := hmac.New(sha256.New, v.secret)
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(signature)) {
		v.logger.Warn("Payment signature mismatch", map[string]any{
			"order_id":   orderID,
			"payment_id": paymentID,
		})
		return false
	}
	return true
}
