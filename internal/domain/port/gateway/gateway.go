package gateway

import "context"

// Order is the opaque descriptor the gateway returns for a created order
type Order struct {
	ID          string            // Gateway order id
	AmountPaise int64             // Amount the order was created for
	Currency    string            // ISO currency code, e.g. "INR"
	Receipt     string            // Server-side receipt identifier
	Notes       map[string]string // Free-form metadata echoed back by the gateway
}

// SignatureVerifier proves that a payment confirmation genuinely originated
// from the gateway. It has no knowledge of wallets or purchases.
type SignatureVerifier interface {
	// Verify checks the signature over (orderID, paymentID). It fails closed:
	// any mismatch or missing field yields false, never an error that could be
	// mistaken for success.
	Verify(orderID, paymentID, signature string) bool
}

// OrderClient creates orders on the external payment gateway. Called outside
// any atomic unit; it never holds the wallet lock.
type OrderClient interface {
	// CreateOrder creates a gateway order for the given amount
	//
	// Possible errors:
	// - ErrGatewayUnavailable: if the gateway is not configured or unreachable
	CreateOrder(ctx context.Context, amountPaise int64, receipt string, notes map[string]string) (*Order, error)

	// Enabled reports whether the gateway is configured
	Enabled() bool

	// KeyID returns the public key id for client-side checkout
	KeyID() string
}
