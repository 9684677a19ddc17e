package dto

// WalletPurchaseResponse represents the API response for a wallet-funded
// video purchase
type WalletPurchaseResponse struct {
	PurchaseID            uint64 `json:"purchaseId"`
	VideoID               uint64 `json:"videoId"`
	AmountPaise           int64  `json:"amountPaise"`
	Amount                string `json:"amount"`
	RemainingBalancePaise int64  `json:"remainingBalancePaise"`
	RemainingBalance      string `json:"remainingBalance"`
}

// GatewayOrderRequest represents the API request for creating a gateway order
// to buy a specific video
type GatewayOrderRequest struct {
	VideoID uint64 `json:"videoId" binding:"required,gt=0"`
}

// GatewayOrderResponse represents the created gateway order for a purchase
type GatewayOrderResponse struct {
	OrderID     string `json:"orderId"`
	AmountPaise int64  `json:"amountPaise"`
	Currency    string `json:"currency"`
	KeyID       string `json:"keyId"`
}

// GatewayVerifyRequest represents the gateway confirmation for a purchase
type GatewayVerifyRequest struct {
	VideoID   uint64 `json:"videoId" binding:"required,gt=0"`
	OrderID   string `json:"razorpay_order_id" binding:"required"`
	PaymentID string `json:"razorpay_payment_id" binding:"required"`
	Signature string `json:"razorpay_signature" binding:"required"`
}

// GatewayVerifyResponse represents the API response for a recorded gateway
// purchase
type GatewayVerifyResponse struct {
	PurchaseID  uint64 `json:"purchaseId"`
	VideoID     uint64 `json:"videoId"`
	AmountPaise int64  `json:"amountPaise"`
}

// PurchaseItem represents one owned video in API responses
type PurchaseItem struct {
	ID          uint64 `json:"id"`
	VideoID     uint64 `json:"videoId"`
	AmountPaise int64  `json:"amountPaise"`
	Amount      string `json:"amount"`
	Method      string `json:"method"`
	PurchasedAt string `json:"purchasedAt"`
}

// PurchaseListResponse represents the user's library of owned videos
type PurchaseListResponse struct {
	Purchases []PurchaseItem `json:"purchases"`
	Total     int            `json:"total"`
}

// PaymentConfigResponse exposes the public gateway configuration used by
// client-side checkout
type PaymentConfigResponse struct {
	KeyID   string `json:"keyId"`
	Enabled bool   `json:"enabled"`
}
