package dto

// WalletResponse represents the API response for the wallet summary endpoint.
// Amounts are reported both in paise and as formatted rupee strings.
type WalletResponse struct {
	BalancePaise        int64  `json:"balancePaise"`
	Balance             string `json:"balance"`
	TotalDepositedPaise int64  `json:"totalDepositedPaise"`
	TotalDeposited      string `json:"totalDeposited"`
	TotalSpentPaise     int64  `json:"totalSpentPaise"`
	TotalSpent          string `json:"totalSpent"`
	TransactionCount    int64  `json:"transactionCount"`
}

// DepositOrderRequest represents the API request for creating a deposit order
type DepositOrderRequest struct {
	AmountPaise int64 `json:"amountPaise" binding:"required,gt=0"`
}

// DepositOrderResponse represents the created gateway order for a deposit
type DepositOrderResponse struct {
	OrderID     string `json:"orderId"`
	AmountPaise int64  `json:"amountPaise"`
	Currency    string `json:"currency"`
	KeyID       string `json:"keyId"`
}

// DepositVerifyRequest represents the gateway confirmation for a deposit
type DepositVerifyRequest struct {
	OrderID     string `json:"razorpay_order_id" binding:"required"`
	PaymentID   string `json:"razorpay_payment_id" binding:"required"`
	Signature   string `json:"razorpay_signature" binding:"required"`
	AmountPaise int64  `json:"amountPaise" binding:"required,gt=0"`
}

// DepositVerifyResponse represents the API response for a verified deposit
type DepositVerifyResponse struct {
	TransactionID uint64 `json:"transactionId"`
	AmountPaise   int64  `json:"amountPaise"`
	BalancePaise  int64  `json:"balancePaise"`
	Balance       string `json:"balance"`
}

// TransactionItem represents one ledger entry in API responses
type TransactionItem struct {
	ID            uint64 `json:"id"`
	Type          string `json:"type"`
	Direction     string `json:"direction"`
	AmountPaise   int64  `json:"amountPaise"`
	Amount        string `json:"amount"`
	BalanceAfter  int64  `json:"balanceAfterPaise"`
	ReferenceType string `json:"referenceType,omitempty"`
	ReferenceID   uint64 `json:"referenceId,omitempty"`
	Description   string `json:"description,omitempty"`
	Status        string `json:"status"`
	CreatedAt     string `json:"createdAt"`
}

// TransactionListResponse represents a page of ledger entries
type TransactionListResponse struct {
	Transactions []TransactionItem `json:"transactions"`
	Total        int64             `json:"total"`
	Limit        int               `json:"limit"`
	Offset       int               `json:"offset"`
	HasMore      bool              `json:"hasMore"`
}
