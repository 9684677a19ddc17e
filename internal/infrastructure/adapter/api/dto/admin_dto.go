package dto

// AdminLoginRequest represents the API request for operator login
type AdminLoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AdminLoginResponse represents the API response for operator login
type AdminLoginResponse struct {
	Token string `json:"token"`
}

// AddBalanceRequest represents the API request for crediting a user's wallet
type AddBalanceRequest struct {
	AmountPaise int64 `json:"amountPaise" binding:"required,gt=0"`
}

// AddBalanceResponse represents the API response for an admin credit
type AddBalanceResponse struct {
	TransactionID uint64 `json:"transactionId"`
	UserID        uint64 `json:"userId"`
	AmountPaise   int64  `json:"amountPaise"`
	BalancePaise  int64  `json:"balancePaise"`
	Balance       string `json:"balance"`
}
