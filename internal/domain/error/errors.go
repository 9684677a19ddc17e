package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInsufficientFunds   = 4001
	CodeInvalidAmount       = 4002
	CodeAmountOutOfRange    = 4003
	CodeAlreadyOwned        = 4004
	CodePaymentVerification = 4005
	CodeConstraintViolation = 4006
	CodeDuplicateDeposit    = 4007
	CodeInvalidCredentials  = 4010
	CodeUnauthenticated     = 4011
	CodeUserNotFound        = 4040
	CodeVideoNotFound       = 4041
	CodeWalletNotFound      = 4042

	// 5xxx - Server errors
	CodeInternalServer     = 5000
	CodeStoreUnavailable   = 5001
	CodeGatewayUnavailable = 5030
)

// Base error types
var (
	// ErrInsufficientFunds is returned when a wallet debit exceeds the current balance
	ErrInsufficientFunds = errors.New("insufficient wallet balance")

	// ErrInvalidAmount is returned when an amount is not a positive integer in paise
	ErrInvalidAmount = errors.New("amount must be a positive integer in paise")

	// ErrAmountOutOfRange is returned when an amount falls outside the configured bounds
	ErrAmountOutOfRange = errors.New("amount is outside the allowed range")

	// ErrAlreadyOwned is returned when a user attempts to purchase a video they already own
	ErrAlreadyOwned = errors.New("video already purchased")

	// ErrPaymentVerificationFailed is returned when a gateway signature does not verify
	ErrPaymentVerificationFailed = errors.New("payment verification failed")

	// ErrDuplicateDeposit is returned when a gateway payment id has already been credited
	ErrDuplicateDeposit = errors.New("deposit with this payment id already credited")

	// ErrUserNotFound is returned when the referenced user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrVideoNotFound is returned when the referenced video doesn't exist
	ErrVideoNotFound = errors.New("video not found")

	// ErrWalletNotFound is returned when a wallet row is missing for an existing user
	ErrWalletNotFound = errors.New("wallet not found")

	// ErrTransactionNotFound is returned when the requested ledger entry doesn't exist
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrPurchaseNotFound is returned when the requested purchase doesn't exist
	ErrPurchaseNotFound = errors.New("purchase not found")

	// ErrInvalidUserID is returned when the user ID is not a positive integer
	ErrInvalidUserID = errors.New("user ID must be positive")

	// ErrInvalidVideoID is returned when the video ID is not a positive integer
	ErrInvalidVideoID = errors.New("video ID must be positive")

	// ErrInvalidCredentials is returned when signin credentials don't match
	ErrInvalidCredentials = errors.New("invalid username/email or password")

	// ErrUnauthenticated is returned when no valid identity accompanies a request
	ErrUnauthenticated = errors.New("authentication required")

	// ErrDuplicateUser is returned when a signup collides with an existing username or email
	ErrDuplicateUser = errors.New("user already exists")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrStoreUnavailable is returned when the ledger store cannot be reached or an
	// atomic unit fails for infrastructure reasons; callers may retry safely
	ErrStoreUnavailable = errors.New("ledger store unavailable")

	// ErrGatewayUnavailable is returned when the payment gateway is not configured
	ErrGatewayUnavailable = errors.New("payment gateway not configured")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInsufficientFunds):
		return CodeInsufficientFunds
	case errors.Is(err, ErrInvalidAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrAmountOutOfRange):
		return CodeAmountOutOfRange
	case errors.Is(err, ErrAlreadyOwned):
		return CodeAlreadyOwned
	case errors.Is(err, ErrPaymentVerificationFailed):
		return CodePaymentVerification
	case errors.Is(err, ErrDuplicateDeposit):
		return CodeDuplicateDeposit
	case errors.Is(err, ErrInvalidCredentials):
		return CodeInvalidCredentials
	case errors.Is(err, ErrUnauthenticated):
		return CodeUnauthenticated
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrVideoNotFound):
		return CodeVideoNotFound
	case errors.Is(err, ErrWalletNotFound):
		return CodeWalletNotFound
	case errors.Is(err, ErrConstraintViolation):
		return CodeConstraintViolation
	case errors.Is(err, ErrStoreUnavailable):
		return CodeStoreUnavailable
	case errors.Is(err, ErrGatewayUnavailable):
		return CodeGatewayUnavailable
	default:
		return CodeInternalServer
	}
}

// InsufficientFundsError provides detailed error information for a rejected debit
type InsufficientFundsError struct {
	UserID        uint64
	RequiredPaise int64
	BalancePaise  int64
}

// Error implements the error interface
func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds for user %d: required %d paise, available %d paise",
		e.UserID, e.RequiredPaise, e.BalancePaise)
}

// Is checks if the target error is an ErrInsufficientFunds
func (e *InsufficientFundsError) Is(target error) bool {
	return target == ErrInsufficientFunds
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientFundsError) LogFields() map[string]any {
	return map[string]any{
		"error_type":     "insufficient_funds",
		"user_id":        e.UserID,
		"required_paise": e.RequiredPaise,
		"balance_paise":  e.BalancePaise,
		"error_code":     CodeInsufficientFunds,
	}
}

// NewInsufficientFundsError creates a new detailed insufficient funds error
func NewInsufficientFundsError(userID uint64, requiredPaise, balancePaise int64) error {
	return &InsufficientFundsError{
		UserID:        userID,
		RequiredPaise: requiredPaise,
		BalancePaise:  balancePaise,
	}
}

// AlreadyOwnedError provides detailed information about a duplicate purchase attempt
type AlreadyOwnedError struct {
	UserID  uint64
	VideoID uint64
}

// Error implements the error interface
func (e *AlreadyOwnedError) Error() string {
	return fmt.Sprintf("user %d already owns video %d", e.UserID, e.VideoID)
}

// Is checks if the target error is an ErrAlreadyOwned
func (e *AlreadyOwnedError) Is(target error) bool {
	return target == ErrAlreadyOwned
}

// LogFields returns a map of fields for structured logging
func (e *AlreadyOwnedError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "already_owned",
		"user_id":    e.UserID,
		"video_id":   e.VideoID,
		"error_code": CodeAlreadyOwned,
	}
}

// NewAlreadyOwnedError creates a new detailed duplicate purchase error
func NewAlreadyOwnedError(userID, videoID uint64) error {
	return &AlreadyOwnedError{UserID: userID, VideoID: videoID}
}

// LedgerError represents an error raised inside a wallet atomic unit
type LedgerError struct {
	UserID      uint64
	WalletID    uint64
	AmountPaise int64
	Operation   string
	Err         error
}

// Error implements the error interface for LedgerError
func (e *LedgerError) Error() string {
	return fmt.Sprintf("ledger %s failed for user %d (wallet %d, amount %d paise): %v",
		e.Operation, e.UserID, e.WalletID, e.AmountPaise, e.Err)
}

// Unwrap returns the underlying error
func (e *LedgerError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *LedgerError) LogFields() map[string]any {
	return map[string]any{
		"error_type":   "ledger_error",
		"user_id":      e.UserID,
		"wallet_id":    e.WalletID,
		"amount_paise": e.AmountPaise,
		"operation":    e.Operation,
		"error":        e.Err.Error(),
		"error_code":   ErrorCode(e.Err),
	}
}

// NewLedgerError creates a detailed ledger error
func NewLedgerError(userID, walletID uint64, amountPaise int64, operation string, err error) error {
	return &LedgerError{
		UserID:      userID,
		WalletID:    walletID,
		AmountPaise: amountPaise,
		Operation:   operation,
		Err:         err,
	}
}

// IsInsufficientFundsError checks if the error is related to insufficient funds
func IsInsufficientFundsError(err error) bool {
	return errors.Is(err, ErrInsufficientFunds)
}

// IsAlreadyOwnedError checks if the error is a duplicate purchase error
func IsAlreadyOwnedError(err error) bool {
	return errors.Is(err, ErrAlreadyOwned)
}

// IsVerificationError checks if the error is a gateway verification failure
func IsVerificationError(err error) bool {
	return errors.Is(err, ErrPaymentVerificationFailed)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrVideoNotFound) ||
		errors.Is(err, ErrWalletNotFound) ||
		errors.Is(err, ErrTransactionNotFound) ||
		errors.Is(err, ErrPurchaseNotFound)
}

// IsValidationError checks if the error is a client-input validation failure.
// Validation errors are rejected before any store access is attempted.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrAmountOutOfRange) ||
		errors.Is(err, ErrInvalidUserID) ||
		errors.Is(err, ErrInvalidVideoID) ||
		errors.Is(err, ErrInvalidRequest)
}

// IsRetryable checks if the error class is safe to retry with idempotent semantics
func IsRetryable(err error) bool {
	return errors.Is(err, ErrStoreUnavailable)
}
