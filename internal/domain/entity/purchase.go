package entity

import (
	"time"

	errs "github.com/arenalabs/arena-store/internal/domain/error"
	coreport "github.com/arenalabs/arena-store/internal/domain/port/core"
)

// PaymentMethod represents the funding path of a purchase
type PaymentMethod string

// Payment methods
const (
	MethodGateway PaymentMethod = "gateway"
	MethodWallet  PaymentMethod = "wallet"
)

// Purchase is the durable record granting a user access to a video.
// (user, video) is unique: a video can be bought exactly once per user,
// through either funding path.
type Purchase struct {
	ID                  uint64        // Unique identifier for the purchase
	UserID              uint64        // Buying user
	VideoID             uint64        // Purchased video
	PaymentID           string        // External gateway payment id (gateway path)
	OrderID             string        // External gateway order id (gateway path)
	AmountPaise         int64         // Price actually paid, in paise
	Method              PaymentMethod // gateway or wallet
	WalletTransactionID *uint64       // Ledger entry that funded a wallet purchase
	PurchasedAt         time.Time     // When the purchase was recorded
}

// NewGatewayPurchase builds a purchase record funded by the external gateway
func NewGatewayPurchase(
	userID, videoID uint64,
	amountPaise int64,
	paymentID, orderID string,
	timeProvider coreport.TimeProvider,
) (*Purchase, error) {
	if err := validatePurchase(userID, videoID, amountPaise); err != nil {
		return nil, err
	}
	return &Purchase{
		UserID:      userID,
		VideoID:     videoID,
		PaymentID:   paymentID,
		OrderID:     orderID,
		AmountPaise: amountPaise,
		Method:      MethodGateway,
		PurchasedAt: timeProvider.Now(),
	}, nil
}

// NewWalletPurchase builds a purchase record funded by the wallet, linked to
// the ledger entry that paid for it
func NewWalletPurchase(
	userID, videoID uint64,
	amountPaise int64,
	walletTransactionID uint64,
	timeProvider coreport.TimeProvider,
) (*Purchase, error) {
	if err := validatePurchase(userID, videoID, amountPaise); err != nil {
		return nil, err
	}
	txID := walletTransactionID
	return &Purchase{
		UserID:              userID,
		VideoID:             videoID,
		AmountPaise:         amountPaise,
		Method:              MethodWallet,
		WalletTransactionID: &txID,
		PurchasedAt:         timeProvider.Now(),
	}, nil
}

func validatePurchase(userID, videoID uint64, amountPaise int64) error {
	if userID == 0 {
		return errs.ErrInvalidUserID
	}
	if videoID == 0 {
		return errs.ErrInvalidVideoID
	}
	return ValidatePositiveAmount(amountPaise)
}
