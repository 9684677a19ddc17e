package model

import (
	"time"
)

// WalletTransaction represents the database model for ledger entries.
// AmountPaise is signed: positive for credits, negative for debits.
// Deposit idempotency is enforced by a partial unique index on PaymentID,
// created in the migration runner since GORM tags cannot express it.
type WalletTransaction struct {
	ID            uint64    `gorm:"primaryKey;autoIncrement"`
	UserID        uint64    `gorm:"not null;index"`
	WalletID      uint64    `gorm:"not null;index"`
	Type          string    `gorm:"not null;size:20;check:type IN ('DEPOSIT','PURCHASE','REFUND')"`
	AmountPaise   int64     `gorm:"not null"`
	BalanceBefore int64     `gorm:"not null"`
	BalanceAfter  int64     `gorm:"not null"`
	PaymentID     string    `gorm:"size:255;index"`
	OrderID       string    `gorm:"size:255"`
	ReferenceType string    `gorm:"size:50"`
	ReferenceID   uint64    `gorm:"default:0"`
	Description   string    `gorm:"type:text"`
	Status        string    `gorm:"not null;size:20;default:'completed'"`
	CreatedAt     time.Time `gorm:"not null;index"`

	User   User   `gorm:"foreignKey:UserID;references:ID"`
	Wallet Wallet `gorm:"foreignKey:WalletID;references:ID"`
}

// TableName specifies the table name for WalletTransaction
func (WalletTransaction) TableName() string {
	return "wallet_transactions"
}
