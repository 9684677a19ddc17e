package model

import (
	"time"
)

// Wallet represents the database model for user wallets.
// BalancePaise is guarded by a CHECK constraint so a negative balance can
// never be persisted even if application-level validation regresses.
type Wallet struct {
	ID           uint64    `gorm:"primaryKey;autoIncrement"`
	UserID       uint64    `gorm:"uniqueIndex;not null"`
	BalancePaise int64     `gorm:"not null;default:0;check:balance_paise >= 0"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`

	User User `gorm:"foreignKey:UserID;references:ID"`
}

// TableName specifies the table name for Wallet
func (Wallet) TableName() string {
	return "wallets"
}
