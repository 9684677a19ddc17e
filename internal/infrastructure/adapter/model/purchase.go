package model

import (
	"time"
)

// Purchase represents the database model for video ownership records.
// The composite unique index on (UserID, VideoID) is what makes replayed
// gateway confirmations and concurrent wallet purchases collapse into a
// single ownership row. Rows are cascade-deleted with their user or video.
type Purchase struct {
	ID                  uint64    `gorm:"primaryKey;autoIncrement"`
	UserID              uint64    `gorm:"not null;uniqueIndex:idx_purchases_user_video,priority:1"`
	VideoID             uint64    `gorm:"not null;uniqueIndex:idx_purchases_user_video,priority:2"`
	PaymentID           string    `gorm:"size:255"`
	OrderID             string    `gorm:"size:255"`
	AmountPaise         int64     `gorm:"not null"`
	Method              string    `gorm:"not null;size:20;check:method IN ('gateway','wallet')"`
	WalletTransactionID *uint64   `gorm:"index"`
	PurchasedAt         time.Time `gorm:"not null"`

	User  User  `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
	Video Video `gorm:"foreignKey:VideoID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for Purchase
func (Purchase) TableName() string {
	return "purchases"
}
