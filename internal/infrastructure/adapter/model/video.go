package model

import (
	"time"
)

// Video represents the database model for catalog entries priced in paise
type Video struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement"`
	Title      string    `gorm:"not null;size:255"`
	PricePaise int64     `gorm:"not null;check:price_paise >= 0"`
	CreatedAt  time.Time `gorm:"not null"`
}

// TableName specifies the table name for Video
func (Video) TableName() string {
	return "videos"
}
