package entity

import "time"

// Video is a catalog item. The ledger reads its price at purchase time and
// never mutates it.
type Video struct {
	ID         uint64    // Unique identifier for the video
	Title      string    // Display title
	PricePaise int64     // Price in paise
	CreatedAt  time.Time // When the video was added to the catalog
}
