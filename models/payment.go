package models

import "time"

// Payment is one instalment received against a sale.
type Payment struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	SaleID    uint      `gorm:"index;not null"`
	Amount    int64     `gorm:"not null"`
	Method    string    `gorm:"size:32"` // cash, card, transfer
	PaidAt    time.Time `gorm:"not null"`
}
