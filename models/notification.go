package models

import "time"

// Notification is a reminder generated by the scheduled job (for example a
// departure reminder 48h before a trip). Delivery happens out of band; the
// row records what was generated and when it was handed off.
type Notification struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	SaleID    uint       `gorm:"index;not null;uniqueIndex:idx_sale_kind"`
	Kind      string     `gorm:"size:32;not null;uniqueIndex:idx_sale_kind"`
	Message   string     `gorm:"size:512"`
	SentAt    *time.Time `gorm:"index"`
}
