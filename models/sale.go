package models

import "time"

// Sale is a booking sold to a client for one passenger. Price and payments
// are stored in the smallest currency unit (cents).
type Sale struct {
	ID          uint `gorm:"primaryKey"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time `gorm:"index"`
	UserID      uint       `gorm:"index;not null"` // selling agent
	ClientID    uint       `gorm:"index;not null"`
	Client      Client     `gorm:"foreignKey:ClientID;references:ID"`
	PassengerID *uint      `gorm:"index"`
	Passenger   *Passenger `gorm:"foreignKey:PassengerID;references:ID"`

	Destination   string     `gorm:"size:255;not null"`
	DepartureDate time.Time  `gorm:"not null;index"`
	ReturnDate    *time.Time
	Price         int64     `gorm:"not null"`
	Status        string    `gorm:"size:16;default:open"` // open, paid, cancelled
	Payments      []Payment `gorm:"foreignKey:SaleID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
