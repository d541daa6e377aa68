package models

import "time"

// Client is a travel-agency customer. Owned by the agent (User) that
// registered it; administrators see all clients.
type Client struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time `gorm:"index"`
	UserID    uint       `gorm:"index;not null"`
	Name      string     `gorm:"size:255;not null"`
	Email     string     `gorm:"size:255"`
	Phone     string     `gorm:"size:64"`
	Address   string     `gorm:"size:512"`
	// Passengers travelling under this client's bookings
	Passengers []Passenger `gorm:"foreignKey:ClientID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
