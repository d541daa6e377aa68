package models

import (
	"time"
)

// User is a back-office account (an agent or an administrator).
type User struct {
	ID             uint `gorm:"primaryKey"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      *time.Time `gorm:"index"`
	Username       string     `gorm:"size:255;not null;unique"`
	HashedPassword []byte     `gorm:"not null"`
	RoleID         *uint      `gorm:"index"`
	Role           Role       `gorm:"foreignKey:RoleID;references:ID"`
	Clients        []Client   `gorm:"foreignKey:UserID"`
	Sales          []Sale     `gorm:"foreignKey:UserID"`
}
