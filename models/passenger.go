package models

import "time"

// Passport processing states for a passenger record.
const (
	PassportPending   = "pending"
	PassportExtracted = "extracted"
	PassportFailed    = "failed"
)

// Passenger is a traveller attached to a client. The document fields are
// filled from the passport extraction pipeline and may be corrected by an
// agent afterwards; ExtractConfidence keeps the pipeline's completeness
// score so low-confidence records can be queued for review.
type Passenger struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time `gorm:"index"`
	ClientID  uint       `gorm:"index;not null"`
	Client    Client     `gorm:"foreignKey:ClientID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`

	GivenName      string `gorm:"size:128"`
	Surname        string `gorm:"size:128"`
	DocumentNumber string `gorm:"size:32;index"`
	Nationality    string `gorm:"size:64"`
	DateOfBirth    string `gorm:"size:10"` // ISO YYYY-MM-DD or empty
	ExpirationDate string `gorm:"size:10"`

	PassportStatus    string `gorm:"size:16;default:pending"`
	ExtractConfidence int    `gorm:"default:0"`

	Uploads []Upload `gorm:"foreignKey:PassengerID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
}
