package models

import "time"

// Upload records a stored passport/ID image for a passenger along with the
// outcome of the extraction run against it. Failed uploads are kept (not
// deleted) so an agent can review and retry them.
type Upload struct {
	ID          uint `gorm:"primaryKey"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	FileName    string    `gorm:"size:255;not null"`
	StorePath   string    `gorm:"column:store_path;size:512"`
	ContentType string    `gorm:"size:128"`
	PassengerID uint      `gorm:"index;not null"`
	Passenger   Passenger `gorm:"foreignKey:PassengerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`

	RawText      string `gorm:"type:text"`
	Confidence   int    `gorm:"default:0"`
	Method       string `gorm:"size:64"`
	Failed       bool   `gorm:"default:false;index"`
	FailedReason string `gorm:"size:255"`
}
