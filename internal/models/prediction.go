package models

import "time"

// Prediction belongs to one Entry. UserID duplicates the entry owner for ownership checks.
type Prediction struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserID         uint      `gorm:"not null;index" json:"user_id"`
	EntryID        uint      `gorm:"not null;index" json:"entry_id"`
	Prediction     float64   `gorm:"not null" json:"prediction"`
	Recommendation string    `gorm:"type:text;not null" json:"recommendation"`
	CreatedAt      time.Time `json:"created_at"`
	User           User      `gorm:"foreignKey:UserID" json:"-"`
}
