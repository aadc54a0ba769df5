package models

import "time"

// Entry is one day of logged lifestyle data. It may or may not have a Prediction.
type Entry struct {
	ID               uint        `gorm:"primaryKey" json:"id"`
	UserID           uint        `gorm:"not null;index" json:"user_id"`
	Date             Date        `gorm:"not null;index" json:"date"`
	SleepHours       float64     `gorm:"not null" json:"sleep_hours"`
	WorkoutIntensity string      `gorm:"size:50;not null" json:"workout_intensity"`
	SupplementIntake *string     `gorm:"type:text" json:"supplement_intake"`
	ScreenTime       float64     `gorm:"not null" json:"screen_time"`
	StressLevel      int         `gorm:"not null" json:"stress_level"`
	CreatedAt        time.Time   `json:"created_at"`
	User             User        `gorm:"foreignKey:UserID" json:"-"`
	Prediction       *Prediction `gorm:"foreignKey:EntryID" json:"prediction,omitempty"`
}

func (Entry) TableName() string { return "daily_entries" }
